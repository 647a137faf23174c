package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/garagebook/internal/locale"
	"github.com/dmitrijs2005/garagebook/internal/models"
)

func (a *App) ListVehicles(ctx context.Context, args []string) error {
	g := a.garage.Snapshot()
	if len(g.Vehicles) == 0 {
		a.println("Nessun veicolo. Usa 'add-vehicle' per aggiungerne uno.")
		return nil
	}

	for i, v := range g.Vehicles {
		mark := " "
		if g.ActiveVehicleID != nil && *g.ActiveVehicleID == v.ID {
			mark = "*"
		}
		a.printf("%s %d. %s (%s) %d %s km  [%s]\n",
			mark, i+1, v.Label(), v.VehicleType, v.Year, locale.Int(v.CurrentKm), shortID(v.ID))
	}
	return nil
}

func (a *App) AddVehicle(ctx context.Context, args []string) error {
	kind := strings.Join(args, "")
	if kind == "" {
		s, _, err := a.ask().text("Tipo (auto/moto)", string(models.VehicleAuto))
		if err != nil {
			return err
		}
		kind = s
	}

	v, err := a.garage.AddVehicle(ctx, models.ParseVehicleType(strings.ToLower(kind)))
	if err != nil {
		return err
	}
	a.printf("Aggiunto %s, ora attivo. Usa 'edit-vehicle' per i dettagli.\n", v.Label())
	return nil
}

func vehicleIDs(g models.Garage) []string {
	ids := make([]string, len(g.Vehicles))
	for i, v := range g.Vehicles {
		ids[i] = v.ID
	}
	return ids
}

func (a *App) SelectVehicle(ctx context.Context, args []string) error {
	id, err := a.pick("vehicle", args, vehicleIDs(a.garage.Snapshot()))
	if err != nil {
		return err
	}
	if err := a.garage.SelectVehicle(ctx, id); err != nil {
		return err
	}

	v, err := a.garage.Active()
	if err != nil {
		return err
	}
	a.printf("Veicolo attivo: %s\n", v.Label())
	return nil
}

func (a *App) DeleteVehicle(ctx context.Context, args []string) error {
	g := a.garage.Snapshot()
	id, err := a.pick("vehicle", args, vehicleIDs(g))
	if err != nil {
		return err
	}
	v := g.Vehicles[g.Find(id)]

	ok, err := a.ask().confirm("Eliminare " + v.Label() + " con tutti i suoi dati?")
	if err != nil {
		return err
	}
	if !ok {
		a.println("Annullato.")
		return nil
	}

	if err := a.garage.DeleteVehicle(ctx, id); err != nil {
		return err
	}
	a.printf("Eliminato %s.\n", v.Label())
	return nil
}

func (a *App) Info(ctx context.Context, args []string) error {
	v, err := a.garage.Active()
	if err != nil {
		return err
	}

	a.printf("%s\n", v.Label())
	a.printf("  Tipo:        %s\n", v.VehicleType)
	a.printf("  Nome:        %s\n", v.Name)
	a.printf("  Marca:       %s\n", v.Brand)
	a.printf("  Modello:     %s\n", v.Model)
	a.printf("  Anno:        %d\n", v.Year)
	a.printf("  Targa:       %s\n", v.Plate)
	a.printf("  Km attuali:  %s\n", locale.Int(v.CurrentKm))
	a.printf("  Letture km:  %d, interventi: %d, promemoria: %d\n",
		len(v.MileageLog), len(v.MaintenanceLog), len(v.Reminders))
	return nil
}

func (a *App) EditVehicle(ctx context.Context, args []string) error {
	v, err := a.garage.Active()
	if err != nil {
		return err
	}

	var (
		p  models.VehicleInfoPatch
		in = a.ask()
	)

	if s, changed, err := in.text("Tipo (auto/moto)", string(v.VehicleType)); err != nil {
		return err
	} else if changed {
		p.VehicleType = models.Set(models.ParseVehicleType(strings.ToLower(s)))
	}
	if s, changed, err := in.required("Nome", v.Name); err != nil {
		return err
	} else if changed {
		p.Name = models.Set(s)
	}
	if s, changed, err := in.optional("Marca", v.Brand); err != nil {
		return err
	} else if changed {
		p.Brand = models.Set(s)
	}
	if s, changed, err := in.optional("Modello", v.Model); err != nil {
		return err
	} else if changed {
		p.Model = models.Set(s)
	}
	if n, changed, err := in.integer("Anno", v.Year, true); err != nil {
		return err
	} else if changed {
		p.Year = models.Set(n)
	}
	if s, changed, err := in.optional("Targa", v.Plate); err != nil {
		return err
	} else if changed {
		p.Plate = models.Set(strings.ToUpper(s))
	}
	if n, changed, err := in.integer("Km attuali", v.CurrentKm, true); err != nil {
		return err
	} else if changed {
		p.CurrentKm = models.Set(n)
	}

	if p.Empty() {
		a.println("Nessuna modifica.")
		return nil
	}
	if err := a.garage.UpdateVehicle(ctx, p); err != nil {
		return err
	}
	a.println("Veicolo aggiornato.")
	return nil
}
