package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/garagebook/internal/datex"
	"github.com/dmitrijs2005/garagebook/internal/locale"
	"github.com/dmitrijs2005/garagebook/internal/models"
)

const maintenanceTypes = "tagliando/revisione/gomme/altro"

func (a *App) ListServices(ctx context.Context, args []string) error {
	v, err := a.garage.Active()
	if err != nil {
		return err
	}
	if len(v.MaintenanceLog) == 0 {
		a.println("Nessun intervento registrato.")
		return nil
	}

	for i, e := range v.MaintenanceLog {
		a.printf("%d. %s  %-12s %s km  %s", i+1, datex.Display(e.Date), e.Type.Label(), locale.Int(e.Km), e.Description)
		if e.Cost != nil {
			a.printf("  %s €", locale.Money(*e.Cost))
		}
		a.printf("  [%s]\n", shortID(e.ID))
	}
	return nil
}

func maintenanceIDs(v models.Vehicle) []string {
	ids := make([]string, len(v.MaintenanceLog))
	for i, e := range v.MaintenanceLog {
		ids[i] = e.ID
	}
	return ids
}

func (a *App) AddService(ctx context.Context, args []string) error {
	v, err := a.garage.Active()
	if err != nil {
		return err
	}

	in := a.ask()
	kind, _, err := in.text("Tipo ("+maintenanceTypes+")", string(models.MaintenanceTagliando))
	if err != nil {
		return err
	}
	date, _, err := in.date("Data", datex.ISO(a.now()))
	if err != nil {
		return err
	}
	km, _, err := in.integer("Km", v.CurrentKm, true)
	if err != nil {
		return err
	}
	desc, _, err := in.required("Descrizione", "")
	if err != nil {
		return err
	}
	cost, _, err := in.optionalAmount("Costo €", nil)
	if err != nil {
		return err
	}

	e, err := a.garage.AddMaintenance(ctx, models.MaintenanceEntry{
		Type:        models.ParseMaintenanceType(strings.ToLower(kind)),
		Date:        date,
		Km:          km,
		Description: desc,
		Cost:        cost,
	})
	if err != nil {
		return err
	}
	a.printf("Intervento registrato: %s del %s.\n", e.Type.Label(), datex.Display(e.Date))
	return nil
}

func (a *App) EditService(ctx context.Context, args []string) error {
	v, err := a.garage.Active()
	if err != nil {
		return err
	}
	ids := maintenanceIDs(v)
	id, err := a.pick("maintenance", args, ids)
	if err != nil {
		return err
	}
	e := v.MaintenanceLog[indexOf(ids, id)]

	var (
		p  models.MaintenancePatch
		in = a.ask()
	)
	if s, changed, err := in.text("Tipo ("+maintenanceTypes+")", string(e.Type)); err != nil {
		return err
	} else if changed {
		p.Type = models.Set(models.ParseMaintenanceType(strings.ToLower(s)))
	}
	if s, changed, err := in.date("Data", e.Date); err != nil {
		return err
	} else if changed {
		p.Date = models.Set(s)
	}
	if n, changed, err := in.integer("Km", e.Km, true); err != nil {
		return err
	} else if changed {
		p.Km = models.Set(n)
	}
	if s, changed, err := in.required("Descrizione", e.Description); err != nil {
		return err
	} else if changed {
		p.Description = models.Set(s)
	}
	if c, changed, err := in.optionalAmount("Costo €", e.Cost); err != nil {
		return err
	} else if changed {
		p.Cost = models.Set(c)
	}

	if err := a.garage.EditMaintenance(ctx, id, p); err != nil {
		return err
	}
	a.println("Intervento aggiornato.")
	return nil
}

func (a *App) DeleteService(ctx context.Context, args []string) error {
	v, err := a.garage.Active()
	if err != nil {
		return err
	}
	id, err := a.pick("maintenance", args, maintenanceIDs(v))
	if err != nil {
		return err
	}
	if err := a.garage.DeleteMaintenance(ctx, id); err != nil {
		return err
	}
	a.println("Intervento eliminato.")
	return nil
}
