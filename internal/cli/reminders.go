package cli

import (
	"context"

	"github.com/dmitrijs2005/garagebook/internal/datex"
	"github.com/dmitrijs2005/garagebook/internal/locale"
	"github.com/dmitrijs2005/garagebook/internal/models"
)

func (a *App) ListReminders(ctx context.Context, args []string) error {
	v, err := a.garage.Active()
	if err != nil {
		return err
	}
	if len(v.Reminders) == 0 {
		a.println("Nessun promemoria.")
		return nil
	}

	for i, r := range v.Reminders {
		a.printf("%d. %s", i+1, r.Label)
		if r.DueDate != "" {
			a.printf("  entro il %s", datex.Display(r.DueDate))
		}
		if r.DueKm != nil {
			a.printf("  a %s km", locale.Int(*r.DueKm))
		}
		a.printf("  [%s]\n", shortID(r.ID))
	}
	return nil
}

func reminderIDs(v models.Vehicle) []string {
	ids := make([]string, len(v.Reminders))
	for i, r := range v.Reminders {
		ids[i] = r.ID
	}
	return ids
}

func (a *App) AddReminder(ctx context.Context, args []string) error {
	if _, err := a.garage.Active(); err != nil {
		return err
	}

	in := a.ask()
	label, _, err := in.required("Etichetta", "")
	if err != nil {
		return err
	}
	date, _, err := in.optionalDate("Scadenza (data)", "")
	if err != nil {
		return err
	}
	km, _, err := in.optionalInt("Scadenza (km)", nil)
	if err != nil {
		return err
	}

	r, err := a.garage.AddReminder(ctx, models.Reminder{Label: label, DueDate: date, DueKm: km})
	if err != nil {
		return err
	}
	a.printf("Promemoria aggiunto: %s.\n", r.Label)
	return nil
}

func (a *App) EditReminder(ctx context.Context, args []string) error {
	v, err := a.garage.Active()
	if err != nil {
		return err
	}
	ids := reminderIDs(v)
	id, err := a.pick("reminder", args, ids)
	if err != nil {
		return err
	}
	r := v.Reminders[indexOf(ids, id)]

	var (
		p  models.ReminderPatch
		in = a.ask()
	)
	if s, changed, err := in.required("Etichetta", r.Label); err != nil {
		return err
	} else if changed {
		p.Label = models.Set(s)
	}
	if s, changed, err := in.optionalDate("Scadenza (data)", r.DueDate); err != nil {
		return err
	} else if changed {
		p.DueDate = models.Set(s)
	}
	if n, changed, err := in.optionalInt("Scadenza (km)", r.DueKm); err != nil {
		return err
	} else if changed {
		p.DueKm = models.Set(n)
	}

	if err := a.garage.EditReminder(ctx, id, p); err != nil {
		return err
	}
	a.println("Promemoria aggiornato.")
	return nil
}

func (a *App) DeleteReminder(ctx context.Context, args []string) error {
	v, err := a.garage.Active()
	if err != nil {
		return err
	}
	id, err := a.pick("reminder", args, reminderIDs(v))
	if err != nil {
		return err
	}
	if err := a.garage.DeleteReminder(ctx, id); err != nil {
		return err
	}
	a.println("Promemoria eliminato.")
	return nil
}
