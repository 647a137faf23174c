package cli

import (
	"context"

	"github.com/dmitrijs2005/garagebook/internal/datex"
	"github.com/dmitrijs2005/garagebook/internal/locale"
	"github.com/dmitrijs2005/garagebook/internal/models"
)

// ListMileage prints the readings newest first; "km chrono" prints them in
// date order instead.
func (a *App) ListMileage(ctx context.Context, args []string) error {
	v, err := a.garage.Active()
	if err != nil {
		return err
	}
	if len(v.MileageLog) == 0 {
		a.println("Nessuna lettura registrata.")
		return nil
	}

	if len(args) > 0 && args[0] == "chrono" {
		for _, e := range v.MileageChronological() {
			a.printf("  %s  %s km\n", datex.Display(e.Date), locale.Int(e.Km))
		}
		return nil
	}

	for i, e := range v.MileageLog {
		a.printf("%d. %s  %s km", i+1, datex.Display(e.Date), locale.Int(e.Km))
		if e.Note != "" {
			a.printf("  %q", e.Note)
		}
		a.printf("  [%s]\n", shortID(e.ID))
	}
	return nil
}

func mileageIDs(v models.Vehicle) []string {
	ids := make([]string, len(v.MileageLog))
	for i, e := range v.MileageLog {
		ids[i] = e.ID
	}
	return ids
}

func (a *App) AddMileage(ctx context.Context, args []string) error {
	v, err := a.garage.Active()
	if err != nil {
		return err
	}

	in := a.ask()
	date, _, err := in.date("Data", datex.ISO(a.now()))
	if err != nil {
		return err
	}
	km, _, err := in.integer("Km", 0, false)
	if err != nil {
		return err
	}
	note, _, err := in.text("Nota (facoltativa)", "")
	if err != nil {
		return err
	}

	e, err := a.garage.AddMileage(ctx, models.MileageEntry{Date: date, Km: km, Note: note})
	if err != nil {
		return err
	}
	if e.Km < v.CurrentKm {
		a.printf("Lettura registrata; km attuali restano %s.\n", locale.Int(v.CurrentKm))
		return nil
	}
	a.printf("Lettura registrata: %s km al %s.\n", locale.Int(e.Km), datex.Display(e.Date))
	return nil
}

func (a *App) EditMileage(ctx context.Context, args []string) error {
	v, err := a.garage.Active()
	if err != nil {
		return err
	}
	id, err := a.pick("mileage", args, mileageIDs(v))
	if err != nil {
		return err
	}
	e := v.MileageLog[indexOf(mileageIDs(v), id)]

	var (
		p  models.MileagePatch
		in = a.ask()
	)
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
	if s, changed, err := in.optional("Nota", e.Note); err != nil {
		return err
	} else if changed {
		p.Note = models.Set(s)
	}

	if err := a.garage.EditMileage(ctx, id, p); err != nil {
		return err
	}
	a.println("Lettura aggiornata.")
	return nil
}

func (a *App) DeleteMileage(ctx context.Context, args []string) error {
	v, err := a.garage.Active()
	if err != nil {
		return err
	}
	id, err := a.pick("mileage", args, mileageIDs(v))
	if err != nil {
		return err
	}
	if err := a.garage.DeleteMileage(ctx, id); err != nil {
		return err
	}
	a.println("Lettura eliminata.")
	return nil
}

func indexOf(ids []string, id string) int {
	for i, x := range ids {
		if x == id {
			return i
		}
	}
	return -1
}
