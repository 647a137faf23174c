package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/garagebook/internal/datex"
	"github.com/dmitrijs2005/garagebook/internal/deadline"
	"github.com/dmitrijs2005/garagebook/internal/locale"
)

func statusTag(s deadline.Status) string {
	switch s {
	case deadline.StatusOverdue:
		return "[SCADUTO]"
	case deadline.StatusWarning:
		return "[IN SCADENZA]"
	default:
		return "[OK]"
	}
}

func (a *App) Status(ctx context.Context, args []string) error {
	st, err := a.garage.Status(a.now())
	if err != nil {
		return err
	}

	a.printf("%s  %s km  %s\n", st.Vehicle.Label(), locale.Int(st.Vehicle.CurrentKm), statusTag(st.Overall))
	a.println("Manutenzione periodica:")
	a.printResults(st.Intervals)
	if len(st.Reminders) > 0 {
		a.println("Promemoria:")
		a.printResults(st.Reminders)
	}
	return nil
}

func (a *App) printResults(rs []deadline.Result) {
	for _, r := range rs {
		a.printf("  %-14s %-18s %s\n", statusTag(r.Status), r.Label, strings.TrimPrefix(r.Message, "⚠️ "))
	}
}

func (a *App) Dashboard(ctx context.Context, args []string) error {
	d, err := a.garage.Dashboard()
	if err != nil {
		return err
	}

	a.println(d.Label)
	a.printf("  Anno %d", d.Year)
	if d.Plate != "" {
		a.printf("  targa %s", d.Plate)
	}
	a.printf("  %s km\n", locale.Int(d.CurrentKm))

	for _, iv := range deadline.DefaultIntervals {
		label := iv.Type.Label()
		e, ok := d.Last(iv.Type)
		if !ok {
			a.printf("  Ultimo %-14s -\n", strings.ToLower(label))
			continue
		}
		a.printf("  Ultimo %-14s %s a %s km\n", strings.ToLower(label), datex.Display(e.Date), locale.Int(e.Km))
	}
	a.printf("  Interventi: %d  Letture km: %d\n", d.MaintenanceCount, d.MileageCount)
	return nil
}

