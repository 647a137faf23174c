package cli

import (
	"context"
	"strings"
)

// dirArg is the directory named on the command line, or the configured
// export directory.
func (a *App) dirArg(args []string) string {
	if d := strings.Join(args, " "); d != "" {
		return d
	}
	return a.config.ExportDir
}

func (a *App) Export(ctx context.Context, args []string) error {
	path, err := a.garage.ExportCSV(ctx, a.dirArg(args))
	if err != nil {
		return err
	}
	a.printf("Esportato in %s\n", path)
	return nil
}

func (a *App) Import(ctx context.Context, args []string) error {
	path := strings.Join(args, " ")
	if path == "" {
		s, err := GetSimpleText(a.reader, "File CSV da importare", a.out)
		if err != nil {
			return err
		}
		path = s
	}

	sum, err := a.garage.ImportCSV(ctx, path)
	if err != nil {
		return err
	}

	a.printf("Importati %d letture km, %d interventi, %d promemoria", sum.Mileage, sum.Maintenance, sum.Reminders)
	if sum.VehicleUpdated {
		a.printf("; dati veicolo aggiornati")
	}
	a.println(".")
	return nil
}

func (a *App) PDF(ctx context.Context, args []string) error {
	path, err := a.garage.ExportPDF(ctx, a.dirArg(args), a.now())
	if err != nil {
		return err
	}
	a.printf("PDF salvato in %s\n", path)
	return nil
}
