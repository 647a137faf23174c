package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/garagebook/internal/common"
	"github.com/dmitrijs2005/garagebook/internal/config"
	"github.com/dmitrijs2005/garagebook/internal/locale"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

type testApp struct {
	*App
	out *bytes.Buffer
}

func newTestApp(t *testing.T, dir string) *testApp {
	t.Helper()

	orig := isTerminal
	isTerminal = func(int) bool { return false }
	t.Cleanup(func() { isTerminal = orig })

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.DatabasePath = filepath.Join(dir, "data", "garage.db")
	cfg.ExportDir = filepath.Join(dir, "export")
	cfg.LogLevel = "error"

	app, err := NewApp(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(app.Close)

	out := &bytes.Buffer{}
	app.out = out
	app.now = func() time.Time { return testNow }
	return &testApp{App: app, out: out}
}

// answer queues the replies to the next prompts and clears the output.
func (a *testApp) answer(lines ...string) {
	a.reader = readerFromLines(append(lines, "")...)
	a.out.Reset()
}

func (a *testApp) run(t *testing.T, fn func(context.Context, []string) error, args ...string) string {
	t.Helper()
	require.NoError(t, fn(context.Background(), args))
	return a.out.String()
}

func setupPanda(t *testing.T, a *testApp) {
	t.Helper()
	a.answer()
	a.run(t, a.AddVehicle, "auto")

	// type, name, brand, model, year, plate, km
	a.answer("", "", "Fiat", "Panda", "2019", "ab123cd", "10.000")
	out := a.run(t, a.EditVehicle)
	require.Contains(t, out, "Veicolo aggiornato.")
}

func TestCommands_VehicleLifecycle(t *testing.T) {
	a := newTestApp(t, t.TempDir())

	a.answer()
	out := a.run(t, a.ListVehicles)
	assert.Contains(t, out, "Nessun veicolo")

	setupPanda(t, a)

	a.answer()
	out = a.run(t, a.Info)
	assert.Contains(t, out, "Fiat Panda")
	assert.Contains(t, out, "AB123CD")
	assert.Contains(t, out, "2019")
	assert.Contains(t, out, locale.Int(10000))

	a.answer()
	a.run(t, a.AddVehicle, "moto")
	a.answer()
	out = a.run(t, a.ListVehicles)
	assert.Contains(t, out, "  1. Fiat Panda (auto)")
	assert.Contains(t, out, "* 2. La mia moto (moto)")

	a.answer()
	out = a.run(t, a.SelectVehicle, "1")
	assert.Contains(t, out, "Veicolo attivo: Fiat Panda")

	a.answer("n")
	out = a.run(t, a.DeleteVehicle, "1")
	assert.Contains(t, out, "Annullato.")
	assert.Len(t, a.garage.Snapshot().Vehicles, 2)

	a.answer("s")
	a.run(t, a.DeleteVehicle, "1")
	active, err := a.garage.Active()
	require.NoError(t, err)
	assert.Equal(t, "La mia moto", active.Label())
}

func TestCommands_EditVehicleWithoutChanges(t *testing.T) {
	a := newTestApp(t, t.TempDir())
	setupPanda(t, a)

	a.answer("", "", "", "", "", "", "")
	out := a.run(t, a.EditVehicle)
	assert.Contains(t, out, "Nessuna modifica.")
}

func TestCommands_RecordsAndStatus(t *testing.T) {
	a := newTestApp(t, t.TempDir())
	setupPanda(t, a)

	// date, km, note
	a.answer("01/03/2025", "12000", "pieno")
	a.run(t, a.AddMileage)

	// type, date, km (default current), description, cost
	a.answer("", "2025-01-10", "", "Tagliando completo", "180,50")
	out := a.run(t, a.AddService)
	assert.Contains(t, out, "Tagliando del 10/01/2025")

	// label, due date, due km
	a.answer("Bollo", "31/12/2025", "")
	a.run(t, a.AddReminder)

	v, err := a.garage.Active()
	require.NoError(t, err)
	assert.Equal(t, 12000, v.CurrentKm)
	require.Len(t, v.MileageLog, 1)
	assert.Equal(t, "2025-03-01", v.MileageLog[0].Date)
	require.Len(t, v.MaintenanceLog, 1)
	assert.Equal(t, 12000, v.MaintenanceLog[0].Km)
	require.NotNil(t, v.MaintenanceLog[0].Cost)
	assert.InDelta(t, 180.5, *v.MaintenanceLog[0].Cost, 1e-9)
	require.Len(t, v.Reminders, 1)
	assert.Equal(t, "2025-12-31", v.Reminders[0].DueDate)
	assert.Nil(t, v.Reminders[0].DueKm)

	a.answer()
	out = a.run(t, a.ListServices)
	assert.Contains(t, out, "Tagliando completo")
	assert.Contains(t, out, locale.Money(180.5))

	a.answer()
	out = a.run(t, a.Status)
	assert.Contains(t, out, "Fiat Panda")
	assert.Contains(t, out, "[IN SCADENZA]")
	assert.Contains(t, out, "Mai registrato")
	assert.Contains(t, out, "Bollo")
	assert.NotContains(t, out, "⚠️")

	a.answer()
	out = a.run(t, a.Dashboard)
	assert.Contains(t, out, "Ultimo tagliando")
	assert.Contains(t, out, "10/01/2025")
	assert.Contains(t, out, "Interventi: 1  Letture km: 1")
}

func TestCommands_EditAndDeleteEntries(t *testing.T) {
	a := newTestApp(t, t.TempDir())
	setupPanda(t, a)

	a.answer("2025-03-01", "12000", "")
	a.run(t, a.AddMileage)
	a.answer("2025-04-01", "13000", "")
	a.run(t, a.AddMileage)

	// newest first: entry 2 is the March reading
	a.answer("", "12500", "corretta")
	a.run(t, a.EditMileage, "2")

	v, err := a.garage.Active()
	require.NoError(t, err)
	assert.Equal(t, 12500, v.MileageLog[1].Km)
	assert.Equal(t, "corretta", v.MileageLog[1].Note)
	assert.Equal(t, 13000, v.CurrentKm)

	a.answer()
	a.run(t, a.DeleteMileage, "1")
	v, err = a.garage.Active()
	require.NoError(t, err)
	require.Len(t, v.MileageLog, 1)
	assert.Equal(t, "2025-03-01", v.MileageLog[0].Date)

	a.answer("Assicurazione", "", "20000")
	a.run(t, a.AddReminder)
	// label, clear km, set date
	a.answer("", "2025-09-01", "-")
	a.run(t, a.EditReminder, "1")
	v, err = a.garage.Active()
	require.NoError(t, err)
	assert.Equal(t, "2025-09-01", v.Reminders[0].DueDate)
	assert.Nil(t, v.Reminders[0].DueKm)

	a.answer()
	a.run(t, a.DeleteReminder, v.Reminders[0].ID[:6])
	v, err = a.garage.Active()
	require.NoError(t, err)
	assert.Empty(t, v.Reminders)
}

func TestCommands_ValidationLeavesStateUnchanged(t *testing.T) {
	a := newTestApp(t, t.TempDir())
	setupPanda(t, a)

	a.answer("2025-03-01", "-5", "")
	err := a.AddMileage(context.Background(), nil)
	require.ErrorIs(t, err, common.ErrValidation)

	a.answer("Senza scadenza", "", "")
	err = a.AddReminder(context.Background(), nil)
	require.ErrorIs(t, err, common.ErrValidation)

	a.answer()
	err = a.EditMileage(context.Background(), []string{"1"})
	require.ErrorIs(t, err, common.ErrorNotFound)

	v, err := a.garage.Active()
	require.NoError(t, err)
	assert.Empty(t, v.MileageLog)
	assert.Empty(t, v.Reminders)
	assert.Equal(t, 10000, v.CurrentKm)
}

func TestCommands_NoActiveVehicle(t *testing.T) {
	a := newTestApp(t, t.TempDir())

	for _, fn := range []func(context.Context, []string) error{
		a.Info, a.EditVehicle, a.ListMileage, a.AddMileage, a.ListServices,
		a.AddService, a.ListReminders, a.AddReminder, a.Status, a.Dashboard,
		a.Export, a.PDF,
	} {
		a.answer()
		require.ErrorIs(t, fn(context.Background(), nil), common.ErrNoActiveVehicle)
	}
}

func TestCommands_ExportImportAndPDF(t *testing.T) {
	dir := t.TempDir()
	a := newTestApp(t, dir)
	setupPanda(t, a)

	a.answer("2025-03-01", "12000", "prima, lettura")
	a.run(t, a.AddMileage)

	a.answer()
	out := a.run(t, a.Export)
	path := filepath.Join(dir, "export", "fiat_panda.csv")
	assert.Contains(t, out, path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"prima, lettura"`)

	a.answer()
	a.run(t, a.DeleteMileage, "1")

	a.answer(path)
	out = a.run(t, a.Import)
	assert.Contains(t, out, "Importati 1 letture km, 0 interventi, 0 promemoria; dati veicolo aggiornati.")

	v, err := a.garage.Active()
	require.NoError(t, err)
	require.Len(t, v.MileageLog, 1)
	assert.Equal(t, "prima, lettura", v.MileageLog[0].Note)

	a.answer()
	err = a.Import(context.Background(), []string{filepath.Join(dir, "garage.pdf")})
	require.ErrorIs(t, err, common.ErrUnsupportedFile)

	bad := filepath.Join(dir, "bad.csv")
	require.NoError(t, os.WriteFile(bad, []byte("just,some,text\n"), 0o600))
	a.answer()
	err = a.Import(context.Background(), []string{bad})
	require.Error(t, err)
	assert.Equal(t, "Errore nel parsing del file CSV", notification(err))

	pdfDir := filepath.Join(dir, "reports")
	a.answer()
	out = a.run(t, a.PDF, pdfDir)
	assert.Contains(t, out, "fiat_panda.pdf")
	pdf, err := os.ReadFile(filepath.Join(pdfDir, "fiat_panda.pdf"))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF-")))
}

func TestNewApp_ReloadsSavedGarage(t *testing.T) {
	dir := t.TempDir()

	first := newTestApp(t, dir)
	setupPanda(t, first)
	first.Close()

	second := newTestApp(t, dir)
	second.answer()
	out := second.run(t, second.ListVehicles)
	assert.Contains(t, out, "* 1. Fiat Panda (auto) 2019")
	assert.Equal(t, "", second.promptText())
}

func TestPromptText_Interactive(t *testing.T) {
	a := newTestApp(t, t.TempDir())
	a.prompts = true
	assert.Equal(t, "garage> ", a.promptText())

	setupPanda(t, a)
	assert.True(t, strings.HasPrefix(a.promptText(), "garage (Fiat Panda)"))
}
