package csvcodec

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/garagebook/internal/models"
)

func sampleVehicle() models.Vehicle {
	return models.Vehicle{
		ID:          "veh-1",
		VehicleType: models.VehicleMoto,
		Name:        "La mia moto",
		Brand:       "Ducati",
		Model:       "Monster, 821",
		Year:        2019,
		Plate:       "AB12345",
		CurrentKm:   23500,
		MileageLog: []models.MileageEntry{
			{ID: "k2", Date: "2025-03-01", Km: 23500, Note: `dopo il giro "lungo", con pioggia`},
			{ID: "k1", Date: "12/01/2025", Km: 21000},
		},
		MaintenanceLog: []models.MaintenanceEntry{
			{ID: "m2", Type: models.MaintenanceTagliando, Date: "2025-02-10", Km: 22000, Description: "olio, filtri", Cost: models.Ptr(245.5)},
			{ID: "m1", Type: models.MaintenanceGomme, Date: "2024-09-01", Km: 18000, Description: "posteriore"},
		},
		Reminders: []models.Reminder{
			{ID: "r1", Label: "Bollo", DueDate: "2025-12-31"},
			{ID: "r2", Label: "Catena, tensione", DueKm: models.Ptr(25000)},
			{ID: "r3", Label: "Assicurazione", DueDate: "2026-01-15", DueKm: models.Ptr(30000)},
		},
	}
}

func counterIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("new-%d", n)
	}
}

func TestExport_Layout(t *testing.T) {
	out := Export(sampleVehicle())
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	assert.Equal(t, "=== DATI VEICOLO ===", lines[0])
	assert.Equal(t, "Tipo,Marca,Modello,Anno,Targa,Km Attuali", lines[1])
	assert.Equal(t, `moto,Ducati,"Monster, 821",2019,AB12345,23500`, lines[2])

	assert.Contains(t, out, "=== REGISTRO CHILOMETRI ===\nData,Km,Note\n")
	assert.Contains(t, out, `2025-03-01,23500,"dopo il giro ""lungo"", con pioggia"`)
	assert.Contains(t, out, `12/01/2025,21000,""`)

	assert.Contains(t, out, "=== REGISTRO MANUTENZIONE ===\nData,Tipo,Descrizione,Km,Costo\n")
	assert.Contains(t, out, `2025-02-10,tagliando,"olio, filtri",22000,245.5`)
	assert.Contains(t, out, `2024-09-01,gomme,"posteriore",18000,`+"\n")

	assert.Contains(t, out, "=== PROMEMORIA ===\nEtichetta,Scadenza Data,Scadenza Km\n")
	assert.Contains(t, out, `"Bollo",2025-12-31,`+"\n")
	assert.Contains(t, out, `"Catena, tensione",,25000`)

	markers := []string{SectionVehicle, SectionMileage, SectionMaintenance, SectionReminders}
	last := -1
	for _, m := range markers {
		i := strings.Index(out, m)
		require.Greater(t, i, last, m)
		last = i
	}
}

func TestRoundTrip(t *testing.T) {
	v := sampleVehicle()

	dec := NewDecoder(strings.NewReader(Export(v)))
	dec.NewID = counterIDs()
	p, err := dec.Decode()
	require.NoError(t, err)

	got := models.NewVehicle("fresh", models.VehicleAuto, time.Now())
	p.Info.Apply(&got)
	got.MileageLog = p.MileageLog
	got.MaintenanceLog = p.MaintenanceLog
	got.Reminders = p.Reminders

	ignore := cmp.Options{
		cmpopts.IgnoreFields(models.Vehicle{}, "ID", "Name"),
		cmpopts.IgnoreFields(models.MileageEntry{}, "ID"),
		cmpopts.IgnoreFields(models.MaintenanceEntry{}, "ID"),
		cmpopts.IgnoreFields(models.Reminder{}, "ID"),
	}
	if diff := cmp.Diff(v, got, ignore); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	seen := map[string]bool{}
	for _, e := range got.MileageLog {
		seen[e.ID] = true
	}
	for _, e := range got.MaintenanceLog {
		seen[e.ID] = true
	}
	for _, r := range got.Reminders {
		seen[r.ID] = true
	}
	assert.Len(t, seen, p.Records())
	assert.NotContains(t, seen, "k1")
	assert.NotContains(t, seen, "m1")
}

func TestParse_MileageRowWithNote(t *testing.T) {
	in := "=== REGISTRO CHILOMETRI ===\n2024-01-15,12000,tagliando eseguito\n"

	p, err := Parse(strings.NewReader(in))
	require.NoError(t, err)

	require.Len(t, p.MileageLog, 1)
	e := p.MileageLog[0]
	assert.Equal(t, "2024-01-15", e.Date)
	assert.Equal(t, 12000, e.Km)
	assert.Equal(t, "tagliando eseguito", e.Note)
	assert.NotEmpty(t, e.ID)

	assert.True(t, p.Info.Empty())
	assert.Nil(t, p.MaintenanceLog)
	assert.Nil(t, p.Reminders)
}

func TestParse_Lenient(t *testing.T) {
	in := strings.Join([]string{
		"",
		"=== DATI VEICOLO ===",
		"Tipo,Marca,Modello,Anno,Targa,Km Attuali",
		"trattore,Fiat,Panda,abc,XY,dieci",
		"   ",
		"=== REGISTRO CHILOMETRI ===",
		"Data,Km,Note",
		"2024-01-01",
		"2024-02-01,12.7",
		`"2024-03-01","13000", "nota"`,
		"=== REGISTRO MANUTENZIONE ===",
		"Data,Tipo,Descrizione,Km,Costo",
		"2024-01-01,freni,pastiglie",
		"2024-01-02,sconosciuto,pastiglie,100,n/a",
		"2024-01-03,,pastiglie,x,90",
		"=== PROMEMORIA ===",
		"Etichetta,Scadenza Data,Scadenza Km",
		"Bollo",
		`"Revisione",,abc`,
	}, "\r\n")

	dec := NewDecoder(strings.NewReader(in))
	dec.Now = func() time.Time { return time.Date(2031, 5, 1, 0, 0, 0, 0, time.UTC) }
	p, err := dec.Decode()
	require.NoError(t, err)

	var v models.Vehicle
	p.Info.Apply(&v)
	assert.Equal(t, models.VehicleAuto, v.VehicleType)
	assert.Equal(t, 2031, v.Year)
	assert.Equal(t, 0, v.CurrentKm)
	assert.Equal(t, "Panda", v.Model)

	require.Len(t, p.MileageLog, 2)
	assert.Equal(t, 12, p.MileageLog[0].Km)
	assert.Equal(t, "", p.MileageLog[0].Note)
	assert.Equal(t, 13000, p.MileageLog[1].Km)
	assert.Equal(t, "nota", p.MileageLog[1].Note)

	require.Len(t, p.MaintenanceLog, 2)
	assert.Equal(t, models.MaintenanceAltro, p.MaintenanceLog[0].Type)
	assert.Nil(t, p.MaintenanceLog[0].Cost)
	assert.Equal(t, models.MaintenanceAltro, p.MaintenanceLog[1].Type)
	assert.Equal(t, 0, p.MaintenanceLog[1].Km)
	require.NotNil(t, p.MaintenanceLog[1].Cost)
	assert.Equal(t, 90.0, *p.MaintenanceLog[1].Cost)

	require.Len(t, p.Reminders, 2)
	assert.Equal(t, models.Reminder{ID: p.Reminders[0].ID, Label: "Bollo"}, p.Reminders[0])
	assert.Equal(t, "Revisione", p.Reminders[1].Label)
	assert.Nil(t, p.Reminders[1].DueKm)
}

func TestParse_Lenient_OutOfRangeNumbers(t *testing.T) {
	in := strings.Join([]string{
		"=== DATI VEICOLO ===",
		"auto,a,b,-2020,p,1e30",
		"=== REGISTRO CHILOMETRI ===",
		"2024-01-01,-500",
		"2024-01-02,NaN",
		"2024-01-03,2147483648",
		"2024-01-04,2147483647",
		"=== REGISTRO MANUTENZIONE ===",
		"2024-01-01,tagliando,olio,-Inf,-10",
		"=== PROMEMORIA ===",
		"Bollo,,-1",
		"Catena,,1e12",
		"Gomme,,+Inf",
		"Olio,,20000.9",
	}, "\n")

	dec := NewDecoder(strings.NewReader(in))
	dec.Now = func() time.Time { return time.Date(2031, 5, 1, 0, 0, 0, 0, time.UTC) }
	p, err := dec.Decode()
	require.NoError(t, err)

	var v models.Vehicle
	p.Info.Apply(&v)
	assert.Equal(t, 0, v.CurrentKm)
	assert.Equal(t, 2031, v.Year)

	km := make([]int, 0, len(p.MileageLog))
	for _, e := range p.MileageLog {
		km = append(km, e.Km)
	}
	assert.Equal(t, []int{0, 0, 0, 2147483647}, km)

	require.Len(t, p.MaintenanceLog, 1)
	assert.Equal(t, 0, p.MaintenanceLog[0].Km)
	assert.Nil(t, p.MaintenanceLog[0].Cost)

	require.Len(t, p.Reminders, 4)
	assert.Nil(t, p.Reminders[0].DueKm)
	assert.Nil(t, p.Reminders[1].DueKm)
	assert.Nil(t, p.Reminders[2].DueKm)
	require.NotNil(t, p.Reminders[3].DueKm)
	assert.Equal(t, 20000, *p.Reminders[3].DueKm)
}

func TestRoundTrip_LineBreaksInText(t *testing.T) {
	v := models.NewVehicle("v", models.VehicleAuto, time.Now())
	v.Plate = "AB\n123"
	v.MileageLog = []models.MileageEntry{
		{ID: "k1", Date: "2024-01-15", Km: 12000, Note: "riga1\nriga2"},
	}
	v.MaintenanceLog = []models.MaintenanceEntry{
		{ID: "m1", Type: models.MaintenanceTagliando, Date: "2024-01-20", Km: 100, Description: "olio\r\n2024-02-01,999,x"},
	}
	v.Reminders = []models.Reminder{
		{ID: "r1", Label: "Bollo\rauto", DueDate: "2025-12-31"},
	}

	out := Export(v)
	assert.Contains(t, out, `2024-01-15,12000,"riga1 riga2"`)
	assert.Contains(t, out, `2024-01-20,tagliando,"olio 2024-02-01,999,x",100,`)

	p, err := Parse(strings.NewReader(out))
	require.NoError(t, err)

	var got models.Vehicle
	p.Info.Apply(&got)
	assert.Equal(t, "AB 123", got.Plate)

	require.Len(t, p.MileageLog, 1)
	assert.Equal(t, models.MileageEntry{ID: p.MileageLog[0].ID, Date: "2024-01-15", Km: 12000, Note: "riga1 riga2"}, p.MileageLog[0])

	require.Len(t, p.MaintenanceLog, 1)
	m := p.MaintenanceLog[0]
	assert.Equal(t, models.MaintenanceTagliando, m.Type)
	assert.Equal(t, "2024-01-20", m.Date)
	assert.Equal(t, 100, m.Km)
	assert.Equal(t, "olio 2024-02-01,999,x", m.Description)

	require.Len(t, p.Reminders, 1)
	assert.Equal(t, "Bollo auto", p.Reminders[0].Label)
	assert.Equal(t, "2025-12-31", p.Reminders[0].DueDate)
}

func TestParse_EmptySectionsArePresent(t *testing.T) {
	v := models.NewVehicle("v", models.VehicleAuto, time.Now())

	p, err := Parse(strings.NewReader(Export(v)))
	require.NoError(t, err)

	assert.NotNil(t, p.MileageLog)
	assert.Empty(t, p.MileageLog)
	assert.NotNil(t, p.MaintenanceLog)
	assert.NotNil(t, p.Reminders)
	assert.False(t, p.Info.Empty())
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse(strings.NewReader("marca,modello\nFiat,Panda\n"))
	assert.True(t, errors.Is(err, ErrParse))

	_, err = Parse(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrParse)

	_, err = Parse(iotestErrReader{})
	assert.ErrorIs(t, err, ErrParse)
}

type iotestErrReader struct{}

func (iotestErrReader) Read([]byte) (int, error) { return 0, errors.New("disk gone") }

func TestFilename(t *testing.T) {
	tests := []struct {
		name string
		v    models.Vehicle
		want string
	}{
		{"brand and model", models.Vehicle{Brand: "Fiat", Model: "Panda"}, "fiat_panda.csv"},
		{"type when no brand", models.Vehicle{VehicleType: models.VehicleMoto, Model: "Monster"}, "moto_monster.csv"},
		{"unsafe characters", models.Vehicle{Brand: "Alfa Romeo", Model: "Giulia/Q4"}, "alfa_romeo_giulia_q4.csv"},
		{"no model", models.Vehicle{Brand: "Lancia"}, "lancia.csv"},
		{"nothing", models.Vehicle{}, "auto.csv"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Filename(tt.v))
		})
	}
}

func TestAcceptedExtension(t *testing.T) {
	assert.True(t, AcceptedExtension("backup.csv"))
	assert.True(t, AcceptedExtension("/tmp/BACKUP.TXT"))
	assert.False(t, AcceptedExtension("backup.json"))
	assert.False(t, AcceptedExtension("csv"))
}
