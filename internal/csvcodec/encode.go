package csvcodec

import (
	"bufio"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/garagebook/internal/models"
)

const markerToken = "==="

// Section names, as they appear between the marker tokens.
const (
	SectionVehicle     = "DATI VEICOLO"
	SectionMileage     = "REGISTRO CHILOMETRI"
	SectionMaintenance = "REGISTRO MANUTENZIONE"
	SectionReminders   = "PROMEMORIA"
)

const (
	headerVehicle     = "Tipo,Marca,Modello,Anno,Targa,Km Attuali"
	headerMileage     = "Data,Km,Note"
	headerMaintenance = "Data,Tipo,Descrizione,Km,Costo"
	headerReminders   = "Etichetta,Scadenza Data,Scadenza Km"
)

// Write serializes v to w.
func Write(w io.Writer, v models.Vehicle) error {
	bw := bufio.NewWriter(w)

	line := func(fields ...string) {
		bw.WriteString(strings.Join(fields, ","))
		bw.WriteByte('\n')
	}
	marker := func(name string) {
		line(markerToken + " " + name + " " + markerToken)
	}

	marker(SectionVehicle)
	line(headerVehicle)
	line(
		field(string(v.VehicleType)),
		field(v.Brand),
		field(v.Model),
		strconv.Itoa(v.Year),
		field(v.Plate),
		strconv.Itoa(v.CurrentKm),
	)
	bw.WriteByte('\n')

	marker(SectionMileage)
	line(headerMileage)
	for _, e := range v.MileageLog {
		line(field(e.Date), strconv.Itoa(e.Km), quoted(e.Note))
	}
	bw.WriteByte('\n')

	marker(SectionMaintenance)
	line(headerMaintenance)
	for _, e := range v.MaintenanceLog {
		line(
			field(e.Date),
			field(string(e.Type)),
			quoted(e.Description),
			strconv.Itoa(e.Km),
			optFloat(e.Cost),
		)
	}
	bw.WriteByte('\n')

	marker(SectionReminders)
	line(headerReminders)
	for _, r := range v.Reminders {
		line(quoted(r.Label), field(r.DueDate), optInt(r.DueKm))
	}

	return bw.Flush()
}

// Export returns the CSV text of v.
func Export(v models.Vehicle) string {
	var sb strings.Builder
	_ = Write(&sb, v)
	return sb.String()
}

// Filename is the suggested export name: "<brand or type>_<model>.csv",
// lowercased, with characters unsafe in file names replaced by "_".
func Filename(v models.Vehicle) string {
	head := v.Brand
	if strings.TrimSpace(head) == "" {
		head = string(v.VehicleType)
	}
	if head == "" {
		head = string(models.VehicleAuto)
	}

	name := head
	if strings.TrimSpace(v.Model) != "" {
		name += "_" + v.Model
	}
	return sanitize(strings.ToLower(name)) + ".csv"
}

// AcceptedExtension reports whether path names a file Parse is offered.
func AcceptedExtension(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		return true
	default:
		return false
	}
}

func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, strings.TrimSpace(s))
}

// lineBreaks folds every line break into one space: a record is one line.
var lineBreaks = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

// quoted always wraps s in double quotes.
func quoted(s string) string {
	return `"` + strings.ReplaceAll(lineBreaks.Replace(s), `"`, `""`) + `"`
}

// field quotes s only when it would otherwise split or confuse the row.
func field(s string) string {
	s = lineBreaks.Replace(s)
	if strings.ContainsAny(s, ",\"") {
		return quoted(s)
	}
	return s
}

func optInt(p *int) string {
	if p == nil {
		return ""
	}
	return strconv.Itoa(*p)
}

func optFloat(p *float64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatFloat(*p, 'f', -1, 64)
}
