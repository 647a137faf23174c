package csvcodec

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/garagebook/internal/models"
)

// ErrParse is returned when the input is not a vehicle export at all.
var ErrParse = errors.New("csv parse error")

// Minimum number of fields for a row to be imported.
const (
	minVehicleFields     = 6
	minMileageFields     = 2
	minMaintenanceFields = 4
	minReminderFields    = 1
)

var headerPrefixes = []string{"Tipo,", "Data,Km,", "Data,Tipo,", "Etichetta,"}

// Patch is the data recovered from an export.
//
// Info is set only when a vehicle row was read. A nil log means its section
// was missing from the input; a section that was present but had no rows
// yields an empty, non-nil log.
type Patch struct {
	Info           models.VehicleInfoPatch
	MileageLog     []models.MileageEntry
	MaintenanceLog []models.MaintenanceEntry
	Reminders      []models.Reminder
}

// Records returns the number of log entries in p.
func (p Patch) Records() int {
	return len(p.MileageLog) + len(p.MaintenanceLog) + len(p.Reminders)
}

type section int

const (
	sectionNone section = iota
	sectionVehicle
	sectionMileage
	sectionMaintenance
	sectionReminders
)

// Decoder reads a Patch from an input stream.
type Decoder struct {
	r io.Reader

	// Now supplies the fallback year. Defaults to time.Now.
	Now func() time.Time
	// NewID mints record ids. Defaults to uuid.NewString.
	NewID func() string
}

// NewDecoder returns a Decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r, Now: time.Now, NewID: uuid.NewString}
}

// Parse decodes r with default settings.
func Parse(r io.Reader) (Patch, error) {
	return NewDecoder(r).Decode()
}

// Decode reads the whole input. Malformed rows are skipped; ErrParse is
// returned only when the input cannot be read or carries no section marker.
func (d *Decoder) Decode() (Patch, error) {
	var (
		p       Patch
		current = sectionNone
		sawAny  bool
	)

	sc := bufio.NewScanner(d.r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	first := true
	for sc.Scan() {
		line := sc.Text()
		if first {
			line = strings.TrimPrefix(line, "\ufeff")
			first = false
		}
		line = strings.TrimSpace(strings.ToValidUTF8(line, "\uFFFD"))
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, markerToken) {
			if s := sectionOf(line); s != sectionNone {
				current = s
				sawAny = true
				p.touch(s)
			}
			continue
		}
		if isHeader(line) {
			continue
		}

		parts := splitFields(line)
		switch current {
		case sectionVehicle:
			if len(parts) >= minVehicleFields {
				p.Info = d.vehicleInfo(parts)
			}
		case sectionMileage:
			if len(parts) >= minMileageFields {
				p.MileageLog = append(p.MileageLog, d.mileage(parts))
			}
		case sectionMaintenance:
			if len(parts) >= minMaintenanceFields {
				p.MaintenanceLog = append(p.MaintenanceLog, d.maintenance(parts))
			}
		case sectionReminders:
			if len(parts) >= minReminderFields {
				p.Reminders = append(p.Reminders, d.reminder(parts))
			}
		}
	}
	if err := sc.Err(); err != nil {
		return Patch{}, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if !sawAny {
		return Patch{}, fmt.Errorf("%w: no section marker found", ErrParse)
	}
	return p, nil
}

func (p *Patch) touch(s section) {
	switch s {
	case sectionMileage:
		if p.MileageLog == nil {
			p.MileageLog = []models.MileageEntry{}
		}
	case sectionMaintenance:
		if p.MaintenanceLog == nil {
			p.MaintenanceLog = []models.MaintenanceEntry{}
		}
	case sectionReminders:
		if p.Reminders == nil {
			p.Reminders = []models.Reminder{}
		}
	}
}

func (d *Decoder) vehicleInfo(parts []string) models.VehicleInfoPatch {
	year := atoi(parts[3])
	if year == 0 {
		year = d.Now().Year()
	}
	return models.VehicleInfoPatch{
		VehicleType: models.Set(models.ParseVehicleType(parts[0])),
		Brand:       models.Set(parts[1]),
		Model:       models.Set(parts[2]),
		Year:        models.Set(year),
		Plate:       models.Set(parts[4]),
		CurrentKm:   models.Set(atoi(parts[5])),
	}
}

func (d *Decoder) mileage(parts []string) models.MileageEntry {
	return models.MileageEntry{
		ID:   d.NewID(),
		Date: parts[0],
		Km:   atoi(parts[1]),
		Note: at(parts, 2),
	}
}

func (d *Decoder) maintenance(parts []string) models.MaintenanceEntry {
	return models.MaintenanceEntry{
		ID:          d.NewID(),
		Date:        parts[0],
		Type:        models.ParseMaintenanceType(parts[1]),
		Description: parts[2],
		Km:          atoi(parts[3]),
		Cost:        optFloat64(at(parts, 4)),
	}
}

func (d *Decoder) reminder(parts []string) models.Reminder {
	r := models.Reminder{
		ID:      d.NewID(),
		Label:   parts[0],
		DueDate: at(parts, 1),
	}
	if n, ok := wholeNumber(at(parts, 2)); ok {
		r.DueKm = models.Ptr(n)
	}
	return r
}

func sectionOf(line string) section {
	switch {
	case strings.Contains(line, SectionVehicle):
		return sectionVehicle
	case strings.Contains(line, SectionMileage):
		return sectionMileage
	case strings.Contains(line, SectionMaintenance):
		return sectionMaintenance
	case strings.Contains(line, SectionReminders):
		return sectionReminders
	default:
		return sectionNone
	}
}

func isHeader(line string) bool {
	for _, h := range headerPrefixes {
		if strings.HasPrefix(line, h) {
			return true
		}
	}
	return false
}

// splitFields splits one row on commas that are not inside double quotes.
// A row the csv reader rejects is split naively.
func splitFields(line string) []string {
	r := csv.NewReader(strings.NewReader(line))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.TrimLeadingSpace = true

	parts, err := r.Read()
	if err != nil {
		parts = strings.Split(line, ",")
		for i, s := range parts {
			s = strings.TrimSpace(s)
			s = strings.TrimPrefix(s, `"`)
			parts[i] = strings.TrimSuffix(s, `"`)
		}
	}
	for i, s := range parts {
		parts[i] = strings.TrimSpace(s)
	}
	return parts
}

func at(parts []string, i int) string {
	if i < len(parts) {
		return parts[i]
	}
	return ""
}

// wholeNumber reads a count such as a year or a km reading. A decimal part
// is dropped. Negative values and values above math.MaxInt32 are rejected.
func wholeNumber(s string) (int, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || f < 0 || f > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}

// atoi is wholeNumber with 0 for anything it rejects.
func atoi(s string) int {
	n, _ := wholeNumber(s)
	return n
}

func optFloat64(s string) *float64 {
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return nil
	}
	return &f
}
