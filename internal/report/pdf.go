// Package report renders a printable PDF sheet of one vehicle: its data,
// the current deadline status and both logs.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/dmitrijs2005/garagebook/internal/csvcodec"
	"github.com/dmitrijs2005/garagebook/internal/datex"
	"github.com/dmitrijs2005/garagebook/internal/deadline"
	"github.com/dmitrijs2005/garagebook/internal/locale"
	"github.com/dmitrijs2005/garagebook/internal/models"
)

// Input is everything printed on the sheet.
type Input struct {
	Vehicle   models.Vehicle
	Intervals []deadline.Result
	Reminders []deadline.Result
	Generated time.Time
}

const (
	fontFamily = "Helvetica"
	lineHeight = 6.0
)

// Filename is the suggested name of the PDF for v.
func Filename(v models.Vehicle) string {
	return strings.TrimSuffix(csvcodec.Filename(v), ".csv") + ".pdf"
}

// Write renders in as a PDF document into w.
func Write(w io.Writer, in Input) error {
	v := in.Vehicle

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(tr("Scheda veicolo - "+v.Label()), false)
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont(fontFamily, "I", 8)
		footer := fmt.Sprintf("Generato il %s - pagina %d/{nb}", in.Generated.Format(datex.DisplayLayout), pdf.PageNo())
		pdf.CellFormat(0, 10, tr(footer), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	pdf.SetFont(fontFamily, "B", 18)
	pdf.Cell(0, 10, tr(v.Label()))
	pdf.Ln(12)

	pdf.SetFont(fontFamily, "", 11)
	info := [][2]string{
		{"Tipo", string(v.VehicleType)},
		{"Marca", v.Brand},
		{"Modello", v.Model},
		{"Anno", strconv.Itoa(v.Year)},
		{"Targa", v.Plate},
		{"Km attuali", locale.Int(v.CurrentKm) + " km"},
	}
	for _, kv := range info {
		pdf.CellFormat(35, lineHeight, tr(kv[0]+":"), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, lineHeight, tr(orDash(kv[1])), "", 1, "L", false, 0, "")
	}

	heading(pdf, tr, "Scadenze")
	for _, r := range append(append([]deadline.Result{}, in.Intervals...), in.Reminders...) {
		statusCell(pdf, r.Status)
		line := r.Label + ": " + strings.TrimPrefix(r.Message, "⚠️ ")
		pdf.MultiCell(0, lineHeight, tr(line), "", "L", false)
	}
	if len(in.Intervals)+len(in.Reminders) == 0 {
		pdf.Cell(0, lineHeight, tr(deadline.NoDeadlineMessage))
		pdf.Ln(lineHeight)
	}

	heading(pdf, tr, "Registro manutenzione")
	widths := []float64{25, 30, 75, 25, 25}
	tableHeader(pdf, tr, widths, "Data", "Tipo", "Descrizione", "Km", "Costo")
	for _, e := range v.MaintenanceLog {
		cost := ""
		if e.Cost != nil {
			cost = locale.Money(*e.Cost)
		}
		tableRow(pdf, tr, widths,
			datex.Display(e.Date), e.Type.Label(), e.Description, locale.Int(e.Km), cost)
	}

	heading(pdf, tr, "Registro chilometri")
	widths = []float64{30, 35, 115}
	tableHeader(pdf, tr, widths, "Data", "Km", "Note")
	for _, e := range v.MileageChronological() {
		tableRow(pdf, tr, widths, datex.Display(e.Date), locale.Int(e.Km), e.Note)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}

func heading(pdf *gofpdf.Fpdf, tr func(string) string, title string) {
	pdf.Ln(4)
	pdf.SetFont(fontFamily, "B", 13)
	pdf.Cell(0, 8, tr(title))
	pdf.Ln(9)
	pdf.SetFont(fontFamily, "", 10)
}

func statusCell(pdf *gofpdf.Fpdf, s deadline.Status) {
	switch s {
	case deadline.StatusOverdue:
		pdf.SetFillColor(220, 53, 69)
	case deadline.StatusWarning:
		pdf.SetFillColor(255, 193, 7)
	default:
		pdf.SetFillColor(40, 167, 69)
	}
	pdf.CellFormat(4, lineHeight, "", "", 0, "L", true, 0, "")
	pdf.CellFormat(2, lineHeight, "", "", 0, "L", false, 0, "")
}

func tableHeader(pdf *gofpdf.Fpdf, tr func(string) string, widths []float64, cols ...string) {
	pdf.SetFont(fontFamily, "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for i, c := range cols {
		pdf.CellFormat(widths[i], 7, tr(c), "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont(fontFamily, "", 10)
}

func tableRow(pdf *gofpdf.Fpdf, tr func(string) string, widths []float64, cells ...string) {
	for i, c := range cells {
		pdf.CellFormat(widths[i], 7, fit(pdf, tr(c), widths[i]), "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)
}

// fit shortens s so that it fits a cell of width w. s is already
// translated to the single-byte font encoding.
func fit(pdf *gofpdf.Fpdf, s string, w float64) string {
	const margin = 2
	if pdf.GetStringWidth(s) <= w-margin {
		return s
	}
	for len(s) > 0 && pdf.GetStringWidth(s+"...") > w-margin {
		s = s[:len(s)-1]
	}
	return s + "..."
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
