package services

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/garagebook/internal/common"
	"github.com/dmitrijs2005/garagebook/internal/csvcodec"
	"github.com/dmitrijs2005/garagebook/internal/filex"
	"github.com/dmitrijs2005/garagebook/internal/garage"
	"github.com/dmitrijs2005/garagebook/internal/models"
	"github.com/dmitrijs2005/garagebook/internal/report"
)

// ImportSummary reports what an import changed.
type ImportSummary struct {
	VehicleUpdated bool
	Mileage        int
	Maintenance    int
	Reminders      int
}

func (s *garageService) ExportCSV(ctx context.Context, dir string) (string, error) {
	v, err := s.Active()
	if err != nil {
		return "", err
	}

	path, err := filex.WriteInDir(dir, csvcodec.Filename(v), []byte(csvcodec.Export(v)))
	if err != nil {
		return "", fmt.Errorf("export csv: %w", err)
	}
	s.log.Info(ctx, "csv exported", "vehicle_id", v.ID, "path", path)
	return path, nil
}

func (s *garageService) ImportCSV(ctx context.Context, path string) (ImportSummary, error) {
	if !csvcodec.AcceptedExtension(path) {
		return ImportSummary{}, fmt.Errorf("%w: %s", common.ErrUnsupportedFile, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return ImportSummary{}, fmt.Errorf("import csv: %w", err)
	}

	p, err := csvcodec.Parse(bytes.NewReader(data))
	if err != nil {
		s.log.Warn(ctx, "csv rejected", "path", path, "error", err)
		return ImportSummary{}, fmt.Errorf("import csv: %w", err)
	}

	err = s.applyActive(ctx, "import csv", func(g models.Garage, id string) (models.Garage, error) {
		return garage.ApplyImport(g, id, p)
	})
	if err != nil {
		return ImportSummary{}, err
	}

	sum := ImportSummary{
		VehicleUpdated: !p.Info.Empty(),
		Mileage:        len(p.MileageLog),
		Maintenance:    len(p.MaintenanceLog),
		Reminders:      len(p.Reminders),
	}
	s.log.Info(ctx, "csv imported", "path", path, "records", p.Records())
	return sum, nil
}

func (s *garageService) ExportPDF(ctx context.Context, dir string, now time.Time) (string, error) {
	v, err := s.Active()
	if err != nil {
		return "", err
	}
	st := s.statusOf(v, now)

	var buf bytes.Buffer
	err = report.Write(&buf, report.Input{
		Vehicle:   v,
		Intervals: st.Intervals,
		Reminders: st.Reminders,
		Generated: now,
	})
	if err != nil {
		return "", fmt.Errorf("export pdf: %w", err)
	}

	path, err := filex.WriteInDir(dir, report.Filename(v), buf.Bytes())
	if err != nil {
		return "", fmt.Errorf("export pdf: %w", err)
	}
	s.log.Info(ctx, "pdf exported", "vehicle_id", v.ID, "path", path)
	return path, nil
}
