package service

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"trade-compliance/internal/core/logger"
	costs "trade-compliance/internal/features/costs/domain"
	"trade-compliance/internal/features/reporting/domain"
	"trade-compliance/internal/features/reporting/ports"

	"go.uber.org/zap"
)

// ErrNoRecords is returned when a CSV export is requested for an empty report.
var ErrNoRecords = errors.New("no records to export")

// Exporter turns breakdowns into reports and writes them to streams or flat files.
type Exporter struct {
	now       func() time.Time
	renderers map[domain.Format]ports.Renderer
}

// NewExporter creates an Exporter. now stamps every record; nil means time.Now.
func NewExporter(now func() time.Time, renderers ...ports.Renderer) *Exporter {
	if now == nil {
		now = time.Now
	}
	e := &Exporter{
		now:       now,
		renderers: make(map[domain.Format]ports.Renderer, len(renderers)),
	}
	for _, r := range renderers {
		e.renderers[r.Format()] = r
	}
	return e
}

// NewReport stamps breakdowns with the current time, one timestamp per record.
func (e *Exporter) NewReport(breakdowns []costs.CostBreakdown, batch bool) domain.Report {
	records := make([]domain.Record, 0, len(breakdowns))
	for _, b := range breakdowns {
		records = append(records, domain.NewRecord(b, e.now()))
	}
	return domain.Report{Records: records, Batch: batch}
}

// Write renders report to w in the given format.
func (e *Exporter) Write(w io.Writer, format domain.Format, report domain.Report) error {
	r, ok := e.renderers[format]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, format)
	}
	return r.Render(w, report)
}

// ExportFile renders report into the file at path, replacing any existing file.
// An empty CSV export writes nothing and returns ErrNoRecords.
func (e *Exporter) ExportFile(path string, format domain.Format, report domain.Report) error {
	l := logger.Get()

	if format == domain.FormatCSV && len(report.Records) == 0 {
		l.Warn("No rows to write to CSV", zap.String("path", path))
		return ErrNoRecords
	}

	if _, ok := e.renderers[format]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, format)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := e.Write(f, format, report); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}

	l.Info("Wrote report",
		zap.String("format", string(format)),
		zap.String("path", path),
		zap.Int("records", len(report.Records)),
	)
	return nil
}
