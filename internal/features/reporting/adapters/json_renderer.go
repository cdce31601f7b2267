package adapters

import (
	"encoding/json"
	"fmt"
	"io"

	"trade-compliance/internal/features/reporting/domain"
)

// JSONRenderer writes records as JSON. Single reports become an object,
// batch reports an array.
type JSONRenderer struct {
	Pretty bool
}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer(pretty bool) *JSONRenderer {
	return &JSONRenderer{Pretty: pretty}
}

// Format implements ports.Renderer.
func (r *JSONRenderer) Format() domain.Format { return domain.FormatJSON }

// Render implements ports.Renderer.
func (r *JSONRenderer) Render(w io.Writer, report domain.Report) error {
	if !report.Batch && len(report.Records) == 1 {
		return r.Encode(w, report.Records[0])
	}

	records := report.Records
	if records == nil {
		records = []domain.Record{}
	}
	return r.Encode(w, records)
}

// Encode writes any value with the renderer's indentation settings.
func (r *JSONRenderer) Encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if r.Pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	return nil
}
