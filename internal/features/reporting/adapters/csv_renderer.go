package adapters

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"trade-compliance/internal/features/reporting/domain"
)

// csvHeader matches the JSON field names and order.
var csvHeader = []string{
	"timestamp",
	"origin",
	"destination",
	"product_category",
	"currency",
	"shipment_value",
	"shipping_cost",
	"duty_rate",
	"import_duty",
	"tax_rate",
	"tax",
	"base_compliance_fee",
	"total_landed_cost",
	"estimated_clearance_hours",
}

// CSVRenderer writes a header row followed by one row per record.
type CSVRenderer struct{}

// NewCSVRenderer creates a CSVRenderer.
func NewCSVRenderer() *CSVRenderer {
	return &CSVRenderer{}
}

// Format implements ports.Renderer.
func (r *CSVRenderer) Format() domain.Format { return domain.FormatCSV }

// Render implements ports.Renderer.
func (r *CSVRenderer) Render(w io.Writer, report domain.Report) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, rec := range report.Records {
		if err := cw.Write(csvRow(rec)); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func csvRow(rec domain.Record) []string {
	return []string{
		rec.Timestamp,
		rec.Origin,
		rec.Destination,
		rec.ProductCategory,
		rec.Currency,
		formatFloat(rec.ShipmentValue),
		formatFloat(rec.ShippingCost),
		formatFloat(rec.DutyRate),
		formatFloat(rec.ImportDuty),
		formatFloat(rec.TaxRate),
		formatFloat(rec.Tax),
		formatFloat(rec.BaseComplianceFee),
		formatFloat(rec.TotalLandedCost),
		strconv.Itoa(rec.EstimatedClearanceHours),
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
