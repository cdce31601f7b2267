package domain

import (
	"errors"
	"math"
	"strings"
	"time"

	costs "trade-compliance/internal/features/costs/domain"
)

// Format selects a renderer.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// ErrUnsupportedFormat is returned for an unknown output format.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// ParseFormat normalizes s into a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatCSV:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", ErrUnsupportedFormat
	}
}

// TimestampLayout is UTC ISO-8601 at second precision with a Z suffix.
const TimestampLayout = "2006-01-02T15:04:05Z"

// Record is the exported view of a cost breakdown.
// Money is rounded to 2 decimals and rates to 4.
type Record struct {
	Timestamp               string  `json:"timestamp"`
	Origin                  string  `json:"origin"`
	Destination             string  `json:"destination"`
	ProductCategory         string  `json:"product_category"`
	Currency                string  `json:"currency"`
	ShipmentValue           float64 `json:"shipment_value"`
	ShippingCost            float64 `json:"shipping_cost"`
	DutyRate                float64 `json:"duty_rate"`
	ImportDuty              float64 `json:"import_duty"`
	TaxRate                 float64 `json:"tax_rate"`
	Tax                     float64 `json:"tax"`
	BaseComplianceFee       float64 `json:"base_compliance_fee"`
	TotalLandedCost         float64 `json:"total_landed_cost"`
	EstimatedClearanceHours int     `json:"estimated_clearance_hours"`
}

// NewRecord rounds a breakdown for export and stamps it with at.
func NewRecord(b costs.CostBreakdown, at time.Time) Record {
	return Record{
		Timestamp:               at.UTC().Format(TimestampLayout),
		Origin:                  b.Origin,
		Destination:             string(b.Destination),
		ProductCategory:         string(b.Category),
		Currency:                b.Currency,
		ShipmentValue:           Round(b.ShipmentValue, 2),
		ShippingCost:            Round(b.ShippingCost, 2),
		DutyRate:                Round(b.DutyRate, 4),
		ImportDuty:              Round(b.ImportDuty, 2),
		TaxRate:                 Round(b.TaxRate, 4),
		Tax:                     Round(b.Tax, 2),
		BaseComplianceFee:       Round(b.ComplianceFee, 2),
		TotalLandedCost:         Round(b.TotalLandedCost, 2),
		EstimatedClearanceHours: b.EstimatedClearanceHours,
	}
}

// Round rounds half away from zero and never returns negative zero.
func Round(v float64, digits int) float64 {
	p := math.Pow10(digits)
	r := math.Round(v*p) / p
	if r == 0 {
		return 0
	}
	return r
}

// Report is a set of records rendered together.
// Batch reports render as collections even when they hold one record.
type Report struct {
	Records []Record
	Batch   bool
}
