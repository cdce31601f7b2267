package domain

import (
	"math"
	"testing"
	"time"

	costs "trade-compliance/internal/features/costs/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in       string
		expected Format
		err      error
	}{
		{in: "", expected: FormatText},
		{in: "text", expected: FormatText},
		{in: " JSON ", expected: FormatJSON},
		{in: "csv", expected: FormatCSV},
		{in: "xml", err: ErrUnsupportedFormat},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			f, err := ParseFormat(tt.in)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, f)
		})
	}
}

func TestRound(t *testing.T) {
	assert.Equal(t, 2530.0, Round(2530.0000000000005, 2))
	assert.Equal(t, 0.1235, Round(0.12345678, 4))
	assert.Equal(t, 1.01, Round(1.005000001, 2))
	assert.False(t, math.Signbit(Round(-0.0001, 2)), "negative zero must be normalized")
}

func TestNewRecord(t *testing.T) {
	at := time.Date(2025, 6, 1, 12, 30, 15, 999, time.FixedZone("CEST", 2*60*60))

	rec := NewRecord(costs.CostBreakdown{
		Origin:                  "italy",
		Destination:             costs.DestinationIndia,
		Category:                costs.CategoryPharmaceuticals,
		Currency:                "INR",
		ShipmentValue:           20000,
		ShippingCost:            800,
		DutyRate:                0.03,
		ImportDuty:              600.0000000000001,
		TaxRate:                 0.18,
		Tax:                     3851.9999999999995,
		ComplianceFee:           400,
		TotalLandedCost:         25252,
		EstimatedClearanceHours: 53,
	}, at)

	assert.Equal(t, "2025-06-01T10:30:15Z", rec.Timestamp)
	assert.Equal(t, "india", rec.Destination)
	assert.Equal(t, "pharmaceuticals", rec.ProductCategory)
	assert.Equal(t, 600.0, rec.ImportDuty)
	assert.Equal(t, 3852.0, rec.Tax)
	assert.Equal(t, 0.03, rec.DutyRate)
	assert.Equal(t, 53, rec.EstimatedClearanceHours)
}
