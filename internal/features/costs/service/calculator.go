package service

import (
	"math"

	"trade-compliance/internal/features/costs/domain"
	"trade-compliance/internal/features/costs/ports"
)

const (
	baseClearanceHours = 24.0
	// maxDutyClearanceHours caps the delay contributed by the duty level.
	maxDutyClearanceHours = 120.0
	dutyHoursPerPercent   = 0.5
	taxHoursPerUnitRate   = 24.0
)

// categoryClearanceHours is the extra inspection time for sensitive goods.
var categoryClearanceHours = map[domain.Category]float64{
	domain.CategoryPharmaceuticals: 24,
	domain.CategoryAutomotive:      24,
	domain.CategoryMachinery:       12,
	domain.CategoryElectronics:     4,
}

// Calculator derives landed costs from a RateSource.
// It holds no mutable state and is safe for concurrent use.
type Calculator struct {
	rates ports.RateSource
}

// NewCalculator creates a Calculator over the given rate tables.
func NewCalculator(rates ports.RateSource) *Calculator {
	return &Calculator{
		rates: rates,
	}
}

// DutyRate returns the duty fraction for the pair, or the table default when absent.
func (c *Calculator) DutyRate(destination domain.Destination, category domain.Category) float64 {
	if rate, ok := c.rates.DutyRate(destination, category); ok {
		return rate
	}
	return c.rates.DefaultDutyRate()
}

// TaxRate returns the destination's import tax fraction, or 0 when unknown.
func (c *Calculator) TaxRate(destination domain.Destination) float64 {
	if rate, ok := c.rates.TaxRate(destination); ok {
		return rate
	}
	return 0
}

// Currency returns the destination currency, or the table default when unknown.
func (c *Calculator) Currency(destination domain.Destination) string {
	if code, ok := c.rates.Currency(destination); ok {
		return code
	}
	return c.rates.DefaultCurrency()
}

// EstimateClearanceHours is a heuristic for customs processing time.
// The result is always within [domain.MinClearanceHours, domain.MaxClearanceHours].
func (c *Calculator) EstimateClearanceHours(shipmentValue, importDuty, taxRate float64, category domain.Category) int {
	hours := baseClearanceHours

	dutyPercent := 0.0
	if shipmentValue > 0 {
		dutyPercent = importDuty / shipmentValue * 100
	}
	hours += clamp(dutyPercent*dutyHoursPerPercent, 0, maxDutyClearanceHours)
	hours += taxRate * taxHoursPerUnitRate
	hours += categoryClearanceHours[category]

	if math.IsNaN(hours) {
		return domain.MinClearanceHours
	}
	return int(clamp(hours, domain.MinClearanceHours, domain.MaxClearanceHours))
}

// CalculateCosts computes the full breakdown for one shipment.
func (c *Calculator) CalculateCosts(req domain.ShipmentRequest) domain.CostBreakdown {
	dutyRate := c.DutyRate(req.Destination, req.Category)
	taxRate := c.TaxRate(req.Destination)

	currency := req.Currency
	if currency == "" {
		currency = c.Currency(req.Destination)
	}

	importDuty := req.ShipmentValue * dutyRate
	tax := (req.ShipmentValue + importDuty + req.ShippingCost) * taxRate

	return domain.CostBreakdown{
		Origin:                  req.Origin,
		Destination:             req.Destination,
		Category:                req.Category,
		Currency:                currency,
		ShipmentValue:           req.ShipmentValue,
		ShippingCost:            req.ShippingCost,
		DutyRate:                dutyRate,
		ImportDuty:              importDuty,
		TaxRate:                 taxRate,
		Tax:                     tax,
		ComplianceFee:           req.ShipmentValue * c.rates.ComplianceFeeRate(),
		TotalLandedCost:         req.ShipmentValue + importDuty + tax + req.ShippingCost,
		EstimatedClearanceHours: c.EstimateClearanceHours(req.ShipmentValue, importDuty, taxRate, req.Category),
	}
}

// CalculateBatch costs every request independently, preserving order.
func (c *Calculator) CalculateBatch(reqs []domain.ShipmentRequest) []domain.CostBreakdown {
	out := make([]domain.CostBreakdown, 0, len(reqs))
	for _, req := range reqs {
		out = append(out, c.CalculateCosts(req))
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
