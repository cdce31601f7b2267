package ports

import "trade-compliance/internal/features/costs/domain"

// RateSource is the secondary port for the static duty and tax tables.
// Implementations must be read-only after construction.
type RateSource interface {
	// DutyRate returns the duty fraction for a (destination, category) pair.
	DutyRate(destination domain.Destination, category domain.Category) (float64, bool)
	// TaxRate returns the import VAT/GST fraction for a destination.
	TaxRate(destination domain.Destination) (float64, bool)
	// Currency returns the ISO currency code used at a destination.
	Currency(destination domain.Destination) (string, bool)
	// DefaultDutyRate applies when a (destination, category) pair is absent.
	DefaultDutyRate() float64
	// DefaultCurrency applies when a destination is absent.
	DefaultCurrency() string
	// ComplianceFeeRate is the fraction of the shipment value charged as a base compliance fee.
	ComplianceFeeRate() float64
}

// CostCalculator is the primary port used by the command surface and reporting.
type CostCalculator interface {
	CalculateCosts(req domain.ShipmentRequest) domain.CostBreakdown
	CalculateBatch(reqs []domain.ShipmentRequest) []domain.CostBreakdown
}
