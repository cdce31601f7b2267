package domain

// CostBreakdown is the derived cost of a single shipment.
// Amounts are unrounded; presentation layers decide on precision.
type CostBreakdown struct {
	Origin        string      `json:"origin"`
	Destination   Destination `json:"destination"`
	Category      Category    `json:"product_category"`
	Currency      string      `json:"currency"`
	ShipmentValue float64     `json:"shipment_value"`
	ShippingCost  float64     `json:"shipping_cost"`
	// DutyRate and TaxRate are fractions, e.g. 0.22 for 22%.
	DutyRate        float64 `json:"duty_rate"`
	ImportDuty      float64 `json:"import_duty"`
	TaxRate         float64 `json:"tax_rate"`
	Tax             float64 `json:"tax"`
	ComplianceFee   float64 `json:"base_compliance_fee"`
	TotalLandedCost float64 `json:"total_landed_cost"`
	// EstimatedClearanceHours is always within [MinClearanceHours, MaxClearanceHours].
	EstimatedClearanceHours int `json:"estimated_clearance_hours"`
}

const (
	MinClearanceHours = 4
	MaxClearanceHours = 240
)

// TaxableValue is the base the destination tax applies to.
func (b CostBreakdown) TaxableValue() float64 {
	return b.ShipmentValue + b.ImportDuty + b.ShippingCost
}
