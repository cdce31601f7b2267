package domain

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Destination is the importing country, lower-cased.
type Destination string

const (
	DestinationItaly Destination = "italy"
	DestinationIndia Destination = "india"
)

// Category is the product category used for duty lookup, lower-cased.
type Category string

const (
	CategoryTextiles        Category = "textiles"
	CategoryMachinery       Category = "machinery"
	CategoryPharmaceuticals Category = "pharmaceuticals"
	CategoryAutomotive      Category = "automotive"
	CategoryFood            Category = "food"
	CategoryElectronics     Category = "electronics"
)

const (
	defaultDestination = DestinationItaly
	defaultOrigin      = "india"
	defaultCategory    = CategoryElectronics
)

var (
	// ErrNegativeAmount is returned when a shipment value or shipping cost is below zero.
	ErrNegativeAmount = errors.New("amount must be non-negative")
	// ErrInvalidAmount is returned for NaN or infinite amounts.
	ErrInvalidAmount = errors.New("amount must be a finite number")
)

// Destinations lists the destinations the command surface accepts.
func Destinations() []Destination {
	return []Destination{DestinationItaly, DestinationIndia}
}

// Categories lists the known product categories.
func Categories() []Category {
	return []Category{
		CategoryTextiles,
		CategoryMachinery,
		CategoryPharmaceuticals,
		CategoryAutomotive,
		CategoryFood,
		CategoryElectronics,
	}
}

// ParseDestination normalizes s and reports whether it is a supported destination.
func ParseDestination(s string) (Destination, bool) {
	d := Destination(normalize(s))
	for _, known := range Destinations() {
		if d == known {
			return d, true
		}
	}
	return d, false
}

// ParseCategory normalizes s and reports whether it is a known category.
func ParseCategory(s string) (Category, bool) {
	c := Category(normalize(s))
	for _, known := range Categories() {
		if c == known {
			return c, true
		}
	}
	return c, false
}

// ShipmentRequest describes one shipment to be costed.
type ShipmentRequest struct {
	Destination   Destination `json:"destination"`
	Origin        string      `json:"origin"`
	Category      Category    `json:"product_category"`
	ShipmentValue float64     `json:"shipment_value"`
	ShippingCost  float64     `json:"shipping_cost"`
	// Currency overrides the destination currency when set.
	Currency string `json:"currency,omitempty"`
}

// NewShipmentRequest normalizes the text fields and validates the amounts.
// Empty text fields fall back to italy / india / electronics. Unknown
// destinations and categories are kept as given; the calculator handles them.
func NewShipmentRequest(destination, origin, category string, value, shipping float64) (*ShipmentRequest, error) {
	if err := ValidateAmount("shipment value", value); err != nil {
		return nil, err
	}
	if err := ValidateAmount("shipping cost", shipping); err != nil {
		return nil, err
	}

	req := &ShipmentRequest{
		Destination:   Destination(orDefault(normalize(destination), string(defaultDestination))),
		Origin:        orDefault(normalize(origin), defaultOrigin),
		Category:      Category(orDefault(normalize(category), string(defaultCategory))),
		ShipmentValue: value,
		ShippingCost:  shipping,
	}
	return req, nil
}

// WithCurrency returns a copy of the request carrying a currency override.
func (r ShipmentRequest) WithCurrency(currency string) ShipmentRequest {
	r.Currency = strings.ToUpper(strings.TrimSpace(currency))
	return r
}

// ValidateAmount rejects negative, NaN and infinite amounts.
func ValidateAmount(name string, amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return fmt.Errorf("%s %v: %w", name, amount, ErrInvalidAmount)
	}
	if amount < 0 {
		return fmt.Errorf("%s %v: %w", name, amount, ErrNegativeAmount)
	}
	return nil
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
