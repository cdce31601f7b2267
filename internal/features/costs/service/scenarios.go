package service

import "trade-compliance/internal/features/costs/domain"

// DemoScenarios returns the sample shipments used by batch runs.
func DemoScenarios() []domain.ShipmentRequest {
	return []domain.ShipmentRequest{
		{Destination: domain.DestinationItaly, Origin: "india", Category: domain.CategoryTextiles, ShipmentValue: 10000, ShippingCost: 500},
		{Destination: domain.DestinationItaly, Origin: "india", Category: domain.CategoryMachinery, ShipmentValue: 50000, ShippingCost: 1500},
		{Destination: domain.DestinationIndia, Origin: "italy", Category: domain.CategoryPharmaceuticals, ShipmentValue: 20000, ShippingCost: 800},
		{Destination: domain.DestinationIndia, Origin: "italy", Category: domain.CategoryFood, ShipmentValue: 5000, ShippingCost: 300},
		{Destination: domain.DestinationItaly, Origin: "india", Category: domain.CategoryElectronics, ShipmentValue: 75000, ShippingCost: 2000},
	}
}
