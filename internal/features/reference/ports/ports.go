package ports

import "trade-compliance/internal/features/reference/domain"

// ProfileStore is the secondary port for static country reference data.
type ProfileStore interface {
	// Profile returns the profile stored under a lower-case key.
	Profile(key string) (domain.CountryProfile, bool)
	// Profiles returns every profile in document order.
	Profiles() []domain.CountryProfile
	// Bilateral returns the bilateral trade context.
	Bilateral() domain.BilateralContext
}
