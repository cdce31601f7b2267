package service

import (
	"fmt"
	"strings"

	"trade-compliance/internal/features/reference/domain"
	"trade-compliance/internal/features/reference/ports"
)

// ReferenceService answers questions about the static customs profiles.
type ReferenceService struct {
	store ports.ProfileStore
}

// NewReferenceService creates a new ReferenceService.
func NewReferenceService(store ports.ProfileStore) *ReferenceService {
	return &ReferenceService{
		store: store,
	}
}

// Country returns the profile for name, matched case-insensitively.
func (s *ReferenceService) Country(name string) (*domain.CountryProfile, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	profile, ok := s.store.Profile(key)
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, domain.ErrCountryNotFound)
	}
	return &profile, nil
}

// Countries returns every known profile.
func (s *ReferenceService) Countries() []domain.CountryProfile {
	return s.store.Profiles()
}

// Bilateral returns the bilateral trade context.
func (s *ReferenceService) Bilateral() domain.BilateralContext {
	return s.store.Bilateral()
}

// Compare places two profiles side by side. Both countries must exist.
func (s *ReferenceService) Compare(left, right string) (*domain.Comparison, error) {
	l, err := s.Country(left)
	if err != nil {
		return nil, err
	}
	r, err := s.Country(right)
	if err != nil {
		return nil, err
	}
	return &domain.Comparison{Left: *l, Right: *r}, nil
}
