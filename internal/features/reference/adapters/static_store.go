package adapters

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"trade-compliance/internal/core/logger"
	"trade-compliance/internal/features/reference/domain"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

//go:embed countries.yaml
var embeddedCountries []byte

type referenceDocument struct {
	Countries []domain.CountryProfile `yaml:"countries"`
	Bilateral domain.BilateralContext `yaml:"bilateral"`
}

// StaticProfileStore implements ports.ProfileStore over data fixed at load time.
type StaticProfileStore struct {
	order     []string
	profiles  map[string]domain.CountryProfile
	bilateral domain.BilateralContext
}

// DefaultProfileStore returns the reference data compiled into the binary.
func DefaultProfileStore() (*StaticProfileStore, error) {
	return ParseProfiles(embeddedCountries)
}

// LoadProfileStore reads reference data from path. An empty path selects the embedded data.
func LoadProfileStore(path string) (*StaticProfileStore, error) {
	if path == "" {
		return DefaultProfileStore()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read reference data %s: %w", path, err)
	}

	store, err := ParseProfiles(data)
	if err != nil {
		return nil, fmt.Errorf("reference data %s: %w", path, err)
	}

	logger.Get().Debug("Loaded reference data",
		zap.String("path", path),
		zap.Strings("countries", store.order),
	)
	return store, nil
}

// ParseProfiles decodes a YAML reference document.
func ParseProfiles(data []byte) (*StaticProfileStore, error) {
	var doc referenceDocument
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode reference data: %w", err)
	}

	store := &StaticProfileStore{
		profiles:  make(map[string]domain.CountryProfile, len(doc.Countries)),
		bilateral: doc.Bilateral,
	}

	for _, profile := range doc.Countries {
		key := strings.ToLower(strings.TrimSpace(profile.Key))
		if key == "" {
			return nil, fmt.Errorf("country %q has no key", profile.General.CountryName)
		}
		if _, dup := store.profiles[key]; dup {
			return nil, fmt.Errorf("duplicate country key %q", key)
		}
		profile.Key = key
		store.profiles[key] = profile
		store.order = append(store.order, key)
	}

	return store, nil
}

// Profile implements ports.ProfileStore.
func (s *StaticProfileStore) Profile(key string) (domain.CountryProfile, bool) {
	p, ok := s.profiles[key]
	return p, ok
}

// Profiles implements ports.ProfileStore.
func (s *StaticProfileStore) Profiles() []domain.CountryProfile {
	out := make([]domain.CountryProfile, 0, len(s.order))
	for _, key := range s.order {
		out = append(out, s.profiles[key])
	}
	return out
}

// Bilateral implements ports.ProfileStore.
func (s *StaticProfileStore) Bilateral() domain.BilateralContext {
	return s.bilateral
}
