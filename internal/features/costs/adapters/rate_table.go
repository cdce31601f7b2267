package adapters

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"trade-compliance/internal/core/logger"
	"trade-compliance/internal/features/costs/domain"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

//go:embed rates.yaml
var embeddedRates []byte

// ErrInvalidRateTable is returned when a rate document fails validation.
var ErrInvalidRateTable = errors.New("invalid rate table")

// rateDocument is the YAML layout of a rate table.
type rateDocument struct {
	DefaultDutyRate   float64                        `yaml:"default_duty_rate"`
	ComplianceFeeRate float64                        `yaml:"compliance_fee_rate"`
	DefaultCurrency   string                         `yaml:"default_currency"`
	Destinations      map[string]destinationDocument `yaml:"destinations"`
}

type destinationDocument struct {
	Currency  string             `yaml:"currency"`
	TaxRate   float64            `yaml:"tax_rate"`
	DutyRates map[string]float64 `yaml:"duty_rates"`
}

type dutyKey struct {
	destination domain.Destination
	category    domain.Category
}

// StaticRateTable implements ports.RateSource over tables fixed at load time.
type StaticRateTable struct {
	duty              map[dutyKey]float64
	tax               map[domain.Destination]float64
	currency          map[domain.Destination]string
	defaultDutyRate   float64
	defaultCurrency   string
	complianceFeeRate float64
}

// DefaultRateTable returns the table compiled into the binary.
func DefaultRateTable() (*StaticRateTable, error) {
	return ParseRateTable(embeddedRates)
}

// LoadRateTable reads a YAML rate table from path. An empty path selects the embedded table.
func LoadRateTable(path string) (*StaticRateTable, error) {
	if path == "" {
		return DefaultRateTable()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rate table %s: %w", path, err)
	}

	table, err := ParseRateTable(data)
	if err != nil {
		return nil, fmt.Errorf("rate table %s: %w", path, err)
	}

	logger.Get().Debug("Loaded rate table",
		zap.String("path", path),
		zap.Int("destinations", len(table.tax)),
		zap.Int("duty_entries", len(table.duty)),
	)
	return table, nil
}

// ParseRateTable decodes and validates a YAML rate document.
func ParseRateTable(data []byte) (*StaticRateTable, error) {
	var doc rateDocument
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode rate table: %w", err)
	}

	if err := doc.validate(); err != nil {
		return nil, err
	}

	table := &StaticRateTable{
		duty:              make(map[dutyKey]float64),
		tax:               make(map[domain.Destination]float64, len(doc.Destinations)),
		currency:          make(map[domain.Destination]string, len(doc.Destinations)),
		defaultDutyRate:   doc.DefaultDutyRate,
		defaultCurrency:   strings.ToUpper(doc.DefaultCurrency),
		complianceFeeRate: doc.ComplianceFeeRate,
	}

	for name, dest := range doc.Destinations {
		d := domain.Destination(strings.ToLower(strings.TrimSpace(name)))
		table.tax[d] = dest.TaxRate
		table.currency[d] = strings.ToUpper(dest.Currency)
		for category, rate := range dest.DutyRates {
			c := domain.Category(strings.ToLower(strings.TrimSpace(category)))
			table.duty[dutyKey{destination: d, category: c}] = rate
		}
	}

	return table, nil
}

func (doc rateDocument) validate() error {
	if err := checkRate("default_duty_rate", doc.DefaultDutyRate); err != nil {
		return err
	}
	if err := checkRate("compliance_fee_rate", doc.ComplianceFeeRate); err != nil {
		return err
	}
	if strings.TrimSpace(doc.DefaultCurrency) == "" {
		return fmt.Errorf("%w: default_currency is required", ErrInvalidRateTable)
	}

	for name, dest := range doc.Destinations {
		if strings.TrimSpace(dest.Currency) == "" {
			return fmt.Errorf("%w: destination %s has no currency", ErrInvalidRateTable, name)
		}
		if err := checkRate(name+".tax_rate", dest.TaxRate); err != nil {
			return err
		}
		for category, rate := range dest.DutyRates {
			if err := checkRate(name+".duty_rates."+category, rate); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkRate(field string, rate float64) error {
	if math.IsNaN(rate) || rate < 0 || rate > 1 {
		return fmt.Errorf("%w: %s must be within [0, 1], got %v", ErrInvalidRateTable, field, rate)
	}
	return nil
}

// DutyRate implements ports.RateSource.
func (t *StaticRateTable) DutyRate(destination domain.Destination, category domain.Category) (float64, bool) {
	rate, ok := t.duty[dutyKey{destination: destination, category: category}]
	return rate, ok
}

// TaxRate implements ports.RateSource.
func (t *StaticRateTable) TaxRate(destination domain.Destination) (float64, bool) {
	rate, ok := t.tax[destination]
	return rate, ok
}

// Currency implements ports.RateSource.
func (t *StaticRateTable) Currency(destination domain.Destination) (string, bool) {
	code, ok := t.currency[destination]
	return code, ok
}

// DefaultDutyRate implements ports.RateSource.
func (t *StaticRateTable) DefaultDutyRate() float64 { return t.defaultDutyRate }

// DefaultCurrency implements ports.RateSource.
func (t *StaticRateTable) DefaultCurrency() string { return t.defaultCurrency }

// ComplianceFeeRate implements ports.RateSource.
func (t *StaticRateTable) ComplianceFeeRate() float64 { return t.complianceFeeRate }
