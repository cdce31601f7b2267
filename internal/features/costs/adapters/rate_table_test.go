package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"trade-compliance/internal/features/costs/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRateTable(t *testing.T) {
	table, err := DefaultRateTable()
	require.NoError(t, err)

	tests := []struct {
		destination domain.Destination
		category    domain.Category
		rate        float64
	}{
		{domain.DestinationItaly, domain.CategoryTextiles, 0.10},
		{domain.DestinationItaly, domain.CategoryMachinery, 0.07},
		{domain.DestinationItaly, domain.CategoryPharmaceuticals, 0.05},
		{domain.DestinationItaly, domain.CategoryAutomotive, 0.08},
		{domain.DestinationItaly, domain.CategoryFood, 0.15},
		{domain.DestinationIndia, domain.CategoryTextiles, 0.08},
		{domain.DestinationIndia, domain.CategoryMachinery, 0.04},
		{domain.DestinationIndia, domain.CategoryPharmaceuticals, 0.03},
		{domain.DestinationIndia, domain.CategoryAutomotive, 0.06},
		{domain.DestinationIndia, domain.CategoryFood, 0.12},
	}
	for _, tt := range tests {
		t.Run(string(tt.destination)+"/"+string(tt.category), func(t *testing.T) {
			rate, ok := table.DutyRate(tt.destination, tt.category)
			assert.True(t, ok)
			assert.Equal(t, tt.rate, rate)
		})
	}

	_, ok := table.DutyRate(domain.DestinationItaly, domain.CategoryElectronics)
	assert.False(t, ok, "electronics has no explicit duty entry")

	tax, ok := table.TaxRate(domain.DestinationItaly)
	assert.True(t, ok)
	assert.Equal(t, 0.22, tax)

	tax, ok = table.TaxRate(domain.DestinationIndia)
	assert.True(t, ok)
	assert.Equal(t, 0.18, tax)

	_, ok = table.TaxRate("brazil")
	assert.False(t, ok)

	currency, ok := table.Currency(domain.DestinationIndia)
	assert.True(t, ok)
	assert.Equal(t, "INR", currency)

	assert.Equal(t, 0.05, table.DefaultDutyRate())
	assert.Equal(t, 0.02, table.ComplianceFeeRate())
	assert.Equal(t, "USD", table.DefaultCurrency())
}

func TestParseRateTable_Normalizes(t *testing.T) {
	table, err := ParseRateTable([]byte(`
default_duty_rate: 0.01
compliance_fee_rate: 0
default_currency: usd
destinations:
  Germany:
    currency: eur
    tax_rate: 0.19
    duty_rates:
      Electronics: 0.02
`))
	require.NoError(t, err)

	rate, ok := table.DutyRate("germany", domain.CategoryElectronics)
	assert.True(t, ok)
	assert.Equal(t, 0.02, rate)

	currency, ok := table.Currency("germany")
	assert.True(t, ok)
	assert.Equal(t, "EUR", currency)
	assert.Equal(t, "USD", table.DefaultCurrency())
}

func TestParseRateTable_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		invalid bool
	}{
		{
			name:    "Rate Above One",
			doc:     "default_duty_rate: 1.5\ndefault_currency: USD\n",
			invalid: true,
		},
		{
			name:    "Negative Tax",
			doc:     "default_currency: USD\ndestinations:\n  italy:\n    currency: EUR\n    tax_rate: -0.1\n",
			invalid: true,
		},
		{
			name:    "Missing Destination Currency",
			doc:     "default_currency: USD\ndestinations:\n  italy:\n    tax_rate: 0.1\n",
			invalid: true,
		},
		{
			name:    "Missing Default Currency",
			doc:     "default_duty_rate: 0.05\n",
			invalid: true,
		},
		{
			name: "Unknown Field",
			doc:  "default_currency: USD\nsurcharge: 3\n",
		},
		{
			name: "Malformed YAML",
			doc:  "destinations: [",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := ParseRateTable([]byte(tt.doc))
			require.Error(t, err)
			assert.Nil(t, table)
			if tt.invalid {
				assert.ErrorIs(t, err, ErrInvalidRateTable)
			}
		})
	}
}

func TestLoadRateTable(t *testing.T) {
	t.Run("EmptyPathUsesEmbedded", func(t *testing.T) {
		table, err := LoadRateTable("")
		require.NoError(t, err)
		rate, ok := table.DutyRate(domain.DestinationItaly, domain.CategoryTextiles)
		assert.True(t, ok)
		assert.Equal(t, 0.10, rate)
	})

	t.Run("File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rates.yaml")
		doc := "default_duty_rate: 0.07\ndefault_currency: GBP\ndestinations:\n  uk:\n    currency: GBP\n    tax_rate: 0.2\n"
		require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

		table, err := LoadRateTable(path)
		require.NoError(t, err)
		assert.Equal(t, 0.07, table.DefaultDutyRate())
		tax, ok := table.TaxRate("uk")
		assert.True(t, ok)
		assert.Equal(t, 0.2, tax)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := LoadRateTable(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
