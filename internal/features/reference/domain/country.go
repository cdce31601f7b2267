package domain

import "errors"

// ErrCountryNotFound is returned when no profile exists for a country.
var ErrCountryNotFound = errors.New("country not found")

// CountryProfile is the static customs regime summary for one country.
type CountryProfile struct {
	// Key is the lower-case lookup name (e.g. "italy").
	Key                       string                `json:"key" yaml:"key"`
	General                   General               `json:"general" yaml:"general"`
	TradeLogistics            TradeLogistics        `json:"trade_logistics" yaml:"trade_logistics"`
	DocumentationRequirements []DocumentRequirement `json:"documentation_requirements" yaml:"documentation_requirements"`
	RegulatoryEnvironment     RegulatoryEnvironment `json:"regulatory_environment" yaml:"regulatory_environment"`
}

// General holds identity and membership facts.
type General struct {
	CountryName      string `json:"country_name" yaml:"country_name"`
	Capital          string `json:"capital" yaml:"capital"`
	Currency         string `json:"currency" yaml:"currency"`
	ISOCurrencyCode  string `json:"iso_currency_code" yaml:"iso_currency_code"`
	OfficialLanguage string `json:"official_language" yaml:"official_language"`
	CountryCode      string `json:"country_code_iso_3166" yaml:"country_code_iso_3166"`
	EUMember         bool   `json:"eu_member" yaml:"eu_member"`
	GCCMember        bool   `json:"gcc_member" yaml:"gcc_member"`
}

// TradeLogistics describes ports, classification and logistics rankings.
type TradeLogistics struct {
	PrimaryPorts     []string `json:"primary_ports" yaml:"primary_ports"`
	PrimaryAirports  []string `json:"primary_airports" yaml:"primary_airports"`
	HSSystem         string   `json:"hs_system" yaml:"hs_system"`
	Incoterms        string   `json:"incoterms" yaml:"incoterms"`
	DocumentStandard string   `json:"document_standard" yaml:"document_standard"`
	EaseOfDoingRank  int      `json:"ease_of_doing_rank" yaml:"ease_of_doing_rank"`
	LPIScore         float64  `json:"lpi_score" yaml:"lpi_score"`
}

// DocumentRequirement is either a plain required/not-required flag or a free-text note.
type DocumentRequirement struct {
	Document string `json:"document" yaml:"document"`
	Required bool   `json:"required" yaml:"required"`
	Note     string `json:"note,omitempty" yaml:"note"`
}

// Status renders the requirement the way it is displayed to users.
func (d DocumentRequirement) Status() string {
	if d.Note != "" {
		return d.Note
	}
	if d.Required {
		return "Required"
	}
	return "Not Required"
}

// RegulatoryEnvironment summarizes customs law, tariffs and standards.
type RegulatoryEnvironment struct {
	CustomsProcedure string   `json:"customs_procedure" yaml:"customs_procedure"`
	ImportTariffs    string   `json:"import_tariffs" yaml:"import_tariffs"`
	VATOnImports     string   `json:"vat_on_imports" yaml:"vat_on_imports"`
	RestrictedItems  []string `json:"restricted_items" yaml:"restricted_items"`
	Standards        string   `json:"standards" yaml:"standards"`
}
