package adapters

import (
	"fmt"
	"io"
	"strings"

	"trade-compliance/internal/features/reporting/domain"
	reference "trade-compliance/internal/features/reference/domain"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	breakdownRuleWidth = 36
	sectionRuleWidth   = 60
)

// TextRenderer produces the human-readable report.
// Numbers are grouped according to the configured language.
type TextRenderer struct {
	printer *message.Printer
	title   cases.Caser
}

// NewTextRenderer creates a TextRenderer for tag, e.g. language.English.
func NewTextRenderer(tag language.Tag) *TextRenderer {
	return &TextRenderer{
		printer: message.NewPrinter(tag),
		title:   cases.Title(tag),
	}
}

// Format implements ports.Renderer.
func (r *TextRenderer) Format() domain.Format { return domain.FormatText }

// Render implements ports.Renderer.
func (r *TextRenderer) Render(w io.Writer, report domain.Report) error {
	var b strings.Builder
	for i, rec := range report.Records {
		if i > 0 {
			b.WriteString("\n")
		}
		r.writeRecord(&b, rec)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func (r *TextRenderer) writeRecord(b *strings.Builder, rec domain.Record) {
	rule := strings.Repeat("-", breakdownRuleWidth)
	p := r.printer

	lines := []string{
		"Trade Compliance Cost Breakdown",
		rule,
		"Origin:             " + rec.Origin,
		"Destination:        " + rec.Destination,
		"Product category:   " + rec.ProductCategory,
		"Currency:           " + rec.Currency,
		"Shipment value:     " + p.Sprintf("%.2f", rec.ShipmentValue),
		"Shipping cost:      " + p.Sprintf("%.2f", rec.ShippingCost),
		"Duty rate:          " + fmt.Sprintf("%.2f%%", rec.DutyRate*100),
		"Import duty:        " + p.Sprintf("%.2f", rec.ImportDuty),
		"Tax rate:           " + fmt.Sprintf("%.2f%%", rec.TaxRate*100),
		"Tax:                " + p.Sprintf("%.2f", rec.Tax),
		"Compliance fee:     " + p.Sprintf("%.2f", rec.BaseComplianceFee),
		"Total landed cost:  " + p.Sprintf("%.2f", rec.TotalLandedCost),
		fmt.Sprintf("Est. clearance (h): %dh", rec.EstimatedClearanceHours),
		rule,
	}
	for _, line := range lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
}

// RenderCountry implements ports.ReferenceRenderer.
func (r *TextRenderer) RenderCountry(w io.Writer, c reference.CountryProfile) error {
	var b strings.Builder
	writeBanner(&b, "TRADE COMPLIANCE DATA: "+strings.ToUpper(c.Key))

	b.WriteString("\nGENERAL INFORMATION:\n")
	bullet(&b, "Official Name", c.General.CountryName)
	bullet(&b, "Capital", c.General.Capital)
	bullet(&b, "Currency", c.General.Currency)
	bullet(&b, "ISO Code", c.General.CountryCode)
	bullet(&b, "EU Member", yesNo(c.General.EUMember))

	t := c.TradeLogistics
	b.WriteString("\nTRADE LOGISTICS:\n")
	bullet(&b, "Primary Ports", strings.Join(t.PrimaryPorts, ", "))
	bullet(&b, "Primary Airports", strings.Join(t.PrimaryAirports, ", "))
	bullet(&b, "HS System", t.HSSystem)
	bullet(&b, "Common Incoterms", t.Incoterms)
	bullet(&b, "Ease of Doing Business Rank", fmt.Sprintf("%d", t.EaseOfDoingRank))
	bullet(&b, "LPI Score", fmt.Sprintf("%.1f", t.LPIScore))

	b.WriteString("\nDOCUMENTATION REQUIREMENTS:\n")
	for _, doc := range c.DocumentationRequirements {
		bullet(&b, r.title.String(strings.ReplaceAll(doc.Document, "_", " ")), doc.Status())
	}

	reg := c.RegulatoryEnvironment
	b.WriteString("\nREGULATORY ENVIRONMENT:\n")
	bullet(&b, "Customs Procedure", reg.CustomsProcedure)
	bullet(&b, "Import Tariffs", reg.ImportTariffs)
	bullet(&b, "VAT on Imports", reg.VATOnImports)
	bullet(&b, "Restricted Items", strings.Join(reg.RestrictedItems, ", "))
	bullet(&b, "Standards", reg.Standards)

	_, err := io.WriteString(w, b.String())
	return err
}

// RenderBilateral implements ports.ReferenceRenderer.
func (r *TextRenderer) RenderBilateral(w io.Writer, bc reference.BilateralContext) error {
	var b strings.Builder
	writeBanner(&b, strings.ToUpper(strings.Join(bc.Countries, "-"))+" BILATERAL TRADE INFORMATION")

	b.WriteString("\nTRADE AGREEMENT:\n")
	b.WriteString("  • " + bc.TradeAgreement + "\n")
	bullet(&b, "Preferential Documents", bc.PreferentialDocuments)

	for _, flow := range bc.KeyTradeGoods {
		fmt.Fprintf(&b, "\nKEY TRADE GOODS - %s TO %s:\n", strings.ToUpper(flow.From), strings.ToUpper(flow.To))
		for i, good := range flow.Goods {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, good)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// RenderComparison implements ports.ReferenceRenderer.
func (r *TextRenderer) RenderComparison(w io.Writer, cmp reference.Comparison) error {
	left, right := r.title.String(cmp.Left.Key), r.title.String(cmp.Right.Key)

	var b strings.Builder
	writeBanner(&b, fmt.Sprintf("COMPARISON: %s vs %s", strings.ToUpper(left), strings.ToUpper(right)))

	b.WriteString("\n")
	fmt.Fprintf(&b, "  %-25s %-20s %-20s\n", "Metric", left, right)
	fmt.Fprintf(&b, "  %s %s %s\n", strings.Repeat("-", 25), strings.Repeat("-", 20), strings.Repeat("-", 20))
	for _, m := range cmp.Metrics() {
		fmt.Fprintf(&b, "  %-25s %-20s %-20s\n", m.Name, m.Left, m.Right)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeBanner(b *strings.Builder, title string) {
	rule := strings.Repeat("=", sectionRuleWidth)
	b.WriteString("\n" + rule + "\n" + title + "\n" + rule + "\n")
}

func bullet(b *strings.Builder, label, value string) {
	b.WriteString("  • " + label + ": " + value + "\n")
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
