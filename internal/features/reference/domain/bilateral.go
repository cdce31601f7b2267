package domain

import "strconv"

// BilateralContext describes the trade relationship between two countries.
type BilateralContext struct {
	Countries             []string    `json:"countries" yaml:"countries"`
	TradeAgreement        string      `json:"trade_agreement" yaml:"trade_agreement"`
	PreferentialDocuments string      `json:"preferential_documents" yaml:"preferential_documents"`
	KeyTradeGoods         []TradeFlow `json:"key_trade_goods" yaml:"key_trade_goods"`
}

// TradeFlow lists the main goods shipped in one direction.
type TradeFlow struct {
	From  string   `json:"from" yaml:"from"`
	To    string   `json:"to" yaml:"to"`
	Goods []string `json:"goods" yaml:"goods"`
}

// Comparison is a side-by-side view of two country profiles.
type Comparison struct {
	Left  CountryProfile `json:"left"`
	Right CountryProfile `json:"right"`
}

// Metric is one compared row.
type Metric struct {
	Name  string `json:"name"`
	Left  string `json:"left"`
	Right string `json:"right"`
}

// Metrics returns the compared rows in display order.
func (c Comparison) Metrics() []Metric {
	return []Metric{
		{Name: "Currency", Left: c.Left.General.Currency, Right: c.Right.General.Currency},
		{Name: "EU Member", Left: yesNo(c.Left.General.EUMember), Right: yesNo(c.Right.General.EUMember)},
		{
			Name:  "Ease of Business Rank",
			Left:  strconv.Itoa(c.Left.TradeLogistics.EaseOfDoingRank),
			Right: strconv.Itoa(c.Right.TradeLogistics.EaseOfDoingRank),
		},
		{
			Name:  "LPI Score",
			Left:  strconv.FormatFloat(c.Left.TradeLogistics.LPIScore, 'f', 1, 64),
			Right: strconv.FormatFloat(c.Right.TradeLogistics.LPIScore, 'f', 1, 64),
		},
		{Name: "Import VAT/Taxes", Left: c.Left.RegulatoryEnvironment.VATOnImports, Right: c.Right.RegulatoryEnvironment.VATOnImports},
	}
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
