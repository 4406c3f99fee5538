package models

import "github.com/shopspring/decimal"

// Report document structure. Field names and nesting follow the conventional
// accounting-report JSON layout: a Header with period metadata, a Rows block of
// Section nodes, and a Columns descriptor for the two display columns.

type ColData struct {
	ID    string `json:"id,omitempty"`
	Value string `json:"value"`
}

type ReportOption struct {
	Name  string `json:"Name"`
	Value string `json:"Value"`
}

type ReportHeader struct {
	ReportName         string         `json:"ReportName"`
	Option             []ReportOption `json:"Option"`
	ReportBasis        string         `json:"ReportBasis"`
	StartPeriod        string         `json:"StartPeriod"`
	Currency           string         `json:"Currency"`
	EndPeriod          string         `json:"EndPeriod"`
	Time               string         `json:"Time"`
	SummarizeColumnsBy string         `json:"SummarizeColumnsBy"`
}

// Row is a single data row within a section: account label and amount.
type Row struct {
	ColData []ColData `json:"ColData"`
	Type    string    `json:"type"`
}

type SectionHeader struct {
	ColData []ColData `json:"ColData"`
}

type SectionRows struct {
	Row []Row `json:"Row"`
}

type SectionSummary struct {
	ColData []ColData `json:"ColData"`
}

// Section is one node of the report tree. Header and Rows are present only for
// groups that list per-account rows; summary-only groups (Gross Profit, the
// net lines) carry just the Summary.
type Section struct {
	Header  *SectionHeader `json:"Header,omitempty"`
	Rows    *SectionRows   `json:"Rows,omitempty"`
	Type    string         `json:"type"`
	Group   string         `json:"group"`
	Summary SectionSummary `json:"Summary"`
}

type ReportRows struct {
	Row []Section `json:"Row"`
}

type ReportColumn struct {
	ColType  string         `json:"ColType"`
	ColTitle string         `json:"ColTitle"`
	MetaData []ReportOption `json:"MetaData"`
}

type ReportColumns struct {
	Column []ReportColumn `json:"Column"`
}

type Report struct {
	Header  ReportHeader  `json:"Header"`
	Rows    ReportRows    `json:"Rows"`
	Columns ReportColumns `json:"Columns"`
}

// BalanceSheetSummary holds the per-account-code bucket sums for the balance
// sheet window plus the derived retained earnings. The full statement layout
// is intentionally not assembled; only these aggregates are produced.
type BalanceSheetSummary struct {
	Assets           map[string]decimal.Decimal `json:"asset"`
	Liabilities      map[string]decimal.Decimal `json:"liability"`
	Equity           map[string]decimal.Decimal `json:"equity"`
	Revenue          map[string]decimal.Decimal `json:"revenue"`
	Expenses         map[string]decimal.Decimal `json:"expense"`
	RetainedEarnings decimal.Decimal            `json:"retained_earnings"`
}
