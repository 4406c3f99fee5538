package service

import (
	"strings"
	"time"

	"ledger-api/internal/models"

	"github.com/shopspring/decimal"
)

// Report buckets. A journal line whose account_type tag (matched
// case-insensitively) is not in the bucket set of the report being built is
// excluded from that report's sums; this is a filter, not an error.
var (
	profitAndLossBuckets = []string{"revenue", "cogs", "expense", "other_income", "other_expenses"}
	balanceSheetBuckets  = []string{"asset", "liability", "equity", "revenue", "expense"}
)

// ReportOptions control report assembly.
type ReportOptions struct {
	Currency string
	// LegacyNetIncome reproduces the historical assembly ordering in which
	// net income was finalized before net other income had been derived, so
	// net income excludes the other-income section entirely. The default
	// ordering folds the derived net other income into net income.
	LegacyNetIncome bool
}

type ReportService struct {
	store JournalStore
	opts  ReportOptions
}

func NewReportService(store JournalStore, opts ReportOptions) *ReportService {
	if opts.Currency == "" {
		opts.Currency = "USD"
	}
	return &ReportService{store: store, opts: opts}
}

// bucketTotals accumulates per-account-code amounts for one bucket, keeping
// account codes in first-appearance order.
type bucketTotals struct {
	order []string
	sums  map[string]decimal.Decimal
}

func newBucketTotals() *bucketTotals {
	return &bucketTotals{sums: make(map[string]decimal.Decimal)}
}

func (b *bucketTotals) add(key string, amount decimal.Decimal) {
	if _, seen := b.sums[key]; !seen {
		b.order = append(b.order, key)
	}
	b.sums[key] = b.sums[key].Add(amount)
}

// collectBuckets scans every line of every entry, classifies it against the
// bucket set, and accumulates amounts keyed by "account_code_<code>".
func collectBuckets(entries []models.JournalEntry, bucketNames []string) map[string]*bucketTotals {
	buckets := make(map[string]*bucketTotals, len(bucketNames))
	for _, name := range bucketNames {
		buckets[name] = newBucketTotals()
	}

	for _, entry := range entries {
		for _, line := range entry.JournalLines {
			key := strings.ToLower(line.AccountType)
			bucket, ok := buckets[key]
			if !ok {
				continue
			}
			bucket.add("account_code_"+line.AccountCode, line.Amount)
		}
	}
	return buckets
}

// capitalize matches the label convention of the report rows: first letter
// upper-cased, the remainder lower-cased ("account_code_400" -> "Account_code_400").
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// accountID extracts the account code from a composite bucket key.
func accountID(key string) string {
	parts := strings.Split(key, "_")
	return parts[len(parts)-1]
}

// dataRows builds one Data row per account code in the bucket. Revenue-like
// buckets display the negated sum so that credit-normalized (negative) revenue
// reads as a conventional positive figure.
func dataRows(bucket *bucketTotals, negate bool) []models.Row {
	rows := make([]models.Row, 0, len(bucket.order))
	for _, key := range bucket.order {
		value := bucket.sums[key]
		if negate {
			value = value.Neg()
		}
		rows = append(rows, models.Row{
			ColData: []models.ColData{
				{ID: accountID(key), Value: capitalize(key)},
				{Value: value.String()},
			},
			Type: "Data",
		})
	}
	return rows
}

func (b *bucketTotals) total() decimal.Decimal {
	total := decimal.Zero
	for _, key := range b.order {
		total = total.Add(b.sums[key])
	}
	return total
}

func (b *bucketTotals) absoluteTotal() decimal.Decimal {
	total := decimal.Zero
	for _, key := range b.order {
		total = total.Add(b.sums[key].Abs())
	}
	return total
}

func detailSection(group, headerLabel string, rows []models.Row, summaryLabel string, summaryValue decimal.Decimal) models.Section {
	return models.Section{
		Header: &models.SectionHeader{
			ColData: []models.ColData{{Value: headerLabel}, {Value: ""}},
		},
		Rows:  &models.SectionRows{Row: rows},
		Type:  "Section",
		Group: group,
		Summary: models.SectionSummary{
			ColData: []models.ColData{{Value: summaryLabel}, {Value: summaryValue.String()}},
		},
	}
}

func summarySection(group, summaryLabel string, summaryValue decimal.Decimal) models.Section {
	return models.Section{
		Type:  "Section",
		Group: group,
		Summary: models.SectionSummary{
			ColData: []models.ColData{{Value: summaryLabel}, {Value: summaryValue.String()}},
		},
	}
}

// ProfitAndLoss aggregates all journal entries within the inclusive window
// into the nine-section profit and loss document. Either bound may be empty,
// leaving that side of the window open.
func (s *ReportService) ProfitAndLoss(startDate, endDate string) (*models.Report, error) {
	entries, err := s.store.FindByDateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, ErrNoEntriesInRange
	}

	buckets := collectBuckets(entries, profitAndLossBuckets)

	revenue := buckets["revenue"]
	cogs := buckets["cogs"]
	expense := buckets["expense"]
	otherIncome := buckets["other_income"]
	otherExpenses := buckets["other_expenses"]

	// Revenue arrives credit-normalized (negative), so the displayed income
	// totals come from absolute values.
	absoluteTotalIncome := revenue.absoluteTotal()
	absoluteTotalOtherIncome := otherIncome.absoluteTotal()
	totalOtherIncome := otherIncome.total()
	totalCOGS := cogs.total()
	totalExpenses := expense.total()
	totalOtherExpenses := otherExpenses.total()

	grossProfit := absoluteTotalIncome.Sub(totalCOGS)
	netOperatingIncome := grossProfit.Sub(totalExpenses)
	netOtherIncome := absoluteTotalOtherIncome.Sub(totalOtherExpenses)

	netIncome := netOperatingIncome.Add(netOtherIncome)
	if s.opts.LegacyNetIncome {
		// Historical ordering: net income was computed while net other
		// income still held its zero initial value.
		netIncome = netOperatingIncome
	}

	sections := []models.Section{
		detailSection("Income", "Income", dataRows(revenue, true), "Total Income", absoluteTotalIncome),
		detailSection("COGS", "Cost of Goods Sold", dataRows(cogs, false), "Total Cost of Goods Sold", totalCOGS),
		summarySection("Gross Profit", "Gross Profit", grossProfit),
		detailSection("Expense", "Expenses", dataRows(expense, false), "Total Expenses", totalExpenses),
		summarySection("Net Operating Income", "Net Operating Income", netOperatingIncome),
		detailSection("Other Income", "Other Income", dataRows(otherIncome, true), "Total Other Income", totalOtherIncome),
		detailSection("Other Expenses", "Other Expenses", dataRows(otherExpenses, false), "Total Other Expenses", totalOtherExpenses),
		summarySection("Net Other Income", "Net Other Income", netOtherIncome),
		summarySection("Net Income", "Net Income", netIncome),
	}

	report := &models.Report{
		Header: models.ReportHeader{
			ReportName: "ProfitAndLoss",
			Option: []models.ReportOption{
				{Name: "AccountingStandard", Value: "GAAP"},
				{Name: "NoReportData", Value: "false"},
			},
			ReportBasis:        "Accrual",
			StartPeriod:        startDate,
			Currency:           s.opts.Currency,
			EndPeriod:          endDate,
			Time:               time.Now().Format("2006-01-02 15:04:05"),
			SummarizeColumnsBy: "Total",
		},
		Rows: models.ReportRows{Row: sections},
		Columns: models.ReportColumns{
			Column: []models.ReportColumn{
				{
					ColType:  "Account",
					ColTitle: "",
					MetaData: []models.ReportOption{{Name: "ColKey", Value: "account"}},
				},
				{
					ColType:  "Money",
					ColTitle: "Total",
					MetaData: []models.ReportOption{{Name: "ColKey", Value: "total"}},
				},
			},
		},
	}

	return report, nil
}

// BalanceSheet buckets the window's lines into asset/liability/equity plus
// revenue/expense and derives retained earnings from the latter two. Statement
// assembly stops here: only the bucket sums and retained earnings are
// returned, no section layout is produced.
func (s *ReportService) BalanceSheet(startDate, endDate string) (*models.BalanceSheetSummary, error) {
	entries, err := s.store.FindByDateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, ErrNoEntriesInRange
	}

	buckets := collectBuckets(entries, balanceSheetBuckets)

	retainedEarnings := decimal.Zero
	retainedEarnings = retainedEarnings.Sub(buckets["revenue"].total())
	retainedEarnings = retainedEarnings.Sub(buckets["expense"].total())

	return &models.BalanceSheetSummary{
		Assets:           buckets["asset"].sums,
		Liabilities:      buckets["liability"].sums,
		Equity:           buckets["equity"].sums,
		Revenue:          buckets["revenue"].sums,
		Expenses:         buckets["expense"].sums,
		RetainedEarnings: retainedEarnings,
	}, nil
}
