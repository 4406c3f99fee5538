package service

import (
	"testing"

	"ledger-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedWorkedExample records the two entries used throughout the report tests:
// a 1000 cash sale and a 200 office-supplies purchase, both in June 2022.
func seedWorkedExample(t *testing.T, svc *JournalService) {
	t.Helper()

	_, err := svc.Create(&models.JournalEntryRequest{
		Date:        "2022-06-22",
		Description: "Garage sale proceeds",
		JournalLines: []models.JournalLine{
			line("101", "BANK", "1000", models.PostingDebit),
			line("400", "REVENUE", "1000", models.PostingCredit),
		},
	})
	require.NoError(t, err)

	_, err = svc.Create(&models.JournalEntryRequest{
		Date:        "2022-06-25",
		Description: "Office supplies",
		JournalLines: []models.JournalLine{
			line("500", "EXPENSE", "200", models.PostingDebit),
			line("101", "BANK", "200", models.PostingCredit),
		},
	})
	require.NoError(t, err)
}

func sectionByGroup(t *testing.T, report *models.Report, group string) models.Section {
	t.Helper()
	for _, section := range report.Rows.Row {
		if section.Group == group {
			return section
		}
	}
	t.Fatalf("section %q not found", group)
	return models.Section{}
}

func summaryValue(section models.Section) string {
	return section.Summary.ColData[1].Value
}

func TestProfitAndLoss_WorkedExample(t *testing.T) {
	store := newFakeJournalStore()
	svc := NewJournalService(store)
	seedWorkedExample(t, svc)

	reports := NewReportService(store, ReportOptions{})
	report, err := reports.ProfitAndLoss("2022-06-01", "2022-06-30")
	require.NoError(t, err)

	income := sectionByGroup(t, report, "Income")
	require.NotNil(t, income.Rows)
	require.Len(t, income.Rows.Row, 1)
	row := income.Rows.Row[0]
	assert.Equal(t, "400", row.ColData[0].ID)
	assert.Equal(t, "Account_code_400", row.ColData[0].Value)
	assert.Equal(t, "1000", row.ColData[1].Value)
	assert.Equal(t, "Data", row.Type)
	assert.Equal(t, "Total Income", income.Summary.ColData[0].Value)
	assert.Equal(t, "1000", summaryValue(income))

	expenses := sectionByGroup(t, report, "Expense")
	require.NotNil(t, expenses.Rows)
	require.Len(t, expenses.Rows.Row, 1)
	assert.Equal(t, "500", expenses.Rows.Row[0].ColData[0].ID)
	assert.Equal(t, "200", expenses.Rows.Row[0].ColData[1].Value)
	assert.Equal(t, "200", summaryValue(expenses))

	assert.Equal(t, "0", summaryValue(sectionByGroup(t, report, "COGS")))
	assert.Equal(t, "1000", summaryValue(sectionByGroup(t, report, "Gross Profit")))
	assert.Equal(t, "800", summaryValue(sectionByGroup(t, report, "Net Operating Income")))
	assert.Equal(t, "0", summaryValue(sectionByGroup(t, report, "Net Other Income")))
	assert.Equal(t, "800", summaryValue(sectionByGroup(t, report, "Net Income")))
}

func TestProfitAndLoss_SectionOrder(t *testing.T) {
	store := newFakeJournalStore()
	svc := NewJournalService(store)
	seedWorkedExample(t, svc)

	reports := NewReportService(store, ReportOptions{})
	report, err := reports.ProfitAndLoss("", "")
	require.NoError(t, err)

	var groups []string
	for _, section := range report.Rows.Row {
		groups = append(groups, section.Group)
	}
	assert.Equal(t, []string{
		"Income",
		"COGS",
		"Gross Profit",
		"Expense",
		"Net Operating Income",
		"Other Income",
		"Other Expenses",
		"Net Other Income",
		"Net Income",
	}, groups)
}

func TestProfitAndLoss_Header(t *testing.T) {
	store := newFakeJournalStore()
	svc := NewJournalService(store)
	seedWorkedExample(t, svc)

	reports := NewReportService(store, ReportOptions{Currency: "EUR"})
	report, err := reports.ProfitAndLoss("2022-06-01", "2022-06-30")
	require.NoError(t, err)

	assert.Equal(t, "ProfitAndLoss", report.Header.ReportName)
	assert.Equal(t, "Accrual", report.Header.ReportBasis)
	assert.Equal(t, "EUR", report.Header.Currency)
	assert.Equal(t, "2022-06-01", report.Header.StartPeriod)
	assert.Equal(t, "2022-06-30", report.Header.EndPeriod)
	assert.Equal(t, "Total", report.Header.SummarizeColumnsBy)

	require.Len(t, report.Columns.Column, 2)
	assert.Equal(t, "Account", report.Columns.Column[0].ColType)
	assert.Equal(t, "Money", report.Columns.Column[1].ColType)
	assert.Equal(t, "Total", report.Columns.Column[1].ColTitle)
}

func TestProfitAndLoss_UnrecognizedTagsExcluded(t *testing.T) {
	store := newFakeJournalStore()
	svc := NewJournalService(store)

	// Bank and equity lines carry tags outside the profit-and-loss bucket set
	// and must not surface in any section.
	_, err := svc.Create(&models.JournalEntryRequest{
		Date: "2022-06-22",
		JournalLines: []models.JournalLine{
			line("101", "BANK", "5000", models.PostingDebit),
			line("300", "EQUITY", "5000", models.PostingCredit),
		},
	})
	require.NoError(t, err)

	reports := NewReportService(store, ReportOptions{})
	report, err := reports.ProfitAndLoss("", "")
	require.NoError(t, err)

	for _, group := range []string{"Income", "COGS", "Expense", "Other Income", "Other Expenses"} {
		section := sectionByGroup(t, report, group)
		if section.Rows != nil {
			assert.Empty(t, section.Rows.Row, "group %s", group)
		}
		assert.Equal(t, "0", summaryValue(section))
	}
}

func TestProfitAndLoss_CaseInsensitiveTags(t *testing.T) {
	store := newFakeJournalStore()
	svc := NewJournalService(store)

	_, err := svc.Create(&models.JournalEntryRequest{
		Date: "2022-06-22",
		JournalLines: []models.JournalLine{
			line("101", "Bank", "300", models.PostingDebit),
			line("400", "Revenue", "300", models.PostingCredit),
		},
	})
	require.NoError(t, err)

	reports := NewReportService(store, ReportOptions{})
	report, err := reports.ProfitAndLoss("", "")
	require.NoError(t, err)

	assert.Equal(t, "300", summaryValue(sectionByGroup(t, report, "Income")))
}

func TestProfitAndLoss_OtherIncomeTotals(t *testing.T) {
	store := newFakeJournalStore()
	svc := NewJournalService(store)
	seedWorkedExample(t, svc)

	// 50 interest received, 10 bank fees.
	_, err := svc.Create(&models.JournalEntryRequest{
		Date: "2022-06-26",
		JournalLines: []models.JournalLine{
			line("101", "BANK", "50", models.PostingDebit),
			line("600", "OTHER_INCOME", "50", models.PostingCredit),
		},
	})
	require.NoError(t, err)
	_, err = svc.Create(&models.JournalEntryRequest{
		Date: "2022-06-27",
		JournalLines: []models.JournalLine{
			line("700", "OTHER_EXPENSES", "10", models.PostingDebit),
			line("101", "BANK", "10", models.PostingCredit),
		},
	})
	require.NoError(t, err)

	reports := NewReportService(store, ReportOptions{})
	report, err := reports.ProfitAndLoss("", "")
	require.NoError(t, err)

	otherIncome := sectionByGroup(t, report, "Other Income")
	require.NotNil(t, otherIncome.Rows)
	require.Len(t, otherIncome.Rows.Row, 1)
	// Displayed row is the negated (positive) figure...
	assert.Equal(t, "50", otherIncome.Rows.Row[0].ColData[1].Value)
	// ...but the section summary keeps the signed credit-normalized total.
	assert.Equal(t, "-50", summaryValue(otherIncome))

	assert.Equal(t, "10", summaryValue(sectionByGroup(t, report, "Other Expenses")))
	// Net other income uses the absolute other-income total: 50 - 10.
	assert.Equal(t, "40", summaryValue(sectionByGroup(t, report, "Net Other Income")))
	// 800 operating + 40 other.
	assert.Equal(t, "840", summaryValue(sectionByGroup(t, report, "Net Income")))
}

func TestProfitAndLoss_LegacyNetIncomeExcludesOtherIncome(t *testing.T) {
	store := newFakeJournalStore()
	svc := NewJournalService(store)
	seedWorkedExample(t, svc)

	_, err := svc.Create(&models.JournalEntryRequest{
		Date: "2022-06-26",
		JournalLines: []models.JournalLine{
			line("101", "BANK", "50", models.PostingDebit),
			line("600", "OTHER_INCOME", "50", models.PostingCredit),
		},
	})
	require.NoError(t, err)

	reports := NewReportService(store, ReportOptions{LegacyNetIncome: true})
	report, err := reports.ProfitAndLoss("", "")
	require.NoError(t, err)

	assert.Equal(t, "50", summaryValue(sectionByGroup(t, report, "Net Other Income")))
	// Legacy ordering: net income settles before net other income exists.
	assert.Equal(t, "800", summaryValue(sectionByGroup(t, report, "Net Income")))
}

func TestProfitAndLoss_NoEntries(t *testing.T) {
	store := newFakeJournalStore()
	reports := NewReportService(store, ReportOptions{})

	_, err := reports.ProfitAndLoss("2022-06-01", "2022-06-30")
	assert.ErrorIs(t, err, ErrNoEntriesInRange)
}

func TestProfitAndLoss_WindowBounds(t *testing.T) {
	store := newFakeJournalStore()
	svc := NewJournalService(store)
	seedWorkedExample(t, svc)

	reports := NewReportService(store, ReportOptions{})

	// Window covering only the sale: expenses stay empty.
	report, err := reports.ProfitAndLoss("2022-06-01", "2022-06-23")
	require.NoError(t, err)
	assert.Equal(t, "1000", summaryValue(sectionByGroup(t, report, "Income")))
	assert.Equal(t, "0", summaryValue(sectionByGroup(t, report, "Expense")))

	// Open start bound.
	report, err = reports.ProfitAndLoss("", "2022-06-23")
	require.NoError(t, err)
	assert.Equal(t, "1000", summaryValue(sectionByGroup(t, report, "Income")))

	// Window past all entries.
	_, err = reports.ProfitAndLoss("2022-07-01", "")
	assert.ErrorIs(t, err, ErrNoEntriesInRange)
}

func TestProfitAndLoss_AccumulatesAcrossEntries(t *testing.T) {
	store := newFakeJournalStore()
	svc := NewJournalService(store)
	seedWorkedExample(t, svc)

	// Second sale against the same revenue account.
	_, err := svc.Create(&models.JournalEntryRequest{
		Date: "2022-06-28",
		JournalLines: []models.JournalLine{
			line("101", "BANK", "500", models.PostingDebit),
			line("400", "REVENUE", "500", models.PostingCredit),
		},
	})
	require.NoError(t, err)

	reports := NewReportService(store, ReportOptions{})
	report, err := reports.ProfitAndLoss("", "")
	require.NoError(t, err)

	income := sectionByGroup(t, report, "Income")
	require.Len(t, income.Rows.Row, 1)
	assert.Equal(t, "1500", income.Rows.Row[0].ColData[1].Value)
	assert.Equal(t, "1500", summaryValue(income))
	assert.Equal(t, "1300", summaryValue(sectionByGroup(t, report, "Net Income")))
}

func TestBalanceSheet_BucketsAndRetainedEarnings(t *testing.T) {
	store := newFakeJournalStore()
	svc := NewJournalService(store)

	_, err := svc.Create(&models.JournalEntryRequest{
		Date: "2022-06-22",
		JournalLines: []models.JournalLine{
			line("101", "ASSET", "1000", models.PostingDebit),
			line("400", "REVENUE", "1000", models.PostingCredit),
		},
	})
	require.NoError(t, err)
	_, err = svc.Create(&models.JournalEntryRequest{
		Date: "2022-06-25",
		JournalLines: []models.JournalLine{
			line("500", "EXPENSE", "200", models.PostingDebit),
			line("201", "LIABILITY", "200", models.PostingCredit),
		},
	})
	require.NoError(t, err)

	reports := NewReportService(store, ReportOptions{})
	summary, err := reports.BalanceSheet("2022-06-01", "2022-06-30")
	require.NoError(t, err)

	assert.Equal(t, "1000", summary.Assets["account_code_101"].String())
	assert.Equal(t, "-200", summary.Liabilities["account_code_201"].String())
	assert.Equal(t, "-1000", summary.Revenue["account_code_400"].String())
	assert.Equal(t, "200", summary.Expenses["account_code_500"].String())
	assert.Empty(t, summary.Equity)

	// -(-1000) - 200.
	assert.Equal(t, "800", summary.RetainedEarnings.String())
}

func TestBalanceSheet_NoEntries(t *testing.T) {
	reports := NewReportService(newFakeJournalStore(), ReportOptions{})
	_, err := reports.BalanceSheet("", "")
	assert.ErrorIs(t, err, ErrNoEntriesInRange)
}
