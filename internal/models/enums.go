package models

// TaxType mirrors the tax designations accepted on accounts and wallets.
type TaxType string

const (
	TaxNone         TaxType = "NONE"
	TaxInput        TaxType = "INPUT"
	TaxOutput       TaxType = "OUTPUT"
	TaxGSTOnImports TaxType = "GSTONIMPORTS"
)

// JournalType categorizes a journal entry by its originating book.
type JournalType string

const (
	JournalCashReceipts      JournalType = "CASH_RECEIPTS"
	JournalCashDisbursements JournalType = "CASH_DISBURSEMENTS"
	JournalSales             JournalType = "SALES"
	JournalPurchase          JournalType = "PURCHASE"
	JournalSalesOrder        JournalType = "SALES_ORDER"
	JournalPurchaseOrder     JournalType = "PURCHASE_ORDER"
	JournalQuotes            JournalType = "QUOTES"
	JournalPayroll           JournalType = "PAYROLL"
)

// AccountType is the detailed classification assigned when an account is created.
type AccountType string

const (
	AccountBank                 AccountType = "BANK"
	AccountAccountsReceivable   AccountType = "ACCOUNTS_RECEIVABLE"
	AccountCurrentAsset         AccountType = "CURRENT_ASSET"
	AccountInventory            AccountType = "INVENTORY"
	AccountFixedAsset           AccountType = "FIXED_ASSET"
	AccountAccountsPayable      AccountType = "ACCOUNTS_PAYABLE"
	AccountCurrentLiability     AccountType = "CURRENT_LIABILITY"
	AccountUnpaidExpenseClaims  AccountType = "UNPAID_EXPENSE_CLAIMS"
	AccountWagesPayable         AccountType = "WAGES_PAYABLE"
	AccountSalesTax             AccountType = "SALES_TAX"
	AccountHistoricalAdjustment AccountType = "HISTORICAL_ADJUSTMENT"
	AccountRounding             AccountType = "ROUNDING"
	AccountTracking             AccountType = "TRACKING"
	AccountNonCurrentLiability  AccountType = "NON_CURRENT_LIABILITY"
	AccountEquity               AccountType = "EQUITY"
	AccountRetainedEarnings     AccountType = "RETAINED_EARNINGS"
	AccountRevenue              AccountType = "REVENUE"
	AccountCOGS                 AccountType = "COGS"
	AccountExpense              AccountType = "EXPENSE"
	AccountOtherExpenses        AccountType = "OTHER_EXPENSES"
	AccountOtherIncome          AccountType = "OTHER_INCOME"
)

// AccountGroup is the top-level statement grouping derived from an AccountType.
type AccountGroup string

const (
	GroupRevenue   AccountGroup = "REVENUE"
	GroupExpense   AccountGroup = "EXPENSE"
	GroupAsset     AccountGroup = "ASSET"
	GroupLiability AccountGroup = "LIABILITY"
	GroupEquity    AccountGroup = "EQUITY"
)

var accountGroups = map[AccountType]AccountGroup{
	AccountBank:                 GroupAsset,
	AccountAccountsReceivable:   GroupAsset,
	AccountCurrentAsset:         GroupAsset,
	AccountInventory:            GroupAsset,
	AccountFixedAsset:           GroupAsset,
	AccountTracking:             GroupAsset,
	AccountAccountsPayable:      GroupLiability,
	AccountCurrentLiability:     GroupLiability,
	AccountUnpaidExpenseClaims:  GroupLiability,
	AccountWagesPayable:         GroupLiability,
	AccountSalesTax:             GroupLiability,
	AccountNonCurrentLiability:  GroupLiability,
	AccountEquity:               GroupEquity,
	AccountRetainedEarnings:     GroupEquity,
	AccountHistoricalAdjustment: GroupEquity,
	AccountRevenue:              GroupRevenue,
	AccountOtherIncome:          GroupRevenue,
	AccountCOGS:                 GroupExpense,
	AccountExpense:              GroupExpense,
	AccountOtherExpenses:        GroupExpense,
	AccountRounding:             GroupExpense,
}

// GroupForAccountType derives the statement group for an account type.
func GroupForAccountType(t AccountType) (AccountGroup, bool) {
	g, ok := accountGroups[t]
	return g, ok
}

// ValidAccountType reports whether t is one of the recognized account types.
func ValidAccountType(t AccountType) bool {
	_, ok := accountGroups[t]
	return ok
}

var journalTypes = map[JournalType]bool{
	JournalCashReceipts:      true,
	JournalCashDisbursements: true,
	JournalSales:             true,
	JournalPurchase:          true,
	JournalSalesOrder:        true,
	JournalPurchaseOrder:     true,
	JournalQuotes:            true,
	JournalPayroll:           true,
}

// ValidJournalType reports whether t is one of the recognized journal types.
// The empty value is allowed since journal_type is optional.
func ValidJournalType(t JournalType) bool {
	return t == "" || journalTypes[t]
}

var taxTypes = map[TaxType]bool{
	TaxNone:         true,
	TaxInput:        true,
	TaxOutput:       true,
	TaxGSTOnImports: true,
}

// ValidTaxType reports whether t is a recognized tax designation.
// The empty value is allowed since tax_type is optional.
func ValidTaxType(t TaxType) bool {
	return t == "" || taxTypes[t]
}
