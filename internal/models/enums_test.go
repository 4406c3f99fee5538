package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroupForAccountType(t *testing.T) {
	cases := []struct {
		accountType AccountType
		group       AccountGroup
	}{
		{AccountBank, GroupAsset},
		{AccountAccountsReceivable, GroupAsset},
		{AccountTracking, GroupAsset},
		{AccountAccountsPayable, GroupLiability},
		{AccountSalesTax, GroupLiability},
		{AccountEquity, GroupEquity},
		{AccountRetainedEarnings, GroupEquity},
		{AccountHistoricalAdjustment, GroupEquity},
		{AccountRevenue, GroupRevenue},
		{AccountOtherIncome, GroupRevenue},
		{AccountCOGS, GroupExpense},
		{AccountOtherExpenses, GroupExpense},
		{AccountRounding, GroupExpense},
	}
	for _, tc := range cases {
		group, ok := GroupForAccountType(tc.accountType)
		assert.True(t, ok, "type %s", tc.accountType)
		assert.Equal(t, tc.group, group, "type %s", tc.accountType)
	}
}

func TestGroupForAccountType_Unknown(t *testing.T) {
	_, ok := GroupForAccountType("PETTY_CASH")
	assert.False(t, ok)
	assert.False(t, ValidAccountType("PETTY_CASH"))
}

func TestValidJournalType(t *testing.T) {
	assert.True(t, ValidJournalType(""))
	assert.True(t, ValidJournalType(JournalCashReceipts))
	assert.True(t, ValidJournalType(JournalPayroll))
	assert.False(t, ValidJournalType("GENERAL"))
}

func TestValidTaxType(t *testing.T) {
	assert.True(t, ValidTaxType(""))
	assert.True(t, ValidTaxType(TaxGSTOnImports))
	assert.False(t, ValidTaxType("VAT"))
}
