package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeLines(t *testing.T) {
	lines := []JournalLine{
		{AccountCode: "101", AccountType: "BANK", Amount: decimal.NewFromInt(1000), PostingType: PostingDebit},
		{AccountCode: "400", AccountType: "REVENUE", Amount: decimal.NewFromInt(-1000), PostingType: PostingCredit},
	}

	blob, err := EncodeLines(lines)
	require.NoError(t, err)

	decoded, err := DecodeLines(blob)
	require.NoError(t, err)
	require.Len(t, decoded, 2)
	assert.Equal(t, "101", decoded[0].AccountCode)
	assert.Equal(t, "BANK", decoded[0].AccountType)
	assert.True(t, decoded[0].Amount.Equal(decimal.NewFromInt(1000)))
	assert.True(t, decoded[1].Amount.Equal(decimal.NewFromInt(-1000)))
	assert.Equal(t, PostingCredit, decoded[1].PostingType)
}

func TestDecodeLines_InvalidBlob(t *testing.T) {
	_, err := DecodeLines("not json")
	assert.Error(t, err)
}

func TestJournalEntryJSON_OmitsBlob(t *testing.T) {
	entry := JournalEntry{
		ID:        1,
		Date:      "2022-06-22",
		LinesBlob: `[{"account_code":"101"}]`,
		JournalLines: []JournalLine{
			{AccountCode: "101", AccountType: "BANK", Amount: decimal.NewFromInt(100), PostingType: PostingDebit},
		},
	}

	data, err := json.Marshal(entry)
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Contains(t, out, "journal_lines")
	assert.NotContains(t, out, "LinesBlob")

	lines, ok := out["journal_lines"].([]interface{})
	require.True(t, ok)
	require.Len(t, lines, 1)
}

func TestAccountCodes_DistinctFirstAppearance(t *testing.T) {
	entry := JournalEntry{
		JournalLines: []JournalLine{
			{AccountCode: "101"},
			{AccountCode: "400"},
			{AccountCode: "101"},
			{AccountCode: "500"},
		},
	}
	assert.Equal(t, []string{"101", "400", "500"}, entry.AccountCodes())
}
