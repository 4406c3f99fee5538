package service

import (
	"database/sql"
	"testing"
	"time"

	"ledger-api/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeJournalStore is an in-memory JournalStore. Like the real repository it
// persists only the encoded blob and decodes lines on every read.
type fakeJournalStore struct {
	entries map[int]models.JournalEntry
	nextID  int
}

func newFakeJournalStore() *fakeJournalStore {
	return &fakeJournalStore{entries: make(map[int]models.JournalEntry)}
}

func (f *fakeJournalStore) Create(entry *models.JournalEntry) error {
	f.nextID++
	entry.ID = f.nextID
	stored := *entry
	stored.JournalLines = nil
	f.entries[entry.ID] = stored
	return nil
}

func (f *fakeJournalStore) FindByID(id int) (*models.JournalEntry, error) {
	stored, ok := f.entries[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	lines, err := models.DecodeLines(stored.LinesBlob)
	if err != nil {
		return nil, err
	}
	stored.JournalLines = lines
	return &stored, nil
}

func (f *fakeJournalStore) FindAll(limit, offset int, search string) ([]models.JournalEntry, int, error) {
	var entries []models.JournalEntry
	for id := 1; id <= f.nextID; id++ {
		stored, ok := f.entries[id]
		if !ok {
			continue
		}
		lines, err := models.DecodeLines(stored.LinesBlob)
		if err != nil {
			return nil, 0, err
		}
		stored.JournalLines = lines
		entries = append(entries, stored)
	}
	total := len(entries)
	if offset > len(entries) {
		offset = len(entries)
	}
	end := offset + limit
	if end > len(entries) {
		end = len(entries)
	}
	return entries[offset:end], total, nil
}

func (f *fakeJournalStore) FindByDateRange(startDate, endDate string) ([]models.JournalEntry, error) {
	var entries []models.JournalEntry
	for id := 1; id <= f.nextID; id++ {
		stored, ok := f.entries[id]
		if !ok {
			continue
		}
		if startDate != "" && stored.Date < startDate {
			continue
		}
		if endDate != "" && stored.Date > endDate {
			continue
		}
		lines, err := models.DecodeLines(stored.LinesBlob)
		if err != nil {
			return nil, err
		}
		stored.JournalLines = lines
		entries = append(entries, stored)
	}
	return entries, nil
}

func (f *fakeJournalStore) Update(entry *models.JournalEntry) error {
	if _, ok := f.entries[entry.ID]; !ok {
		return sql.ErrNoRows
	}
	stored := *entry
	stored.JournalLines = nil
	f.entries[entry.ID] = stored
	return nil
}

func (f *fakeJournalStore) Delete(id int) error {
	delete(f.entries, id)
	return nil
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func line(code, accountType, amount, posting string) models.JournalLine {
	return models.JournalLine{
		AccountCode: code,
		AccountType: accountType,
		Amount:      dec(amount),
		PostingType: posting,
	}
}

func TestNormalizeLines_EmptyEntry(t *testing.T) {
	assert.ErrorIs(t, NormalizeLines(nil), ErrEmptyEntry)
	assert.ErrorIs(t, NormalizeLines([]models.JournalLine{}), ErrEmptyEntry)
}

func TestNormalizeLines_MissingAccountCode(t *testing.T) {
	lines := []models.JournalLine{line("", "REVENUE", "100", models.PostingDebit)}
	assert.ErrorIs(t, NormalizeLines(lines), ErrMissingAccountCode)
}

func TestNormalizeLines_ZeroAmountTreatedAsMissing(t *testing.T) {
	lines := []models.JournalLine{line("101", "BANK", "0", models.PostingDebit)}
	assert.ErrorIs(t, NormalizeLines(lines), ErrMissingAmount)
}

func TestNormalizeLines_CreditNegation(t *testing.T) {
	lines := []models.JournalLine{
		line("101", "BANK", "1000", models.PostingDebit),
		line("400", "REVENUE", "1000", models.PostingCredit),
	}
	require.NoError(t, NormalizeLines(lines))
	assert.Equal(t, "1000", lines[0].Amount.String())
	assert.Equal(t, "-1000", lines[1].Amount.String())
}

func TestNormalizeLines_NegativeCreditUnchanged(t *testing.T) {
	lines := []models.JournalLine{
		line("101", "BANK", "1000", models.PostingDebit),
		line("400", "REVENUE", "-1000", models.PostingCredit),
	}
	require.NoError(t, NormalizeLines(lines))
	assert.Equal(t, "-1000", lines[1].Amount.String())
}

func TestNormalizeLines_NegativeDebitKeepsSign(t *testing.T) {
	// Debit amounts are never sign-forced: a negative debit stays negative.
	lines := []models.JournalLine{
		line("101", "BANK", "-500", models.PostingDebit),
		line("400", "REVENUE", "500", models.PostingDebit),
	}
	require.NoError(t, NormalizeLines(lines))
	assert.Equal(t, "-500", lines[0].Amount.String())
	assert.Equal(t, "500", lines[1].Amount.String())
}

func TestNormalizeLines_Unbalanced(t *testing.T) {
	lines := []models.JournalLine{
		line("101", "BANK", "1000", models.PostingDebit),
		line("400", "REVENUE", "999", models.PostingCredit),
	}
	assert.ErrorIs(t, NormalizeLines(lines), ErrUnbalancedEntry)
}

func TestCreate_DefaultsDateToCurrentUTCDate(t *testing.T) {
	store := newFakeJournalStore()
	svc := NewJournalService(store)

	entry, err := svc.Create(&models.JournalEntryRequest{
		JournalLines: []models.JournalLine{
			line("101", "BANK", "100", models.PostingDebit),
			line("400", "REVENUE", "100", models.PostingCredit),
		},
	})
	require.NoError(t, err)
	assert.Equal(t, time.Now().UTC().Format("2006-01-02"), entry.Date)
}

func TestCreate_RejectsWithoutPersisting(t *testing.T) {
	store := newFakeJournalStore()
	svc := NewJournalService(store)

	_, err := svc.Create(&models.JournalEntryRequest{
		Date: "2022-06-22",
		JournalLines: []models.JournalLine{
			line("101", "BANK", "1000", models.PostingDebit),
		},
	})
	assert.ErrorIs(t, err, ErrUnbalancedEntry)
	assert.Empty(t, store.entries)
}

func TestCreate_PostedDefaultsTrue(t *testing.T) {
	store := newFakeJournalStore()
	svc := NewJournalService(store)

	entry, err := svc.Create(&models.JournalEntryRequest{
		Date: "2022-06-22",
		JournalLines: []models.JournalLine{
			line("101", "BANK", "100", models.PostingDebit),
			line("400", "REVENUE", "100", models.PostingCredit),
		},
	})
	require.NoError(t, err)
	assert.True(t, entry.Posted)
}

func TestCreateThenGet_RoundTripsLines(t *testing.T) {
	store := newFakeJournalStore()
	svc := NewJournalService(store)

	created, err := svc.Create(&models.JournalEntryRequest{
		Date:        "2022-06-22",
		Description: "Revenue from garage sale",
		JournalType: models.JournalCashReceipts,
		JournalLines: []models.JournalLine{
			line("101", "BANK", "1000", models.PostingDebit),
			line("400", "REVENUE", "1000", models.PostingCredit),
		},
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := svc.Get(created.ID)
	require.NoError(t, err)

	require.Len(t, got.JournalLines, 2)
	for i, want := range created.JournalLines {
		assert.Equal(t, want.AccountCode, got.JournalLines[i].AccountCode)
		assert.Equal(t, want.AccountType, got.JournalLines[i].AccountType)
		assert.Equal(t, want.PostingType, got.JournalLines[i].PostingType)
		assert.True(t, want.Amount.Equal(got.JournalLines[i].Amount))
	}
}

func TestGet_NotFound(t *testing.T) {
	svc := NewJournalService(newFakeJournalStore())
	_, err := svc.Get(42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdate_ReplacesLinesWholesale(t *testing.T) {
	store := newFakeJournalStore()
	svc := NewJournalService(store)

	created, err := svc.Create(&models.JournalEntryRequest{
		Date: "2022-06-22",
		JournalLines: []models.JournalLine{
			line("101", "BANK", "1000", models.PostingDebit),
			line("400", "REVENUE", "1000", models.PostingCredit),
		},
	})
	require.NoError(t, err)

	updated, err := svc.Update(created.ID, &models.JournalEntryRequest{
		Date: "2022-06-23",
		JournalLines: []models.JournalLine{
			line("102", "BANK", "250", models.PostingDebit),
			line("401", "REVENUE", "250", models.PostingCredit),
		},
	})
	require.NoError(t, err)

	got, err := svc.Get(updated.ID)
	require.NoError(t, err)
	require.Len(t, got.JournalLines, 2)
	assert.Equal(t, "102", got.JournalLines[0].AccountCode)
	assert.Equal(t, "-250", got.JournalLines[1].Amount.String())
	assert.Equal(t, "2022-06-23", got.Date)
}

func TestUpdate_ValidatesReplacementLines(t *testing.T) {
	store := newFakeJournalStore()
	svc := NewJournalService(store)

	created, err := svc.Create(&models.JournalEntryRequest{
		Date: "2022-06-22",
		JournalLines: []models.JournalLine{
			line("101", "BANK", "1000", models.PostingDebit),
			line("400", "REVENUE", "1000", models.PostingCredit),
		},
	})
	require.NoError(t, err)

	_, err = svc.Update(created.ID, &models.JournalEntryRequest{
		JournalLines: []models.JournalLine{},
	})
	assert.ErrorIs(t, err, ErrEmptyEntry)
}

func TestDelete_RemovesEntry(t *testing.T) {
	store := newFakeJournalStore()
	svc := NewJournalService(store)

	created, err := svc.Create(&models.JournalEntryRequest{
		Date: "2022-06-22",
		JournalLines: []models.JournalLine{
			line("101", "BANK", "1000", models.PostingDebit),
			line("400", "REVENUE", "1000", models.PostingCredit),
		},
	})
	require.NoError(t, err)

	deleted, err := svc.Delete(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)

	_, err = svc.Get(created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete_NotFound(t *testing.T) {
	svc := NewJournalService(newFakeJournalStore())
	_, err := svc.Delete(7)
	assert.ErrorIs(t, err, ErrNotFound)
}
