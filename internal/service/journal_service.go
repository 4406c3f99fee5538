package service

import (
	"database/sql"
	"errors"
	"time"

	"ledger-api/internal/models"

	"github.com/shopspring/decimal"
)

// JournalStore is the persistence boundary for journal entries. Implemented by
// repository.JournalRepository; tests substitute an in-memory fake.
type JournalStore interface {
	Create(entry *models.JournalEntry) error
	FindByID(id int) (*models.JournalEntry, error)
	FindAll(limit, offset int, search string) ([]models.JournalEntry, int, error)
	FindByDateRange(startDate, endDate string) ([]models.JournalEntry, error)
	Update(entry *models.JournalEntry) error
	Delete(id int) error
}

type JournalService struct {
	store JournalStore
}

func NewJournalService(store JournalStore) *JournalService {
	return &JournalService{store: store}
}

// NormalizeLines validates a proposed set of journal lines and applies the
// credit sign convention in place. Positive Credit amounts are negated before
// storage; Debit amounts keep whatever sign the caller submitted, so a
// negative debit stays negative. A zero amount is treated the same as a
// missing one and rejected.
func NormalizeLines(lines []models.JournalLine) error {
	if len(lines) == 0 {
		return ErrEmptyEntry
	}

	for i := range lines {
		if lines[i].AccountCode == "" {
			return ErrMissingAccountCode
		}
		if lines[i].Amount.IsZero() {
			return ErrMissingAmount
		}
		if lines[i].PostingType == models.PostingCredit && lines[i].Amount.IsPositive() {
			lines[i].Amount = lines[i].Amount.Neg()
		}
	}

	// Double-entry invariant: normalized amounts sum to exactly zero.
	// Decimal arithmetic keeps the exact-equality check meaningful.
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Amount)
	}
	if !total.IsZero() {
		return ErrUnbalancedEntry
	}

	return nil
}

// Create validates and normalizes the proposed entry, then persists it with
// the line items encoded into the storage blob. A missing date defaults to the
// current UTC calendar date.
func (s *JournalService) Create(req *models.JournalEntryRequest) (*models.JournalEntry, error) {
	entry := entryFromRequest(req)

	if entry.Date == "" {
		entry.Date = time.Now().UTC().Format("2006-01-02")
	}

	if err := NormalizeLines(entry.JournalLines); err != nil {
		return nil, err
	}

	blob, err := models.EncodeLines(entry.JournalLines)
	if err != nil {
		return nil, err
	}
	entry.LinesBlob = blob

	if err := s.store.Create(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *JournalService) Get(id int) (*models.JournalEntry, error) {
	entry, err := s.store.FindByID(id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return entry, nil
}

func (s *JournalService) List(limit, offset int, search string) ([]models.JournalEntry, int, error) {
	return s.store.FindAll(limit, offset, search)
}

// Update replaces the entry wholesale; the replacement lines run through the
// same validation pipeline as creation.
func (s *JournalService) Update(id int, req *models.JournalEntryRequest) (*models.JournalEntry, error) {
	existing, err := s.store.FindByID(id)
	if err != nil {
		return nil, mapNotFound(err)
	}

	entry := entryFromRequest(req)
	entry.ID = id
	if entry.Date == "" {
		entry.Date = existing.Date
	}

	if err := NormalizeLines(entry.JournalLines); err != nil {
		return nil, err
	}

	blob, err := models.EncodeLines(entry.JournalLines)
	if err != nil {
		return nil, err
	}
	entry.LinesBlob = blob

	if err := s.store.Update(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// Delete removes the entry by identifier. There are no cascading effects; a
// later report request simply recomputes over the remaining entries.
func (s *JournalService) Delete(id int) (*models.JournalEntry, error) {
	entry, err := s.store.FindByID(id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	if err := s.store.Delete(id); err != nil {
		return nil, err
	}
	return entry, nil
}

func entryFromRequest(req *models.JournalEntryRequest) *models.JournalEntry {
	posted := true
	if req.Posted != nil {
		posted = *req.Posted
	}
	return &models.JournalEntry{
		Date:                req.Date,
		JournalLines:        req.JournalLines,
		Description:         req.Description,
		Posted:              posted,
		JournalType:         req.JournalType,
		ValidateJournalType: req.ValidateJournalType,
	}
}

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
