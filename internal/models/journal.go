package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Posting designations carried on journal lines. Credit amounts are stored
// negated; Debit amounts keep their submitted sign.
const (
	PostingDebit  = "Debit"
	PostingCredit = "Credit"
)

// JournalLine is a single posting within a journal entry. AccountType is the
// free-form category tag matched case-insensitively during report aggregation;
// it is the source of truth for reporting, independent of the stored Account.
type JournalLine struct {
	AccountCode string          `json:"account_code"`
	AccountType string          `json:"account_type"`
	Amount      decimal.Decimal `json:"amount"`
	PostingType string          `json:"posting_type"`
}

type JournalEntry struct {
	ID                  int           `db:"id" json:"id"`
	Date                string        `db:"date" json:"date"`
	JournalLines        []JournalLine `db:"-" json:"journal_lines"`
	LinesBlob           string        `db:"journal_lines" json:"-"`
	Description         string        `db:"description" json:"description"`
	Posted              bool          `db:"posted" json:"posted"`
	JournalType         JournalType   `db:"journal_type" json:"journal_type"`
	ValidateJournalType bool          `db:"validate_journal_type" json:"validate_journal_type"`
	CreatedAt           time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt           time.Time     `db:"updated_at" json:"updated_at"`
}

type JournalEntryRequest struct {
	Date                string        `json:"date"`
	JournalLines        []JournalLine `json:"journal_lines"`
	Description         string        `json:"description"`
	Posted              *bool         `json:"posted"`
	JournalType         JournalType   `json:"journal_type"`
	ValidateJournalType bool          `json:"validate_journal_type"`
}

// AccountCodes returns the distinct account codes referenced by the entry, in
// first-appearance order.
func (e *JournalEntry) AccountCodes() []string {
	seen := make(map[string]bool)
	var codes []string
	for _, line := range e.JournalLines {
		if !seen[line.AccountCode] {
			seen[line.AccountCode] = true
			codes = append(codes, line.AccountCode)
		}
	}
	return codes
}

// EncodeLines serializes journal lines into the opaque text blob persisted
// alongside the entry's scalar fields.
func EncodeLines(lines []JournalLine) (string, error) {
	data, err := json.Marshal(lines)
	if err != nil {
		return "", fmt.Errorf("failed to encode journal lines: %w", err)
	}
	return string(data), nil
}

// DecodeLines restores journal lines from the persisted blob.
func DecodeLines(blob string) ([]JournalLine, error) {
	var lines []JournalLine
	if err := json.Unmarshal([]byte(blob), &lines); err != nil {
		return nil, fmt.Errorf("failed to decode journal lines: %w", err)
	}
	return lines, nil
}
