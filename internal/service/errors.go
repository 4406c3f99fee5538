package service

import "errors"

// Validation and lookup failures surfaced to API clients. All are terminal;
// the first violation encountered wins and nothing is partially committed.
var (
	ErrEmptyEntry         = errors.New("cannot record an empty journal entry")
	ErrMissingAccountCode = errors.New("all journal lines must contain account_code")
	ErrMissingAmount      = errors.New("all journal lines must contain amount")
	ErrUnbalancedEntry    = errors.New("unbalanced journal lines")
	ErrNoEntriesInRange   = errors.New("no journal entries found in the requested period")
	ErrNotFound           = errors.New("not found")
)
