package worker

import (
	"context"
	"encoding/json"

	"ledger-api/internal/models"
	"ledger-api/internal/utils"

	"github.com/hibiken/asynq"
	"github.com/shopspring/decimal"
)

// JournalSource provides the journal entries balances are derived from.
type JournalSource interface {
	FindByDateRange(startDate, endDate string) ([]models.JournalEntry, error)
}

// AccountBalanceStore writes recomputed balances back to accounts.
type AccountBalanceStore interface {
	UpdateBalanceByCode(code string, balance decimal.Decimal) error
}

// BalanceHandler recomputes account running balances from the full journal.
// Journal posting does not maintain balances inline; this task settles them
// after each write.
type BalanceHandler struct {
	journals JournalSource
	accounts AccountBalanceStore
}

func NewBalanceHandler(journals JournalSource, accounts AccountBalanceStore) *BalanceHandler {
	return &BalanceHandler{journals: journals, accounts: accounts}
}

func (h *BalanceHandler) Handle(ctx context.Context, task *asynq.Task) error {
	var payload BalanceRecalculatePayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return err
	}

	log := utils.GetLogger()
	log.WithField("account_codes", payload.AccountCodes).Info("recalculating account balances")

	totals, err := h.Recalculate(payload.AccountCodes)
	if err != nil {
		return err
	}

	for code, balance := range totals {
		if err := h.accounts.UpdateBalanceByCode(code, balance); err != nil {
			return err
		}
	}
	return nil
}

// Recalculate sums the normalized line amounts of every journal entry for
// each requested account code. Codes with no postings resolve to zero.
func (h *BalanceHandler) Recalculate(accountCodes []string) (map[string]decimal.Decimal, error) {
	wanted := make(map[string]bool, len(accountCodes))
	totals := make(map[string]decimal.Decimal, len(accountCodes))
	for _, code := range accountCodes {
		wanted[code] = true
		totals[code] = decimal.Zero
	}

	// Open bounds: the running balance covers the entire journal.
	entries, err := h.journals.FindByDateRange("", "")
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		for _, line := range entry.JournalLines {
			if wanted[line.AccountCode] {
				totals[line.AccountCode] = totals[line.AccountCode].Add(line.Amount)
			}
		}
	}
	return totals, nil
}
