package worker

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TypeBalanceRecalculate = "balance:recalculate"

// BalanceRecalculatePayload names the account codes whose running balances
// need recomputing after a journal write.
type BalanceRecalculatePayload struct {
	AccountCodes []string `json:"account_codes"`
}

func NewBalanceRecalculateTask(accountCodes []string) (*asynq.Task, error) {
	payload, err := json.Marshal(BalanceRecalculatePayload{AccountCodes: accountCodes})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeBalanceRecalculate, payload), nil
}
