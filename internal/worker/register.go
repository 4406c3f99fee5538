package worker

import (
	"ledger-api/internal/config"
	"ledger-api/internal/repository"

	"github.com/hibiken/asynq"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

func RegisterHandlers(mux *asynq.ServeMux, db *sqlx.DB, redis *redis.Client, cfg *config.Config) {
	journalRepo := repository.NewJournalRepository(db)
	accountRepo := repository.NewAccountRepository(db)

	balanceHandler := NewBalanceHandler(journalRepo, accountRepo)
	mux.HandleFunc(TypeBalanceRecalculate, balanceHandler.Handle)
}
