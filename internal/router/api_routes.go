package router

import (
	"ledger-api/internal/config"
	"ledger-api/internal/handler"
	"ledger-api/internal/repository"
	"ledger-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

func SetupAPIRoutes(
	router fiber.Router,
	db *sqlx.DB,
	redis *redis.Client,
	cfg *config.Config,
) {
	// Initialize repositories
	accountRepo := repository.NewAccountRepository(db)
	walletRepo := repository.NewWalletRepository(db)
	ownerRepo := repository.NewOwnerRepository(db)
	journalRepo := repository.NewJournalRepository(db)

	// Initialize services
	journalService := service.NewJournalService(journalRepo)
	reportService := service.NewReportService(journalRepo, service.ReportOptions{
		Currency:        cfg.ReportCurrency,
		LegacyNetIncome: cfg.ReportLegacyNetIncome,
	})

	// Initialize Asynq client (optional - only if Redis is available)
	var asynqClient *asynq.Client
	if redis != nil {
		asynqClient = asynq.NewClient(asynq.RedisClientOpt{
			Addr:     cfg.AsynqRedisAddr,
			Password: cfg.AsynqRedisPassword,
			DB:       cfg.AsynqRedisDB,
		})
	}

	// Initialize handlers
	accountHandler := handler.NewAccountHandler(accountRepo)
	walletHandler := handler.NewWalletHandler(walletRepo)
	ownerHandler := handler.NewOwnerHandler(ownerRepo)
	journalHandler := handler.NewJournalHandler(journalService, asynqClient, redis)
	reportHandler := handler.NewReportHandler(reportService, redis, cfg)

	// Owner info routes (singleton record)
	ownerInfo := router.Group("/owner_info")
	ownerInfo.Get("/", ownerHandler.GetOwnerInfo)
	ownerInfo.Post("/", ownerHandler.CreateOwnerInfo)
	ownerInfo.Put("/", ownerHandler.UpdateOwnerInfo)

	// Account routes
	accounts := router.Group("/accounts")
	accounts.Get("/", accountHandler.GetAccounts)
	accounts.Get("/:id", accountHandler.GetAccount)
	accounts.Post("/", accountHandler.CreateAccount)
	accounts.Put("/:id", accountHandler.UpdateAccount)
	accounts.Delete("/:id", accountHandler.DeleteAccount)

	// Crypto wallet routes
	wallets := router.Group("/crypto_wallets")
	wallets.Get("/", walletHandler.GetWallets)
	wallets.Get("/:id", walletHandler.GetWallet)
	wallets.Post("/", walletHandler.CreateWallet)
	wallets.Put("/:id", walletHandler.UpdateWallet)
	wallets.Delete("/:id", walletHandler.DeleteWallet)

	// Journal entry routes
	journalEntries := router.Group("/journal_entries")
	journalEntries.Get("/", journalHandler.GetJournalEntries)
	journalEntries.Get("/:id", journalHandler.GetJournalEntry)
	journalEntries.Post("/", journalHandler.CreateJournalEntry)
	journalEntries.Put("/:id", journalHandler.UpdateJournalEntry)
	journalEntries.Delete("/:id", journalHandler.DeleteJournalEntry)

	// Report routes
	reports := router.Group("/reports")
	reports.Get("/profit_and_loss", reportHandler.GetProfitAndLoss)
	reports.Get("/profit_and_loss/export", reportHandler.ExportProfitAndLoss)
	reports.Get("/balance_sheet", reportHandler.GetBalanceSheet)
}
