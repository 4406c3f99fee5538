package handler

import (
	"context"
	"errors"
	"strconv"

	"ledger-api/internal/models"
	"ledger-api/internal/service"
	"ledger-api/internal/utils"
	"ledger-api/internal/worker"

	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
)

// reportVersionKey is bumped on every journal write so cached reports built
// against the previous journal state stop matching.
const reportVersionKey = "reports:version"

type JournalHandler struct {
	journalService *service.JournalService
	asynqClient    *asynq.Client
	redis          *redis.Client
}

func NewJournalHandler(journalService *service.JournalService, asynqClient *asynq.Client, redisClient *redis.Client) *JournalHandler {
	return &JournalHandler{
		journalService: journalService,
		asynqClient:    asynqClient,
		redis:          redisClient,
	}
}

func (h *JournalHandler) CreateJournalEntry(c *fiber.Ctx) error {
	var req models.JournalEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	if !models.ValidJournalType(req.JournalType) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Unknown journal type", nil)
	}

	entry, err := h.journalService.Create(&req)
	if err != nil {
		return journalErrorResponse(c, err, "Failed to create journal entry")
	}

	h.afterWrite(entry)

	return utils.SuccessResponse(c, "Journal entry created successfully", entry)
}

func (h *JournalHandler) GetJournalEntries(c *fiber.Ctx) error {
	params := utils.GetPaginationParams(c)
	offset := utils.GetOffset(params.Page, params.Limit)

	entries, total, err := h.journalService.List(params.Limit, offset, params.Search)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve journal entries", err)
	}

	pagination := utils.CalculatePagination(params.Page, params.Limit, int64(total))

	responseData := fiber.Map{
		"journal_entries": entries,
		"pagination":      pagination,
	}

	return utils.PaginatedResponseBuilder(c, "Journal entries retrieved successfully", responseData, pagination)
}

func (h *JournalHandler) GetJournalEntry(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid journal entry ID", err)
	}

	entry, err := h.journalService.Get(id)
	if err != nil {
		return journalErrorResponse(c, err, "Failed to retrieve journal entry")
	}

	return utils.SuccessResponse(c, "Journal entry retrieved successfully", entry)
}

func (h *JournalHandler) UpdateJournalEntry(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid journal entry ID", err)
	}

	var req models.JournalEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	if !models.ValidJournalType(req.JournalType) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Unknown journal type", nil)
	}

	entry, err := h.journalService.Update(id, &req)
	if err != nil {
		return journalErrorResponse(c, err, "Failed to update journal entry")
	}

	h.afterWrite(entry)

	return utils.SuccessResponse(c, "Journal entry updated successfully", entry)
}

func (h *JournalHandler) DeleteJournalEntry(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid journal entry ID", err)
	}

	entry, err := h.journalService.Delete(id)
	if err != nil {
		return journalErrorResponse(c, err, "Failed to delete journal entry")
	}

	h.afterWrite(entry)

	return utils.SuccessResponse(c, "Journal entry deleted successfully", nil)
}

// afterWrite settles the side effects of a journal write: account balances are
// recomputed in the background and cached reports are invalidated. Both are
// best-effort; the write itself has already committed.
func (h *JournalHandler) afterWrite(entry *models.JournalEntry) {
	log := utils.GetLogger()

	if h.asynqClient != nil {
		task, err := worker.NewBalanceRecalculateTask(entry.AccountCodes())
		if err == nil {
			_, err = h.asynqClient.Enqueue(task)
		}
		if err != nil {
			log.WithError(err).Warn("failed to enqueue balance recalculation")
		}
	}

	if h.redis != nil {
		if err := h.redis.Incr(context.Background(), reportVersionKey).Err(); err != nil {
			log.WithError(err).Warn("failed to bump report cache version")
		}
	}
}

func journalErrorResponse(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, service.ErrEmptyEntry),
		errors.Is(err, service.ErrMissingAccountCode),
		errors.Is(err, service.ErrMissingAmount),
		errors.Is(err, service.ErrUnbalancedEntry):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, service.ErrNotFound):
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Journal entry not found", nil)
	default:
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, fallback, err)
	}
}
