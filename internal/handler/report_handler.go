package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"ledger-api/internal/config"
	"ledger-api/internal/service"
	"ledger-api/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type ReportHandler struct {
	reportService *service.ReportService
	excelService  *service.ExcelService
	redis         *redis.Client
	cfg           *config.Config
}

func NewReportHandler(reportService *service.ReportService, redisClient *redis.Client, cfg *config.Config) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		excelService:  service.NewExcelService(),
		redis:         redisClient,
		cfg:           cfg,
	}
}

func (h *ReportHandler) GetProfitAndLoss(c *fiber.Ctx) error {
	startDate, endDate, err := reportPeriod(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid date, expected YYYY-MM-DD", err)
	}

	cacheKey := h.cacheKey("pnl", startDate, endDate)
	if cached, ok := h.cacheGet(cacheKey); ok {
		return utils.SuccessResponse(c, "Profit and loss report generated successfully", cached)
	}

	report, err := h.reportService.ProfitAndLoss(startDate, endDate)
	if err != nil {
		return reportErrorResponse(c, err)
	}

	h.cacheSet(cacheKey, report)

	return utils.SuccessResponse(c, "Profit and loss report generated successfully", report)
}

func (h *ReportHandler) ExportProfitAndLoss(c *fiber.Ctx) error {
	startDate, endDate, err := reportPeriod(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid date, expected YYYY-MM-DD", err)
	}

	report, err := h.reportService.ProfitAndLoss(startDate, endDate)
	if err != nil {
		return reportErrorResponse(c, err)
	}

	exportFileName := fmt.Sprintf("profit_and_loss_%s.xlsx", uuid.New().String()[:8])
	exportPath := filepath.Join(h.cfg.ExportPath, exportFileName)

	if err := h.excelService.ExportProfitAndLoss(report, exportPath); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to export report", err)
	}

	return c.Download(exportPath, exportFileName)
}

func (h *ReportHandler) GetBalanceSheet(c *fiber.Ctx) error {
	startDate, endDate, err := reportPeriod(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid date, expected YYYY-MM-DD", err)
	}

	summary, err := h.reportService.BalanceSheet(startDate, endDate)
	if err != nil {
		return reportErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, "Balance sheet aggregates computed successfully", summary)
}

// reportPeriod reads the optional inclusive window bounds off the query
// string. Empty values leave the corresponding side of the window open.
func reportPeriod(c *fiber.Ctx) (string, string, error) {
	startDate := c.Query("start_date")
	endDate := c.Query("end_date")

	for _, d := range []string{startDate, endDate} {
		if d == "" {
			continue
		}
		if _, err := time.Parse("2006-01-02", d); err != nil {
			return "", "", err
		}
	}
	return startDate, endDate, nil
}

func (h *ReportHandler) cacheKey(kind, startDate, endDate string) string {
	version := "0"
	if h.redis != nil {
		if v, err := h.redis.Get(context.Background(), reportVersionKey).Result(); err == nil {
			version = v
		}
	}
	return fmt.Sprintf("reports:%s:v%s:%s:%s", kind, version, startDate, endDate)
}

func (h *ReportHandler) cacheGet(key string) (json.RawMessage, bool) {
	if h.redis == nil {
		return nil, false
	}
	data, err := h.redis.Get(context.Background(), key).Bytes()
	if err != nil {
		return nil, false
	}
	return json.RawMessage(data), true
}

func (h *ReportHandler) cacheSet(key string, report interface{}) {
	if h.redis == nil {
		return
	}
	data, err := json.Marshal(report)
	if err != nil {
		return
	}
	if err := h.redis.Set(context.Background(), key, data, h.cfg.ReportCacheTTL).Err(); err != nil {
		utils.GetLogger().WithError(err).Warn("failed to cache report")
	}
}

func reportErrorResponse(c *fiber.Ctx, err error) error {
	if errors.Is(err, service.ErrNoEntriesInRange) {
		return utils.ErrorResponse(c, fiber.StatusNotFound, err.Error(), nil)
	}
	return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to generate report", err)
}
