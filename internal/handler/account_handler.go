package handler

import (
	"strconv"

	"ledger-api/internal/models"
	"ledger-api/internal/repository"
	"ledger-api/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type AccountHandler struct {
	accountRepo *repository.AccountRepository
}

func NewAccountHandler(accountRepo *repository.AccountRepository) *AccountHandler {
	return &AccountHandler{accountRepo: accountRepo}
}

func (h *AccountHandler) GetAccounts(c *fiber.Ctx) error {
	params := utils.GetPaginationParams(c)
	offset := utils.GetOffset(params.Page, params.Limit)

	accounts, total, err := h.accountRepo.FindAll(params.Limit, offset, params.Search)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve accounts", err)
	}

	pagination := utils.CalculatePagination(params.Page, params.Limit, int64(total))

	responseData := fiber.Map{
		"accounts":   accounts,
		"pagination": pagination,
	}

	return utils.PaginatedResponseBuilder(c, "Accounts retrieved successfully", responseData, pagination)
}

func (h *AccountHandler) GetAccount(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid account ID", err)
	}

	account, err := h.accountRepo.FindByID(id)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Account not found", err)
	}

	return utils.SuccessResponse(c, "Account retrieved successfully", account)
}

func (h *AccountHandler) CreateAccount(c *fiber.Ctx) error {
	var req models.AccountRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	// Validation
	if req.DisplayName == "" || req.AccountCode == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Display name and account code are required", nil)
	}
	if !models.ValidAccountType(req.AccountType) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Unknown account type", nil)
	}
	if !models.ValidTaxType(req.TaxType) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Unknown tax type", nil)
	}

	group, _ := models.GroupForAccountType(req.AccountType)
	taxType := req.TaxType
	if taxType == "" {
		taxType = models.TaxNone
	}

	account := &models.Account{
		DisplayName:  req.DisplayName,
		AccountCode:  req.AccountCode,
		AccountType:  req.AccountType,
		AccountGroup: group,
		Description:  req.Description,
		TaxType:      taxType,
		Inactive:     req.Inactive,
	}

	if err := h.accountRepo.Create(account); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create account", err)
	}

	return utils.SuccessResponse(c, "Account created successfully", account)
}

func (h *AccountHandler) UpdateAccount(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid account ID", err)
	}

	var req models.UpdateAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	if req.DisplayName == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Display name is required", nil)
	}
	if !models.ValidTaxType(req.TaxType) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Unknown tax type", nil)
	}

	account, err := h.accountRepo.FindByID(id)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Account not found", err)
	}

	account.DisplayName = req.DisplayName
	account.Description = req.Description
	if req.TaxType != "" {
		account.TaxType = req.TaxType
	}
	account.Inactive = req.Inactive

	if err := h.accountRepo.Update(account); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update account", err)
	}

	return utils.SuccessResponse(c, "Account updated successfully", account)
}

func (h *AccountHandler) DeleteAccount(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid account ID", err)
	}

	if _, err := h.accountRepo.FindByID(id); err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Account not found", err)
	}

	if err := h.accountRepo.Delete(id); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete account", err)
	}

	return utils.SuccessResponse(c, "Account deleted successfully", nil)
}
