package handler

import (
	"strconv"

	"ledger-api/internal/models"
	"ledger-api/internal/repository"
	"ledger-api/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type WalletHandler struct {
	walletRepo *repository.WalletRepository
}

func NewWalletHandler(walletRepo *repository.WalletRepository) *WalletHandler {
	return &WalletHandler{walletRepo: walletRepo}
}

func (h *WalletHandler) GetWallets(c *fiber.Ctx) error {
	params := utils.GetPaginationParams(c)
	offset := utils.GetOffset(params.Page, params.Limit)

	wallets, total, err := h.walletRepo.FindAll(params.Limit, offset, params.Search)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve crypto wallets", err)
	}

	pagination := utils.CalculatePagination(params.Page, params.Limit, int64(total))

	responseData := fiber.Map{
		"crypto_wallets": wallets,
		"pagination":     pagination,
	}

	return utils.PaginatedResponseBuilder(c, "Crypto wallets retrieved successfully", responseData, pagination)
}

func (h *WalletHandler) GetWallet(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid crypto wallet ID", err)
	}

	wallet, err := h.walletRepo.FindByID(id)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Crypto wallet not found", err)
	}

	return utils.SuccessResponse(c, "Crypto wallet retrieved successfully", wallet)
}

func (h *WalletHandler) CreateWallet(c *fiber.Ctx) error {
	var req models.CryptoWalletRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	if req.DisplayName == "" || req.CryptoWalletAddress == "" || req.CryptoWalletType == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Display name, wallet address and wallet type are required", nil)
	}
	if !models.ValidTaxType(req.TaxCode) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Unknown tax code", nil)
	}

	taxCode := req.TaxCode
	if taxCode == "" {
		taxCode = models.TaxNone
	}

	wallet := &models.CryptoWallet{
		DisplayName:         req.DisplayName,
		CryptoWalletAddress: req.CryptoWalletAddress,
		CryptoWalletType:    req.CryptoWalletType,
		Description:         req.Description,
		TaxCode:             taxCode,
		Inactive:            req.Inactive,
	}

	if err := h.walletRepo.Create(wallet); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create crypto wallet", err)
	}

	return utils.SuccessResponse(c, "Crypto wallet created successfully", wallet)
}

func (h *WalletHandler) UpdateWallet(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid crypto wallet ID", err)
	}

	var req models.CryptoWalletRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	if req.DisplayName == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Display name is required", nil)
	}
	if !models.ValidTaxType(req.TaxCode) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Unknown tax code", nil)
	}

	wallet, err := h.walletRepo.FindByID(id)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Crypto wallet not found", err)
	}

	wallet.DisplayName = req.DisplayName
	if req.CryptoWalletAddress != "" {
		wallet.CryptoWalletAddress = req.CryptoWalletAddress
	}
	if req.CryptoWalletType != "" {
		wallet.CryptoWalletType = req.CryptoWalletType
	}
	wallet.Description = req.Description
	if req.TaxCode != "" {
		wallet.TaxCode = req.TaxCode
	}
	wallet.Inactive = req.Inactive

	if err := h.walletRepo.Update(wallet); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update crypto wallet", err)
	}

	return utils.SuccessResponse(c, "Crypto wallet updated successfully", wallet)
}

func (h *WalletHandler) DeleteWallet(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid crypto wallet ID", err)
	}

	if _, err := h.walletRepo.FindByID(id); err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Crypto wallet not found", err)
	}

	if err := h.walletRepo.Delete(id); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete crypto wallet", err)
	}

	return utils.SuccessResponse(c, "Crypto wallet deleted successfully", nil)
}
