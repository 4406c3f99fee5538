package handler

import (
	"ledger-api/internal/models"
	"ledger-api/internal/repository"
	"ledger-api/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type OwnerHandler struct {
	ownerRepo *repository.OwnerRepository
}

func NewOwnerHandler(ownerRepo *repository.OwnerRepository) *OwnerHandler {
	return &OwnerHandler{ownerRepo: ownerRepo}
}

func (h *OwnerHandler) GetOwnerInfo(c *fiber.Ctx) error {
	owner, err := h.ownerRepo.Get()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Owner info not found", err)
	}
	return utils.SuccessResponse(c, "Owner info retrieved successfully", owner)
}

func (h *OwnerHandler) CreateOwnerInfo(c *fiber.Ctx) error {
	var owner models.OwnerInfo
	if err := c.BodyParser(&owner); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	if owner.DisplayName == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Display name is required", nil)
	}

	if err := h.ownerRepo.Create(&owner); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create owner info", err)
	}

	return utils.SuccessResponse(c, "Owner info created successfully", owner)
}

func (h *OwnerHandler) UpdateOwnerInfo(c *fiber.Ctx) error {
	if _, err := h.ownerRepo.Get(); err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Owner info not found", err)
	}

	var owner models.OwnerInfo
	if err := c.BodyParser(&owner); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	if owner.DisplayName == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Display name is required", nil)
	}

	if err := h.ownerRepo.Update(&owner); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update owner info", err)
	}

	return utils.SuccessResponse(c, "Owner info updated successfully", owner)
}
