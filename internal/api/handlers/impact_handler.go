package handlers

import (
	"EcoBite-Backend/domain"
	"EcoBite-Backend/internal/api/presenters"
	"EcoBite-Backend/pkg/impact"

	"github.com/gofiber/fiber/v2"
)

type (
	ImpactHandler interface {
		GetSavings(c *fiber.Ctx) error
		GetTransactions(c *fiber.Ctx) error
		GetImpact(c *fiber.Ctx) error
	}

	impactHandler struct {
		impactService impact.ImpactService
	}
)

func NewImpactHandler(impactService impact.ImpactService) ImpactHandler {
	return &impactHandler{impactService: impactService}
}

func (h *impactHandler) GetSavings(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.impactService.GetSavings(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSavings, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSavings)
}

func (h *impactHandler) GetTransactions(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.impactService.GetTransactions(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetTransactions, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetTransactions)
}

func (h *impactHandler) GetImpact(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.impactService.GetImpact(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetImpact, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetImpact)
}
