package handlers

import (
	"EcoBite-Backend/domain"
	"EcoBite-Backend/internal/api/presenters"
	"EcoBite-Backend/pkg/mealplan"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	MealPlanHandler interface {
		SendMessage(c *fiber.Ctx) error
		GetConversations(c *fiber.Ctx) error
		GetMessages(c *fiber.Ctx) error
	}

	mealPlanHandler struct {
		mealPlanService mealplan.MealPlanService
		validator       *validator.Validate
	}
)

func NewMealPlanHandler(mealPlanService mealplan.MealPlanService, validator *validator.Validate) MealPlanHandler {
	return &mealPlanHandler{
		mealPlanService: mealPlanService,
		validator:       validator,
	}
}

func (h *mealPlanHandler) SendMessage(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.SendMessageRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSendMessage, err)
	}

	res, err := h.mealPlanService.SendMessage(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSendMessage, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSendMessage)
}

func (h *mealPlanHandler) GetConversations(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.mealPlanService.GetConversations(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetConversations, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetConversations)
}

func (h *mealPlanHandler) GetMessages(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	conversationID := c.Params("id")

	res, err := h.mealPlanService.GetMessages(c.Context(), conversationID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMessages, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMessages)
}
