package handlers

import (
	"EcoBite-Backend/domain"
	"EcoBite-Backend/internal/api/presenters"
	"EcoBite-Backend/pkg/shopping"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ShoppingHandler interface {
		CreateList(c *fiber.Ctx) error
		GetLists(c *fiber.Ctx) error
		DeleteList(c *fiber.Ctx) error
		AddItem(c *fiber.Ctx) error
		CheckItem(c *fiber.Ctx) error
		PromoteChecked(c *fiber.Ctx) error
	}

	shoppingHandler struct {
		shoppingService shopping.ShoppingService
		validator       *validator.Validate
	}
)

func NewShoppingHandler(shoppingService shopping.ShoppingService, validator *validator.Validate) ShoppingHandler {
	return &shoppingHandler{
		shoppingService: shoppingService,
		validator:       validator,
	}
}

func (h *shoppingHandler) CreateList(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateShoppingListRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateList, err)
	}

	res, err := h.shoppingService.CreateList(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateList, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateList)
}

func (h *shoppingHandler) GetLists(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.shoppingService.GetLists(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetLists, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetLists)
}

func (h *shoppingHandler) DeleteList(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	listID := c.Params("id")

	if err := h.shoppingService.DeleteList(c.Context(), listID, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteList, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteList)
}

func (h *shoppingHandler) AddItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	listID := c.Params("id")
	req := new(domain.AddShoppingItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddListItem, err)
	}

	res, err := h.shoppingService.AddItem(c.Context(), listID, *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddListItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddListItem)
}

func (h *shoppingHandler) CheckItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	itemID := c.Params("itemId")
	req := new(domain.CheckShoppingItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.shoppingService.CheckItem(c.Context(), itemID, *req, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCheckItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessCheckItem)
}

func (h *shoppingHandler) PromoteChecked(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	listID := c.Params("id")
	req := new(domain.PromoteCheckedRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedPromoteItems, err)
	}

	count, err := h.shoppingService.PromoteChecked(c.Context(), listID, *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedPromoteItems, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"promoted_items": count}, fiber.StatusOK, domain.MessageSuccessPromoteItems)
}
