package presenters

import (
	"github.com/gofiber/fiber/v2"
)

func SuccessResponse(c *fiber.Ctx, data any, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

func ErrorResponse(c *fiber.Ctx, statusCode int, message string, err error) error {
	errMessage := ""
	if err != nil {
		errMessage = err.Error()
	}
	return c.Status(statusCode).JSON(fiber.Map{
		"success": false,
		"message": message,
		"error":   errMessage,
	})
}
