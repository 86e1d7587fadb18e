package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// Every response uses the same envelope:
// {success, data?, message?, errors?, details?}.

func respondData(c *fiber.Ctx, data interface{}) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

func respondMessage(c *fiber.Ctx, status int, message, details string, data interface{}) error {
	body := fiber.Map{
		"success": true,
		"message": message,
	}
	if data != nil {
		body["data"] = data
	}
	if details != "" {
		body["details"] = details
	}
	return c.Status(status).JSON(body)
}

func respondError(c *fiber.Ctx, status int, message, details string) error {
	body := fiber.Map{
		"success": false,
		"message": message,
	}
	if details != "" {
		body["details"] = details
	}
	return c.Status(status).JSON(body)
}

func respondValidation(c *fiber.Ctx, errs map[string][]string) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"success": false,
		"message": "Erro de validação",
		"errors":  errs,
		"details": "Verifique os campos destacados e corrija os erros",
	})
}

// respondInternal masks the failure. The caller logs the real error before
// calling this; nothing about the store ever reaches the client.
func respondInternal(c *fiber.Ctx, message string) error {
	return respondError(c, fiber.StatusInternalServerError, message,
		"Ocorreu um erro inesperado. Tente novamente.")
}
