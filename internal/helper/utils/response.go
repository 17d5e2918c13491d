package utils

import "github.com/gofiber/fiber/v2"

func ResponseError(ctx *fiber.Ctx, status int, msg string) error {
	return ctx.Status(status).JSON(fiber.Map{
		"message": msg,
	})
}

// ResponseErrorDetail includes the underlying cause next to the message.
func ResponseErrorDetail(ctx *fiber.Ctx, status int, msg string, err error) error {
	return ctx.Status(status).JSON(fiber.Map{
		"message": msg,
		"error":   err.Error(),
	})
}

func ResponseSuccess(ctx *fiber.Ctx, status int, data interface{}) error {
	return ctx.Status(status).JSON(data)
}
