package handlers

import (
	"errors"

	"github.com/StayNest/booking_service/internal/dto"
	"github.com/StayNest/booking_service/internal/helper/utils"
	"github.com/StayNest/booking_service/internal/services"
	"github.com/gofiber/fiber/v2"
)

type OTPHandler struct {
	svc services.OTPService
}

func NewOTPHandler(svc services.OTPService) *OTPHandler {
	return &OTPHandler{svc: svc}
}

func (h *OTPHandler) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")
	api.Post("/send-otp", h.SendOTP)
}

func (h *OTPHandler) SendOTP(ctx *fiber.Ctx) error {
	var requestBody dto.SendOTPRequest

	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "mobileNumber is required")
	}

	if err := h.svc.SendOTP(ctx.UserContext(), requestBody.MobileNumber); err != nil {
		if errors.Is(err, services.ErrMobileRequired) {
			return utils.ResponseError(ctx, fiber.StatusBadRequest, "mobileNumber is required")
		}
		return utils.ResponseErrorDetail(ctx, fiber.StatusInternalServerError, "Failed to send OTP", err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{
		"message": "OTP sent successfully",
	})
}
