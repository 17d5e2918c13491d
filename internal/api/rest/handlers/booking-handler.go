package handlers

import (
	"errors"

	"github.com/StayNest/booking_service/internal/dto"
	"github.com/StayNest/booking_service/internal/helper/utils"
	"github.com/StayNest/booking_service/internal/services"
	"github.com/gofiber/fiber/v2"
)

type BookingHandler struct {
	svc services.BookingService
}

func NewBookingHandler(svc services.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

func (h *BookingHandler) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	bookings := api.Group("/bookings")
	bookings.Post("/confirmation", h.SaveConfirmation)
	bookings.Get("/details", h.GetBookingDetails)
	bookings.Post("/", h.SavePaymentReceipt)
}

func (h *BookingHandler) SaveConfirmation(ctx *fiber.Ctx) error {
	var requestBody dto.BookingConfirmationRequest

	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Missing required fields")
	}

	confirmation, err := h.svc.SaveConfirmation(requestBody)
	if err != nil {
		if errors.Is(err, services.ErrMissingFields) {
			return utils.ResponseError(ctx, fiber.StatusBadRequest, "Missing required fields")
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "Failed to save booking confirmation")
	}

	return utils.ResponseSuccess(ctx, fiber.StatusCreated, confirmation)
}

func (h *BookingHandler) GetBookingDetails(ctx *fiber.Ctx) error {
	details, err := h.svc.ListConfirmations()
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "Failed to fetch booking details")
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, details)
}

func (h *BookingHandler) SavePaymentReceipt(ctx *fiber.Ctx) error {
	var requestBody dto.PaymentReceiptRequest

	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	receipt, err := h.svc.SavePaymentReceipt(requestBody)
	if err != nil {
		if errors.Is(err, services.ErrMissingFields) || errors.Is(err, services.ErrInvalidDate) {
			return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "Failed to save payment receipt")
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, receipt)
}
