package handlers

import (
	"errors"

	"github.com/StayNest/booking_service/internal/helper/utils"
	"github.com/StayNest/booking_service/internal/services"
	"github.com/gofiber/fiber/v2"
)

type LogHandler struct {
	svc services.ActionLogService
}

func NewLogHandler(svc services.ActionLogService) *LogHandler {
	return &LogHandler{svc: svc}
}

func (h *LogHandler) SetupRoutes(app *fiber.App) {
	app.Get("/logs/:actorId", h.GetBookingLogs)
}

func (h *LogHandler) GetBookingLogs(ctx *fiber.Ctx) error {
	actorID := ctx.Params("actorId")

	// UserContext is cancelled when the client disconnects, which also
	// cancels any pending retry wait.
	logs, err := h.svc.GetBookingLogs(ctx.UserContext(), actorID)
	if err != nil {
		if errors.Is(err, services.ErrActorRequired) {
			return utils.ResponseError(ctx, fiber.StatusBadRequest, "actor id is required")
		}
		return utils.ResponseErrorDetail(ctx, fiber.StatusInternalServerError, "Failed to fetch logs", err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, logs)
}
