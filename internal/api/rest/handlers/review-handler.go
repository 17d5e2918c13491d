package handlers

import (
	"errors"

	"github.com/StayNest/booking_service/internal/dto"
	"github.com/StayNest/booking_service/internal/helper/utils"
	"github.com/StayNest/booking_service/internal/repository"
	"github.com/StayNest/booking_service/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ReviewHandler struct {
	svc services.ReviewService
}

func NewReviewHandler(svc services.ReviewService) *ReviewHandler {
	return &ReviewHandler{svc: svc}
}

func (h *ReviewHandler) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	api.Get("/reviews", h.ListReviews)
	api.Post("/reviews", h.CreateReview)
	api.Get("/amenities", h.GetAmenities)
}

func (h *ReviewHandler) ListReviews(ctx *fiber.Ctx) error {
	reviews, err := h.svc.ListReviews()
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "Failed to fetch reviews")
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, reviews)
}

func (h *ReviewHandler) CreateReview(ctx *fiber.Ctx) error {
	var requestBody dto.ReviewRequest

	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	review, err := h.svc.CreateReview(requestBody)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	return utils.ResponseSuccess(ctx, fiber.StatusCreated, review)
}

func (h *ReviewHandler) GetAmenities(ctx *fiber.Ctx) error {
	location := ctx.Query("location")

	amenities, err := h.svc.GetAmenities(location)
	if err != nil {
		if errors.Is(err, repository.ErrAmenityNotFound) {
			return utils.ResponseError(ctx, fiber.StatusNotFound, "Amenities not found for the specified location")
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "Internal server error")
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, dto.AmenitiesResponse{Amenities: amenities})
}
