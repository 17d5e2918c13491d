package services

import (
	"errors"
	"strings"

	"github.com/StayNest/booking_service/internal/domain"
	"github.com/StayNest/booking_service/internal/dto"
	"github.com/StayNest/booking_service/internal/repository"
)

type ReviewService interface {
	ListReviews() ([]domain.Review, error)
	CreateReview(input dto.ReviewRequest) (*domain.Review, error)
	GetAmenities(location string) ([]string, error)
}

type reviewService struct {
	reviewRepo  repository.ReviewRepository
	amenityRepo repository.AmenityRepository
}

func NewReviewService(reviewRepo repository.ReviewRepository, amenityRepo repository.AmenityRepository) ReviewService {
	return &reviewService{
		reviewRepo:  reviewRepo,
		amenityRepo: amenityRepo,
	}
}

func (r *reviewService) ListReviews() ([]domain.Review, error) {
	return r.reviewRepo.ListReviews()
}

func (r *reviewService) CreateReview(input dto.ReviewRequest) (*domain.Review, error) {
	if strings.TrimSpace(input.Content) == "" {
		return nil, errors.New("review content is required")
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, errors.New("rating must be between 1 and 5")
	}

	return r.reviewRepo.CreateReview(&domain.Review{
		Name:    strings.TrimSpace(input.Name),
		Title:   strings.TrimSpace(input.Title),
		Content: strings.TrimSpace(input.Content),
		Rating:  input.Rating,
	})
}

func (r *reviewService) GetAmenities(location string) ([]string, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, repository.ErrAmenityNotFound
	}

	amenity, err := r.amenityRepo.FindByLocation(location)
	if err != nil {
		return nil, err
	}
	return amenity.Amenities, nil
}
