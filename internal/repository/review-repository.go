package repository

import (
	"errors"
	"log"

	"github.com/StayNest/booking_service/internal/domain"
	"gorm.io/gorm"
)

type ReviewRepository interface {
	CreateReview(review *domain.Review) (*domain.Review, error)
	ListReviews() ([]domain.Review, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) CreateReview(review *domain.Review) (*domain.Review, error) {
	if review == nil {
		return nil, errors.New("nil review")
	}

	if err := r.db.Create(review).Error; err != nil {
		log.Printf("create review error: %v", err)
		return nil, err
	}

	return review, nil
}

func (r *reviewRepository) ListReviews() ([]domain.Review, error) {
	reviews := []domain.Review{}

	if err := r.db.Order("created_at DESC").Find(&reviews).Error; err != nil {
		log.Printf("list reviews error: %v", err)
		return nil, err
	}

	return reviews, nil
}
