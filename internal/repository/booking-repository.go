package repository

import (
	"errors"
	"log"

	"github.com/StayNest/booking_service/internal/domain"
	"gorm.io/gorm"
)

type BookingRepository interface {
	CreateConfirmation(c *domain.BookingConfirmation) (*domain.BookingConfirmation, error)
	ListConfirmations() ([]domain.BookingConfirmation, error)
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) CreateConfirmation(c *domain.BookingConfirmation) (*domain.BookingConfirmation, error) {
	if c == nil {
		return nil, errors.New("nil booking confirmation")
	}

	if err := r.db.Create(c).Error; err != nil {
		log.Printf("create booking confirmation error: %v", err)
		return nil, err
	}

	return c, nil
}

func (r *bookingRepository) ListConfirmations() ([]domain.BookingConfirmation, error) {
	confirmations := []domain.BookingConfirmation{}

	if err := r.db.Order("created_at DESC").Find(&confirmations).Error; err != nil {
		log.Printf("list booking confirmations error: %v", err)
		return nil, err
	}

	return confirmations, nil
}
