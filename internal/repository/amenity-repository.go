package repository

import (
	"errors"
	"log"

	"github.com/StayNest/booking_service/internal/domain"
	"gorm.io/gorm"
)

var ErrAmenityNotFound = errors.New("amenities not found for location")

type AmenityRepository interface {
	FindByLocation(location string) (*domain.Amenity, error)
	UpsertLocation(amenity *domain.Amenity) error
}

type amenityRepository struct {
	db *gorm.DB
}

func NewAmenityRepository(db *gorm.DB) AmenityRepository {
	return &amenityRepository{db: db}
}

func (r *amenityRepository) FindByLocation(location string) (*domain.Amenity, error) {
	amenity := &domain.Amenity{}

	if err := r.db.First(amenity, "location = ?", location).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAmenityNotFound
		}
		log.Printf("find amenities by location error: %v", err)
		return nil, err
	}

	return amenity, nil
}

func (r *amenityRepository) UpsertLocation(amenity *domain.Amenity) error {
	if amenity == nil || amenity.Location == "" {
		return errors.New("location is required")
	}

	var existing domain.Amenity
	err := r.db.Where("location = ?", amenity.Location).First(&existing).Error
	if err == nil {
		existing.Amenities = amenity.Amenities
		return r.db.Save(&existing).Error
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(amenity).Error
	}

	log.Printf("upsert amenities error: %v", err)
	return err
}
