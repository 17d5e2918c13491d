package repository

import (
	"errors"
	"log"

	"github.com/StayNest/booking_service/internal/domain"
	"gorm.io/gorm"
)

type ReceiptRepository interface {
	CreateReceipt(receipt *domain.PaymentReceipt) (*domain.PaymentReceipt, error)
}

type receiptRepository struct {
	db *gorm.DB
}

func NewReceiptRepository(db *gorm.DB) ReceiptRepository {
	return &receiptRepository{db: db}
}

func (r *receiptRepository) CreateReceipt(receipt *domain.PaymentReceipt) (*domain.PaymentReceipt, error) {
	if receipt == nil {
		return nil, errors.New("nil payment receipt")
	}

	if err := r.db.Create(receipt).Error; err != nil {
		log.Printf("create payment receipt error: %v", err)
		return nil, err
	}

	return receipt, nil
}
