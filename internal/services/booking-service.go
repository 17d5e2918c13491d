package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/StayNest/booking_service/internal/domain"
	"github.com/StayNest/booking_service/internal/dto"
	"github.com/StayNest/booking_service/internal/repository"
	"github.com/google/uuid"
)

var (
	ErrMissingFields = errors.New("missing required fields")
	ErrInvalidDate   = errors.New("invalid check-in or check-out date")
)

type BookingService interface {
	SaveConfirmation(input dto.BookingConfirmationRequest) (*domain.BookingConfirmation, error)
	ListConfirmations() ([]domain.BookingConfirmation, error)
	SavePaymentReceipt(input dto.PaymentReceiptRequest) (*domain.PaymentReceipt, error)
}

type bookingService struct {
	bookingRepo repository.BookingRepository
	receiptRepo repository.ReceiptRepository
	logSvc      ActionLogService
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	receiptRepo repository.ReceiptRepository,
	logSvc ActionLogService,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		receiptRepo: receiptRepo,
		logSvc:      logSvc,
	}
}

func (b *bookingService) SaveConfirmation(input dto.BookingConfirmationRequest) (*domain.BookingConfirmation, error) {
	userName := strings.TrimSpace(input.UserName)
	hotelName := strings.TrimSpace(input.HotelName)
	paymentStatus := strings.TrimSpace(input.PaymentStatus)

	if userName == "" || hotelName == "" || paymentStatus == "" {
		return nil, ErrMissingFields
	}

	confirmation, err := b.bookingRepo.CreateConfirmation(&domain.BookingConfirmation{
		UserName:      userName,
		HotelName:     hotelName,
		PaymentStatus: paymentStatus,
	})
	if err != nil {
		return nil, err
	}

	if b.logSvc != nil {
		detail := fmt.Sprintf("booking at %s (%s)", hotelName, paymentStatus)
		b.logSvc.Record(userName, userName, domain.ActionBookingConfirmation, detail)
	}

	return confirmation, nil
}

func (b *bookingService) ListConfirmations() ([]domain.BookingConfirmation, error) {
	return b.bookingRepo.ListConfirmations()
}

func (b *bookingService) SavePaymentReceipt(input dto.PaymentReceiptRequest) (*domain.PaymentReceipt, error) {
	username := strings.TrimSpace(input.Username)
	hotelName := strings.TrimSpace(input.HotelName)

	if username == "" || hotelName == "" {
		return nil, ErrMissingFields
	}

	checkIn, err := parseBookingDate(input.CheckInDate)
	if err != nil {
		return nil, ErrInvalidDate
	}
	checkOut, err := parseBookingDate(input.CheckOutDate)
	if err != nil {
		return nil, ErrInvalidDate
	}

	return b.receiptRepo.CreateReceipt(&domain.PaymentReceipt{
		ReceiptNo:     uuid.NewString(),
		Username:      username,
		HotelName:     hotelName,
		Price:         strings.TrimSpace(input.Price),
		PaymentStatus: strings.TrimSpace(input.PaymentStatus),
		CheckInDate:   checkIn,
		CheckOutDate:  checkOut,
	})
}

func parseBookingDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, errors.New("empty date")
	}

	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}
