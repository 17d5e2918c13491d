package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/StayNest/booking_service/internal/helper/utils"
	"github.com/StayNest/booking_service/internal/interfaces"
)

const otpLength = 4

var ErrMobileRequired = errors.New("mobile number is required")

type OTPService interface {
	SendOTP(ctx context.Context, mobileNumber string) error
}

type otpService struct {
	notifier interfaces.Notifier
}

func NewOTPService(notifier interfaces.Notifier) OTPService {
	return &otpService{notifier: notifier}
}

// SendOTP generates a numeric code and hands it to the messaging provider.
// Delivery failures are not retried here.
func (o *otpService) SendOTP(ctx context.Context, mobileNumber string) error {
	mobileNumber = strings.TrimSpace(mobileNumber)
	if mobileNumber == "" {
		return ErrMobileRequired
	}

	code, err := utils.RandomOTP(otpLength)
	if err != nil {
		return err
	}

	body := fmt.Sprintf("Your OTP is %s", code)
	if err := o.notifier.SendSMS(ctx, mobileNumber, body); err != nil {
		log.Printf("send otp to %s failed: %v", mobileNumber, err)
		return err
	}

	return nil
}
