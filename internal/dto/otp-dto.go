package dto

type SendOTPRequest struct {
	MobileNumber string `json:"mobileNumber"`
}
