package dto

type BookingConfirmationRequest struct {
	UserName      string `json:"userName"`
	HotelName     string `json:"hotelName"`
	PaymentStatus string `json:"paymentStatus"`
}

type PaymentReceiptRequest struct {
	Username      string `json:"username"`
	HotelName     string `json:"hotelName"`
	Price         string `json:"price"`
	PaymentStatus string `json:"paymentStatus"`
	CheckInDate   string `json:"checkInDate"`
	CheckOutDate  string `json:"checkOutDate"`
}
