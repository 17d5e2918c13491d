package domain

import "time"

type BookingConfirmation struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserName      string    `gorm:"type:varchar(100);not null" json:"userName"`
	HotelName     string    `gorm:"type:varchar(200);not null" json:"hotelName"`
	PaymentStatus string    `gorm:"type:varchar(50);not null" json:"paymentStatus"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}

type PaymentReceipt struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	ReceiptNo     string    `gorm:"type:varchar(36);uniqueIndex;not null" json:"receiptNo"`
	Username      string    `gorm:"type:varchar(100);not null" json:"username"`
	HotelName     string    `gorm:"type:varchar(200);not null" json:"hotelName"`
	Price         string    `gorm:"type:varchar(50)" json:"price"`
	PaymentStatus string    `gorm:"type:varchar(50)" json:"paymentStatus"`
	CheckInDate   time.Time `json:"checkInDate"`
	CheckOutDate  time.Time `json:"checkOutDate"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}
