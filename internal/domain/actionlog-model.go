package domain

import "time"

const (
	ActionLogin               = "login"
	ActionBookingConfirmation = "booking_confirmation"
)

// BookingLogActions are the action kinds returned by the booking-log query.
var BookingLogActions = []string{ActionLogin, ActionBookingConfirmation}

// ActionLog is append-only: rows are created by the handlers that record an
// action and are never updated or deleted here.
type ActionLog struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ActorID    string    `gorm:"type:varchar(64);not null;index" json:"actor_id"`
	ActorName  string    `gorm:"type:varchar(100)" json:"actor_name,omitempty"`
	Action     string    `gorm:"type:varchar(100);not null;index" json:"action"`
	OccurredAt time.Time `gorm:"autoCreateTime;index" json:"occurred_at"`
	Detail     string    `gorm:"type:text" json:"detail,omitempty"`
}
