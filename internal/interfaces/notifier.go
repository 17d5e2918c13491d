package interfaces

import "context"

// Notifier delivers a short text message to a mobile number. Implemented by
// the Twilio client; stubbed in tests.
type Notifier interface {
	SendSMS(ctx context.Context, to, body string) error
}
