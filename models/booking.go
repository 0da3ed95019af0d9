package models

import "time"

// MaxCancellationReasonLength bounds the free-text reason sent with a
// booking cancellation.
const MaxCancellationReasonLength = 500

// Booking is a client appointment slot as the platform returns it.
type Booking struct {
	ID          string    `json:"id"`
	ClientName  string    `json:"client_name"`
	ClientPhone string    `json:"client_phone,omitempty"`
	CarModel    string    `json:"car_model,omitempty"`
	Service     string    `json:"service"`
	Date        string    `json:"date"` // YYYY-MM-DD
	Time        string    `json:"time"` // HH:MM
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// CancelBookingInput carries the operator's cancellation reason.
type CancelBookingInput struct {
	Reason string `json:"reason"`
}

// Validate returns an i18n message key, or "" when the input is acceptable.
func (in *CancelBookingInput) Validate() string {
	if len(in.Reason) > MaxCancellationReasonLength {
		return "reason.toolong"
	}
	return ""
}
