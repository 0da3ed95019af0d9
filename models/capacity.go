package models

import "time"

// CapacityPlan configures how many bookings a service accepts per day and
// the window they may fall in. Slot allocation itself happens on the
// platform; the portal only edits the configuration.
type CapacityPlan struct {
	ID         string `json:"id,omitempty"`
	ServiceID  string `json:"service_id"`
	Service    string `json:"service,omitempty"`
	DailySlots int    `json:"daily_slots"`
	OpensAt    string `json:"opens_at"`  // HH:MM
	ClosesAt   string `json:"closes_at"` // HH:MM
}

// CapacityPlanInput is used for creating/updating capacity plans.
type CapacityPlanInput struct {
	ServiceID  string `json:"service_id"`
	DailySlots int    `json:"daily_slots"`
	OpensAt    string `json:"opens_at"`
	ClosesAt   string `json:"closes_at"`
}

// Validate returns an i18n message key, or "" when the input is acceptable.
func (in *CapacityPlanInput) Validate() string {
	if in.ServiceID == "" {
		return "name.required"
	}
	if in.DailySlots <= 0 {
		return "capacity.positive"
	}
	if !validClock(in.OpensAt) || !validClock(in.ClosesAt) {
		return "hours.invalid"
	}
	return ""
}

func validClock(s string) bool {
	_, err := time.Parse("15:04", s)
	return err == nil
}
