package models

import "time"

// Promotion is a marketing offer run by the center on the platform.
type Promotion struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	StartDate   string    `json:"start_date"` // YYYY-MM-DD
	EndDate     string    `json:"end_date"`   // YYYY-MM-DD
	ImageURL    string    `json:"image_url,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}

// PromotionInput is the field portion of the multipart create/update form;
// the promotion image travels alongside it as a file part.
type PromotionInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Active      bool   `json:"active"`
}

// Validate returns an i18n message key, or "" when the input is acceptable.
func (in *PromotionInput) Validate() string {
	if in.Title == "" {
		return "title.required"
	}
	start, err := time.Parse("2006-01-02", in.StartDate)
	if err != nil {
		return "date.invalid"
	}
	end, err := time.Parse("2006-01-02", in.EndDate)
	if err != nil {
		return "date.invalid"
	}
	if end.Before(start) {
		return "dates.order"
	}
	return ""
}
