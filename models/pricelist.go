package models

import "time"

// PriceEntry is one service price in the center's published price list.
type PriceEntry struct {
	Service string  `json:"service"`
	Price   float64 `json:"price"`
}

// PriceList is the center's published price list.
type PriceList struct {
	ID        string       `json:"id,omitempty"`
	Entries   []PriceEntry `json:"entries"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// PriceListInput is used for publishing a new price list.
type PriceListInput struct {
	Entries []PriceEntry `json:"entries"`
}

// Validate returns an i18n message key, or "" when the input is acceptable.
func (in *PriceListInput) Validate() string {
	if len(in.Entries) == 0 {
		return "prices.required"
	}
	for _, entry := range in.Entries {
		if entry.Service == "" {
			return "item.service.required"
		}
		if entry.Price < 0 {
			return "item.price.negative"
		}
	}
	return ""
}
