package models

import (
	"time"

	"github.com/centerdesk/portal/totals"
)

// CheckReport is a pre-invoice document listing proposed services and
// prices for the client to approve before an invoice is issued.
type CheckReport struct {
	ID         string            `json:"id"`
	BookingID  string            `json:"booking_id,omitempty"`
	ClientName string            `json:"client_name"`
	CarModel   string            `json:"car_model,omitempty"`
	Status     string            `json:"status"`
	Items      []totals.LineItem `json:"items"`
	Fare       float64           `json:"fare"`
	FareType   totals.FareType   `json:"fare_type"`
	TaxRate    float64           `json:"tax_rate"`
	SubTotal   float64           `json:"sub_total"`
	FareAmount float64           `json:"fare_amount"`
	TaxAmount  float64           `json:"tax_amount"`
	Total      float64           `json:"total"`
	Notes      string            `json:"notes,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
}

// CheckReportInput is used for creating check reports. A check report has
// no down payment; that only enters at invoicing time.
type CheckReportInput struct {
	BookingID  string          `json:"booking_id"`
	ClientName string          `json:"client_name"`
	CarModel   string          `json:"car_model"`
	Items      []LineItemInput `json:"items"`
	Fare       float64         `json:"fare"`
	FareType   string          `json:"fare_type"`
	TaxRate    float64         `json:"tax_rate"`
	Notes      string          `json:"notes"`
}

// Validate returns an i18n message key, or "" when the input is acceptable.
func (in *CheckReportInput) Validate() string {
	if in.ClientName == "" {
		return "client.required"
	}
	if key := validateItems(in.Items); key != "" {
		return key
	}
	return validateFareAndTax(in.FareType, in.TaxRate)
}

// Document converts the input into a totals document.
func (in *CheckReportInput) Document() totals.Document {
	doc := totals.Document{
		Items:    make([]totals.LineItem, len(in.Items)),
		Fare:     in.Fare,
		FareType: totals.FareType(in.FareType),
		TaxRate:  in.TaxRate,
	}
	for i, item := range in.Items {
		doc.Items[i] = totals.LineItem{Service: item.Service, Quantity: item.Quantity, Price: item.Price}
	}
	doc.Normalize()
	return doc
}
