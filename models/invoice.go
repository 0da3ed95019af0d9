package models

import (
	"time"

	"github.com/centerdesk/portal/totals"
)

// Invoice is an issued service invoice as the platform returns it.
type Invoice struct {
	ID            string            `json:"id"`
	InvoiceNumber string            `json:"invoice_number"`
	BookingID     string            `json:"booking_id,omitempty"`
	ClientName    string            `json:"client_name"`
	ClientPhone   string            `json:"client_phone,omitempty"`
	CarModel      string            `json:"car_model,omitempty"`
	Status        string            `json:"status"`
	Items         []totals.LineItem `json:"items"`
	Fare          float64           `json:"fare"`
	FareType      totals.FareType   `json:"fare_type"`
	TaxRate       float64           `json:"tax_rate"`
	DownPayment   float64           `json:"down_payment"`
	SubTotal      float64           `json:"sub_total"`
	FareAmount    float64           `json:"fare_amount"`
	TaxAmount     float64           `json:"tax_amount"`
	Total         float64           `json:"total"`
	TotalDue      float64           `json:"total_due"`
	Notes         string            `json:"notes,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// InvoiceInput is used for creating/updating invoices. Derived money fields
// are not accepted from the client; the portal recomputes them before
// anything is sent to the platform.
type InvoiceInput struct {
	BookingID   string          `json:"booking_id"`
	ClientName  string          `json:"client_name"`
	ClientPhone string          `json:"client_phone"`
	CarModel    string          `json:"car_model"`
	Items       []LineItemInput `json:"items"`
	Fare        float64         `json:"fare"`
	FareType    string          `json:"fare_type"`
	TaxRate     float64         `json:"tax_rate"`
	DownPayment float64         `json:"down_payment"`
	Notes       string          `json:"notes"`
}

// LineItemInput is one submitted service row.
type LineItemInput struct {
	Service  string  `json:"service"`
	Quantity float64 `json:"quantity"`
	Price    float64 `json:"price"`
}

// Validate returns an i18n message key, or "" when the input is acceptable.
func (in *InvoiceInput) Validate() string {
	if in.ClientName == "" {
		return "client.required"
	}
	if key := validateItems(in.Items); key != "" {
		return key
	}
	if key := validateFareAndTax(in.FareType, in.TaxRate); key != "" {
		return key
	}
	if in.DownPayment < 0 {
		return "downpayment.negative"
	}
	return ""
}

// Document converts the input into a totals document with every row amount
// already derived from quantity and price.
func (in *InvoiceInput) Document() totals.Document {
	doc := totals.Document{
		Items:       make([]totals.LineItem, len(in.Items)),
		Fare:        in.Fare,
		FareType:    totals.FareType(in.FareType),
		TaxRate:     in.TaxRate,
		DownPayment: in.DownPayment,
	}
	for i, item := range in.Items {
		doc.Items[i] = totals.LineItem{Service: item.Service, Quantity: item.Quantity, Price: item.Price}
	}
	doc.Normalize()
	return doc
}

func validateItems(items []LineItemInput) string {
	if len(items) == 0 {
		return "items.required"
	}
	for _, item := range items {
		if item.Service == "" {
			return "item.service.required"
		}
		if item.Quantity <= 0 {
			return "item.quantity.positive"
		}
		if item.Price < 0 {
			return "item.price.negative"
		}
	}
	return ""
}

func validateFareAndTax(fareType string, taxRate float64) string {
	if _, ok := totals.ParseFareType(fareType); !ok {
		return "fare.type.invalid"
	}
	if taxRate < 0 || taxRate > 1 {
		return "tax.rate.range"
	}
	return ""
}
