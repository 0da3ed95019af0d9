// Package totals keeps the derived money fields of an invoice or check
// report consistent while its line items are edited. The same computation
// backs invoice creation, invoice editing, and check-report creation so the
// three screens can no longer drift apart.
//
// All arithmetic is plain float64, matching what the platform backend does
// on its side. There is no rounding here; presentation rounds.
package totals

import (
	"errors"
	"fmt"
)

// FareType selects how the platform fee is applied to a document.
type FareType string

const (
	// FareRatio applies the fare as a percentage of the subtotal.
	FareRatio FareType = "ratio"
	// FareFixed applies the fare as a flat currency amount.
	FareFixed FareType = "fixed"
)

// ParseFareType reports whether s names a known fare type.
func ParseFareType(s string) (FareType, bool) {
	switch FareType(s) {
	case FareRatio, FareFixed:
		return FareType(s), true
	}
	return "", false
}

// Field names an editable line-item field.
type Field string

const (
	FieldService  Field = "service"
	FieldQuantity Field = "quantity"
	FieldPrice    Field = "price"
)

var (
	ErrIndexOutOfRange = errors.New("line item index out of range")
	ErrUnknownField    = errors.New("unknown line item field")
)

// LineItem is one service row. Amount is derived and never set directly:
// after any edit through UpdateItem it equals Quantity * Price.
type LineItem struct {
	Service  string  `json:"service"`
	Quantity float64 `json:"quantity"`
	Price    float64 `json:"price"`
	Amount   float64 `json:"amount"`
}

// NewLineItem returns the row appended by the "add service" action.
// Quantity defaults to 1 so a freshly added row already carries a sensible
// amount once a price is typed.
func NewLineItem() LineItem {
	return LineItem{Quantity: 1}
}

// Document is the editable form state of an invoice or check report.
type Document struct {
	Items       []LineItem `json:"items"`
	Fare        float64    `json:"fare"`
	FareType    FareType   `json:"fare_type"`
	TaxRate     float64    `json:"tax_rate"`
	DownPayment float64    `json:"down_payment"`
}

// Aggregate holds the derived totals of a Document.
type Aggregate struct {
	SubTotal   float64 `json:"sub_total"`
	FareAmount float64 `json:"fare_amount"`
	TaxAmount  float64 `json:"tax_amount"`
	Total      float64 `json:"total"`
	TotalDue   float64 `json:"total_due"`
}

// UpdateItem sets one field of the row at index. Editing quantity or price
// recomputes that row's Amount; other rows are untouched. Zero and negative
// numbers are computed as-is; rejecting them is form validation's job.
func (d *Document) UpdateItem(index int, field Field, value any) error {
	if index < 0 || index >= len(d.Items) {
		return ErrIndexOutOfRange
	}
	item := &d.Items[index]
	switch field {
	case FieldService:
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("field %s wants a string, got %T", field, value)
		}
		item.Service = s
	case FieldQuantity, FieldPrice:
		n, err := toFloat(value)
		if err != nil {
			return fmt.Errorf("field %s: %w", field, err)
		}
		if field == FieldQuantity {
			item.Quantity = n
		} else {
			item.Price = n
		}
		item.Amount = item.Quantity * item.Price
	default:
		return ErrUnknownField
	}
	return nil
}

// AddItem appends a fresh row.
func (d *Document) AddItem() {
	d.Items = append(d.Items, NewLineItem())
}

// RemoveItem deletes the row at index. A document keeps at least one row:
// removing the last remaining row is a no-op and returns false, as does an
// out-of-range index.
func (d *Document) RemoveItem(index int) bool {
	if len(d.Items) <= 1 || index < 0 || index >= len(d.Items) {
		return false
	}
	d.Items = append(d.Items[:index], d.Items[index+1:]...)
	return true
}

// Normalize recomputes every row's Amount from its Quantity and Price.
// Documents arriving over the wire are normalized before their aggregate is
// trusted anywhere.
func (d *Document) Normalize() {
	for i := range d.Items {
		d.Items[i].Amount = d.Items[i].Quantity * d.Items[i].Price
	}
}

// Recompute walks the full line-item collection and returns the aggregate.
// It is synchronous, total, and idempotent: calling it twice without an
// intervening mutation yields identical values.
//
// TotalDue is Total minus the down payment already collected; the down
// payment never changes the center's net (Total), only what the client
// still owes.
func (d *Document) Recompute() Aggregate {
	var agg Aggregate
	for _, item := range d.Items {
		agg.SubTotal += item.Amount
	}
	agg.TaxAmount = agg.SubTotal * d.TaxRate
	switch d.FareType {
	case FareRatio:
		agg.FareAmount = agg.SubTotal * d.Fare / 100
	case FareFixed:
		agg.FareAmount = d.Fare
	}
	agg.Total = agg.SubTotal + agg.FareAmount + agg.TaxAmount
	agg.TotalDue = agg.Total - d.DownPayment
	return agg
}

func toFloat(value any) (float64, error) {
	switch n := value.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	}
	return 0, fmt.Errorf("want a number, got %T", value)
}
