package models

import "testing"

func validInvoiceInput() InvoiceInput {
	return InvoiceInput{
		ClientName: "Ahmed",
		Items:      []LineItemInput{{Service: "Oil Change", Quantity: 2, Price: 75}},
		FareType:   "fixed",
		Fare:       50,
		TaxRate:    0.14,
	}
}

func TestInvoiceInputValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*InvoiceInput)
		want   string
	}{
		{"valid", func(in *InvoiceInput) {}, ""},
		{"missing client", func(in *InvoiceInput) { in.ClientName = "" }, "client.required"},
		{"no items", func(in *InvoiceInput) { in.Items = nil }, "items.required"},
		{"empty service", func(in *InvoiceInput) { in.Items[0].Service = "" }, "item.service.required"},
		{"zero quantity", func(in *InvoiceInput) { in.Items[0].Quantity = 0 }, "item.quantity.positive"},
		{"negative price", func(in *InvoiceInput) { in.Items[0].Price = -1 }, "item.price.negative"},
		{"bad fare type", func(in *InvoiceInput) { in.FareType = "percent" }, "fare.type.invalid"},
		{"tax rate above 1", func(in *InvoiceInput) { in.TaxRate = 1.5 }, "tax.rate.range"},
		{"negative down payment", func(in *InvoiceInput) { in.DownPayment = -10 }, "downpayment.negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInvoiceInput()
			tt.mutate(&in)
			if got := in.Validate(); got != tt.want {
				t.Errorf("Validate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInvoiceInputDocument(t *testing.T) {
	in := validInvoiceInput()
	doc := in.Document()

	if len(doc.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(doc.Items))
	}
	if doc.Items[0].Amount != 150 {
		t.Errorf("amount = %v, want 150", doc.Items[0].Amount)
	}
	agg := doc.Recompute()
	if agg.Total != 150+50+150*0.14 {
		t.Errorf("total = %v", agg.Total)
	}
}

func TestCheckReportInputValidate(t *testing.T) {
	in := CheckReportInput{
		ClientName: "Mona",
		Items:      []LineItemInput{{Service: "Brake Check", Quantity: 1, Price: 40}},
		FareType:   "ratio",
		Fare:       10,
	}
	if got := in.Validate(); got != "" {
		t.Errorf("Validate() = %q, want ok", got)
	}
	in.Items = nil
	if got := in.Validate(); got != "items.required" {
		t.Errorf("Validate() = %q, want items.required", got)
	}
}

func TestCancelBookingInputValidate(t *testing.T) {
	in := CancelBookingInput{Reason: "client asked"}
	if got := in.Validate(); got != "" {
		t.Errorf("Validate() = %q", got)
	}
	long := make([]byte, MaxCancellationReasonLength+1)
	for i := range long {
		long[i] = 'x'
	}
	in.Reason = string(long)
	if got := in.Validate(); got != "reason.toolong" {
		t.Errorf("Validate() = %q, want reason.toolong", got)
	}
}

func TestPromotionInputValidate(t *testing.T) {
	in := PromotionInput{Title: "Summer Tune-Up", StartDate: "2026-06-01", EndDate: "2026-06-30"}
	if got := in.Validate(); got != "" {
		t.Errorf("Validate() = %q", got)
	}
	in.EndDate = "2026-05-01"
	if got := in.Validate(); got != "dates.order" {
		t.Errorf("Validate() = %q, want dates.order", got)
	}
	in.EndDate = "30-06-2026"
	if got := in.Validate(); got != "date.invalid" {
		t.Errorf("Validate() = %q, want date.invalid", got)
	}
	in = PromotionInput{StartDate: "2026-06-01", EndDate: "2026-06-30"}
	if got := in.Validate(); got != "title.required" {
		t.Errorf("Validate() = %q, want title.required", got)
	}
}

func TestCapacityPlanInputValidate(t *testing.T) {
	in := CapacityPlanInput{ServiceID: "svc-1", DailySlots: 8, OpensAt: "09:00", ClosesAt: "18:00"}
	if got := in.Validate(); got != "" {
		t.Errorf("Validate() = %q", got)
	}
	in.DailySlots = 0
	if got := in.Validate(); got != "capacity.positive" {
		t.Errorf("Validate() = %q, want capacity.positive", got)
	}
	in.DailySlots = 8
	in.OpensAt = "9am"
	if got := in.Validate(); got != "hours.invalid" {
		t.Errorf("Validate() = %q, want hours.invalid", got)
	}
}

func TestPriceListInputValidate(t *testing.T) {
	in := PriceListInput{Entries: []PriceEntry{{Service: "Oil Change", Price: 75}}}
	if got := in.Validate(); got != "" {
		t.Errorf("Validate() = %q", got)
	}
	in.Entries[0].Price = -5
	if got := in.Validate(); got != "item.price.negative" {
		t.Errorf("Validate() = %q, want item.price.negative", got)
	}
	in.Entries = nil
	if got := in.Validate(); got != "prices.required" {
		t.Errorf("Validate() = %q, want prices.required", got)
	}
}

func TestReportRequestValidate(t *testing.T) {
	in := ReportRequest{Kind: ReportKindInvoices}
	if got := in.Validate(); got != "" {
		t.Errorf("Validate() = %q", got)
	}
	in.Kind = "payroll"
	if got := in.Validate(); got != "report.kind.invalid" {
		t.Errorf("Validate() = %q, want report.kind.invalid", got)
	}
}
