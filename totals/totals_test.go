package totals

import "testing"

func twoRowDoc() Document {
	return Document{
		Items: []LineItem{
			{Service: "Oil Change", Quantity: 2, Price: 75, Amount: 150},
			{Service: "Filter", Quantity: 1, Price: 25, Amount: 25},
		},
	}
}

func TestUpdateItemRecomputesAmount(t *testing.T) {
	d := twoRowDoc()

	if err := d.UpdateItem(0, FieldQuantity, 3.0); err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}
	if d.Items[0].Amount != 225 {
		t.Errorf("amount = %v, want 225", d.Items[0].Amount)
	}

	if err := d.UpdateItem(0, FieldPrice, 10.0); err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}
	if d.Items[0].Amount != 30 {
		t.Errorf("amount = %v, want 30", d.Items[0].Amount)
	}

	// Editing the service name must not touch the amount.
	if err := d.UpdateItem(0, FieldService, "Brake Pads"); err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}
	if d.Items[0].Amount != 30 {
		t.Errorf("amount = %v after service edit, want 30", d.Items[0].Amount)
	}
	// The untouched row keeps its amount.
	if d.Items[1].Amount != 25 {
		t.Errorf("other row amount = %v, want 25", d.Items[1].Amount)
	}
}

func TestUpdateItemErrors(t *testing.T) {
	d := twoRowDoc()

	if err := d.UpdateItem(5, FieldPrice, 1.0); err != ErrIndexOutOfRange {
		t.Errorf("out of range: got %v", err)
	}
	if err := d.UpdateItem(-1, FieldPrice, 1.0); err != ErrIndexOutOfRange {
		t.Errorf("negative index: got %v", err)
	}
	if err := d.UpdateItem(0, Field("color"), 1.0); err != ErrUnknownField {
		t.Errorf("unknown field: got %v", err)
	}
	if err := d.UpdateItem(0, FieldQuantity, "two"); err == nil {
		t.Error("string quantity: want error")
	}
	if err := d.UpdateItem(0, FieldService, 42); err == nil {
		t.Error("numeric service: want error")
	}
}

func TestUpdateItemAcceptsIntValues(t *testing.T) {
	d := twoRowDoc()
	if err := d.UpdateItem(1, FieldQuantity, 4); err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}
	if d.Items[1].Amount != 100 {
		t.Errorf("amount = %v, want 100", d.Items[1].Amount)
	}
}

func TestZeroQuantityOrPrice(t *testing.T) {
	d := twoRowDoc()
	if err := d.UpdateItem(0, FieldQuantity, 0.0); err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}
	if d.Items[0].Amount != 0 {
		t.Errorf("amount = %v, want 0", d.Items[0].Amount)
	}
	if err := d.UpdateItem(1, FieldPrice, 0.0); err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}
	if d.Items[1].Amount != 0 {
		t.Errorf("amount = %v, want 0", d.Items[1].Amount)
	}
}

func TestAddItemDefaults(t *testing.T) {
	d := Document{Items: []LineItem{{Service: "Wash", Quantity: 1, Price: 20, Amount: 20}}}
	d.AddItem()
	if len(d.Items) != 2 {
		t.Fatalf("len = %d, want 2", len(d.Items))
	}
	got := d.Items[1]
	if got.Quantity != 1 || got.Price != 0 || got.Amount != 0 || got.Service != "" {
		t.Errorf("new row = %+v, want quantity 1 and zero price/amount", got)
	}
}

func TestRemoveItem(t *testing.T) {
	d := twoRowDoc()
	if !d.RemoveItem(0) {
		t.Fatal("RemoveItem(0) on a two-row doc should succeed")
	}
	if len(d.Items) != 1 || d.Items[0].Service != "Filter" {
		t.Errorf("items after removal = %+v", d.Items)
	}

	// Last remaining row can never be removed.
	if d.RemoveItem(0) {
		t.Error("RemoveItem on a one-row doc must be a no-op")
	}
	if len(d.Items) != 1 {
		t.Errorf("len = %d, want 1", len(d.Items))
	}

	if d.RemoveItem(7) {
		t.Error("out-of-range removal must be a no-op")
	}
}

func TestRecomputeSubTotalAndTax(t *testing.T) {
	d := twoRowDoc()
	d.TaxRate = 0.14
	agg := d.Recompute()

	if agg.SubTotal != 175 {
		t.Errorf("sub total = %v, want 175", agg.SubTotal)
	}
	if agg.TaxAmount != 175*0.14 {
		t.Errorf("tax amount = %v, want %v", agg.TaxAmount, 175*0.14)
	}
}

func TestRecomputeFareRules(t *testing.T) {
	tests := []struct {
		name     string
		fareType FareType
		fare     float64
		want     float64
	}{
		{"ratio fare is a percentage of subtotal", FareRatio, 10, 110},
		{"fixed fare is a flat amount", FareFixed, 50, 150},
		{"unset fare type adds nothing", "", 50, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Document{
				Items:    []LineItem{{Service: "Service", Quantity: 1, Price: 100, Amount: 100}},
				Fare:     tt.fare,
				FareType: tt.fareType,
			}
			if got := d.Recompute().Total; got != tt.want {
				t.Errorf("total = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRecomputeIdempotent(t *testing.T) {
	d := twoRowDoc()
	d.Fare = 7
	d.FareType = FareRatio
	d.TaxRate = 0.05
	first := d.Recompute()
	second := d.Recompute()
	if first != second {
		t.Errorf("recompute not idempotent: %+v vs %+v", first, second)
	}
}

func TestDownPaymentReducesTotalDueOnly(t *testing.T) {
	d := Document{
		Items:       []LineItem{{Service: "Service", Quantity: 1, Price: 200, Amount: 200}},
		DownPayment: 50,
	}
	agg := d.Recompute()
	if agg.Total != 200 {
		t.Errorf("total = %v, want 200", agg.Total)
	}
	if agg.TotalDue != 150 {
		t.Errorf("total due = %v, want 150", agg.TotalDue)
	}
}

func TestNormalizeOverwritesClientAmounts(t *testing.T) {
	d := Document{Items: []LineItem{{Service: "Wash", Quantity: 2, Price: 30, Amount: 9999}}}
	d.Normalize()
	if d.Items[0].Amount != 60 {
		t.Errorf("amount = %v, want 60", d.Items[0].Amount)
	}
}

// The full flow: one row, add a second, fixed fare plus tax.
func TestEndToEndScenario(t *testing.T) {
	d := Document{Items: []LineItem{{Service: "Oil Change", Quantity: 2, Price: 75, Amount: 150}}}
	d.AddItem()
	if err := d.UpdateItem(1, FieldService, "Filter"); err != nil {
		t.Fatal(err)
	}
	if err := d.UpdateItem(1, FieldQuantity, 1.0); err != nil {
		t.Fatal(err)
	}
	if err := d.UpdateItem(1, FieldPrice, 25.0); err != nil {
		t.Fatal(err)
	}

	agg := d.Recompute()
	if agg.SubTotal != 175 {
		t.Fatalf("sub total = %v, want 175", agg.SubTotal)
	}

	d.FareType = FareFixed
	d.Fare = 50
	d.TaxRate = 0.14
	agg = d.Recompute()
	if agg.TaxAmount != 24.5 {
		t.Errorf("tax amount = %v, want 24.5", agg.TaxAmount)
	}
	if agg.Total != 249.5 {
		t.Errorf("total = %v, want 249.5", agg.Total)
	}
}

func TestParseFareType(t *testing.T) {
	if ft, ok := ParseFareType("ratio"); !ok || ft != FareRatio {
		t.Errorf("ratio: got %v %v", ft, ok)
	}
	if ft, ok := ParseFareType("fixed"); !ok || ft != FareFixed {
		t.Errorf("fixed: got %v %v", ft, ok)
	}
	if _, ok := ParseFareType("percent"); ok {
		t.Error("percent should not parse")
	}
}
