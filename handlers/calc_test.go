package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/centerdesk/portal/totals"
)

func TestPreviewTotals(t *testing.T) {
	router := newTestRouter(t, emptyBackend) // upstream is never touched

	payload, _ := json.Marshal(map[string]any{
		"items": []map[string]any{
			{"service": "Oil Change", "quantity": 2, "price": 75, "amount": 0},
			{"service": "Filter", "quantity": 1, "price": 25, "amount": 9999},
		},
		"fare_type": "fixed",
		"fare":      50,
		"tax_rate":  0.14,
	})
	req := asOperator(httptest.NewRequest(http.MethodPost, "/api/v1/calc/totals", bytes.NewReader(payload)))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("code = %d (body %s)", rec.Code, rec.Body.String())
	}

	var body struct {
		Data struct {
			Document  totals.Document  `json:"document"`
			Aggregate totals.Aggregate `json:"aggregate"`
		} `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}

	// Client-sent amounts are overwritten from quantity and price.
	if body.Data.Document.Items[0].Amount != 150 || body.Data.Document.Items[1].Amount != 25 {
		t.Errorf("amounts = %v, %v", body.Data.Document.Items[0].Amount, body.Data.Document.Items[1].Amount)
	}
	agg := body.Data.Aggregate
	if agg.SubTotal != 175 || agg.TaxAmount != 24.5 || agg.Total != 249.5 {
		t.Errorf("aggregate = %+v", agg)
	}
}

func TestPreviewTotalsRatioFare(t *testing.T) {
	router := newTestRouter(t, emptyBackend)

	payload, _ := json.Marshal(map[string]any{
		"items":     []map[string]any{{"service": "Service", "quantity": 1, "price": 100}},
		"fare_type": "ratio",
		"fare":      10,
	})
	req := asOperator(httptest.NewRequest(http.MethodPost, "/api/v1/calc/totals", bytes.NewReader(payload)))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("code = %d", rec.Code)
	}
	var body struct {
		Data struct {
			Aggregate totals.Aggregate `json:"aggregate"`
		} `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.Data.Aggregate.Total != 110 {
		t.Errorf("total = %v, want 110", body.Data.Aggregate.Total)
	}
}

func TestPreviewTotalsBadJSON(t *testing.T) {
	router := newTestRouter(t, emptyBackend)

	req := asOperator(httptest.NewRequest(http.MethodPost, "/api/v1/calc/totals", bytes.NewReader([]byte("{not json"))))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("code = %d, want 400", rec.Code)
	}
}
