package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/centerdesk/portal/models"
)

func invoicePayload() map[string]any {
	return map[string]any{
		"client_name": "Ahmed",
		"items": []map[string]any{
			{"service": "Oil Change", "quantity": 2, "price": 75},
			{"service": "Filter", "quantity": 1, "price": 25},
		},
		"fare_type":    "fixed",
		"fare":         50,
		"tax_rate":     0.14,
		"down_payment": 100,
	}
}

func TestCreateInvoiceRecomputesTotals(t *testing.T) {
	var forwarded models.Invoice
	router := newTestRouter(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/invoices" {
			t.Errorf("upstream got %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&forwarded); err != nil {
			t.Fatalf("decode forwarded invoice: %v", err)
		}
		forwarded.ID = "inv-1"
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(forwarded)
	})

	payload, _ := json.Marshal(invoicePayload())
	req := asOperator(httptest.NewRequest(http.MethodPost, "/api/v1/invoices", bytes.NewReader(payload)))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("code = %d (body %s)", rec.Code, rec.Body.String())
	}

	// The portal must have derived every money field itself.
	if forwarded.SubTotal != 175 {
		t.Errorf("sub total = %v, want 175", forwarded.SubTotal)
	}
	if forwarded.TaxAmount != 24.5 {
		t.Errorf("tax amount = %v, want 24.5", forwarded.TaxAmount)
	}
	if forwarded.Total != 249.5 {
		t.Errorf("total = %v, want 249.5", forwarded.Total)
	}
	if forwarded.TotalDue != 149.5 {
		t.Errorf("total due = %v, want 149.5", forwarded.TotalDue)
	}
	if forwarded.Items[0].Amount != 150 || forwarded.Items[1].Amount != 25 {
		t.Errorf("row amounts = %v, %v", forwarded.Items[0].Amount, forwarded.Items[1].Amount)
	}
}

func TestCreateInvoiceIgnoresClientSentTotals(t *testing.T) {
	var forwarded models.Invoice
	router := newTestRouter(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&forwarded)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(forwarded)
	})

	// A tampered client sends its own flattering totals.
	payload := invoicePayload()
	payload["sub_total"] = 1
	payload["total"] = 1
	raw, _ := json.Marshal(payload)
	req := asOperator(httptest.NewRequest(http.MethodPost, "/api/v1/invoices", bytes.NewReader(raw)))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("code = %d", rec.Code)
	}
	if forwarded.Total != 249.5 {
		t.Errorf("total = %v, want the recomputed 249.5", forwarded.Total)
	}
}

func TestCreateInvoiceValidation(t *testing.T) {
	router := newTestRouter(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("invalid input must not reach upstream")
	})

	payload := invoicePayload()
	payload["items"] = []map[string]any{{"service": "", "quantity": 1, "price": 10}}
	raw, _ := json.Marshal(payload)
	req := asOperator(httptest.NewRequest(http.MethodPost, "/api/v1/invoices", bytes.NewReader(raw)))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("code = %d, want 400", rec.Code)
	}
	if body := jsonBody(t, rec); body.Error != "Service name is required" {
		t.Errorf("error = %q", body.Error)
	}
}

func TestCreateInvoiceValidationInArabic(t *testing.T) {
	router := newTestRouter(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("invalid input must not reach upstream")
	})

	payload := invoicePayload()
	payload["items"] = []map[string]any{}
	raw, _ := json.Marshal(payload)
	req := asOperator(httptest.NewRequest(http.MethodPost, "/api/v1/invoices?lang=ar", bytes.NewReader(raw)))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("code = %d, want 400", rec.Code)
	}
	if body := jsonBody(t, rec); body.Error != "مطلوب سطر خدمة واحد على الأقل" {
		t.Errorf("error = %q, want the Arabic items message", body.Error)
	}
}

func TestCreateInvoiceDownPaymentCannotExceedTotal(t *testing.T) {
	router := newTestRouter(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("invalid input must not reach upstream")
	})

	payload := invoicePayload()
	payload["down_payment"] = 10000
	raw, _ := json.Marshal(payload)
	req := asOperator(httptest.NewRequest(http.MethodPost, "/api/v1/invoices", bytes.NewReader(raw)))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("code = %d, want 400", rec.Code)
	}
}

func TestListInvoicesPassthrough(t *testing.T) {
	router := newTestRouter(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("date_from"); got != "01-15-2026" {
			t.Errorf("upstream date_from = %q, want 01-15-2026", got)
		}
		json.NewEncoder(w).Encode([]models.Invoice{{ID: "inv-1"}, {ID: "inv-2"}})
	})

	req := asOperator(httptest.NewRequest(http.MethodGet, "/api/v1/invoices?from=2026-01-15", nil))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("code = %d", rec.Code)
	}
	var body struct {
		Data []models.Invoice `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if len(body.Data) != 2 {
		t.Errorf("invoices = %d, want 2", len(body.Data))
	}
}

func TestListInvoicesRejectsBadDate(t *testing.T) {
	router := newTestRouter(t, emptyBackend)

	req := asOperator(httptest.NewRequest(http.MethodGet, "/api/v1/invoices?from=15-01-2026", nil))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("code = %d, want 400", rec.Code)
	}
}

func TestExportInvoicePDF(t *testing.T) {
	router := newTestRouter(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.Invoice{ID: "inv-1", InvoiceNumber: "INV-1", ClientName: "Ahmed"})
	})

	req := asOperator(httptest.NewRequest(http.MethodGet, "/api/v1/invoices/inv-1/pdf", nil))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("code = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("Content-Type = %q", ct)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")) {
		t.Error("body is not a PDF")
	}
}
