package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/centerdesk/portal/models"
	"github.com/centerdesk/portal/pdfexport"
	"github.com/centerdesk/portal/upstream"
)

// invoiceFromInput recomputes every derived money field from the submitted
// rows. Client-sent amounts and totals are never trusted.
func invoiceFromInput(input models.InvoiceInput) models.Invoice {
	doc := input.Document()
	agg := doc.Recompute()
	return models.Invoice{
		BookingID:   input.BookingID,
		ClientName:  input.ClientName,
		ClientPhone: input.ClientPhone,
		CarModel:    input.CarModel,
		Items:       doc.Items,
		Fare:        doc.Fare,
		FareType:    doc.FareType,
		TaxRate:     doc.TaxRate,
		DownPayment: doc.DownPayment,
		SubTotal:    agg.SubTotal,
		FareAmount:  agg.FareAmount,
		TaxAmount:   agg.TaxAmount,
		Total:       agg.Total,
		TotalDue:    agg.TotalDue,
		Notes:       input.Notes,
	}
}

// ListInvoices lists the center's invoices
// @Summary      List invoices
// @Description  Get the center's invoices with optional status, search, and date filters.
// @Tags         invoices
// @Produce      json
// @Param        status  query     string  false  "Filter by invoice status"
// @Param        search  query     string  false  "Search by client name or invoice number"
// @Param        from    query     string  false  "Start date (YYYY-MM-DD)"
// @Param        to      query     string  false  "End date (YYYY-MM-DD)"
// @Success      200     {object}  Response{data=[]models.Invoice}
// @Router       /invoices [get]
func ListInvoices(w http.ResponseWriter, r *http.Request) {
	from, ok := parseDateFilter(r, "from")
	if !ok {
		writeValidationError(w, r, "date.invalid")
		return
	}
	to, ok := parseDateFilter(r, "to")
	if !ok {
		writeValidationError(w, r, "date.invalid")
		return
	}

	session := SessionFrom(r)
	invoices, err := Upstream.ListInvoices(r.Context(), session.Token, upstream.InvoiceQuery{
		Status: r.URL.Query().Get("status"),
		Search: r.URL.Query().Get("search"),
		From:   from,
		To:     to,
	})
	if err != nil {
		writeUpstreamError(w, r, err)
		return
	}
	if invoices == nil {
		invoices = []models.Invoice{}
	}
	writeJSON(w, http.StatusOK, invoices)
}

// GetInvoice retrieves a single invoice
// @Summary      Get invoice
// @Description  Get one invoice with its line items and derived totals.
// @Tags         invoices
// @Produce      json
// @Param        id   path      string  true  "Invoice ID"
// @Success      200  {object}  Response{data=models.Invoice}
// @Failure      404  {object}  Response{error=string}
// @Router       /invoices/{id} [get]
func GetInvoice(w http.ResponseWriter, r *http.Request) {
	session := SessionFrom(r)
	inv, err := Upstream.GetInvoice(r.Context(), session.Token, chi.URLParam(r, "id"))
	if err != nil {
		writeUpstreamError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, inv)
}

// CreateInvoice creates a new invoice
// @Summary      Create invoice
// @Description  Validate the submitted line items, recompute all derived totals, and issue the invoice.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        invoice  body      models.InvoiceInput  true  "Invoice contents"
// @Success      201      {object}  Response{data=models.Invoice}
// @Failure      400      {object}  Response{error=string}
// @Router       /invoices [post]
func CreateInvoice(w http.ResponseWriter, r *http.Request) {
	var input models.InvoiceInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeValidationError(w, r, "error.badjson")
		return
	}
	if key := input.Validate(); key != "" {
		writeValidationError(w, r, key)
		return
	}
	outbound := invoiceFromInput(input)
	if outbound.DownPayment > outbound.Total {
		writeValidationError(w, r, "downpayment.exceeds")
		return
	}

	session := SessionFrom(r)
	created, err := Upstream.CreateInvoice(r.Context(), session.Token, outbound)
	if err != nil {
		writeUpstreamError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// UpdateInvoice updates an existing invoice
// @Summary      Update invoice
// @Description  Validate the edited line items, recompute all derived totals, and save the invoice.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id       path      string               true  "Invoice ID"
// @Param        invoice  body      models.InvoiceInput  true  "Updated invoice contents"
// @Success      200      {object}  Response{data=models.Invoice}
// @Failure      400      {object}  Response{error=string}
// @Failure      404      {object}  Response{error=string}
// @Router       /invoices/{id} [put]
func UpdateInvoice(w http.ResponseWriter, r *http.Request) {
	var input models.InvoiceInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeValidationError(w, r, "error.badjson")
		return
	}
	if key := input.Validate(); key != "" {
		writeValidationError(w, r, key)
		return
	}
	outbound := invoiceFromInput(input)
	if outbound.DownPayment > outbound.Total {
		writeValidationError(w, r, "downpayment.exceeds")
		return
	}

	session := SessionFrom(r)
	updated, err := Upstream.UpdateInvoice(r.Context(), session.Token, chi.URLParam(r, "id"), outbound)
	if err != nil {
		writeUpstreamError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// ExportInvoicePDF downloads an invoice as PDF
// @Summary      Export invoice PDF
// @Description  Fetch the invoice and render it as a downloadable PDF.
// @Tags         invoices
// @Produce      application/pdf
// @Param        id   path  string  true  "Invoice ID"
// @Success      200
// @Failure      404  {object}  Response{error=string}
// @Router       /invoices/{id}/pdf [get]
func ExportInvoicePDF(w http.ResponseWriter, r *http.Request) {
	session := SessionFrom(r)
	id := chi.URLParam(r, "id")
	inv, err := Upstream.GetInvoice(r.Context(), session.Token, id)
	if err != nil {
		writeUpstreamError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "invoice-"+id+".pdf"))
	if err := pdfexport.RenderInvoice(w, inv); err != nil {
		// Headers are already out; all we can do is log.
		slog.Error("pdf render failed", "invoice", id, "error", err)
	}
}
