package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/centerdesk/portal/models"
)

// ListCheckReports lists the center's check reports
// @Summary      List check reports
// @Description  Get the center's pre-invoice check reports.
// @Tags         check-reports
// @Produce      json
// @Success      200  {object}  Response{data=[]models.CheckReport}
// @Router       /check-reports [get]
func ListCheckReports(w http.ResponseWriter, r *http.Request) {
	session := SessionFrom(r)
	reports, err := Upstream.ListCheckReports(r.Context(), session.Token)
	if err != nil {
		writeUpstreamError(w, r, err)
		return
	}
	if reports == nil {
		reports = []models.CheckReport{}
	}
	writeJSON(w, http.StatusOK, reports)
}

// GetCheckReport retrieves a single check report
// @Summary      Get check report
// @Description  Get one check report with its proposed services and totals.
// @Tags         check-reports
// @Produce      json
// @Param        id   path      string  true  "Check report ID"
// @Success      200  {object}  Response{data=models.CheckReport}
// @Failure      404  {object}  Response{error=string}
// @Router       /check-reports/{id} [get]
func GetCheckReport(w http.ResponseWriter, r *http.Request) {
	session := SessionFrom(r)
	report, err := Upstream.GetCheckReport(r.Context(), session.Token, chi.URLParam(r, "id"))
	if err != nil {
		writeUpstreamError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// CreateCheckReport creates a new check report
// @Summary      Create check report
// @Description  Validate the proposed services, recompute the totals, and submit the check report for client approval.
// @Tags         check-reports
// @Accept       json
// @Produce      json
// @Param        report  body      models.CheckReportInput  true  "Check report contents"
// @Success      201     {object}  Response{data=models.CheckReport}
// @Failure      400     {object}  Response{error=string}
// @Router       /check-reports [post]
func CreateCheckReport(w http.ResponseWriter, r *http.Request) {
	var input models.CheckReportInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeValidationError(w, r, "error.badjson")
		return
	}
	if key := input.Validate(); key != "" {
		writeValidationError(w, r, key)
		return
	}

	doc := input.Document()
	agg := doc.Recompute()
	outbound := models.CheckReport{
		BookingID:  input.BookingID,
		ClientName: input.ClientName,
		CarModel:   input.CarModel,
		Items:      doc.Items,
		Fare:       doc.Fare,
		FareType:   doc.FareType,
		TaxRate:    doc.TaxRate,
		SubTotal:   agg.SubTotal,
		FareAmount: agg.FareAmount,
		TaxAmount:  agg.TaxAmount,
		Total:      agg.Total,
		Notes:      input.Notes,
	}

	session := SessionFrom(r)
	created, err := Upstream.CreateCheckReport(r.Context(), session.Token, outbound)
	if err != nil {
		writeUpstreamError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// DeleteCheckReport deletes a check report
// @Summary      Delete check report
// @Description  Remove a check report that was not approved.
// @Tags         check-reports
// @Produce      json
// @Param        id   path      string  true  "Check report ID"
// @Success      200  {object}  Response{data=map[string]string}
// @Failure      404  {object}  Response{error=string}
// @Router       /check-reports/{id} [delete]
func DeleteCheckReport(w http.ResponseWriter, r *http.Request) {
	session := SessionFrom(r)
	if err := Upstream.DeleteCheckReport(r.Context(), session.Token, chi.URLParam(r, "id")); err != nil {
		writeUpstreamError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
}
