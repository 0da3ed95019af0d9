package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/centerdesk/portal/models"
)

// GenerateReport asks the platform for a downloadable report
// @Summary      Generate report
// @Description  Request a report from the platform and return the download URL.
// @Tags         reports
// @Accept       json
// @Produce      json
// @Param        report  body      models.ReportRequest  true  "Report kind and date range"
// @Success      200     {object}  Response{data=models.ReportFile}
// @Failure      400     {object}  Response{error=string}
// @Router       /reports [post]
func GenerateReport(w http.ResponseWriter, r *http.Request) {
	var input models.ReportRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeValidationError(w, r, "error.badjson")
		return
	}
	if key := input.Validate(); key != "" {
		writeValidationError(w, r, key)
		return
	}

	session := SessionFrom(r)
	file, err := Upstream.GenerateReport(r.Context(), session.Token, input)
	if err != nil {
		writeUpstreamError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, file)
}
