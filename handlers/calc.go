package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/centerdesk/portal/totals"
)

// totalsPreview is the recomputed document plus its aggregate.
type totalsPreview struct {
	Document  totals.Document  `json:"document"`
	Aggregate totals.Aggregate `json:"aggregate"`
}

// PreviewTotals recomputes derived totals for an in-progress form
// @Summary      Preview totals
// @Description  Recompute row amounts, subtotal, fare, tax, and total for an invoice or check-report form being edited. Client-sent amounts are overwritten, never trusted.
// @Tags         calc
// @Accept       json
// @Produce      json
// @Param        document  body      totals.Document  true  "Line items plus fare and tax configuration"
// @Success      200       {object}  Response{data=totalsPreview}
// @Failure      400       {object}  Response{error=string}
// @Router       /calc/totals [post]
func PreviewTotals(w http.ResponseWriter, r *http.Request) {
	var doc totals.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		writeValidationError(w, r, "error.badjson")
		return
	}

	doc.Normalize()
	writeJSON(w, http.StatusOK, totalsPreview{Document: doc, Aggregate: doc.Recompute()})
}
