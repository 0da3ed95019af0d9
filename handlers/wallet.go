package handlers

import (
	"net/http"
	"strconv"

	"github.com/centerdesk/portal/models"
	"github.com/centerdesk/portal/upstream"
)

// GetWalletBalance retrieves the wallet balance
// @Summary      Get wallet balance
// @Description  Get the center's available and pending balance with the platform.
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  Response{data=models.WalletBalance}
// @Router       /wallet/balance [get]
func GetWalletBalance(w http.ResponseWriter, r *http.Request) {
	session := SessionFrom(r)
	balance, err := Upstream.WalletBalance(r.Context(), session.Token)
	if err != nil {
		writeUpstreamError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, balance)
}

// ListWalletMovements lists wallet movements
// @Summary      List wallet movements
// @Description  Get credits and debits on the center's wallet, paged and date-filtered.
// @Tags         wallet
// @Produce      json
// @Param        from      query     string  false  "Start date (YYYY-MM-DD)"
// @Param        to        query     string  false  "End date (YYYY-MM-DD)"
// @Param        page      query     int     false  "Page number"
// @Param        per_page  query     int     false  "Page size"
// @Success      200       {object}  Response{data=[]models.WalletMovement}
// @Router       /wallet/movements [get]
func ListWalletMovements(w http.ResponseWriter, r *http.Request) {
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
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))

	session := SessionFrom(r)
	movements, err := Upstream.WalletMovements(r.Context(), session.Token, upstream.MovementQuery{
		From:    from,
		To:      to,
		Page:    page,
		PerPage: perPage,
	})
	if err != nil {
		writeUpstreamError(w, r, err)
		return
	}
	if movements == nil {
		movements = []models.WalletMovement{}
	}
	writeJSON(w, http.StatusOK, movements)
}
