package handlers

import (
	"net/http"
	"time"

	"github.com/centerdesk/portal/upstream"
)

type dashboardData struct {
	TodayBookings    int     `json:"today_bookings"`
	PendingBookings  int     `json:"pending_bookings"`
	ActivePromotions int     `json:"active_promotions"`
	WalletAvailable  float64 `json:"wallet_available"`
	WalletPending    float64 `json:"wallet_pending"`
}

// GetDashboard retrieves dashboard summary statistics
// @Summary      Get dashboard
// @Description  Get today's bookings, active promotions, and the wallet balance at a glance. Each figure is best-effort; a failing source shows as zero rather than failing the page.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  Response{data=dashboardData}
// @Router       /dashboard [get]
func GetDashboard(w http.ResponseWriter, r *http.Request) {
	session := SessionFrom(r)
	var d dashboardData

	today := time.Now()
	if bookings, err := Upstream.ListBookings(r.Context(), session.Token, upstream.BookingQuery{From: &today, To: &today}); err == nil {
		d.TodayBookings = len(bookings)
		for _, b := range bookings {
			if b.Status == "pending" {
				d.PendingBookings++
			}
		}
	}
	if promotions, err := Upstream.ListPromotions(r.Context(), session.Token); err == nil {
		for _, p := range promotions {
			if p.Active {
				d.ActivePromotions++
			}
		}
	}
	if balance, err := Upstream.WalletBalance(r.Context(), session.Token); err == nil {
		d.WalletAvailable = balance.Available
		d.WalletPending = balance.Pending
	}

	writeJSON(w, http.StatusOK, d)
}
