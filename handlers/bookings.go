package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/centerdesk/portal/models"
	"github.com/centerdesk/portal/upstream"
)

// parseDateFilter reads a YYYY-MM-DD query parameter from the UI. The
// upstream client reformats it to the platform's MM-DD-YYYY on the wire.
func parseDateFilter(r *http.Request, name string) (*time.Time, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, true
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, false
	}
	return &t, true
}

// ListBookings lists the center's bookings
// @Summary      List bookings
// @Description  Get the center's bookings, optionally filtered by status and date range.
// @Tags         bookings
// @Produce      json
// @Param        status  query     string  false  "Filter by booking status"
// @Param        from    query     string  false  "Start date (YYYY-MM-DD)"
// @Param        to      query     string  false  "End date (YYYY-MM-DD)"
// @Success      200     {object}  Response{data=[]models.Booking}
// @Router       /bookings [get]
func ListBookings(w http.ResponseWriter, r *http.Request) {
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
	bookings, err := Upstream.ListBookings(r.Context(), session.Token, upstream.BookingQuery{
		Status: r.URL.Query().Get("status"),
		From:   from,
		To:     to,
	})
	if err != nil {
		writeUpstreamError(w, r, err)
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	writeJSON(w, http.StatusOK, bookings)
}

// CancelBooking cancels a booking
// @Summary      Cancel booking
// @Description  Cancel a booking with an optional reason for the client.
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        id      path      string                     true   "Booking ID"
// @Param        cancel  body      models.CancelBookingInput  false  "Cancellation reason"
// @Success      200     {object}  Response{data=map[string]string}
// @Failure      400     {object}  Response{error=string}
// @Router       /bookings/{id}/cancel [post]
func CancelBooking(w http.ResponseWriter, r *http.Request) {
	var input models.CancelBookingInput
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			writeValidationError(w, r, "error.badjson")
			return
		}
	}
	if key := input.Validate(); key != "" {
		writeValidationError(w, r, key)
		return
	}

	session := SessionFrom(r)
	if err := Upstream.CancelBooking(r.Context(), session.Token, chi.URLParam(r, "id"), input.Reason); err != nil {
		writeUpstreamError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "cancelled"})
}
