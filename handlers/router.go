package handlers

import (
	"github.com/go-chi/chi/v5"
)

// Router returns the /api/v1 route tree. Every route, including the
// totals preview, passes through the operator route gate.
func Router() chi.Router {
	r := chi.NewRouter()
	r.Use(RequireOperator)

	// Bookings
	r.Get("/bookings", ListBookings)
	r.Post("/bookings/{id}/cancel", CancelBooking)

	// Invoices
	r.Get("/invoices", ListInvoices)
	r.Post("/invoices", CreateInvoice)
	r.Get("/invoices/{id}", GetInvoice)
	r.Put("/invoices/{id}", UpdateInvoice)
	r.Get("/invoices/{id}/pdf", ExportInvoicePDF)

	// Promotions
	r.Get("/promotions", ListPromotions)
	r.Post("/promotions", CreatePromotion)
	r.Get("/promotions/{id}", GetPromotion)
	r.Put("/promotions/{id}", UpdatePromotion)
	r.Delete("/promotions/{id}", DeletePromotion)

	// Check reports
	r.Get("/check-reports", ListCheckReports)
	r.Post("/check-reports", CreateCheckReport)
	r.Get("/check-reports/{id}", GetCheckReport)
	r.Delete("/check-reports/{id}", DeleteCheckReport)

	// Center profile
	r.Get("/profile", GetProfile)
	r.Put("/profile", UpdateProfile)

	// Booking capacity plans
	r.Get("/capacity", ListCapacityPlans)
	r.Post("/capacity", CreateCapacityPlan)
	r.Put("/capacity/{id}", UpdateCapacityPlan)

	// Price lists
	r.Get("/prices", GetPriceList)
	r.Post("/prices", CreatePriceList)

	// Wallet
	r.Get("/wallet/balance", GetWalletBalance)
	r.Get("/wallet/movements", ListWalletMovements)

	// Reports
	r.Post("/reports", GenerateReport)

	// Totals preview for the edit screens
	r.Post("/calc/totals", PreviewTotals)

	// Dashboard
	r.Get("/dashboard", GetDashboard)

	return r
}
