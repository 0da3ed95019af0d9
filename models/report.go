package models

// Report kinds accepted by the platform's report generator.
const (
	ReportKindInvoices = "invoices"
	ReportKindBookings = "bookings"
	ReportKindWallet   = "wallet"
)

// ReportRequest asks the platform to generate a downloadable report.
type ReportRequest struct {
	Kind string `json:"kind"`
	From string `json:"from"` // YYYY-MM-DD
	To   string `json:"to"`   // YYYY-MM-DD
}

// Validate returns an i18n message key, or "" when the input is acceptable.
func (in *ReportRequest) Validate() string {
	switch in.Kind {
	case ReportKindInvoices, ReportKindBookings, ReportKindWallet:
	default:
		return "report.kind.invalid"
	}
	return ""
}

// ReportFile points at a generated report ready for download.
type ReportFile struct {
	FileURL string `json:"file_url"`
}
