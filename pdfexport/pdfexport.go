// Package pdfexport renders a fetched invoice as a downloadable PDF.
// Rendering is ephemeral; nothing is written to disk.
package pdfexport

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/centerdesk/portal/models"
	"github.com/centerdesk/portal/totals"
)

// RenderInvoice writes a PDF rendering of inv to w.
func RenderInvoice(w io.Writer, inv models.Invoice) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 10, "Invoice "+inv.InvoiceNumber)
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 6, "Client: "+inv.ClientName)
	pdf.Ln(6)
	if inv.CarModel != "" {
		pdf.Cell(0, 6, "Vehicle: "+inv.CarModel)
		pdf.Ln(6)
	}
	if inv.Status != "" {
		pdf.Cell(0, 6, "Status: "+inv.Status)
		pdf.Ln(6)
	}
	pdf.Ln(4)

	// Line item table
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(90, 8, "Service", "1", 0, "L", false, 0, "")
	pdf.CellFormat(25, 8, "Qty", "1", 0, "R", false, 0, "")
	pdf.CellFormat(35, 8, "Price", "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 8, "Amount", "1", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 11)
	for _, item := range inv.Items {
		pdf.CellFormat(90, 8, item.Service, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 8, trimNumber(item.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 8, money(item.Price), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 8, money(item.Amount), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	totalsRow(pdf, "Subtotal", inv.SubTotal)
	if inv.FareType == totals.FareRatio {
		totalsRow(pdf, fmt.Sprintf("Platform fee (%s%%)", trimNumber(inv.Fare)), inv.FareAmount)
	} else {
		totalsRow(pdf, "Platform fee", inv.FareAmount)
	}
	totalsRow(pdf, fmt.Sprintf("Tax (%s%%)", trimNumber(inv.TaxRate*100)), inv.TaxAmount)
	pdf.SetFont("Arial", "B", 11)
	totalsRow(pdf, "Total", inv.Total)
	if inv.DownPayment > 0 {
		pdf.SetFont("Arial", "", 11)
		totalsRow(pdf, "Down payment", -inv.DownPayment)
		pdf.SetFont("Arial", "B", 11)
		totalsRow(pdf, "Amount due", inv.TotalDue)
	}

	if inv.Notes != "" {
		pdf.Ln(6)
		pdf.SetFont("Arial", "I", 10)
		pdf.MultiCell(0, 5, "Notes: "+inv.Notes, "", "L", false)
	}

	return pdf.Output(w)
}

func totalsRow(pdf *gofpdf.Fpdf, label string, value float64) {
	pdf.CellFormat(150, 7, label, "", 0, "R", false, 0, "")
	pdf.CellFormat(40, 7, money(value), "", 1, "R", false, 0, "")
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// trimNumber renders a quantity or rate without trailing zeros.
func trimNumber(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%g", v)
}
