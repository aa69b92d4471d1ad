package invoice

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

// Render produces the invoice as a single-page A4 pdf document.
func Render(companyName string, inv Invoice) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Invoice %s", inv.Number), true)
	pdf.AddPage()

	// Sender header
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, companyName, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, "INVOICE", "", 1, "L", false, 0, "")
	pdf.Ln(6)

	// Addressee block, skipping absent lines
	pdf.SetFont("Helvetica", "", 11)
	name := textOrEmpty(inv.Address.FirstName)
	if last := textOrEmpty(inv.Address.LastName); last != "" {
		if name != "" {
			name += " "
		}
		name += last
	}
	for _, line := range []string{
		name,
		textOrEmpty(inv.Address.AddressLine1),
		textOrEmpty(inv.Address.AddressLine2),
		textOrEmpty(inv.Address.City),
		textOrEmpty(inv.Address.PostCode),
	} {
		if line == "" {
			continue
		}
		pdf.CellFormat(0, 5, line, "", 1, "L", false, 0, "")
	}
	pdf.Ln(8)

	// Invoice meta
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 5, "Invoice number: "+inv.Number, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, "Invoice date: "+formatUKDate(inv.Date), "", 1, "L", false, 0, "")
	pdf.Ln(8)

	// Receipt table
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(130, 7, "Description", "B", 0, "L", false, 0, "")
	pdf.CellFormat(40, 7, "Amount", "B", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(130, 7, inv.Description, "", 0, "L", false, 0, "")
	pdf.CellFormat(40, 7, formatCurrency(inv.Amount), "", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(130, 7, "Balance due", "T", 0, "L", false, 0, "")
	pdf.CellFormat(40, 7, formatCurrency(inv.Amount), "T", 1, "R", false, 0, "")

	var buffer bytes.Buffer
	if err := pdf.Output(&buffer); err != nil {
		return nil, fmt.Errorf("cannot render invoice pdf: %w", err)
	}
	return buffer.Bytes(), nil
}

func textOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
