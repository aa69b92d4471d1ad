// Package invoice renders client invoices and moves them out the door:
// download, local printing, or e-mail.
package invoice

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jmholzer/outvoice-api/core"
)

// Invoice is a single-receipt invoice addressed to a stored client.
type Invoice struct {
	Address     core.Address
	Date        string // ISO date (2006-01-02)
	Number      string
	Description string
	Amount      string // decimal string, formatted on render
}

// Mailer sends a rendered invoice to a client.
type Mailer interface {
	// SendInvoice e-mails the rendered pdf as an attachment to the specified
	// address, cc'ing the configured notifications address if there is one.
	SendInvoice(ctx context.Context, to core.EmailAddress, inv Invoice, pdf []byte) error
}

// FileName derives the attachment/download name for the invoice.
func (inv Invoice) FileName() string {
	name := "invoice"
	if inv.Address.LastName != nil && *inv.Address.LastName != "" {
		name += "_" + *inv.Address.LastName
	}
	if d, err := time.Parse("2006-01-02", inv.Date); err == nil {
		name += "_" + d.Format("02_01_2006")
	}
	return name + ".pdf"
}

// formatUKDate renders an ISO date as dd/mm/yyyy. Unparseable input is
// returned unchanged so a sloppy caller still gets an invoice.
func formatUKDate(date string) string {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return d.Format("02/01/2006")
}

// formatCurrency renders a decimal string with two decimal places and a
// currency symbol.
func formatCurrency(amount string) string {
	value, err := strconv.ParseFloat(amount, 64)
	if err != nil {
		return "£" + amount
	}
	return fmt.Sprintf("£%.2f", value)
}
