package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/render"
	"github.com/jmholzer/outvoice-api/core"
	"github.com/jmholzer/outvoice-api/invoice"
)

type invoiceForm struct {
	clientForm
	InvoiceDate        string `json:"invoiceDate"`
	ReceiptNumber      string `json:"receiptNumber"`
	ReceiptDescription string `json:"receiptDescription"`
	ReceiptAmount      string `json:"receiptAmount"`
	// Recipient is the client's e-mail address, required for method "email".
	Recipient string `json:"recipient"`
}

// handleInvoice renders an invoice for the submitted client and dispatches
// on the method field: download, print or email. The client is recorded in
// the address store on every invoice; an already-known address is fine here.
func (server *Server) handleInvoice(w http.ResponseWriter, r *http.Request) error {
	var form invoiceForm
	if err := render.DecodeJSON(r.Body, &form); err != nil {
		return fmt.Errorf("%w: cannot decode invoice form: %w", ErrBadRequest, err)
	}

	data := form.addressData()
	_, err := server.store.CreateAddress(r.Context(), data)
	if err != nil && !errors.Is(err, core.ErrDuplicateAddress) {
		return err
	}

	inv := invoice.Invoice{
		Address: core.Address{
			FirstName:    data.FirstName,
			LastName:     data.LastName,
			AddressLine1: data.AddressLine1,
			AddressLine2: data.AddressLine2,
			City:         data.City,
			PostCode:     data.PostCode,
		},
		Date:        form.InvoiceDate,
		Number:      form.ReceiptNumber,
		Description: form.ReceiptDescription,
		Amount:      form.ReceiptAmount,
	}

	pdf, err := invoice.Render(server.cfg.App.CompanyName, inv)
	if err != nil {
		return err
	}

	switch form.Method {
	case "download":
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set(
			"Content-Disposition",
			fmt.Sprintf("attachment; filename=%q", inv.FileName()),
		)
		_, err := w.Write(pdf)
		return err
	case "print":
		if err := server.spooler.Print(r.Context(), inv, pdf); err != nil {
			return err
		}
		render.NoContent(w, r)
		return nil
	case "email":
		if server.mailer == nil {
			return fmt.Errorf("%w: no mailer", ErrNotConfigured)
		}
		recipient, err := core.ParseEmailAddress(form.Recipient)
		if err != nil {
			return err
		}
		if err := server.mailer.SendInvoice(r.Context(), recipient, inv, pdf); err != nil {
			return err
		}
		render.NoContent(w, r)
		return nil
	}
	return fmt.Errorf("%w: unknown invoice method %q", ErrBadRequest, form.Method)
}
