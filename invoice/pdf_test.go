package invoice_test

import (
	"testing"

	"github.com/jmholzer/outvoice-api/core"
	"github.com/jmholzer/outvoice-api/invoice"
	"github.com/jmholzer/outvoice-api/tests"
	"github.com/stretchr/testify/assert"
)

func testInvoice() invoice.Invoice {
	data := tests.FakeAddressData()
	return invoice.Invoice{
		Address: core.Address{
			ID:           1,
			FirstName:    data.FirstName,
			LastName:     data.LastName,
			AddressLine1: data.AddressLine1,
			AddressLine2: data.AddressLine2,
			City:         data.City,
			PostCode:     data.PostCode,
		},
		Date:        "2026-08-23",
		Number:      "2026-017",
		Description: "Consulting services",
		Amount:      "150",
	}
}

func TestRender(t *testing.T) {
	t.Run("ok: renders a pdf document", func(t *testing.T) {
		pdf, err := invoice.Render("Acme Ltd", testInvoice())
		tests.Check(err)
		assert.NotEmpty(t, pdf)
		assert.Equal(t, "%PDF", string(pdf[:4]), "Output should be a pdf document")
	})

	t.Run("ok: absent address lines do not break rendering", func(t *testing.T) {
		inv := testInvoice()
		inv.Address.FirstName = nil
		inv.Address.AddressLine2 = nil
		pdf, err := invoice.Render("Acme Ltd", inv)
		tests.Check(err)
		assert.NotEmpty(t, pdf)
	})
}

func TestFileName(t *testing.T) {
	t.Run("ok: file name includes last name and date", func(t *testing.T) {
		inv := testInvoice()
		inv.Address.LastName = tests.Ptr("Doe")
		assert.Equal(t, "invoice_Doe_23_08_2026.pdf", inv.FileName())
	})

	t.Run("ok: falls back gracefully on missing fields", func(t *testing.T) {
		inv := testInvoice()
		inv.Address.LastName = nil
		inv.Date = "not a date"
		assert.Equal(t, "invoice.pdf", inv.FileName())
	})
}
