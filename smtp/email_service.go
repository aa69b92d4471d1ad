package smtp

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/jmholzer/outvoice-api/config"
	"github.com/jmholzer/outvoice-api/core"
	"github.com/jmholzer/outvoice-api/invoice"
	"gopkg.in/gomail.v2"
)

type EmailService struct {
	from          string
	company       string
	d             *gomail.Dialer
	notifications core.EmailAddress
}

var _ invoice.Mailer = &EmailService{}

func NewEmailService(cfg config.EmailConfig, companyName string) (*EmailService, error) {
	d := gomail.NewDialer(
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
	)

	s := EmailService{
		from:    cfg.From,
		company: companyName,
		d:       d,
	}

	address, err := core.ParseEmailAddress(cfg.Notifications)
	switch {
	case errors.Is(err, core.ErrEmailAddressEmpty):
		slog.Info("Notification e-mail address empty, invoices will not be cc'd")
	case err != nil:
		return nil, err
	default:
		s.notifications = address
	}

	return &s, nil
}

// SendEmail will build and send a basic plain-text e-mail message.
// This will open a new server connection and immediately close it after sending the e-mail.
func (s *EmailService) SendEmail(
	_ context.Context,
	address core.EmailAddress,
	subject string,
	plaintextMessage string,
) error {
	m := gomail.NewMessage()

	m.SetHeader("From", s.from)
	m.SetHeader("To", address.String())
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plaintextMessage)

	return s.d.DialAndSend(m)
}

// SendInvoice implements invoice.Mailer: it e-mails the rendered pdf as an
// attachment, cc'ing the configured notifications address if there is one.
func (s *EmailService) SendInvoice(
	_ context.Context,
	to core.EmailAddress,
	inv invoice.Invoice,
	pdf []byte,
) error {
	m := gomail.NewMessage()

	m.SetHeader("From", s.from)
	m.SetHeader("To", to.String())
	if s.notifications != nil {
		m.SetHeader("Cc", s.notifications.String())
	}
	m.SetHeader("Subject", fmt.Sprintf("Invoice %s from %s", inv.Number, s.company))
	m.SetBody("text/plain", invoiceBody(s.company, inv))
	m.Attach(inv.FileName(), gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := io.Copy(w, bytes.NewReader(pdf))
		return err
	}))

	return s.d.DialAndSend(m)
}

func invoiceBody(company string, inv invoice.Invoice) string {
	greeting := "Hello,"
	if inv.Address.FirstName != nil && *inv.Address.FirstName != "" {
		greeting = fmt.Sprintf("Hello %s,", *inv.Address.FirstName)
	}
	return fmt.Sprintf(
		"%s\n\nPlease find attached your invoice dated %s from %s.\n\nKind regards,\n%s\n",
		greeting, inv.Date, company, company,
	)
}
