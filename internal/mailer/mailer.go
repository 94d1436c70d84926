// Package mailer sends payment confirmation emails over SMTP.
package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/GuntasBains77/Smart-Parking-Project/internal/config"
)

// Sender delivers a payment confirmation to a single recipient.  The
// queue consumer depends on this interface so tests can substitute an
// in-memory fake.
type Sender interface {
	SendPaymentConfirmation(to string, slotNumber int, amount float64) error
}

// SMTPSender is the production Sender.  It dials the SMTP server on
// every send; confirmation volume does not justify a held connection.
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPSender builds an SMTPSender from the application config.
func NewSMTPSender(cfg config.Config) *SMTPSender {
	return &SMTPSender{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass),
		from:   cfg.MailFrom,
	}
}

// SendPaymentConfirmation sends the fixed-subject confirmation mail with
// the slot number and amount interpolated into the body.
func (s *SMTPSender) SendPaymentConfirmation(to string, slotNumber int, amount float64) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Payment Confirmation")
	m.SetBody("text/plain", ConfirmationBody(slotNumber, amount))
	return s.dialer.DialAndSend(m)
}

// ConfirmationBody renders the confirmation text for a slot and amount.
func ConfirmationBody(slotNumber int, amount float64) string {
	return fmt.Sprintf("Your payment for parking slot %d has been confirmed. Amount: %g.", slotNumber, amount)
}
