package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GuntasBains77/Smart-Parking-Project/internal/config"
)

func TestConfirmationBody(t *testing.T) {
	assert.Equal(t,
		"Your payment for parking slot 12 has been confirmed. Amount: 25.",
		ConfirmationBody(12, 25))
	assert.Equal(t,
		"Your payment for parking slot 3 has been confirmed. Amount: 9.5.",
		ConfirmationBody(3, 9.5))
}

func TestNewSMTPSender(t *testing.T) {
	s := NewSMTPSender(config.Config{
		SMTPHost: "mail.example.com",
		SMTPPort: 587,
		MailFrom: "noreply@example.com",
	})
	assert.Equal(t, "noreply@example.com", s.from)
	assert.NotNil(t, s.dialer)
}
