// Package queue defines message payloads exchanged over the message broker.
package queue

// PaymentConfirmedEvent is published when a payment row is successfully
// written.  It carries everything the notification consumer needs to
// compose the confirmation email without querying the primary database.
type PaymentConfirmedEvent struct {
	PaymentID   uint64  `json:"payment_id"`
	UserID      string  `json:"user_id"`
	SlotNumber  int     `json:"slot_number"`
	Amount      float64 `json:"amount"`
	Email       string  `json:"email"`
	ConfirmedAt string  `json:"confirmed_at"`
}
