package model

import "time"

// Payment statuses.  The schema default is Pending but the write
// path always stores Confirmed, mirroring the simulated gateway:
// a payment is confirmed the moment it is recorded.
const (
	PaymentStatusPending   = "Pending"
	PaymentStatusConfirmed = "Confirmed"
)

// Payment records funds tendered for a parking slot.  It carries
// the user and slot fields a reservation has, but no foreign key
// links it to an actual Reservation row.  Append-only; a payment
// is never updated after it is written.
//
// Fields:
//  ID            – primary key identifier.
//  UserID        – identifier supplied by the user.
//  SlotNumber    – slot the payment is for.
//  PaymentMethod – display label chosen by the client ("Credit Card",
//                  "PayPal", "Google Pay"); stored verbatim, not
//                  checked against an enumeration.
//  PaymentNumber – card/account number as entered.
//  Amount        – amount tendered.
//  PaymentStatus – Pending by column default, Confirmed on write.
//  PaidAt        – set when the payment is written.
type Payment struct {
	ID            uint64    `json:"id"`            // payments.id
	UserID        string    `json:"userId"`        // payments.user_id
	SlotNumber    int       `json:"slotNumber"`    // payments.slot_number
	PaymentMethod string    `json:"paymentMethod"` // payments.payment_method
	PaymentNumber string    `json:"paymentNumber"` // payments.payment_number
	Amount        float64   `json:"amount"`        // payments.amount
	PaymentStatus string    `json:"paymentStatus"` // payments.payment_status
	PaidAt        time.Time `json:"paidAt"`        // payments.paid_at
}
