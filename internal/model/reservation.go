package model

import "time"

// Reservation binds a user to a parking slot at a point in time.
// Rows are append-only: a reservation is never updated or deleted
// once written.  No uniqueness is enforced on SlotNumber, so two
// users (or the same user twice) may hold the same slot.
//
// Fields:
//  ID         – primary key identifier.
//  UserID     – identifier supplied by the user.
//  SlotNumber – parking slot being reserved.
//  ReservedAt – creation timestamp (column default).
//
// The json tags use the client-facing field names because these
// structs are returned directly as the wire documents.
type Reservation struct {
	ID         uint64    `json:"id"`         // reservations.id
	UserID     string    `json:"userId"`     // reservations.user_id
	SlotNumber int       `json:"slotNumber"` // reservations.slot_number
	ReservedAt time.Time `json:"reservedAt"` // reservations.reserved_at
}
