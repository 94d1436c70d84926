package repository

import (
	"context"
	"database/sql"

	"github.com/GuntasBains77/Smart-Parking-Project/internal/model"
)

// ReservationRepo provides insert and scan operations for the
// reservations table.  Reservations are an append log: there is no
// update, delete or keyed lookup.  All timestamps are stored in UTC.
type ReservationRepo struct {
	db *sql.DB
}

// NewReservationRepo returns a new ReservationRepo bound to the given database.
func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{db: db} }

// Create inserts a new reservation and populates the generated ID and the
// reserved_at column default on the provided record.  Only user_id and
// slot_number are written; the timestamp comes from the schema.
func (r *ReservationRepo) Create(ctx context.Context, res *model.Reservation) error {
	if r.db == nil {
		return ErrUnavailable
	}
	const q = `INSERT INTO reservations (user_id, slot_number) VALUES (?, ?)`
	result, err := r.db.ExecContext(ctx, q, res.UserID, res.SlotNumber)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	res.ID = uint64(id)
	// Query back the full row to populate timestamps and defaults
	const sel = `SELECT id, user_id, slot_number, reserved_at FROM reservations WHERE id = ?`
	return r.db.QueryRowContext(ctx, sel, res.ID).Scan(
		&res.ID, &res.UserID, &res.SlotNumber, &res.ReservedAt,
	)
}

// ListAll returns every reservation in natural store order.
func (r *ReservationRepo) ListAll(ctx context.Context) ([]model.Reservation, error) {
	if r.db == nil {
		return nil, ErrUnavailable
	}
	const q = `SELECT id, user_id, slot_number, reserved_at FROM reservations`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Reservation, 0)
	for rows.Next() {
		var res model.Reservation
		if err := rows.Scan(&res.ID, &res.UserID, &res.SlotNumber, &res.ReservedAt); err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, rows.Err()
}
