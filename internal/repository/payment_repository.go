package repository

import (
	"context"
	"database/sql"

	"github.com/GuntasBains77/Smart-Parking-Project/internal/model"
)

// PaymentRepo provides insert and scan operations for the payments
// table.  Payments carry the same user/slot fields as reservations but
// nothing ties a payment row to a reservation row; submitting the same
// payment twice produces two independent rows.
type PaymentRepo struct {
	db *sql.DB
}

// NewPaymentRepo returns a new PaymentRepo bound to the given database.
func NewPaymentRepo(db *sql.DB) *PaymentRepo { return &PaymentRepo{db: db} }

// Create inserts a new payment marked Confirmed with paid_at set to the
// database clock, then populates the stored row back onto the record.
// The Pending schema default is deliberately bypassed on this path: the
// simulated gateway confirms at write time.
func (r *PaymentRepo) Create(ctx context.Context, p *model.Payment) error {
	if r.db == nil {
		return ErrUnavailable
	}
	const q = `INSERT INTO payments (user_id, slot_number, payment_method, payment_number, amount, payment_status, paid_at)
		VALUES (?, ?, ?, ?, ?, ?, UTC_TIMESTAMP())`
	result, err := r.db.ExecContext(ctx, q,
		p.UserID, p.SlotNumber, p.PaymentMethod, p.PaymentNumber, p.Amount, model.PaymentStatusConfirmed)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = uint64(id)
	const sel = `SELECT id, user_id, slot_number, payment_method, payment_number, amount, payment_status, paid_at
		FROM payments WHERE id = ?`
	return r.db.QueryRowContext(ctx, sel, p.ID).Scan(
		&p.ID, &p.UserID, &p.SlotNumber, &p.PaymentMethod, &p.PaymentNumber,
		&p.Amount, &p.PaymentStatus, &p.PaidAt,
	)
}

// ListAll returns every payment in natural store order.
func (r *PaymentRepo) ListAll(ctx context.Context) ([]model.Payment, error) {
	if r.db == nil {
		return nil, ErrUnavailable
	}
	const q = `SELECT id, user_id, slot_number, payment_method, payment_number, amount, payment_status, paid_at FROM payments`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Payment, 0)
	for rows.Next() {
		var p model.Payment
		if err := rows.Scan(&p.ID, &p.UserID, &p.SlotNumber, &p.PaymentMethod,
			&p.PaymentNumber, &p.Amount, &p.PaymentStatus, &p.PaidAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
