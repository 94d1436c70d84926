package repository

import (
	"context"
	"database/sql"

	"github.com/GuntasBains77/Smart-Parking-Project/internal/model"
)

// FeedbackRepo provides insert and scan operations for the feedbacks
// table.
type FeedbackRepo struct {
	db *sql.DB
}

// NewFeedbackRepo returns a new FeedbackRepo bound to the given database.
func NewFeedbackRepo(db *sql.DB) *FeedbackRepo { return &FeedbackRepo{db: db} }

// Create inserts a new feedback row and populates the generated ID and
// submitted_at column default on the provided record.
func (r *FeedbackRepo) Create(ctx context.Context, f *model.Feedback) error {
	if r.db == nil {
		return ErrUnavailable
	}
	const q = `INSERT INTO feedbacks (user_id, feedback) VALUES (?, ?)`
	result, err := r.db.ExecContext(ctx, q, f.UserID, f.Feedback)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	f.ID = uint64(id)
	const sel = `SELECT id, user_id, feedback, submitted_at FROM feedbacks WHERE id = ?`
	return r.db.QueryRowContext(ctx, sel, f.ID).Scan(
		&f.ID, &f.UserID, &f.Feedback, &f.SubmittedAt,
	)
}

// ListAll returns every feedback row in natural store order.
func (r *FeedbackRepo) ListAll(ctx context.Context) ([]model.Feedback, error) {
	if r.db == nil {
		return nil, ErrUnavailable
	}
	const q = `SELECT id, user_id, feedback, submitted_at FROM feedbacks`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Feedback, 0)
	for rows.Next() {
		var f model.Feedback
		if err := rows.Scan(&f.ID, &f.UserID, &f.Feedback, &f.SubmittedAt); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}
