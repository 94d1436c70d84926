package handler

import (
	"context"

	"github.com/GuntasBains77/Smart-Parking-Project/internal/model"
)

// The handlers consume the persistence layer through these narrow
// interfaces rather than the concrete repositories, so tests can inject
// in-memory fakes.  Each collection supports exactly the two operations
// the contract needs: append one document, scan all documents.

// ReservationStore persists and lists reservations.
type ReservationStore interface {
	Create(ctx context.Context, r *model.Reservation) error
	ListAll(ctx context.Context) ([]model.Reservation, error)
}

// PaymentStore persists and lists payments.
type PaymentStore interface {
	Create(ctx context.Context, p *model.Payment) error
	ListAll(ctx context.Context) ([]model.Payment, error)
}

// FeedbackStore persists and lists feedback entries.
type FeedbackStore interface {
	Create(ctx context.Context, f *model.Feedback) error
	ListAll(ctx context.Context) ([]model.Feedback, error)
}
