package model

import "time"

// Feedback is free-text commentary submitted by a user.  It is
// unrelated to reservations and payments and immutable once
// stored.
//
// Fields:
//  ID          – primary key identifier.
//  UserID      – identifier supplied by the user.
//  Feedback    – the free-text body.
//  SubmittedAt – creation timestamp (column default).
type Feedback struct {
	ID          uint64    `json:"id"`          // feedbacks.id
	UserID      string    `json:"userId"`      // feedbacks.user_id
	Feedback    string    `json:"feedback"`    // feedbacks.feedback
	SubmittedAt time.Time `json:"submittedAt"` // feedbacks.submitted_at
}
