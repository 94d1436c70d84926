package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GuntasBains77/Smart-Parking-Project/internal/handler"
	"github.com/GuntasBains77/Smart-Parking-Project/internal/model"
)

type fakeFeedbackStore struct {
	created []model.Feedback
	err     error
}

func (s *fakeFeedbackStore) Create(_ context.Context, f *model.Feedback) error {
	if s.err != nil {
		return s.err
	}
	f.ID = uint64(len(s.created) + 1)
	f.SubmittedAt = time.Now().UTC()
	s.created = append(s.created, *f)
	return nil
}

func (s *fakeFeedbackStore) ListAll(_ context.Context) ([]model.Feedback, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.created, nil
}

func TestSubmitFeedback_Success(t *testing.T) {
	store := &fakeFeedbackStore{}
	h := handler.NewFeedbackHandler(store)

	rec := postJSON(t, `{"userId":"u1","feedback":"more shade please"}`, h.SubmitFeedback)

	assert.Equal(t, http.StatusCreated, rec.Code)
	var resp struct {
		Message     string         `json:"message"`
		NewFeedback model.Feedback `json:"newFeedback"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Feedback submitted successfully", resp.Message)
	assert.Equal(t, "more shade please", resp.NewFeedback.Feedback)
	assert.False(t, resp.NewFeedback.SubmittedAt.IsZero())
	assert.Len(t, store.created, 1)
}

func TestSubmitFeedback_MissingFields(t *testing.T) {
	for name, body := range map[string]string{
		"no feedback":    `{"userId":"u1"}`,
		"empty feedback": `{"userId":"u1","feedback":""}`,
		"no userId":      `{"feedback":"hi"}`,
	} {
		t.Run(name, func(t *testing.T) {
			store := &fakeFeedbackStore{}
			h := handler.NewFeedbackHandler(store)

			rec := postJSON(t, body, h.SubmitFeedback)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "User ID and feedback are required")
			assert.Empty(t, store.created)
		})
	}
}

func TestSubmitFeedback_StoreError(t *testing.T) {
	h := handler.NewFeedbackHandler(&fakeFeedbackStore{err: errors.New("down")})

	rec := postJSON(t, `{"userId":"u1","feedback":"hi"}`, h.SubmitFeedback)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Error submitting feedback")
}

func TestGetFeedbacks(t *testing.T) {
	store := &fakeFeedbackStore{}
	h := handler.NewFeedbackHandler(store)
	postJSON(t, `{"userId":"u1","feedback":"hi"}`, h.SubmitFeedback)

	rec := getJSON(t, h.GetFeedbacks)

	assert.Equal(t, http.StatusOK, rec.Code)
	var list []model.Feedback
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "hi", list[0].Feedback)
}
