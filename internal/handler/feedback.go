package handler

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/GuntasBains77/Smart-Parking-Project/internal/model"
)

// FeedbackHandler serves free-text feedback submissions and the
// feedback listing.  Feedback is unrelated to reservations and
// payments.
type FeedbackHandler struct {
	Store FeedbackStore
}

// NewFeedbackHandler constructs a FeedbackHandler.  The store must be
// non-nil.
func NewFeedbackHandler(store FeedbackStore) *FeedbackHandler {
	if store == nil {
		panic("nil store passed to NewFeedbackHandler")
	}
	return &FeedbackHandler{Store: store}
}

// SubmitFeedback handles POST /submit-feedback.  Both userId and
// feedback must be non-empty.  The created document is returned under
// the newFeedback key; the asymmetry with the other endpoints' field
// names is part of the published contract.
func (h *FeedbackHandler) SubmitFeedback(c echo.Context) error {
	var body struct {
		UserID   string `json:"userId"`
		Feedback string `json:"feedback"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "User ID and feedback are required"})
	}
	if body.UserID == "" || body.Feedback == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "User ID and feedback are required"})
	}

	f := model.Feedback{UserID: body.UserID, Feedback: body.Feedback}
	if err := h.Store.Create(c.Request().Context(), &f); err != nil {
		log.Printf("feedback: save failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error submitting feedback"})
	}
	log.Printf("feedback: saved | id=%d | user_id=%s", f.ID, f.UserID)
	return c.JSON(http.StatusCreated, echo.Map{
		"message":     "Feedback submitted successfully",
		"newFeedback": f,
	})
}

// GetFeedbacks handles GET /feedbacks.
func (h *FeedbackHandler) GetFeedbacks(c echo.Context) error {
	list, err := h.Store.ListAll(c.Request().Context())
	if err != nil {
		log.Printf("feedback: list failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error fetching feedbacks"})
	}
	return c.JSON(http.StatusOK, list)
}
