package handler

import (
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/GuntasBains77/Smart-Parking-Project/internal/model"
	"github.com/GuntasBains77/Smart-Parking-Project/internal/queue"
	queue_publisher "github.com/GuntasBains77/Smart-Parking-Project/internal/service"
)

// PaymentHandler serves payment submissions and the payment listing.
// A successful submission writes one Confirmed payment row and then
// publishes a payment.confirmed event for the notification consumer.
// Publishing is fire-and-forget: the 201 response depends only on the
// database insert, never on the broker or on email delivery.
type PaymentHandler struct {
	Store     PaymentStore
	Publisher queue_publisher.Publisher
}

// NewPaymentHandler constructs a PaymentHandler.  Store and publisher
// must be non-nil.
func NewPaymentHandler(store PaymentStore, pub queue_publisher.Publisher) *PaymentHandler {
	if store == nil || pub == nil {
		panic("nil dependency passed to NewPaymentHandler")
	}
	return &PaymentHandler{Store: store, Publisher: pub}
}

// ProcessPayment handles POST /process-payment.  All six fields are
// required; a missing or zero value in any of them rejects the request
// before anything is written, so no email can be triggered either.
// There is no idempotency key: resubmitting records a second payment.
func (h *PaymentHandler) ProcessPayment(c echo.Context) error {
	var body struct {
		UserID        string  `json:"userId"`
		SlotNumber    int     `json:"slotNumber"`
		PaymentMethod string  `json:"paymentMethod"`
		Amount        float64 `json:"amount"`
		PaymentNumber string  `json:"paymentNumber"`
		Email         string  `json:"email"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "All payment details are required"})
	}
	// The payment number is deliberately left out of the log line.
	log.Printf("payment: received | user_id=%s | slot=%d | method=%s | amount=%g",
		body.UserID, body.SlotNumber, body.PaymentMethod, body.Amount)

	if body.UserID == "" || body.SlotNumber == 0 || body.PaymentMethod == "" ||
		body.Amount == 0 || body.PaymentNumber == "" || body.Email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "All payment details are required"})
	}

	p := model.Payment{
		UserID:        body.UserID,
		SlotNumber:    body.SlotNumber,
		PaymentMethod: body.PaymentMethod,
		PaymentNumber: body.PaymentNumber,
		Amount:        body.Amount,
	}
	if err := h.Store.Create(c.Request().Context(), &p); err != nil {
		log.Printf("payment: save failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "Error processing payment",
			"error":   err.Error(),
		})
	}

	// Fire-and-forget: the publisher logs its own failures and the
	// response below is sent regardless.
	_ = h.Publisher.PublishPaymentConfirmed(c.Request().Context(), queue.PaymentConfirmedEvent{
		PaymentID:   p.ID,
		UserID:      p.UserID,
		SlotNumber:  p.SlotNumber,
		Amount:      p.Amount,
		Email:       body.Email,
		ConfirmedAt: p.PaidAt.UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Payment confirmed and email sent!",
		"payment": p,
	})
}

// GetPayments handles GET /payments.
func (h *PaymentHandler) GetPayments(c echo.Context) error {
	list, err := h.Store.ListAll(c.Request().Context())
	if err != nil {
		log.Printf("payment: list failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error fetching payments"})
	}
	return c.JSON(http.StatusOK, list)
}
