// Package workflow implements the two-step reservation flow the browser
// frontend drives: reserve a slot, then submit payment details from the
// dialog the reservation opens.  The flow keeps the same transient state
// the form held — the fields being edited, two independent dialog
// visibility flags and a status message — and issues the same two
// sequential calls against the API.
package workflow

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
)

// Flow is one user's in-progress reservation session.  It is not safe
// for concurrent use; the flow it models is strictly sequential.
type Flow struct {
	client      *http.Client
	baseURL     string
	ratePerSlot float64

	// Form fields, kept between steps.  CloseDialogs never clears them.
	UserID        string
	SlotNumber    int
	PaymentMethod string
	PaymentNumber string
	Email         string

	// Dialog state.
	ConfirmationVisible bool
	PaymentVisible      bool
	StatusMessage       string
	Alert               string
}

// NewFlow returns a Flow talking to the API at baseURL.  ratePerSlot is
// the flat amount charged per reservation; the flow computes and sends
// it with the payment step.  A nil client falls back to
// http.DefaultClient.
func NewFlow(baseURL string, ratePerSlot float64, client *http.Client) *Flow {
	if client == nil {
		client = http.DefaultClient
	}
	return &Flow{client: client, baseURL: baseURL, ratePerSlot: ratePerSlot}
}

// SubmitReservation performs the first step.  Both fields are required.
// On success both dialogs open: the confirmation with its success
// message, and the payment form.  On any failure — transport error or a
// non-2xx status — only the confirmation dialog opens, with an error
// message, and the payment dialog stays hidden.  There is no retry; the
// user resubmits manually.
func (f *Flow) SubmitReservation(ctx context.Context, userID string, slotNumber int) error {
	if userID == "" || slotNumber == 0 {
		return fmt.Errorf("user id and slot number are required")
	}
	f.UserID = userID
	f.SlotNumber = slotNumber

	err := f.post(ctx, "/reserve-slot", map[string]any{
		"userId":     userID,
		"slotNumber": slotNumber,
	})
	if err != nil {
		f.StatusMessage = "⚠️ Error confirming payment. Please try again later."
		f.ConfirmationVisible = true
		f.PaymentVisible = false
		return err
	}
	f.StatusMessage = "🎉 Payment confirmed! Slot reserved successfully."
	f.ConfirmationVisible = true
	f.PaymentVisible = true
	return nil
}

// SubmitPayment performs the second step, carrying the payment fields
// collected in the dialog plus the amount this flow computes from its
// flat rate.  On success the payment dialog closes; nothing further is
// shown to the user beyond a log line.  On failure an alert is recorded
// and the dialog stays open for resubmission.
func (f *Flow) SubmitPayment(ctx context.Context, method, number, email string) error {
	f.PaymentMethod = method
	f.PaymentNumber = number
	f.Email = email

	err := f.post(ctx, "/process-payment", map[string]any{
		"userId":        f.UserID,
		"slotNumber":    f.SlotNumber,
		"paymentMethod": method,
		"paymentNumber": number,
		"amount":        f.Amount(),
		"email":         email,
	})
	if err != nil {
		f.Alert = "Error processing payment. Please try again later."
		return err
	}
	log.Printf("workflow: payment processed | user_id=%s | slot=%d", f.UserID, f.SlotNumber)
	f.PaymentVisible = false
	return nil
}

// CloseDialogs hides both dialogs unconditionally without clearing any
// field.
func (f *Flow) CloseDialogs() {
	f.ConfirmationVisible = false
	f.PaymentVisible = false
}

// Amount returns the amount the payment step will send.
func (f *Flow) Amount() float64 { return f.ratePerSlot }

// post sends one JSON request and treats any non-2xx status as an
// error.  The response body is not consumed beyond the status line; the
// flow only acts on success or failure.
func (f *Flow) post(ctx context.Context, path string, payload map[string]any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%s: unexpected status %d", path, resp.StatusCode)
	}
	return nil
}
