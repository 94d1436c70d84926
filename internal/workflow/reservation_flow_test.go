package workflow

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// apiStub records the requests each endpoint receives and answers with a
// configurable status.
type apiStub struct {
	reserveStatus int
	payStatus     int
	reserveBodies []map[string]any
	payBodies     []map[string]any
}

func (s *apiStub) server(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/reserve-slot", func(w http.ResponseWriter, r *http.Request) {
		s.reserveBodies = append(s.reserveBodies, decode(t, r))
		w.WriteHeader(s.reserveStatus)
	})
	mux.HandleFunc("/process-payment", func(w http.ResponseWriter, r *http.Request) {
		s.payBodies = append(s.payBodies, decode(t, r))
		w.WriteHeader(s.payStatus)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func decode(t *testing.T, r *http.Request) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(r.Body)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	return m
}

func TestSubmitReservation_SuccessOpensBothDialogs(t *testing.T) {
	stub := &apiStub{reserveStatus: http.StatusCreated, payStatus: http.StatusCreated}
	f := NewFlow(stub.server(t).URL, 25, nil)

	require.NoError(t, f.SubmitReservation(context.Background(), "u1", 12))

	assert.True(t, f.ConfirmationVisible)
	assert.True(t, f.PaymentVisible)
	assert.Contains(t, f.StatusMessage, "Slot reserved successfully")
	require.Len(t, stub.reserveBodies, 1)
	assert.Equal(t, "u1", stub.reserveBodies[0]["userId"])
	assert.Equal(t, float64(12), stub.reserveBodies[0]["slotNumber"])
}

func TestSubmitReservation_FailureKeepsPaymentHidden(t *testing.T) {
	stub := &apiStub{reserveStatus: http.StatusInternalServerError}
	f := NewFlow(stub.server(t).URL, 25, nil)

	err := f.SubmitReservation(context.Background(), "u1", 12)

	assert.Error(t, err)
	assert.True(t, f.ConfirmationVisible)
	assert.False(t, f.PaymentVisible)
	assert.Contains(t, f.StatusMessage, "Error confirming payment")
}

func TestSubmitReservation_UnreachableServer(t *testing.T) {
	f := NewFlow("http://127.0.0.1:1", 25, nil)

	err := f.SubmitReservation(context.Background(), "u1", 12)

	assert.Error(t, err)
	assert.True(t, f.ConfirmationVisible)
	assert.False(t, f.PaymentVisible)
}

func TestSubmitReservation_RequiredFields(t *testing.T) {
	stub := &apiStub{reserveStatus: http.StatusCreated}
	f := NewFlow(stub.server(t).URL, 25, nil)

	assert.Error(t, f.SubmitReservation(context.Background(), "", 12))
	assert.Error(t, f.SubmitReservation(context.Background(), "u1", 0))
	// Nothing was sent for either attempt.
	assert.Empty(t, stub.reserveBodies)
}

// The flow computes and sends the amount the payment endpoint requires;
// the browser client it replaces omitted it and would always have been
// rejected with a 400.
func TestSubmitPayment_SendsComputedAmount(t *testing.T) {
	stub := &apiStub{reserveStatus: http.StatusCreated, payStatus: http.StatusCreated}
	f := NewFlow(stub.server(t).URL, 25, nil)
	require.NoError(t, f.SubmitReservation(context.Background(), "u1", 12))

	require.NoError(t, f.SubmitPayment(context.Background(), "PayPal", "PN1", "u1@x.com"))

	require.Len(t, stub.payBodies, 1)
	body := stub.payBodies[0]
	assert.Equal(t, "u1", body["userId"])
	assert.Equal(t, float64(12), body["slotNumber"])
	assert.Equal(t, "PayPal", body["paymentMethod"])
	assert.Equal(t, "PN1", body["paymentNumber"])
	assert.Equal(t, float64(25), body["amount"])
	assert.Equal(t, "u1@x.com", body["email"])
	assert.False(t, f.PaymentVisible)
}

func TestSubmitPayment_FailureKeepsDialogOpen(t *testing.T) {
	stub := &apiStub{reserveStatus: http.StatusCreated, payStatus: http.StatusBadRequest}
	f := NewFlow(stub.server(t).URL, 25, nil)
	require.NoError(t, f.SubmitReservation(context.Background(), "u1", 12))

	err := f.SubmitPayment(context.Background(), "PayPal", "PN1", "u1@x.com")

	assert.Error(t, err)
	assert.True(t, f.PaymentVisible)
	assert.Contains(t, f.Alert, "Error processing payment")
}

func TestCloseDialogs_KeepsFields(t *testing.T) {
	stub := &apiStub{reserveStatus: http.StatusCreated}
	f := NewFlow(stub.server(t).URL, 25, nil)
	require.NoError(t, f.SubmitReservation(context.Background(), "u1", 12))

	f.CloseDialogs()

	assert.False(t, f.ConfirmationVisible)
	assert.False(t, f.PaymentVisible)
	assert.Equal(t, "u1", f.UserID)
	assert.Equal(t, 12, f.SlotNumber)
}
