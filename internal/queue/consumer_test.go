package queue

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	to     []string
	slots  []int
	amount []float64
	err    error
}

func (f *fakeSender) SendPaymentConfirmation(to string, slot int, amount float64) error {
	if f.err != nil {
		return f.err
	}
	f.to = append(f.to, to)
	f.slots = append(f.slots, slot)
	f.amount = append(f.amount, amount)
	return nil
}

func TestHandleMessage_SendsConfirmation(t *testing.T) {
	sender := &fakeSender{}
	body := []byte(`{"payment_id":3,"user_id":"u1","slot_number":12,"amount":25,"email":"u1@x.com","confirmed_at":"2024-11-02T10:31:00Z"}`)

	require.NoError(t, HandleMessage(body, sender))

	require.Len(t, sender.to, 1)
	assert.Equal(t, "u1@x.com", sender.to[0])
	assert.Equal(t, 12, sender.slots[0])
	assert.Equal(t, float64(25), sender.amount[0])
}

func TestHandleMessage_BadJSON(t *testing.T) {
	sender := &fakeSender{}
	assert.Error(t, HandleMessage([]byte("{not json"), sender))
	assert.Empty(t, sender.to)
}

func TestHandleMessage_NoRecipient(t *testing.T) {
	sender := &fakeSender{}
	assert.Error(t, HandleMessage([]byte(`{"payment_id":1}`), sender))
	assert.Empty(t, sender.to)
}

func TestHandleMessage_SendFailure(t *testing.T) {
	sender := &fakeSender{err: errors.New("smtp unreachable")}
	body := []byte(`{"payment_id":3,"slot_number":12,"amount":25,"email":"u1@x.com"}`)
	assert.Error(t, HandleMessage(body, sender))
}
