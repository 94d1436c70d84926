// Package queue_publisher provides functions to publish domain events to RabbitMQ.
// Errors are logged and returned to allow callers to ignore failures without
// interrupting the main request flow.
package queue_publisher

import (
	"context"
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	q "github.com/GuntasBains77/Smart-Parking-Project/internal/queue"
)

// Publisher publishes payment events.  The payment handler depends on
// this interface so tests can capture events with an in-memory fake.
type Publisher interface {
	PublishPaymentConfirmed(ctx context.Context, event q.PaymentConfirmedEvent) error
}

// AMQPPublisher publishes to a RabbitMQ broker resolved from the
// environment.  A fresh connection per publish keeps the implementation
// robust against broker restarts at this traffic level.
type AMQPPublisher struct{}

// NewAMQPPublisher returns an AMQPPublisher.
func NewAMQPPublisher() *AMQPPublisher { return &AMQPPublisher{} }

// PublishPaymentConfirmed publishes a PaymentConfirmedEvent to the
// "payment.confirmed" queue.  The function never panics; any error is
// logged and returned so the caller can choose to ignore it.  Messages
// are marked as persistent.
func (p *AMQPPublisher) PublishPaymentConfirmed(ctx context.Context, event q.PaymentConfirmedEvent) error {
	conn, err := amqp.Dial(q.BrokerURL())
	if err != nil {
		log.Printf("rabbitmq: dial failed: %v", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Printf("rabbitmq: channel open failed: %v", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	// Ensure the queue exists (idempotent). Durable so messages survive broker restarts.
	if _, err := ch.QueueDeclare(
		"payment.confirmed", // name
		true,                // durable
		false,               // autoDelete
		false,               // exclusive
		false,               // noWait
		nil,                 // args
	); err != nil {
		log.Printf("rabbitmq: queue declare failed: %v", err)
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("rabbitmq: marshal event failed: %v", err)
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent, // store on disk
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx,
		"",                  // default exchange
		"payment.confirmed", // routing key = queue name
		false,               // mandatory
		false,               // immediate
		pub,
	); err != nil {
		log.Printf("rabbitmq: publish failed: %v", err)
		return err
	}

	return nil
}
