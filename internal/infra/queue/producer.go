package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// AssignmentPayload is the message published once routing assigns a
// lead to a rep. Delivery happens out-of-band; the routing operation
// never learns whether it worked.
type AssignmentPayload struct {
	NotificationID string    `json:"notification_id"`
	LeadID         int       `json:"lead_id"`
	RepName        string    `json:"rep_name"`
	Email          string    `json:"email"`
	AssignedAt     time.Time `json:"assigned_at"`
}

func NewAssignmentPayload(leadID int, repName, email string) AssignmentPayload {
	return AssignmentPayload{
		NotificationID: uuid.New().String(),
		LeadID:         leadID,
		RepName:        repName,
		Email:          email,
		AssignedAt:     time.Now(),
	}
}

type Producer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *Producer {
	return &Producer{
		Conn: conn,
		Ch:   ch,
	}
}

// Notify implements the usecase notification sink by publishing the
// assignment to RabbitMQ.
func (p *Producer) Notify(ctx context.Context, leadID int, repName, email string) error {
	body, err := json.Marshal(NewAssignmentPayload(leadID, repName, email))
	if err != nil {
		return fmt.Errorf("failed to marshal assignment payload: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName, // ex.dealflow
		RoutingKey,   // k.assignment
		false,        // Mandatory
		false,        // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish to RabbitMQ: %w", err)
	}

	return nil
}

// LogNotifier is the fallback sink for environments without a broker.
// Routing must keep working in dev with nothing but the log line below.
type LogNotifier struct{}

func (LogNotifier) Notify(ctx context.Context, leadID int, repName, email string) error {
	log.Printf("[Notification] Lead %d assigned to %s (email: %s)", leadID, repName, email)
	return nil
}
