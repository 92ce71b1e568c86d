package queue

import (
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// AssignmentMailer delivers the assignment notification. The worker is
// the only caller; lead state never depends on the outcome.
type AssignmentMailer interface {
	SendAssignment(to, repName string, leadID int) error
}

type Worker struct {
	Channel *amqp.Channel
	Mailer  AssignmentMailer
}

func NewWorker(ch *amqp.Channel, mailer AssignmentMailer) *Worker {
	return &Worker{
		Channel: ch,
		Mailer:  mailer,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName, // queue
		"",        // consumer
		false,     // auto-ack (manual is safer)
		false,     // exclusive
		false,     // no-local
		false,     // no-wait
		nil,       // args
	)
	if err != nil {
		log.Fatalf("❌ [WORKER] failed to register RabbitMQ consumer: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload AssignmentPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("❌ [WORKER] invalid JSON: %s", err)
				// Malformed message. Reject without requeue so it goes
				// to the DLQ instead of looping forever.
				d.Nack(false, false)
				continue
			}

			log.Printf("📥 [WORKER] assignment notification %s: lead %d → %s",
				payload.NotificationID, payload.LeadID, payload.RepName)

			if err := w.deliver(payload); err != nil {
				log.Printf("❌ [WORKER] delivery failed: %s", err)
				d.Nack(false, false)
			} else {
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] Worker running, waiting on queue '%s'", queueName)
	<-forever
}

func (w *Worker) deliver(payload AssignmentPayload) error {
	if w.Mailer == nil {
		// No SMTP configured: the log line above is the delivery.
		return nil
	}
	return w.Mailer.SendAssignment(payload.Email, payload.RepName, payload.LeadID)
}
