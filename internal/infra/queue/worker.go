package queue

import (
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"
	log "github.com/sirupsen/logrus"
)

// VerificationMailer is the contract the worker needs from the mail layer.
type VerificationMailer interface {
	SendVerification(to, firstName, verificationURL string) error
}

type Worker struct {
	Channel *amqp.Channel
	Mailer  VerificationMailer
}

func NewWorker(ch *amqp.Channel, mailer VerificationMailer) *Worker {
	return &Worker{
		Channel: ch,
		Mailer:  mailer,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.WithError(err).Fatal("Failed to register RabbitMQ consumer")
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload LeadCreatedPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.WithError(err).Error("Dropping malformed lead-created message")
				d.Nack(false, false)
				continue
			}

			logCtx := log.WithFields(log.Fields{
				"lead_id": payload.LeadID,
				"email":   payload.Email,
			})

			if err := w.Mailer.SendVerification(payload.Email, payload.FirstName, payload.VerificationURL); err != nil {
				// The lead already exists whether or not this email arrives.
				// No requeue; the message dead-letters.
				logCtx.WithError(err).Warn("Verification email failed")
				d.Nack(false, false)
				continue
			}

			logCtx.Info("Verification email sent")
			d.Ack(false)
		}
	}()

	log.WithField("queue", queueName).Info("Email worker waiting for lead-created events")
	<-forever
}
