package notifications

import (
	"context"
	"telecare-service/internal/app/contracts"
	"telecare-service/internal/pkg/constvars"
	"telecare-service/internal/pkg/dto/requests"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// WhatsAppWorker drains the outbound message queue and delivers each text
// through the messaging provider. Deliveries that cannot be parsed or sent
// are acked and dropped; the queue carries best-effort notifications, not
// state the rest of the system depends on.
type WhatsAppWorker struct {
	Channel         *amqp.Channel
	Queue           string
	MessagingClient contracts.MessagingClient
	Log             *zap.Logger
}

func NewWhatsAppWorker(conn *amqp.Connection, queue string, messagingClient contracts.MessagingClient, logger *zap.Logger) (*WhatsAppWorker, error) {
	channel, err := conn.Channel()
	if err != nil {
		return nil, err
	}
	if _, err := channel.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return nil, err
	}
	if err := channel.Qos(1, 0, false); err != nil {
		return nil, err
	}
	return &WhatsAppWorker{
		Channel:         channel,
		Queue:           queue,
		MessagingClient: messagingClient,
		Log:             logger,
	}, nil
}

// Run consumes until the context is cancelled or the channel closes.
func (w *WhatsAppWorker) Run(ctx context.Context) error {
	deliveries, err := w.Channel.Consume(w.Queue, "", false, false, false, false, nil)
	if err != nil {
		return err
	}

	w.Log.Info("whatsAppWorker started",
		zap.String(constvars.LoggingQueueNameKey, w.Queue),
	)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case delivery, ok := <-deliveries:
			if !ok {
				return nil
			}
			w.handle(ctx, delivery)
		}
	}
}

func (w *WhatsAppWorker) handle(ctx context.Context, delivery amqp.Delivery) {
	var message requests.WhatsAppMessage
	if err := json.Unmarshal(delivery.Body, &message); err != nil {
		w.Log.Error("whatsAppWorker dropping unparseable delivery",
			zap.String(constvars.LoggingQueueNameKey, w.Queue),
			zap.Error(err),
		)
		_ = delivery.Ack(false)
		return
	}

	if err := w.MessagingClient.Send(ctx, message.PhoneNumber, message.Message); err != nil {
		w.Log.Error("whatsAppWorker provider send failed, dropping",
			zap.String(constvars.LoggingQueueNameKey, w.Queue),
			zap.String(constvars.LoggingPhoneNumberKey, message.PhoneNumber),
			zap.Error(err),
		)
	}

	// DROP strategy: ack regardless of provider outcome.
	_ = delivery.Ack(false)
}
