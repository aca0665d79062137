package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"

	"github.com/lineagehub/lineagehub-events/pkg/schemas/common"
)

type Publisher interface {
	Publish(ctx context.Context, key string, msg common.Envelope) error
	Close() error
}

type rmqPublisher struct {
	conn     *amqp091.Connection
	exchange string
	log      *slog.Logger
}

// New connects, declares the topic exchange and enables publisher confirms.
func New(url, exchange string, logger *slog.Logger) (Publisher, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	defer ch.Close()
	if err := ch.ExchangeDeclare(
		exchange, "topic", true, false, false, false, nil,
	); err != nil {
		conn.Close()
		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		conn.Close()
		return nil, err
	}

	return &rmqPublisher{
		conn:     conn,
		exchange: exchange,
		log:      logger,
	}, nil
}

func (r *rmqPublisher) Publish(ctx context.Context, key string, msg common.Envelope) error {
	ch, err := r.conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	msgID := msg.Meta.ID
	if msgID == "" {
		msgID = uuid.NewString()
	}
	cid := ""
	if msg.Meta.CorrelationID != nil {
		cid = *msg.Meta.CorrelationID
	} else {
		cid = uuid.NewString()
	}
	appID := ""
	if msg.Meta.Producer != nil {
		appID = *msg.Meta.Producer
	}

	err = ch.PublishWithContext(
		ctx, r.exchange, key, false, false,
		amqp091.Publishing{
			ContentType:   "application/json",
			DeliveryMode:  amqp091.Persistent,
			MessageId:     msgID,
			CorrelationId: cid,
			Type:          msg.Meta.Type,
			AppId:         appID,
			Timestamp:     time.Now(),
			Body:          body,
		},
	)
	if err == nil {
		r.log.Info("published",
			slog.String("key", key),
			slog.String("exchange", r.exchange),
			slog.String("type", msg.Meta.Type),
		)
	}
	return err
}

func (r *rmqPublisher) Close() error {
	return r.conn.Close()
}
