package pubsub

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"

	"github.com/lineagehub/lineagehub-events/pkg/schemas/common"
	hook "github.com/lineagehub/lineagehub-events/pkg/schemas/hook/v1"
)

// ErrPoison marks non-retriable bad content, e.g. a body that does not
// decode. Handlers returning it get the delivery dropped instead of requeued.
var ErrPoison = errors.New("poison message")

func isPoison(err error) bool { return errors.Is(err, ErrPoison) }

// WrapNotification normalizes a notification and seals it in an envelope
// ready to publish. Producer identifies the emitting hook.
func WrapNotification(producer string, n hook.Notification) (common.Envelope, error) {
	n.Normalize()
	if err := n.Validate(); err != nil {
		return common.Envelope{}, fmt.Errorf("wrap %s notification: %w", n.NotificationKind(), err)
	}

	data, err := json.Marshal(n)
	if err != nil {
		return common.Envelope{}, fmt.Errorf("wrap %s notification: %w", n.NotificationKind(), err)
	}

	env := common.Envelope{
		Meta: common.Meta{
			ID:   uuid.NewString(),
			Time: time.Now().UTC(),
			Type: hook.EventType,
		},
		Data: data,
	}
	if producer != "" {
		env.Meta.Producer = &producer
	}
	return env, nil
}

// PublishNotification is the producer side of the hook contract: normalize,
// envelope, publish on the hook routing key.
func PublishNotification(ctx context.Context, p Publisher, producer string, n hook.Notification) error {
	env, err := WrapNotification(producer, n)
	if err != nil {
		return err
	}
	return p.Publish(ctx, hook.RoutingKey, env)
}

// NotificationHandler adapts a typed handler to a delivery handler and
// enforces the consumer side of the contract: every decoded notification is
// normalized again before the handler sees it. Normalization is idempotent,
// so the double hop is safe and deliberate. Undecodable bodies come back as
// ErrPoison.
func NotificationHandler(h func(context.Context, hook.Notification) error) func(context.Context, amqp091.Delivery) error {
	return func(ctx context.Context, d amqp091.Delivery) error {
		var env common.Envelope
		if err := json.Unmarshal(d.Body, &env); err != nil {
			return fmt.Errorf("%w: envelope: %v", ErrPoison, err)
		}
		n, err := hook.Decode(env.Data)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrPoison, err)
		}
		n.Normalize()
		return h(ctx, n)
	}
}
