package service

import (
	"context"
	"encoding/json"

	"prompt-manager/internal/pkg/logger"
	"prompt-manager/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

// INotifier delivers user-facing notices (saved, deleted, validation failed,
// copied) to whatever presentation is attached. Delivery is best effort.
type INotifier interface {
	Notify(ctx context.Context, event events.Event)
}

// NotifierFunc adapts a plain function to INotifier.
type NotifierFunc func(ctx context.Context, event events.Event)

func (f NotifierFunc) Notify(ctx context.Context, event events.Event) {
	f(ctx, event)
}

type nopNotifier struct{}

func (nopNotifier) Notify(context.Context, events.Event) {}

// NopNotifier drops every notice.
func NopNotifier() INotifier {
	return nopNotifier{}
}

type busNotifier struct {
	publisher message.Publisher
	topic     string
	logger    logger.ILogger
}

// NewBusNotifier publishes notices as JSON envelopes on a watermill topic.
func NewBusNotifier(publisher message.Publisher, topic string, log logger.ILogger) INotifier {
	return &busNotifier{
		publisher: publisher,
		topic:     topic,
		logger:    log,
	}
}

func (n *busNotifier) Notify(ctx context.Context, event events.Event) {
	payload, err := json.Marshal(events.ToEnvelope(event))
	if err != nil {
		n.logger.Error("Notifier", "Failed to encode notice", map[string]interface{}{"type": event.EventType(), "error": err})
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)

	// A lost notice must not fail the operation that produced it
	if err := n.publisher.Publish(n.topic, msg); err != nil {
		n.logger.Warn("Notifier", "Failed to publish notice", map[string]interface{}{"type": event.EventType(), "error": err})
	}
}
