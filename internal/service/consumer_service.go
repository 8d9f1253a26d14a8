package service

import (
	"context"

	"prompt-manager/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill/message"
)

// NoticeBroadcaster fans a serialized notice out to connected clients.
type NoticeBroadcaster interface {
	Broadcast(data []byte)
}

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	subscriber  message.Subscriber
	topicName   string
	broadcaster NoticeBroadcaster
	logger      logger.ILogger
}

// NewConsumerService forwards every notice published on topicName to the
// broadcaster, typically the websocket hub.
func NewConsumerService(
	subscriber message.Subscriber,
	topicName string,
	broadcaster NoticeBroadcaster,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		subscriber:  subscriber,
		topicName:   topicName,
		broadcaster: broadcaster,
		logger:      log,
	}
}

// Consume subscribes and returns immediately; forwarding runs until ctx is
// cancelled or the subscriber closes.
func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
		cs.logger.Debug("ConsumerService", "Notice subscription closed", map[string]interface{}{"topic": cs.topicName})
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	// Notices are fire and forget; always ack so gochannel never redelivers
	defer msg.Ack()

	if len(msg.Payload) == 0 {
		cs.logger.Warn("ConsumerService", "Dropping empty notice", map[string]interface{}{"uuid": msg.UUID})
		return
	}
	cs.broadcaster.Broadcast(msg.Payload)
}
