package service

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"prompt-manager/internal/constant"
	"prompt-manager/internal/pkg/logger"
	"prompt-manager/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturingBroadcaster struct {
	mu       sync.Mutex
	payloads [][]byte
}

func (b *capturingBroadcaster) Broadcast(data []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.payloads = append(b.payloads, data)
}

func (b *capturingBroadcaster) received() [][]byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([][]byte(nil), b.payloads...)
}

func TestNoticePipeline(t *testing.T) {
	const topic = "TEST_NOTICES"
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	broadcaster := &capturingBroadcaster{}
	require.NoError(t, NewConsumerService(pubSub, topic, broadcaster, logger.NewNopLogger()).Consume(ctx))

	notifier := NewBusNotifier(pubSub, topic, logger.NewNopLogger())
	notifier.Notify(ctx, events.NewNotice(constant.NoticeSaveSucceeded, constant.MessageSaved, map[string]interface{}{"id": "p1"}))

	require.Eventually(t, func() bool { return len(broadcaster.received()) == 1 }, time.Second, 10*time.Millisecond)

	var env events.Envelope
	require.NoError(t, json.Unmarshal(broadcaster.received()[0], &env))
	assert.Equal(t, constant.NoticeSaveSucceeded, env.Type)
	assert.Equal(t, constant.MessageSaved, env.Data["message"])
	assert.Equal(t, "p1", env.Data["id"])
}

func TestConsumerService_DropsEmptyPayload(t *testing.T) {
	const topic = "TEST_NOTICES"
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	log, logs := observedLogger()
	broadcaster := &capturingBroadcaster{}
	require.NoError(t, NewConsumerService(pubSub, topic, broadcaster, log).Consume(ctx))

	require.NoError(t, pubSub.Publish(topic, message.NewMessage(watermill.NewUUID(), nil)))

	require.Eventually(t, func() bool { return logs.FilterMessage("Dropping empty notice").Len() == 1 }, time.Second, 10*time.Millisecond)
	assert.Empty(t, broadcaster.received())
}

func TestBusNotifier_PublishFailureIsLogged(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	require.NoError(t, pubSub.Close())

	log, logs := observedLogger()
	NewBusNotifier(pubSub, "TEST_NOTICES", log).Notify(context.Background(), events.NewNotice(constant.NoticeCopied, constant.MessageCopied, nil))

	assert.Equal(t, 1, logs.FilterMessage("Failed to publish notice").Len())
}
