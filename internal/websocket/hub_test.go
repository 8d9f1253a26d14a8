package websocket

import (
	"testing"
	"time"

	"prompt-manager/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registered(t *testing.T, hub *Hub, buffer int) *Client {
	t.Helper()
	client := &Client{Hub: hub, Addr: "test", Send: make(chan []byte, buffer)}
	hub.register <- client
	return client
}

func TestHub_BroadcastReachesEveryClient(t *testing.T) {
	hub := NewHub(logger.NewNopLogger())
	go hub.Run()

	a := registered(t, hub, 1)
	b := registered(t, hub, 1)
	require.Eventually(t, func() bool { return hub.ClientCount() == 2 }, time.Second, 10*time.Millisecond)

	hub.Broadcast([]byte(`{"type":"PROMPT_SAVE_SUCCEEDED"}`))

	assert.Equal(t, `{"type":"PROMPT_SAVE_SUCCEEDED"}`, string(<-a.Send))
	assert.Equal(t, `{"type":"PROMPT_SAVE_SUCCEEDED"}`, string(<-b.Send))
}

func TestHub_SlowClientIsDropped(t *testing.T) {
	hub := NewHub(logger.NewNopLogger())
	go hub.Run()

	slow := registered(t, hub, 1)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	hub.Broadcast([]byte("first"))
	hub.Broadcast([]byte("second"))

	assert.Equal(t, 0, hub.ClientCount())
	assert.Equal(t, "first", string(<-slow.Send))
	_, open := <-slow.Send
	assert.False(t, open)
}

func TestHub_Unregister(t *testing.T) {
	hub := NewHub(logger.NewNopLogger())
	go hub.Run()

	client := registered(t, hub, 1)
	hub.unregister <- client
	require.Eventually(t, func() bool { return hub.ClientCount() == 0 }, time.Second, 10*time.Millisecond)

	_, open := <-client.Send
	assert.False(t, open)

	// unregistering twice is harmless
	hub.unregister <- client
}
