package ws_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvegadev/comanda/models"
	"github.com/mvegadev/comanda/utils"
	"github.com/mvegadev/comanda/ws"
)

func dial(t *testing.T, hub *ws.Hub) *websocket.Conn {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, hub.Upgrade(w, r, "WAITER"))
	}))
	t.Cleanup(server.Close)

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestHubBroadcastsEmittedEvents(t *testing.T) {
	utils.InitLogger()
	hub := ws.NewHub()
	conn := dial(t, hub)

	hub.Emit(models.EventTableFreed, map[string]string{"id": "tb1"})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, frame, err := conn.ReadMessage()
	require.NoError(t, err)

	var msg ws.Message
	require.NoError(t, json.Unmarshal(frame, &msg))
	assert.Equal(t, models.EventTableFreed, msg.Event)
	assert.Equal(t, map[string]interface{}{"id": "tb1"}, msg.Data)
}

func TestHubDropsClosedClients(t *testing.T) {
	utils.InitLogger()
	hub := ws.NewHub()
	conn := dial(t, hub)

	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	conn.Close()
	require.Eventually(t, func() bool { return hub.ClientCount() == 0 }, time.Second, 10*time.Millisecond)

	// emitting with no clients is a no-op
	hub.Emit(models.EventOrderCreated, nil)
}
