package websocket

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishReachesClients(t *testing.T) {
	r := mux.NewRouter()
	hub := RegisterRoutes(r)
	srv := httptest.NewServer(r)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.Connected() == 1 }, 2*time.Second, 10*time.Millisecond)

	hub.Publish(Event{Type: EventClueFound, SessionID: "abc", Room: "Kitchen", Clue: "Broken glass"})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)

	var got Event
	require.NoError(t, json.Unmarshal(msg, &got))
	assert.Equal(t, EventClueFound, got.Type)
	assert.Equal(t, "abc", got.SessionID)
	assert.Equal(t, "Broken glass", got.Clue)
	assert.False(t, got.At.IsZero())
}

func TestClientDisconnectUnregisters(t *testing.T) {
	r := mux.NewRouter()
	hub := RegisterRoutes(r)
	srv := httptest.NewServer(r)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)

	require.Eventually(t, func() bool { return hub.Connected() == 1 }, 2*time.Second, 10*time.Millisecond)
	conn.Close()
	require.Eventually(t, func() bool { return hub.Connected() == 0 }, 2*time.Second, 10*time.Millisecond)
}
