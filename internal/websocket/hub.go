package websocket

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/tahcohcat/cluequest/internal/logger"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Origins are already filtered by the CORS layer
		return true
	},
}

const (
	EventRoomEntered = "room_entered"
	EventClueFound   = "clue_found"
	EventExplored    = "exploration_ended"
	EventVerdict     = "verdict"
)

// Event is what spectators receive about a running session.
type Event struct {
	Type      string    `json:"type"`
	SessionID string    `json:"session_id"`
	Room      string    `json:"room,omitempty"`
	Clue      string    `json:"clue,omitempty"`
	Accused   string    `json:"accused,omitempty"`
	Count     int       `json:"count,omitempty"`
	Verdict   string    `json:"verdict,omitempty"`
	At        time.Time `json:"at"`
}

type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	connected  atomic.Int64
	logger     *logger.Log
}

type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

func NewHub() *Hub {
	return &Hub{
		broadcast:  make(chan []byte, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
		logger:     logger.New(),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			h.connected.Store(int64(len(h.clients)))
			h.logger.Debug(fmt.Sprintf("Client connected. Total: %d", len(h.clients)))

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				h.connected.Store(int64(len(h.clients)))
				h.logger.Debug(fmt.Sprintf("Client disconnected. Total: %d", len(h.clients)))
			}

		case message := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					close(client.send)
					delete(h.clients, client)
				}
			}
			h.connected.Store(int64(len(h.clients)))
		}
	}
}

// Connected reports how many clients the hub currently serves.
func (h *Hub) Connected() int {
	return int(h.connected.Load())
}

// Publish queues an event for every connected client.
func (h *Hub) Publish(e Event) {
	if e.At.IsZero() {
		e.At = time.Now().UTC()
	}
	msg, err := json.Marshal(e)
	if err != nil {
		h.logger.WithError(err).Error("failed to encode event")
		return
	}
	h.broadcast <- msg
}

func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	for {
		_, _, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.logger.WithError(err).Warn("WebSocket error")
			}
			break
		}
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()

	for message := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			c.hub.logger.WithError(err).Warn("WebSocket write error")
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.WithError(err).Warn("WebSocket upgrade error")
		return
	}

	client := &Client{hub: h, conn: conn, send: make(chan []byte, 256)}
	h.register <- client

	go client.writePump()
	go client.readPump()
}

// RegisterRoutes starts the hub and mounts it on /ws.
func RegisterRoutes(r *mux.Router) *Hub {
	hub := NewHub()
	go hub.Run()

	r.Handle("/ws", hub)
	return hub
}
