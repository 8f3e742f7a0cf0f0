package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"

	"installworks/internal/domain/lifecycle"
	"installworks/internal/usecase/interfaces"
)

const statusChannel = "order_status_updates"

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type statusUpdate struct {
	OrderID string         `json:"order_id"`
	View    lifecycle.View `json:"view"`
	At      time.Time      `json:"at"`
}

type statusSession struct {
	hub     *StatusHub
	conn    *websocket.Conn
	send    chan []byte
	orderID string
}

// StatusHub fans derived lifecycle views out to websocket sessions
// subscribed per order. With Redis configured, updates are published to a
// channel so every instance (and its sessions) sees them; without Redis the
// hub broadcasts locally only.

type StatusHub struct {
	sessions   map[string]map[*statusSession]bool
	broadcast  chan []byte
	register   chan *statusSession
	unregister chan *statusSession
	mu         sync.Mutex
	rdb        *redis.Client
}

var _ interfaces.IStatusPublisher = (*StatusHub)(nil)

func NewStatusHub(rdb *redis.Client) *StatusHub {
	return &StatusHub{
		sessions:   make(map[string]map[*statusSession]bool),
		broadcast:  make(chan []byte, 64),
		register:   make(chan *statusSession),
		unregister: make(chan *statusSession),
		rdb:        rdb,
	}
}

func (h *StatusHub) Run() {
	if h.rdb != nil {
		go h.consumeRedis()
	}

	for {
		select {
		case s := <-h.register:
			h.mu.Lock()
			if h.sessions[s.orderID] == nil {
				h.sessions[s.orderID] = make(map[*statusSession]bool)
			}
			h.sessions[s.orderID][s] = true
			h.mu.Unlock()
			log.Printf("[status][hub] session registered order_id=%s", s.orderID)

		case s := <-h.unregister:
			h.mu.Lock()
			if set, ok := h.sessions[s.orderID]; ok && set[s] {
				delete(set, s)
				close(s.send)
				if len(set) == 0 {
					delete(h.sessions, s.orderID)
				}
			}
			h.mu.Unlock()
			log.Printf("[status][hub] session unregistered order_id=%s", s.orderID)

		case data := <-h.broadcast:
			h.deliver(data)
		}
	}
}

// Publish implements the status publisher port. With Redis the update takes
// the pub/sub round-trip so all instances deliver it; locally it goes
// straight to the broadcast loop.
func (h *StatusHub) Publish(orderID string, view lifecycle.View) {
	data, err := json.Marshal(statusUpdate{OrderID: orderID, View: view, At: time.Now().UTC()})
	if err != nil {
		log.Printf("[status][hub] marshal failed order_id=%s err=%v", orderID, err)
		return
	}

	if h.rdb != nil {
		if err := h.rdb.Publish(context.Background(), statusChannel, data).Err(); err != nil {
			log.Printf("[status][hub] redis publish failed order_id=%s err=%v", orderID, err)
			h.broadcast <- data
		}
		return
	}
	h.broadcast <- data
}

func (h *StatusHub) consumeRedis() {
	sub := h.rdb.Subscribe(context.Background(), statusChannel)
	for msg := range sub.Channel() {
		h.deliver([]byte(msg.Payload))
	}
}

func (h *StatusHub) deliver(data []byte) {
	var update statusUpdate
	if err := json.Unmarshal(data, &update); err != nil {
		log.Printf("[status][hub] bad update payload err=%v", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for s := range h.sessions[update.OrderID] {
		select {
		case s.send <- data:
		default:
			// Slow consumer; drop the session rather than block the hub.
			delete(h.sessions[update.OrderID], s)
			close(s.send)
		}
	}
}

// Subscribe upgrades the request to a websocket and streams status updates
// for one order until the peer disconnects.
func (h *StatusHub) Subscribe(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[status][hub] upgrade failed err=%v", err)
		return
	}

	s := &statusSession{
		hub:     h,
		conn:    conn,
		send:    make(chan []byte, 16),
		orderID: c.Param("id"),
	}
	h.register <- s

	go s.writePump()
	go s.readPump()
}

func (s *statusSession) readPump() {
	defer func() {
		s.hub.unregister <- s
		s.conn.Close()
	}()
	for {
		// Clients never send payloads; reading only detects disconnects.
		if _, _, err := s.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (s *statusSession) writePump() {
	defer s.conn.Close()
	for data := range s.send {
		if err := s.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			return
		}
	}
	s.conn.WriteMessage(websocket.CloseMessage, []byte{})
}
