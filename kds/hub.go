package kds

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/yeremiapane/restaurant-engine/utils"
)

const (
	// Batas waktu satu write ke client
	writeWait = 10 * time.Second
	// Jumlah pesan yang boleh antre per client sebelum client diputus
	sendBuffer = 64
)

type client struct {
	conn *websocket.Conn
	role string
	send chan []byte
}

// Hub menampung semua client display (staff, kitchen) yang terhubung lewat websocket.
// Setiap client punya writer goroutine sendiri, jadi Publish tidak pernah menunggu socket.
type Hub struct {
	clients map[*websocket.Conn]*client
	mutex   sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]*client),
	}
}

// RegisterClient -> menambahkan connection ke set dengan role dan menjalankan writer-nya
func (h *Hub) RegisterClient(conn *websocket.Conn, role string) {
	c := &client{conn: conn, role: role, send: make(chan []byte, sendBuffer)}

	h.mutex.Lock()
	h.clients[conn] = c
	h.mutex.Unlock()

	go h.writePump(c)
}

// UnregisterClient -> melepaskan connection
func (h *Hub) UnregisterClient(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.removeLocked(conn)
}

func (h *Hub) removeLocked(conn *websocket.Conn) {
	c, ok := h.clients[conn]
	if !ok {
		return
	}
	delete(h.clients, conn)
	close(c.send)
	conn.Close()
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return len(h.clients)
}

// Publish queues msg for every connected client without blocking. A client
// whose queue is full is too slow to keep up and gets dropped.
func (h *Hub) Publish(_ context.Context, msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		utils.ErrorLogger.Printf("Error marshaling message: %v", err)
		return
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()

	utils.InfoLogger.Debugf("Broadcasting %s to %d clients", msg.Event, len(h.clients))

	for conn, c := range h.clients {
		select {
		case c.send <- data:
		default:
			utils.ErrorLogger.Printf("Dropping slow %s client: send queue full", c.role)
			h.removeLocked(conn)
		}
	}
}

func (h *Hub) writePump(c *client) {
	for data := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			utils.ErrorLogger.Printf("Error sending message to %s client: %v", c.role, err)
			h.UnregisterClient(c.conn)
			return
		}
	}
}
