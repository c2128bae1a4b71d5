package ws

import (
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Logical broadcast channels.
const (
	ChannelKitchen = "kitchen"
	ChannelMenu    = "menu"
	ChannelPopular = "popular"
	ChannelChef    = "chef"
)

const writeWait = 10 * time.Second

// Conn is the subset of *websocket.Conn the hub needs.
type Conn interface {
	WriteJSON(v any) error
	WriteMessage(messageType int, data []byte) error
	SetWriteDeadline(t time.Time) error
	Close() error
}

// client wraps a Conn with a write lock so overlapping broadcasts never
// interleave frames on the same connection.
type client struct {
	conn Conn
	mu   sync.Mutex
}

// Hub tracks live connections grouped by channel and fans messages out to
// them. A failed or timed-out send drops the peer; the rest of the channel is
// unaffected.
type Hub struct {
	mu       sync.Mutex
	channels map[string]map[Conn]*client
}

func NewHub() *Hub {
	return &Hub{channels: make(map[string]map[Conn]*client)}
}

// Register adds conn to a channel's active set.
func (h *Hub) Register(channel string, conn Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.channels[channel] == nil {
		h.channels[channel] = make(map[Conn]*client)
	}
	h.channels[channel][conn] = &client{conn: conn}
}

// Unregister removes conn from a channel and closes it. Removing an absent
// conn is a no-op.
func (h *Hub) Unregister(channel string, conn Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.channels[channel][conn]; ok {
		delete(h.channels[channel], conn)
		conn.Close()
	}
}

// Broadcast sends v as JSON to every peer currently on the channel.
func (h *Hub) Broadcast(channel string, v any) {
	h.send(channel, func(c Conn) error { return c.WriteJSON(v) })
}

// BroadcastText sends a raw text frame to every peer currently on the channel.
func (h *Hub) BroadcastText(channel string, data []byte) {
	h.send(channel, func(c Conn) error { return c.WriteMessage(websocket.TextMessage, data) })
}

// send snapshots the channel membership, then writes to each peer in its own
// goroutine so one slow peer cannot stall the others. It returns once every
// send has been attempted.
func (h *Hub) send(channel string, write func(Conn) error) {
	h.mu.Lock()
	peers := make([]*client, 0, len(h.channels[channel]))
	for _, c := range h.channels[channel] {
		peers = append(peers, c)
	}
	h.mu.Unlock()

	var wg sync.WaitGroup
	for _, c := range peers {
		wg.Add(1)
		go func(c *client) {
			defer wg.Done()
			c.mu.Lock()
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			err := write(c.conn)
			c.mu.Unlock()
			if err != nil {
				log.Printf("ws write error on %s: %v", channel, err)
				h.Unregister(channel, c.conn)
			}
		}(c)
	}
	wg.Wait()
}
