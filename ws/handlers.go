package ws

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handler upgrades the realtime routes and pumps received frames into the hub.
type Handler struct {
	hub *Hub
}

func NewHandler(hub *Hub) *Handler {
	return &Handler{hub: hub}
}

// WS route: /ws/chef — every received text is echoed to the channel wrapped in
// a chef_msg envelope.
func (h *Handler) Chef(c *gin.Context) {
	h.serve(c, ChannelChef, func(data []byte) {
		h.hub.Broadcast(ChannelChef, gin.H{"type": "chef_msg", "message": string(data)})
	})
}

// WS route: /ws/menu — any received text tells every menu screen to refetch.
func (h *Handler) Menu(c *gin.Context) {
	h.serve(c, ChannelMenu, func([]byte) {
		h.hub.Broadcast(ChannelMenu, gin.H{"type": "menu_update"})
	})
}

// WS route: /ws/popular-choices-updates
func (h *Handler) PopularChoices(c *gin.Context) {
	h.serve(c, ChannelPopular, func([]byte) {
		h.hub.Broadcast(ChannelPopular, gin.H{"type": "popular_update"})
	})
}

// WS route: /ws/kitchen — received text is rebroadcast as-is, no envelope.
func (h *Handler) Kitchen(c *gin.Context) {
	h.serve(c, ChannelKitchen, func(data []byte) {
		h.hub.BroadcastText(ChannelKitchen, data)
	})
}

// serve runs the read loop for one peer. A dead peer is only noticed when the
// next read fails, at which point it is unregistered.
func (h *Handler) serve(c *gin.Context, channel string, onMessage func([]byte)) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	h.hub.Register(channel, conn)
	defer h.hub.Unregister(channel, conn)

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			break
		}
		onMessage(data)
	}
}
