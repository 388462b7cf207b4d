package handlers

import (
	"net/http"

	"github.com/JasirAhamed786/unifield-be/internal/ticker"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// TickerHandler upgrades HTTP connections to websocket market ticker streams.
type TickerHandler struct {
	hub *ticker.Hub
}

// NewTickerHandler creates a new TickerHandler.
func NewTickerHandler(hub *ticker.Hub) *TickerHandler {
	return &TickerHandler{hub: hub}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// The ticker stream is public read-only data.
		return true
	},
}

// Serve handles the websocket connection request.
func (h *TickerHandler) Serve(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("Failed to upgrade websocket connection")
		return
	}

	client := ticker.NewClient(h.hub, conn)
	h.hub.Register <- client

	go client.WritePump()
	go client.ReadPump()
}
