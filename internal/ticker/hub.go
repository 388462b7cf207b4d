// Package ticker pushes market price updates to connected websocket clients,
// replacing the polling the previous frontend ticker relied on.
package ticker

import (
	"encoding/json"

	"github.com/JasirAhamed786/unifield-be/internal/models"
	"github.com/rs/zerolog/log"
)

// Message defines the structure for websocket frames.
type Message struct {
	Action  string      `json:"action"`
	Payload interface{} `json:"payload"`
}

// Hub maintains the set of active clients and broadcasts messages to them.
type Hub struct {
	// Registered clients.
	clients map[*Client]bool

	// Outbound messages for global broadcast.
	broadcast chan []byte

	// Register requests from the clients.
	Register chan *Client

	// Unregister requests from clients.
	Unregister chan *Client
}

// NewHub creates a new Hub.
func NewHub() *Hub {
	return &Hub{
		broadcast:  make(chan []byte, 16),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
	}
}

// Run starts the Hub's message processing loop.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.clients[client] = true
			log.Info().Int("total_clients", len(h.clients)).Msg("Ticker client connected")
		case client := <-h.Unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
				log.Info().Int("total_clients", len(h.clients)).Msg("Ticker client disconnected")
			}
		case message := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.Send <- message:
				default:
					close(client.Send)
					delete(h.clients, client)
				}
			}
		}
	}
}

// BroadcastMarketUpdate publishes a new market price entry to every client.
func (h *Hub) BroadcastMarketUpdate(data models.MarketData) {
	msg, err := json.Marshal(Message{Action: "market.update", Payload: data})
	if err != nil {
		log.Error().Err(err).Msg("Failed to encode market update")
		return
	}
	select {
	case h.broadcast <- msg:
	default:
		log.Warn().Msg("Ticker broadcast buffer full, dropping market update")
	}
}
