package ticker

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/JasirAhamed786/unifield-be/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubBroadcastsToRegisteredClients(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := &Client{hub: hub, Send: make(chan []byte, 1)}
	hub.Register <- client

	hub.BroadcastMarketUpdate(models.MarketData{
		ID: "m1", CropName: "Wheat", Region: "Global", Price: 320, Trend: models.TrendUp,
	})

	select {
	case raw := <-client.Send:
		var msg Message
		require.NoError(t, json.Unmarshal(raw, &msg))
		assert.Equal(t, "market.update", msg.Action)
		payload, ok := msg.Payload.(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "Wheat", payload["cropName"])
	case <-time.After(time.Second):
		t.Fatal("no broadcast received")
	}

	hub.Unregister <- client
	if _, open := <-client.Send; open {
		t.Fatal("send channel should be closed after unregister")
	}
}
