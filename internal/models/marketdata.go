package models

import "time"

// Price trend values.
const (
	TrendUp     = "Up"
	TrendDown   = "Down"
	TrendStable = "Stable"
)

// MarketData represents the current price of a crop in a region.
type MarketData struct {
	ID        string    `json:"id"`
	CropName  string    `json:"cropName"`
	Region    string    `json:"region"`
	Price     float64   `json:"price"`
	Trend     string    `json:"trend"`
	UpdatedAt time.Time `json:"updatedAt"`
}
