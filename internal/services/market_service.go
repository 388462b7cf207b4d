package services

import (
	"database/sql"
	"fmt"

	"github.com/JasirAhamed786/unifield-be/internal/models"
	"github.com/google/uuid"
)

// MarketServiceProvider defines the interface for market data services.
type MarketServiceProvider interface {
	GetAllMarketData() ([]models.MarketData, error)
	CreateMarketData(data models.MarketData) (models.MarketData, error)
}

// MarketService provides business logic for crop market prices.
type MarketService struct {
	db *sql.DB
}

// NewMarketService creates a new MarketService.
func NewMarketService(db *sql.DB) *MarketService {
	return &MarketService{db: db}
}

// GetAllMarketData retrieves every market price entry.
func (s *MarketService) GetAllMarketData() ([]models.MarketData, error) {
	rows, err := s.db.Query("SELECT id, crop_name, region, price, trend, updated_at FROM market_data ORDER BY crop_name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.MarketData
	for rows.Next() {
		var data models.MarketData
		if err := rows.Scan(&data.ID, &data.CropName, &data.Region, &data.Price, &data.Trend, &data.UpdatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, data)
	}
	return entries, rows.Err()
}

// CreateMarketData records a new price entry.
func (s *MarketService) CreateMarketData(data models.MarketData) (models.MarketData, error) {
	data.ID = uuid.New().String()
	if data.Trend == "" {
		data.Trend = models.TrendStable
	}
	switch data.Trend {
	case models.TrendUp, models.TrendDown, models.TrendStable:
	default:
		return models.MarketData{}, fmt.Errorf("%w: unknown trend %q", ErrValidation, data.Trend)
	}

	stmt, err := s.db.Prepare("INSERT INTO market_data(id, crop_name, region, price, trend) VALUES(?, ?, ?, ?, ?)")
	if err != nil {
		return models.MarketData{}, err
	}
	defer stmt.Close()

	if _, err := stmt.Exec(data.ID, data.CropName, data.Region, data.Price, data.Trend); err != nil {
		return models.MarketData{}, err
	}

	row := s.db.QueryRow("SELECT id, crop_name, region, price, trend, updated_at FROM market_data WHERE id = ?", data.ID)
	err = row.Scan(&data.ID, &data.CropName, &data.Region, &data.Price, &data.Trend, &data.UpdatedAt)
	return data, err
}
