package services

import (
	"database/sql"

	"github.com/JasirAhamed786/unifield-be/internal/models"
)

// StatsServiceProvider defines the interface for admin statistics.
type StatsServiceProvider interface {
	GetAdminStats() (models.AdminStats, error)
}

// StatsService aggregates counts for the admin dashboard.
type StatsService struct {
	db *sql.DB
}

// NewStatsService creates a new StatsService.
func NewStatsService(db *sql.DB) *StatsService {
	return &StatsService{db: db}
}

// GetAdminStats collects per-table counts in one pass.
func (s *StatsService) GetAdminStats() (models.AdminStats, error) {
	stats := models.AdminStats{UsersByRole: make(map[string]int)}

	rows, err := s.db.Query("SELECT role, COUNT(*) FROM users GROUP BY role")
	if err != nil {
		return stats, err
	}
	defer rows.Close()
	for rows.Next() {
		var role string
		var count int
		if err := rows.Scan(&role, &count); err != nil {
			return stats, err
		}
		stats.UsersByRole[role] = count
		stats.TotalUsers += count
	}
	if err := rows.Err(); err != nil {
		return stats, err
	}

	counts := []struct {
		query string
		dst   *int
	}{
		{"SELECT COUNT(*) FROM crop_guides", &stats.CropGuides},
		{"SELECT COUNT(*) FROM market_data", &stats.MarketEntries},
		{"SELECT COUNT(*) FROM government_schemes WHERE is_active = 1", &stats.ActiveSchemes},
		{"SELECT COUNT(*) FROM research_updates WHERE is_published = 1", &stats.ResearchUpdates},
		{"SELECT COUNT(*) FROM policies WHERE is_active = 1", &stats.ActivePolicies},
		{"SELECT COUNT(*) FROM forum_posts", &stats.ForumPosts},
	}
	for _, c := range counts {
		if err := s.db.QueryRow(c.query).Scan(c.dst); err != nil {
			return stats, err
		}
	}
	return stats, nil
}
