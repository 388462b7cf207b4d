package services

import (
	"database/sql"
	"fmt"

	"github.com/JasirAhamed786/unifield-be/internal/models"
	"github.com/google/uuid"
)

// CropGuideServiceProvider defines the interface for crop guide services.
type CropGuideServiceProvider interface {
	GetAllGuides() ([]models.CropGuide, error)
	GetGuideByID(id string) (models.CropGuide, error)
	CreateGuide(guide models.CropGuide) (models.CropGuide, error)
	UpdateGuide(id string, guide models.CropGuide) (models.CropGuide, error)
	DeleteGuide(id string) error
}

// CropGuideService provides business logic for crop guides.
type CropGuideService struct {
	db *sql.DB
}

// NewCropGuideService creates a new CropGuideService.
func NewCropGuideService(db *sql.DB) *CropGuideService {
	return &CropGuideService{db: db}
}

func scanGuide(scanner interface{ Scan(...interface{}) error }) (models.CropGuide, error) {
	var guide models.CropGuide
	var imageURL, diseases sql.NullString
	err := scanner.Scan(&guide.ID, &guide.Name, &guide.Season, &guide.Soil, &guide.Water, &imageURL, &diseases)
	if err != nil {
		return guide, err
	}
	guide.ImageURL = imageURL.String
	guide.DiseasesJSON = diseases.String
	guide.PrepareForAPI()
	return guide, nil
}

// GetAllGuides retrieves all crop guides.
func (s *CropGuideService) GetAllGuides() ([]models.CropGuide, error) {
	rows, err := s.db.Query("SELECT id, name, season, soil, water, image_url, diseases_json FROM crop_guides ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var guides []models.CropGuide
	for rows.Next() {
		guide, err := scanGuide(rows)
		if err != nil {
			return nil, err
		}
		guides = append(guides, guide)
	}
	return guides, rows.Err()
}

// GetGuideByID retrieves a single crop guide.
func (s *CropGuideService) GetGuideByID(id string) (models.CropGuide, error) {
	row := s.db.QueryRow("SELECT id, name, season, soil, water, image_url, diseases_json FROM crop_guides WHERE id = ?", id)
	guide, err := scanGuide(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.CropGuide{}, fmt.Errorf("crop guide %s: %w", id, ErrNotFound)
		}
		return models.CropGuide{}, err
	}
	return guide, nil
}

// CreateGuide adds a new crop guide.
func (s *CropGuideService) CreateGuide(guide models.CropGuide) (models.CropGuide, error) {
	guide.ID = uuid.New().String()
	guide.PrepareForSave()

	stmt, err := s.db.Prepare("INSERT INTO crop_guides(id, name, season, soil, water, image_url, diseases_json) VALUES(?, ?, ?, ?, ?, ?, ?)")
	if err != nil {
		return models.CropGuide{}, err
	}
	defer stmt.Close()

	_, err = stmt.Exec(guide.ID, guide.Name, guide.Season, guide.Soil, guide.Water, guide.ImageURL, guide.DiseasesJSON)
	if err != nil {
		return models.CropGuide{}, err
	}
	return guide, nil
}

// UpdateGuide updates an existing crop guide.
func (s *CropGuideService) UpdateGuide(id string, guide models.CropGuide) (models.CropGuide, error) {
	guide.PrepareForSave()

	res, err := s.db.Exec("UPDATE crop_guides SET name = ?, season = ?, soil = ?, water = ?, image_url = ?, diseases_json = ? WHERE id = ?",
		guide.Name, guide.Season, guide.Soil, guide.Water, guide.ImageURL, guide.DiseasesJSON, id)
	if err != nil {
		return models.CropGuide{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.CropGuide{}, fmt.Errorf("crop guide %s: %w", id, ErrNotFound)
	}
	return s.GetGuideByID(id)
}

// DeleteGuide removes a crop guide.
func (s *CropGuideService) DeleteGuide(id string) error {
	res, err := s.db.Exec("DELETE FROM crop_guides WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("crop guide %s: %w", id, ErrNotFound)
	}
	return nil
}
