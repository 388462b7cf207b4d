package services

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/JasirAhamed786/unifield-be/internal/models"
	"github.com/google/uuid"
)

// SchemeServiceProvider defines the interface for government scheme services.
type SchemeServiceProvider interface {
	GetActiveSchemes() ([]models.GovernmentScheme, error)
	GetSchemeByID(id string) (models.GovernmentScheme, error)
	CreateScheme(scheme models.GovernmentScheme) (models.GovernmentScheme, error)
	UpdateScheme(id string, scheme models.GovernmentScheme) (models.GovernmentScheme, error)
	DeleteScheme(id string) error
	DeactivateExpired(now time.Time) (int64, error)
}

// SchemeService provides business logic for government schemes.
type SchemeService struct {
	db *sql.DB
}

// NewSchemeService creates a new SchemeService.
func NewSchemeService(db *sql.DB) *SchemeService {
	return &SchemeService{db: db}
}

const schemeColumns = "id, title, description, category, eligibility, benefits, application_process, deadline, contact_info, region, image_url, is_active, created_at"

func scanScheme(scanner interface{ Scan(...interface{}) error }) (models.GovernmentScheme, error) {
	var scheme models.GovernmentScheme
	var deadline sql.NullTime
	var contact, imageURL sql.NullString
	err := scanner.Scan(
		&scheme.ID, &scheme.Title, &scheme.Description, &scheme.Category,
		&scheme.Eligibility, &scheme.Benefits, &scheme.ApplicationProcess,
		&deadline, &contact, &scheme.Region, &imageURL, &scheme.IsActive, &scheme.CreatedAt,
	)
	if err != nil {
		return scheme, err
	}
	if deadline.Valid {
		scheme.Deadline = &deadline.Time
	}
	scheme.ContactInfo = contact.String
	scheme.ImageURL = imageURL.String
	return scheme, nil
}

// GetActiveSchemes lists schemes that are still active.
func (s *SchemeService) GetActiveSchemes() ([]models.GovernmentScheme, error) {
	rows, err := s.db.Query("SELECT " + schemeColumns + " FROM government_schemes WHERE is_active = 1 ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var schemes []models.GovernmentScheme
	for rows.Next() {
		scheme, err := scanScheme(rows)
		if err != nil {
			return nil, err
		}
		schemes = append(schemes, scheme)
	}
	return schemes, rows.Err()
}

// GetSchemeByID retrieves a single scheme, active or not.
func (s *SchemeService) GetSchemeByID(id string) (models.GovernmentScheme, error) {
	row := s.db.QueryRow("SELECT "+schemeColumns+" FROM government_schemes WHERE id = ?", id)
	scheme, err := scanScheme(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.GovernmentScheme{}, fmt.Errorf("scheme %s: %w", id, ErrNotFound)
		}
		return models.GovernmentScheme{}, err
	}
	return scheme, nil
}

// CreateScheme adds a new scheme.
func (s *SchemeService) CreateScheme(scheme models.GovernmentScheme) (models.GovernmentScheme, error) {
	scheme.ID = uuid.New().String()
	if scheme.Category == "" {
		scheme.Category = "Other"
	}
	if scheme.Region == "" {
		scheme.Region = "Global"
	}
	scheme.IsActive = true

	stmt, err := s.db.Prepare(`INSERT INTO government_schemes
		(id, title, description, category, eligibility, benefits, application_process, deadline, contact_info, region, image_url, is_active)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 1)`)
	if err != nil {
		return models.GovernmentScheme{}, err
	}
	defer stmt.Close()

	_, err = stmt.Exec(scheme.ID, scheme.Title, scheme.Description, scheme.Category,
		scheme.Eligibility, scheme.Benefits, scheme.ApplicationProcess,
		scheme.Deadline, scheme.ContactInfo, scheme.Region, scheme.ImageURL)
	if err != nil {
		return models.GovernmentScheme{}, err
	}
	return s.GetSchemeByID(scheme.ID)
}

// UpdateScheme updates an existing scheme.
func (s *SchemeService) UpdateScheme(id string, scheme models.GovernmentScheme) (models.GovernmentScheme, error) {
	res, err := s.db.Exec(`UPDATE government_schemes SET
		title = ?, description = ?, category = ?, eligibility = ?, benefits = ?,
		application_process = ?, deadline = ?, contact_info = ?, region = ?, image_url = ?, is_active = ?
		WHERE id = ?`,
		scheme.Title, scheme.Description, scheme.Category, scheme.Eligibility, scheme.Benefits,
		scheme.ApplicationProcess, scheme.Deadline, scheme.ContactInfo, scheme.Region, scheme.ImageURL, scheme.IsActive,
		id)
	if err != nil {
		return models.GovernmentScheme{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.GovernmentScheme{}, fmt.Errorf("scheme %s: %w", id, ErrNotFound)
	}
	return s.GetSchemeByID(id)
}

// DeleteScheme removes a scheme.
func (s *SchemeService) DeleteScheme(id string) error {
	res, err := s.db.Exec("DELETE FROM government_schemes WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("scheme %s: %w", id, ErrNotFound)
	}
	return nil
}

// DeactivateExpired marks schemes whose deadline has passed as inactive and
// returns how many rows changed.
func (s *SchemeService) DeactivateExpired(now time.Time) (int64, error) {
	res, err := s.db.Exec("UPDATE government_schemes SET is_active = 0 WHERE is_active = 1 AND deadline IS NOT NULL AND deadline < ?", now)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
