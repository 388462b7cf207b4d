package services

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/JasirAhamed786/unifield-be/internal/models"
	"github.com/google/uuid"
)

// PolicyServiceProvider defines the interface for policy information services.
type PolicyServiceProvider interface {
	GetActivePolicies() ([]models.PolicyInformation, error)
	GetPolicyByID(id string) (models.PolicyInformation, error)
	CreatePolicy(policy models.PolicyInformation) (models.PolicyInformation, error)
	UpdatePolicy(id string, policy models.PolicyInformation) (models.PolicyInformation, error)
	DeletePolicy(id string) error
	DeactivateExpired(now time.Time) (int64, error)
}

// PolicyService provides business logic for policy documents.
type PolicyService struct {
	db *sql.DB
}

// NewPolicyService creates a new PolicyService.
func NewPolicyService(db *sql.DB) *PolicyService {
	return &PolicyService{db: db}
}

const policyColumns = "id, title, summary, content, category, region, effective_date, expiry_date, implementing_authority, contact_info, image_url, is_active, created_at, updated_at"

func scanPolicy(scanner interface{ Scan(...interface{}) error }) (models.PolicyInformation, error) {
	var policy models.PolicyInformation
	var effective, expiry sql.NullTime
	var authority, contact, imageURL sql.NullString
	err := scanner.Scan(
		&policy.ID, &policy.Title, &policy.Summary, &policy.Content, &policy.Category,
		&policy.Region, &effective, &expiry, &authority, &contact, &imageURL,
		&policy.IsActive, &policy.CreatedAt, &policy.UpdatedAt,
	)
	if err != nil {
		return policy, err
	}
	if effective.Valid {
		policy.EffectiveDate = &effective.Time
	}
	if expiry.Valid {
		policy.ExpiryDate = &expiry.Time
	}
	policy.ImplementingAuthority = authority.String
	policy.ContactInfo = contact.String
	policy.ImageURL = imageURL.String
	return policy, nil
}

// GetActivePolicies lists active policies, newest first.
func (s *PolicyService) GetActivePolicies() ([]models.PolicyInformation, error) {
	rows, err := s.db.Query("SELECT " + policyColumns + " FROM policies WHERE is_active = 1 ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var policies []models.PolicyInformation
	for rows.Next() {
		policy, err := scanPolicy(rows)
		if err != nil {
			return nil, err
		}
		policies = append(policies, policy)
	}
	return policies, rows.Err()
}

// GetPolicyByID retrieves a single policy, active or not.
func (s *PolicyService) GetPolicyByID(id string) (models.PolicyInformation, error) {
	row := s.db.QueryRow("SELECT "+policyColumns+" FROM policies WHERE id = ?", id)
	policy, err := scanPolicy(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.PolicyInformation{}, fmt.Errorf("policy %s: %w", id, ErrNotFound)
		}
		return models.PolicyInformation{}, err
	}
	return policy, nil
}

// CreatePolicy adds a new policy document.
func (s *PolicyService) CreatePolicy(policy models.PolicyInformation) (models.PolicyInformation, error) {
	policy.ID = uuid.New().String()
	if policy.Category == "" {
		policy.Category = "Other"
	}
	if policy.Region == "" {
		policy.Region = "Global"
	}
	policy.IsActive = true

	stmt, err := s.db.Prepare(`INSERT INTO policies
		(id, title, summary, content, category, region, effective_date, expiry_date, implementing_authority, contact_info, image_url, is_active)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 1)`)
	if err != nil {
		return models.PolicyInformation{}, err
	}
	defer stmt.Close()

	_, err = stmt.Exec(policy.ID, policy.Title, policy.Summary, policy.Content, policy.Category,
		policy.Region, policy.EffectiveDate, policy.ExpiryDate, policy.ImplementingAuthority,
		policy.ContactInfo, policy.ImageURL)
	if err != nil {
		return models.PolicyInformation{}, err
	}
	return s.GetPolicyByID(policy.ID)
}

// UpdatePolicy updates an existing policy and refreshes its updated_at stamp.
func (s *PolicyService) UpdatePolicy(id string, policy models.PolicyInformation) (models.PolicyInformation, error) {
	res, err := s.db.Exec(`UPDATE policies SET
		title = ?, summary = ?, content = ?, category = ?, region = ?,
		effective_date = ?, expiry_date = ?, implementing_authority = ?, contact_info = ?,
		image_url = ?, is_active = ?, updated_at = ?
		WHERE id = ?`,
		policy.Title, policy.Summary, policy.Content, policy.Category, policy.Region,
		policy.EffectiveDate, policy.ExpiryDate, policy.ImplementingAuthority, policy.ContactInfo,
		policy.ImageURL, policy.IsActive, time.Now(),
		id)
	if err != nil {
		return models.PolicyInformation{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.PolicyInformation{}, fmt.Errorf("policy %s: %w", id, ErrNotFound)
	}
	return s.GetPolicyByID(id)
}

// DeletePolicy removes a policy.
func (s *PolicyService) DeletePolicy(id string) error {
	res, err := s.db.Exec("DELETE FROM policies WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("policy %s: %w", id, ErrNotFound)
	}
	return nil
}

// DeactivateExpired marks policies whose expiry date has passed as inactive
// and returns how many rows changed.
func (s *PolicyService) DeactivateExpired(now time.Time) (int64, error) {
	res, err := s.db.Exec("UPDATE policies SET is_active = 0 WHERE is_active = 1 AND expiry_date IS NOT NULL AND expiry_date < ?", now)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
