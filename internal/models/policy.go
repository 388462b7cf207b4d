package models

import "time"

// PolicyInformation represents an agricultural policy document.
type PolicyInformation struct {
	ID                    string     `json:"id"`
	Title                 string     `json:"title"`
	Summary               string     `json:"summary"`
	Content               string     `json:"content"`
	Category              string     `json:"category"` // Agricultural, Trade, Environmental, Technology, Other
	Region                string     `json:"region"`
	EffectiveDate         *time.Time `json:"effectiveDate,omitempty"`
	ExpiryDate            *time.Time `json:"expiryDate,omitempty"`
	ImplementingAuthority string     `json:"implementingAuthority,omitempty"`
	ContactInfo           string     `json:"contactInfo,omitempty"`
	ImageURL              string     `json:"imageUrl,omitempty"`
	IsActive              bool       `json:"isActive"`
	CreatedAt             time.Time  `json:"createdAt"`
	UpdatedAt             time.Time  `json:"updatedAt"`
}
