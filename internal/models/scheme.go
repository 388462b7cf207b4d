package models

import "time"

// GovernmentScheme represents a government support program for farmers.
type GovernmentScheme struct {
	ID                 string     `json:"id"`
	Title              string     `json:"title"`
	Description        string     `json:"description"`
	Category           string     `json:"category"` // Subsidy, Loan, Insurance, Training, Other
	Eligibility        string     `json:"eligibility"`
	Benefits           string     `json:"benefits"`
	ApplicationProcess string     `json:"applicationProcess"`
	Deadline           *time.Time `json:"deadline,omitempty"`
	ContactInfo        string     `json:"contactInfo,omitempty"`
	Region             string     `json:"region"`
	ImageURL           string     `json:"imageUrl,omitempty"`
	IsActive           bool       `json:"isActive"`
	CreatedAt          time.Time  `json:"createdAt"`
}
