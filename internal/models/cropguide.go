package models

import "encoding/json"

// Disease describes a common disease entry on a crop guide.
type Disease struct {
	Name      string `json:"name"`
	Symptoms  string `json:"symptoms"`
	Treatment string `json:"treatment"`
}

// CropGuide represents a cultivation guide for a single crop.
type CropGuide struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Season   string `json:"season"`
	Soil     string `json:"soil"`
	Water    string `json:"water"`
	ImageURL string `json:"imageUrl"`

	// JSON string field for DB storage
	DiseasesJSON string `json:"-"`

	Diseases []Disease `json:"diseases,omitempty"`
}

// PrepareForSave marshals the disease list into its JSON string for DB storage.
func (g *CropGuide) PrepareForSave() {
	diseasesBytes, _ := json.Marshal(g.Diseases)
	g.DiseasesJSON = string(diseasesBytes)
}

// PrepareForAPI unmarshals the stored JSON string into the disease list.
func (g *CropGuide) PrepareForAPI() {
	if g.DiseasesJSON != "" {
		json.Unmarshal([]byte(g.DiseasesJSON), &g.Diseases)
	}
}
