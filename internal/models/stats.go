package models

// AdminStats aggregates counts for the admin dashboard.
type AdminStats struct {
	TotalUsers      int            `json:"totalUsers"`
	UsersByRole     map[string]int `json:"usersByRole"`
	CropGuides      int            `json:"cropGuides"`
	MarketEntries   int            `json:"marketEntries"`
	ActiveSchemes   int            `json:"activeSchemes"`
	ResearchUpdates int            `json:"researchUpdates"`
	ActivePolicies  int            `json:"activePolicies"`
	ForumPosts      int            `json:"forumPosts"`
}
