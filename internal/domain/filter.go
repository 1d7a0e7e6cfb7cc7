package domain

import "github.com/google/uuid"

// WordFilter contains filtering/pagination parameters for word listings.
// Search and Letter are mutually exclusive; Search wins when both are set.
type WordFilter struct {
	LanguageCode string
	Search       string
	Letter       string
	Status       *WordStatus
	Published    *bool
	CreatedBy    *uuid.UUID
	Limit        int
	Offset       int
}

// DictionaryFilter contains filtering parameters for dictionary listings.
type DictionaryFilter struct {
	PublishedOnly bool
	CreatedBy     *uuid.UUID
}

// WordCounts holds the word totals shown on the dashboard.
type WordCounts struct {
	Total      int
	Published  int
	Incomplete int
}

// DashboardSummary is the admin overview.
type DashboardSummary struct {
	Dictionaries    int           `json:"dictionaries"`
	Words           int           `json:"words"`
	PublishedWords  int           `json:"published_words"`
	IncompleteWords int           `json:"incomplete_words"`
	Users           int           `json:"users"`
	Languages       int           `json:"languages"`
	RecentActivity  []AuditRecord `json:"recent_activity"`
}
