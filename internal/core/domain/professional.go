package domain

import "time"

// Professional is a service provider profile as returned by the
// backend. Fields beyond the identifier are optional; listing
// endpoints may omit aggregates the detail endpoint includes.
type Professional struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id,omitempty"`
	Username    string    `json:"username,omitempty"`
	Name        string    `json:"name,omitempty"`
	Trade       string    `json:"trade,omitempty"`
	Bio         string    `json:"bio,omitempty"`
	City        string    `json:"city,omitempty"`
	HourlyRate  float64   `json:"hourly_rate,omitempty"`
	Rating      float64   `json:"rating,omitempty"`
	ReviewCount int       `json:"review_count,omitempty"`
	Available   bool      `json:"available,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitzero"`
	UpdatedAt   time.Time `json:"updated_at,omitzero"`
}

// ProfessionalInput carries the writable fields of a professional
// profile for create and update calls.
type ProfessionalInput struct {
	Name       string  `json:"name,omitempty"`
	Trade      string  `json:"trade,omitempty"`
	Bio        string  `json:"bio,omitempty"`
	City       string  `json:"city,omitempty"`
	HourlyRate float64 `json:"hourly_rate,omitempty"`
	Available  *bool   `json:"available,omitempty"`
}

// ProfessionalSearch holds the advanced-search filters. Zero values
// are omitted from the query string.
type ProfessionalSearch struct {
	Query     string
	Trade     string
	City      string
	Trades    []string
	MinRating float64
	MaxRate   float64
	Page      int
	Size      int
}
