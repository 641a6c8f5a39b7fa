package domain

import "time"

// Trade is a profession category (plumber, electrician, ...).
type Trade struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug,omitempty"`
}

// PricedService is a concrete offering a professional sells at a
// fixed price, grouped under a trade.
type PricedService struct {
	ID             string    `json:"id"`
	ProfessionalID string    `json:"professional_id"`
	Trade          string    `json:"trade,omitempty"`
	Name           string    `json:"name"`
	Description    string    `json:"description,omitempty"`
	Price          float64   `json:"price"`
	DurationMin    int       `json:"duration_min,omitempty"`
	CreatedAt      time.Time `json:"created_at,omitzero"`
	UpdatedAt      time.Time `json:"updated_at,omitzero"`
}

// PricedServiceInput carries the writable priced-service fields.
type PricedServiceInput struct {
	Trade       string  `json:"trade,omitempty"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	DurationMin int     `json:"duration_min,omitempty"`
}
