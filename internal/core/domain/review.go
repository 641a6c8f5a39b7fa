package domain

import "time"

// Review is a client's rating of a professional.
type Review struct {
	ID             string    `json:"id"`
	ProfessionalID string    `json:"professional_id"`
	Username       string    `json:"username,omitempty"`
	Rating         int       `json:"rating"`
	Comment        string    `json:"comment,omitempty"`
	CreatedAt      time.Time `json:"created_at,omitzero"`
	UpdatedAt      time.Time `json:"updated_at,omitzero"`
}

// ReviewInput carries the writable review fields.
type ReviewInput struct {
	ProfessionalID string `json:"professional_id,omitempty"`
	Rating         int    `json:"rating"`
	Comment        string `json:"comment,omitempty"`
}

// ReviewCheck is the backend's answer to "has this user already
// reviewed this professional".
type ReviewCheck struct {
	Reviewed bool   `json:"reviewed"`
	ReviewID string `json:"review_id,omitempty"`
}

// ReviewReply is a professional's response to a review.
type ReviewReply struct {
	ID        string    `json:"id"`
	ReviewID  string    `json:"review_id"`
	Username  string    `json:"username,omitempty"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at,omitzero"`
	UpdatedAt time.Time `json:"updated_at,omitzero"`
}

// ReplyInput carries the writable reply fields.
type ReplyInput struct {
	ReviewID string `json:"review_id,omitempty"`
	Comment  string `json:"comment"`
}

// ReplyCheck is the backend's answer to "has this review already been
// replied to".
type ReplyCheck struct {
	Replied bool   `json:"replied"`
	ReplyID string `json:"reply_id,omitempty"`
}
