package domain

// ProfileUpdate carries the fields a user may change on their own
// account via PUT /users/me. Only non-zero fields are sent.
type ProfileUpdate struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	City     string `json:"city,omitempty"`
	Password string `json:"password,omitempty"`
}
