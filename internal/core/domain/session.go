package domain

import "encoding/json"

// Role tags attached to an authenticated user. The backend only emits
// RoleProfessional; its absence implies a plain client account.
const (
	RoleProfessional = "PROFESSIONAL"
)

// Session is the in-memory representation of the current user.
//
// Token and Username are set together or not at all; SessionService
// rejects auth responses that would break that pairing. Roles is never
// nil after a completed operation; a missing or malformed roles value
// degrades to an empty slice.
type Session struct {
	Token        string         `json:"token,omitempty"`
	Username     string         `json:"username,omitempty"`
	Roles        []string       `json:"roles"`
	User         map[string]any `json:"user,omitempty"`
	Loading      bool           `json:"loading"`
	Initializing bool           `json:"initializing"`
}

// Authenticated reports whether the session carries a live credential.
func (s Session) Authenticated() bool {
	return s.Token != "" && s.Username != ""
}

// HasRole reports whether the session carries the given role tag.
func (s Session) HasRole(role string) bool {
	for _, r := range s.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Credentials is the login payload.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Registration is the account-creation payload.
type Registration struct {
	Username string   `json:"username"`
	Email    string   `json:"email,omitempty"`
	Password string   `json:"password"`
	Name     string   `json:"name,omitempty"`
	Phone    string   `json:"phone,omitempty"`
	Roles    []string `json:"roles,omitempty"`
}

// AuthResult is the minimum shape the backend returns from login and
// register. Roles may be absent; the session layer substitutes an
// empty slice.
type AuthResult struct {
	Token    string   `json:"token"`
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
}

// UnmarshalJSON decodes the roles value leniently: anything other than
// a list of strings (missing, null, a bare string, mixed types) comes
// out as an empty slice rather than failing the auth call.
func (a *AuthResult) UnmarshalJSON(data []byte) error {
	var raw struct {
		Token    string          `json:"token"`
		Username string          `json:"username"`
		Roles    json.RawMessage `json:"roles"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	a.Token = raw.Token
	a.Username = raw.Username
	a.Roles = []string{}
	var roles []string
	if len(raw.Roles) > 0 && json.Unmarshal(raw.Roles, &roles) == nil && roles != nil {
		a.Roles = roles
	}
	return nil
}
