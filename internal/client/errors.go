package client

import (
	"fmt"
	"net/http"
	"strings"
)

// APIError is the normalized shape for any response outside the 2xx
// range. Transport-level failures (DNS, refused connection, timeout)
// are NOT APIErrors; they propagate as wrapped plain errors so callers
// can tell "request never completed" from "request completed badly".
type APIError struct {
	// Message is derived from the response body: a `message` field,
	// else an `error` field, else the HTTP status text, else a generic
	// fallback. List-valued messages are joined with ", ".
	Message string
	// Status is the HTTP status code of the response.
	Status int
	// Payload is the parsed JSON body, or the raw text when the body
	// was not valid JSON, for caller inspection.
	Payload any
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}

// newAPIError builds an APIError from a non-2xx status and its decoded
// body.
func newAPIError(status int, payload any) *APIError {
	return &APIError{
		Message: deriveMessage(status, payload),
		Status:  status,
		Payload: payload,
	}
}

func deriveMessage(status int, payload any) string {
	if m, ok := payload.(map[string]any); ok {
		for _, key := range []string{"message", "error"} {
			if v, present := m[key]; present {
				if s := stringifyMessage(v); s != "" {
					return s
				}
			}
		}
	}
	if text := http.StatusText(status); text != "" {
		return text
	}
	return "request failed"
}

// stringifyMessage renders a message field that may be a string, a
// list of messages, or some other JSON value.
func stringifyMessage(v any) string {
	switch m := v.(type) {
	case string:
		return m
	case []any:
		parts := make([]string, 0, len(m))
		for _, item := range m {
			parts = append(parts, fmt.Sprint(item))
		}
		return strings.Join(parts, ", ")
	case nil:
		return ""
	default:
		return fmt.Sprint(m)
	}
}
