// Package client implements the HTTP request pipeline for the HomeFix
// marketplace backend: URL construction, standard headers, defensive
// JSON handling, and error normalization. Resource wrappers in this
// package map one method to one backend operation and nothing else.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Params holds query parameters for a single request. Nil, empty-string
// and zero-length values are omitted; slice values are appended as
// repeated parameters in slice order; everything else is stringified.
type Params map[string]any

// Options describes a single request beyond its path.
type Options struct {
	// Method defaults to GET.
	Method string
	// Token overrides the client's default bearer credential for this
	// call only.
	Token string
	// Anonymous suppresses the Authorization header even when the
	// client carries a default token. Used by login and register.
	Anonymous bool
	// Body is serialized to JSON unless it is already a string.
	Body any
	// Params are encoded into the query string.
	Params Params
	// Headers are applied last and override the standard set.
	Headers map[string]string
}

// Client executes requests against the backend. The zero value is not
// usable; construct with New. A Client is safe for concurrent use.
type Client struct {
	baseURL string
	httpc   *http.Client
	log     zerolog.Logger

	mu    sync.RWMutex
	token string
}

// New builds a Client for the given base URL. A nil httpc falls back
// to a client with a sane default timeout.
func New(baseURL string, httpc *http.Client, log zerolog.Logger) *Client {
	if httpc == nil {
		httpc = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   httpc,
		log:     log,
	}
}

// SetToken installs the default bearer credential attached to
// subsequent requests. An empty string clears it.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// Token returns the current default bearer credential.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Do executes a request and returns the decoded response body: parsed
// JSON when the body parses, the raw text when it does not, or nil for
// an empty body. Non-2xx responses return a *APIError; failures before
// a response arrives return a wrapped transport error.
func (c *Client) Do(ctx context.Context, path string, opts Options) (any, error) {
	body, err := c.roundTrip(ctx, path, opts)
	if err != nil {
		return nil, err
	}
	return decodeBody(body), nil
}

// DoJSON runs the same pipeline as Do but unmarshals a successful JSON
// body into out. A nil out or an empty body skips decoding.
func (c *Client) DoJSON(ctx context.Context, path string, opts Options, out any) error {
	body, err := c.roundTrip(ctx, path, opts)
	if err != nil {
		return err
	}
	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response for %s: %w", path, err)
	}
	return nil
}

func (c *Client) roundTrip(ctx context.Context, path string, opts Options) ([]byte, error) {
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	fullURL := c.buildURL(path, opts.Params)

	var reqBody io.Reader
	hasBody := opts.Body != nil
	if hasBody {
		if s, ok := opts.Body.(string); ok {
			reqBody = strings.NewReader(s)
		} else {
			encoded, err := json.Marshal(opts.Body)
			if err != nil {
				return nil, fmt.Errorf("encode request body for %s: %w", path, err)
			}
			reqBody = bytes.NewReader(encoded)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reqBody)
	if err != nil {
		return nil, fmt.Errorf("build request %s %s: %w", method, path, err)
	}

	req.Header.Set("Accept", "application/json")
	if hasBody {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.resolveToken(opts); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}

	start := time.Now()
	resp, err := c.httpc.Do(req)
	requestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
	if err != nil {
		requestsTotal.WithLabelValues(method, "transport_error").Inc()
		c.log.Debug().Err(err).Str("method", method).Str("url", fullURL).Msg("transport failure")
		return nil, fmt.Errorf("request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		requestsTotal.WithLabelValues(method, "transport_error").Inc()
		return nil, fmt.Errorf("read response for %s %s: %w", method, path, err)
	}

	requestsTotal.WithLabelValues(method, strconv.Itoa(resp.StatusCode)).Inc()
	c.log.Debug().
		Str("method", method).
		Str("url", fullURL).
		Int("status", resp.StatusCode).
		Msg("request completed")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newAPIError(resp.StatusCode, decodeBody(raw))
	}
	return raw, nil
}

func (c *Client) resolveToken(opts Options) string {
	if opts.Anonymous {
		return ""
	}
	if opts.Token != "" {
		return opts.Token
	}
	return c.Token()
}

// buildURL joins path to the base URL with exactly one separating
// slash and appends the encoded params. Absolute URLs pass through
// unchanged apart from params.
func (c *Client) buildURL(path string, params Params) string {
	full := path
	if !strings.HasPrefix(path, "http://") && !strings.HasPrefix(path, "https://") {
		full = c.baseURL + "/" + strings.TrimLeft(path, "/")
	}

	query := encodeParams(params)
	if query == "" {
		return full
	}
	sep := "?"
	if strings.Contains(full, "?") {
		sep = "&"
	}
	return full + sep + query
}

// encodeParams renders params deterministically: keys sorted, slice
// values repeated in order, nil and empty-string values dropped.
func encodeParams(params Params) string {
	if len(params) == 0 {
		return ""
	}
	values := url.Values{}
	for key, raw := range params {
		if raw == nil {
			continue
		}
		rv := reflect.ValueOf(raw)
		if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
			for i := 0; i < rv.Len(); i++ {
				item := rv.Index(i).Interface()
				if s := fmt.Sprint(item); s != "" {
					values.Add(key, s)
				}
			}
			continue
		}
		if s := fmt.Sprint(raw); s != "" {
			values.Add(key, s)
		}
	}
	return values.Encode()
}

// decodeBody parses a response body defensively: JSON when it parses,
// raw text otherwise, nil when empty.
func decodeBody(body []byte) any {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	var parsed any
	if err := json.Unmarshal(body, &parsed); err != nil {
		return string(body)
	}
	return parsed
}
