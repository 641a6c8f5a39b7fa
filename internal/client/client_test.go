package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func newTestClient(baseURL string) *Client {
	return New(baseURL, nil, zerolog.Nop())
}

func TestBuildURL_JoinsExactlyOnce(t *testing.T) {
	c := newTestClient("http://api.test")

	cases := []struct {
		base, path, want string
	}{
		{"http://api.test", "/professionals", "http://api.test/professionals"},
		{"http://api.test", "professionals", "http://api.test/professionals"},
		{"http://api.test/", "/professionals", "http://api.test/professionals"},
		{"http://api.test/", "professionals", "http://api.test/professionals"},
	}
	for _, tc := range cases {
		c = newTestClient(tc.base)
		if got := c.buildURL(tc.path, nil); got != tc.want {
			t.Errorf("buildURL(%q, %q) = %q, want %q", tc.base, tc.path, got, tc.want)
		}
	}
}

func TestBuildURL_AbsolutePassThrough(t *testing.T) {
	c := newTestClient("http://api.test")

	for _, abs := range []string{"http://elsewhere.test/x", "https://elsewhere.test/x"} {
		if got := c.buildURL(abs, nil); got != abs {
			t.Errorf("buildURL(%q) = %q, want unchanged", abs, got)
		}
	}
}

func TestBuildURL_QueryParams(t *testing.T) {
	c := newTestClient("http://api.test")

	got := c.buildURL("/professionals", Params{
		"page":  0,
		"size":  5,
		"tag":   []string{"a", "b"},
		"empty": "",
	})
	want := "http://api.test/professionals?page=0&size=5&tag=a&tag=b"
	if got != want {
		t.Fatalf("buildURL = %q, want %q", got, want)
	}
}

func TestEncodeParams_OmitsNilAndEmpty(t *testing.T) {
	got := encodeParams(Params{
		"keep":  "x",
		"nil":   nil,
		"empty": "",
	})
	if got != "keep=x" {
		t.Fatalf("encodeParams = %q, want %q", got, "keep=x")
	}
}

func TestEncodeParams_RepeatsArraysInOrder(t *testing.T) {
	got := encodeParams(Params{"tag": []string{"z", "a", "m"}})
	if got != "tag=z&tag=a&tag=m" {
		t.Fatalf("encodeParams = %q, want array order preserved", got)
	}
}

func TestBuildURL_AppendsToExistingQuery(t *testing.T) {
	c := newTestClient("http://api.test")
	got := c.buildURL("/search?q=pipe", Params{"page": 1})
	if got != "http://api.test/search?q=pipe&page=1" {
		t.Fatalf("buildURL = %q", got)
	}
}

func TestDo_SuccessParsesJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Errorf("Accept = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":1,"tags":["a","b"]}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	got, err := c.Do(context.Background(), "/thing", Options{})
	if err != nil {
		t.Fatalf("Do returned error: %v", err)
	}
	want := map[string]any{"id": float64(1), "tags": []any{"a", "b"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Do = %#v, want %#v", got, want)
	}
}

func TestDo_EmptyBodyReturnsNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	got, err := c.Do(context.Background(), "/thing", Options{Method: http.MethodDelete})
	if err != nil {
		t.Fatalf("Do returned error: %v", err)
	}
	if got != nil {
		t.Fatalf("Do = %#v, want nil", got)
	}
}

func TestDo_NonJSONBodyReturnsText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("plain text"))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	got, err := c.Do(context.Background(), "/thing", Options{})
	if err != nil {
		t.Fatalf("Do returned error: %v", err)
	}
	if got != "plain text" {
		t.Fatalf("Do = %#v, want raw text", got)
	}
}

func TestDo_SendsBearerAndBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-1" {
			t.Errorf("Authorization = %q", got)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("Content-Type = %q", got)
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	c.SetToken("tok-1")
	_, err := c.Do(context.Background(), "/thing", Options{
		Method: http.MethodPost,
		Body:   map[string]string{"k": "v"},
	})
	if err != nil {
		t.Fatalf("Do returned error: %v", err)
	}
}

func TestDo_AnonymousSuppressesToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "" {
			t.Errorf("Authorization = %q, want absent", got)
		}
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	c.SetToken("tok-1")
	if _, err := c.Do(context.Background(), "/auth/login", Options{Method: http.MethodPost, Anonymous: true}); err != nil {
		t.Fatalf("Do returned error: %v", err)
	}
}

func TestDo_StringBodyPassesThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, 64)
		n, _ := r.Body.Read(buf)
		if got := string(buf[:n]); got != `{"raw":true}` {
			t.Errorf("body = %q", got)
		}
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	if _, err := c.Do(context.Background(), "/x", Options{Method: http.MethodPost, Body: `{"raw":true}`}); err != nil {
		t.Fatalf("Do returned error: %v", err)
	}
}

func TestDo_ErrorMessagePriority(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{"message field", http.StatusBadRequest, `{"message":"bad input"}`, "bad input"},
		{"error field", http.StatusBadRequest, `{"error":"boom"}`, "boom"},
		{"message wins over error", http.StatusBadRequest, `{"message":"m","error":"e"}`, "m"},
		{"list joined", http.StatusUnprocessableEntity, `{"message":["first","second"]}`, "first, second"},
		{"status text fallback", http.StatusNotFound, ``, "Not Found"},
		{"non-json body", http.StatusBadGateway, `upstream died`, "Bad Gateway"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			c := newTestClient(srv.URL)
			_, err := c.Do(context.Background(), "/x", Options{})
			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected *APIError, got %v", err)
			}
			if apiErr.Message != tc.wantMsg {
				t.Fatalf("Message = %q, want %q", apiErr.Message, tc.wantMsg)
			}
			if apiErr.Status != tc.status {
				t.Fatalf("Status = %d, want %d", apiErr.Status, tc.status)
			}
		})
	}
}

func TestDo_ErrorPayloadKeepsRawText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream died"))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	_, err := c.Do(context.Background(), "/x", Options{})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.Payload != "upstream died" {
		t.Fatalf("Payload = %#v, want raw text", apiErr.Payload)
	}
}

func TestDo_TransportErrorIsNotAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := newTestClient(srv.URL)
	_, err := c.Do(context.Background(), "/x", Options{})
	if err == nil {
		t.Fatal("expected an error")
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		t.Fatalf("transport failure must not be an APIError: %v", err)
	}
}

func TestDo_Idempotent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"stable":true,"n":42}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	first, err1 := c.Do(context.Background(), "/x", Options{Params: Params{"a": 1}})
	second, err2 := c.Do(context.Background(), "/x", Options{Params: Params{"a": 1}})
	if err1 != nil || err2 != nil {
		t.Fatalf("errors: %v, %v", err1, err2)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical calls differ: %#v vs %#v", first, second)
	}
}

func TestDoJSON_DecodesInto(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"token":"t1","username":"alice","roles":["PROFESSIONAL"]}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	var out struct {
		Token    string   `json:"token"`
		Username string   `json:"username"`
		Roles    []string `json:"roles"`
	}
	if err := c.DoJSON(context.Background(), "/auth/login", Options{Method: http.MethodPost}, &out); err != nil {
		t.Fatalf("DoJSON returned error: %v", err)
	}
	if out.Token != "t1" || out.Username != "alice" || len(out.Roles) != 1 {
		t.Fatalf("unexpected decode: %+v", out)
	}
}

func TestDoJSON_BadJSONSurfacesDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	var out map[string]any
	err := c.DoJSON(context.Background(), "/x", Options{}, &out)
	if err == nil || !strings.Contains(err.Error(), "decode response") {
		t.Fatalf("expected decode error, got %v", err)
	}
}
