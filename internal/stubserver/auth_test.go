package stubserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func newTestServer() (*Server, *echo.Echo) {
	e := echo.New()
	e.Validator = newValidator()
	e.HTTPErrorHandler = newHTTPErrorHandler(zerolog.Nop())
	return &Server{data: newStore(), jwtSecret: "secret", log: zerolog.Nop()}, e
}

func doJSON(t *testing.T, e *echo.Echo, handler echo.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestRegister_Success(t *testing.T) {
	s, e := newTestServer()

	rec := doJSON(t, e, s.register, http.MethodPost, "/auth/register",
		`{"username":"alice","password":"secret1","email":"a@example.com"}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] == "" || resp["token"] == nil {
		t.Fatalf("expected token in response: %v", resp)
	}
	if resp["username"] != "alice" {
		t.Fatalf("expected username, got %v", resp["username"])
	}
	roles, ok := resp["roles"].([]any)
	if !ok || len(roles) != 0 {
		t.Fatalf("expected empty roles list, got %v", resp["roles"])
	}
}

func TestRegister_Duplicate(t *testing.T) {
	s, e := newTestServer()

	payload := `{"username":"bob","password":"secret1"}`
	if rec := doJSON(t, e, s.register, http.MethodPost, "/auth/register", payload); rec.Code != http.StatusCreated {
		t.Fatalf("first register failed: %d", rec.Code)
	}
	if rec := doJSON(t, e, s.register, http.MethodPost, "/auth/register", payload); rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestRegister_Validation(t *testing.T) {
	s, e := newTestServer()

	rec := doJSON(t, e, s.register, http.MethodPost, "/auth/register",
		`{"username":"x","password":"short"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestLogin_Success(t *testing.T) {
	s, e := newTestServer()

	doJSON(t, e, s.register, http.MethodPost, "/auth/register",
		`{"username":"carol","password":"s3cret1","roles":["PROFESSIONAL"]}`)

	rec := doJSON(t, e, s.login, http.MethodPost, "/auth/login",
		`{"username":"carol","password":"s3cret1"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp authResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Token == "" || resp.Username != "carol" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if len(resp.Roles) != 1 || resp.Roles[0] != "PROFESSIONAL" {
		t.Fatalf("unexpected roles: %v", resp.Roles)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	s, e := newTestServer()

	doJSON(t, e, s.register, http.MethodPost, "/auth/register",
		`{"username":"dave","password":"goodpass"}`)

	rec := doJSON(t, e, s.login, http.MethodPost, "/auth/login",
		`{"username":"dave","password":"badpass"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	var resp map[string]string
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["error"] == "" {
		t.Fatalf("expected error envelope, got %s", rec.Body.String())
	}
}

func TestLogin_UnknownUser(t *testing.T) {
	s, e := newTestServer()

	rec := doJSON(t, e, s.login, http.MethodPost, "/auth/login",
		`{"username":"ghost","password":"pwd"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestBearerAuth_RejectsBadTokens(t *testing.T) {
	_, e := newTestServer()
	mw := bearerAuth("secret")
	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc"},
		{"garbage token", "Bearer not.a.jwt"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := mw(next)(c)
			he, ok := err.(*echo.HTTPError)
			if !ok || he.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401 HTTPError, got %v", err)
			}
		})
	}
}

func TestBearerAuth_AcceptsIssuedToken(t *testing.T) {
	_, e := newTestServer()
	token, err := issueToken("secret", "alice", []string{"PROFESSIONAL"})
	if err != nil {
		t.Fatalf("issueToken: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	err = bearerAuth("secret")(func(c echo.Context) error {
		called = true
		return nil
	})(c)
	if err != nil || !called {
		t.Fatalf("middleware rejected a valid token: %v", err)
	}
	if got, _ := c.Get("username").(string); got != "alice" {
		t.Fatalf("username claim = %q", got)
	}
	roles, _ := c.Get("roles").([]string)
	if len(roles) != 1 || roles[0] != "PROFESSIONAL" {
		t.Fatalf("roles claim = %v", roles)
	}
}

func TestRequireRole_Enforced(t *testing.T) {
	_, e := newTestServer()
	mw := requireRole("PROFESSIONAL")
	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	req := httptest.NewRequest(http.MethodPost, "/priced-services", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("roles", []string{})

	err := mw(next)(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %v", err)
	}

	c.Set("roles", []string{"PROFESSIONAL"})
	if err := mw(next)(c); err != nil {
		t.Fatalf("expected pass-through, got %v", err)
	}
}
