package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/homefix/marketplace-client/internal/core/domain"
)

// The auth endpoints must tolerate a roles value that is not a list of
// strings; only token and username are load-bearing.
func TestLogin_MalformedRolesDegradeToEmpty(t *testing.T) {
	bodies := []string{
		`{"token":"t1","username":"alice","roles":"PROFESSIONAL"}`,
		`{"token":"t1","username":"alice","roles":null}`,
		`{"token":"t1","username":"alice","roles":{"x":1}}`,
		`{"token":"t1","username":"alice","roles":[1,2]}`,
		`{"token":"t1","username":"alice"}`,
	}
	for _, body := range bodies {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(body))
		}))

		c := newTestClient(srv.URL)
		res, err := c.Login(context.Background(), domain.Credentials{Username: "alice", Password: "pw"})
		srv.Close()
		if err != nil {
			t.Fatalf("Login with body %s: %v", body, err)
		}
		if res.Token != "t1" || res.Username != "alice" {
			t.Fatalf("unexpected result for body %s: %+v", body, res)
		}
		if res.Roles == nil || len(res.Roles) != 0 {
			t.Fatalf("roles for body %s = %#v, want empty slice", body, res.Roles)
		}
	}
}

func TestLogin_WellFormedRolesPreserved(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"t1","username":"bob","roles":["PROFESSIONAL"]}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	res, err := c.Login(context.Background(), domain.Credentials{Username: "bob", Password: "pw"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if !reflect.DeepEqual(res.Roles, []string{"PROFESSIONAL"}) {
		t.Fatalf("roles = %#v", res.Roles)
	}
}
