package stubserver

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
)

// Two servers must be able to coexist in one process; each carries its
// own metrics registry instead of the global default one.
func TestNew_MultipleInstancesInOneProcess(t *testing.T) {
	for i := 0; i < 2; i++ {
		e := New("secret", zerolog.Nop())

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("instance %d: /health = %d", i, rec.Code)
		}

		rec = httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("instance %d: /metrics = %d", i, rec.Code)
		}
	}
}
