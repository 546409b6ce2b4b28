package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	appdraws "github.com/preston-bernstein/badminton-draw-service/internal/app/draws"
	"github.com/preston-bernstein/badminton-draw-service/internal/http/handlers"
	"github.com/preston-bernstein/badminton-draw-service/internal/testutil"
)

func newRouter() http.Handler {
	svc := appdraws.NewService(testutil.NewSeededStore(testutil.SampleTeams()), nil, nil)
	h := handlers.NewHandler(handlers.Options{Draws: svc, Verifier: testutil.PassingVerifier(), MinScore: 0.5})
	return NewRouter(h)
}

func TestRouterRoutesKnownPaths(t *testing.T) {
	router := newRouter()

	cases := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/ready", http.StatusOK},
		{http.MethodGet, "/categories", http.StatusOK},
		{http.MethodGet, "/teams?category=pria", http.StatusOK},
		{http.MethodGet, "/teams", http.StatusBadRequest},
		{http.MethodGet, "/draws?category=pria", http.StatusOK},
		{http.MethodPost, "/draws", http.StatusBadRequest},
		{http.MethodPost, "/api/verify-recaptcha", http.StatusBadRequest},
		{http.MethodGet, "/api/verify-recaptcha", http.StatusMethodNotAllowed},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		if rr.Code != tc.want {
			t.Fatalf("%s %s expected status %d, got %d", tc.method, tc.path, tc.want, rr.Code)
		}
	}
}

func TestRouterUnknownRouteReturns404(t *testing.T) {
	router := newRouter()

	req := httptest.NewRequest(http.MethodGet, "/does-not-exist", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown route, got %d", rr.Code)
	}
}
