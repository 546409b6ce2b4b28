package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/preston-bernstein/badminton-draw-service/internal/domain/teams"
	"github.com/preston-bernstein/badminton-draw-service/internal/testutil"
)

func TestHealth(t *testing.T) {
	h := NewHandler(Options{})

	rr := testutil.Serve(http.HandlerFunc(h.Health), http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["status"] != "ok" {
		t.Fatalf("expected status ok, got %s", resp["status"])
	}
}

func TestHealthShuttingDownReturnsServiceUnavailable(t *testing.T) {
	h := NewHandler(Options{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	ctx, cancel := context.WithCancel(req.Context())
	cancel()
	req = req.WithContext(ctx)
	rr := testutil.ServeRequest(http.HandlerFunc(h.Health), req)

	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["error"] != "shutting down" {
		t.Fatalf("unexpected error %q", resp["error"])
	}
}

func TestHealthRejectsPost(t *testing.T) {
	h := NewHandler(Options{})
	rr := testutil.Serve(http.HandlerFunc(h.Health), http.MethodPost, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusMethodNotAllowed)
}

func TestReady(t *testing.T) {
	cases := []struct {
		name   string
		pinger *testutil.StubPinger
		want   int
	}{
		{name: "no store", pinger: nil, want: http.StatusOK},
		{name: "store ok", pinger: &testutil.StubPinger{}, want: http.StatusOK},
		{name: "store down", pinger: &testutil.StubPinger{Err: errors.New("connection refused")}, want: http.StatusServiceUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := Options{}
			if tc.pinger != nil {
				opts.Store = tc.pinger
			}
			h := NewHandler(opts)
			rr := testutil.Serve(http.HandlerFunc(h.Ready), http.MethodGet, "/ready", nil)
			testutil.AssertStatus(t, rr, tc.want)
		})
	}
}

func TestCategories(t *testing.T) {
	h := newTestHandler(testutil.PassingVerifier())

	rr := testutil.Serve(http.HandlerFunc(h.Categories), http.MethodGet, "/categories", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp categoriesResponse
	testutil.DecodeJSON(t, rr, &resp)
	if len(resp.Categories) != 2 || resp.Categories[0] != teams.CategoryPria || resp.Categories[1] != teams.CategoryWanita {
		t.Fatalf("unexpected categories %v", resp.Categories)
	}
}

func TestCategoriesStoreFailure(t *testing.T) {
	h := NewHandler(Options{Draws: &stubDrawService{err: errors.New("db down")}})
	rr := testutil.Serve(http.HandlerFunc(h.Categories), http.MethodGet, "/categories", nil)
	testutil.AssertStatus(t, rr, http.StatusInternalServerError)
}

func TestTeamsRequiresCategory(t *testing.T) {
	h := newTestHandler(testutil.PassingVerifier())
	rr := testutil.Serve(http.HandlerFunc(h.Teams), http.MethodGet, "/teams", nil)
	testutil.AssertStatus(t, rr, http.StatusBadRequest)
}

func TestTeamsListsEligibleTeamsByName(t *testing.T) {
	h := newTestHandler(testutil.PassingVerifier())

	rr := testutil.Serve(http.HandlerFunc(h.Teams), http.MethodGet, "/teams?category=pria", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp teamsResponse
	testutil.DecodeJSON(t, rr, &resp)
	if resp.Category != teams.CategoryPria || len(resp.Teams) != 3 {
		t.Fatalf("unexpected response %+v", resp)
	}
	if resp.Teams[0].Name != "Elang" || resp.Teams[2].Name != "Rajawali" {
		t.Fatalf("expected teams sorted by name, got %+v", resp.Teams)
	}
}

func TestTeamsUnknownCategoryIsEmptyList(t *testing.T) {
	h := newTestHandler(testutil.PassingVerifier())

	rr := testutil.Serve(http.HandlerFunc(h.Teams), http.MethodGet, "/teams?category=Fun+Match", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	if body := rr.Body.String(); body != "{\"category\":\"Fun Match\",\"teams\":[]}\n" {
		t.Fatalf("expected empty array, got %s", body)
	}
}
