package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"pitchview/internal/app/players"
	"pitchview/internal/app/squads"
	"pitchview/internal/domain"
	"pitchview/internal/metrics"
	"pitchview/internal/store"
	"pitchview/internal/testutil"
)

func newTestHandler(p []domain.Player) *Handler {
	playerSvc, squadSvc, _ := testutil.NewServices(p)
	logger, _ := testutil.NewBufferLogger()
	return NewHandler(playerSvc, squadSvc, metrics.NewRecorder(), logger, Config{
		Season:            "2023-2024",
		Source:            "fixture",
		DefaultPositions:  []string{"FW", "MF"},
		DefaultMinMinutes: 0,
		DefaultTopN:       3,
		SquadSortMetric:   "xG per 90",
	})
}

func findMetric(t *testing.T, profile domain.PlayerProfile, label string) domain.MetricValue {
	t.Helper()
	for _, m := range profile.Metrics {
		if m.Label == label {
			return m
		}
	}
	t.Fatalf("metric %q not found in profile %q", label, profile.Name)
	return domain.MetricValue{}
}

func TestHealth(t *testing.T) {
	h := newTestHandler(testutil.SamplePlayers())

	rr := testutil.Serve(http.HandlerFunc(h.Health), http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["status"] != "ok" {
		t.Fatalf("expected status ok, got %s", resp["status"])
	}
}

func TestHealthShuttingDownReturnsServiceUnavailable(t *testing.T) {
	h := newTestHandler(testutil.SamplePlayers())

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

func TestReady(t *testing.T) {
	h := newTestHandler(testutil.SamplePlayers())

	rr := testutil.Serve(http.HandlerFunc(h.Ready), http.MethodGet, "/ready", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp domain.ReadyResponse
	testutil.DecodeJSON(t, rr, &resp)
	if resp.Status != "ready" {
		t.Fatalf("expected status ready, got %s", resp.Status)
	}
	if resp.Season != "2023-2024" || resp.Source != "fixture" {
		t.Fatalf("unexpected season/source %s/%s", resp.Season, resp.Source)
	}
	if resp.LoadedAt.IsZero() {
		t.Fatalf("expected loadedAt to be set")
	}
	if resp.Players != 5 || resp.Squads != 2 {
		t.Fatalf("unexpected summary counts %d/%d", resp.Players, resp.Squads)
	}
	if resp.MaxMinutes != 2700 {
		t.Fatalf("expected max minutes 2700, got %d", resp.MaxMinutes)
	}
	if resp.AvgMinutes != 1170 {
		t.Fatalf("expected avg minutes 1170, got %v", resp.AvgMinutes)
	}
}

func TestReadyBeforeLoadReturnsServiceUnavailable(t *testing.T) {
	ms := store.NewMemoryStore()
	logger, _ := testutil.NewBufferLogger()
	h := NewHandler(players.NewService(ms), squads.NewService(ms, ""), nil, logger, Config{})

	rr := testutil.Serve(http.HandlerFunc(h.Ready), http.MethodGet, "/ready", nil)
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)

	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["error"] != "dataset not loaded" {
		t.Fatalf("unexpected error %q", resp["error"])
	}
}

func TestCatalog(t *testing.T) {
	h := newTestHandler(testutil.SamplePlayers())

	rr := testutil.Serve(http.HandlerFunc(h.Catalog), http.MethodGet, "/api/catalog", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var entries []catalogEntry
	testutil.DecodeJSON(t, rr, &entries)
	if len(entries) != 15 {
		t.Fatalf("expected 15 catalog entries, got %d", len(entries))
	}
	first := entries[0]
	if first.Label != "Goals per 90" || first.Column != "Gls" || !first.Per90 {
		t.Fatalf("unexpected first entry %+v", first)
	}
	last := entries[len(entries)-1]
	if last.Label != "Shot Target %" || last.Column != "SoT%" || last.Per90 {
		t.Fatalf("unexpected last entry %+v", last)
	}
}

func TestPlayers(t *testing.T) {
	h := newTestHandler(testutil.SamplePlayers())

	rr := testutil.Serve(http.HandlerFunc(h.Players), http.MethodGet, "/api/players", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp domain.PlayersResponse
	testutil.DecodeJSON(t, rr, &resp)
	if resp.Count != 5 || len(resp.Players) != 5 {
		t.Fatalf("expected 5 players, got count=%d len=%d", resp.Count, len(resp.Players))
	}

	aiden := resp.Players[0]
	if aiden.Name != "Aiden Forward" {
		t.Fatalf("expected dataset order, got first player %q", aiden.Name)
	}
	if len(aiden.Metrics) != 15 {
		t.Fatalf("expected 15 metrics per profile, got %d", len(aiden.Metrics))
	}
	goals := findMetric(t, aiden, "Goals per 90")
	if goals.Value == nil || *goals.Value != 0.9 {
		t.Fatalf("expected goals per 90 of 0.9, got %v", goals.Value)
	}

	bench := resp.Players[4]
	if bench.Name != "Evan Bench" {
		t.Fatalf("expected Evan Bench last, got %q", bench.Name)
	}
	if v := findMetric(t, bench, "Goals per 90"); v.Value != nil {
		t.Fatalf("expected undefined per-90 metric at zero minutes, got %v", *v.Value)
	}
	if v := findMetric(t, bench, "Pass Comp %"); v.Value == nil || *v.Value != 50 {
		t.Fatalf("expected raw percentage to survive zero minutes, got %v", v.Value)
	}
}

func TestPlayersFiltered(t *testing.T) {
	h := newTestHandler(testutil.SamplePlayers())

	rr := testutil.Serve(http.HandlerFunc(h.Players), http.MethodGet,
		"/api/players?positions=FW&minMinutes=500&squad=Arsenal", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp domain.PlayersResponse
	testutil.DecodeJSON(t, rr, &resp)
	if resp.Count != 1 || resp.Players[0].Name != "Aiden Forward" {
		t.Fatalf("expected only Aiden Forward, got %+v", resp.Players)
	}
}

func TestPlayersRejectsBadMinutes(t *testing.T) {
	h := newTestHandler(testutil.SamplePlayers())

	rr := testutil.Serve(http.HandlerFunc(h.Players), http.MethodGet, "/api/players?minMinutes=lots", nil)
	testutil.AssertStatus(t, rr, http.StatusBadRequest)

	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if !strings.Contains(resp["error"], "invalid minMinutes") {
		t.Fatalf("unexpected error %q", resp["error"])
	}
}

func TestPlayerByName(t *testing.T) {
	h := newTestHandler(testutil.SamplePlayers())
	r := chi.NewRouter()
	r.Get("/api/players/{name}", h.PlayerByName)

	rr := testutil.Serve(r, http.MethodGet, "/api/players/Aiden%20Forward", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var profile domain.PlayerProfile
	testutil.DecodeJSON(t, rr, &profile)
	if profile.Name != "Aiden Forward" || profile.Squad != "Arsenal" {
		t.Fatalf("unexpected profile %+v", profile)
	}
}

func TestPlayerByNameNotFound(t *testing.T) {
	h := newTestHandler(testutil.SamplePlayers())
	r := chi.NewRouter()
	r.Get("/api/players/{name}", h.PlayerByName)

	rr := testutil.Serve(r, http.MethodGet, "/api/players/Nobody", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)

	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["error"] != "player not found" {
		t.Fatalf("unexpected error %q", resp["error"])
	}
}

func TestPlayerByNameRejectsEmpty(t *testing.T) {
	h := newTestHandler(testutil.SamplePlayers())

	rr := testutil.Serve(http.HandlerFunc(h.PlayerByName), http.MethodGet, "/api/players/", nil)
	testutil.AssertStatus(t, rr, http.StatusBadRequest)
}

func TestRankingsDefaults(t *testing.T) {
	h := newTestHandler(testutil.SamplePlayers())

	rr := testutil.Serve(http.HandlerFunc(h.Rankings), http.MethodGet, "/api/rankings", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp domain.RankingResponse
	testutil.DecodeJSON(t, rr, &resp)
	if resp.Metric != "Goals per 90" {
		t.Fatalf("expected default metric Goals per 90, got %q", resp.Metric)
	}
	if len(resp.Entries) != 3 {
		t.Fatalf("expected default top 3, got %d entries", len(resp.Entries))
	}
	if resp.Entries[0].Name != "Aiden Forward" || resp.Entries[0].Value != 0.9 {
		t.Fatalf("unexpected leader %+v", resp.Entries[0])
	}
	if resp.Entries[1].Name != "Blake Wide" || resp.Entries[1].Value != 0.4 {
		t.Fatalf("unexpected second entry %+v", resp.Entries[1])
	}
	if resp.Entries[2].Name != "Cody Mid" || resp.Entries[2].Value != 0.2 {
		t.Fatalf("unexpected third entry %+v", resp.Entries[2])
	}
}

func TestRankingsWithMetricAndTopN(t *testing.T) {
	h := newTestHandler(testutil.SamplePlayers())

	rr := testutil.Serve(http.HandlerFunc(h.Rankings), http.MethodGet,
		"/api/rankings?metric=Assists+per+90&topN=2", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp domain.RankingResponse
	testutil.DecodeJSON(t, rr, &resp)
	if resp.Metric != "Assists per 90" {
		t.Fatalf("expected metric Assists per 90, got %q", resp.Metric)
	}
	if len(resp.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(resp.Entries))
	}
	if resp.Entries[0].Name != "Blake Wide" || resp.Entries[0].Value != 0.8 {
		t.Fatalf("unexpected leader %+v", resp.Entries[0])
	}
	if resp.Entries[1].Name != "Aiden Forward" || resp.Entries[1].Value != 0.3 {
		t.Fatalf("expected name to break the tie, got %+v", resp.Entries[1])
	}
}

func TestRankingsUnknownMetric(t *testing.T) {
	h := newTestHandler(testutil.SamplePlayers())

	rr := testutil.Serve(http.HandlerFunc(h.Rankings), http.MethodGet, "/api/rankings?metric=Bogus", nil)
	testutil.AssertStatus(t, rr, http.StatusBadRequest)

	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if !strings.Contains(resp["error"], "unknown metric") {
		t.Fatalf("unexpected error %q", resp["error"])
	}
}

func TestRankingsRejectsBadTopN(t *testing.T) {
	h := newTestHandler(testutil.SamplePlayers())

	rr := testutil.Serve(http.HandlerFunc(h.Rankings), http.MethodGet, "/api/rankings?topN=ten", nil)
	testutil.AssertStatus(t, rr, http.StatusBadRequest)

	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if !strings.Contains(resp["error"], "invalid topN") {
		t.Fatalf("unexpected error %q", resp["error"])
	}
}

func TestScatterDefaults(t *testing.T) {
	h := newTestHandler(testutil.SamplePlayers())

	rr := testutil.Serve(http.HandlerFunc(h.Scatter), http.MethodGet, "/api/scatter", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp domain.ScatterResponse
	testutil.DecodeJSON(t, rr, &resp)
	if resp.MetricX != "xG per 90" || resp.MetricY != "xA per 90" {
		t.Fatalf("unexpected default axes %s/%s", resp.MetricX, resp.MetricY)
	}
	if len(resp.Points) != 4 {
		t.Fatalf("expected 4 points with the zero-minute player omitted, got %d", len(resp.Points))
	}
	first := resp.Points[0]
	if first.Name != "Aiden Forward" || first.X != 0.45 || first.Y != 0.23 {
		t.Fatalf("unexpected first point %+v", first)
	}
}

func TestScatterUnknownMetric(t *testing.T) {
	h := newTestHandler(testutil.SamplePlayers())

	rr := testutil.Serve(http.HandlerFunc(h.Scatter), http.MethodGet, "/api/scatter?y=Bogus", nil)
	testutil.AssertStatus(t, rr, http.StatusBadRequest)

	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if !strings.Contains(resp["error"], "unknown metric") {
		t.Fatalf("unexpected error %q", resp["error"])
	}
}

func TestCompare(t *testing.T) {
	h := newTestHandler(testutil.SamplePlayers())

	rr := testutil.Serve(http.HandlerFunc(h.Compare), http.MethodGet,
		"/api/compare?a=Aiden+Forward&b=Cody+Mid", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp domain.Comparison
	testutil.DecodeJSON(t, rr, &resp)
	if resp.A.Name != "Aiden Forward" || resp.B.Name != "Cody Mid" {
		t.Fatalf("unexpected comparison %q vs %q", resp.A.Name, resp.B.Name)
	}
	if len(resp.A.Metrics) != 15 || len(resp.B.Metrics) != 15 {
		t.Fatalf("expected full metric sets, got %d/%d", len(resp.A.Metrics), len(resp.B.Metrics))
	}
}

func TestCompareRequiresBothNames(t *testing.T) {
	h := newTestHandler(testutil.SamplePlayers())

	rr := testutil.Serve(http.HandlerFunc(h.Compare), http.MethodGet, "/api/compare?a=Aiden+Forward", nil)
	testutil.AssertStatus(t, rr, http.StatusBadRequest)

	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["error"] != "both player names are required" {
		t.Fatalf("unexpected error %q", resp["error"])
	}
}

func TestCompareRejectsIdenticalNames(t *testing.T) {
	h := newTestHandler(testutil.SamplePlayers())

	rr := testutil.Serve(http.HandlerFunc(h.Compare), http.MethodGet,
		"/api/compare?a=Aiden+Forward&b=Aiden+Forward", nil)
	testutil.AssertStatus(t, rr, http.StatusBadRequest)

	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["error"] != "choose two different players" {
		t.Fatalf("unexpected error %q", resp["error"])
	}
}

func TestCompareUnknownPlayer(t *testing.T) {
	h := newTestHandler(testutil.SamplePlayers())

	rr := testutil.Serve(http.HandlerFunc(h.Compare), http.MethodGet,
		"/api/compare?a=Aiden+Forward&b=Nobody", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)

	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if !strings.Contains(resp["error"], "Nobody") {
		t.Fatalf("expected missing name in error, got %q", resp["error"])
	}
}

func TestCompareRespectsFilters(t *testing.T) {
	h := newTestHandler(testutil.SamplePlayers())

	rr := testutil.Serve(http.HandlerFunc(h.Compare), http.MethodGet,
		"/api/compare?a=Aiden+Forward&b=Cody+Mid&squad=Arsenal", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)

	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if !strings.Contains(resp["error"], "Cody Mid") {
		t.Fatalf("expected filtered-out player in error, got %q", resp["error"])
	}
}

func TestSquads(t *testing.T) {
	h := newTestHandler(testutil.SamplePlayers())

	rr := testutil.Serve(http.HandlerFunc(h.Squads), http.MethodGet, "/api/squads", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp domain.SquadsResponse
	testutil.DecodeJSON(t, rr, &resp)
	if len(resp.Squads) != 2 || resp.Squads[0] != "Arsenal" || resp.Squads[1] != "Chelsea" {
		t.Fatalf("unexpected squads %v", resp.Squads)
	}
}

func TestSquadOverview(t *testing.T) {
	h := newTestHandler(testutil.SamplePlayers())
	r := chi.NewRouter()
	r.Get("/api/squads/{name}", h.SquadOverview)

	rr := testutil.Serve(r, http.MethodGet, "/api/squads/Chelsea", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp domain.SquadOverviewResponse
	testutil.DecodeJSON(t, rr, &resp)
	if resp.Squad != "Chelsea" || resp.Metric != "xG per 90" {
		t.Fatalf("unexpected overview header %s/%s", resp.Squad, resp.Metric)
	}
	if len(resp.Players) != 3 {
		t.Fatalf("expected 3 Chelsea players, got %d", len(resp.Players))
	}
	names := []string{resp.Players[0].Name, resp.Players[1].Name, resp.Players[2].Name}
	if names[0] != "Cody Mid" || names[1] != "Drew Keeper" || names[2] != "Evan Bench" {
		t.Fatalf("expected metric order with undefined last, got %v", names)
	}
}

func TestSquadOverviewUnknownMetric(t *testing.T) {
	h := newTestHandler(testutil.SamplePlayers())
	r := chi.NewRouter()
	r.Get("/api/squads/{name}", h.SquadOverview)

	rr := testutil.Serve(r, http.MethodGet, "/api/squads/Chelsea?metric=Bogus", nil)
	testutil.AssertStatus(t, rr, http.StatusBadRequest)
}

func TestSquadOverviewUnknownSquadReturnsEmpty(t *testing.T) {
	h := newTestHandler(testutil.SamplePlayers())
	r := chi.NewRouter()
	r.Get("/api/squads/{name}", h.SquadOverview)

	rr := testutil.Serve(r, http.MethodGet, "/api/squads/Nowhere", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp domain.SquadOverviewResponse
	testutil.DecodeJSON(t, rr, &resp)
	if resp.Squad != "Nowhere" || len(resp.Players) != 0 {
		t.Fatalf("expected empty overview, got %+v", resp)
	}
}

func TestNotFound(t *testing.T) {
	h := newTestHandler(nil)

	rr := testutil.Serve(http.HandlerFunc(h.NotFound), http.MethodGet, "/nope", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)

	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["error"] != "not found" {
		t.Fatalf("unexpected error %q", resp["error"])
	}
}

func TestMethodNotAllowed(t *testing.T) {
	h := newTestHandler(nil)

	rr := testutil.Serve(http.HandlerFunc(h.MethodNotAllowed), http.MethodPost, "/api/players", nil)
	testutil.AssertStatus(t, rr, http.StatusMethodNotAllowed)
}
