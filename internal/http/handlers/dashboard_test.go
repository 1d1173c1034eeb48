package handlers

import (
	"net/http"
	"strings"
	"testing"

	"pitchview/internal/testutil"
)

func TestDashboardRendersSelectorsAndDefaults(t *testing.T) {
	h := newTestHandler(testutil.SamplePlayers())

	rr := testutil.Serve(http.HandlerFunc(h.Dashboard), http.MethodGet, "/", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	if got := rr.Header().Get("Content-Type"); !strings.HasPrefix(got, "text/html") {
		t.Fatalf("expected html content type, got %s", got)
	}

	body := rr.Body.String()
	for _, want := range []string{
		"PitchView",
		"Player season statistics, 2023-2024",
		"Top Performers",
		"Compare Players",
		"Analyze Opponent",
		"Goals per 90",
		"Arsenal",
		"Chelsea",
		`max="2700"`,
		"chart.js",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected dashboard to contain %q", want)
		}
	}
}

func TestDashboardMarksDefaultPositionsSelected(t *testing.T) {
	h := newTestHandler(testutil.SamplePlayers())

	rr := testutil.Serve(http.HandlerFunc(h.Dashboard), http.MethodGet, "/", nil)
	body := rr.Body.String()

	if !strings.Contains(body, `<option value="FW" selected>`) {
		t.Fatalf("expected FW preselected in positions filter")
	}
	if strings.Contains(body, `<option value="GK" selected>`) {
		t.Fatalf("expected GK not preselected")
	}
}

func TestDashboardFallsBackToSeasonCeilingWhenEmpty(t *testing.T) {
	h := newTestHandler(nil)

	rr := testutil.Serve(http.HandlerFunc(h.Dashboard), http.MethodGet, "/", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	if !strings.Contains(rr.Body.String(), `max="3420"`) {
		t.Fatalf("expected minutes slider ceiling of 3420 for an empty dataset")
	}
}
