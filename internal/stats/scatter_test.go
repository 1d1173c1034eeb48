package stats

import "testing"

func TestScatterPairsComputesBothAxes(t *testing.T) {
	points := ScatterPairs(testPlayers(), mustLookup(t, "xG per 90"), mustLookup(t, "Goals per 90"))

	if len(points) != 6 {
		t.Fatalf("expected 6 points, got %d", len(points))
	}
	first := points[0]
	if first.Name != "Alice Striker" {
		t.Fatalf("expected input order preserved, got %s first", first.Name)
	}
	if first.X != 0.45 || first.Y != 0.9 {
		t.Fatalf("unexpected point (%v, %v)", first.X, first.Y)
	}
}

func TestScatterPairsOmitsUndefinedPoints(t *testing.T) {
	points := ScatterPairs(testPlayers(), mustLookup(t, "xG per 90"), mustLookup(t, "Goals per 90"))
	for _, p := range points {
		if p.Name == "Eve Bench" {
			t.Fatal("expected zero-minute player to be omitted from the scatter")
		}
	}
}

func TestScatterPairsMixedAxes(t *testing.T) {
	// A raw percentage on one axis does not rescue a player whose per-90 axis
	// is undefined.
	points := ScatterPairs(testPlayers(), mustLookup(t, "Pass Comp %"), mustLookup(t, "Goals per 90"))
	if len(points) != 6 {
		t.Fatalf("expected 6 points, got %d", len(points))
	}
	for _, p := range points {
		if p.Name == "Eve Bench" {
			t.Fatal("expected player with one undefined axis to be omitted")
		}
	}
}

func TestScatterPairsEmptyView(t *testing.T) {
	points := ScatterPairs(nil, mustLookup(t, "xG per 90"), mustLookup(t, "xA per 90"))
	if len(points) != 0 {
		t.Fatalf("expected no points, got %d", len(points))
	}
}
