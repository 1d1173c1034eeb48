package stats

import (
	"errors"
	"reflect"
	"testing"

	"pitchview/internal/catalog"
)

func TestCompareReturnsBothProfiles(t *testing.T) {
	cmp, err := Compare(testPlayers(), "Alice Striker", "Dan Keeper")
	if err != nil {
		t.Fatalf("expected comparison to succeed, got %v", err)
	}

	if cmp.A.Name != "Alice Striker" || cmp.B.Name != "Dan Keeper" {
		t.Fatalf("unexpected pairing %s vs %s", cmp.A.Name, cmp.B.Name)
	}
	wantMetrics := len(catalog.Definitions())
	if len(cmp.A.Metrics) != wantMetrics || len(cmp.B.Metrics) != wantMetrics {
		t.Fatalf("expected %d metrics per side, got %d and %d", wantMetrics, len(cmp.A.Metrics), len(cmp.B.Metrics))
	}
	for i := range cmp.A.Metrics {
		if cmp.A.Metrics[i].Label != cmp.B.Metrics[i].Label {
			t.Fatalf("metric order diverged at %d: %s vs %s", i, cmp.A.Metrics[i].Label, cmp.B.Metrics[i].Label)
		}
	}
}

func TestCompareUnknownPlayer(t *testing.T) {
	players := testPlayers()
	before := make([]string, len(players))
	for i, p := range players {
		before[i] = p.Name
	}

	_, err := Compare(players, "Alice Striker", "Nobody Here")
	if err == nil {
		t.Fatal("expected an error for an unknown player")
	}

	var notFound *PlayerNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected PlayerNotFoundError, got %T", err)
	}
	if notFound.Name != "Nobody Here" {
		t.Fatalf("expected error to name the missing player, got %q", notFound.Name)
	}

	if len(players) != len(before) {
		t.Fatalf("player slice length changed from %d to %d", len(before), len(players))
	}
	for i, p := range players {
		if p.Name != before[i] {
			t.Fatalf("player %d changed from %q to %q", i, before[i], p.Name)
		}
	}
}

func TestCompareReportsFirstMissingName(t *testing.T) {
	_, err := Compare(testPlayers(), "Ghost One", "Ghost Two")
	var notFound *PlayerNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected PlayerNotFoundError, got %T", err)
	}
	if notFound.Name != "Ghost One" {
		t.Fatalf("expected first missing name, got %q", notFound.Name)
	}
}

func TestCompareIsSymmetric(t *testing.T) {
	ab, err := Compare(testPlayers(), "Alice Striker", "Carla Mid")
	if err != nil {
		t.Fatalf("expected comparison to succeed, got %v", err)
	}
	ba, err := Compare(testPlayers(), "Carla Mid", "Alice Striker")
	if err != nil {
		t.Fatalf("expected comparison to succeed, got %v", err)
	}

	if !reflect.DeepEqual(ab.A, ba.B) || !reflect.DeepEqual(ab.B, ba.A) {
		t.Fatal("expected swapped arguments to swap sides only")
	}
}

func TestCompareZeroMinutePlayerUsesNulls(t *testing.T) {
	cmp, err := Compare(testPlayers(), "Eve Bench", "Alice Striker")
	if err != nil {
		t.Fatalf("expected comparison to succeed, got %v", err)
	}

	for _, m := range cmp.A.Metrics {
		switch m.Label {
		case "Pass Comp %", "Shot Target %":
			if m.Value == nil {
				t.Fatalf("expected raw metric %s to stay defined", m.Label)
			}
		default:
			if m.Value != nil {
				t.Fatalf("expected per-90 metric %s to be undefined at zero minutes", m.Label)
			}
		}
	}
}

func TestCompareKeepsFullPositionString(t *testing.T) {
	cmp, err := Compare(testPlayers(), "Bob Winger", "Alice Striker")
	if err != nil {
		t.Fatalf("expected comparison to succeed, got %v", err)
	}
	if cmp.A.Position != "FW,MF" {
		t.Fatalf("expected full position string, got %s", cmp.A.Position)
	}
}
