package stats

import "testing"

func TestSummary(t *testing.T) {
	got := Summary(testPlayers())

	if got.Players != 7 {
		t.Fatalf("expected 7 players, got %d", got.Players)
	}
	if got.Squads != 2 {
		t.Fatalf("expected 2 squads, got %d", got.Squads)
	}
	if got.MaxMinutes != 2700 {
		t.Fatalf("expected max minutes 2700, got %d", got.MaxMinutes)
	}
	if got.AvgMinutes != 991.4 {
		t.Fatalf("expected average minutes 991.4, got %v", got.AvgMinutes)
	}
}

func TestSummaryEmptyDataset(t *testing.T) {
	got := Summary(nil)

	if got.Players != 0 || got.Squads != 0 || got.MaxMinutes != 0 || got.AvgMinutes != 0 {
		t.Fatalf("expected zero summary, got %+v", got)
	}
}
