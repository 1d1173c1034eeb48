package testutil

import (
	"pitchview/internal/domain"
)

// SamplePlayer returns a forward fixture with the provided name. The stat
// values divide evenly by the 900 minutes so per-90 assertions stay exact.
func SamplePlayer(name string) domain.Player {
	return domain.Player{
		Name:            name,
		Squad:           "Arsenal",
		Position:        "FW",
		PrimaryPosition: "FW",
		Age:             24,
		Minutes:         900,
		Stats: domain.Stats{
			Goals:               9,
			Assists:             3,
			ExpectedGoals:       4.5,
			ExpectedAssists:     2.25,
			Shots:               27,
			KeyPasses:           18,
			ProgressivePasses:   45,
			ProgressiveCarries:  36,
			SuccessfulDribbles:  18,
			TacklesWon:          9,
			Interceptions:       9,
			ShotCreatingActions: 27,
			GoalCreatingActions: 9,
			PassCompletionPct:   72.5,
			ShotsOnTargetPct:    40,
		},
	}
}

// SamplePlayers returns a small two-squad dataset covering the interesting
// shapes: a comma-separated position, a goalkeeper, and a zero-minute player
// whose per-90 values are undefined.
func SamplePlayers() []domain.Player {
	return []domain.Player{
		SamplePlayer("Aiden Forward"),
		{
			Name:            "Blake Wide",
			Squad:           "Arsenal",
			Position:        "FW,MF",
			PrimaryPosition: "FW",
			Age:             21,
			Minutes:         450,
			Stats: domain.Stats{
				Goals:               2,
				Assists:             4,
				ExpectedGoals:       1.8,
				ExpectedAssists:     2.7,
				Shots:               9,
				KeyPasses:           18,
				ProgressivePasses:   27,
				ProgressiveCarries:  18,
				SuccessfulDribbles:  9,
				TacklesWon:          4,
				Interceptions:       2,
				ShotCreatingActions: 18,
				GoalCreatingActions: 4,
				PassCompletionPct:   78,
				ShotsOnTargetPct:    33.3,
			},
		},
		{
			Name:            "Cody Mid",
			Squad:           "Chelsea",
			Position:        "MF",
			PrimaryPosition: "MF",
			Age:             27,
			Minutes:         1800,
			Stats: domain.Stats{
				Goals:               4,
				Assists:             6,
				ExpectedGoals:       3.6,
				ExpectedAssists:     5.4,
				Shots:               20,
				KeyPasses:           40,
				ProgressivePasses:   120,
				ProgressiveCarries:  60,
				SuccessfulDribbles:  30,
				TacklesWon:          40,
				Interceptions:       30,
				ShotCreatingActions: 60,
				GoalCreatingActions: 10,
				PassCompletionPct:   88.2,
				ShotsOnTargetPct:    45,
			},
		},
		{
			Name:            "Drew Keeper",
			Squad:           "Chelsea",
			Position:        "GK",
			PrimaryPosition: "GK",
			Age:             31,
			Minutes:         2700,
			Stats: domain.Stats{
				Assists:           1,
				ExpectedGoals:     0.1,
				ExpectedAssists:   0.8,
				Shots:             1,
				KeyPasses:         2,
				ProgressivePasses: 90,
				TacklesWon:        3,
				Interceptions:     3,
				PassCompletionPct: 85,
			},
		},
		{
			Name:            "Evan Bench",
			Squad:           "Chelsea",
			Position:        "FW",
			PrimaryPosition: "FW",
			Age:             19,
			Minutes:         0,
			Stats: domain.Stats{
				Goals:             1,
				Shots:             2,
				PassCompletionPct: 50,
			},
		},
	}
}
