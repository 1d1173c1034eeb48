package fixture

import (
	"context"

	"pitchview/internal/domain"
)

// Source returns a static season dataset useful for local runs and
// bootstrapping, shaped like a real export: a transfer aggregate row, an
// unresolved squad, and an unused substitute are all present.
type Source struct{}

// New creates a fixture source.
func New() *Source {
	return &Source{}
}

// Name identifies the source in logs and metrics.
func (s *Source) Name() string { return "fixture" }

// Load returns the deterministic fixture dataset.
func (s *Source) Load(ctx context.Context) ([]domain.Player, error) {
	_ = ctx
	return Players(), nil
}

// Players returns the fixture records in name order.
func Players() []domain.Player {
	return []domain.Player{
		{
			Name: "Aaron Vale", Squad: "Manchester City", Position: "FW", PrimaryPosition: "FW",
			Age: 27, Minutes: 2610,
			Stats: domain.Stats{
				Goals: 22, Assists: 5, ExpectedGoals: 20.1, ExpectedAssists: 4.9, Shots: 98,
				KeyPasses: 38, ProgressivePasses: 55, ProgressiveCarries: 61, SuccessfulDribbles: 24,
				TacklesWon: 8, Interceptions: 4, ShotCreatingActions: 72, GoalCreatingActions: 14,
				PassCompletionPct: 78.2, ShotsOnTargetPct: 55.1,
			},
		},
		{
			Name: "Ben Okafor", Squad: "Arsenal", Position: "FW,MF", PrimaryPosition: "FW",
			Age: 24, Minutes: 2340,
			Stats: domain.Stats{
				Goals: 14, Assists: 9, ExpectedGoals: 12.4, ExpectedAssists: 8.2, Shots: 74,
				KeyPasses: 51, ProgressivePasses: 88, ProgressiveCarries: 103, SuccessfulDribbles: 41,
				TacklesWon: 19, Interceptions: 11, ShotCreatingActions: 95, GoalCreatingActions: 12,
				PassCompletionPct: 81.7, ShotsOnTargetPct: 47.3,
			},
		},
		{
			Name: "Caleb Mensah", Squad: "Liverpool", Position: "MF", PrimaryPosition: "MF",
			Age: 29, Minutes: 2790,
			Stats: domain.Stats{
				Goals: 6, Assists: 11, ExpectedGoals: 5.8, ExpectedAssists: 9.4, Shots: 44,
				KeyPasses: 63, ProgressivePasses: 201, ProgressiveCarries: 84, SuccessfulDribbles: 29,
				TacklesWon: 46, Interceptions: 38, ShotCreatingActions: 118, GoalCreatingActions: 9,
				PassCompletionPct: 87.4, ShotsOnTargetPct: 38.6,
			},
		},
		{
			Name: "Diego Ferreira", Squad: "Arsenal", Position: "MF", PrimaryPosition: "MF",
			Age: 26, Minutes: 1980,
			Stats: domain.Stats{
				Goals: 3, Assists: 7, ExpectedGoals: 2.9, ExpectedAssists: 6.1, Shots: 27,
				KeyPasses: 41, ProgressivePasses: 164, ProgressiveCarries: 57, SuccessfulDribbles: 18,
				TacklesWon: 52, Interceptions: 41, ShotCreatingActions: 77, GoalCreatingActions: 5,
				PassCompletionPct: 89.2, ShotsOnTargetPct: 33.3,
			},
		},
		{
			Name: "Eli Baxter", Squad: "Manchester City", Position: "DF", PrimaryPosition: "DF",
			Age: 31, Minutes: 2970,
			Stats: domain.Stats{
				Goals: 2, Assists: 1, ExpectedGoals: 1.4, ExpectedAssists: 0.9, Shots: 18,
				KeyPasses: 9, ProgressivePasses: 142, ProgressiveCarries: 36, SuccessfulDribbles: 6,
				TacklesWon: 58, Interceptions: 49, ShotCreatingActions: 31, GoalCreatingActions: 2,
				PassCompletionPct: 91.8, ShotsOnTargetPct: 27.8,
			},
		},
		{
			Name: "Felix Hart", Squad: "Liverpool", Position: "GK", PrimaryPosition: "GK",
			Age: 33, Minutes: 3060,
			Stats: domain.Stats{
				ExpectedAssists: 0.1, KeyPasses: 1, ProgressivePasses: 88, ProgressiveCarries: 2,
				TacklesWon: 1, Interceptions: 3, ShotCreatingActions: 2,
				PassCompletionPct: 84.6,
			},
		},
		{
			Name: "Gabriel Santos", Squad: "Liverpool", Position: "MF,FW", PrimaryPosition: "MF",
			Age: 22, Minutes: 1530,
			Stats: domain.Stats{
				Goals: 8, Assists: 4, ExpectedGoals: 7.2, ExpectedAssists: 3.8, Shots: 51,
				KeyPasses: 28, ProgressivePasses: 49, ProgressiveCarries: 72, SuccessfulDribbles: 33,
				TacklesWon: 12, Interceptions: 7, ShotCreatingActions: 58, GoalCreatingActions: 8,
				PassCompletionPct: 79.5, ShotsOnTargetPct: 49.0,
			},
		},
		{
			Name: "Hugo Lindqvist", Squad: "Arsenal", Position: "DF", PrimaryPosition: "DF",
			Age: 28, Minutes: 2880,
			Stats: domain.Stats{
				Goals: 1, Assists: 2, ExpectedGoals: 0.8, ExpectedAssists: 1.6, Shots: 12,
				KeyPasses: 11, ProgressivePasses: 176, ProgressiveCarries: 44, SuccessfulDribbles: 9,
				TacklesWon: 61, Interceptions: 55, ShotCreatingActions: 38, GoalCreatingActions: 3,
				PassCompletionPct: 92.5, ShotsOnTargetPct: 25.0,
			},
		},
		{
			Name: "Ivan Petrov", Squad: domain.SquadTransferTotal, Position: "FW", PrimaryPosition: "FW",
			Age: 30, Minutes: 1170,
			Stats: domain.Stats{
				Goals: 7, Assists: 2, ExpectedGoals: 6.3, ExpectedAssists: 1.9, Shots: 39,
				KeyPasses: 14, ProgressivePasses: 22, ProgressiveCarries: 31, SuccessfulDribbles: 15,
				TacklesWon: 5, Interceptions: 2, ShotCreatingActions: 29, GoalCreatingActions: 4,
				PassCompletionPct: 74.1, ShotsOnTargetPct: 51.3,
			},
		},
		{
			Name: "Jonah Reyes", Squad: "Manchester City", Position: "MF", PrimaryPosition: "MF",
			Age: 17, Minutes: 0,
			Stats: domain.Stats{},
		},
		{
			Name: "Kofi Adjei", Squad: domain.SquadUnknown, Position: "DF", PrimaryPosition: "DF",
			Age: 21, Minutes: 540,
			Stats: domain.Stats{
				Assists: 1, ExpectedGoals: 0.3, ExpectedAssists: 0.8, Shots: 4,
				KeyPasses: 6, ProgressivePasses: 33, ProgressiveCarries: 12, SuccessfulDribbles: 3,
				TacklesWon: 14, Interceptions: 9, ShotCreatingActions: 9, GoalCreatingActions: 1,
				PassCompletionPct: 86.3, ShotsOnTargetPct: 25.0,
			},
		},
		{
			Name: "Luka Novak", Squad: "Liverpool", Position: "FW", PrimaryPosition: "FW",
			Age: 25, Minutes: 2250,
			Stats: domain.Stats{
				Goals: 17, Assists: 6, ExpectedGoals: 15.6, ExpectedAssists: 5.4, Shots: 88,
				KeyPasses: 33, ProgressivePasses: 41, ProgressiveCarries: 58, SuccessfulDribbles: 27,
				TacklesWon: 6, Interceptions: 3, ShotCreatingActions: 66, GoalCreatingActions: 11,
				PassCompletionPct: 76.9, ShotsOnTargetPct: 52.3,
			},
		},
	}
}
