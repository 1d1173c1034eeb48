package stats

import (
	"pitchview/internal/domain"
	"pitchview/internal/mathutil"
)

// Summary computes header-level facts about a dataset: record and squad
// counts, the largest minutes total, and the average minutes per record.
func Summary(players []domain.Player) domain.DatasetSummary {
	totalMinutes := 0
	maxMinutes := 0
	squads := make(map[string]struct{})
	for _, p := range players {
		totalMinutes += p.Minutes
		if p.Minutes > maxMinutes {
			maxMinutes = p.Minutes
		}
		if p.Squad == domain.SquadTransferTotal || p.Squad == domain.SquadUnknown {
			continue
		}
		squads[p.Squad] = struct{}{}
	}

	return domain.DatasetSummary{
		Players:    len(players),
		Squads:     len(squads),
		MaxMinutes: maxMinutes,
		AvgMinutes: mathutil.Round(mathutil.SafeDiv(float64(totalMinutes), float64(len(players))), 1),
	}
}
