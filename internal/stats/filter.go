package stats

import "pitchview/internal/domain"

// Filter returns the players matching every set criterion, preserving input
// order. The input slice is never mutated and an empty result is valid.
func Filter(players []domain.Player, criteria domain.FilterCriteria) []domain.Player {
	var positions map[string]struct{}
	if len(criteria.Positions) > 0 {
		positions = make(map[string]struct{}, len(criteria.Positions))
		for _, p := range criteria.Positions {
			positions[p] = struct{}{}
		}
	}

	out := make([]domain.Player, 0, len(players))
	for _, p := range players {
		if p.Minutes < criteria.MinMinutes {
			continue
		}
		if positions != nil {
			if _, ok := positions[p.PrimaryPosition]; !ok {
				continue
			}
		}
		if criteria.Squad != "" && p.Squad != criteria.Squad {
			continue
		}
		out = append(out, p)
	}
	return out
}
