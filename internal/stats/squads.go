package stats

import (
	"sort"

	"pitchview/internal/catalog"
	"pitchview/internal/domain"
)

// Squads returns the distinct squad names in ascending order, excluding
// transfer aggregate rows and unresolved squads.
func Squads(players []domain.Player) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0, 24)
	for _, p := range players {
		if p.Squad == domain.SquadTransferTotal || p.Squad == domain.SquadUnknown {
			continue
		}
		if _, ok := seen[p.Squad]; ok {
			continue
		}
		seen[p.Squad] = struct{}{}
		out = append(out, p.Squad)
	}
	sort.Strings(out)
	return out
}

// Positions returns the distinct primary positions in display order.
func Positions(players []domain.Player) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0, 8)
	for _, p := range players {
		if _, ok := seen[p.PrimaryPosition]; ok {
			continue
		}
		seen[p.PrimaryPosition] = struct{}{}
		out = append(out, p.PrimaryPosition)
	}
	catalog.SortPositions(out)
	return out
}

// SquadOverview restricts the view to one squad and sorts it by the given
// metric, descending. Players for whom the metric is undefined sort after
// every defined value so the whole squad stays visible; ties and undefined
// runs order by name ascending. An unknown squad yields an empty slice.
func SquadOverview(players []domain.Player, squad string, metric catalog.Definition) []domain.PlayerProfile {
	type row struct {
		profile domain.PlayerProfile
		value   float64
		defined bool
	}

	rows := make([]row, 0, 32)
	for _, p := range players {
		if p.Squad != squad {
			continue
		}
		v, ok := metric.Value(p)
		rows = append(rows, row{profile: ProfileFor(p), value: v, defined: ok})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].defined != rows[j].defined {
			return rows[i].defined
		}
		if rows[i].defined && rows[i].value != rows[j].value {
			return rows[i].value > rows[j].value
		}
		return rows[i].profile.Name < rows[j].profile.Name
	})

	out := make([]domain.PlayerProfile, len(rows))
	for i, r := range rows {
		out[i] = r.profile
	}
	return out
}
