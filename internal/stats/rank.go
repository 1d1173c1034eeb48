package stats

import (
	"sort"

	"pitchview/internal/catalog"
	"pitchview/internal/domain"
)

// Rank computes the metric for every player, sorts descending with ties
// broken by name ascending, and truncates to topN. topN <= 0 disables
// truncation. Players for whom the metric is undefined are omitted.
func Rank(players []domain.Player, metric catalog.Definition, topN int) []domain.RankEntry {
	entries := make([]domain.RankEntry, 0, len(players))
	for _, p := range players {
		v, ok := metric.Value(p)
		if !ok {
			continue
		}
		entries = append(entries, domain.RankEntry{
			Name:     p.Name,
			Squad:    p.Squad,
			Position: p.PrimaryPosition,
			Minutes:  p.Minutes,
			Value:    v,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Value != entries[j].Value {
			return entries[i].Value > entries[j].Value
		}
		return entries[i].Name < entries[j].Name
	})

	if topN > 0 && len(entries) > topN {
		entries = entries[:topN]
	}
	return entries
}
