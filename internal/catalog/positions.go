package catalog

import (
	"sort"

	"pitchview/internal/domain"
)

// positionOrder fixes the display order of primary positions, back to front.
var positionOrder = []string{"GK", "DF", "MF", "FW", domain.PositionUnknown}

// SortPositions orders primary positions goalkeepers-first. Positions outside
// the known order sort after it, alphabetically.
func SortPositions(positions []string) {
	sort.Slice(positions, func(i, j int) bool {
		ri, rj := positionRank(positions[i]), positionRank(positions[j])
		if ri != rj {
			return ri < rj
		}
		return positions[i] < positions[j]
	})
}

func positionRank(pos string) int {
	for i, p := range positionOrder {
		if p == pos {
			return i
		}
	}
	return len(positionOrder)
}
