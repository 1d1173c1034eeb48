package stats

import (
	"pitchview/internal/catalog"
	"pitchview/internal/domain"
)

// ScatterPairs computes two metrics for every player, omitting players for
// whom either metric is undefined. Output order follows input order.
func ScatterPairs(players []domain.Player, x, y catalog.Definition) []domain.ScatterPoint {
	points := make([]domain.ScatterPoint, 0, len(players))
	for _, p := range players {
		xv, ok := x.Value(p)
		if !ok {
			continue
		}
		yv, ok := y.Value(p)
		if !ok {
			continue
		}
		points = append(points, domain.ScatterPoint{
			Name:     p.Name,
			Squad:    p.Squad,
			Position: p.PrimaryPosition,
			Minutes:  p.Minutes,
			X:        xv,
			Y:        yv,
		})
	}
	return points
}
