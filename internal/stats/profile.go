package stats

import (
	"pitchview/internal/catalog"
	"pitchview/internal/domain"
	"pitchview/internal/mathutil"
)

// ProfileFor assembles a player's identity attributes plus every catalog
// metric. Undefined per-90 values stay nil rather than collapsing to zero.
func ProfileFor(p domain.Player) domain.PlayerProfile {
	defs := catalog.Definitions()
	metrics := make([]domain.MetricValue, 0, len(defs))
	for _, d := range defs {
		mv := domain.MetricValue{Label: d.Label}
		if v, ok := d.Value(p); ok {
			value := v
			mv.Value = &value
		}
		metrics = append(metrics, mv)
	}

	return domain.PlayerProfile{
		Name:     p.Name,
		Squad:    p.Squad,
		Position: p.Position,
		Age:      p.Age,
		Minutes:  p.Minutes,
		Metrics:  metrics,
	}
}

// RoundProfile returns a copy of the profile with metric values rounded to
// the given number of decimals. Undefined values stay nil.
func RoundProfile(p domain.PlayerProfile, decimals int) domain.PlayerProfile {
	metrics := make([]domain.MetricValue, len(p.Metrics))
	for i, m := range p.Metrics {
		rounded := domain.MetricValue{Label: m.Label}
		if m.Value != nil {
			v := mathutil.Round(*m.Value, decimals)
			rounded.Value = &v
		}
		metrics[i] = rounded
	}
	p.Metrics = metrics
	return p
}
