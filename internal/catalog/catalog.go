package catalog

import (
	"errors"

	"pitchview/internal/domain"
)

// ErrUnknownMetric reports a metric label absent from the catalog.
var ErrUnknownMetric = errors.New("unknown metric")

// Default metric labels used by views when a request names none.
const (
	DefaultScatterX  = "xG per 90"
	DefaultScatterY  = "xA per 90"
	DefaultRanking   = "Goals per 90"
	DefaultSquadSort = "xG per 90"
)

// Definition maps a display label to a source stat column and its
// normalization mode. Per90 metrics are divided by minutes played and scaled
// to a 90-minute basis; the rest are reported as stored.
type Definition struct {
	Label  string `json:"label"`
	Column string `json:"column"`
	Per90  bool   `json:"per90"`

	raw func(domain.Stats) float64
}

// Value computes the metric for one player. ok is false when the metric is
// per-90 normalized and the player has zero minutes: the value is undefined
// there, never zero.
func (d Definition) Value(p domain.Player) (float64, bool) {
	if d.raw == nil {
		return 0, false
	}
	v := d.raw(p.Stats)
	if !d.Per90 {
		return v, true
	}
	if p.Minutes == 0 {
		return 0, false
	}
	return v * 90 / float64(p.Minutes), true
}

var definitions = []Definition{
	{Label: "Goals per 90", Column: "Gls", Per90: true, raw: func(s domain.Stats) float64 { return s.Goals }},
	{Label: "Assists per 90", Column: "Ast", Per90: true, raw: func(s domain.Stats) float64 { return s.Assists }},
	{Label: "xG per 90", Column: "xG", Per90: true, raw: func(s domain.Stats) float64 { return s.ExpectedGoals }},
	{Label: "xA per 90", Column: "xAG", Per90: true, raw: func(s domain.Stats) float64 { return s.ExpectedAssists }},
	{Label: "Shots per 90", Column: "Sh", Per90: true, raw: func(s domain.Stats) float64 { return s.Shots }},
	{Label: "Key Passes per 90", Column: "KP", Per90: true, raw: func(s domain.Stats) float64 { return s.KeyPasses }},
	{Label: "Prog Passes per 90", Column: "PrgP", Per90: true, raw: func(s domain.Stats) float64 { return s.ProgressivePasses }},
	{Label: "Prog Carries per 90", Column: "PrgC", Per90: true, raw: func(s domain.Stats) float64 { return s.ProgressiveCarries }},
	{Label: "Success Dribbles per 90", Column: "Succ", Per90: true, raw: func(s domain.Stats) float64 { return s.SuccessfulDribbles }},
	{Label: "Tackles Won per 90", Column: "TklW", Per90: true, raw: func(s domain.Stats) float64 { return s.TacklesWon }},
	{Label: "Interceptions per 90", Column: "Int", Per90: true, raw: func(s domain.Stats) float64 { return s.Interceptions }},
	{Label: "SCA per 90", Column: "SCA", Per90: true, raw: func(s domain.Stats) float64 { return s.ShotCreatingActions }},
	{Label: "GCA per 90", Column: "GCA", Per90: true, raw: func(s domain.Stats) float64 { return s.GoalCreatingActions }},
	{Label: "Pass Comp %", Column: "Cmp%", Per90: false, raw: func(s domain.Stats) float64 { return s.PassCompletionPct }},
	{Label: "Shot Target %", Column: "SoT%", Per90: false, raw: func(s domain.Stats) float64 { return s.ShotsOnTargetPct }},
}

// Definitions returns the full catalog in its fixed display order.
func Definitions() []Definition {
	out := make([]Definition, len(definitions))
	copy(out, definitions)
	return out
}

// Lookup resolves a display label to its definition.
func Lookup(label string) (Definition, bool) {
	for _, d := range definitions {
		if d.Label == label {
			return d, true
		}
	}
	return Definition{}, false
}

// Labels returns the display labels in catalog order.
func Labels() []string {
	out := make([]string, len(definitions))
	for i, d := range definitions {
		out[i] = d.Label
	}
	return out
}

// Columns returns the source stat columns in catalog order.
func Columns() []string {
	out := make([]string, len(definitions))
	for i, d := range definitions {
		out[i] = d.Column
	}
	return out
}
