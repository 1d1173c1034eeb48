package domain

// Squad sentinel values carried in source data. Transfer aggregate rows keep
// the squad name "TOT"; rows with no resolvable squad are normalized to
// "Unknown" at load. Both stay in the dataset but are excluded from squad
// listings.
const (
	SquadTransferTotal = "TOT"
	SquadUnknown       = "Unknown"
)

// PositionUnknown is the primary position assigned when the position cell is
// empty.
const PositionUnknown = "Unknown"

// Stats holds the raw season statistics for one player. Counting stats are
// season totals; the two Pct fields arrive as rates and are never per-90
// normalized.
type Stats struct {
	Goals               float64 `json:"goals"`
	Assists             float64 `json:"assists"`
	ExpectedGoals       float64 `json:"expectedGoals"`
	ExpectedAssists     float64 `json:"expectedAssists"`
	Shots               float64 `json:"shots"`
	KeyPasses           float64 `json:"keyPasses"`
	ProgressivePasses   float64 `json:"progressivePasses"`
	ProgressiveCarries  float64 `json:"progressiveCarries"`
	SuccessfulDribbles  float64 `json:"successfulDribbles"`
	TacklesWon          float64 `json:"tacklesWon"`
	Interceptions       float64 `json:"interceptions"`
	ShotCreatingActions float64 `json:"shotCreatingActions"`
	GoalCreatingActions float64 `json:"goalCreatingActions"`
	PassCompletionPct   float64 `json:"passCompletionPct"`
	ShotsOnTargetPct    float64 `json:"shotsOnTargetPct"`
}

// Player is one season-team row of the dataset, immutable after load.
// Name is unique within a squad; Minutes is always >= 0.
type Player struct {
	Name            string `json:"name"`
	Squad           string `json:"squad"`
	Position        string `json:"position"`
	PrimaryPosition string `json:"primaryPosition"`
	Age             int    `json:"age"`
	Minutes         int    `json:"minutes"`
	Stats           Stats  `json:"stats"`
}

// FilterCriteria is the transient, user-supplied filter input. An empty
// Positions set and an empty Squad mean "no restriction" for that dimension.
type FilterCriteria struct {
	Positions  []string
	MinMinutes int
	Squad      string
}
