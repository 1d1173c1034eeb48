package domain

import "time"

// MetricValue pairs a catalog label with a computed value. Value is nil when
// the metric is undefined for the player, which happens for per-90 metrics at
// zero minutes.
type MetricValue struct {
	Label string   `json:"label"`
	Value *float64 `json:"value"`
}

// PlayerProfile is a player's identity attributes plus every catalog metric.
type PlayerProfile struct {
	Name     string        `json:"name"`
	Squad    string        `json:"squad"`
	Position string        `json:"position"`
	Age      int           `json:"age"`
	Minutes  int           `json:"minutes"`
	Metrics  []MetricValue `json:"metrics"`
}

// Comparison holds two profiles aligned metric-for-metric.
type Comparison struct {
	A PlayerProfile `json:"a"`
	B PlayerProfile `json:"b"`
}

// RankEntry is one row of a metric ranking.
type RankEntry struct {
	Name     string  `json:"name"`
	Squad    string  `json:"squad"`
	Position string  `json:"position"`
	Minutes  int     `json:"minutes"`
	Value    float64 `json:"value"`
}

// ScatterPoint is one point of a two-metric scatter view.
type ScatterPoint struct {
	Name     string  `json:"name"`
	Squad    string  `json:"squad"`
	Position string  `json:"position"`
	Minutes  int     `json:"minutes"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
}

// DatasetSummary reports header-level facts about the loaded dataset.
type DatasetSummary struct {
	Players    int     `json:"players"`
	Squads     int     `json:"squads"`
	MaxMinutes int     `json:"maxMinutes"`
	AvgMinutes float64 `json:"avgMinutes"`
}

// PlayersResponse is the payload returned by /api/players.
type PlayersResponse struct {
	Count   int             `json:"count"`
	Players []PlayerProfile `json:"players"`
}

// RankingResponse is the payload returned by /api/rankings.
type RankingResponse struct {
	Metric  string      `json:"metric"`
	Entries []RankEntry `json:"entries"`
}

// ScatterResponse is the payload returned by /api/scatter.
type ScatterResponse struct {
	MetricX string         `json:"metricX"`
	MetricY string         `json:"metricY"`
	Points  []ScatterPoint `json:"points"`
}

// SquadsResponse is the payload returned by /api/squads.
type SquadsResponse struct {
	Squads []string `json:"squads"`
}

// SquadOverviewResponse is the payload returned by /api/squads/{name}.
type SquadOverviewResponse struct {
	Squad   string          `json:"squad"`
	Metric  string          `json:"metric"`
	Players []PlayerProfile `json:"players"`
}

// ReadyResponse is the payload returned by /ready once the dataset is loaded.
type ReadyResponse struct {
	Status   string    `json:"status"`
	Season   string    `json:"season"`
	Source   string    `json:"source"`
	LoadedAt time.Time `json:"loadedAt"`
	DatasetSummary
}
