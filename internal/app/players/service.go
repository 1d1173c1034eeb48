package players

import (
	"fmt"
	"time"

	"pitchview/internal/catalog"
	"pitchview/internal/domain"
	"pitchview/internal/mathutil"
	"pitchview/internal/stats"
)

// displayDecimals is the precision metric values carry in responses.
const displayDecimals = 2

// Store defines the dataset access player queries need.
type Store interface {
	ListPlayers() []domain.Player
	GetPlayer(name string) (domain.Player, bool)
	Count() int
	LoadedAt() time.Time
}

// Service answers player-centric queries over the loaded dataset. All
// methods are read-only; the dataset never changes after startup.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Players returns profiles for every record matching the criteria, in
// dataset order.
func (s *Service) Players(criteria domain.FilterCriteria) domain.PlayersResponse {
	matched := stats.Filter(s.store.ListPlayers(), criteria)
	profiles := make([]domain.PlayerProfile, len(matched))
	for i, p := range matched {
		profiles[i] = stats.RoundProfile(stats.ProfileFor(p), displayDecimals)
	}
	return domain.PlayersResponse{Count: len(profiles), Players: profiles}
}

// PlayerByName returns the profile for a single record if present.
func (s *Service) PlayerByName(name string) (domain.PlayerProfile, bool) {
	p, ok := s.store.GetPlayer(name)
	if !ok {
		return domain.PlayerProfile{}, false
	}
	return stats.RoundProfile(stats.ProfileFor(p), displayDecimals), true
}

// Rank returns the top-N ranking for a metric over the filtered view.
func (s *Service) Rank(criteria domain.FilterCriteria, metricLabel string, topN int) (domain.RankingResponse, error) {
	def, ok := catalog.Lookup(metricLabel)
	if !ok {
		return domain.RankingResponse{}, fmt.Errorf("%w: %q", catalog.ErrUnknownMetric, metricLabel)
	}

	view := stats.Filter(s.store.ListPlayers(), criteria)
	entries := stats.Rank(view, def, topN)
	for i := range entries {
		entries[i].Value = roundValue(entries[i].Value)
	}
	return domain.RankingResponse{Metric: def.Label, Entries: entries}, nil
}

// Scatter returns paired metric values over the filtered view.
func (s *Service) Scatter(criteria domain.FilterCriteria, xLabel, yLabel string) (domain.ScatterResponse, error) {
	x, ok := catalog.Lookup(xLabel)
	if !ok {
		return domain.ScatterResponse{}, fmt.Errorf("%w: %q", catalog.ErrUnknownMetric, xLabel)
	}
	y, ok := catalog.Lookup(yLabel)
	if !ok {
		return domain.ScatterResponse{}, fmt.Errorf("%w: %q", catalog.ErrUnknownMetric, yLabel)
	}

	view := stats.Filter(s.store.ListPlayers(), criteria)
	points := stats.ScatterPairs(view, x, y)
	for i := range points {
		points[i].X = roundValue(points[i].X)
		points[i].Y = roundValue(points[i].Y)
	}
	return domain.ScatterResponse{MetricX: x.Label, MetricY: y.Label, Points: points}, nil
}

// Compare returns side-by-side profiles for two players in the filtered
// view. A stats.PlayerNotFoundError reports the first missing name.
func (s *Service) Compare(criteria domain.FilterCriteria, nameA, nameB string) (domain.Comparison, error) {
	view := stats.Filter(s.store.ListPlayers(), criteria)
	cmp, err := stats.Compare(view, nameA, nameB)
	if err != nil {
		return domain.Comparison{}, err
	}
	cmp.A = stats.RoundProfile(cmp.A, displayDecimals)
	cmp.B = stats.RoundProfile(cmp.B, displayDecimals)
	return cmp, nil
}

// Positions returns the distinct primary positions in display order.
func (s *Service) Positions() []string {
	return stats.Positions(s.store.ListPlayers())
}

// Summary reports header-level facts about the dataset.
func (s *Service) Summary() domain.DatasetSummary {
	return stats.Summary(s.store.ListPlayers())
}

// Count reports the number of loaded records.
func (s *Service) Count() int {
	return s.store.Count()
}

// LoadedAt reports when the dataset was loaded.
func (s *Service) LoadedAt() time.Time {
	return s.store.LoadedAt()
}

func roundValue(v float64) float64 {
	return mathutil.Round(v, displayDecimals)
}
