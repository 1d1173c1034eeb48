package squads

import (
	"fmt"

	"pitchview/internal/catalog"
	"pitchview/internal/domain"
	"pitchview/internal/stats"
)

const displayDecimals = 2

// Store defines the dataset access squad queries need.
type Store interface {
	ListPlayers() []domain.Player
}

// Service answers squad-centric queries. Overviews always run over the full
// dataset: opponent analysis ignores whatever filters drive the player views.
type Service struct {
	store       Store
	defaultSort string
}

// NewService constructs a Service. defaultSort is the metric used when an
// overview request names none; an empty value falls back to the catalog
// default.
func NewService(store Store, defaultSort string) *Service {
	if defaultSort == "" {
		defaultSort = catalog.DefaultSquadSort
	}
	return &Service{store: store, defaultSort: defaultSort}
}

// Squads lists squad names in ascending order, excluding transfer aggregate
// rows and unresolved squads.
func (s *Service) Squads() domain.SquadsResponse {
	return domain.SquadsResponse{Squads: stats.Squads(s.store.ListPlayers())}
}

// DefaultSort returns the metric label overviews sort by when none is given.
func (s *Service) DefaultSort() string {
	return s.defaultSort
}

// Overview returns one squad's players sorted by the requested metric,
// descending, with undefined values last. An unknown squad yields an empty
// player list, not an error.
func (s *Service) Overview(squad, metricLabel string) (domain.SquadOverviewResponse, error) {
	if metricLabel == "" {
		metricLabel = s.defaultSort
	}
	def, ok := catalog.Lookup(metricLabel)
	if !ok {
		return domain.SquadOverviewResponse{}, fmt.Errorf("%w: %q", catalog.ErrUnknownMetric, metricLabel)
	}

	profiles := stats.SquadOverview(s.store.ListPlayers(), squad, def)
	for i := range profiles {
		profiles[i] = stats.RoundProfile(profiles[i], displayDecimals)
	}
	return domain.SquadOverviewResponse{Squad: squad, Metric: def.Label, Players: profiles}, nil
}
