package testutil

import (
	"pitchview/internal/app/players"
	"pitchview/internal/app/squads"
	"pitchview/internal/domain"
	"pitchview/internal/store"
)

// NewServices builds both query services over a fresh in-memory store seeded
// with the provided players. The store is returned so tests can swap the
// dataset mid-test.
func NewServices(p []domain.Player) (*players.Service, *squads.Service, *store.MemoryStore) {
	ms := store.NewMemoryStore()
	ms.SetPlayers(p)
	return players.NewService(ms), squads.NewService(ms, ""), ms
}
