package store

import (
	"sync"
	"time"

	"pitchview/internal/domain"
)

// MemoryStore keeps a thread-safe snapshot of the season dataset in memory.
// The snapshot is written once at startup and read concurrently afterwards;
// records keep the name order the loader established.
type MemoryStore struct {
	mu       sync.RWMutex
	players  []domain.Player
	byName   map[string]int
	loadedAt time.Time
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byName: make(map[string]int),
	}
}

// ListPlayers returns a copy of the current players slice.
func (s *MemoryStore) ListPlayers() []domain.Player {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Player, len(s.players))
	copy(result, s.players)
	return result
}

// GetPlayer retrieves a player by exact name. When two squads carry the same
// name, the first record in dataset order wins.
func (s *MemoryStore) GetPlayer(name string) (domain.Player, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.byName[name]
	if !ok {
		return domain.Player{}, false
	}
	return s.players[i], true
}

// SetPlayers replaces the existing dataset with a new snapshot.
func (s *MemoryStore) SetPlayers(players []domain.Player) {
	next := make([]domain.Player, len(players))
	copy(next, players)

	byName := make(map[string]int, len(next))
	for i, p := range next {
		if _, exists := byName[p.Name]; !exists {
			byName[p.Name] = i
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.players = next
	s.byName = byName
	s.loadedAt = time.Now()
}

// Count reports the number of stored records.
func (s *MemoryStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.players)
}

// LoadedAt reports when the dataset was last replaced. The zero time means no
// dataset has been stored yet.
func (s *MemoryStore) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}
