package stats

import (
	"fmt"

	"pitchview/internal/domain"
)

// PlayerNotFoundError reports a comparison request naming a player absent
// from the current view.
type PlayerNotFoundError struct {
	Name string
}

func (e *PlayerNotFoundError) Error() string {
	return fmt.Sprintf("player %q not found", e.Name)
}

// Compare returns side-by-side profiles for two named players. Both players
// must be present in the given view; the first missing name is reported.
func Compare(players []domain.Player, nameA, nameB string) (domain.Comparison, error) {
	a, ok := findPlayer(players, nameA)
	if !ok {
		return domain.Comparison{}, &PlayerNotFoundError{Name: nameA}
	}
	b, ok := findPlayer(players, nameB)
	if !ok {
		return domain.Comparison{}, &PlayerNotFoundError{Name: nameB}
	}
	return domain.Comparison{A: ProfileFor(a), B: ProfileFor(b)}, nil
}

func findPlayer(players []domain.Player, name string) (domain.Player, bool) {
	for _, p := range players {
		if p.Name == name {
			return p, true
		}
	}
	return domain.Player{}, false
}
