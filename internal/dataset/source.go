package dataset

import (
	"context"

	"pitchview/internal/domain"
)

// Source supplies the season dataset. Implementations perform the one-time
// load at process start; the loaded records are never written again.
type Source interface {
	Load(ctx context.Context) ([]domain.Player, error)
	Name() string
}
