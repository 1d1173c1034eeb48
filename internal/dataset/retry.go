package dataset

import (
	"context"
	"log/slog"
	"time"

	"pitchview/internal/domain"
	"pitchview/internal/logging"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
)

type backoffFunc func(attempt int) time.Duration

// retryingSource wraps a Source with retry/backoff behavior.
type retryingSource struct {
	inner       Source
	logger      *slog.Logger
	maxAttempts int
	backoffFn   backoffFunc
}

// NewRetryingSource wraps the given source with retries. If maxAttempts/backoff are <= 0, defaults are used.
func NewRetryingSource(inner Source, logger *slog.Logger, maxAttempts int, backoff time.Duration) Source {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	return &retryingSource{
		inner:       inner,
		logger:      logger,
		maxAttempts: maxAttempts,
		backoffFn: func(attempt int) time.Duration {
			return time.Duration(attempt) * backoff
		},
	}
}

func (r *retryingSource) Name() string { return r.inner.Name() }

func (r *retryingSource) Load(ctx context.Context) ([]domain.Player, error) {
	var lastErr error

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		players, err := r.inner.Load(ctx)
		if err == nil {
			return players, nil
		}
		lastErr = err

		// Schema and parse failures are deterministic; retrying cannot help.
		if !retryable(err) {
			return nil, err
		}
		if attempt == r.maxAttempts {
			break
		}

		r.logWarn(ctx, "dataset load retry", "source", r.inner.Name(), "attempt", attempt, "max_attempts", r.maxAttempts, "err", err)

		// backoff with context awareness
		delay := r.backoffFn(attempt)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}

	r.logWarn(ctx, "dataset load failed", "source", r.inner.Name(), "attempts", r.maxAttempts, "err", lastErr)
	return nil, lastErr
}

func retryable(err error) bool {
	if _, ok := AsSchemaError(err); ok {
		return false
	}
	if _, ok := AsParseError(err); ok {
		return false
	}
	return true
}

func (r *retryingSource) logWarn(ctx context.Context, msg string, args ...any) {
	logger := logging.FromContext(ctx, r.logger)
	if logger != nil {
		logger.Warn(msg, args...)
	}
}
