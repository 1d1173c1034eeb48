package testutil

import (
	"context"
	"errors"

	"pitchview/internal/domain"
)

// GoodSource implements dataset.Source and returns a fixed dataset.
type GoodSource struct {
	Players   []domain.Player
	NameVal   string
	LoadCalls int
}

func (s *GoodSource) Load(ctx context.Context) ([]domain.Player, error) {
	_ = ctx
	s.LoadCalls++
	return s.Players, nil
}

func (s *GoodSource) Name() string {
	if s.NameVal == "" {
		return "test"
	}
	return s.NameVal
}

// ErrSource fails every load with the configured error.
type ErrSource struct {
	Err       error
	LoadCalls int
}

func (s *ErrSource) Load(ctx context.Context) ([]domain.Player, error) {
	_ = ctx
	s.LoadCalls++
	if s.Err != nil {
		return nil, s.Err
	}
	return nil, errors.New("load failure")
}

func (s *ErrSource) Name() string { return "err" }

// EmptySource loads successfully but yields no rows.
type EmptySource struct{}

func (s *EmptySource) Load(ctx context.Context) ([]domain.Player, error) {
	_ = ctx
	return []domain.Player{}, nil
}

func (s *EmptySource) Name() string { return "empty" }

// FlakySource fails the first FailFirst loads, then succeeds with Players.
type FlakySource struct {
	Players   []domain.Player
	FailFirst int
	LoadCalls int
}

func (s *FlakySource) Load(ctx context.Context) ([]domain.Player, error) {
	_ = ctx
	s.LoadCalls++
	if s.LoadCalls <= s.FailFirst {
		return nil, errors.New("transient failure")
	}
	return s.Players, nil
}

func (s *FlakySource) Name() string { return "flaky" }
