package service

import (
	"context"
	"fmt"

	"moviebot/internal/domain"
	"moviebot/internal/repository"
)

// WatchedService manages per-user watched flags
type WatchedService struct {
	repo repository.WatchedRepository
}

// NewWatchedService creates a new watched service
func NewWatchedService(repo repository.WatchedRepository) *WatchedService {
	return &WatchedService{repo: repo}
}

// IsWatched reports whether the user marked the movie
func (s *WatchedService) IsWatched(ctx context.Context, userID int64, movieID domain.MovieID) (bool, error) {
	return s.repo.IsMarked(ctx, userID, movieID)
}

// Toggle flips the watched flag and returns the new state
func (s *WatchedService) Toggle(ctx context.Context, userID int64, movieID domain.MovieID) (bool, error) {
	marked, err := s.repo.IsMarked(ctx, userID, movieID)
	if err != nil {
		return false, fmt.Errorf("failed to read watched state: %w", err)
	}

	if marked {
		if err := s.repo.Unmark(ctx, userID, movieID); err != nil {
			return true, fmt.Errorf("failed to unmark: %w", err)
		}
		return false, nil
	}

	if err := s.repo.Mark(ctx, userID, movieID); err != nil {
		return false, fmt.Errorf("failed to mark: %w", err)
	}
	return true, nil
}
