package service

import (
	"context"

	"moviebot/internal/domain"
)

// MovieLookup is the movie database collaborator
type MovieLookup interface {
	SearchByTitle(ctx context.Context, query, language string) ([]domain.MovieSummary, error)
	GetByID(ctx context.Context, id domain.MovieID, language string) (*domain.MovieDetail, error)
}

// StreamingSearcher is the best-effort streaming search collaborator
type StreamingSearcher interface {
	SearchTitle(ctx context.Context, title string) ([]domain.StreamingResult, error)
}
