package service

import (
	"context"
	"strings"

	"moviebot/internal/domain"
)

// MaxResults caps the selection menu size
const MaxResults = 5

// SearchService turns free text into selectable movies
type SearchService struct {
	lookup   MovieLookup
	language string
}

// NewSearchService creates a new search service
func NewSearchService(lookup MovieLookup, language string) *SearchService {
	return &SearchService{
		lookup:   lookup,
		language: language,
	}
}

// Search returns at most MaxResults movies in upstream order
func (s *SearchService) Search(ctx context.Context, query string) ([]domain.MovieSummary, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}

	movies, err := s.lookup.SearchByTitle(ctx, query, s.language)
	if err != nil {
		return nil, err
	}

	if len(movies) > MaxResults {
		movies = movies[:MaxResults]
	}
	return movies, nil
}

// GetMovie returns full details for a movie
func (s *SearchService) GetMovie(ctx context.Context, id domain.MovieID) (*domain.MovieDetail, error) {
	return s.lookup.GetByID(ctx, id, s.language)
}
