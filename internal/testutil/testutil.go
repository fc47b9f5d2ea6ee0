package testutil

import (
	"fmt"

	"moviebot/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestSummaries creates n search results with ids 1..n
func NewTestSummaries(n int) []domain.MovieSummary {
	movies := make([]domain.MovieSummary, 0, n)
	for i := 1; i <= n; i++ {
		movies = append(movies, domain.MovieSummary{
			ID:          domain.ParseMovieID(i),
			Title:       fmt.Sprintf("Фильм %d", i),
			ReleaseDate: fmt.Sprintf("%d-01-01", 2000+i),
		})
	}
	return movies
}

// NewTestMovie creates a fully populated movie
func NewTestMovie(id domain.MovieID, title string) *domain.MovieDetail {
	rating := 7.2
	runtime := 125
	return &domain.MovieDetail{
		ID:          id,
		Title:       title,
		ReleaseDate: "2010-07-16",
		Rating:      &rating,
		Genres:      []domain.Genre{{Name: "боевик"}, {Name: "фантастика"}, {Name: "триллер"}},
		Runtime:     &runtime,
		Overview:    "Сон внутри сна.",
		PosterPath:  "/poster.jpg",
	}
}
