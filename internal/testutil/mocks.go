package testutil

import (
	"context"

	"moviebot/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockWatchedRepository is a mock for WatchedRepository
type MockWatchedRepository struct {
	mock.Mock
}

func (m *MockWatchedRepository) Mark(ctx context.Context, userID int64, movieID domain.MovieID) error {
	args := m.Called(ctx, userID, movieID)
	return args.Error(0)
}

func (m *MockWatchedRepository) Unmark(ctx context.Context, userID int64, movieID domain.MovieID) error {
	args := m.Called(ctx, userID, movieID)
	return args.Error(0)
}

func (m *MockWatchedRepository) IsMarked(ctx context.Context, userID int64, movieID domain.MovieID) (bool, error) {
	args := m.Called(ctx, userID, movieID)
	return args.Bool(0), args.Error(1)
}

// MockPendingRepository is a mock for PendingRepository
type MockPendingRepository struct {
	mock.Mock
}

func (m *MockPendingRepository) Record(ctx context.Context, userID int64, chatID int64) error {
	args := m.Called(ctx, userID, chatID)
	return args.Error(0)
}

func (m *MockPendingRepository) Take(ctx context.Context, userID int64) (int64, bool, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Bool(1), args.Error(2)
}

// MockMovieLookup is a mock for the movie database client
type MockMovieLookup struct {
	mock.Mock
}

func (m *MockMovieLookup) SearchByTitle(ctx context.Context, query, language string) ([]domain.MovieSummary, error) {
	args := m.Called(ctx, query, language)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MovieSummary), args.Error(1)
}

func (m *MockMovieLookup) GetByID(ctx context.Context, id domain.MovieID, language string) (*domain.MovieDetail, error) {
	args := m.Called(ctx, id, language)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MovieDetail), args.Error(1)
}

// MockStreamingSearcher is a mock for the streaming search scraper
type MockStreamingSearcher struct {
	mock.Mock
}

func (m *MockStreamingSearcher) SearchTitle(ctx context.Context, title string) ([]domain.StreamingResult, error) {
	args := m.Called(ctx, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StreamingResult), args.Error(1)
}

// PanickingStreamingSearcher simulates a searcher that blows up
type PanickingStreamingSearcher struct{}

func (PanickingStreamingSearcher) SearchTitle(context.Context, string) ([]domain.StreamingResult, error) {
	panic("scraper exploded")
}
