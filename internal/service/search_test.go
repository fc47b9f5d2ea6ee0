package service

import (
	"context"
	"fmt"
	"testing"

	"moviebot/internal/domain"
	"moviebot/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSearchService_Search(t *testing.T) {
	tests := []struct {
		name          string
		query         string
		mockReturn    []domain.MovieSummary
		mockError     error
		expectedLen   int
		expectedError bool
	}{
		{
			name:        "fewer than limit",
			query:       "матрица",
			mockReturn:  testutil.NewTestSummaries(3),
			expectedLen: 3,
		},
		{
			name:        "more than limit",
			query:       "фильм",
			mockReturn:  testutil.NewTestSummaries(20),
			expectedLen: MaxResults,
		},
		{
			name:        "no results",
			query:       "zzzz",
			mockReturn:  []domain.MovieSummary{},
			expectedLen: 0,
		},
		{
			name:          "upstream error",
			query:         "матрица",
			mockError:     fmt.Errorf("timeout"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockLookup := new(testutil.MockMovieLookup)
			mockLookup.On("SearchByTitle", mock.Anything, tt.query, "ru").Return(tt.mockReturn, tt.mockError)

			service := NewSearchService(mockLookup, "ru")

			movies, err := service.Search(context.Background(), tt.query)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, movies, tt.expectedLen)
			}

			mockLookup.AssertExpectations(t)
		})
	}
}

func TestSearchService_Search_PreservesOrder(t *testing.T) {
	upstream := testutil.NewTestSummaries(7)

	mockLookup := new(testutil.MockMovieLookup)
	mockLookup.On("SearchByTitle", mock.Anything, "фильм", "ru").Return(upstream, nil)

	service := NewSearchService(mockLookup, "ru")

	movies, err := service.Search(context.Background(), "фильм")
	assert.NoError(t, err)
	assert.Equal(t, upstream[:MaxResults], movies)
}

func TestSearchService_Search_BlankQuery(t *testing.T) {
	mockLookup := new(testutil.MockMovieLookup)
	service := NewSearchService(mockLookup, "ru")

	movies, err := service.Search(context.Background(), "   ")

	assert.NoError(t, err)
	assert.Empty(t, movies)
	mockLookup.AssertNotCalled(t, "SearchByTitle", mock.Anything, mock.Anything, mock.Anything)
}

func TestSearchService_GetMovie(t *testing.T) {
	movie := testutil.NewTestMovie("27205", "Начало")

	mockLookup := new(testutil.MockMovieLookup)
	mockLookup.On("GetByID", mock.Anything, domain.MovieID("27205"), "ru").Return(movie, nil)

	service := NewSearchService(mockLookup, "ru")

	result, err := service.GetMovie(context.Background(), "27205")
	assert.NoError(t, err)
	assert.Equal(t, movie, result)
	mockLookup.AssertExpectations(t)
}
