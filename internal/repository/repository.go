package repository

import (
	"context"

	"moviebot/internal/domain"
)

// WatchedRepository stores per-user sets of watched movies
type WatchedRepository interface {
	Mark(ctx context.Context, userID int64, movieID domain.MovieID) error
	Unmark(ctx context.Context, userID int64, movieID domain.MovieID) error
	IsMarked(ctx context.Context, userID int64, movieID domain.MovieID) (bool, error)
}

// PendingRepository correlates a begin-search tap with the reply that follows it
type PendingRepository interface {
	// Record overwrites any previous destination for the user
	Record(ctx context.Context, userID int64, chatID int64) error
	// Take returns and clears the destination atomically
	Take(ctx context.Context, userID int64) (chatID int64, ok bool, err error)
}
