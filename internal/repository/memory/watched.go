package memory

import (
	"context"
	"sync"

	"moviebot/internal/domain"
)

// WatchedRepo implements repository.WatchedRepository in process memory.
// Contents are lost on restart.
type WatchedRepo struct {
	mu    sync.RWMutex
	users map[int64]map[domain.MovieID]struct{}
}

// NewWatchedRepo creates an empty watched store
func NewWatchedRepo() *WatchedRepo {
	return &WatchedRepo{
		users: make(map[int64]map[domain.MovieID]struct{}),
	}
}

// Mark adds movie to the user's set
func (r *WatchedRepo) Mark(_ context.Context, userID int64, movieID domain.MovieID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, exists := r.users[userID]
	if !exists {
		set = make(map[domain.MovieID]struct{})
		r.users[userID] = set
	}
	set[movieID] = struct{}{}
	return nil
}

// Unmark removes movie from the user's set
func (r *WatchedRepo) Unmark(_ context.Context, userID int64, movieID domain.MovieID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if set, exists := r.users[userID]; exists {
		delete(set, movieID)
	}
	return nil
}

// IsMarked checks membership
func (r *WatchedRepo) IsMarked(_ context.Context, userID int64, movieID domain.MovieID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, marked := r.users[userID][movieID]
	return marked, nil
}
