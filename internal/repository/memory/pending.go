package memory

import (
	"context"
	"sync"
)

// PendingRepo implements repository.PendingRepository in process memory
type PendingRepo struct {
	mu      sync.Mutex
	pending map[int64]int64
}

// NewPendingRepo creates an empty pending registry
func NewPendingRepo() *PendingRepo {
	return &PendingRepo{
		pending: make(map[int64]int64),
	}
}

// Record stores destination chat for the user, replacing any previous one
func (r *PendingRepo) Record(_ context.Context, userID int64, chatID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pending[userID] = chatID
	return nil
}

// Take returns and clears the user's pending destination
func (r *PendingRepo) Take(_ context.Context, userID int64) (int64, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	chatID, exists := r.pending[userID]
	if exists {
		delete(r.pending, userID)
	}
	return chatID, exists, nil
}
