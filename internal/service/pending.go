package service

import (
	"context"

	"moviebot/internal/repository"

	"go.uber.org/zap"
)

// PendingService tracks where search results should go for indirect replies
type PendingService struct {
	repo   repository.PendingRepository
	logger *zap.Logger
}

// NewPendingService creates a new pending service
func NewPendingService(repo repository.PendingRepository, logger *zap.Logger) *PendingService {
	return &PendingService{
		repo:   repo,
		logger: logger,
	}
}

// Begin records the chat where the user's next search results belong
func (s *PendingService) Begin(ctx context.Context, userID, chatID int64) error {
	return s.repo.Record(ctx, userID, chatID)
}

// Resolve consumes the pending destination, falling back to the message's own chat.
// A storage failure is logged and treated as no pending search.
func (s *PendingService) Resolve(ctx context.Context, userID, ownChatID int64) int64 {
	chatID, ok, err := s.repo.Take(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to take pending search",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return ownChatID
	}
	if !ok {
		return ownChatID
	}
	return chatID
}
