package handler

import (
	"context"
	"strings"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleText runs a movie search for every non-command text message
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	ctx := context.Background()

	// Pending destination is consumed whatever the search outcome
	chatID := h.pendingService.Resolve(ctx, userID, c.Chat().ID)
	to := tele.ChatID(chatID)

	movies, err := h.searchService.Search(ctx, text)
	if err != nil {
		h.logger.Error("Failed to search movies",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.String("query", text),
		)
		_, err = h.sender.Send(to, msgError)
		return err
	}

	h.logger.Info("Search completed",
		zap.Int64("user_id", userID),
		zap.Int64("chat_id", chatID),
		zap.String("query", text),
		zap.Int("results", len(movies)),
	)

	if len(movies) == 0 {
		_, err = h.sender.Send(to, msgNothingFound)
		return err
	}

	_, err = h.sender.Send(to, msgChooseMovie, selectionMarkup(movies))
	return err
}
