package handler

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"

	"moviebot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

var errCardKindChanged = errors.New("card media kind differs from message")

// callbackPayload restores the raw payload when telebot already split off the unique part
func callbackPayload(cb *tele.Callback) string {
	if cb.Unique == "" {
		return cb.Data
	}
	if cb.Data == "" {
		return "\f" + cb.Unique
	}
	return "\f" + cb.Unique + "|" + cb.Data
}

// handleCallback handles ALL callback queries
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	// Acknowledge before any lookup so the client stops its spinner
	if err := c.Respond(); err != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
	}

	payload := callbackPayload(callback)
	parsed, err := domain.ParseCallback(payload)
	if err != nil {
		h.logger.Warn("Unhandled callback",
			zap.String("data", callback.Data),
			zap.String("unique", callback.Unique),
			zap.Int64("user_id", c.Sender().ID),
		)
		return nil
	}

	h.logger.Info("handleCallback: Processing callback",
		zap.String("data", payload),
		zap.String("id", callback.ID),
		zap.Int64("user_id", c.Sender().ID),
		zap.String("movie_id", string(parsed.MovieID)),
	)

	switch parsed.Kind {
	case domain.CallbackBeginSearch:
		return h.handleBeginSearch(c)
	case domain.CallbackSelectMovie:
		return h.handleSelectMovie(c, parsed.MovieID)
	case domain.CallbackToggleWatched:
		return h.handleToggleWatched(c, parsed.MovieID)
	}
	return nil
}

// handleBeginSearch remembers where to deliver results and asks for a title
func (h *Handler) handleBeginSearch(c tele.Context) error {
	userID := c.Sender().ID

	if !h.opts.GroupMode {
		h.logger.Warn("Begin-search button pressed with group mode disabled", zap.Int64("user_id", userID))
		return nil
	}

	chat := c.Chat()
	if chat == nil {
		h.logger.Warn("Begin-search button without chat", zap.Int64("user_id", userID))
		return nil
	}

	if err := h.pendingService.Begin(context.Background(), userID, chat.ID); err != nil {
		h.logger.Error("Failed to record pending search",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return c.Send(msgError)
	}

	prompt := fmt.Sprintf(msgAskTitle, mention(c.Sender()))
	forceReply := &tele.ReplyMarkup{ForceReply: true, Selective: true}
	return c.Send(prompt, forceReply, tele.ModeHTML)
}

// handleSelectMovie sends the card of a search result
func (h *Handler) handleSelectMovie(c tele.Context, movieID domain.MovieID) error {
	ctx := context.Background()
	userID := c.Sender().ID

	movie, err := h.searchService.GetMovie(ctx, movieID)
	if err != nil {
		h.logger.Error("Failed to get movie",
			zap.Error(err),
			zap.String("movie_id", string(movieID)),
		)
		return c.Send(msgLoadFailed)
	}

	watched, err := h.watchedService.IsWatched(ctx, userID, movieID)
	if err != nil {
		h.logger.Warn("Failed to read watched state",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
	}

	card := h.cardService.Render(ctx, movie, watched)
	return h.sendCard(c, card)
}

// handleToggleWatched flips the watched flag and refreshes the card
func (h *Handler) handleToggleWatched(c tele.Context, movieID domain.MovieID) error {
	ctx := context.Background()
	userID := c.Sender().ID

	watched, err := h.watchedService.Toggle(ctx, userID, movieID)
	if err != nil {
		h.logger.Error("Failed to toggle watched",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.String("movie_id", string(movieID)),
		)
		return c.Send(msgError)
	}

	h.logger.Info("Watched toggled",
		zap.Int64("user_id", userID),
		zap.String("movie_id", string(movieID)),
		zap.Bool("watched", watched),
	)

	movie, err := h.searchService.GetMovie(ctx, movieID)
	if err != nil {
		h.logger.Error("Failed to get movie",
			zap.Error(err),
			zap.String("movie_id", string(movieID)),
		)
		return c.Send(msgLoadFailed)
	}

	card := h.cardService.Render(ctx, movie, watched)

	if err := h.editCard(c, card); err != nil {
		if h.handleEditError(err, c.Sender().ID) {
			return nil
		}
		return h.sendCard(c, card)
	}
	return nil
}

// editCard rewrites the card the button belongs to
func (h *Handler) editCard(c tele.Context, card domain.Card) error {
	msg := c.Message()
	if msg == nil {
		return errCardKindChanged
	}

	markup := cardMarkup(card)
	hasPhoto := msg.Photo != nil

	switch {
	case hasPhoto && card.HasPhoto():
		return c.EditCaption(card.Caption, markup, tele.ModeHTML)
	case !hasPhoto && !card.HasPhoto():
		return c.Edit(card.Caption, markup, tele.ModeHTML)
	}
	return errCardKindChanged
}

// handleEditError reports whether the failed edit can be ignored.
// "message is not modified" means another callback already produced the same card.
func (h *Handler) handleEditError(err error, userID int64) bool {
	if strings.Contains(err.Error(), "message is not modified") {
		h.logger.Debug("Message already modified by another callback",
			zap.Int64("user_id", userID),
		)
		return true
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", userID),
	)
	return false
}

// sendCard replies to the originating message with a card.
// A rejected poster falls back to the text card.
func (h *Handler) sendCard(c tele.Context, card domain.Card) error {
	markup := cardMarkup(card)

	send := c.Send
	if c.Message() != nil {
		send = c.Reply
	}

	if card.HasPhoto() {
		photo := &tele.Photo{File: tele.FromURL(card.PhotoURL), Caption: card.Caption}
		err := send(photo, markup, tele.ModeHTML)
		if err == nil {
			return nil
		}
		h.logger.Warn("Failed to send poster, sending text card",
			zap.Error(err),
			zap.String("movie_id", string(card.MovieID)),
			zap.String("photo_url", card.PhotoURL),
		)
	}

	return send(card.Caption, markup, tele.ModeHTML)
}

// mention renders a user reference that makes a selective force reply target them
func mention(user *tele.User) string {
	if user.Username != "" {
		return "@" + html.EscapeString(user.Username)
	}
	name := strings.TrimSpace(user.FirstName + " " + user.LastName)
	if name == "" {
		name = "Пользователь"
	}
	return fmt.Sprintf(`<a href="tg://user?id=%d">%s</a>`, user.ID, html.EscapeString(name))
}
