package handler

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	h.logger.Info("User started bot",
		zap.Int64("user_id", c.Sender().ID),
		zap.String("username", c.Sender().Username),
	)
	return c.Send(msgStart)
}

// handleFind handles /find command in group mode
func (h *Handler) handleFind(c tele.Context) error {
	return c.Send(msgFind, findMarkup())
}
