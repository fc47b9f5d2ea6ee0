package handler

import (
	"moviebot/internal/domain"
	"moviebot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Sender delivers messages to an arbitrary chat. *tele.Bot satisfies it.
type Sender interface {
	Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error)
}

// Options toggles optional dispatcher capabilities
type Options struct {
	// GroupMode enables /find and the begin-search button flow
	GroupMode bool
}

// Handler manages all bot interactions
type Handler struct {
	bot            *tele.Bot
	sender         Sender
	searchService  *service.SearchService
	cardService    *service.CardService
	watchedService *service.WatchedService
	pendingService *service.PendingService
	opts           Options
	logger         *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	searchService *service.SearchService,
	cardService *service.CardService,
	watchedService *service.WatchedService,
	pendingService *service.PendingService,
	opts Options,
	logger *zap.Logger,
) *Handler {
	h := &Handler{
		bot:            bot,
		searchService:  searchService,
		cardService:    cardService,
		watchedService: watchedService,
		pendingService: pendingService,
		opts:           opts,
		logger:         logger,
	}
	if bot != nil {
		h.sender = bot
	}
	return h
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	if h.opts.GroupMode {
		h.bot.Handle("/find", h.handleFind)
	}

	// Text messages
	h.bot.Handle(tele.OnText, h.handleText)

	// All inline buttons are decoded in one place
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// User-facing texts
const (
	msgStart        = "🎬 Введи название фильма, который хочешь найти"
	msgFind         = "Нажми кнопку, чтобы найти фильм"
	msgAskTitle     = "%s, напиши название фильма ответом на это сообщение"
	msgNothingFound = "❌ Ничего не найдено."
	msgChooseMovie  = "🔍 Выбери фильм:"
	msgLoadFailed   = "Не удалось загрузить фильм. Попробуйте позже."
	msgError        = "Произошла ошибка. Попробуйте позже."
)

var btnBeginSearch = tele.Btn{
	Unique: domain.UniqueBeginSearch,
	Text:   "🔍 Найти фильм",
}

// findMarkup returns the keyboard with the begin-search button
func findMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnBeginSearch))
	return markup
}

// selectionMarkup returns one button per movie
func selectionMarkup(movies []domain.MovieSummary) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	rows := make([]tele.Row, 0, len(movies))
	for _, m := range movies {
		rows = append(rows, markup.Row(markup.Data(m.Label(), domain.UniqueSelectMovie, string(m.ID))))
	}
	markup.Inline(rows...)
	return markup
}

// cardMarkup returns the single watched toggle button of a card
func cardMarkup(card domain.Card) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	btn := markup.Data(service.ToggleLabel(card.Watched), domain.UniqueToggleWatched, string(card.MovieID))
	markup.Inline(markup.Row(btn))
	return markup
}
