package service

import (
	"context"
	"fmt"
	"html"
	"net/url"
	"strconv"
	"strings"

	"moviebot/internal/domain"

	"go.uber.org/zap"
)

const (
	posterBaseURL  = "https://image.tmdb.org/t/p/w500"
	noOverview     = "Описание недоступно."
	ratingMissing  = "–"
	maxOverviewLen = 700
	topGenres      = 2
)

// Toggle button labels
const (
	LabelWatched     = "✅ Просмотрено"
	LabelMarkWatched = "🎬 Отметить как просмотренный"
)

// StreamingConfig describes the service used for "watch on" links
type StreamingConfig struct {
	Name      string
	SearchURL string // escaped title is appended
}

// CardService renders movie cards
type CardService struct {
	streaming StreamingSearcher // nil disables live lookups
	cfg       StreamingConfig
	logger    *zap.Logger
}

// NewCardService creates a new card service. streaming may be nil.
func NewCardService(streaming StreamingSearcher, cfg StreamingConfig, logger *zap.Logger) *CardService {
	return &CardService{
		streaming: streaming,
		cfg:       cfg,
		logger:    logger,
	}
}

// Render builds the card for a movie. It never fails: enrichment problems
// degrade to a locally built search link.
func (s *CardService) Render(ctx context.Context, movie *domain.MovieDetail, watched bool) domain.Card {
	link := s.FindLink(ctx, movie.Title)

	var b strings.Builder
	fmt.Fprintf(&b, "<b>%s</b> (%s)\n", html.EscapeString(movie.Title), movie.Year())
	fmt.Fprintf(&b, "⭐ Рейтинг: %s\n", FormatRating(movie.Rating))
	fmt.Fprintf(&b, "🎭 Жанр: %s\n", html.EscapeString(strings.Join(movie.TopGenres(topGenres), ", ")))
	fmt.Fprintf(&b, "⏱ Длительность: %s\n\n", FormatRuntime(movie.RuntimeMinutes()))
	fmt.Fprintf(&b, "<tg-spoiler>%s</tg-spoiler>", html.EscapeString(overview(movie.Overview)))
	if link.URL != "" {
		fmt.Fprintf(&b, "\n\n<a href=\"%s\">▶️ Смотреть на %s</a>",
			html.EscapeString(link.URL), html.EscapeString(link.Service))
	}

	card := domain.Card{
		MovieID: movie.ID,
		Caption: b.String(),
		Watched: watched,
		Link:    link,
	}
	if movie.PosterPath != "" {
		card.PhotoURL = posterBaseURL + movie.PosterPath
	}
	return card
}

// FindLink asks the streaming searcher for the title and falls back to a
// constructed search URL on any failure, including a panic in the searcher.
func (s *CardService) FindLink(ctx context.Context, title string) (link domain.WatchLink) {
	fallback := s.FallbackLink(title)
	if s.streaming == nil {
		return fallback
	}

	defer func() {
		if r := recover(); r != nil {
			s.logger.Warn("Streaming search panicked", zap.Any("panic", r), zap.String("title", title))
			link = fallback
		}
	}()

	results, err := s.streaming.SearchTitle(ctx, title)
	if err != nil {
		s.logger.Debug("Streaming search failed", zap.Error(err), zap.String("title", title))
		return fallback
	}
	if len(results) == 0 || strings.TrimSpace(results[0].URL) == "" {
		return fallback
	}

	return domain.WatchLink{Service: s.cfg.Name, URL: results[0].URL}
}

// FallbackLink builds a search URL for the title without network calls
func (s *CardService) FallbackLink(title string) domain.WatchLink {
	if s.cfg.SearchURL == "" {
		return domain.WatchLink{Service: s.cfg.Name, Fallback: true}
	}
	return domain.WatchLink{
		Service:  s.cfg.Name,
		URL:      s.cfg.SearchURL + url.QueryEscape(title),
		Fallback: true,
	}
}

// ToggleLabel returns the button text for the watched state
func ToggleLabel(watched bool) string {
	if watched {
		return LabelWatched
	}
	return LabelMarkWatched
}

// FormatRating formats rating with one decimal, dash when absent
func FormatRating(rating *float64) string {
	if rating == nil {
		return ratingMissing
	}
	return strconv.FormatFloat(*rating, 'f', 1, 64)
}

// FormatRuntime formats minutes as "2ч 5мин" or "45мин"
func FormatRuntime(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	hours, mins := minutes/60, minutes%60
	if hours > 0 {
		return fmt.Sprintf("%dч %dмин", hours, mins)
	}
	return fmt.Sprintf("%dмин", mins)
}

func overview(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return noOverview
	}
	runes := []rune(text)
	if len(runes) > maxOverviewLen {
		return strings.TrimSpace(string(runes[:maxOverviewLen])) + "…"
	}
	return text
}
