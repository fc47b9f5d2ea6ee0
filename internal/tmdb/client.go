package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"moviebot/internal/domain"

	"go.uber.org/zap"
)

// DefaultBaseURL is the public TMDB v3 API root
const DefaultBaseURL = "https://api.themoviedb.org/3"

// ErrNotFound is returned when TMDB has no movie with the requested id
var ErrNotFound = errors.New("movie not found")

// Client talks to The Movie Database API
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a new TMDB client
func NewClient(baseURL, apiKey string, timeout time.Duration, logger *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

type searchResponse struct {
	Results []movieResult `json:"results"`
}

type movieResult struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	ReleaseDate string   `json:"release_date"`
	PosterPath  *string  `json:"poster_path"`
	VoteAverage *float64 `json:"vote_average"`
	Runtime     *int     `json:"runtime"`
	Overview    *string  `json:"overview"`
	Genres      []struct {
		Name string `json:"name"`
	} `json:"genres"`
}

// SearchByTitle returns movies matching the query in upstream order
func (c *Client) SearchByTitle(ctx context.Context, query, language string) ([]domain.MovieSummary, error) {
	params := url.Values{}
	params.Set("query", query)

	var resp searchResponse
	if err := c.get(ctx, "/search/movie", language, params, &resp); err != nil {
		return nil, fmt.Errorf("failed to search movies: %w", err)
	}

	movies := make([]domain.MovieSummary, 0, len(resp.Results))
	for _, r := range resp.Results {
		movies = append(movies, domain.MovieSummary{
			ID:          domain.ParseMovieID(r.ID),
			Title:       r.Title,
			ReleaseDate: r.ReleaseDate,
			PosterPath:  deref(r.PosterPath),
		})
	}
	return movies, nil
}

// GetByID returns full movie details
func (c *Client) GetByID(ctx context.Context, id domain.MovieID, language string) (*domain.MovieDetail, error) {
	var r movieResult
	if err := c.get(ctx, "/movie/"+url.PathEscape(string(id)), language, url.Values{}, &r); err != nil {
		return nil, fmt.Errorf("failed to get movie %s: %w", id, err)
	}

	detail := &domain.MovieDetail{
		ID:          id,
		Title:       r.Title,
		ReleaseDate: r.ReleaseDate,
		Rating:      r.VoteAverage,
		Runtime:     r.Runtime,
		Overview:    deref(r.Overview),
		PosterPath:  deref(r.PosterPath),
	}
	for _, g := range r.Genres {
		detail.Genres = append(detail.Genres, domain.Genre{Name: g.Name})
	}
	return detail, nil
}

func (c *Client) get(ctx context.Context, path, language string, params url.Values, dest any) error {
	params.Set("api_key", c.apiKey)
	if language != "" {
		params.Set("language", language)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("TMDB returned unexpected status",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
		)
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
