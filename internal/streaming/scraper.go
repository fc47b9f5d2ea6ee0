package streaming

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"moviebot/internal/domain"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

const userAgent = "Mozilla/5.0 (compatible; moviebot/1.0)"

// Scraper finds titles on a streaming service by parsing its search page
type Scraper struct {
	searchURL  string
	selector   string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewScraper creates a scraper. searchURL must end where the escaped title is appended.
func NewScraper(searchURL, selector string, timeout time.Duration, logger *zap.Logger) *Scraper {
	return &Scraper{
		searchURL:  searchURL,
		selector:   selector,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// SearchTitle returns result links in page order
func (s *Scraper) SearchTitle(ctx context.Context, title string) ([]domain.StreamingResult, error) {
	pageURL := s.searchURL + url.QueryEscape(title)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch search page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search page returned status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse search page: %w", err)
	}

	base := resp.Request.URL
	var results []domain.StreamingResult
	doc.Find(s.selector).Each(func(_ int, sel *goquery.Selection) {
		href, ok := sel.Attr("href")
		if !ok || strings.TrimSpace(href) == "" {
			return
		}
		link, err := base.Parse(strings.TrimSpace(href))
		if err != nil {
			s.logger.Debug("Skipping unparsable result link", zap.String("href", href))
			return
		}
		results = append(results, domain.StreamingResult{
			Title: strings.TrimSpace(sel.Text()),
			URL:   link.String(),
		})
	})

	return results, nil
}
