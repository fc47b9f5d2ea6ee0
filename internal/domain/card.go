package domain

// WatchLink is the outcome of the streaming enrichment step
type WatchLink struct {
	Service  string
	URL      string
	Fallback bool // true when URL was constructed locally instead of found upstream
}

// Card is a rendered movie card ready for delivery
type Card struct {
	MovieID  MovieID
	Caption  string // Telegram HTML
	PhotoURL string // empty for text cards
	Watched  bool
	Link     WatchLink
}

// HasPhoto reports whether the card is sent as an image message
func (c Card) HasPhoto() bool {
	return c.PhotoURL != ""
}

// StreamingResult is a single hit returned by the streaming search
type StreamingResult struct {
	Title string
	URL   string
}
