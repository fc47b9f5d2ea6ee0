package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// MovieID is an opaque movie identifier used in callback payloads and watched sets
type MovieID string

// ParseMovieID converts a numeric upstream id to MovieID
func ParseMovieID(id int) MovieID {
	return MovieID(strconv.Itoa(id))
}

// MovieSummary is a search result entry
type MovieSummary struct {
	ID          MovieID
	Title       string
	ReleaseDate string
	PosterPath  string
}

// Year returns the 4-digit release year or empty string
func (m MovieSummary) Year() string {
	return releaseYear(m.ReleaseDate)
}

// Label returns button text for the selection menu
func (m MovieSummary) Label() string {
	return fmt.Sprintf("%s (%s)", m.Title, m.Year())
}

// Genre is a named movie genre
type Genre struct {
	Name string
}

// MovieDetail holds everything needed to render a card
type MovieDetail struct {
	ID          MovieID
	Title       string
	ReleaseDate string
	Rating      *float64
	Genres      []Genre
	Runtime     *int // minutes, 0 means unknown
	Overview    string
	PosterPath  string
}

// Year returns the 4-digit release year or empty string
func (m MovieDetail) Year() string {
	return releaseYear(m.ReleaseDate)
}

// TopGenres returns names of the first n genres
func (m MovieDetail) TopGenres(n int) []string {
	names := make([]string, 0, n)
	for _, g := range m.Genres {
		if len(names) == n {
			break
		}
		names = append(names, g.Name)
	}
	return names
}

// RuntimeMinutes returns runtime with absent treated as zero
func (m MovieDetail) RuntimeMinutes() int {
	if m.Runtime == nil || *m.Runtime < 0 {
		return 0
	}
	return *m.Runtime
}

func releaseYear(date string) string {
	date = strings.TrimSpace(date)
	if len(date) < 4 {
		return ""
	}
	return date[:4]
}
