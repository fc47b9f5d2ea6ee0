package domain

import (
	"errors"
	"strings"
	"unicode"
)

// ErrUnknownCallback is returned for payloads that match no known shape
var ErrUnknownCallback = errors.New("unknown callback payload")

// CallbackKind enumerates the button actions the bot understands
type CallbackKind int

const (
	CallbackBeginSearch CallbackKind = iota + 1
	CallbackSelectMovie
	CallbackToggleWatched
)

// Unique button identifiers, see tele.ReplyMarkup.Data
const (
	UniqueBeginSearch   = "begin_search"
	UniqueSelectMovie   = "movie"
	UniqueToggleWatched = "watch"
)

// Payload format produced by the first version of the bot
const legacyTogglePrefix = "watch_toggle_"

// Callback is a decoded button payload
type Callback struct {
	Kind    CallbackKind
	MovieID MovieID // empty for CallbackBeginSearch
}

// ParseCallback decodes raw callback data into a Callback.
//
// Accepted shapes:
//
//	\f<unique>|<data>     telebot tagged buttons
//	watch_toggle_<id>     legacy toggle
//	<digits>              legacy bare movie id
//	begin_search          bare begin-search tag
func ParseCallback(raw string) (Callback, error) {
	data := CleanCallbackData(raw)
	if data == "" {
		return Callback{}, ErrUnknownCallback
	}

	if unique, payload, tagged := strings.Cut(data, "|"); tagged {
		return parseTagged(unique, payload)
	}

	switch {
	case data == UniqueBeginSearch:
		return Callback{Kind: CallbackBeginSearch}, nil
	case strings.HasPrefix(data, legacyTogglePrefix):
		id := strings.TrimPrefix(data, legacyTogglePrefix)
		if !isDigits(id) {
			return Callback{}, ErrUnknownCallback
		}
		return Callback{Kind: CallbackToggleWatched, MovieID: MovieID(id)}, nil
	case isDigits(data):
		return Callback{Kind: CallbackSelectMovie, MovieID: MovieID(data)}, nil
	}

	return Callback{}, ErrUnknownCallback
}

func parseTagged(unique, payload string) (Callback, error) {
	switch unique {
	case UniqueBeginSearch:
		return Callback{Kind: CallbackBeginSearch}, nil
	case UniqueSelectMovie:
		if payload == "" {
			return Callback{}, ErrUnknownCallback
		}
		return Callback{Kind: CallbackSelectMovie, MovieID: MovieID(payload)}, nil
	case UniqueToggleWatched:
		if payload == "" {
			return Callback{}, ErrUnknownCallback
		}
		return Callback{Kind: CallbackToggleWatched, MovieID: MovieID(payload)}, nil
	}
	return Callback{}, ErrUnknownCallback
}

// CleanCallbackData removes all non-printable characters from callback data
func CleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
