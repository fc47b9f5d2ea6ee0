package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCallback(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Callback
		wantErr  bool
	}{
		{
			name:     "tagged select",
			input:    "\fmovie|603",
			expected: Callback{Kind: CallbackSelectMovie, MovieID: "603"},
		},
		{
			name:     "tagged toggle",
			input:    "\fwatch|603",
			expected: Callback{Kind: CallbackToggleWatched, MovieID: "603"},
		},
		{
			name:     "tagged begin search",
			input:    "\fbegin_search",
			expected: Callback{Kind: CallbackBeginSearch},
		},
		{
			name:     "tagged begin search with empty data",
			input:    "\fbegin_search|",
			expected: Callback{Kind: CallbackBeginSearch},
		},
		{
			name:     "legacy toggle",
			input:    "watch_toggle_603",
			expected: Callback{Kind: CallbackToggleWatched, MovieID: "603"},
		},
		{
			name:     "legacy bare id",
			input:    "603",
			expected: Callback{Kind: CallbackSelectMovie, MovieID: "603"},
		},
		{
			name:     "bare begin search",
			input:    "begin_search",
			expected: Callback{Kind: CallbackBeginSearch},
		},
		{
			name:     "whitespace around payload",
			input:    "  \fwatch|42\n",
			expected: Callback{Kind: CallbackToggleWatched, MovieID: "42"},
		},
		{
			name:    "tagged select without id",
			input:   "\fmovie|",
			wantErr: true,
		},
		{
			name:    "tagged toggle without id",
			input:   "\fwatch",
			wantErr: true,
		},
		{
			name:    "unknown unique",
			input:   "\fpage|2",
			wantErr: true,
		},
		{
			name:    "legacy toggle without id",
			input:   "watch_toggle_",
			wantErr: true,
		},
		{
			name:    "legacy toggle with garbage id",
			input:   "watch_toggle_abc",
			wantErr: true,
		},
		{
			name:    "garbage",
			input:   "hello",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseCallback(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownCallback)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestParseCallback_PrefixDistinguishesSameID(t *testing.T) {
	toggle, err := ParseCallback("watch_toggle_550")
	assert.NoError(t, err)

	selectCb, err := ParseCallback("550")
	assert.NoError(t, err)

	assert.Equal(t, toggle.MovieID, selectCb.MovieID)
	assert.Equal(t, CallbackToggleWatched, toggle.Kind)
	assert.Equal(t, CallbackSelectMovie, selectCb.Kind)
}

func TestCleanCallbackData(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "normal string",
			input:    "test_data",
			expected: "test_data",
		},
		{
			name:     "string with whitespace",
			input:    "  test_data  ",
			expected: "test_data",
		},
		{
			name:     "telebot unique marker",
			input:    "\fmovie|1",
			expected: "movie|1",
		},
		{
			name:     "string with unprintable characters",
			input:    "test\x00data\x01",
			expected: "testdata",
		},
		{
			name:     "only whitespace",
			input:    "   ",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanCallbackData(tt.input))
		})
	}
}
