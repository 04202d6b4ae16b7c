package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/fadedpez/blackjackr/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected Level
	}{
		{"debug", "debug", DEBUG},
		{"upper", "WARN", WARN},
		{"error", "Error", ERROR},
		{"unknown falls back to info", "verbose", INFO},
		{"empty", "", INFO},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ParseLevel(tc.input))
		})
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithOutput(WARN, &buf)

	logger.Debug("dealer draws %d", 1)
	logger.Info("round started")
	assert.Empty(t, buf.String(), "Messages below WARN should be dropped")

	logger.Warn("deck low: %d cards", 3)
	assert.Contains(t, buf.String(), "deck low: 3 cards")
	assert.Contains(t, buf.String(), "level=warning")
}

func TestWithField(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithOutput(INFO, &buf).WithField("table", "abc")

	logger.Info("hit")

	assert.Contains(t, buf.String(), "table=abc")
	assert.Contains(t, buf.String(), "msg=hit")
}

func TestLogError(t *testing.T) {
	t.Run("game error carries code and cause", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLoggerWithOutput(INFO, &buf)

		logger.LogError(types.WrapError(types.ErrEmptyDeck, "cannot draw", errors.New("deck is empty")))

		out := buf.String()
		assert.Contains(t, out, "code=EMPTY_DECK")
		assert.Contains(t, out, "cannot draw")
		assert.Contains(t, out, "deck is empty")
	})

	t.Run("plain error", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLoggerWithOutput(INFO, &buf)

		logger.LogError(errors.New("boom"))

		assert.Contains(t, buf.String(), "Unexpected error: boom")
	})
}
