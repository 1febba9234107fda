package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

const (
	logFormatJSON = "json"
	logFormatText = "text"
)

func newLogger(output io.Writer, levelName string, formatName string) (zerolog.Logger, error) {
	level, parseLevelError := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(levelName)))
	if parseLevelError != nil {
		return zerolog.Nop(), fmt.Errorf("bad LOG_LEVEL %q: %w", levelName, parseLevelError)
	}

	switch strings.ToLower(strings.TrimSpace(formatName)) {
	case "", logFormatJSON:
	case logFormatText:
		output = zerolog.ConsoleWriter{Out: output, NoColor: true}
	default:
		return zerolog.Nop(), fmt.Errorf("bad LOG_FORMAT %q: want %s or %s", formatName, logFormatJSON, logFormatText)
	}

	return zerolog.New(output).Level(level).With().Timestamp().Str("component", "textkit").Logger(), nil
}
