package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewLoggerJSON(t *testing.T) {
	var output bytes.Buffer
	logger, loggerError := newLogger(&output, "INFO", "json")
	if loggerError != nil {
		t.Fatalf("newLogger: %v", loggerError)
	}

	logger.Debug().Msg("filtered")
	logger.Info().Str("operation", "trim").Msg("served")

	lines := strings.Split(strings.TrimSpace(output.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 log line, got %d: %q", len(lines), output.String())
	}
	var entry map[string]interface{}
	if unmarshalError := json.Unmarshal([]byte(lines[0]), &entry); unmarshalError != nil {
		t.Fatalf("log line is not valid JSON: %v", unmarshalError)
	}
	if entry["level"] != "info" || entry["message"] != "served" || entry["operation"] != "trim" || entry["component"] != "textkit" {
		t.Fatalf("unexpected entry %v", entry)
	}
}

func TestNewLoggerText(t *testing.T) {
	var output bytes.Buffer
	logger, loggerError := newLogger(&output, "debug", "text")
	if loggerError != nil {
		t.Fatalf("newLogger: %v", loggerError)
	}
	logger.Debug().Msg("console line")
	if !strings.Contains(output.String(), "console line") {
		t.Fatalf("expected console output, got %q", output.String())
	}
}

func TestNewLoggerRejectsUnknownSettings(t *testing.T) {
	var output bytes.Buffer
	if _, loggerError := newLogger(&output, "chatty", "json"); loggerError == nil {
		t.Fatalf("expected error for unknown level")
	}
	if _, loggerError := newLogger(&output, "info", "xml"); loggerError == nil {
		t.Fatalf("expected error for unknown format")
	}
}
