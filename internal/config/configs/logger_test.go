package configs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestSlogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"err":     slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range cases {
		if got := (Logger{Level: in}).SlogLevel(); got != want {
			t.Errorf("SlogLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := Logger{Level: "warn", Format: "json"}.NewLogger(&buf)

	logger.Info("dropped")
	logger.Warn("kept", slog.String("slot", "feed"))

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("expected a single JSON record, got %q: %v", buf.String(), err)
	}
	if rec["msg"] != "kept" || rec["slot"] != "feed" {
		t.Fatalf("unexpected record: %v", rec)
	}
}
