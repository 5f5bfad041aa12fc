package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewFiltersDebugUnlessVerbose(t *testing.T) {
	var quiet bytes.Buffer
	logger := New(&quiet, Options{NoColor: true})
	logger.Debug("hidden")
	logger.Warn("shown")
	_ = logger.Sync()
	if strings.Contains(quiet.String(), "hidden") {
		t.Fatalf("debug output leaked: %q", quiet.String())
	}
	if !strings.Contains(quiet.String(), "WARN") || !strings.Contains(quiet.String(), "shown") {
		t.Fatalf("expected warning, got %q", quiet.String())
	}

	var verbose bytes.Buffer
	logger = New(&verbose, Options{Verbose: true, NoColor: true})
	logger.Debug("visible")
	_ = logger.Sync()
	if !strings.Contains(verbose.String(), "visible") {
		t.Fatalf("expected debug output, got %q", verbose.String())
	}
}
