package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestInit_WritesRotatingFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("LOGS_FOLDER", dir)

	if err := Init(true); err != nil {
		t.Fatalf("Init() unexpected error: %v", err)
	}
	if zerolog.GlobalLevel() != zerolog.DebugLevel {
		t.Errorf("GlobalLevel = %v, want debug", zerolog.GlobalLevel())
	}

	log.Info().Str("component", "test").Msg("hello from test")

	data, err := os.ReadFile(filepath.Join(dir, logFileName))
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "hello from test") {
		t.Errorf("log file does not contain message: %s", data)
	}
}

func TestNewFileWriter_Unwritable(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0644); err != nil {
		t.Fatal(err)
	}

	// A regular file cannot be used as a log directory.
	if _, err := newFileWriter(filepath.Join(blocker, "logs")); err == nil {
		t.Error("expected error for log dir below a regular file")
	}
}

func TestInit_FallsBackToDataPath(t *testing.T) {
	dataPath := t.TempDir()
	t.Setenv("DATA_PATH", dataPath)
	t.Setenv("LOGS_FOLDER", "")
	os.Unsetenv("LOGS_FOLDER")

	if err := Init(false); err != nil {
		t.Fatalf("Init() unexpected error: %v", err)
	}
	log.Warn().Msg("written below data path")

	data, err := os.ReadFile(filepath.Join(dataPath, "logs", logFileName))
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "written below data path") {
		t.Errorf("log file does not contain message: %s", data)
	}
}
