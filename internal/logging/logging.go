package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"exkit/internal/config"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

const logFileName = "exkit.log"

// Init initializes the global logger with dual sinks: os.Stderr and a rotating file.
// Standard output stays reserved for program results.
func Init(verbose bool) error {
	// Init runs before config.Load, so pick up LOGS_FOLDER and DATA_PATH from the binary's .env here.
	exeDir := ""
	if exePath, err := os.Executable(); err == nil {
		exeDir = filepath.Dir(exePath)
		_ = godotenv.Load(filepath.Join(exeDir, ".env"))
	}

	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	fileWriter, err := newFileWriter(config.LogDir(exeDir))
	if err != nil {
		// Fall back to console-only logging; results must still be printed.
		log.Logger = zerolog.New(consoleWriter(os.Stderr)).With().Timestamp().Logger()
		return err
	}

	multi := zerolog.MultiLevelWriter(io.Writer(consoleWriter(os.Stderr)), fileWriter)
	log.Logger = zerolog.New(multi).
		With().
		Timestamp().
		Logger()
	return nil
}

func consoleWriter(out *os.File) zerolog.ConsoleWriter {
	isTerminal := isatty.IsTerminal(out.Fd()) || isatty.IsCygwinTerminal(out.Fd())
	return zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    !isTerminal,
	}
}

func newFileWriter(logDir string) (*lumberjack.Logger, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory %q: %w", logDir, err)
	}

	testFile := filepath.Join(logDir, ".write-test")
	if err := os.WriteFile(testFile, []byte("test"), 0644); err != nil {
		return nil, fmt.Errorf("log directory %q is not writable: %w", logDir, err)
	}
	_ = os.Remove(testFile)

	return &lumberjack.Logger{
		Filename:   filepath.Join(logDir, logFileName),
		MaxSize:    4, // megabytes
		MaxBackups: 8,
		MaxAge:     90, // days
		Compress:   true,
	}, nil
}
