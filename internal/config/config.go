package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"exkit/internal/stats"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Built-in inputs used when nothing is configured.
var (
	DefaultSample = []int{1, 1, 2, 4, 3, 2, 3, 1, 1, 3, 3, 2, 3}
	DefaultWords  = []string{"first", "apple", "banana"}
	DefaultText   = "hello world yay hello"
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// AppConfig holds the complete application configuration.
type AppConfig struct {
	DataPath string
	LogDir   string
	Output   string

	Sample []int
	Words  []string
	Text   string
}

// Load loads the configuration from .env files and environment variables.
func Load() (*AppConfig, error) {
	// 1. Try to load from the executable's directory
	exePath, err := os.Executable()
	exeDir := ""
	if err == nil {
		exeDir = filepath.Dir(exePath)
		envPath := filepath.Join(exeDir, ".env")
		if err := godotenv.Load(envPath); err == nil {
			log.Debug().Str("path", envPath).Msg("Loaded configuration from binary directory")
		}
	}

	// 2. Fallback to current working directory
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found in working directory, relying on environment variables")
	}

	return fromEnv(exeDir)
}

// DataPath resolves the data directory: DATA_PATH, else the binary's directory, else ".".
func DataPath(exeDir string) string {
	if dataPath := os.Getenv("DATA_PATH"); dataPath != "" {
		return dataPath
	}
	if exeDir != "" {
		return exeDir
	}
	return "."
}

// LogDir resolves the log directory: LOGS_FOLDER, else "logs" below DataPath.
func LogDir(exeDir string) string {
	if logDir := os.Getenv("LOGS_FOLDER"); logDir != "" {
		return logDir
	}
	return filepath.Join(DataPath(exeDir), "logs")
}

func fromEnv(exeDir string) (*AppConfig, error) {
	output := strings.ToLower(strings.TrimSpace(getEnv("EXKIT_OUTPUT", "")))
	if output == "" {
		output = OutputText
	}
	if output != OutputText && output != OutputJSON {
		return nil, fmt.Errorf("EXKIT_OUTPUT: unsupported format %q", output)
	}

	cfg := &AppConfig{
		DataPath: DataPath(exeDir),
		LogDir:   LogDir(exeDir),
		Output:   output,
		Sample:   DefaultSample,
		Words:    DefaultWords,
		Text:     DefaultText,
	}

	if raw, ok := os.LookupEnv("EXKIT_TEXT"); ok && strings.TrimSpace(raw) != "" {
		cfg.Text = raw
	}

	if raw, ok := os.LookupEnv("EXKIT_SAMPLE"); ok && strings.TrimSpace(raw) != "" {
		values, err := stats.ParseValues([]string{raw})
		if err != nil {
			return nil, fmt.Errorf("EXKIT_SAMPLE: %w", err)
		}
		cfg.Sample = values
	}

	if raw, ok := os.LookupEnv("EXKIT_WORDS"); ok {
		if words := strings.Fields(raw); len(words) > 0 {
			cfg.Words = words
		}
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
