package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the server settings
type Config struct {
	Port               string
	LogLevel           slog.Level
	CORSAllowedOrigins []string
	MaxBodyBytes       int64
	MinAnalyzeChars    int
	MinRephraseChars   int
	TracingEnabled     bool
	ServiceName        string
}

// Load reads an optional .env file, then environment variables, then the
// command-line flags in args. Later sources win.
func Load(args []string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	maxBody, err := getEnvInt64("MAX_BODY_BYTES", 1<<20)
	if err != nil {
		return nil, err
	}
	minAnalyze, err := getEnvInt("MIN_ANALYZE_CHARS", 50)
	if err != nil {
		return nil, err
	}
	minRephrase, err := getEnvInt("MIN_REPHRASE_CHARS", 10)
	if err != nil {
		return nil, err
	}

	flags := flag.NewFlagSet("server", flag.ContinueOnError)
	var (
		port         = flags.String("port", getEnv("PORT", "8080"), "Server port (env: PORT)")
		logLevel     = flags.String("log-level", getEnv("LOG_LEVEL", "info"), "Log level: debug, info, warn, error (env: LOG_LEVEL)")
		origins      = flags.String("cors-origins", getEnv("CORS_ALLOWED_ORIGINS", "*"), "Comma-separated allowed CORS origins (env: CORS_ALLOWED_ORIGINS)")
		maxBodySize  = flags.Int64("max-body-bytes", maxBody, "Maximum request body size in bytes (env: MAX_BODY_BYTES)")
		minAnalyzeN  = flags.Int("min-analyze-chars", minAnalyze, "Minimum text length for analysis (env: MIN_ANALYZE_CHARS)")
		minRephraseN = flags.Int("min-rephrase-chars", minRephrase, "Minimum text length for rephrasing (env: MIN_REPHRASE_CHARS)")
		tracing      = flags.Bool("tracing", getEnvBool("TRACING_ENABLED", true), "Enable OpenTelemetry tracing (env: TRACING_ENABLED)")
		serviceName  = flags.String("service-name", getEnv("SERVICE_NAME", "plagcheck"), "Service name for traces and metrics (env: SERVICE_NAME)")
	)
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", *logLevel, err)
	}
	if *maxBodySize <= 0 {
		return nil, fmt.Errorf("max body bytes must be positive, got %d", *maxBodySize)
	}

	return &Config{
		Port:               *port,
		LogLevel:           level,
		CORSAllowedOrigins: splitList(*origins),
		MaxBodyBytes:       *maxBodySize,
		MinAnalyzeChars:    *minAnalyzeN,
		MinRephraseChars:   *minRephraseN,
		TracingEnabled:     *tracing,
		ServiceName:        *serviceName,
	}, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool retrieves a boolean environment variable or returns a default value
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1" || value == "yes"
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getEnvInt64(key string, defaultValue int64) (int64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
