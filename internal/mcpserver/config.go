package mcpserver

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/erraggy/coltools/naming"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// SimilarityNGram is the default n-gram size for the similarity tool.
	SimilarityNGram int
	// RenameCase is the default target case for the rename_case tool.
	RenameCase string
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from COLTOOLS_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		SimilarityNGram: envInt("COLTOOLS_SIMILARITY_NGRAM", 2),
		RenameCase:      envCase("COLTOOLS_RENAME_CASE", "snake"),
	}
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func envCase(key string, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if _, err := naming.ParseCase(v); err != nil {
		slog.Warn("invalid case env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return v
}
