package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/dayeon/seoulite/internal/config"
)

// NewLogger creates the structured zerolog.Logger used across the server.
// Dev mode swaps JSON output for human-readable console lines.
func NewLogger(cfg *config.Config) zerolog.Logger {
	var out io.Writer = os.Stdout
	if cfg.DevMode {
		out = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	logger := zerolog.New(out).With().
		Timestamp().
		Str("service", "seoulite").
		Logger()

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	return logger.Level(level)
}
