package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/lshigami/birthday-wall/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init installs a console logger on the global zerolog instance. It runs before
// configuration is read so that config loading itself can log.
func Init() {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	log.Logger = zerolog.New(consoleWriter(os.Stdout)).With().Timestamp().Logger()
}

// Configure applies the configured level and output format. An empty level means
// info; an unknown one is an error.
func Configure(cfg *config.Config) error {
	level := zerolog.InfoLevel
	if name := strings.TrimSpace(cfg.Log.Level); name != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(name))
		if err != nil {
			return fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.Log.Level, err)
		}
		level = parsed
	}
	zerolog.SetGlobalLevel(level)

	var out io.Writer = consoleWriter(os.Stdout)
	if strings.EqualFold(cfg.Log.Format, "json") {
		out = os.Stdout
	}
	log.Logger = zerolog.New(out).With().Timestamp().Logger()
	return nil
}

func consoleWriter(out io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05.000"}
}
