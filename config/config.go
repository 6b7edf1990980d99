package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rapidmidiex/notequiz/pitch"
)

type Config struct {
	// Seed for note selection. 0 picks one from the clock.
	Seed int64
	// Keys notes are drawn from.
	Range pitch.Range
	// Log file path. Logging is off when empty.
	LogFile string
	// Dump prints a single frame in this format ("text" or "json") instead
	// of starting the interactive program.
	Dump string
	// Frame size for Dump. 0 uses the terminal size.
	Width  int
	Height int
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent.
	_ = godotenv.Load()

	return Config{
		Seed: int64(envIntOr("NOTEQUIZ_SEED", 0)),
		Range: pitch.Range{
			Low:  pitch.Key(envIntOr("NOTEQUIZ_LOW", int(pitch.DefaultRange.Low))),
			High: pitch.Key(envIntOr("NOTEQUIZ_HIGH", int(pitch.DefaultRange.High))),
		},
		LogFile: envOr("NOTEQUIZ_LOG_FILE", ""),
	}
}

func (c Config) Validate() error {
	if err := c.Range.Validate(); err != nil {
		return fmt.Errorf("invalid key range: %w", err)
	}
	switch c.Dump {
	case "", "text", "json":
	default:
		return fmt.Errorf("unknown dump format: %q", c.Dump)
	}
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("invalid frame size: %dx%d", c.Width, c.Height)
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}
