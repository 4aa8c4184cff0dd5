package logger

import (
	"fmt"

	"github.com/rs/zerolog"
)

// SetLogLevel applies a textual log level ("debug", "info", ...) globally.
func SetLogLevel(level string) error {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("SetLogLevel: %w", err)
	}

	zerolog.SetGlobalLevel(parsed)
	return nil
}
