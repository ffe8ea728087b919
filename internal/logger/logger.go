package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Setup настраивает логгер приложения.
//   - level: trace, debug, info, warn, error, fatal
//   - format: "json" для продакшена, "pretty" для читаемого вывода в dev
func Setup(level, format string) zerolog.Logger {
	var writer io.Writer

	if format == "pretty" {
		writer = zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		}
	} else {
		writer = os.Stdout
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(lvl)

	return zerolog.New(writer).With().Timestamp().Logger()
}
