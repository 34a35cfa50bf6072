// internal/logging/logging.go
package logging

import (
	"os"

	"github.com/rs/zerolog"
)

// Log — общий логгер игры. Пишет в stderr в консольном формате, чтобы не
// мешаться с выводом рендера.
var Log = zerolog.New(zerolog.ConsoleWriter{
	Out:        os.Stderr,
	TimeFormat: "15:04:05.000",
}).With().Timestamp().Logger()

// Setup applies the configured log level. Unknown names fall back to info.
func Setup(level string) {
	var lvl zerolog.Level
	switch level {
	case "trace":
		lvl = zerolog.TraceLevel
	case "debug":
		lvl = zerolog.DebugLevel
	case "warn":
		lvl = zerolog.WarnLevel
	case "error":
		lvl = zerolog.ErrorLevel
	default:
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}
