package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// Diagnostics logger for setup and storage lifecycle events. Command
// output itself goes through fmt/color, not through here, so the
// default level keeps normal runs quiet.
var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
	Level(zerolog.WarnLevel).
	With().
	Timestamp().
	Logger()

// SetLevel applies the configured level name, keeping the previous
// level if the name does not parse.
func SetLevel(name string) {
	level, err := zerolog.ParseLevel(name)
	if err != nil {
		log.Warn().Str("level", name).Msg("unknown log level, keeping default")
		return
	}
	log = log.Level(level)
}

func Debug() *zerolog.Event { return log.Debug() }
func Info() *zerolog.Event  { return log.Info() }
func Warn() *zerolog.Event  { return log.Warn() }
func Error() *zerolog.Event { return log.Error() }
