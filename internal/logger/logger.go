package logger

import (
	"os"

	"github.com/rs/zerolog"
)

func New(pretty bool, level string) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	var output zerolog.ConsoleWriter
	if pretty {
		output = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "2006-01-02 15:04:05"}
		return zerolog.New(output).Level(lvl).With().Timestamp().Caller().Logger()
	}

	return zerolog.New(os.Stdout).Level(lvl).With().Timestamp().Logger()
}
