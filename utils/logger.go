package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

var Logger zerolog.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// InitLogger wires the process logger to stdout plus logs/app.log.
func InitLogger() error {
	logsDir := "logs"
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %v", err)
	}

	logFile, err := os.OpenFile(filepath.Join(logsDir, "app.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("failed to open log file: %v", err)
	}

	console := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "2006-01-02 15:04:05"}
	Logger = zerolog.New(io.MultiWriter(console, logFile)).With().Timestamp().Logger()
	return nil
}

func LogError(err error, context string) {
	Logger.Error().Err(err).Str("context", context).Msg("error")
}

func LogPanic(recovered interface{}, context string) {
	Logger.Error().Interface("panic", recovered).Str("context", context).Msg("panic recovered")
}
