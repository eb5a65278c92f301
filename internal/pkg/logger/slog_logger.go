package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/MGTheTrain/bookshelf/internal/pkg/config"
)

// LevelCritical sits above slog.LevelError for messages that precede a shutdown
const LevelCritical = slog.Level(12)

var levels = map[string]slog.Level{
	config.LogLevelDebug:    slog.LevelDebug,
	config.LogLevelInfo:     slog.LevelInfo,
	config.LogLevelWarning:  slog.LevelWarn,
	config.LogLevelError:    slog.LevelError,
	config.LogLevelCritical: LevelCritical,
}

// levelOf maps a configured level name to its slog level, defaulting to info.
func levelOf(name string) slog.Level {
	if level, ok := levels[name]; ok {
		return level
	}
	return slog.LevelInfo
}

// slogLogger adapts a *slog.Logger to the Logger interface.
type slogLogger struct {
	logger *slog.Logger
}

func newSlogLogger(h slog.Handler) slogLogger {
	return slogLogger{logger: slog.New(h)}
}

func (l *slogLogger) log(level slog.Level, args []interface{}) string {
	msg := fmt.Sprint(args...)
	l.logger.Log(context.Background(), level, msg)
	return msg
}

func (l *slogLogger) Debug(args ...interface{}) { l.log(slog.LevelDebug, args) }

func (l *slogLogger) Info(args ...interface{}) { l.log(slog.LevelInfo, args) }

func (l *slogLogger) Warn(args ...interface{}) { l.log(slog.LevelWarn, args) }

func (l *slogLogger) Error(args ...interface{}) { l.log(slog.LevelError, args) }

// Fatal logs at critical level and exits.
func (l *slogLogger) Fatal(args ...interface{}) {
	l.log(LevelCritical, args)
	os.Exit(1)
}

// Panic logs at critical level and panics with the message.
func (l *slogLogger) Panic(args ...interface{}) {
	panic(l.log(LevelCritical, args))
}
