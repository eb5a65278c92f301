package logger

import (
	"errors"
	"fmt"
	"sync"

	"github.com/MGTheTrain/bookshelf/internal/pkg/config"
)

// process wide logger, built once by InitLogger
var global struct {
	once sync.Once
	log  Logger
	err  error
}

// InitLogger builds the process wide logger from settings. Later calls
// return the outcome of the first one.
func InitLogger(settings *config.LoggerSettings) error {
	global.once.Do(func() {
		global.log, global.err = New(settings)
	})
	return global.err
}

// GetLogger returns the logger built by InitLogger.
func GetLogger() (Logger, error) {
	if global.log == nil {
		return nil, errors.New("logger: InitLogger has not succeeded")
	}
	return global.log, nil
}

// New builds the sink selected by settings.LogType.
func New(settings *config.LoggerSettings) (Logger, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("logger settings: %w", err)
	}
	if settings.LogType == config.LogTypeFile {
		return NewFileLogger(settings.LogLevel, settings.FilePath, settings.MaxSize, settings.MaxBackups, settings.MaxAge), nil
	}
	return NewConsoleLogger(settings.LogLevel), nil
}
