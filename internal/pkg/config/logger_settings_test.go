//go:build unit
// +build unit

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func rotatingFileLogger() LoggerSettings {
	return LoggerSettings{
		LogLevel:   LogLevelDebug,
		LogType:    LogTypeFile,
		FilePath:   "logs/bookshelf.log",
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
	}
}

func TestLoggerSettings_Levels(t *testing.T) {
	for _, level := range []string{LogLevelDebug, LogLevelInfo, LogLevelWarning, LogLevelError, LogLevelCritical} {
		s := LoggerSettings{LogLevel: level, LogType: LogTypeConsole}
		assert.NoError(t, s.Validate(), level)
	}

	for _, level := range []string{"", "verbose", "WARN", "fatal"} {
		s := LoggerSettings{LogLevel: level, LogType: LogTypeConsole}
		assert.Error(t, s.Validate(), level)
	}
}

func TestLoggerSettings_Types(t *testing.T) {
	assert.Error(t, (&LoggerSettings{LogLevel: LogLevelInfo}).Validate())
	assert.Error(t, (&LoggerSettings{LogLevel: LogLevelInfo, LogType: "syslog"}).Validate())

	// rotation settings only matter for the file sink
	console := rotatingFileLogger()
	console.LogType = LogTypeConsole
	console.FilePath = ""
	console.MaxSize = 0
	assert.NoError(t, console.Validate())
}

func TestLoggerSettings_FileRotation(t *testing.T) {
	base := rotatingFileLogger()
	assert.NoError(t, base.Validate())

	mutations := map[string]func(*LoggerSettings){
		"no path":            func(s *LoggerSettings) { s.FilePath = "" },
		"zero size":          func(s *LoggerSettings) { s.MaxSize = 0 },
		"oversized":          func(s *LoggerSettings) { s.MaxSize = 101 },
		"no backups":         func(s *LoggerSettings) { s.MaxBackups = 0 },
		"too many backups":   func(s *LoggerSettings) { s.MaxBackups = 11 },
		"no retention":       func(s *LoggerSettings) { s.MaxAge = 0 },
		"retention too long": func(s *LoggerSettings) { s.MaxAge = 366 },
	}
	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			s := base
			mutate(&s)
			assert.Error(t, s.Validate())
		})
	}
}
