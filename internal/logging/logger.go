package logging

import (
	"io"
	"os"
	"strings"

	"github.com/fadedpez/blackjackr/internal/types"
	"github.com/sirupsen/logrus"
)

// Level represents a logging level
type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
)

var levelNames = map[Level]string{
	DEBUG: "DEBUG",
	INFO:  "INFO",
	WARN:  "WARN",
	ERROR: "ERROR",
}

var logrusLevels = map[Level]logrus.Level{
	DEBUG: logrus.DebugLevel,
	INFO:  logrus.InfoLevel,
	WARN:  logrus.WarnLevel,
	ERROR: logrus.ErrorLevel,
}

// String returns the level name
func (l Level) String() string {
	return levelNames[l]
}

// ParseLevel maps a level name to a Level, defaulting to INFO
func ParseLevel(name string) Level {
	for level, levelName := range levelNames {
		if strings.EqualFold(name, levelName) {
			return level
		}
	}
	return INFO
}

// Logger wraps a logrus entry with printf-style leveled methods
type Logger struct {
	entry *logrus.Entry
}

// NewLogger creates a new logger instance writing to stdout
func NewLogger(level Level) *Logger {
	return NewLoggerWithOutput(level, os.Stdout)
}

// NewLoggerWithOutput creates a new logger writing to out
func NewLoggerWithOutput(level Level, out io.Writer) *Logger {
	base := logrus.New()
	base.SetOutput(out)
	base.SetLevel(logrusLevels[level])
	base.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
	})
	return &Logger{entry: logrus.NewEntry(base)}
}

// Discard returns a logger that drops everything, for tests
func Discard() *Logger {
	return NewLoggerWithOutput(ERROR, io.Discard)
}

// WithField returns a logger that adds key=value to every entry
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{entry: l.entry.WithField(key, value)}
}

// WithFields returns a logger that adds fields to every entry
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{entry: l.entry.WithFields(logrus.Fields(fields))}
}

// Debug logs a debug message
func (l *Logger) Debug(format string, v ...interface{}) {
	l.entry.Debugf(format, v...)
}

// Info logs an info message
func (l *Logger) Info(format string, v ...interface{}) {
	l.entry.Infof(format, v...)
}

// Warn logs a warning message
func (l *Logger) Warn(format string, v ...interface{}) {
	l.entry.Warnf(format, v...)
}

// Error logs an error message
func (l *Logger) Error(format string, v ...interface{}) {
	l.entry.Errorf(format, v...)
}

// LogError logs a GameError with its code and cause as fields
func (l *Logger) LogError(err error) {
	var gameErr *types.GameError
	if types.As(err, &gameErr) {
		fields := logrus.Fields{
			"code": gameErr.Code,
		}
		if gameErr.Err != nil {
			fields["cause"] = gameErr.Err.Error()
		}
		l.entry.WithFields(fields).Error(gameErr.Message)
		return
	}
	l.entry.Errorf("Unexpected error: %v", err)
}

// Default logger instance
var Default = NewLogger(INFO)
