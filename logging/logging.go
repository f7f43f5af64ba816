// Package logging is the leveled diagnostics logger for travbench.
//
// Messages go to stderr by default, or to a size/age-rotated file when a
// Config names one. Standard output is reserved for the benchmark report.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/natefinch/lumberjack"
)

// Level is a logging severity threshold.
type Level int

// Severities, lowest first.
const (
	DebugLevel Level = iota
	InfoLevel
	WarningLevel
	ErrorLevel
)

var levelNames = []string{
	DebugLevel:   "DEBUG",
	InfoLevel:    "INFO",
	WarningLevel: "WARNING",
	ErrorLevel:   "ERROR",
}

// ErrUnknownLevel is returned by ParseLevel for an unrecognized name.
var ErrUnknownLevel = errors.New("logging: unknown level")

func (l Level) String() string {
	if l < DebugLevel || l > ErrorLevel {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return levelNames[l]
}

// ParseLevel maps "debug", "info", "warning" (or "warn") and "error",
// case-insensitively, to a Level. The empty string means InfoLevel.
func ParseLevel(s string) (Level, error) {
	s = strings.TrimSpace(s)
	switch strings.ToUpper(s) {
	case "":
		return InfoLevel, nil
	case "WARN":
		return WarningLevel, nil
	}
	for i, name := range levelNames {
		if strings.EqualFold(name, s) {
			return Level(i), nil
		}
	}

	return InfoLevel, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}

// Config selects the log destination and threshold.
type Config struct {
	Logfile string `toml:"logfile"`
	MaxSize int    `toml:"max_log_size"` // megabytes
	MaxAge  int    `toml:"max_log_age"`  // days
	Level   string `toml:"level"`
}

// Logger writes leveled lines through a std log.Logger.
type Logger struct {
	out    *log.Logger
	level  Level
	closer io.Closer
}

// New returns a Logger writing to w at the given threshold.
func New(w io.Writer, level Level) *Logger {
	return &Logger{
		out:   log.New(w, "", log.LstdFlags),
		level: level,
	}
}

// Discard returns a Logger that drops everything.
func Discard() *Logger {
	return New(io.Discard, ErrorLevel+1)
}

// NewLogger builds the Logger described by c. Without a Logfile, output
// goes to fallback (normally os.Stderr).
func (c *Config) NewLogger(fallback io.Writer) (*Logger, error) {
	if c == nil {
		return New(fallback, InfoLevel), nil
	}
	level, err := ParseLevel(c.Level)
	if err != nil {
		return nil, err
	}
	if c.Logfile == "" {
		return New(fallback, level), nil
	}

	l := &lumberjack.Logger{
		Filename: c.Logfile,
		MaxSize:  c.MaxSize,
		MaxAge:   c.MaxAge,
	}
	lg := New(l, level)
	lg.closer = l

	return lg, nil
}

// Level returns the current threshold.
func (l *Logger) Level() Level {
	return l.level
}

// Close releases the rotating file, if any.
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

func (l *Logger) logf(level Level, format string, args ...interface{}) {
	if l == nil || level < l.level {
		return
	}
	l.out.Printf(" %s %s", level, fmt.Sprintf(format, args...))
}

// Debugf logs at DEBUG.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.logf(DebugLevel, format, args...)
}

// Infof logs at INFO.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.logf(InfoLevel, format, args...)
}

// Warningf logs at WARNING.
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.logf(WarningLevel, format, args...)
}

// Errorf logs at ERROR.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.logf(ErrorLevel, format, args...)
}

// std is the process-wide logger used by the package-level helpers.
var std = New(os.Stderr, InfoLevel)

// SetDefault replaces the process-wide logger.
func SetDefault(l *Logger) {
	if l != nil {
		std = l
	}
}

// Default returns the process-wide logger.
func Default() *Logger {
	return std
}

// Infof logs at INFO on the process-wide logger.
func Infof(format string, args ...interface{}) {
	std.Infof(format, args...)
}

// Errorf logs at ERROR on the process-wide logger.
func Errorf(format string, args ...interface{}) {
	std.Errorf(format, args...)
}
