// Package logger provides leveled file logging for the calculator. Output
// never goes to stdout or stderr so that interactive sessions and piped
// one-shot invocations stay clean.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Level is a logging severity threshold.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	// LevelNone disables all output.
	LevelNone
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelNone:
		return "NONE"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps a configuration string to a Level. Unrecognized strings
// fall back to LevelInfo.
func ParseLevel(s string) Level {
	switch s {
	case "debug", "DEBUG":
		return LevelDebug
	case "info", "INFO":
		return LevelInfo
	case "warn", "WARN", "warning", "WARNING":
		return LevelWarn
	case "error", "ERROR":
		return LevelError
	case "none", "NONE":
		return LevelNone
	default:
		return LevelInfo
	}
}

// Logger writes timestamped leveled lines to a single destination.
type Logger struct {
	mu    sync.Mutex
	level Level
	out   io.Writer
	file  *os.File
	tag   string
}

var (
	global *Logger
	once   sync.Once
)

// Init sets up the process-wide logger. An empty path or LevelNone yields a
// silent logger. Repeated calls are no-ops.
func Init(level Level, path string) error {
	var err error
	once.Do(func() {
		global, err = New(level, path)
	})
	return err
}

// New opens a logger appending to the file at path.
func New(level Level, path string) (*Logger, error) {
	if level == LevelNone || path == "" {
		return &Logger{level: LevelNone, out: io.Discard}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return &Logger{level: level, out: f, file: f}, nil
}

// Global returns the process-wide logger, silent until Init runs.
func Global() *Logger {
	if global == nil {
		return &Logger{level: LevelNone, out: io.Discard}
	}
	return global
}

// WithTag returns a logger that labels every line with a component name,
// sharing the parent's destination and level.
func (l *Logger) WithTag(tag string) *Logger {
	return &Logger{level: l.level, out: l.out, file: l.file, tag: tag}
}

func (l *Logger) write(level Level, format string, args ...interface{}) {
	if level < l.level || l.level == LevelNone {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	ts := time.Now().Format("2006-01-02 15:04:05.000")
	if l.tag != "" {
		fmt.Fprintf(l.out, "%s [%s] [%s] ", ts, level, l.tag)
	} else {
		fmt.Fprintf(l.out, "%s [%s] ", ts, level)
	}
	fmt.Fprintf(l.out, format, args...)
	fmt.Fprintln(l.out)
}

func (l *Logger) Debug(format string, args ...interface{}) { l.write(LevelDebug, format, args...) }
func (l *Logger) Info(format string, args ...interface{})  { l.write(LevelInfo, format, args...) }
func (l *Logger) Warn(format string, args ...interface{})  { l.write(LevelWarn, format, args...) }
func (l *Logger) Error(format string, args ...interface{}) { l.write(LevelError, format, args...) }

// Close flushes and closes the underlying file, if any.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// Package-level helpers that route through the global logger.

func Debug(format string, args ...interface{}) { Global().Debug(format, args...) }
func Info(format string, args ...interface{})  { Global().Info(format, args...) }
func Warn(format string, args ...interface{})  { Global().Warn(format, args...) }
func Error(format string, args ...interface{}) { Global().Error(format, args...) }

// Close shuts down the global logger.
func Close() error { return Global().Close() }
