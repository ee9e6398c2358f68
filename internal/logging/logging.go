// Package logging provides the structured logger shared by the CLI and the
// extraction passes.
package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"
)

// Level is a log severity.
type Level int

const (
	// LevelDebug for per-file extraction detail
	LevelDebug Level = iota
	// LevelInfo for run-level messages
	LevelInfo
	// LevelWarn for recoverable problems
	LevelWarn
	// LevelError for failures surfaced to the user
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// ParseLevel maps a configuration string to a Level, defaulting to info.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Format selects the log output encoding.
type Format string

const (
	// FormatJSON outputs one JSON object per entry
	FormatJSON Format = "json"
	// FormatHuman outputs a readable single line per entry
	FormatHuman Format = "human"
)

// Fields carries structured key/value context for one entry.
type Fields map[string]any

// Config holds logger configuration.
type Config struct {
	Format Format
	Level  Level
	Output io.Writer // Optional, defaults to stderr
}

// Logger writes leveled, structured log entries.
type Logger struct {
	format Format
	level  Level
	out    io.Writer
}

// New creates a logger from the given configuration. Output defaults to
// stderr so that blueprint documents printed to stdout stay machine-readable.
func New(cfg Config) *Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	format := cfg.Format
	if format != FormatJSON {
		format = FormatHuman
	}
	return &Logger{format: format, level: cfg.Level, out: out}
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{format: FormatHuman, level: LevelError + 1, out: io.Discard}
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields Fields) { l.write(LevelDebug, msg, fields) }

// Info logs an info message
func (l *Logger) Info(msg string, fields Fields) { l.write(LevelInfo, msg, fields) }

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields Fields) { l.write(LevelWarn, msg, fields) }

// Error logs an error message
func (l *Logger) Error(msg string, fields Fields) { l.write(LevelError, msg, fields) }

type entry struct {
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Message   string `json:"message"`
	Fields    Fields `json:"fields,omitempty"`
}

func (l *Logger) write(level Level, msg string, fields Fields) {
	if level < l.level {
		return
	}

	ts := time.Now().UTC().Format(time.RFC3339)

	if l.format == FormatJSON {
		data, err := json.Marshal(entry{
			Timestamp: ts,
			Level:     level.String(),
			Message:   msg,
			Fields:    fields,
		})
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "failed to marshal log entry: %v\n", err)
			return
		}
		_, _ = fmt.Fprintln(l.out, string(data))
		return
	}

	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "%s [%s] %s", ts, level, msg)
	if len(fields) > 0 {
		// Stable field order keeps human output diffable.
		keys := make([]string, 0, len(fields))
		for k := range fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		b.WriteString(" |")
		for _, k := range keys {
			_, _ = fmt.Fprintf(&b, " %s=%v", k, fields[k])
		}
	}
	_, _ = fmt.Fprintln(l.out, b.String())
}
