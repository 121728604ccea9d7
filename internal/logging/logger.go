// Package logging provides structured JSON logging with redaction of
// SRP secret material.
package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"os"
	"strings"
	"sync"
	"time"
)

// LogLevel represents the severity level of a log entry.
type LogLevel string

// Log severity levels.
const (
	// LevelDebug enables debug-level logging.
	LevelDebug LogLevel = "debug"
	// LevelInfo enables info-level logging.
	LevelInfo LogLevel = "info"
	// LevelWarn enables warn-level logging.
	LevelWarn LogLevel = "warn"
	// LevelError enables error-level logging.
	LevelError LogLevel = "error"
)

// LogFormat represents the output format for log entries.
type LogFormat string

// Log output formats.
const (
	// FormatJSON outputs logs as JSON (default).
	FormatJSON LogFormat = "json"
	// FormatHuman outputs logs in human-readable format.
	FormatHuman LogFormat = "human"
)

// Logger provides structured logging with secret redaction. Handshake
// material (verifiers, ephemeral keys, proofs, session keys) must never
// reach a log sink; the redactor enforces that for known field names.
type Logger struct {
	level    LogLevel
	format   LogFormat
	redactor *Redactor
	out      io.Writer
	errOut   io.Writer
	mu       sync.Mutex
}

type logEntry struct {
	Timestamp string         `json:"timestamp"`
	Level     string         `json:"level"`
	Message   string         `json:"message"`
	Fields    map[string]any `json:"fields,omitempty"`
}

// New creates a new Logger instance.
func New(level LogLevel, format LogFormat) *Logger {
	return &Logger{
		level:    level,
		format:   format,
		redactor: NewRedactor(),
		out:      os.Stdout,
		errOut:   os.Stderr,
	}
}

// SetOutput sets custom output writers for testing.
func (l *Logger) SetOutput(out, errOut io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out = out
	l.errOut = errOut
}

// Debug logs a debug-level message.
func (l *Logger) Debug(msg string, fields ...map[string]any) {
	l.log(LevelDebug, msg, mergeFields(fields...))
}

// Info logs an info-level message.
func (l *Logger) Info(msg string, fields ...map[string]any) {
	l.log(LevelInfo, msg, mergeFields(fields...))
}

// Warn logs a warn-level message.
func (l *Logger) Warn(msg string, fields ...map[string]any) {
	l.log(LevelWarn, msg, mergeFields(fields...))
}

// Error logs an error-level message.
func (l *Logger) Error(msg string, fields ...map[string]any) {
	l.log(LevelError, msg, mergeFields(fields...))
}

func (l *Logger) log(level LogLevel, msg string, fields map[string]any) {
	if !l.shouldLog(level) {
		return
	}

	entry := logEntry{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Level:     string(level),
		Message:   msg,
		Fields:    l.redactor.RedactFields(fields),
	}

	var output string
	if l.format == FormatHuman {
		output = l.formatHuman(entry)
	} else {
		output = l.formatJSON(entry)
	}

	l.write(level, output)
}

func (l *Logger) shouldLog(level LogLevel) bool {
	ranks := map[LogLevel]int{
		LevelDebug: 0,
		LevelInfo:  1,
		LevelWarn:  2,
		LevelError: 3,
	}
	return ranks[level] >= ranks[l.level]
}

func (l *Logger) formatJSON(entry logEntry) string {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Sprintf(`{"timestamp":"%s","level":"error","message":"failed to marshal log entry: %s"}`+"\n",
			time.Now().UTC().Format(time.RFC3339), err.Error())
	}
	return string(data) + "\n"
}

func (l *Logger) formatHuman(entry logEntry) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "[%s] %s: %s", entry.Timestamp, entry.Level, entry.Message)
	for k, v := range entry.Fields {
		fmt.Fprintf(&sb, " %s=%v", k, v)
	}
	sb.WriteString("\n")
	return sb.String()
}

func (l *Logger) write(level LogLevel, output string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	w := l.out
	if level == LevelError {
		w = l.errOut
	}
	_, _ = w.Write([]byte(output))
}

func mergeFields(fields ...map[string]any) map[string]any {
	if len(fields) == 0 {
		return nil
	}
	merged := make(map[string]any)
	for _, f := range fields {
		maps.Copy(merged, f)
	}
	return merged
}
