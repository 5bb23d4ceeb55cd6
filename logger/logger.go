// Package logger provides the process-wide structured logger plus JSON dump
// helpers for inspecting pipeline output.
package logger

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

var defaultLogger *slog.Logger

func init() {
	Init(slog.LevelInfo)
}

// Init replaces the process logger with a text handler at the given level.
func Init(level slog.Level) {
	defaultLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// ParseLevel maps a config string to a slog level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Debug logs at debug level.
func Debug(msg string, args ...any) { defaultLogger.Debug(msg, args...) }

// Info logs at info level.
func Info(msg string, args ...any) { defaultLogger.Info(msg, args...) }

// Warn logs at warn level.
func Warn(msg string, args ...any) { defaultLogger.Warn(msg, args...) }

// Error logs at error level.
func Error(msg string, args ...any) { defaultLogger.Error(msg, args...) }

// InitLogs ensures the dump directory exists and removes stale .json files so
// a run starts with a clean directory.
func InitLogs(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return err
	}
	for _, f := range files {
		// ignore individual remove errors but keep cleaning the rest
		_ = os.Remove(f)
	}
	return nil
}

// LogJSON writes v as indented JSON to dir/<name>.json. It writes to a
// temporary file and renames it into place to avoid partial files.
func LogJSON(dir, name string, v any) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	final := filepath.Join(dir, filepath.Base(name)+".json")
	tmp := final + ".tmp"
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, final); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
