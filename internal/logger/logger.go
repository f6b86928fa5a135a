// Package logger configures the structured logger used across kicks
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ayoisaiah/kicks/internal/osutil"
)

const (
	maxSizeMB  = 5
	maxBackups = 3
	maxAgeDays = 30
)

// Levels maps the accepted config values to slog levels.
var Levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// ParseLevel returns the slog level for s, defaulting to info.
func ParseLevel(s string) slog.Level {
	if l, ok := Levels[strings.ToLower(strings.TrimSpace(s))]; ok {
		return l
	}

	return slog.LevelInfo
}

// New returns a JSON logger writing to w.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// Init sets up a rotating log file at logPath and installs the resulting
// logger as the slog default. The returned closer releases the file.
func Init(logPath, level string) (io.Closer, error) {
	err := os.MkdirAll(filepath.Dir(logPath), osutil.DirPermission)
	if err != nil {
		return nil, err
	}

	w := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
	}

	slog.SetDefault(New(w, ParseLevel(level)))

	return w, nil
}
