package logger

import (
	"context"
	"envtidy/internal/version"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	charmlog "charm.land/log/v2"
)

// Log levels, shared with slog so records flow through unchanged.
const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

const timeFormat = "2006-01-02 15:04:05"

var (
	mu            sync.Mutex
	consoleLogger *charmlog.Logger
	fileLogger    *charmlog.Logger
	logFile       *os.File
)

// Options configures NewLogger.
type Options struct {
	// Writer receives console output. Defaults to os.Stderr.
	Writer io.Writer
	// Level is the console level. The log file always records Info and above.
	Level slog.Level
	// File is an optional log file path, truncated on open.
	File string
}

// ParseLevel converts a config level name (debug, info, warn, error) to a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return LevelWarn, fmt.Errorf("unknown log level %q", name)
	}
	return level, nil
}

// NewLogger builds the application logger. If the log file cannot be opened
// the console-only logger is still returned along with the error.
func NewLogger(opts Options) (*slog.Logger, error) {
	mu.Lock()
	defer mu.Unlock()

	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}

	consoleLogger = charmlog.NewWithOptions(w, charmlog.Options{
		Level:           charmlog.Level(opts.Level),
		Prefix:          version.CommandName,
		ReportTimestamp: true,
		TimeFormat:      timeFormat,
	})
	handlers := []slog.Handler{consoleLogger}

	fileLogger = nil
	closeFileLocked()

	var err error
	if opts.File != "" {
		err = openFileLocked(opts.File, opts.Level)
		if fileLogger != nil {
			handlers = append(handlers, fileLogger)
		}
	}

	return slog.New(&FanoutHandler{handlers: handlers}), err
}

func openFileLocked(path string, level slog.Level) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	logFile = f
	fileLogger = charmlog.NewWithOptions(f, charmlog.Options{
		Level:           charmlog.Level(fileLevel(level)),
		ReportTimestamp: true,
		TimeFormat:      timeFormat,
	})
	return nil
}

// fileLevel keeps the file at Info or lower.
func fileLevel(level slog.Level) slog.Level {
	if level < LevelInfo {
		return level
	}
	return LevelInfo
}

// Cleanup closes the log file, if one is open.
func Cleanup() {
	mu.Lock()
	defer mu.Unlock()
	closeFileLocked()
}

func closeFileLocked() {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}

// FanoutHandler broadcasts records to multiple handlers
type FanoutHandler struct {
	handlers []slog.Handler
}

func (h *FanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *FanoutHandler) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, r.Level) {
			if err := handler.Handle(ctx, r.Clone()); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

func (h *FanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithAttrs(attrs)
	}
	return &FanoutHandler{handlers: newHandlers}
}

func (h *FanoutHandler) WithGroup(name string) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithGroup(name)
	}
	return &FanoutHandler{handlers: newHandlers}
}

// log formats msg with args when it carries verbs, otherwise args become attributes.
func log(ctx context.Context, level slog.Level, msg string, args ...any) {
	h := slog.Default().Handler()
	if !h.Enabled(ctx, level) {
		return
	}

	if len(args) > 0 && strings.Contains(msg, "%") {
		msg = fmt.Sprintf(msg, args...)
		args = nil
	}

	r := slog.NewRecord(time.Now(), level, msg, 0)
	r.Add(args...)
	_ = h.Handle(ctx, r)
}

func Debug(ctx context.Context, msg string, args ...any) {
	log(ctx, LevelDebug, msg, args...)
}

func Info(ctx context.Context, msg string, args ...any) {
	log(ctx, LevelInfo, msg, args...)
}

func Warn(ctx context.Context, msg string, args ...any) {
	log(ctx, LevelWarn, msg, args...)
}

func Error(ctx context.Context, msg string, args ...any) {
	log(ctx, LevelError, msg, args...)
}
