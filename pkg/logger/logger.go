// Package logger provides the printf-style logger used across the service,
// backed by log/slog.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger printf-логгер поверх slog
type Logger struct {
	slog   *slog.Logger
	closer io.Closer
}

// New создает логгер. Пустой file пишет в stdout, иначе файл открывается на дозапись.
func New(file, level string) (*Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	if file == "" {
		return newLogger(os.Stdout, lvl, nil), nil
	}

	f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("logger: open log file %s: %w", file, err)
	}
	return newLogger(f, lvl, f), nil
}

// NewWithWriter создает логгер, пишущий в w. Неизвестный уровень трактуется как info.
func NewWithWriter(w io.Writer, level string) *Logger {
	lvl, err := ParseLevel(level)
	if err != nil {
		lvl = slog.LevelInfo
	}
	return newLogger(w, lvl, nil)
}

func newLogger(w io.Writer, level slog.Level, closer io.Closer) *Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return &Logger{
		slog:   slog.New(handler),
		closer: closer,
	}
}

// ParseLevel converts a config level name to slog.Level
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("logger: unknown log level %q", level)
	}
}

// With возвращает логгер с дополнительными атрибутами
func (l *Logger) With(args ...any) *Logger {
	return &Logger{
		slog:   l.slog.With(args...),
		closer: l.closer,
	}
}

func (l *Logger) Debug(format string, v ...interface{}) {
	l.slog.Debug(fmt.Sprintf(format, v...))
}

func (l *Logger) Info(format string, v ...interface{}) {
	l.slog.Info(fmt.Sprintf(format, v...))
}

func (l *Logger) Warn(format string, v ...interface{}) {
	l.slog.Warn(fmt.Sprintf(format, v...))
}

func (l *Logger) Error(format string, v ...interface{}) {
	l.slog.Error(fmt.Sprintf(format, v...))
}

// Fatal логирует ошибку, закрывает файл и завершает процесс
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.Error(format, v...)
	_ = l.Close()
	os.Exit(1)
}

// Close закрывает файл лога, если он был открыт
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}
