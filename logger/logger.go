package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"
)

type Logger struct {
	service  string
	hostname string
	handler  *slog.Logger
}

// New writes JSON lines to stdout
func New(service string) *Logger {
	return NewWithWriter(service, os.Stdout, slog.LevelDebug)
}

func NewWithWriter(service string, w io.Writer, level slog.Level) *Logger {
	hostname, _ := os.Hostname()
	return &Logger{
		service:  service,
		hostname: hostname,
		handler:  slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})),
	}
}

// Discard drops everything. Used in tests.
func Discard() *Logger {
	return NewWithWriter("test", io.Discard, slog.LevelError+1)
}

func (l *Logger) Debug(ctx context.Context, action, message string, attrs ...slog.Attr) {
	l.log(ctx, slog.LevelDebug, action, message, attrs)
}

func (l *Logger) Info(ctx context.Context, action, message string, attrs ...slog.Attr) {
	l.log(ctx, slog.LevelInfo, action, message, attrs)
}

func (l *Logger) Warn(ctx context.Context, action, message string, attrs ...slog.Attr) {
	l.log(ctx, slog.LevelWarn, action, message, attrs)
}

func (l *Logger) Error(ctx context.Context, action, message string, err error, attrs ...slog.Attr) {
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	l.log(ctx, slog.LevelError, action, message, attrs)
}

func (l *Logger) log(ctx context.Context, level slog.Level, action, message string, attrs []slog.Attr) {
	if ctx == nil {
		ctx = context.Background()
	}
	base := []slog.Attr{
		slog.String("timestamp", time.Now().UTC().Format(time.RFC3339)),
		slog.String("service", l.service),
		slog.String("hostname", l.hostname),
		slog.String("action", action),
	}
	l.handler.LogAttrs(ctx, level, message, append(base, attrs...)...)
}
