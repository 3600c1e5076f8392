package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/Alexandr-Snisarenko/subnet-failban/internal/config"
	"github.com/Alexandr-Snisarenko/subnet-failban/internal/ctxmeta"
)

// Logger — обёртка над slog.Logger.
// Методы *Context добавляют в запись request_id из контекста.
type Logger struct {
	*slog.Logger
}

// New пишет в stdout или, если задан logger.file, дописывает в этот файл.
// Если файл открыть не удалось, логгер пишет в stderr и сообщает об этом первой записью.
func New(cfg *config.Logger) *Logger {
	if cfg.File == "" {
		return NewWithWriter(os.Stdout, cfg)
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		l := NewWithWriter(os.Stderr, cfg)
		l.Warn("cannot open log file, using stderr", "file", cfg.File, "error", err)
		return l
	}
	return NewWithWriter(f, cfg)
}

func NewWithWriter(w io.Writer, cfg *config.Logger) *Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	var h slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return &Logger{Logger: slog.New(&requestIDHandler{Handler: h})}
}

// Nop возвращает логгер, который ничего не пишет (для тестов и утилит).
func Nop() *Logger {
	return NewWithWriter(io.Discard, &config.Logger{Level: "error"})
}

func (l *Logger) With(args ...any) *Logger {
	return &Logger{Logger: l.Logger.With(args...)}
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type requestIDHandler struct {
	slog.Handler
}

func (h *requestIDHandler) Handle(ctx context.Context, r slog.Record) error {
	if rid, ok := ctxmeta.RequestID(ctx); ok {
		r.AddAttrs(slog.String("request_id", rid))
	}
	return h.Handler.Handle(ctx, r)
}

func (h *requestIDHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &requestIDHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *requestIDHandler) WithGroup(name string) slog.Handler {
	return &requestIDHandler{Handler: h.Handler.WithGroup(name)}
}
