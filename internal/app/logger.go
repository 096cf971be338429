package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/andyballingall/pathy/internal/fs"
)

const (
	LogFile   = ".pathy.log"
	LogEnvVar = "PATHY_LOG_FILE"
)

// logPath picks the log file: PATHY_LOG_FILE if set, otherwise LogFile in dir,
// otherwise LogFile in the temporary directory.
func logPath(env fs.EnvProvider, dir string) string {
	if p := env.Get(LogEnvVar); p != "" {
		return p
	}
	if dir == "" {
		dir = env.TempDir()
	}
	return filepath.Join(dir, LogFile)
}

// setupLogger returns a logger writing JSON debug records to the log file and
// terse messages to stderr. If the log file cannot be opened the logger still
// writes to stderr and the error is returned alongside it.
func setupLogger(stderr io.Writer, logLevel *slog.LevelVar, dir string, env fs.EnvProvider) (*slog.Logger, io.Closer, error) {
	console := &consoleHandler{w: stderr, level: logLevel}

	f, err := os.OpenFile(logPath(env, dir), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return slog.New(console), nil, err
	}

	file := slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(multiHandler{file, console}), f, nil
}

// multiHandler sends each record to every handler that accepts its level.
type multiHandler []slog.Handler

func (m multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

//nolint:gocritic // slog.Record is passed by value in the interface
func (m multiHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, h := range m {
		if !h.Enabled(ctx, record.Level) {
			continue
		}
		if err := h.Handle(ctx, record.Clone()); err != nil {
			return err
		}
	}
	return nil
}

func (m multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return m.each(func(h slog.Handler) slog.Handler { return h.WithAttrs(attrs) })
}

func (m multiHandler) WithGroup(name string) slog.Handler {
	return m.each(func(h slog.Handler) slog.Handler { return h.WithGroup(name) })
}

func (m multiHandler) each(fn func(slog.Handler) slog.Handler) multiHandler {
	out := make(multiHandler, len(m))
	for i, h := range m {
		out[i] = fn(h)
	}
	return out
}

// consoleHandler prints the message with a severity prefix. Errors are always
// appended; other attributes only at debug level.
type consoleHandler struct {
	w     io.Writer
	level *slog.LevelVar
	attrs []slog.Attr
}

func (c *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= c.level.Level()
}

//nolint:gocritic // slog.Record is passed by value in the interface
func (c *consoleHandler) Handle(_ context.Context, record slog.Record) error {
	prefix := ""
	switch {
	case record.Level >= slog.LevelError:
		prefix = "Error: "
	case record.Level >= slog.LevelWarn:
		prefix = "Warning: "
	}

	line := prefix + record.Message
	for _, a := range c.attrs {
		line += c.formatAttr(a)
	}
	record.Attrs(func(a slog.Attr) bool {
		line += c.formatAttr(a)
		return true
	})

	_, err := fmt.Fprintln(c.w, line)
	return err
}

func (c *consoleHandler) formatAttr(a slog.Attr) string {
	switch {
	case a.Key == "error" || a.Key == "err":
		return fmt.Sprintf(": %v", a.Value)
	case c.level.Level() <= slog.LevelDebug:
		return fmt.Sprintf(" %s=%v", a.Key, a.Value)
	default:
		return ""
	}
}

func (c *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(c.attrs)+len(attrs))
	merged = append(merged, c.attrs...)
	return &consoleHandler{w: c.w, level: c.level, attrs: append(merged, attrs...)}
}

func (c *consoleHandler) WithGroup(_ string) slog.Handler {
	return c
}
