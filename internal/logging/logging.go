// Package logging builds the run logger: INFO and up to the console,
// DEBUG and up to a size-rotated file.
package logging

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

type Options struct {
	// File is the log path; empty disables the file sink.
	File       string
	MaxSizeMB  int
	MaxBackups int

	Console      io.Writer
	ConsoleLevel slog.Level
	FileLevel    slog.Level
}

func DefaultOptions() Options {
	return Options{
		File:         "canvas_notion_sync.log",
		MaxSizeMB:    50,
		MaxBackups:   5,
		ConsoleLevel: slog.LevelInfo,
		FileLevel:    slog.LevelDebug,
	}
}

// New returns the logger and a closer for the file sink.
func New(opts Options) (*slog.Logger, io.Closer) {
	var handlers []slog.Handler
	var closer io.Closer = nopCloser{}

	if opts.Console != nil {
		handlers = append(handlers, slog.NewTextHandler(opts.Console, &slog.HandlerOptions{
			AddSource: true,
			Level:     opts.ConsoleLevel,
		}))
	}

	if opts.File != "" {
		lj := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
		}
		closer = lj
		handlers = append(handlers, slog.NewTextHandler(lj, &slog.HandlerOptions{
			AddSource: true,
			Level:     opts.FileLevel,
		}))
	}

	return slog.New(fanout(handlers)), closer
}

// Discard is a logger that drops everything. Handy in tests.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

type fanout []slog.Handler

func (f fanout) Enabled(ctx context.Context, l slog.Level) bool {
	for _, h := range f {
		if h.Enabled(ctx, l) {
			return true
		}
	}
	return false
}

func (f fanout) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, h := range f {
		if h.Enabled(ctx, r.Level) {
			if err := h.Handle(ctx, r.Clone()); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

func (f fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

func (f fanout) WithGroup(name string) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithGroup(name)
	}
	return out
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
