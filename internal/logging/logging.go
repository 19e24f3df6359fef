// Package logging builds the application slog logger.
package logging

import (
	"io"
	"log/slog"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Formats accepted by Options.Format.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// Options controls logger construction.
//
// File, when set, receives a copy of every record through a size-rotated
// writer (10 MB per file, 3 backups, 28 days).
type Options struct {
	Level  slog.Level
	Format string
	File   string
}

// New returns a logger writing to out and, if configured, to a rotating file.
// The returned closer releases the file; it is a no-op otherwise.
func New(out io.Writer, opts Options) (*slog.Logger, io.Closer) {
	var closer io.Closer = nopCloser{}
	w := out
	if strings.TrimSpace(opts.File) != "" {
		lj := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
			Compress:   true,
		}
		w = io.MultiWriter(out, lj)
		closer = lj
	}

	ho := &slog.HandlerOptions{Level: opts.Level}
	var h slog.Handler
	switch strings.ToLower(opts.Format) {
	case FormatText:
		h = slog.NewTextHandler(w, ho)
	default:
		h = slog.NewJSONHandler(w, ho)
	}
	return slog.New(h), closer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
