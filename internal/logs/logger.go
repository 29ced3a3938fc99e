// Package logs builds the structured logger used by the CLI.
//
// Records fan out to a text handler on the terminal, an optional JSON
// handler (usually a log file) and an optional systemd journal handler.
package logs

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"
)

// Options selects the log sinks.
type Options struct {
	Level   slog.Leveler // Minimum level for every sink (default: info)
	Writer  io.Writer    // Text output, usually os.Stderr; nil disables it
	JSON    io.Writer    // JSON output, usually a file; nil disables it
	Journal bool         // Also log to the systemd journal
}

// New returns a logger writing to every sink enabled in opts.
//
// Failure to connect to the journal is reported on the remaining sinks and
// is not fatal. With no sinks enabled the logger discards everything.
func New(opts Options) *slog.Logger {
	level := opts.Level
	if level == nil {
		level = slog.LevelInfo
	}
	handlerOpts := &slog.HandlerOptions{Level: level}

	var handlers []slog.Handler
	if opts.Writer != nil {
		handlers = append(handlers, slog.NewTextHandler(opts.Writer, handlerOpts))
	}
	if opts.JSON != nil {
		handlers = append(handlers, slog.NewJSONHandler(opts.JSON, handlerOpts))
	}

	if opts.Journal {
		journalHandler, err := slogjournal.NewHandler(&slogjournal.Options{
			ReplaceGroup: func(key string) string {
				return toJournalKey(key)
			},
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				a.Key = toJournalKey(a.Key)
				return a
			},
		})
		if err != nil {
			warnAll(handlers, "open systemd journal", err)
		} else {
			handlers = append(handlers, journalHandler)
		}
	}

	if len(handlers) == 0 {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slogmulti.Fanout(handlers...))
}

func warnAll(handlers []slog.Handler, msg string, err error) {
	record := slog.NewRecord(time.Now(), slog.LevelWarn, msg, 0)
	record.Add("error", err)
	for _, h := range handlers {
		if h.Enabled(context.Background(), slog.LevelWarn) {
			_ = h.Handle(context.Background(), record)
		}
	}
}

// toJournalKey maps an attribute key to a valid journal field name.
func toJournalKey(str string) string {
	str = strings.ToUpper(str)
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' ||
			r >= '0' && r <= '9' {
			return r
		}
		return '_'
	}, str)
}
