package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Logger is the logging interface passed to every component.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...interface{})
	Info(ctx context.Context, msg string, args ...interface{})
	Warn(ctx context.Context, msg string, args ...interface{})
	Error(ctx context.Context, msg string, args ...interface{})
}

// ctxKey is the context key for the request ID attached by the HTTP layer.
type ctxKey struct{}

// WithRequestID returns ctx carrying a request ID that the logger will emit
// with every line logged under that context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// RequestID extracts the request ID from ctx, or "" when none is set.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

type implLogger struct {
	zl zerolog.Logger
}

// New creates a Logger writing console-formatted output to stdout at the
// given level. Unknown levels fall back to info.
func New(level string) Logger {
	return NewWithWriter(level, zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"})
}

// NewWithWriter is New with an explicit destination, used by tests.
func NewWithWriter(level string, w io.Writer) Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return &implLogger{
		zl: zerolog.New(w).Level(lvl).With().Timestamp().Logger(),
	}
}

func (l *implLogger) log(ctx context.Context, ev *zerolog.Event, msg string, args []interface{}) {
	if id := RequestID(ctx); id != "" {
		ev = ev.Str("request_id", id)
	}
	ev.Msg(fmt.Sprintf(msg, args...))
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.log(ctx, l.zl.Debug(), msg, args)
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.log(ctx, l.zl.Info(), msg, args)
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.log(ctx, l.zl.Warn(), msg, args)
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.log(ctx, l.zl.Error(), msg, args)
}
