package logging

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// ZerologLogger adapts a zerolog.Logger to the Logger interface.
type ZerologLogger struct {
	l zerolog.Logger
}

// NewZerologLogger builds a configured zerolog-backed logger. The dev
// environment enables debug level.
func NewZerologLogger(appEnv string) *ZerologLogger {
	level := zerolog.InfoLevel
	if appEnv == "dev" {
		level = zerolog.DebugLevel
	}
	zerolog.TimeFieldFormat = time.RFC3339
	l := zerolog.New(os.Stderr).With().Timestamp().Logger().Level(level)
	return &ZerologLogger{l: l}
}

func (z *ZerologLogger) emit(e *zerolog.Event, msg string, args []any) {
	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			continue
		}
		e = e.Interface(key, args[i+1])
	}
	e.Msg(msg)
}

func (z *ZerologLogger) Debug(ctx context.Context, msg string, args ...any) {
	z.emit(z.l.Debug(), msg, args)
}

func (z *ZerologLogger) Info(ctx context.Context, msg string, args ...any) {
	z.emit(z.l.Info(), msg, args)
}

func (z *ZerologLogger) Warn(ctx context.Context, msg string, args ...any) {
	z.emit(z.l.Warn(), msg, args)
}

func (z *ZerologLogger) Error(ctx context.Context, msg string, args ...any) {
	z.emit(z.l.Error(), msg, args)
}

func (z *ZerologLogger) With(args ...any) Logger {
	c := z.l.With()
	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			continue
		}
		c = c.Interface(key, args[i+1])
	}
	return &ZerologLogger{l: c.Logger()}
}
