package term

import (
	"context"
	"log/slog"
)

// Slog wraps a Term as a slog.LogValuer to not render term strings unless
// they definitely need to be logged
func Slog(t *Term) slog.LogValuer {
	return termLogValuer{t}
}

type termLogValuer struct{ term *Term }

func (l termLogValuer) LogValue() slog.Value {
	return slog.StringValue(l.term.String())
}

// SlogHandler is a slog.Handler capable of lazy-printing terms
func SlogHandler(underlying slog.Handler) slog.Handler {
	return &termLogHandler{underlying: underlying}
}

func SlogLogger(underlying *slog.Logger) *slog.Logger {
	return slog.New(SlogHandler(underlying.Handler()))
}

type termLogHandler struct {
	underlying slog.Handler
}

func (l *termLogHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return l.underlying.Enabled(ctx, level)
}

func (l *termLogHandler) Handle(ctx context.Context, record slog.Record) error {
	newRecord := slog.NewRecord(record.Time, record.Level, record.Message, record.PC)
	// for each attr, wrap it in Slog if it is an Any holding a *Term
	record.Attrs(func(attr slog.Attr) bool {
		if attr.Value.Kind() == slog.KindAny {
			if asTerm, isTerm := attr.Value.Any().(*Term); isTerm {
				newRecord.Add(attr.Key, Slog(asTerm))
				return true
			}
		}
		newRecord.Add(attr)
		return true
	})
	return l.underlying.Handle(ctx, newRecord)
}

func (l *termLogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	for i, attr := range attrs {
		if attr.Value.Kind() == slog.KindAny {
			if asTerm, isTerm := attr.Value.Any().(*Term); isTerm {
				attr.Value = slog.AnyValue(Slog(asTerm))
				attrs[i] = attr
			}
		}
	}
	return SlogHandler(l.underlying.WithAttrs(attrs))
}

func (l *termLogHandler) WithGroup(name string) slog.Handler {
	return SlogHandler(l.underlying.WithGroup(name))
}
