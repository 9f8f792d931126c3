package logctx

import (
	"context"
	"log/slog"
)

// Handler decorates records with the request and card attributes stored in
// the context.
type Handler struct {
	slog.Handler
}

func (h Handler) Handle(ctx context.Context, r slog.Record) error {
	if rd, ok := ctx.Value(requestDataKey{}).(*RequestData); ok {
		r.AddAttrs(slog.Group("req",
			slog.String("id", rd.RequestID),
			slog.String("method", rd.Method),
			slog.String("user_agent", rd.UserAgent),
			slog.String("remote_addr", rd.RemoteAddr),
			slog.String("path", rd.Path),
		))
	}

	if cd, ok := ctx.Value(cardDataKey{}).(*CardData); ok {
		r.AddAttrs(slog.Group("card",
			slog.String("name", cd.Name),
			slog.String("kind", cd.Kind),
			slog.String("format", cd.Format),
			slog.String("lang", cd.LanguageCode),
		))
	}

	return h.Handler.Handle(ctx, r)
}

// WithAttrs keeps the decoration on derived handlers.
func (h Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return Handler{h.Handler.WithAttrs(attrs)}
}

// WithGroup keeps the decoration on derived handlers.
func (h Handler) WithGroup(name string) slog.Handler {
	return Handler{h.Handler.WithGroup(name)}
}

type requestDataKey struct{}

type RequestData struct {
	RequestID  string
	Method     string
	UserAgent  string
	RemoteAddr string
	Path       string
}

func WithRequestData(ctx context.Context, data *RequestData) context.Context {
	return context.WithValue(ctx, requestDataKey{}, data)
}

type cardDataKey struct{}

// CardData describes the card being rendered.
type CardData struct {
	Name         string
	Kind         string
	Format       string
	LanguageCode string
}

func WithCardData(ctx context.Context, data *CardData) context.Context {
	return context.WithValue(ctx, cardDataKey{}, data)
}
