package logctx

import (
	"context"
	"log/slog"
)

// Handler decorates an slog.Handler with attributes carried on the
// context, so every log line emitted while handling a Telegram update
// names the chat and operation without each call site repeating them.
type Handler struct {
	slog.Handler
}

func (h Handler) Handle(ctx context.Context, r slog.Record) error {
	if cd, ok := ctx.Value(chatDataKey{}).(*ChatData); ok {
		r.AddAttrs(slog.Group("chat",
			slog.Int64("id", cd.ChatID),
			slog.String("username", cd.Username),
		))
	}

	if ud, ok := ctx.Value(updateDataKey{}).(*UpdateData); ok {
		r.AddAttrs(slog.Group("update",
			slog.Int("id", ud.UpdateID),
			slog.String("kind", ud.Kind),
			slog.String("file", ud.FileName),
		))
	}

	if cv, ok := ctx.Value(conversionDataKey{}).(*ConversionData); ok {
		r.AddAttrs(slog.Group("conv",
			slog.String("from", cv.From),
			slog.String("to", cv.To),
		))
	}

	return h.Handler.Handle(ctx, r)
}

type chatDataKey struct{}

type ChatData struct {
	ChatID   int64
	Username string
}

func WithChatData(ctx context.Context, data *ChatData) context.Context {
	return context.WithValue(ctx, chatDataKey{}, data)
}

type updateDataKey struct{}

type UpdateData struct {
	UpdateID int
	Kind     string // "command", "document", "text", "callback"
	FileName string
}

func WithUpdateData(ctx context.Context, data *UpdateData) context.Context {
	return context.WithValue(ctx, updateDataKey{}, data)
}

type conversionDataKey struct{}

type ConversionData struct {
	From string
	To   string
}

func WithConversionData(ctx context.Context, data *ConversionData) context.Context {
	return context.WithValue(ctx, conversionDataKey{}, data)
}
