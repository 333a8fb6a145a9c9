// Package ingest feeds provider updates into the dispatch pipeline, in
// one of two mutually exclusive modes: a long-poll loop or a webhook
// registration whose pushes arrive through the HTTP server.
package ingest

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/dwikikusuma/shopbot/internal/bot"
	"github.com/dwikikusuma/shopbot/internal/telegram"
)

// Client is the slice of the transport the adapters need.
type Client interface {
	GetUpdates(ctx context.Context, offset int64, timeout time.Duration) ([]telegram.Update, error)
	SetWebhook(ctx context.Context, url string, dropPending bool) error
	DeleteWebhook(ctx context.Context, dropPending bool) error
}

type EventDispatcher interface {
	Dispatch(ctx context.Context, ev bot.Event)
}

// UpdateDispatcher normalizes raw updates and hands them to the bot
// dispatcher. Updates that carry neither a command nor a callback are
// dropped here.
type UpdateDispatcher struct {
	events EventDispatcher
	log    *slog.Logger
}

func NewUpdateDispatcher(events EventDispatcher, log *slog.Logger) *UpdateDispatcher {
	return &UpdateDispatcher{events: events, log: log}
}

func (d *UpdateDispatcher) HandleUpdate(ctx context.Context, upd telegram.Update) {
	ev, ok := Normalize(upd)
	if !ok {
		d.log.Debug("update dropped", slog.Int64("update_id", upd.UpdateID))
		return
	}
	d.events.Dispatch(ctx, ev)
}

// Normalize converts one provider update into a typed Event. The second
// return is false for updates this bot does not consume (plain text,
// joins, edits and so on).
func Normalize(upd telegram.Update) (bot.Event, bool) {
	if msg := upd.Message; msg != nil && strings.HasPrefix(msg.Text, "/") {
		name, args := splitCommand(msg.Text)
		userID := msg.Chat.ID
		if msg.From != nil {
			userID = msg.From.ID
		}
		return bot.Event{
			Kind:   bot.EventCommand,
			Name:   name,
			Args:   args,
			UserID: userID,
			ChatID: msg.Chat.ID,
		}, true
	}

	if cb := upd.CallbackQuery; cb != nil && cb.Data != "" {
		chatID := cb.From.ID
		if cb.Message != nil {
			chatID = cb.Message.Chat.ID
		}
		return bot.Event{
			Kind:       bot.EventCallback,
			Token:      cb.Data,
			CallbackID: cb.ID,
			UserID:     cb.From.ID,
			ChatID:     chatID,
		}, true
	}

	return bot.Event{}, false
}

func splitCommand(text string) (name, args string) {
	text = strings.TrimPrefix(text, "/")
	if i := strings.IndexByte(text, ' '); i >= 0 {
		name, args = text[:i], strings.TrimSpace(text[i+1:])
	} else {
		name = text
	}
	// strip the @botname suffix used in group chats
	if i := strings.IndexByte(name, '@'); i >= 0 {
		name = name[:i]
	}
	return name, args
}
