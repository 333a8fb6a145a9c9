package bot

import (
	"context"
	"log/slog"
)

// Dispatcher gates, routes and executes one event at a time. No error
// behind a single event may surface past Dispatch: handler and send
// failures are logged and the loop moves on.
type Dispatcher struct {
	router  *Router
	sender  Sender
	log     *slog.Logger
	allowed func(userID int64) bool
}

// NewDispatcher wires the router to the sender. allowed may be nil, which
// disables the allow-list gate.
func NewDispatcher(router *Router, sender Sender, log *slog.Logger, allowed func(int64) bool) *Dispatcher {
	return &Dispatcher{
		router:  router,
		sender:  sender,
		log:     log,
		allowed: allowed,
	}
}

func (d *Dispatcher) Dispatch(ctx context.Context, ev Event) {
	if d.allowed != nil && !d.allowed(ev.UserID) {
		d.log.Info("refused user", slog.Int64("user_id", ev.UserID))
		d.ack(ctx, ev)
		d.send(ctx, ev.ChatID, &Response{Text: msgRestricted})
		return
	}

	h, ok := d.router.Route(ev)
	if !ok {
		d.log.Warn("unhandled event dropped",
			slog.Int("kind", int(ev.Kind)),
			slog.String("name", ev.Name),
			slog.String("token", ev.Token),
			slog.Int64("user_id", ev.UserID),
		)
		return
	}

	d.ack(ctx, ev)

	resp, err := h(ctx, ev)
	if err != nil {
		d.log.Error("handler failed",
			slog.String("name", ev.Name),
			slog.String("token", ev.Token),
			slog.Int64("user_id", ev.UserID),
			slog.Any("err", err),
		)
		return
	}
	if resp == nil {
		return
	}

	d.send(ctx, ev.ChatID, resp)
}

func (d *Dispatcher) ack(ctx context.Context, ev Event) {
	if ev.Kind != EventCallback || ev.CallbackID == "" {
		return
	}
	if err := d.sender.AnswerCallback(ctx, ev.CallbackID); err != nil {
		d.log.Warn("answer callback failed", slog.Any("err", err))
	}
}

func (d *Dispatcher) send(ctx context.Context, chatID int64, resp *Response) {
	var err error
	if resp.Photo != "" {
		err = d.sender.SendPhoto(ctx, chatID, resp.Photo, resp.Text, resp.Buttons)
	} else {
		err = d.sender.SendMessage(ctx, chatID, resp.Text, resp.Buttons)
	}
	if err != nil {
		d.log.Error("send response failed", slog.Int64("chat_id", chatID), slog.Any("err", err))
	}
}
