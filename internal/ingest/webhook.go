package ingest

import (
	"context"
	"fmt"
	"log/slog"
)

// Webhook owns the provider-side push registration. The HTTP endpoint
// that receives the pushes lives in the api package; this type only
// manages the register/deregister lifecycle around it.
type Webhook struct {
	client    Client
	publicURL string
	secret    string
	log       *slog.Logger
}

func NewWebhook(client Client, publicURL, secret string, log *slog.Logger) *Webhook {
	return &Webhook{
		client:    client,
		publicURL: publicURL,
		secret:    secret,
		log:       log,
	}
}

// URL is the full push endpoint including the secret path segment.
func (w *Webhook) URL() string {
	return fmt.Sprintf("%s/webhook/%s", w.publicURL, w.secret)
}

// Start registers the push URL unconditionally, superseding whatever
// registration a previous run left behind.
func (w *Webhook) Start(ctx context.Context) error {
	if err := w.client.SetWebhook(ctx, w.URL(), true); err != nil {
		return fmt.Errorf("register webhook: %w", err)
	}
	w.log.Info("webhook registered", slog.String("url", w.publicURL+"/webhook/***"))
	return nil
}

// Stop deregisters best-effort. The process is exiting either way, so a
// failure is only logged.
func (w *Webhook) Stop(ctx context.Context) {
	if err := w.client.DeleteWebhook(ctx, true); err != nil {
		w.log.Warn("deregister webhook failed", slog.Any("err", err))
		return
	}
	w.log.Info("webhook deregistered")
}
