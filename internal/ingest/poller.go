package ingest

import (
	"context"
	"log/slog"
	"time"
)

const (
	defaultPollTimeout = 25 * time.Second
	errBackoff         = 2 * time.Second
)

// Poller pulls update batches in a loop and dispatches them sequentially
// in arrival order. The acknowledged offset only advances after a batch
// is fully dispatched, so a crash mid-batch redelivers on restart
// (at-least-once).
type Poller struct {
	client      Client
	updates     *UpdateDispatcher
	log         *slog.Logger
	pollTimeout time.Duration
}

func NewPoller(client Client, updates *UpdateDispatcher, log *slog.Logger) *Poller {
	return &Poller{
		client:      client,
		updates:     updates,
		log:         log,
		pollTimeout: defaultPollTimeout,
	}
}

// Run blocks until ctx is done. Fetch failures back off and retry; no
// per-event failure stops the loop.
func (p *Poller) Run(ctx context.Context) error {
	// A previous run may have left a push registration behind; polling
	// and webhook delivery are mutually exclusive on the provider side.
	if err := p.client.DeleteWebhook(ctx, true); err != nil {
		p.log.Warn("clear stale webhook failed", slog.Any("err", err))
	}

	var offset int64
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		updates, err := p.client.GetUpdates(ctx, offset, p.pollTimeout)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			p.log.Error("get updates failed", slog.Any("err", err))
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(errBackoff):
			}
			continue
		}

		for _, upd := range updates {
			p.updates.HandleUpdate(ctx, upd)
		}
		if n := len(updates); n > 0 {
			offset = updates[n-1].UpdateID + 1
		}
	}
}
