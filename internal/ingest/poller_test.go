package ingest

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/dwikikusuma/shopbot/internal/bot"
	"github.com/dwikikusuma/shopbot/internal/telegram"
)

type fakeClient struct {
	mu sync.Mutex

	batches [][]telegram.Update
	offsets []int64

	webhookSet     []string
	webhookDeleted int

	// cancel stops the poller once all batches are consumed
	cancel context.CancelFunc
}

func (f *fakeClient) GetUpdates(ctx context.Context, offset int64, timeout time.Duration) ([]telegram.Update, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.offsets = append(f.offsets, offset)
	if len(f.batches) == 0 {
		if f.cancel != nil {
			f.cancel()
		}
		return nil, nil
	}
	batch := f.batches[0]
	f.batches = f.batches[1:]
	return batch, nil
}

func (f *fakeClient) SetWebhook(ctx context.Context, url string, dropPending bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.webhookSet = append(f.webhookSet, url)
	return nil
}

func (f *fakeClient) DeleteWebhook(ctx context.Context, dropPending bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.webhookDeleted++
	return nil
}

type recordingEvents struct {
	mu     sync.Mutex
	events []bot.Event
}

func (r *recordingEvents) Dispatch(ctx context.Context, ev bot.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func commandUpdate(id, userID int64, text string) telegram.Update {
	return telegram.Update{
		UpdateID: id,
		Message: &telegram.Message{
			From: &telegram.User{ID: userID},
			Chat: telegram.Chat{ID: userID},
			Text: text,
		},
	}
}

func TestPollerRun(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client := &fakeClient{
		cancel: cancel,
		batches: [][]telegram.Update{
			{commandUpdate(10, 1, "/start"), commandUpdate(11, 1, "/menu")},
			{commandUpdate(12, 2, "/cart")},
		},
	}
	events := &recordingEvents{}
	p := NewPoller(client, NewUpdateDispatcher(events, slog.Default()), slog.Default())

	if err := p.Run(ctx); err != nil {
		t.Fatalf("run: %v", err)
	}

	t.Run("stale registration cleared before polling", func(t *testing.T) {
		if client.webhookDeleted == 0 {
			t.Fatal("expected DeleteWebhook before the poll loop")
		}
		if len(client.offsets) == 0 {
			t.Fatal("expected at least one GetUpdates call")
		}
	})

	t.Run("events dispatched in arrival order", func(t *testing.T) {
		if len(events.events) != 3 {
			t.Fatalf("expected 3 events, got %d", len(events.events))
		}
		names := []string{events.events[0].Name, events.events[1].Name, events.events[2].Name}
		if names[0] != "start" || names[1] != "menu" || names[2] != "cart" {
			t.Fatalf("unexpected order: %v", names)
		}
	})

	t.Run("offset advances only after a full batch", func(t *testing.T) {
		// calls: offset 0, then 12 (after first batch), then 13
		if client.offsets[0] != 0 {
			t.Fatalf("expected first offset 0, got %d", client.offsets[0])
		}
		if client.offsets[1] != 12 {
			t.Fatalf("expected offset 12 after first batch, got %d", client.offsets[1])
		}
		if client.offsets[2] != 13 {
			t.Fatalf("expected offset 13 after second batch, got %d", client.offsets[2])
		}
	})
}

func TestPollerStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := &fakeClient{}
	p := NewPoller(client, NewUpdateDispatcher(&recordingEvents{}, slog.Default()), slog.Default())

	done := make(chan error, 1)
	go func() { done <- p.Run(ctx) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("poller did not stop on cancel")
	}
}

func TestWebhookLifecycle(t *testing.T) {
	ctx := context.Background()
	client := &fakeClient{}
	w := NewWebhook(client, "https://bot.example.com", "s3cret", slog.Default())

	if err := w.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}
	if len(client.webhookSet) != 1 || client.webhookSet[0] != "https://bot.example.com/webhook/s3cret" {
		t.Fatalf("unexpected registration: %v", client.webhookSet)
	}

	w.Stop(ctx)
	if client.webhookDeleted != 1 {
		t.Fatalf("expected one deregistration, got %d", client.webhookDeleted)
	}
}
