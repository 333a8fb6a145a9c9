package api

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/dwikikusuma/shopbot/internal/telegram"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type recordingUpdates struct {
	updates []telegram.Update
}

func (r *recordingUpdates) HandleUpdate(ctx context.Context, upd telegram.Update) {
	r.updates = append(r.updates, upd)
}

func TestLiveness(t *testing.T) {
	srv := NewServer(nil, "", slog.Default())
	rec := httptest.NewRecorder()

	srv.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != "ok" {
		t.Fatalf("expected body ok, got %q", rec.Body.String())
	}
}

func TestWebhookRouteAbsentInPollingMode(t *testing.T) {
	srv := NewServer(nil, "", slog.Default())
	rec := httptest.NewRecorder()

	req := httptest.NewRequest(http.MethodPost, "/webhook/anything", strings.NewReader("{}"))
	srv.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestWebhookEndpoint(t *testing.T) {
	payload := `{"update_id":5,"message":{"message_id":1,"chat":{"id":42},"from":{"id":42},"text":"/menu"}}`

	t.Run("wrong secret -> 404, nothing dispatched", func(t *testing.T) {
		updates := &recordingUpdates{}
		srv := NewServer(updates, "s3cret", slog.Default())
		rec := httptest.NewRecorder()

		req := httptest.NewRequest(http.MethodPost, "/webhook/wrong", strings.NewReader(payload))
		srv.Routes().ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		if len(updates.updates) != 0 {
			t.Fatalf("expected no dispatch, got %d", len(updates.updates))
		}
	})

	t.Run("correct secret dispatches and acks", func(t *testing.T) {
		updates := &recordingUpdates{}
		srv := NewServer(updates, "s3cret", slog.Default())
		rec := httptest.NewRecorder()

		req := httptest.NewRequest(http.MethodPost, "/webhook/s3cret", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		srv.Routes().ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if len(updates.updates) != 1 || updates.updates[0].UpdateID != 5 {
			t.Fatalf("unexpected updates: %+v", updates.updates)
		}
	})

	t.Run("malformed payload -> 400", func(t *testing.T) {
		updates := &recordingUpdates{}
		srv := NewServer(updates, "s3cret", slog.Default())
		rec := httptest.NewRecorder()

		req := httptest.NewRequest(http.MethodPost, "/webhook/s3cret", strings.NewReader("{not json"))
		req.Header.Set("Content-Type", "application/json")
		srv.Routes().ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		if len(updates.updates) != 0 {
			t.Fatalf("expected no dispatch, got %d", len(updates.updates))
		}
	})
}
