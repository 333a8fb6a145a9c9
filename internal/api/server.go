// Package api is the process's HTTP surface: the liveness probe the
// hosting platform polls, and (in webhook mode) the push endpoint the
// chat provider delivers updates to.
package api

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dwikikusuma/shopbot/internal/telegram"
)

type UpdateHandler interface {
	HandleUpdate(ctx context.Context, upd telegram.Update)
}

type Server struct {
	updates UpdateHandler
	secret  string
	log     *slog.Logger
}

// NewServer builds the HTTP surface. updates may be nil in polling mode;
// the webhook route is then not mounted at all.
func NewServer(updates UpdateHandler, secret string, log *slog.Logger) *Server {
	return &Server{
		updates: updates,
		secret:  secret,
		log:     log,
	}
}

func (s *Server) Routes() http.Handler {
	engine := gin.New()
	engine.Use(gin.Recovery())

	// Liveness for the hosting platform. Must not touch cart or provider
	// state.
	engine.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	if s.updates != nil {
		engine.POST("/webhook/:secret", s.handleWebhook)
	}

	return engine
}

func (s *Server) handleWebhook(c *gin.Context) {
	got := c.Param("secret")
	if subtle.ConstantTimeCompare([]byte(got), []byte(s.secret)) != 1 {
		// an unauthenticated push must never reach the router
		c.Status(http.StatusNotFound)
		return
	}

	var upd telegram.Update
	if err := c.ShouldBindJSON(&upd); err != nil {
		s.log.Warn("bad webhook payload", slog.Any("err", err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	s.updates.HandleUpdate(c.Request.Context(), upd)
	c.Status(http.StatusOK)
}
