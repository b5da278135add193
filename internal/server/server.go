// Package server exposes the portfolio content and contact relay over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/verte-zerg/termfolio/internal/contact"
	"github.com/verte-zerg/termfolio/internal/content"
	"github.com/verte-zerg/termfolio/internal/model"
)

// DefaultAddr is the listen address used when none is configured.
const DefaultAddr = ":8080"

// DefaultRatePerMinute bounds contact submissions per client.
const DefaultRatePerMinute = 5

const shutdownTimeout = 5 * time.Second

// Recorder stores submission attempts.
type Recorder interface {
	RecordMessage(ctx context.Context, entry model.OutboxEntry) (string, error)
}

// Options configures a Server.
type Options struct {
	Content       content.Content
	Sender        contact.Sender
	Recorder      Recorder
	RatePerMinute int
	Now           func() time.Time
}

// Server serves the JSON API.
type Server struct {
	content  content.Content
	sender   contact.Sender
	recorder Recorder
	limiter  *clientLimiter
	engine   *gin.Engine
	now      func() time.Time
}

// New builds the router. A nil Sender makes every contact request fail with
// a not-configured error.
func New(opts Options) *Server {
	perMinute := opts.RatePerMinute
	if perMinute <= 0 {
		perMinute = DefaultRatePerMinute
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	s := &Server{
		content:  opts.Content,
		sender:   opts.Sender,
		recorder: opts.Recorder,
		limiter:  newClientLimiter(perMinute, now),
		now:      now,
	}

	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery())
	api := engine.Group("/api")
	api.GET("/profile", s.handleProfile)
	api.GET("/categories", s.handleCategories)
	api.GET("/projects", s.handleProjects)
	api.GET("/timeline", s.handleTimeline)
	api.POST("/contact", s.limiter.middleware(), s.handleContact)
	s.engine = engine
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run listens on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	if addr == "" {
		addr = DefaultAddr
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		log.Printf("listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to serve: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down: %w", err)
		}
		return nil
	}
}
