package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio-chat/internal/analytics"
	"github.com/Zachkp/portfolio-chat/internal/chat"
)

const (
	recordTimeout   = 5 * time.Second
	shutdownTimeout = 10 * time.Second
)

// Server serves the chat API, the operational endpoints and, when analytics
// is enabled, the admin area.
type Server struct {
	cfg       Config
	responder *chat.Responder
	events    *analytics.Store
	metrics   *Metrics
	logger    *zap.Logger
	admin     *adminAuth

	// pending tracks analytics writes still in flight.
	pending sync.WaitGroup
}

// NewServer wires the server. events may be nil to disable analytics and the
// admin area.
func NewServer(cfg Config, responder *chat.Responder, events *analytics.Store, metrics *Metrics, logger *zap.Logger) (*Server, error) {
	s := &Server{
		cfg:       cfg,
		responder: responder,
		events:    events,
		metrics:   metrics,
		logger:    logger,
	}
	if events != nil {
		admin, err := newAdminAuth(cfg, logger)
		if err != nil {
			return nil, err
		}
		s.admin = admin
	}
	metrics.CorpusSize.Set(float64(responder.Corpus().Len()))
	return s, nil
}

func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(requestLogger(s.logger), gin.CustomRecovery(s.recoverPanic))

	if s.cfg.StaticDir != "" {
		r.Static("/static", s.cfg.StaticDir)
	}

	r.GET("/healthz", s.handleHealth)
	r.GET("/metrics", gin.WrapH(s.metrics.Handler()))

	r.GET("/api/questions", s.handleQuestions)
	r.POST("/api/chat", s.handleChat)

	if s.admin != nil {
		s.setupAdminRoutes(r)
	}
	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully and waits for
// pending analytics writes.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              ":" + s.cfg.Port,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       s.cfg.ChatTimeout,
		WriteTimeout:      s.cfg.ChatTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	err := srv.Shutdown(shutdownCtx)
	s.Wait()
	return err
}

// Wait blocks until every analytics write started so far has finished.
func (s *Server) Wait() {
	s.pending.Wait()
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":            "ok",
		"corpus_size":       s.responder.Corpus().Len(),
		"analytics_enabled": s.events != nil,
	})
}

// record stores ev off the request path. Visitors sending DNT are not
// recorded.
func (s *Server) record(c *gin.Context, ev analytics.Event) {
	if s.events == nil || c.GetHeader("DNT") == "1" {
		return
	}
	ev.HashedIP = s.events.HashIP(c.ClientIP())
	reqID := requestID(c)

	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
		defer cancel()
		if err := s.events.Record(ctx, ev); err != nil {
			s.logger.Error("recording chat event", zap.String("request_id", reqID), zap.Error(err))
		}
	}()
}

func (s *Server) recoverPanic(c *gin.Context, recovered any) {
	if c.FullPath() == "/api/chat" {
		s.metrics.ChatRequests.WithLabelValues(errTypeServerError).Inc()
	}
	s.serverError(c, fmt.Errorf("panic: %v", recovered))
}
