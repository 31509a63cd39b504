package main

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio-chat/internal/analytics"
	"github.com/Zachkp/portfolio-chat/internal/chat"
)

const (
	errTypeInvalidInput = "invalid_input"
	errTypeServerError  = "server_error"
)

type chatRequest struct {
	Messages []chat.Message `json:"messages"`
}

type errorResponse struct {
	Error string `json:"error"`
	Type  string `json:"type"`
}

// handleChat answers the last user message of the posted transcript.
func (s *Server) handleChat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.metrics.ChatRequests.WithLabelValues(errTypeServerError).Inc()
		s.serverError(c, fmt.Errorf("decoding chat request: %w", err))
		return
	}

	reply, err := s.responder.Respond(req.Messages)
	if errors.Is(err, chat.ErrInvalidInput) {
		s.metrics.ChatRequests.WithLabelValues(errTypeInvalidInput).Inc()
		s.record(c, analytics.Event{
			Query:        chat.ActiveQuery(req.Messages),
			Outcome:      analytics.OutcomeInvalidInput,
			MatchedIndex: -1,
		})
		c.JSON(http.StatusBadRequest, errorResponse{Error: "No input provided", Type: errTypeInvalidInput})
		return
	}
	if err != nil {
		s.metrics.ChatRequests.WithLabelValues(errTypeServerError).Inc()
		s.serverError(c, err)
		return
	}

	ev := analytics.Event{
		Query:        reply.Query,
		MatchedIndex: reply.Index,
		Suggestions:  len(reply.Suggestions),
	}
	outcome := analytics.OutcomeNoMatch
	if reply.Matched {
		outcome = analytics.OutcomeMatched
		ev.MatchedQuestion = s.responder.Corpus().At(reply.Index).Question
		s.metrics.MatchScore.Observe(float64(reply.Score))
	}
	ev.Outcome = outcome

	s.metrics.ChatRequests.WithLabelValues(string(outcome)).Inc()
	s.metrics.Suggestions.WithLabelValues(string(outcome)).Observe(float64(len(reply.Suggestions)))
	s.logger.Debug("chat reply",
		zap.String("request_id", requestID(c)),
		zap.String("outcome", string(outcome)),
		zap.Int("index", reply.Index),
		zap.Int("score", reply.Score),
		zap.Int("suggestions", len(reply.Suggestions)),
	)
	s.record(c, ev)

	c.JSON(http.StatusOK, reply)
}

// handleQuestions lists every question with its answer, for the widget's
// landing screen.
func (s *Server) handleQuestions(c *gin.Context) {
	records := s.responder.Corpus().Records()
	out := make([]chat.Suggestion, len(records))
	for i, r := range records {
		out[i] = chat.Suggestion{Question: r.Question, Answer: r.Answer}
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) serverError(c *gin.Context, err error) {
	s.logger.Error("request failed",
		zap.String("request_id", requestID(c)),
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	_ = c.Error(err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse{
		Error: "Internal Server Error: " + err.Error(),
		Type:  errTypeServerError,
	})
}
