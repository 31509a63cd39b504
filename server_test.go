package main

import (
	"bytes"
	"encoding/json"
	"io"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio-chat/internal/analytics"
	"github.com/Zachkp/portfolio-chat/internal/chat"
	"github.com/Zachkp/portfolio-chat/internal/faq"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig() Config {
	return Config{
		Port:                "0",
		Env:                 "test",
		MatchSuggestions:    3,
		FallbackSuggestions: 5,
		ChatTimeout:         5 * time.Second,
		AnalyticsRetention:  365 * 24 * time.Hour,
		AdminUsername:       "admin",
		MetricsNamespace:    "portfolio_chat_test",
	}
}

func newTestServer(t *testing.T, cfg Config, events *analytics.Store) (*Server, *gin.Engine) {
	t.Helper()
	responder := chat.NewResponder(faq.Default(), chat.Options{
		MatchSuggestions:    cfg.MatchSuggestions,
		FallbackSuggestions: cfg.FallbackSuggestions,
		Shuffle:             rand.New(rand.NewPCG(1, 2)).Shuffle,
	})
	srv, err := NewServer(cfg, responder, events, NewMetrics(cfg.MetricsNamespace), zap.NewNop())
	require.NoError(t, err)
	return srv, srv.Router()
}

func newTestStore(t *testing.T) *analytics.Store {
	t.Helper()
	store, err := analytics.Open(filepath.Join(t.TempDir(), "chat.db"), "salt")
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, store.Close()) })
	return store
}

func postChat(t *testing.T, r http.Handler, body string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func transcript(t *testing.T, msgs ...chat.Message) string {
	t.Helper()
	b, err := json.Marshal(chatRequest{Messages: msgs})
	require.NoError(t, err)
	return string(b)
}

func userMsg(content string) chat.Message {
	return chat.Message{Role: chat.RoleUser, Content: content}
}

func decodeReply(t *testing.T, w *httptest.ResponseRecorder) chat.Reply {
	t.Helper()
	var reply chat.Reply
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reply))
	return reply
}

func suggestionIndexes(t *testing.T, reply chat.Reply) []int {
	t.Helper()
	out := make([]int, 0, len(reply.Suggestions))
	for _, s := range reply.Suggestions {
		i, ok := faq.Default().IndexOf(s.Question)
		require.True(t, ok, "unknown suggestion %q", s.Question)
		out = append(out, i)
	}
	return out
}

func TestChat_Match(t *testing.T) {
	_, r := newTestServer(t, testConfig(), nil)

	w := postChat(t, r, transcript(t, userMsg("Who are you?")))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")

	reply := decodeReply(t, w)
	assert.Equal(t, faq.Default().At(0).Answer, reply.Answer)
	require.Len(t, reply.Suggestions, 3)
	assert.NotContains(t, suggestionIndexes(t, reply), 0)
	for _, s := range reply.Suggestions {
		assert.NotEmpty(t, s.Answer)
	}
}

func TestChat_NoMatch(t *testing.T) {
	_, r := newTestServer(t, testConfig(), nil)

	w := postChat(t, r, transcript(t, userMsg("asdkfjaskdjf")))
	require.Equal(t, http.StatusOK, w.Code)

	reply := decodeReply(t, w)
	assert.Equal(t, chat.DefaultAnswer, reply.Answer)
	require.Len(t, reply.Suggestions, 5)
	suggestionIndexes(t, reply)
}

func TestChat_RepeatedQuestionExcludedFromSuggestions(t *testing.T) {
	_, r := newTestServer(t, testConfig(), nil)
	q := "Why did you leave your last company?"

	for i := 0; i < 20; i++ {
		w := postChat(t, r, transcript(t,
			userMsg(q),
			chat.Message{Role: chat.RoleAssistant, Content: faq.Default().At(2).Answer},
			userMsg(q),
		))
		require.Equal(t, http.StatusOK, w.Code)

		reply := decodeReply(t, w)
		assert.Equal(t, faq.Default().At(2).Answer, reply.Answer)
		assert.LessOrEqual(t, len(reply.Suggestions), 3)
		assert.NotContains(t, suggestionIndexes(t, reply), 2)
	}
}

func TestChat_InvalidInput(t *testing.T) {
	_, r := newTestServer(t, testConfig(), nil)

	bodies := map[string]string{
		"empty content":    transcript(t, userMsg("")),
		"whitespace":       transcript(t, userMsg("   ")),
		"no messages":      `{"messages":[]}`,
		"missing messages": `{}`,
		"assistant last":   transcript(t, userMsg("Who are you?"), chat.Message{Role: chat.RoleAssistant, Content: "hi"}),
	}
	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			w := postChat(t, r, body)
			require.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, `{"error":"No input provided","type":"invalid_input"}`, w.Body.String())
		})
	}
}

func TestChat_MalformedBody(t *testing.T) {
	_, r := newTestServer(t, testConfig(), nil)

	for _, body := range []string{"", "{", `{"messages":"hello"}`, `{"messages":[{"role":1}]}`} {
		w := postChat(t, r, body)
		require.Equal(t, http.StatusInternalServerError, w.Code, "body %q", body)

		var resp errorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "server_error", resp.Type)
		assert.True(t, strings.HasPrefix(resp.Error, "Internal Server Error: "), resp.Error)
	}
}

func TestRecovery_ReturnsServerError(t *testing.T) {
	_, r := newTestServer(t, testConfig(), nil)
	r.GET("/boom", func(*gin.Context) { panic("kaboom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal Server Error: panic: kaboom","type":"server_error"}`, w.Body.String())
}

func TestRequestID(t *testing.T) {
	_, r := newTestServer(t, testConfig(), nil)

	w := postChat(t, r, transcript(t, userMsg("email")), requestIDHeader, "abc-123")
	assert.Equal(t, "abc-123", w.Header().Get(requestIDHeader))

	w = postChat(t, r, transcript(t, userMsg("email")))
	assert.Len(t, w.Header().Get(requestIDHeader), 36)
}

func TestHealthAndQuestions(t *testing.T) {
	_, r := newTestServer(t, testConfig(), nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","corpus_size":21,"analytics_enabled":false}`, w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/questions", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var questions []chat.Suggestion
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &questions))
	require.Len(t, questions, 21)
	assert.Equal(t, "🧑‍💻 Who are you?", questions[0].Question)
}

func TestMetrics(t *testing.T) {
	_, r := newTestServer(t, testConfig(), nil)

	postChat(t, r, transcript(t, userMsg("Who are you?")))
	postChat(t, r, transcript(t, userMsg("zzzz")))
	postChat(t, r, transcript(t, userMsg("")))
	postChat(t, r, "{")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	for _, want := range []string{
		`portfolio_chat_test_chat_requests_total{outcome="matched"} 1`,
		`portfolio_chat_test_chat_requests_total{outcome="no_match"} 1`,
		`portfolio_chat_test_chat_requests_total{outcome="invalid_input"} 1`,
		`portfolio_chat_test_chat_requests_total{outcome="server_error"} 1`,
		`portfolio_chat_test_faq_corpus_records 21`,
		`portfolio_chat_test_chat_match_score_count 1`,
	} {
		assert.Contains(t, body, want)
	}
}

func TestAnalytics_RecordsChats(t *testing.T) {
	store := newTestStore(t)
	cfg := testConfig()
	cfg.AdminPassword = "s3cret"
	srv, r := newTestServer(t, cfg, store)

	postChat(t, r, transcript(t, userMsg("Who are you?")))
	postChat(t, r, transcript(t, userMsg("Who are you?")))
	postChat(t, r, transcript(t, userMsg("asdkfjaskdjf")))
	postChat(t, r, transcript(t, userMsg(" ")))
	postChat(t, r, transcript(t, userMsg("email")), "DNT", "1")
	srv.Wait()

	stats, err := store.Stats(t.Context())
	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.TotalChats)
	assert.Equal(t, int64(1), stats.UniqueVisitors)
	assert.Equal(t, int64(2), stats.Matched)
	assert.Equal(t, int64(1), stats.Unmatched)
	assert.Equal(t, int64(1), stats.InvalidInput)
	require.Len(t, stats.TopQuestions, 1)
	assert.Equal(t, analytics.QuestionStat{Question: "🧑‍💻 Who are you?", Count: 2}, stats.TopQuestions[0])
	require.Len(t, stats.RecentMisses, 1)
	assert.Equal(t, "asdkfjaskdjf", stats.RecentMisses[0].Query)
	assert.Equal(t, 5, stats.RecentMisses[0].Suggestions)
}

func adminLogin(t *testing.T, r http.Handler, username, password string) *httptest.ResponseRecorder {
	t.Helper()
	form := url.Values{"username": {username}, "password": {password}}
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAdmin(t *testing.T) {
	store := newTestStore(t)
	cfg := testConfig()
	cfg.AdminPassword = "s3cret"
	srv, r := newTestServer(t, cfg, store)

	postChat(t, r, transcript(t, userMsg("Who are you?")))
	srv.Wait()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/api/stats", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = adminLogin(t, r, "admin", "wrong")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, w.Result().Cookies())

	w = adminLogin(t, r, "admin", "s3cret")
	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, adminCookie, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	authed := func(method, path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, nil)
		req.AddCookie(cookies[0])
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	w = authed(http.MethodGet, "/admin/api/stats")
	require.Equal(t, http.StatusOK, w.Code)
	var stats analytics.Stats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, int64(1), stats.TotalChats)
	assert.Equal(t, int64(1), stats.Matched)

	w = authed(http.MethodGet, "/admin/export/stats")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment; filename=chat-stats-")

	w = authed(http.MethodPost, "/admin/privacy/cleanup")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"deleted":0}`, w.Body.String())

	w = authed(http.MethodGet, "/admin/logout")
	require.Equal(t, http.StatusOK, w.Code)
	require.NotEmpty(t, w.Result().Cookies())
	assert.Equal(t, -1, w.Result().Cookies()[0].MaxAge)
}

func TestAdmin_DisabledWithoutPassword(t *testing.T) {
	store := newTestStore(t)
	_, r := newTestServer(t, testConfig(), store)

	w := adminLogin(t, r, "admin", devAdminPassword)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.JSONEq(t, `{"status":"ok","corpus_size":21,"analytics_enabled":true}`, w.Body.String())
}

func TestStaticFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "widget.js"), []byte("console.log('chat')"), 0o644))

	cfg := testConfig()
	cfg.StaticDir = dir
	_, r := newTestServer(t, cfg, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/static/widget.js", nil))
	require.Equal(t, http.StatusOK, w.Code)
	body, err := io.ReadAll(w.Result().Body)
	require.NoError(t, err)
	assert.Equal(t, "console.log('chat')", string(bytes.TrimSpace(body)))
}
