// Package analytics records chat outcomes in SQLite so the portfolio owner can
// see which questions get asked and which ones the FAQ fails to answer.
// Visitors are identified only by a salted hash of their IP address.
package analytics

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver
)

// Outcome of a chat request.
type Outcome string

const (
	OutcomeMatched      Outcome = "matched"
	OutcomeNoMatch      Outcome = "no_match"
	OutcomeInvalidInput Outcome = "invalid_input"
)

// maxQueryRunes bounds how much of a visitor's text is kept.
const maxQueryRunes = 280

// Event is one recorded chat request.
type Event struct {
	ID              int64     `json:"id"`
	HashedIP        string    `json:"hashed_ip"`
	Query           string    `json:"query"`
	Outcome         Outcome   `json:"outcome"`
	MatchedIndex    int       `json:"matched_index"`
	MatchedQuestion string    `json:"matched_question,omitempty"`
	Suggestions     int       `json:"suggestions"`
	CreatedAt       time.Time `json:"created_at"`
}

// QuestionStat counts how often a corpus question was the answer.
type QuestionStat struct {
	Question string `json:"question"`
	Count    int64  `json:"count"`
}

// Stats summarizes the recorded events.
type Stats struct {
	TotalChats     int64          `json:"total_chats"`
	UniqueVisitors int64          `json:"unique_visitors"`
	Matched        int64          `json:"matched"`
	Unmatched      int64          `json:"unmatched"`
	InvalidInput   int64          `json:"invalid_input"`
	ChatsToday     int64          `json:"chats_today"`
	ChatsThisWeek  int64          `json:"chats_this_week"`
	TopQuestions   []QuestionStat `json:"top_questions"`
	RecentMisses   []Event        `json:"recent_misses"`
}

const schema = `
CREATE TABLE IF NOT EXISTS chat_events (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	hashed_ip TEXT NOT NULL,
	query TEXT NOT NULL,
	outcome TEXT NOT NULL,
	matched_index INTEGER NOT NULL DEFAULT -1,
	matched_question TEXT NOT NULL DEFAULT '',
	suggestions INTEGER NOT NULL DEFAULT 0,
	created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_chat_events_created_at ON chat_events(created_at);
CREATE INDEX IF NOT EXISTS idx_chat_events_outcome ON chat_events(outcome);
`

// Store persists chat events.
type Store struct {
	db   *sql.DB
	salt string
	now  func() time.Time
}

// Open opens (creating if needed) the SQLite database at path. salt is mixed
// into IP hashes; the same salt must be reused for unique visitor counts to
// survive restarts.
func Open(path, salt string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return &Store{db: db, salt: salt, now: time.Now}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// HashIP returns a short, salted, stable hash of ip.
func (s *Store) HashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip + s.salt))
	return hex.EncodeToString(sum[:])[:16]
}

// Record stores ev. CreatedAt defaults to now and the query is truncated.
func (s *Store) Record(ctx context.Context, ev Event) error {
	if ev.CreatedAt.IsZero() {
		ev.CreatedAt = s.now()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO chat_events (hashed_ip, query, outcome, matched_index, matched_question, suggestions, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, ev.HashedIP, truncate(ev.Query, maxQueryRunes), string(ev.Outcome), ev.MatchedIndex, ev.MatchedQuestion, ev.Suggestions, ev.CreatedAt.Unix())
	if err != nil {
		return fmt.Errorf("recording chat event: %w", err)
	}
	return nil
}

// Cleanup deletes events older than retention and returns how many went.
func (s *Store) Cleanup(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := s.now().Add(-retention).Unix()
	res, err := s.db.ExecContext(ctx, `DELETE FROM chat_events WHERE created_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("cleaning up chat events: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("cleaning up chat events: %w", err)
	}
	return n, nil
}

// Stats computes the admin dashboard figures.
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	now := s.now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekAgo := now.Add(-7 * 24 * time.Hour)

	stats := &Stats{
		TopQuestions: []QuestionStat{},
		RecentMisses: []Event{},
	}

	counts := []struct {
		dst   *int64
		query string
		args  []any
	}{
		{&stats.TotalChats, `SELECT COUNT(*) FROM chat_events`, nil},
		{&stats.UniqueVisitors, `SELECT COUNT(DISTINCT hashed_ip) FROM chat_events`, nil},
		{&stats.Matched, `SELECT COUNT(*) FROM chat_events WHERE outcome = ?`, []any{string(OutcomeMatched)}},
		{&stats.Unmatched, `SELECT COUNT(*) FROM chat_events WHERE outcome = ?`, []any{string(OutcomeNoMatch)}},
		{&stats.InvalidInput, `SELECT COUNT(*) FROM chat_events WHERE outcome = ?`, []any{string(OutcomeInvalidInput)}},
		{&stats.ChatsToday, `SELECT COUNT(*) FROM chat_events WHERE created_at >= ?`, []any{startOfDay.Unix()}},
		{&stats.ChatsThisWeek, `SELECT COUNT(*) FROM chat_events WHERE created_at >= ?`, []any{weekAgo.Unix()}},
	}
	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, c.query, c.args...).Scan(c.dst); err != nil {
			return nil, fmt.Errorf("querying stats: %w", err)
		}
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT matched_question, COUNT(*) AS n
		FROM chat_events
		WHERE outcome = ?
		GROUP BY matched_question
		ORDER BY n DESC, matched_question ASC
		LIMIT 10
	`, string(OutcomeMatched))
	if err != nil {
		return nil, fmt.Errorf("querying top questions: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var q QuestionStat
		if err := rows.Scan(&q.Question, &q.Count); err != nil {
			return nil, fmt.Errorf("scanning top questions: %w", err)
		}
		stats.TopQuestions = append(stats.TopQuestions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("querying top questions: %w", err)
	}

	misses, err := s.Recent(ctx, OutcomeNoMatch, 50)
	if err != nil {
		return nil, err
	}
	stats.RecentMisses = misses
	return stats, nil
}

// Recent returns the latest events with the given outcome, newest first.
func (s *Store) Recent(ctx context.Context, outcome Outcome, limit int) ([]Event, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, hashed_ip, query, outcome, matched_index, matched_question, suggestions, created_at
		FROM chat_events
		WHERE outcome = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, string(outcome), limit)
	if err != nil {
		return nil, fmt.Errorf("querying recent events: %w", err)
	}
	defer rows.Close()

	events := []Event{}
	for rows.Next() {
		var (
			ev        Event
			raw       string
			createdAt int64
		)
		if err := rows.Scan(&ev.ID, &ev.HashedIP, &ev.Query, &raw, &ev.MatchedIndex, &ev.MatchedQuestion, &ev.Suggestions, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning recent events: %w", err)
		}
		ev.Outcome = Outcome(raw)
		ev.CreatedAt = time.Unix(createdAt, 0).UTC()
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("querying recent events: %w", err)
	}
	return events, nil
}

func truncate(s string, maxRunes int) string {
	n := 0
	for i := range s {
		if n == maxRunes {
			return s[:i]
		}
		n++
	}
	return s
}
