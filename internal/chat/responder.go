// Package chat turns a conversation transcript into a reply from the FAQ
// corpus. It sits between the HTTP handler and package faq and holds no
// state between calls.
package chat

import (
	"errors"
	"strings"

	"github.com/Zachkp/portfolio-chat/internal/faq"
)

const (
	DefaultMatchSuggestions    = 3
	DefaultFallbackSuggestions = 5

	DefaultAnswer = "I'm sorry, I couldn't find a specific answer to that question. Could you try rephrasing it or ask one of the suggested questions below?"
)

// ErrInvalidInput is returned when the transcript has no usable user query.
var ErrInvalidInput = errors.New("no input provided")

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one transcript entry.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Suggestion is a follow-up question offered alongside a reply. The answer is
// included so the widget can show it without another round trip.
type Suggestion struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Reply is the outcome of one turn. Only Answer and Suggestions are part of
// the wire format; the rest describes how the answer was chosen.
type Reply struct {
	Answer      string       `json:"answer"`
	Suggestions []Suggestion `json:"suggestions"`

	Query   string `json:"-"`
	Matched bool   `json:"-"`
	Index   int    `json:"-"`
	Score   int    `json:"-"`
}

// Options tune a Responder. Zero values fall back to the defaults.
type Options struct {
	MatchSuggestions    int
	FallbackSuggestions int
	Shuffle             faq.ShuffleFunc
}

// Responder answers transcripts from a corpus. It is safe for concurrent use
// as long as the configured shuffle is.
type Responder struct {
	corpus   *faq.Corpus
	matcher  *faq.Matcher
	selector *faq.Selector

	matchSuggestions    int
	fallbackSuggestions int
}

func NewResponder(c *faq.Corpus, opts Options) *Responder {
	if opts.MatchSuggestions <= 0 {
		opts.MatchSuggestions = DefaultMatchSuggestions
	}
	if opts.FallbackSuggestions <= 0 {
		opts.FallbackSuggestions = DefaultFallbackSuggestions
	}
	return &Responder{
		corpus:              c,
		matcher:             faq.NewMatcher(c),
		selector:            faq.NewSelector(c, opts.Shuffle),
		matchSuggestions:    opts.MatchSuggestions,
		fallbackSuggestions: opts.FallbackSuggestions,
	}
}

// Corpus returns the corpus the Responder answers from.
func (r *Responder) Corpus() *faq.Corpus {
	return r.corpus
}

// Respond answers the final user message of transcript.
//
// On a match, suggestions skip every record already matched by a user turn of
// the transcript as well as the current match. Without a match the default
// answer is returned with suggestions drawn from the whole corpus.
func (r *Responder) Respond(transcript []Message) (Reply, error) {
	query := ActiveQuery(transcript)
	if strings.TrimSpace(query) == "" {
		return Reply{}, ErrInvalidInput
	}

	match, ok := r.matcher.FindBestMatch(query)
	if !ok {
		return Reply{
			Answer:      DefaultAnswer,
			Suggestions: toSuggestions(r.selector.Suggest(nil, r.fallbackSuggestions)),
			Query:       query,
			Index:       -1,
		}, nil
	}

	asked := r.askedIndices(transcript)
	asked.Add(match.Index)

	return Reply{
		Answer:      match.Record.Answer,
		Suggestions: toSuggestions(r.selector.Suggest(asked, r.matchSuggestions)),
		Query:       query,
		Matched:     true,
		Index:       match.Index,
		Score:       match.Score,
	}, nil
}

// ActiveQuery returns the content of the last transcript entry when it was
// written by the user, and "" otherwise.
func ActiveQuery(transcript []Message) string {
	if len(transcript) == 0 {
		return ""
	}
	last := transcript[len(transcript)-1]
	if last.Role != RoleUser {
		return ""
	}
	return last.Content
}

func (r *Responder) askedIndices(transcript []Message) faq.IndexSet {
	asked := faq.NewIndexSet()
	for _, m := range transcript {
		if m.Role != RoleUser {
			continue
		}
		if match, ok := r.matcher.FindBestMatch(m.Content); ok {
			asked.Add(match.Index)
		}
	}
	return asked
}

func toSuggestions(records []faq.Record) []Suggestion {
	out := make([]Suggestion, len(records))
	for i, rec := range records {
		out[i] = Suggestion{Question: rec.Question, Answer: rec.Answer}
	}
	return out
}
