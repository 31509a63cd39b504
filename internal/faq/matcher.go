package faq

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	keywordInQueryPoints  = 2
	keywordTokenPoints    = 1
	questionOverlapPoints = 5

	// Tokens of this many runes or fewer are ignored.
	maxIgnoredTokenLen = 2
)

var stopWords = map[string]struct{}{
	"what": {}, "where": {}, "who": {}, "why": {}, "how": {}, "when": {}, "which": {},
	"can": {}, "do": {}, "does": {}, "did": {}, "will": {}, "are": {}, "is": {},
	"the": {}, "a": {}, "an": {},
}

// Match is a record selected by the Matcher together with its corpus index
// and the score it won with.
type Match struct {
	Index  int
	Record Record
	Score  int
}

type matchEntry struct {
	keywords []string
	question string
}

// Matcher finds the corpus record that best fits free-form text. Scoring is
// plain substring and token overlap: no stemming and no punctuation
// stripping, so "projects?" still matches the keyword "projects" through
// substring containment but "proj-ects" does not.
type Matcher struct {
	corpus  *Corpus
	entries []matchEntry
}

func NewMatcher(c *Corpus) *Matcher {
	entries := make([]matchEntry, c.Len())
	for i, r := range c.records {
		entries[i] = matchEntry{
			keywords: r.Keywords,
			question: strings.ToLower(stripGlyph(r.Question)),
		}
	}
	return &Matcher{corpus: c, entries: entries}
}

// FindBestMatch returns the highest scoring record for query. Ties go to the
// record defined first. ok is false when no record scores above zero, which
// includes empty and whitespace-only queries.
func (m *Matcher) FindBestMatch(query string) (match Match, ok bool) {
	q := newQuery(query)
	if q.text == "" {
		return Match{}, false
	}

	best, bestScore := -1, 0
	for i, e := range m.entries {
		if s := q.score(e); s > bestScore {
			best, bestScore = i, s
		}
	}
	if best < 0 {
		return Match{}, false
	}
	return Match{Index: best, Record: m.corpus.At(best), Score: bestScore}, true
}

// Scores returns the score of every record for query, in corpus order.
func (m *Matcher) Scores(query string) []int {
	q := newQuery(query)
	out := make([]int, len(m.entries))
	if q.text == "" {
		return out
	}
	for i, e := range m.entries {
		out[i] = q.score(e)
	}
	return out
}

type query struct {
	text   string
	tokens []string
}

func newQuery(raw string) query {
	text := strings.ToLower(strings.TrimSpace(raw))

	var tokens []string
	for _, w := range strings.Fields(text) {
		if utf8.RuneCountInString(w) <= maxIgnoredTokenLen {
			continue
		}
		if _, stop := stopWords[w]; stop {
			continue
		}
		tokens = append(tokens, w)
	}
	return query{text: text, tokens: tokens}
}

// score adds, per keyword, points for the keyword appearing in the query and,
// independently, for overlapping a query token, so one keyword can earn both.
func (q query) score(e matchEntry) int {
	score := 0
	for _, k := range e.keywords {
		if strings.Contains(q.text, k) {
			score += keywordInQueryPoints
		}
		if q.overlapsToken(k) {
			score += keywordTokenPoints
		}
	}
	if strings.Contains(q.text, e.question) || strings.Contains(e.question, q.text) {
		score += questionOverlapPoints
	}
	return score
}

func (q query) overlapsToken(keyword string) bool {
	for _, t := range q.tokens {
		if strings.Contains(t, keyword) || strings.Contains(keyword, t) {
			return true
		}
	}
	return false
}

// stripGlyph drops everything up to and including the first whitespace
// character, which removes the decorative emoji questions start with. A
// question that starts with whitespace or has none is returned unchanged.
func stripGlyph(question string) string {
	i := strings.IndexFunc(question, unicode.IsSpace)
	if i <= 0 {
		return question
	}
	_, size := utf8.DecodeRuneInString(question[i:])
	return question[i+size:]
}
