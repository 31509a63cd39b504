// Package faq holds the question/answer corpus behind the chat widget and
// the two pieces of logic that work on it: the keyword Matcher and the
// Selector that proposes follow-up questions.
package faq

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyCorpus       = errors.New("corpus has no records")
	ErrEmptyQuestion     = errors.New("record question is empty")
	ErrEmptyAnswer       = errors.New("record answer is empty")
	ErrDuplicateQuestion = errors.New("duplicate record question")
	ErrBlankKeyword      = errors.New("record keyword is blank")
)

// Record is one entry of the corpus. Answer may carry light markup that the
// widget renders; nothing here interprets it.
type Record struct {
	Question string   `json:"question" toml:"question"`
	Answer   string   `json:"answer" toml:"answer"`
	Keywords []string `json:"keywords,omitempty" toml:"keywords"`
}

// Corpus is an immutable, ordered set of records. Indices stay stable for the
// lifetime of the value, so a Corpus can be shared between goroutines.
type Corpus struct {
	records []Record
	byQuery map[string]int
}

// NewCorpus validates records and returns a corpus holding a private copy of
// them. Keywords are lowercased and trimmed.
func NewCorpus(records []Record) (*Corpus, error) {
	if len(records) == 0 {
		return nil, ErrEmptyCorpus
	}

	c := &Corpus{
		records: make([]Record, 0, len(records)),
		byQuery: make(map[string]int, len(records)),
	}
	for i, r := range records {
		if strings.TrimSpace(stripGlyph(r.Question)) == "" {
			return nil, fmt.Errorf("record %d: %w", i, ErrEmptyQuestion)
		}
		if strings.TrimSpace(r.Answer) == "" {
			return nil, fmt.Errorf("record %d (%q): %w", i, r.Question, ErrEmptyAnswer)
		}
		if prev, ok := c.byQuery[r.Question]; ok {
			return nil, fmt.Errorf("record %d (%q) repeats record %d: %w", i, r.Question, prev, ErrDuplicateQuestion)
		}

		keywords := make([]string, 0, len(r.Keywords))
		for _, k := range r.Keywords {
			k = strings.ToLower(strings.TrimSpace(k))
			if k == "" {
				return nil, fmt.Errorf("record %d (%q): %w", i, r.Question, ErrBlankKeyword)
			}
			keywords = append(keywords, k)
		}

		c.byQuery[r.Question] = i
		c.records = append(c.records, Record{
			Question: r.Question,
			Answer:   r.Answer,
			Keywords: keywords,
		})
	}
	return c, nil
}

// MustCorpus is like NewCorpus but panics on invalid records. It is meant for
// package-level data that is known to be valid.
func MustCorpus(records []Record) *Corpus {
	c, err := NewCorpus(records)
	if err != nil {
		panic(fmt.Sprintf("faq: invalid corpus: %v", err))
	}
	return c
}

// Len returns the number of records.
func (c *Corpus) Len() int {
	return len(c.records)
}

// At returns a copy of the record at index i. It panics if i is out of range.
func (c *Corpus) At(i int) Record {
	return c.records[i].clone()
}

// IndexOf returns the index of the record whose question is exactly q.
func (c *Corpus) IndexOf(q string) (int, bool) {
	i, ok := c.byQuery[q]
	return i, ok
}

// Records returns a copy of every record in corpus order.
func (c *Corpus) Records() []Record {
	out := make([]Record, len(c.records))
	for i, r := range c.records {
		out[i] = r.clone()
	}
	return out
}

// KeywordCount returns the total number of keywords across all records.
func (c *Corpus) KeywordCount() int {
	n := 0
	for _, r := range c.records {
		n += len(r.Keywords)
	}
	return n
}

func (r Record) clone() Record {
	r.Keywords = append([]string(nil), r.Keywords...)
	return r
}

// IndexSet is a set of corpus indices, used to track which records a
// conversation has already surfaced.
type IndexSet map[int]struct{}

// NewIndexSet returns a set holding the given indices.
func NewIndexSet(indices ...int) IndexSet {
	s := make(IndexSet, len(indices))
	for _, i := range indices {
		s.Add(i)
	}
	return s
}

func (s IndexSet) Add(i int) {
	s[i] = struct{}{}
}

// Has reports whether i is in the set. A nil set holds nothing.
func (s IndexSet) Has(i int) bool {
	_, ok := s[i]
	return ok
}
