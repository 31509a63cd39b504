package faq

import "math/rand/v2"

// ShuffleFunc permutes n elements by calling swap, with the same contract as
// rand.Shuffle.
type ShuffleFunc func(n int, swap func(i, j int))

// Selector picks follow-up questions a conversation has not surfaced yet.
type Selector struct {
	corpus  *Corpus
	shuffle ShuffleFunc
}

// NewSelector returns a Selector over c. A nil shuffle uses the process-wide
// math/rand/v2 source, which is safe for concurrent use. A shuffle passed in
// must be too if the Selector is shared between goroutines.
func NewSelector(c *Corpus, shuffle ShuffleFunc) *Selector {
	if shuffle == nil {
		shuffle = rand.Shuffle
	}
	return &Selector{corpus: c, shuffle: shuffle}
}

// Suggest returns up to count records whose index is not in excluded, in
// random order. It returns an empty slice when count is not positive or every
// record is excluded.
func (s *Selector) Suggest(excluded IndexSet, count int) []Record {
	if count <= 0 {
		return []Record{}
	}

	pool := make([]Record, 0, s.corpus.Len())
	for i := range s.corpus.records {
		if excluded.Has(i) {
			continue
		}
		pool = append(pool, s.corpus.At(i))
	}

	s.shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	return pool[:min(count, len(pool))]
}
