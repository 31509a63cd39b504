package faq

import (
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededShuffle(seed uint64) ShuffleFunc {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)).Shuffle
}

func indicesOf(t *testing.T, c *Corpus, records []Record) []int {
	t.Helper()
	out := make([]int, 0, len(records))
	for _, r := range records {
		i, ok := c.IndexOf(r.Question)
		require.True(t, ok, "suggested record %q not in corpus", r.Question)
		out = append(out, i)
	}
	return out
}

func TestSuggest_SizeAndExclusion(t *testing.T) {
	c := Default()
	size := c.Len()

	tests := []struct {
		name     string
		excluded IndexSet
		count    int
		want     int
	}{
		{name: "nothing excluded", excluded: nil, count: 5, want: 5},
		{name: "some excluded", excluded: NewIndexSet(0, 2, 4), count: 3, want: 3},
		{name: "count above pool", excluded: NewIndexSet(0, 1, 2), count: 100, want: size - 3},
		{name: "out of range indices ignored", excluded: NewIndexSet(-1, size, size+7), count: size, want: size},
		{name: "zero count", excluded: nil, count: 0, want: 0},
		{name: "negative count", excluded: nil, count: -2, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for seed := uint64(1); seed <= 25; seed++ {
				s := NewSelector(c, seededShuffle(seed))
				got := s.Suggest(tt.excluded, tt.count)
				require.Len(t, got, tt.want)

				seen := make(map[int]bool)
				for _, i := range indicesOf(t, c, got) {
					assert.False(t, tt.excluded.Has(i), "seed %d returned excluded index %d", seed, i)
					assert.False(t, seen[i], "seed %d returned index %d twice", seed, i)
					seen[i] = true
				}
			}
		})
	}
}

func TestSuggest_EverythingExcluded(t *testing.T) {
	c := Default()
	all := NewIndexSet()
	for i := 0; i < c.Len(); i++ {
		all.Add(i)
	}

	s := NewSelector(c, seededShuffle(7))
	for _, count := range []int{0, 1, 3, 5, c.Len() + 1} {
		got := s.Suggest(all, count)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	}
}

func TestSuggest_ReturnsWholePoolPermuted(t *testing.T) {
	c := Default()
	s := NewSelector(c, seededShuffle(42))

	got := indicesOf(t, c, s.Suggest(nil, c.Len()))
	want := make([]int, c.Len())
	for i := range want {
		want[i] = i
	}
	assert.ElementsMatch(t, want, got)
}

func TestSuggest_DoesNotMutateCorpusOrExclusions(t *testing.T) {
	c := Default()
	before := c.Records()
	excluded := NewIndexSet(3, 5)

	s := NewSelector(c, seededShuffle(3))
	got := s.Suggest(excluded, 4)
	got[0].Keywords[0] = "mutated"
	got[0].Question = "mutated"

	assert.Equal(t, before, c.Records())
	assert.Equal(t, NewIndexSet(3, 5), excluded)
}

func TestSuggest_SameSeedSameOrder(t *testing.T) {
	c := Default()

	a := NewSelector(c, seededShuffle(11)).Suggest(NewIndexSet(1), 5)
	b := NewSelector(c, seededShuffle(11)).Suggest(NewIndexSet(1), 5)
	assert.Equal(t, a, b)
}

func TestSuggest_DefaultSourceConcurrent(t *testing.T) {
	c := Default()
	s := NewSelector(c, nil)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				got := s.Suggest(NewIndexSet(0), 3)
				if assert.Len(t, got, 3) {
					for _, r := range got {
						assert.NotEqual(t, c.At(0).Question, r.Question)
					}
				}
			}
		}()
	}
	wg.Wait()
}
