// Package feed samples the browsable daily word feed.
package feed

import (
	"errors"
	"math/rand"
	"time"

	"github.com/samber/lo"

	"github.com/chiahsuan/wordbank/internal/word"
)

// ErrPoolExhausted reports that no record outside the exclusion set is
// left to sample. Callers decide whether to retry, widen the pool, or
// tell the user.
var ErrPoolExhausted = errors.New("no more new words in the pool")

// Sampler draws random subsets of word records for the daily feed. It
// shares the sampling primitive with the quiz engine.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler creates a sampler. Pass a seeded rng for reproducible tests;
// nil falls back to a time-seeded one.
func NewSampler(rng *rand.Rand) *Sampler {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Sampler{rng: rng}
}

// Sample returns up to count records distinct by term, uniformly shuffled.
func (s *Sampler) Sample(source []word.Record, count int) []word.Record {
	unique := lo.UniqBy(source, func(r word.Record) string {
		return r.Term
	})
	return word.SampleRecords(s.rng, unique, count)
}

// SampleExcluding returns up to count records whose term is not in exclude.
// When every record is excluded it returns ErrPoolExhausted instead of an
// empty result, so callers can tell exhaustion from an empty request.
func (s *Sampler) SampleExcluding(source []word.Record, exclude map[string]struct{}, count int) ([]word.Record, error) {
	remaining := lo.Filter(source, func(r word.Record, _ int) bool {
		_, excluded := exclude[r.Term]
		return !excluded
	})
	if len(remaining) == 0 {
		return nil, ErrPoolExhausted
	}
	return s.Sample(remaining, count), nil
}
