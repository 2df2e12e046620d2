// Package quiz implements the multiple-choice quiz engine: distractor
// selection and the session state machine.
package quiz

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/samber/lo"

	"github.com/chiahsuan/wordbank/internal/word"
)

// DistractorCount is the number of wrong options shown per question.
const DistractorCount = 2

// fallbackDistractors pads the option set when the pool can't supply
// enough distinct wrong answers. The markers are placeholders from the
// gloss language so they read naturally next to real translations.
var fallbackDistractors = []string{"（以上皆非）", "（尚無此翻譯）"}

// Selector picks plausible-but-wrong options for a question.
type Selector struct {
	rng *rand.Rand
}

// NewSelector creates a selector. Pass a seeded source for reproducible
// tests; nil falls back to a time-seeded one.
func NewSelector(rng *rand.Rand) *Selector {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Selector{rng: rng}
}

// SelectDistractors returns exactly count strings drawn uniformly from pool,
// each distinct from correct and from each other. When the deduplicated pool
// is too small the result is padded with fallback markers, so callers always
// get a full option set.
func (s *Selector) SelectDistractors(correct string, pool []string, count int) []string {
	eligible := lo.Uniq(lo.Filter(pool, func(t string, _ int) bool {
		return t != correct && t != ""
	}))

	distractors := word.SampleStrings(s.rng, eligible, count)
	for _, fallback := range fallbackDistractors {
		if len(distractors) >= count {
			break
		}
		if fallback == correct || lo.Contains(distractors, fallback) {
			continue
		}
		distractors = append(distractors, fallback)
	}
	// Numbered markers cover the pathological case of fallbacks colliding
	// with real translations.
	for n := 1; len(distractors) < count; n++ {
		marker := fmt.Sprintf("（選項 %d）", n)
		if marker == correct || lo.Contains(distractors, marker) {
			continue
		}
		distractors = append(distractors, marker)
	}
	return distractors
}

// BuildOptions returns the correct answer and its distractors in random
// order. The result always contains correct exactly once.
func (s *Selector) BuildOptions(correct string, pool []string) []string {
	options := append([]string{correct}, s.SelectDistractors(correct, pool, DistractorCount)...)
	s.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options
}
