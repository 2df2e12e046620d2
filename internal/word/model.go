// Package word provides the vocabulary record model and candidate word sources.
package word

import (
	"github.com/samber/lo"
)

// Record is a single vocabulary entry. Term is the identity key; records are
// immutable once created and are copied between collections, never shared.
type Record struct {
	Term               string   `json:"term" yaml:"term"`
	Phonetic           string   `json:"phonetic,omitempty" yaml:"phonetic,omitempty"`
	Translation        string   `json:"translation" yaml:"translation"`
	Examples           []string `json:"examples,omitempty" yaml:"examples,omitempty"`
	TranslatedExamples []string `json:"translated_examples,omitempty" yaml:"translated_examples,omitempty"`
}

// Clone returns an independent copy of the record so that collections never
// alias each other's example slices.
func (r Record) Clone() Record {
	cloned := r
	cloned.Examples = append([]string(nil), r.Examples...)
	cloned.TranslatedExamples = append([]string(nil), r.TranslatedExamples...)
	return cloned
}

// wellFormed reports whether a record can flow through the quiz engine.
// A record without a term or translation is unusable, and a translated
// example list that doesn't line up with the examples indicates a broken
// upstream translation.
func (r Record) wellFormed() bool {
	if r.Term == "" || r.Translation == "" {
		return false
	}
	if len(r.TranslatedExamples) > 0 && len(r.TranslatedExamples) != len(r.Examples) {
		return false
	}
	return true
}

// Sanitize drops malformed records from a provider batch. The rest of the
// batch is kept; a single bad record never fails a whole fetch.
func Sanitize(records []Record) []Record {
	return lo.Filter(records, func(r Record, _ int) bool {
		return r.wellFormed()
	})
}

// Translations extracts the translation of every record, in order.
func Translations(records []Record) []string {
	return lo.Map(records, func(r Record, _ int) string {
		return r.Translation
	})
}

// Terms extracts the term of every record, in order.
func Terms(records []Record) []string {
	return lo.Map(records, func(r Record, _ int) string {
		return r.Term
	})
}
