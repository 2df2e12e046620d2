// Package bank owns the user's persisted, deduplicated collection of saved
// words and its persistence backends.
package bank

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/chiahsuan/wordbank/internal/word"
)

// DuplicateError reports an Add that was ignored because the term is
// already saved.
type DuplicateError struct {
	Term string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("word %q is already in the bank", e.Term)
}

// OutOfRangeError reports a Remove with an invalid position.
type OutOfRangeError struct {
	Position int
	Length   int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("position %d is out of range for a bank of %d words", e.Position, e.Length)
}

// Store is the word bank: an insertion-ordered collection with set semantics
// keyed by term. Every mutation is written through to the persistence
// backend before the call returns.
type Store struct {
	persistence Persistence
	records     []word.Record
}

// NewStore creates a store rehydrated from the persistence backend. A
// missing or unreadable persisted state degrades to an empty bank; the
// bank is user-recoverable state and must never block startup.
func NewStore(ctx context.Context, persistence Persistence) *Store {
	records, err := persistence.Load(ctx)
	if err != nil {
		slog.Warn("could not load persisted word bank, starting empty", "error", err)
		records = nil
	}

	// Persisted state may have been edited by hand; enforce the uniqueness
	// invariant on load, keeping the first occurrence of each term.
	seen := make(map[string]struct{}, len(records))
	deduped := make([]word.Record, 0, len(records))
	for _, r := range records {
		if _, ok := seen[r.Term]; ok {
			continue
		}
		seen[r.Term] = struct{}{}
		deduped = append(deduped, r.Clone())
	}

	return &Store{
		persistence: persistence,
		records:     deduped,
	}
}

// Add appends a copy of record to the bank and persists, unless an entry
// with the same term already exists, in which case the bank is unchanged
// and a DuplicateError is returned.
func (s *Store) Add(ctx context.Context, record word.Record) error {
	if record.Term == "" || record.Translation == "" {
		return fmt.Errorf("record %q is missing a term or translation", record.Term)
	}
	if s.Contains(record.Term) {
		return &DuplicateError{Term: record.Term}
	}

	s.records = append(s.records, record.Clone())
	if err := s.persistence.Save(ctx, s.records); err != nil {
		return fmt.Errorf("persistence.Save() > %w", err)
	}
	return nil
}

// Remove deletes the entry at position, preserving the relative order of the
// rest, and persists. Position is zero-based in list order.
func (s *Store) Remove(ctx context.Context, position int) error {
	if position < 0 || position >= len(s.records) {
		return &OutOfRangeError{Position: position, Length: len(s.records)}
	}

	s.records = append(s.records[:position], s.records[position+1:]...)
	if err := s.persistence.Save(ctx, s.records); err != nil {
		return fmt.Errorf("persistence.Save() > %w", err)
	}
	return nil
}

// Contains reports whether a term is already saved. Comparison is
// case-sensitive and exact.
func (s *Store) Contains(term string) bool {
	for _, r := range s.records {
		if r.Term == term {
			return true
		}
	}
	return false
}

// List returns the saved words in insertion order. The result is a fresh
// copy; mutating it never affects the bank.
func (s *Store) List() []word.Record {
	result := make([]word.Record, len(s.records))
	for i, r := range s.records {
		result[i] = r.Clone()
	}
	return result
}

// Len returns the number of saved words.
func (s *Store) Len() int {
	return len(s.records)
}
