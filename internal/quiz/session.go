package quiz

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/chiahsuan/wordbank/internal/word"
)

// State is the session lifecycle state.
type State string

const (
	StateNotStarted State = "not_started"
	StateActive     State = "active"
	StateFinished   State = "finished"
)

const (
	// MinBankSize is the smallest bank a session can start from: one
	// correct answer plus two real distractors.
	MinBankSize = 3
	// MaxSessionWords caps how many words one session samples.
	MaxSessionWords = 50
	// CorrectAward is the score awarded per correct answer.
	CorrectAward = 2
)

// ErrInvalidState reports an operation that is not valid in the session's
// current state, like answering before Start or after the last question.
var ErrInvalidState = errors.New("operation not valid in the current session state")

// InsufficientBankError reports a Start against a bank that is too small
// to build a question from.
type InsufficientBankError struct {
	Required int
	Actual   int
}

func (e *InsufficientBankError) Error() string {
	return fmt.Sprintf("the word bank has %d words but a quiz needs at least %d", e.Actual, e.Required)
}

// Question is the current question as presented to the user.
type Question struct {
	Term     string
	Phonetic string
	Options  []string
	Number   int
	Total    int
}

// Session is a finite state machine over a snapshot of words sampled from
// the bank. The snapshot is owned exclusively by the session; bank
// mutations after Start never affect an in-flight quiz.
type Session struct {
	selector *Selector
	rng      *rand.Rand

	state          State
	words          []word.Record
	pool           []string
	currentIndex   int
	currentOptions []string
	score          int
	correctCount   int
}

// NewSession creates a session in the NotStarted state. Pass a seeded rng
// for reproducible tests; nil falls back to a time-seeded one.
func NewSession(selector *Selector, rng *rand.Rand) *Session {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Session{
		selector: selector,
		rng:      rng,
		state:    StateNotStarted,
	}
}

// Start samples min(MaxSessionWords, len(bank)) records without replacement
// and activates the session. A bank smaller than MinBankSize blocks the
// transition with an InsufficientBankError and leaves the session in its
// previous state untouched. Calling Start on a running session discards it
// and resamples from the bank as passed now.
func (s *Session) Start(bank []word.Record) error {
	if len(bank) < MinBankSize {
		return &InsufficientBankError{Required: MinBankSize, Actual: len(bank)}
	}

	s.words = word.SampleRecords(s.rng, bank, MaxSessionWords)
	s.pool = word.Translations(bank)
	s.currentIndex = 0
	s.score = 0
	s.correctCount = 0
	s.state = StateActive
	s.refreshOptions()
	return nil
}

func (s *Session) refreshOptions() {
	current := s.words[s.currentIndex]
	s.currentOptions = s.selector.BuildOptions(current.Translation, s.pool)
}

// Answer scores the selected option against the current question and
// advances the session, recomputing options for the next question or
// finishing after the last one. It reports whether the answer was correct.
func (s *Session) Answer(selected string) (bool, error) {
	if s.state != StateActive {
		return false, ErrInvalidState
	}

	correct := selected == s.words[s.currentIndex].Translation
	if correct {
		s.score += CorrectAward
		s.correctCount++
	}

	if s.currentIndex == len(s.words)-1 {
		s.state = StateFinished
		s.currentOptions = nil
	} else {
		s.currentIndex++
		s.refreshOptions()
	}
	return correct, nil
}

// CurrentQuestion returns the question for the current word. Only valid
// while the session is active.
func (s *Session) CurrentQuestion() (Question, error) {
	if s.state != StateActive {
		return Question{}, ErrInvalidState
	}
	current := s.words[s.currentIndex]
	return Question{
		Term:     current.Term,
		Phonetic: current.Phonetic,
		Options:  append([]string(nil), s.currentOptions...),
		Number:   s.currentIndex + 1,
		Total:    len(s.words),
	}, nil
}

// CurrentTranslation returns the correct answer for the current question,
// or an empty string outside the Active state.
func (s *Session) CurrentTranslation() string {
	if s.state != StateActive {
		return ""
	}
	return s.words[s.currentIndex].Translation
}

// State returns the session state.
func (s *Session) State() State {
	return s.state
}

// Score returns the accumulated score.
func (s *Session) Score() int {
	return s.score
}

// CorrectCount returns how many answers were correct so far.
func (s *Session) CorrectCount() int {
	return s.correctCount
}

// Length returns how many words were sampled into this session.
func (s *Session) Length() int {
	return len(s.words)
}

// MaxScore returns the highest score the session can end with.
func (s *Session) MaxScore() int {
	return CorrectAward * len(s.words)
}
