package quiz

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chiahsuan/wordbank/internal/word"
)

func newTestSession(seed int64) *Session {
	return NewSession(NewSelector(rand.New(rand.NewSource(seed))), rand.New(rand.NewSource(seed)))
}

func makeBank(count int) []word.Record {
	records := make([]word.Record, count)
	for i := range records {
		records[i] = word.Record{
			Term:        fmt.Sprintf("term-%d", i),
			Translation: fmt.Sprintf("translation-%d", i),
		}
	}
	return records
}

func TestSession_Start(t *testing.T) {
	tests := []struct {
		name             string
		bankSize         int
		expectedLength   int
		wantInsufficient bool
	}{
		{name: "bank below minimum", bankSize: 2, wantInsufficient: true},
		{name: "empty bank", bankSize: 0, wantInsufficient: true},
		{name: "bank at minimum", bankSize: 3, expectedLength: 3},
		{name: "bank below cap", bankSize: 10, expectedLength: 10},
		{name: "bank above cap", bankSize: 80, expectedLength: MaxSessionWords},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := newTestSession(1)

			err := session.Start(makeBank(tt.bankSize))
			if tt.wantInsufficient {
				var insufficientErr *InsufficientBankError
				require.ErrorAs(t, err, &insufficientErr)
				assert.Equal(t, MinBankSize, insufficientErr.Required)
				assert.Equal(t, tt.bankSize, insufficientErr.Actual)
				assert.Equal(t, StateNotStarted, session.State(), "blocked start must not transition")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, StateActive, session.State())
			assert.Equal(t, tt.expectedLength, session.Length())
			assert.Equal(t, 0, session.Score())
		})
	}
}

func TestSession_OptionsInvariant(t *testing.T) {
	session := newTestSession(7)
	require.NoError(t, session.Start(makeBank(10)))

	// On every question the options contain the correct translation exactly
	// once and no duplicates.
	for session.State() == StateActive {
		question, err := session.CurrentQuestion()
		require.NoError(t, err)
		require.Len(t, question.Options, DistractorCount+1)

		correct := session.CurrentTranslation()
		occurrences := 0
		seen := make(map[string]struct{}, len(question.Options))
		for _, option := range question.Options {
			if option == correct {
				occurrences++
			}
			_, duplicate := seen[option]
			require.False(t, duplicate, "option %s appears twice", option)
			seen[option] = struct{}{}
		}
		require.Equal(t, 1, occurrences)

		_, err = session.Answer(question.Options[0])
		require.NoError(t, err)
	}
}

func TestSession_Termination(t *testing.T) {
	session := newTestSession(1)
	require.NoError(t, session.Start(makeBank(5)))

	answers := 0
	for session.State() == StateActive {
		_, err := session.Answer("whatever")
		require.NoError(t, err)
		answers++
	}

	assert.Equal(t, 5, answers, "finished after exactly one answer per sampled word")
	assert.Equal(t, StateFinished, session.State())

	_, err := session.Answer("whatever")
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestSession_Scoring(t *testing.T) {
	session := newTestSession(3)
	require.NoError(t, session.Start(makeBank(6)))

	// Answer every odd question correctly and every even one wrong.
	expectedScore := 0
	expectedCorrect := 0
	for i := 0; session.State() == StateActive; i++ {
		selected := "wrong answer that is in no pool"
		if i%2 == 0 {
			selected = session.CurrentTranslation()
			expectedScore += CorrectAward
			expectedCorrect++
		}
		correct, err := session.Answer(selected)
		require.NoError(t, err)
		assert.Equal(t, i%2 == 0, correct)
	}

	assert.Equal(t, expectedScore, session.Score())
	assert.Equal(t, expectedCorrect, session.CorrectCount())
	assert.Equal(t, CorrectAward*session.Length(), session.MaxScore())
	assert.LessOrEqual(t, session.Score(), session.MaxScore())
}

func TestSession_AnswerBeforeStart(t *testing.T) {
	session := newTestSession(1)

	_, err := session.Answer("anything")
	assert.ErrorIs(t, err, ErrInvalidState)

	_, err = session.CurrentQuestion()
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestSession_SampledWithoutReplacement(t *testing.T) {
	session := newTestSession(5)
	require.NoError(t, session.Start(makeBank(80)))

	seen := make(map[string]struct{}, session.Length())
	for session.State() == StateActive {
		question, err := session.CurrentQuestion()
		require.NoError(t, err)
		_, duplicate := seen[question.Term]
		require.False(t, duplicate, "term %s sampled twice", question.Term)
		seen[question.Term] = struct{}{}

		_, err = session.Answer("whatever")
		require.NoError(t, err)
	}
	assert.Len(t, seen, MaxSessionWords)
}

func TestSession_SnapshotIsIndependentOfBank(t *testing.T) {
	session := newTestSession(1)
	bank := makeBank(5)
	require.NoError(t, session.Start(bank))

	// Mutating the caller's bank after Start must not affect the session.
	bank[0] = word.Record{Term: "mutated", Translation: "mutated"}
	for i := 1; i < len(bank); i++ {
		bank[i] = word.Record{Term: "mutated", Translation: "mutated"}
	}

	for session.State() == StateActive {
		question, err := session.CurrentQuestion()
		require.NoError(t, err)
		assert.NotEqual(t, "mutated", question.Term)
		_, err = session.Answer("whatever")
		require.NoError(t, err)
	}
}

func TestSession_Restart(t *testing.T) {
	session := newTestSession(1)
	require.NoError(t, session.Start(makeBank(5)))

	correct, err := session.Answer(session.CurrentTranslation())
	require.NoError(t, err)
	require.True(t, correct)
	require.Equal(t, CorrectAward, session.Score())

	// Restarting discards the in-flight session and resamples from the bank
	// as passed now.
	require.NoError(t, session.Start(makeBank(4)))
	assert.Equal(t, StateActive, session.State())
	assert.Equal(t, 4, session.Length())
	assert.Equal(t, 0, session.Score())
	assert.Equal(t, 0, session.CorrectCount())
}
