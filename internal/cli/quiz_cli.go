package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/chiahsuan/wordbank/internal/bank"
	"github.com/chiahsuan/wordbank/internal/quiz"
)

// QuizCLI runs a multiple-choice quiz session over the word bank.
type QuizCLI struct {
	*InteractiveCLI
	bankStore *bank.Store
	session   *quiz.Session
}

// NewQuizCLI creates a quiz CLI over the given bank and session.
func NewQuizCLI(bankStore *bank.Store, session *quiz.Session, in io.Reader, out io.Writer) *QuizCLI {
	return &QuizCLI{
		InteractiveCLI: newInteractiveCLI(in, out),
		bankStore:      bankStore,
		session:        session,
	}
}

// Start samples a session from the bank's current contents. The
// InsufficientBankError from a too-small bank passes through untouched so
// the command layer can render it.
func (c *QuizCLI) Start() error {
	return c.session.Start(c.bankStore.List())
}

func (c *QuizCLI) Session(ctx context.Context) error {
	if c.session.State() == quiz.StateFinished {
		c.printSummary()
		return errEnd
	}

	question, err := c.session.CurrentQuestion()
	if err != nil {
		return fmt.Errorf("session.CurrentQuestion() > %w", err)
	}

	fmt.Fprintf(c.stdoutWriter, "Question %d/%d\n", question.Number, question.Total)
	_, _ = c.bold.Fprint(c.stdoutWriter, question.Term)
	if question.Phonetic != "" {
		fmt.Fprint(c.stdoutWriter, " ")
		_, _ = c.italic.Fprint(c.stdoutWriter, question.Phonetic)
	}
	fmt.Fprintln(c.stdoutWriter)
	for i, option := range question.Options {
		fmt.Fprintf(c.stdoutWriter, "  %d. %s\n", i+1, option)
	}
	fmt.Fprintf(c.stdoutWriter, "Your answer (1-%d, q to quit): ", len(question.Options))

	line, err := c.stdinReader.ReadString('\n')
	if err == io.EOF {
		return errEnd
	}
	if err != nil {
		return fmt.Errorf("error reading input: %w", err)
	}

	input := strings.TrimSpace(line)
	if input == "q" {
		c.printSummary()
		return errEnd
	}

	choice, err := strconv.Atoi(input)
	if err != nil || choice < 1 || choice > len(question.Options) {
		fmt.Fprintf(c.stdoutWriter, "Please enter a number between 1 and %d.\n\n", len(question.Options))
		return nil
	}

	correctTranslation := c.session.CurrentTranslation()
	correct, err := c.session.Answer(question.Options[choice-1])
	if err != nil {
		return fmt.Errorf("session.Answer() > %w", err)
	}

	if correct {
		fmt.Fprint(c.stdoutWriter, "✅ ")
		color.Green(`It's correct. "%s" means "%s"`, question.Term, correctTranslation)
	} else {
		fmt.Fprint(c.stdoutWriter, "❌ ")
		color.Red(`It's wrong. "%s" means "%s"`, question.Term, correctTranslation)
	}
	fmt.Fprintln(c.stdoutWriter)

	if c.session.State() == quiz.StateFinished {
		c.printSummary()
		return errEnd
	}
	return nil
}

func (c *QuizCLI) printSummary() {
	fmt.Fprintf(c.stdoutWriter, "Quiz finished! Score: %d/%d (%d of %d correct)\n",
		c.session.Score(), c.session.MaxScore(), c.session.CorrectCount(), c.session.Length())
}
