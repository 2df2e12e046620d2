package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/chiahsuan/wordbank/internal/bank"
	"github.com/chiahsuan/wordbank/internal/feed"
	"github.com/chiahsuan/wordbank/internal/speech"
	"github.com/chiahsuan/wordbank/internal/word"
)

// DailyCLI browses the daily word feed: save words to the bank, pull one
// more word, or hear a pronunciation.
type DailyCLI struct {
	*InteractiveCLI
	fetcher     *word.Fetcher
	sampler     *feed.Sampler
	bankStore   *bank.Store
	player      speech.Player
	languageTag string
	count       int
	words       []word.Record
}

// NewDailyCLI creates a daily feed CLI.
func NewDailyCLI(
	fetcher *word.Fetcher,
	sampler *feed.Sampler,
	bankStore *bank.Store,
	player speech.Player,
	languageTag string,
	count int,
	in io.Reader,
	out io.Writer,
) *DailyCLI {
	return &DailyCLI{
		InteractiveCLI: newInteractiveCLI(in, out),
		fetcher:        fetcher,
		sampler:        sampler,
		bankStore:      bankStore,
		player:         player,
		languageTag:    languageTag,
		count:          count,
	}
}

// Start fetches the initial feed and renders it.
func (c *DailyCLI) Start(ctx context.Context) error {
	result, ok := <-c.fetcher.Fetch(ctx, c.count)
	if !ok {
		return fmt.Errorf("feed fetch was cancelled")
	}
	if result.Err != nil {
		return fmt.Errorf("fetcher.Fetch() > %w", result.Err)
	}

	c.words = c.sampler.Sample(result.Records, c.count)
	fmt.Fprintf(c.stdoutWriter, "Today's words (%d):\n\n", len(c.words))
	for i, record := range c.words {
		c.renderWord(i+1, record)
	}
	return nil
}

func (c *DailyCLI) renderWord(number int, record word.Record) {
	marker := " "
	if c.bankStore.Contains(record.Term) {
		marker = "★"
	}
	fmt.Fprintf(c.stdoutWriter, "%s %2d. ", marker, number)
	_, _ = c.bold.Fprint(c.stdoutWriter, record.Term)
	if record.Phonetic != "" {
		fmt.Fprint(c.stdoutWriter, " ")
		_, _ = c.italic.Fprint(c.stdoutWriter, record.Phonetic)
	}
	fmt.Fprintf(c.stdoutWriter, "  %s\n", record.Translation)
	for i, example := range record.Examples {
		fmt.Fprintf(c.stdoutWriter, "       - %s\n", example)
		if i < len(record.TranslatedExamples) {
			fmt.Fprintf(c.stdoutWriter, "         %s\n", record.TranslatedExamples[i])
		}
	}
}

func (c *DailyCLI) Session(ctx context.Context) error {
	fmt.Fprint(c.stdoutWriter, "\n[s <n>] save  [p <n>] speak  [m] more  [q] quit > ")

	line, err := c.stdinReader.ReadString('\n')
	if err == io.EOF {
		return errEnd
	}
	if err != nil {
		return fmt.Errorf("error reading input: %w", err)
	}

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	switch fields[0] {
	case "q":
		return errEnd
	case "m":
		return c.oneMoreWord(ctx)
	case "s":
		record, ok := c.pickWord(fields)
		if !ok {
			return nil
		}
		if err := c.bankStore.Add(ctx, record); err != nil {
			var duplicateErr *bank.DuplicateError
			if errors.As(err, &duplicateErr) {
				color.Yellow("%q is already in your word bank.", duplicateErr.Term)
				return nil
			}
			return fmt.Errorf("bankStore.Add() > %w", err)
		}
		color.Green("Saved %q. Your bank now has %d words.", record.Term, c.bankStore.Len())
		return nil
	case "p":
		record, ok := c.pickWord(fields)
		if !ok {
			return nil
		}
		c.player.Speak(record.Term, c.languageTag)
		return nil
	default:
		fmt.Fprintf(c.stdoutWriter, "Unknown command %q\n", fields[0])
		return nil
	}
}

// pickWord resolves a "<command> <n>" argument to a displayed word.
func (c *DailyCLI) pickWord(fields []string) (word.Record, bool) {
	if len(fields) < 2 {
		fmt.Fprintln(c.stdoutWriter, "Please give a word number.")
		return word.Record{}, false
	}
	number, err := strconv.Atoi(fields[1])
	if err != nil || number < 1 || number > len(c.words) {
		fmt.Fprintf(c.stdoutWriter, "Please give a number between 1 and %d.\n", len(c.words))
		return word.Record{}, false
	}
	return c.words[number-1], true
}

// oneMoreWord fetches a fresh batch and prepends one word not shown yet.
func (c *DailyCLI) oneMoreWord(ctx context.Context) error {
	result, ok := <-c.fetcher.Fetch(ctx, c.count+len(c.words))
	if !ok {
		// Superseded fetch; nothing to show.
		return nil
	}
	if result.Err != nil {
		return fmt.Errorf("fetcher.Fetch() > %w", result.Err)
	}

	shown := make(map[string]struct{}, len(c.words))
	for _, w := range c.words {
		shown[w.Term] = struct{}{}
	}

	picked, err := c.sampler.SampleExcluding(result.Records, shown, 1)
	if errors.Is(err, feed.ErrPoolExhausted) {
		color.Yellow("No more new words in the pool!")
		return nil
	}
	if err != nil {
		return fmt.Errorf("sampler.SampleExcluding() > %w", err)
	}

	c.words = append(picked, c.words...)
	fmt.Fprintln(c.stdoutWriter, "\nOne more word:")
	c.renderWord(1, picked[0])
	return nil
}
