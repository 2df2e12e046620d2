// Package speech plays pronunciation audio for words and examples.
package speech

import (
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

// Player speaks text aloud. Fire-and-forget: callers never consume a
// result, so playback failures are logged, not returned.
type Player interface {
	Speak(text, languageTag string)
}

// ExecPlayer shells out to a local text-to-speech command such as espeak
// or macOS say. Occurrences of {text} and {lang} in the configured
// arguments are substituted; if no argument mentions {text}, the text is
// appended as the last argument.
type ExecPlayer struct {
	command string
	args    []string
}

// NewExecPlayer creates a player for the given command template.
func NewExecPlayer(command string, args ...string) *ExecPlayer {
	return &ExecPlayer{command: command, args: args}
}

func (p *ExecPlayer) buildArgs(text, languageTag string) []string {
	args := make([]string, 0, len(p.args)+1)
	hasText := false
	for _, arg := range p.args {
		if strings.Contains(arg, "{text}") {
			hasText = true
		}
		arg = strings.ReplaceAll(arg, "{text}", text)
		arg = strings.ReplaceAll(arg, "{lang}", languageTag)
		args = append(args, arg)
	}
	if !hasText {
		args = append(args, text)
	}
	return args
}

// Speak starts playback without waiting for it to finish.
func (p *ExecPlayer) Speak(text, languageTag string) {
	cmd := exec.Command(p.command, p.buildArgs(text, languageTag)...)
	if err := cmd.Start(); err != nil {
		slog.Warn("could not start pronunciation command", "command", p.command, "error", err)
		return
	}
	go func() {
		if err := cmd.Wait(); err != nil {
			slog.Debug("pronunciation command failed", "command", p.command, "error", err)
		}
	}()
}

// SpeakBlocking plays the text and waits for playback to finish. The
// standalone speak command uses this so the process doesn't exit and kill
// the player mid-word.
func (p *ExecPlayer) SpeakBlocking(text, languageTag string) error {
	cmd := exec.Command(p.command, p.buildArgs(text, languageTag)...)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("cmd.Run(%s) > %w", p.command, err)
	}
	return nil
}

// NopPlayer is used when no text-to-speech command is configured.
type NopPlayer struct{}

// Speak does nothing.
func (NopPlayer) Speak(string, string) {}
