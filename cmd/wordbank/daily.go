package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chiahsuan/wordbank/internal/cli"
	"github.com/chiahsuan/wordbank/internal/feed"
	"github.com/chiahsuan/wordbank/internal/speech"
	"github.com/chiahsuan/wordbank/internal/word"
)

func newDailyCommand() *cobra.Command {
	var count int
	command := &cobra.Command{
		Use:   "daily",
		Short: "Browse today's words and save the ones you want to learn",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if count > 0 {
				cfg.Daily.Count = count
			}

			ctx := cmd.Context()
			bankStore, cleanupBank, err := newBankStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer cleanupBank()

			source, cleanupSource, err := newWordSource(cfg)
			if err != nil {
				return err
			}
			defer cleanupSource()

			dailyCLI := cli.NewDailyCLI(
				word.NewFetcher(source),
				feed.NewSampler(nil),
				bankStore,
				newPlayer(cfg),
				cfg.Speech.LanguageTag,
				cfg.Daily.Count,
				nil,
				nil,
			)
			if err := dailyCLI.Start(ctx); err != nil {
				return err
			}
			return dailyCLI.Run(ctx, dailyCLI)
		},
	}
	command.Flags().IntVar(&count, "count", 0, "how many words to show (overrides daily.count)")

	return command
}

func newSpeakCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "speak <text>",
		Short: "Pronounce a word or sentence",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cfg.Speech.Command == "" {
				return fmt.Errorf("speech.command is not configured")
			}

			player := speech.NewExecPlayer(cfg.Speech.Command, cfg.Speech.Args...)
			return player.SpeakBlocking(strings.Join(args, " "), cfg.Speech.LanguageTag)
		},
	}
}
