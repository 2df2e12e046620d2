package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/chiahsuan/wordbank/internal/bank"
	"github.com/chiahsuan/wordbank/internal/cli"
	"github.com/chiahsuan/wordbank/internal/word"
)

func newBankCommand() *cobra.Command {
	bankCommand := &cobra.Command{
		Use:   "bank",
		Short: "Manage your saved words",
	}

	bankCommand.AddCommand(newBankListCommand())
	bankCommand.AddCommand(newBankAddCommand())
	bankCommand.AddCommand(newBankRemoveCommand())
	bankCommand.AddCommand(newBankExportCommand())

	return bankCommand
}

func newBankListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the words in your bank",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			bankStore, cleanup, err := newBankStore(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			records := bankStore.List()
			if len(records) == 0 {
				fmt.Println("Your word bank is empty. Save words from the daily feed first.")
				return nil
			}

			bold := color.New(color.Bold)
			for i, record := range records {
				fmt.Printf("%3d. ", i+1)
				_, _ = bold.Print(record.Term)
				if record.Phonetic != "" {
					fmt.Printf(" %s", record.Phonetic)
				}
				fmt.Printf("  %s\n", record.Translation)
			}
			fmt.Printf("\n%d words saved.\n", len(records))
			return nil
		},
	}
}

func newBankAddCommand() *cobra.Command {
	var phonetic string
	var examples []string
	var translatedExamples []string
	command := &cobra.Command{
		Use:   "add <term> <translation>",
		Short: "Save a word to your bank",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			bankStore, cleanup, err := newBankStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			record := word.Record{
				Term:               args[0],
				Phonetic:           phonetic,
				Translation:        args[1],
				Examples:           examples,
				TranslatedExamples: translatedExamples,
			}
			if err := bankStore.Add(ctx, record); err != nil {
				var duplicateErr *bank.DuplicateError
				if errors.As(err, &duplicateErr) {
					fmt.Printf("%q is already in your word bank.\n", duplicateErr.Term)
					return nil
				}
				return err
			}

			fmt.Printf("Saved %q. Your bank now has %d words.\n", args[0], bankStore.Len())
			return nil
		},
	}
	command.Flags().StringVar(&phonetic, "phonetic", "", "phonetic spelling")
	command.Flags().StringArrayVar(&examples, "example", nil, "example sentence (repeatable)")
	command.Flags().StringArrayVar(&translatedExamples, "translated-example", nil, "translated example sentence (repeatable, same order as --example)")

	return command
}

func newBankRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <number>",
		Short: "Remove a word by its list number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%q is not a number", args[0])
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			bankStore, cleanup, err := newBankStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := bankStore.Remove(ctx, number-1); err != nil {
				var outOfRangeErr *bank.OutOfRangeError
				if errors.As(err, &outOfRangeErr) {
					fmt.Printf("There is no word %d; the bank has %d words.\n", number, outOfRangeErr.Length)
					return nil
				}
				return err
			}

			fmt.Printf("Removed word %d. Your bank now has %d words.\n", number, bankStore.Len())
			return nil
		},
	}
}

func newBankExportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Export your bank as a printable PDF study sheet",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			bankStore, cleanup, err := newBankStore(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			pdfPath, err := cli.ExportStudySheet(bankStore, cfg.Outputs.StudySheetDirectory)
			if err != nil {
				return err
			}

			fmt.Printf("Study sheet written to %s\n", pdfPath)
			return nil
		},
	}
}
