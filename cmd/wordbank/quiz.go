package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chiahsuan/wordbank/internal/cli"
	"github.com/chiahsuan/wordbank/internal/quiz"
)

func newQuizCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "quiz",
		Short: "Quiz yourself on your saved words with multiple-choice questions",
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

			session := quiz.NewSession(quiz.NewSelector(nil), nil)
			quizCLI := cli.NewQuizCLI(bankStore, session, nil, nil)

			if err := quizCLI.Start(); err != nil {
				var insufficientErr *quiz.InsufficientBankError
				if errors.As(err, &insufficientErr) {
					fmt.Printf("Save at least %d words before starting a quiz (you have %d).\n",
						insufficientErr.Required, insufficientErr.Actual)
					return nil
				}
				return err
			}

			fmt.Printf("Starting quiz with %d questions\n\n", session.Length())
			return quizCLI.Run(ctx, quizCLI)
		},
	}
}
