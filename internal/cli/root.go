// Package cli implements the flashcards command tree. Without a subcommand
// it opens the desktop window; generate runs the same flow headless.
package cli

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/ytget/flashcards/internal/config"
	"github.com/ytget/flashcards/internal/ui"
)

// runGUI opens the desktop window; replaced in tests
var runGUI = ui.Run

// NewRootCmd builds the command tree
func NewRootCmd(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "flashcards",
		Short: "Turn a video or article URL into flashcards",
		Long: `Flashcards sends a YouTube video or article URL to a flashcard generation
backend and shows the returned question/answer pairs as flippable cards that
can be exported as CSV for Anki or Quizlet.

Run without a subcommand to open the desktop window.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			return runGUI(cfg, version)
		},
	}

	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd(version))

	return rootCmd
}

// Execute runs the command tree; Ctrl-C cancels a running generation
func Execute(version string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return NewRootCmd(version).ExecuteContext(ctx)
}
