package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ytget/flashcards/internal/backend"
	"github.com/ytget/flashcards/internal/config"
	"github.com/ytget/flashcards/internal/model"
	"github.com/ytget/flashcards/internal/platform"
	"github.com/ytget/flashcards/internal/view"
)

// StdoutPath selects standard output for --out
const StdoutPath = "-"

type generateOptions struct {
	out      string
	backend  string
	noExport bool
}

// newGenerateCmd runs one generation without the window
func newGenerateCmd() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate [url]",
		Short: "Generate flashcards for a URL and export them as CSV",
		Long: `Generate sends the URL to the backend, prints the returned cards and writes
them as CSV.

The CSV goes to flashcards.csv in the export directory unless --out is given.
With --out - the CSV is written to standard output and the card listing to
standard error.

Examples:
  flashcards generate https://youtube.com/watch?v=dQw4w9WgXcQ
  flashcards generate --out deck.csv https://go.dev/blog/pipelines
  flashcards generate --backend http://10.0.0.5:8000 --out - https://example.com/article`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "CSV output path, - for stdout (default <export dir>/flashcards.csv)")
	cmd.Flags().StringVar(&opts.backend, "backend", "", "backend origin, overrides the configuration")
	cmd.Flags().BoolVar(&opts.noExport, "no-export", false, "print the cards without writing a CSV")

	return cmd
}

func runGenerate(cmd *cobra.Command, opts *generateOptions, sourceURL string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if opts.backend != "" {
		cfg.BackendURL = opts.backend
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	timeout, err := cfg.Timeout()
	if err != nil {
		return err
	}
	client, err := backend.NewClient(cfg.BackendURL, backend.WithTimeout(timeout))
	if err != nil {
		return err
	}

	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()
	toStdout := opts.out == StdoutPath && !opts.noExport

	// Keep stdout clean for the CSV
	listing := stdout
	if toStdout {
		listing = stderr
	}

	ctx := cmd.Context()
	v := view.NewWithContext(ctx, client)

	req, err := v.Submit(sourceURL)
	if err != nil {
		return err
	}
	printNotice(stderr, "Generating flashcards for %s via %s ...", req.GetDisplayURL(), client.Endpoint())

	select {
	case <-req.Done():
	case <-ctx.Done():
		<-req.Done()
	}
	printNotice(stderr, "Backend answered in %s", req.GetElapsedString())

	snap := v.Snapshot()
	if !snap.Status.IsFinished() {
		return fmt.Errorf("generation did not finish: %s", snap.Status)
	}
	if snap.Status == model.RequestStatusError {
		printError(stderr, snap.Error)
		return ErrGenerationFailed
	}

	if snap.CardCount() == 0 {
		printNotice(stderr, "No flashcards were generated for %s", req.URL)
		return nil
	}

	printCards(listing, snap.Cards)

	if opts.noExport {
		return nil
	}
	if toStdout {
		if err := v.ExportCSV(stdout); err != nil {
			return err
		}
		fmt.Fprintln(stdout)
		return nil
	}

	path, err := exportTo(v, opts.out, cfg)
	if err != nil {
		return err
	}
	printNotice(stderr, "Exported to %s", path)
	return nil
}

// exportTo writes the CSV to out, or to the export directory when out is empty
func exportTo(v *view.FlashcardView, out string, cfg *config.Config) (string, error) {
	if strings.TrimSpace(out) == "" {
		return v.ExportFile(cfg.ResolveExportDir())
	}

	path := platform.ExpandHome(out)
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return v.ExportFile(path)
	}

	if err := platform.CreateDirectoryIfNotExists(filepath.Dir(path)); err != nil {
		return "", fmt.Errorf("error creating output directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("error creating %s: %w", path, err)
	}
	if err := writeAndClose(file, v); err != nil {
		return "", err
	}
	return path, nil
}

func writeAndClose(file io.WriteCloser, v *view.FlashcardView) error {
	err := v.ExportCSV(file)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil && !errors.Is(err, view.ErrNoCards) {
		return fmt.Errorf("error writing CSV: %w", err)
	}
	return err
}
