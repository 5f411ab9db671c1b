package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"wikitext/internal/diag"
	"wikitext/internal/driver"
	"wikitext/internal/logger"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file.wiki|directory>",
	Short: "Parse wiki sources and report failures without printing trees",
	Long:  `Check parses a wiki markup file, or every matching file in a directory, and prints one line per failure`,
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	checkCmd.Flags().String("ext", ".wiki", "file extension to pick up in directories")
}

func runCheck(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	timings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}

	st, err := os.Stat(filePath)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}

	if !st.IsDir() {
		if _, perr := parseFileTimed(filePath, timings); perr != nil {
			if werr := printCheckFailure(os.Stdout, filePath, perr); werr != nil {
				return werr
			}
			return errors.New("1 of 1 files failed")
		}
		if !quiet {
			if _, printErr := fmt.Fprintf(os.Stdout, "ok %s\n", filePath); printErr != nil {
				return printErr
			}
		}
		return nil
	}

	ext, jobs, err := resolveBatchOptions(cmd, filePath)
	if err != nil {
		return err
	}

	lg := logger.New(os.Stderr)
	if quiet {
		lg = logger.Discard()
	}

	start := time.Now()
	batch, err := driver.ParseDir(cmd.Context(), filePath, ext, jobs, nil)
	if err != nil {
		return fmt.Errorf("checking failed: %w", err)
	}
	lg.BatchDone(filePath, len(batch.Results), batch.ErrorCount(), time.Since(start))

	for _, r := range batch.Results {
		if r.Err == nil {
			continue
		}
		if werr := printCheckFailure(os.Stdout, r.Path, r.Err); werr != nil {
			return werr
		}
	}

	if !quiet {
		_, printErr := fmt.Fprintf(os.Stdout, "checked %d files, %d failed\n",
			len(batch.Results), batch.ErrorCount())
		if printErr != nil {
			return printErr
		}
	}

	if n := batch.ErrorCount(); n > 0 {
		return fmt.Errorf("%d of %d files failed", n, len(batch.Results))
	}
	return nil
}

// printCheckFailure пишет одну строку формата "error <код> <путь>:<строка>:<колонка> <текст>".
func printCheckFailure(w io.Writer, path string, err error) error {
	var perr *diag.ParseError
	if errors.As(err, &perr) {
		_, werr := fmt.Fprintf(w, "error parse %s:%d:%d %s\n",
			path, perr.Position.Line, perr.Position.Col, perr.Message())
		return werr
	}
	var terr *diag.TransformationError
	if errors.As(err, &terr) {
		_, werr := fmt.Fprintf(w, "error %s %s:%d:%d %s\n",
			terr.Transformation, path, terr.Span.Start.Line, terr.Span.Start.Col, terr.Cause)
		return werr
	}
	_, werr := fmt.Fprintf(w, "error io %s: %s\n", path, err)
	return werr
}
