package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"wikitext/internal/ast"
	"wikitext/internal/diag"
	"wikitext/internal/driver"
	"wikitext/internal/logger"
	"wikitext/internal/observ"
	"wikitext/internal/treefmt"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file.wiki|directory>",
	Short: "Parse a wiki source file or directory and output the element tree",
	Long:  `Parse reads a wiki markup file, or every matching file in a directory, and prints the normalized element tree`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json|yaml|tree)")
	parseCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	parseCmd.Flags().String("ui", "auto", "progress UI for directory processing (auto|on|off)")
	parseCmd.Flags().Bool("cache", false, "reuse parsed trees from the on-disk cache")
	parseCmd.Flags().String("ext", ".wiki", "file extension to pick up in directories")
}

func runParse(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	timings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}

	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return err
	}

	maxWidth, err := cmd.Root().PersistentFlags().GetInt("max-width")
	if err != nil {
		return fmt.Errorf("failed to get max-width flag: %w", err)
	}

	lg := logger.New(os.Stderr)
	if quiet {
		lg = logger.Discard()
	}

	// Проверяем, файл это или директория
	st, err := os.Stat(filePath)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}

	if !st.IsDir() {
		return parseOneFile(cmd, filePath, format, colorFlag, maxWidth, timings, lg)
	}
	return parseDirectory(cmd, filePath, format, colorFlag, maxWidth, quiet, lg)
}

func parseOneFile(cmd *cobra.Command, path, format, colorFlag string, maxWidth int, timings bool, lg *logger.Logger) error {
	useCache, err := cmd.Flags().GetBool("cache")
	if err != nil {
		return fmt.Errorf("failed to get cache flag: %w", err)
	}

	var tree ast.Element
	if useCache {
		var cache *driver.DiskCache
		cache, err = driver.OpenDiskCache("wikitext")
		if err != nil {
			return err
		}
		var hit bool
		tree, hit, err = driver.ParseFileCached(cache, path)
		if hit {
			lg.CacheHit(path)
		}
	} else {
		tree, err = parseFileTimed(path, timings)
	}
	if err != nil {
		useColor := colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stderr))
		if rerr := diag.Render(os.Stderr, err, diag.RenderOpts{Color: useColor, MaxWidth: maxWidth}); rerr != nil {
			return rerr
		}
		return fmt.Errorf("parse failed: %s", path)
	}

	treeColor := colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stdout))
	return renderTree(os.Stdout, tree, format, treeColor)
}

func parseDirectory(cmd *cobra.Command, dir, format, colorFlag string, maxWidth int, quiet bool, lg *logger.Logger) error {
	ext, jobs, err := resolveBatchOptions(cmd, dir)
	if err != nil {
		return err
	}

	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}

	var batch *driver.BatchResult
	if shouldUseTUI(mode) && !quiet {
		batch, err = runParseDirWithUI(cmd.Context(), "parsing "+dir, dir, ext, jobs)
	} else {
		start := time.Now()
		batch, err = driver.ParseDir(cmd.Context(), dir, ext, jobs, nil)
		if err == nil {
			for _, r := range batch.Results {
				if r.Err != nil {
					lg.FileFailed(r.Path, r.Err)
				} else {
					lg.FileParsed(r.Path, r.Elapsed)
				}
			}
			lg.BatchDone(dir, len(batch.Results), batch.ErrorCount(), time.Since(start))
		}
	}
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	// Ошибки уходят в stderr с заголовком файла, деревья — в stdout
	useColor := colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stderr))
	ropts := diag.RenderOpts{Color: useColor, MaxWidth: maxWidth}
	for _, r := range batch.Results {
		if r.Err == nil {
			continue
		}
		fmt.Fprintf(os.Stderr, "== %s ==\n", r.Path)
		if rerr := diag.Render(os.Stderr, r.Err, ropts); rerr != nil {
			return rerr
		}
	}

	treeColor := colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stdout))

	switch format {
	case "pretty", "tree":
		for idx, r := range batch.Results {
			if !quiet {
				_, printErr := fmt.Fprintf(os.Stdout, "== %s ==\n", r.Path)
				if printErr != nil {
					return printErr
				}
			}

			if r.Tree != nil {
				if err := renderTree(os.Stdout, r.Tree, format, treeColor); err != nil {
					return err
				}
			}

			if !quiet && idx < len(batch.Results)-1 {
				_, printErr := fmt.Fprintln(os.Stdout)
				if printErr != nil {
					return printErr
				}
			}
		}
	case "json":
		// Файлы с ошибками попадают в вывод как null
		output := make(map[string]ast.Element, len(batch.Results))
		for _, r := range batch.Results {
			output[r.Path] = r.Tree
		}
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(output); err != nil {
			return err
		}
	case "yaml":
		output := make(map[string]ast.Element, len(batch.Results))
		for _, r := range batch.Results {
			output[r.Path] = r.Tree
		}
		encoder := yaml.NewEncoder(os.Stdout)
		encoder.SetIndent(2)
		if err := encoder.Encode(output); err != nil {
			return err
		}
		if err := encoder.Close(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if n := batch.ErrorCount(); n > 0 {
		return fmt.Errorf("%d of %d files failed", n, len(batch.Results))
	}
	return nil
}

// parseFileTimed парсит один файл, при timings печатая сводку фаз в stderr.
func parseFileTimed(path string, timings bool) (ast.Element, error) {
	if !timings {
		return driver.ParseFile(path)
	}
	input, err := driver.Load(path)
	if err != nil {
		return nil, err
	}
	tm := observ.NewTimer()
	tree, err := driver.ParseWithTimings(input, tm)
	fmt.Fprint(os.Stderr, tm.Summary())
	return tree, err
}

func renderTree(w io.Writer, el ast.Element, format string, useColor bool) error {
	switch format {
	case "pretty":
		return treefmt.Pretty(w, el)
	case "json":
		return treefmt.JSON(w, el)
	case "yaml":
		return treefmt.YAML(w, el)
	case "tree":
		return treefmt.Tree(w, el, treefmt.TreeOpts{Color: useColor})
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
