// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pdiddy/research-clusters/internal/corpus"
)

var corpusCmd = &cobra.Command{
	Use:   "corpus",
	Short: "Manage the corpus store (ingest, list)",
	Long: `Corpus manages a local SQLite store of papers and the citations between
them. Use subcommands to ingest YAML corpus files or list stored papers.`,
}

// --- ingest subcommand ---

var corpusIngestCmd = &cobra.Command{
	Use:   "ingest <corpus.yaml | pattern>...",
	Short: "Ingest YAML corpus files into the corpus store",
	Long: `Ingest reads each corpus file (records plus citation edges) and upserts
its papers and citations into the store. Papers already present are
updated in place.

Arguments may be glob patterns, including ** (e.g. "corpus/files/**/*.yaml").`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCorpusIngest,
}

func runCorpusIngest(cmd *cobra.Command, args []string) error {
	cfg, err := appConfig(cmd)
	if err != nil {
		return err
	}
	store, err := corpus.NewStore(cfg.Store)
	if err != nil {
		return err
	}
	defer store.Close()

	paths, err := expandPatterns(args)
	if err != nil {
		return err
	}

	// A terminal ingesting several files gets a progress bar instead of
	// per-record lines.
	var (
		detail io.Writer = os.Stdout
		bar    *progressbar.ProgressBar
	)
	if len(paths) > 1 && term.IsTerminal(int(os.Stderr.Fd())) {
		detail = io.Discard
		bar = progressbar.NewOptions(len(paths),
			progressbar.OptionSetDescription("Ingesting"),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionOnCompletion(func() { fmt.Fprintln(os.Stderr) }),
		)
	}

	var total corpus.IngestSummary
	for _, path := range paths {
		if bar == nil {
			fmt.Fprintf(os.Stdout, "ingesting %s\n", path)
		}
		summary, err := store.Ingest(cmd.Context(), path, detail)
		if err != nil {
			return fmt.Errorf("ingesting %s: %w", path, err)
		}
		total.Added += summary.Added
		total.Updated += summary.Updated
		total.Edges += summary.Edges
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	if bar != nil {
		_ = bar.Finish()
		fmt.Fprintf(os.Stdout, "%d files: added: %d, updated: %d, citations: %d\n",
			len(paths), total.Added, total.Updated, total.Edges)
	}
	return nil
}

// expandPatterns resolves each argument as a doublestar glob. Arguments
// without glob metacharacters are kept as given so a missing file reports
// its own error. A pattern matching nothing is an error.
func expandPatterns(args []string) ([]string, error) {
	var paths []string
	seen := make(map[string]bool)
	for _, arg := range args {
		if !strings.ContainsAny(arg, "*?[{") {
			if !seen[arg] {
				seen[arg] = true
				paths = append(paths, arg)
			}
			continue
		}
		matches, err := doublestar.FilepathGlob(arg)
		if err != nil {
			return nil, fmt.Errorf("expanding %q: %w", arg, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no corpus files match %q", arg)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				paths = append(paths, m)
			}
		}
	}
	return paths, nil
}

// --- list subcommand ---

var corpusListCmd = &cobra.Command{
	Use:   "list",
	Short: "List papers in the corpus store",
	RunE:  runCorpusList,
}

func runCorpusList(cmd *cobra.Command, args []string) error {
	cfg, err := appConfig(cmd)
	if err != nil {
		return err
	}
	store, err := corpus.NewStore(cfg.Store)
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := store.Records(cmd.Context())
	if err != nil {
		return err
	}
	graph, err := store.Graph(cmd.Context())
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Println("No papers stored.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-20s  %-50s  %-4s  %s\n", "ID", "Title", "Year", "Citations")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 90))
	for _, r := range records {
		id := corpus.Truncate(r.ID, 20)
		title := corpus.Truncate(r.Title, 50)
		year := "-"
		if !r.Date.IsZero() {
			year = fmt.Sprint(r.Date.Year())
		}
		fmt.Fprintf(os.Stdout, "%-20s  %-50s  %-4s  %d\n", id, title, year, r.Citations())
	}

	fmt.Fprintf(os.Stdout, "\n%d papers, %d citations\n", len(records), len(graph.Edges))
	return nil
}

func init() {
	corpusCmd.AddCommand(corpusIngestCmd)
	corpusCmd.AddCommand(corpusListCmd)

	rootCmd.AddCommand(corpusCmd)
}
