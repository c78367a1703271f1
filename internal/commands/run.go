package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/moneyreport/internal/categorize"
	"github.com/cleared-dev/moneyreport/internal/config"
	"github.com/cleared-dev/moneyreport/internal/importer"
	"github.com/cleared-dev/moneyreport/internal/lookup"
	"github.com/cleared-dev/moneyreport/internal/metrics"
	"github.com/cleared-dev/moneyreport/internal/report"
	"github.com/cleared-dev/moneyreport/internal/runlog"
)

func newRunCommand(g *globalOptions) *cobra.Command {
	var (
		dataDir      string
		lookupPath   string
		outPath      string
		unmatchedOut string
		format       string
		summary      bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Categorize every statement in the input directory and write the report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Resolve(g.configPath)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("data") {
				cfg.Input.Dir = dataDir
			}
			if flags.Changed("format") {
				cfg.Input.Format = format
			}
			if flags.Changed("lookup") {
				cfg.Lookup.Path = lookupPath
			}
			if flags.Changed("out") {
				cfg.Output.Path = outPath
			}
			if flags.Changed("unmatched-out") {
				cfg.Output.UnmatchedPath = unmatchedOut
			}
			if flags.Changed("summary") {
				cfg.Output.Summary = summary
			}

			return runReport(cmd.OutOrStdout(), g.log, cfg, uuid.NewString(), time.Now())
		},
	}

	cmd.Flags().StringVar(&dataDir, "data", "", "directory of statement exports (default from config: data)")
	cmd.Flags().StringVar(&format, "format", "", "statement format: "+strings.Join(importer.DefaultRegistry().Formats(), ", "))
	cmd.Flags().StringVar(&lookupPath, "lookup", "", "category lookup file (default from config: category_lookup.csv)")
	cmd.Flags().StringVar(&outPath, "out", "", "report file to write (default from config: out.csv)")
	cmd.Flags().StringVar(&unmatchedOut, "unmatched-out", "", "also write unmatched descriptions as lookup rows to this file")
	cmd.Flags().BoolVar(&summary, "summary", false, "print per-category totals")

	return cmd
}

func runReport(out io.Writer, log zerolog.Logger, cfg *config.Config, runID string, now time.Time) error {
	log = log.With().Str("run_id", runID).Logger()

	registry := importer.DefaultRegistry()
	parser := registry.Get(cfg.Input.Format)
	if parser == nil {
		return fmt.Errorf("unknown statement format %q (known: %s)", cfg.Input.Format, strings.Join(registry.Formats(), ", "))
	}

	table, err := lookup.Load(cfg.Lookup.Path)
	switch {
	case errors.Is(err, lookup.ErrMissingFile):
		if _, err := fmt.Fprintf(out, report.MissingLookupHint, cfg.Lookup.Path); err != nil {
			return err
		}
	case err != nil:
		return err
	}
	for _, d := range table.Duplicates() {
		log.Warn().
			Str("description", d.Description).
			Str("replaced", d.Replaced).
			Str("category", d.Category).
			Msg("duplicate lookup entry, last one wins")
	}
	log.Info().Str("path", cfg.Lookup.Path).Int("entries", table.Len()).Msg("loaded category lookup")

	c := categorize.New(table)
	res, err := importer.Aggregate(cfg.Input.Dir, parser, c, log)
	if err != nil {
		return err
	}

	if err := report.WriteFile(cfg.Output.Path, res.Transactions); err != nil {
		return err
	}
	categorized := 0
	for _, txn := range res.Transactions {
		if txn.Categorized() {
			categorized++
		}
	}
	log.Info().
		Str("path", cfg.Output.Path).
		Int("files", len(res.Files)).
		Int("rows", len(res.Transactions)).
		Int("categorized", categorized).
		Msg("wrote report")

	unmatched := c.Unmatched()
	if err := report.PrintUnmatched(out, unmatched); err != nil {
		return err
	}

	if cfg.Output.UnmatchedPath != "" {
		if err := writeUnmatched(cfg.Output.UnmatchedPath, unmatched); err != nil {
			return err
		}
		log.Info().Str("path", cfg.Output.UnmatchedPath).Int("rows", len(unmatched)).Msg("wrote unmatched descriptions")
	}

	if cfg.Output.Summary {
		if _, err := fmt.Fprintln(out); err != nil {
			return err
		}
		if err := report.PrintSummary(out, report.Summarize(res.Transactions)); err != nil {
			return err
		}
	}

	if cfg.RunLog != "" {
		entry := runlog.Entry{
			Timestamp:    now,
			RunID:        runID,
			Files:        len(res.Files),
			Transactions: len(res.Transactions),
			Unmatched:    len(unmatched),
			Output:       cfg.Output.Path,
		}
		if err := runlog.Append(cfg.RunLog, []runlog.Entry{entry}); err != nil {
			return err
		}
	}

	if cfg.MetricsFile != "" {
		rec := metrics.New()
		rec.Observe(runID, len(res.Files), res.Transactions, len(unmatched), now)
		if err := rec.WriteTextfile(cfg.MetricsFile); err != nil {
			return err
		}
	}

	return nil
}

// writeUnmatched writes descriptions as lookup rows with an empty category.
func writeUnmatched(path string, descriptions []string) error {
	entries := make([]lookup.Entry, len(descriptions))
	for i, d := range descriptions {
		entries[i] = lookup.Entry{Description: d}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating unmatched file: %w", err)
	}
	if err := lookup.WriteEntries(f, entries); err != nil {
		f.Close()
		return fmt.Errorf("writing unmatched file %s: %w", path, err)
	}
	return f.Close()
}
