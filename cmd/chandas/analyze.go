package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"chandas/internal/meter"
	"chandas/internal/prosody"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// analyzeCmd scans verses and reports their meter
var analyzeCmd = &cobra.Command{
	Use:   "analyze [file...]",
	Short: "Scan verse text and identify its meter",
	Long: `Reads Devanagari verse from the given files (or stdin when no files are
given), scans each verse into Laghu/Guru weights, and matches the result
against the meter catalogue.

Blank lines separate verses; within a verse, each line is one pada.`,
	RunE: runAnalyze,
}

// verseReport is the analysis of one verse: the rendered weight pattern and
// the meter message, both in the fixed textual contract.
type verseReport struct {
	Pattern string
	Meter   string
}

// analyzeText splits text into blank-line-separated verses and classifies
// each one.
func analyzeText(reg *meter.Registry, text string) []verseReport {
	var reports []verseReport
	for _, stanza := range splitVerses(text) {
		verse := prosody.ScanVerse(stanza)
		result := reg.Classify(verse)
		reports = append(reports, verseReport{
			Pattern: verse.String(),
			Meter:   result.Message(),
		})
	}
	return reports
}

// splitVerses breaks input into stanzas on runs of blank lines. Stanzas that
// are entirely blank are dropped.
func splitVerses(text string) []string {
	var verses []string
	var current []string
	flush := func() {
		if len(current) > 0 {
			verses = append(verses, strings.Join(current, "\n"))
			current = nil
		}
	}
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()
	return verses
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	reg, err := buildRegistry()
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	log := logger.With(zap.String("run_id", runID))

	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		printReports(cmd, "", analyzeText(reg, string(data)))
		log.Debug("analyzed stdin", zap.Int("bytes", len(data)))
		return nil
	}

	// Analyze files concurrently, print in argument order.
	results := make([][]verseReport, len(args))
	var g errgroup.Group
	for i, path := range args {
		i, path := i, path
		g.Go(func() error {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}
			results[i] = analyzeText(reg, string(data))
			log.Debug("analyzed file",
				zap.String("path", path),
				zap.Int("verses", len(results[i])))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, path := range args {
		header := ""
		if len(args) > 1 {
			header = path
		}
		printReports(cmd, header, results[i])
	}
	return nil
}

func printReports(cmd *cobra.Command, header string, reports []verseReport) {
	out := cmd.OutOrStdout()
	if header != "" {
		fmt.Fprintf(out, "== %s\n", header)
	}
	if len(reports) == 0 {
		fmt.Fprintln(out, meter.MatchResult{}.Message())
		return
	}
	for i, r := range reports {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintln(out, r.Pattern)
		fmt.Fprintln(out, r.Meter)
	}
}
