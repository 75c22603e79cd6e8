package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/truthtalent/cv-parser/internal/ingestion"
	"github.com/truthtalent/cv-parser/internal/observability"
	"github.com/truthtalent/cv-parser/internal/parsing"
	"github.com/truthtalent/cv-parser/internal/schemas"
	"github.com/truthtalent/cv-parser/internal/types"
)

var (
	extractJSON        bool
	extractVerbose     bool
	extractConcurrency int
)

var extractCmd = &cobra.Command{
	Use:   "extract [files or directories...]",
	Short: "Extract candidate records from CV files",
	Long: `Extract structured candidate records from one or more CV files.
Directories are walked for supported documents (PDF, DOCX, TXT, HTML).
Results are printed per file; use --json for machine-readable output.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().BoolVar(&extractJSON, "json", false, "Print extracted records as JSON")
	extractCmd.Flags().BoolVar(&extractVerbose, "verbose", false, "Print detailed extraction summaries")
	extractCmd.Flags().IntVar(&extractConcurrency, "concurrency", 4, "Number of files to process in parallel")
	rootCmd.AddCommand(extractCmd)
}

// extractResult pairs a source path with its extraction outcome.
type extractResult struct {
	Path    string                 `json:"path"`
	Record  *types.CandidateRecord `json:"record,omitempty"`
	Warning string                 `json:"warning,omitempty"`
	Error   string                 `json:"error,omitempty"`
}

func runExtract(_ *cobra.Command, args []string) error {
	ctx := context.Background()

	files, err := collectFiles(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no supported CV files found")
	}

	manager := ingestion.NewManager()
	pdfExtractor, err := ingestion.NewPDFExtractor(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize PDF extractor: %w", err)
	}
	manager.Register(ingestion.FormatPDF, pdfExtractor)

	parser := parsing.NewParser()

	if extractConcurrency < 1 {
		extractConcurrency = 1
	}

	var mu sync.Mutex
	results := make([]extractResult, 0, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(extractConcurrency)

	for _, path := range files {
		g.Go(func() error {
			result := processFile(gctx, manager, parser, path)
			mu.Lock()
			results = append(results, result)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Path < results[j].Path })

	return printResults(results)
}

// processFile extracts one file. Failures are reported per file, never
// aborting the batch.
func processFile(ctx context.Context, manager *ingestion.Manager, parser *parsing.Parser, path string) extractResult {
	result := extractResult{Path: path}

	content, err := os.ReadFile(path)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	text, err := manager.ExtractText(ctx, path, content)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	record, err := parser.ExtractCandidateDataFrom(text, filepath.Base(path))
	if err != nil {
		if parsing.IsInsufficientText(err) {
			result.Warning = err.Error()
			return result
		}
		result.Error = err.Error()
		return result
	}

	if err := schemas.ValidateCandidateRecord(record); err != nil {
		result.Error = err.Error()
		return result
	}

	result.Record = record
	return result
}

func printResults(results []extractResult) error {
	if extractJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	printer := observability.NewPrinter(os.Stdout)
	failures := 0
	for _, result := range results {
		switch {
		case result.Error != "":
			failures++
			fmt.Fprintf(os.Stderr, "✗ %s: %s\n", result.Path, result.Error)
		case result.Warning != "":
			fmt.Printf("⚠ %s: %s\n", result.Path, result.Warning)
		default:
			fmt.Printf("✓ %s\n", result.Path)
			if extractVerbose {
				printer.PrintCandidateRecord(result.Record)
				printer.PrintSkillsByCategory(result.Record.SkillsByCategory)
			} else {
				fmt.Printf("  %s <%s>: %s, %d skills, confidence %.2f\n",
					result.Record.Personal.Name,
					result.Record.Personal.Email,
					result.Record.Experience.Level,
					len(result.Record.Skills),
					result.Record.ConfidenceScore)
			}
		}
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d files failed", failures, len(results))
	}
	return nil
}

// collectFiles expands the arguments into a list of supported document paths.
func collectFiles(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("cannot access %s: %w", arg, err)
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}
		err = filepath.WalkDir(arg, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			switch ingestion.DetectFormat(path, nil) {
			case ingestion.FormatPDF, ingestion.FormatDOCX, ingestion.FormatTXT, ingestion.FormatHTML:
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk %s: %w", arg, err)
		}
	}
	return files, nil
}
