package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"cinesift/internal/batch"
	"cinesift/internal/parser"
	"cinesift/internal/resolve"
)

const timeRounding = time.Millisecond

func buildRunner(ctx *commandContext, p *parser.Parser, localOnly bool, concurrency int) (*batch.Runner, error) {
	var engine *resolve.Engine
	if !localOnly {
		var err error
		engine, err = ctx.buildEngine()
		if err != nil {
			return nil, err
		}
	}
	if concurrency <= 0 {
		concurrency = ctx.config.Resolution.Concurrency
	}
	return batch.NewRunner(p, engine, concurrency, ctx.logger), nil
}

func newBatchCommand(ctx *commandContext) *cobra.Command {
	var (
		jsonOut     bool
		inputPath   string
		localOnly   bool
		concurrency int
	)

	cmd := &cobra.Command{
		Use:   "batch [filename]...",
		Short: "Process many filenames through a bounded worker pool",
		Long: `Process filenames given as arguments, or read one per line from
--input (use "-" for stdin). Unparseable names are reported, not fatal.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			filenames, err := collectFilenames(args, inputPath)
			if err != nil {
				return err
			}
			if len(filenames) == 0 {
				return fmt.Errorf("no filenames given")
			}

			p, err := ctx.buildParser()
			if err != nil {
				return err
			}
			runner, err := buildRunner(ctx, p, localOnly, concurrency)
			if err != nil {
				return err
			}

			report, err := runner.Run(cmd.Context(), filenames)
			if err != nil {
				return err
			}

			if jsonOut {
				return writeJSON(cmd, report)
			}
			printReport(cmd, report)
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the full report as JSON")
	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "File with one filename per line (- for stdin)")
	cmd.Flags().BoolVar(&localOnly, "local", false, "Skip external resolution")
	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "Parallel resolutions (default from config)")
	return cmd
}

func collectFilenames(args []string, inputPath string) ([]string, error) {
	filenames := append([]string(nil), args...)
	if inputPath == "" {
		return filenames, nil
	}

	reader := os.Stdin
	if inputPath != "-" {
		file, err := os.Open(inputPath)
		if err != nil {
			return nil, fmt.Errorf("open input list: %w", err)
		}
		defer file.Close()
		reader = file
	}

	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			filenames = append(filenames, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input list: %w", err)
	}
	return filenames, nil
}

func printReport(cmd *cobra.Command, report *batch.Report) {
	rows := make([][]string, 0, len(report.Results))
	for _, result := range report.Results {
		status := result.Metadata.ParsingMethod
		title := result.Metadata.Title
		if result.Err != nil {
			status = "error"
			title = result.Err.Error()
		}
		rows = append(rows, []string{
			result.Filename,
			title,
			yearCell(result.Metadata.Year),
			status,
		})
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, renderTable([]string{"Filename", "Title", "Year", "Status"}, rows))
	fmt.Fprintf(out, "run %s: %d parsed, %d resolved, %d failed in %s\n",
		report.RunID, report.Parsed, report.Resolved, report.Failed, report.Duration.Round(timeRounding))
}
