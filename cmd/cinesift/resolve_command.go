package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"cinesift/internal/parser"
)

func newResolveCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "resolve <filename>...",
		Short: "Parse filenames and reconcile them against the metadata provider",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := ctx.buildParser()
			if err != nil {
				return err
			}
			engine, err := ctx.buildEngine()
			if err != nil {
				return err
			}
			if engine == nil {
				return errors.New("resolution is disabled in the configuration")
			}

			results := make([]parser.ParsedMetadata, 0, len(args))
			for _, filename := range args {
				meta, err := p.Parse(filename)
				if err != nil {
					return fmt.Errorf("parse %s: %w", filename, err)
				}
				resolved, err := engine.Resolve(cmd.Context(), meta)
				if err != nil {
					return fmt.Errorf("resolve %s: %w", filename, err)
				}
				results = append(results, resolved)
			}

			if jsonOut {
				return writeJSON(cmd, results)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderResolvedTable(results))
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON instead of a table")
	return cmd
}

func renderResolvedTable(results []parser.ParsedMetadata) string {
	rows := make([][]string, 0, len(results))
	for _, meta := range results {
		tmdbCell := ""
		if meta.TMDBID != 0 {
			tmdbCell = fmt.Sprintf("%d", meta.TMDBID)
		}
		rows = append(rows, []string{
			meta.Title,
			yearCell(meta.Year),
			meta.Language,
			tmdbCell,
			fmt.Sprintf("%.2f", meta.Confidence),
			meta.ParsingMethod,
		})
	}
	return renderTable([]string{"Title", "Year", "Lang", "TMDB", "Conf", "Method"}, rows)
}
