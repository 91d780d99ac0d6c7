package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"cinesift/internal/parser"
)

func newParseCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "parse <filename>...",
		Short: "Parse filenames locally, without contacting the provider",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := ctx.buildParser()
			if err != nil {
				return err
			}

			results := make([]parser.ParsedMetadata, 0, len(args))
			for _, filename := range args {
				meta, err := p.Parse(filename)
				if err != nil {
					return fmt.Errorf("parse %s: %w", filename, err)
				}
				results = append(results, meta)
			}

			if jsonOut {
				return writeJSON(cmd, results)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderMetadataTable(results))
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON instead of a table")
	return cmd
}

func renderMetadataTable(results []parser.ParsedMetadata) string {
	rows := make([][]string, 0, len(results))
	for _, meta := range results {
		rows = append(rows, []string{
			meta.Title,
			yearCell(meta.Year),
			meta.Quality,
			meta.Source,
			meta.Edition,
			meta.Language,
			fmt.Sprintf("%.2f", meta.Confidence),
			meta.ParsingMethod,
		})
	}
	return renderTable([]string{"Title", "Year", "Quality", "Source", "Edition", "Lang", "Conf", "Method"}, rows)
}

func yearCell(year int) string {
	if year == 0 {
		return ""
	}
	return strconv.Itoa(year)
}
