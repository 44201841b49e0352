package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vegasq/seqcat/internal/logging"
	"github.com/vegasq/seqcat/output"
	"github.com/vegasq/seqcat/reader"
)

func newSchemaCommand(opts *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "schema <file>",
		Short: "Show the columns of a parquet file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter, err := opts.formatter(cmd, format)
			if err != nil {
				return err
			}
			rows, err := reader.SchemaRows(args[0])
			if err != nil {
				return err
			}
			return formatter.Format(rows)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", output.FormatTable, "output format (jsonl|json|csv|table)")
	return cmd
}

func newFixtureCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "fixture <dir>",
		Short: "Write the catalogue as parquet files",
		Long: `Write the loaded catalogue into dir as authors.parquet, tags.parquet and
courses.parquet. The directory can be passed back with --data.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := reader.LoadCatalog(opts.cfg.Data)
			if err != nil {
				return err
			}
			if err := reader.WriteCatalogParquet(args[0], cat); err != nil {
				return err
			}
			logging.Info().Str("dir", args[0]).Msg("wrote catalog")
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s courses, %s authors and %s tags to %s\n",
				humanize.Comma(int64(len(cat.Courses))),
				humanize.Comma(int64(len(cat.Authors))),
				humanize.Comma(int64(len(cat.Tags))),
				args[0])
			return err
		},
	}
}
