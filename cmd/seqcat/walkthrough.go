package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vegasq/seqcat/output"
	"github.com/vegasq/seqcat/query"
	"github.com/vegasq/seqcat/walkthrough"
)

func newTourCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tour",
		Short: "Run every walkthrough scenario",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := opts.openStore()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			heading := color.New(color.FgCyan, color.Bold)
			for i, s := range walkthrough.All() {
				if i > 0 {
					fmt.Fprintln(out)
				}
				heading.Fprintf(out, "# %s (%s)\n", s.Title, s.Name)
				if err := s.Run(ctx, out); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newListCommand(opts *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the walkthrough scenarios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter, err := opts.formatter(cmd, format)
			if err != nil {
				return err
			}
			scenarios := walkthrough.All()
			rows := make([]query.Row, len(scenarios))
			for i, s := range scenarios {
				rows[i] = query.Row{"name": s.Name, "title": s.Title}
			}
			return formatter.Format(rows)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", output.FormatTable, "output format (jsonl|json|csv|table)")
	return cmd
}

func newRunCommand(opts *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "run <scenario>",
		Short: "Run one scenario and format its result rows",
		Example: `  seqcat run inner-join
  seqcat run group-join-count -f table`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, ok := walkthrough.Lookup(args[0])
			if !ok {
				return fmt.Errorf("unknown scenario %q (see 'seqcat list')", args[0])
			}
			formatter, err := opts.formatter(cmd, format)
			if err != nil {
				return err
			}
			ctx, err := opts.openStore()
			if err != nil {
				return err
			}

			rows, err := s.Rows(ctx)
			if err != nil {
				return err
			}
			return formatter.Format(rows)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", output.FormatJSONLines, "output format (jsonl|json|csv|table)")
	return cmd
}
