package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vegasq/seqcat/internal/logging"
	"github.com/vegasq/seqcat/output"
	"github.com/vegasq/seqcat/query"
	"github.com/vegasq/seqcat/reader"
)

type rowsOptions struct {
	where    []string
	orderBy  []string
	distinct bool
	skip     int
	take     int
	format   string
}

func newRowsCommand(opts *rootOptions) *cobra.Command {
	ro := &rowsOptions{}

	cmd := &cobra.Command{
		Use:   "rows <file-or-glob>",
		Short: "Filter, order and page the rows of parquet files",
		Long: `Read parquet files as dynamic rows and query them.

Filters are applied first, then ordering, de-duplication and paging. Rows read
through a glob pattern carry a "_file" column naming their source file.`,
		Example: `  seqcat rows courses.parquet --where level=1 --order-by full_price:desc
  seqcat rows 'data/*.parquet' --order-by name --skip 10 --take 10 -f csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seq, err := ro.build(reader.Rows(args[0]), cmd.Flags().Changed("take"))
			if err != nil {
				return err
			}
			formatter, err := opts.formatter(cmd, ro.format)
			if err != nil {
				return err
			}

			rows, err := seq.ToSlice()
			if err != nil {
				return err
			}
			logging.Debug().Str("source", args[0]).Int("rows", len(rows)).Msg("queried rows")
			return formatter.Format(rows)
		},
	}

	flags := cmd.Flags()
	flags.StringArrayVar(&ro.where, "where", nil, "keep rows where column equals value (col=value, repeatable)")
	flags.StringArrayVar(&ro.orderBy, "order-by", nil, "order by column (col or col:desc, repeatable)")
	flags.BoolVar(&ro.distinct, "distinct", false, "drop duplicate rows")
	flags.IntVar(&ro.skip, "skip", 0, "skip the first n rows")
	flags.IntVar(&ro.take, "take", 0, "return at most n rows")
	flags.StringVarP(&ro.format, "format", "f", output.FormatJSONLines, "output format (jsonl|json|csv|table)")
	return cmd
}

// build chains the requested operators onto seq.
func (ro *rowsOptions) build(seq query.Sequence[query.Row], limit bool) (query.Sequence[query.Row], error) {
	for _, w := range ro.where {
		col, val, ok := strings.Cut(w, "=")
		if !ok || col == "" {
			return seq, fmt.Errorf("invalid --where %q: want col=value", w)
		}
		seq = seq.Where(query.FieldEquals(col, query.ParseValue(val)))
	}

	if len(ro.orderBy) > 0 {
		var ordered query.Ordered[query.Row]
		for i, o := range ro.orderBy {
			col, dir, err := parseOrderBy(o)
			if err != nil {
				return seq, err
			}
			if i == 0 {
				ordered = query.OrderByFunc(seq, query.CompareField(col), dir)
			} else {
				ordered = query.ThenByFunc(ordered, query.CompareField(col), dir)
			}
		}
		seq = ordered.Sequence
	}

	if ro.distinct {
		seq = query.DistinctRows(seq)
	}
	seq = seq.Skip(ro.skip)
	if limit {
		seq = seq.Take(ro.take)
	}
	return seq, nil
}

func parseOrderBy(s string) (string, query.Direction, error) {
	col, dir, hasDir := strings.Cut(s, ":")
	if col == "" {
		return "", query.Ascending, fmt.Errorf("invalid --order-by %q: empty column", s)
	}
	if !hasDir {
		return col, query.Ascending, nil
	}
	switch strings.ToLower(dir) {
	case "asc":
		return col, query.Ascending, nil
	case "desc":
		return col, query.Descending, nil
	default:
		return "", query.Ascending, fmt.Errorf("invalid --order-by %q: direction must be asc or desc", s)
	}
}
