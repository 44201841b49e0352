// Package walkthrough runs the catalogue examples: one Scenario per query,
// from plain filtering to joins and aggregates, evaluated against a store.
package walkthrough

import (
	"fmt"
	"io"
	"slices"

	"github.com/vegasq/seqcat/internal/logging"
	"github.com/vegasq/seqcat/query"
	"github.com/vegasq/seqcat/store"
)

// Scenario is one named example query.
type Scenario struct {
	Name  string
	Title string

	eval func(ctx *store.Context) (Result, error)
}

// Result is what a scenario printed and the rows behind it.
type Result struct {
	Lines []string
	Rows  []query.Row
}

// Print writes one line per entry of r.Lines.
func (r Result) Print(w io.Writer) error {
	for _, line := range r.Lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// Evaluate runs the scenario's query against ctx.
func (s Scenario) Evaluate(ctx *store.Context) (Result, error) {
	logging.Debug().Str("scenario", s.Name).Msg("evaluating scenario")
	res, err := s.eval(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("failed to run %s: %w", s.Name, err)
	}
	if res.Rows == nil {
		res.Rows = []query.Row{}
	}
	return res, nil
}

// Run evaluates the scenario and prints its lines to w.
func (s Scenario) Run(ctx *store.Context, w io.Writer) error {
	res, err := s.Evaluate(ctx)
	if err != nil {
		return err
	}
	return res.Print(w)
}

// Rows evaluates the scenario and returns its result rows.
func (s Scenario) Rows(ctx *store.Context) ([]query.Row, error) {
	res, err := s.Evaluate(ctx)
	if err != nil {
		return nil, err
	}
	return res.Rows, nil
}

// All returns every scenario in walkthrough order.
func All() []Scenario {
	return slices.Clone(scenarios)
}

// Lookup finds a scenario by name.
func Lookup(name string) (Scenario, bool) {
	i := slices.IndexFunc(scenarios, func(s Scenario) bool { return s.Name == name })
	if i < 0 {
		return Scenario{}, false
	}
	return scenarios[i], true
}

// list evaluates s, rendering each element with line and row.
func list[T any](s query.Sequence[T], line func(T) string, row func(T) query.Row) (Result, error) {
	var res Result
	err := s.ForEach(func(item T) error {
		res.Lines = append(res.Lines, line(item))
		res.Rows = append(res.Rows, row(item))
		return nil
	})
	return res, err
}

// nested renders a header line followed by tab-indented members.
func nested(res *Result, header string, members []string, row query.Row) {
	res.Lines = append(res.Lines, header)
	for _, m := range members {
		res.Lines = append(res.Lines, "\t"+m)
	}
	res.Rows = append(res.Rows, row)
}

func value(v any, text string) Result {
	return Result{Lines: []string{text}, Rows: []query.Row{{"result": v}}}
}
