// Package query provides a lazy, in-memory sequence query engine.
//
// A Sequence wraps an iterator over records of a single element type.
// Operators compose by chaining and each returns a new Sequence that wraps
// its upstream iterator:
//   - Where for predicate filtering
//   - OrderBy / ThenBy for stable multi-key ordering
//   - Select and SelectMany for projection and flattening
//   - GroupBy for partitioning by key
//   - Join, GroupJoin and CrossJoin for combining two sequences
//   - Distinct for set deduplication
//   - Skip and Take for paging
//
// Terminal operations pull elements through the chain:
//   - FirstOrDefault, SingleOrDefault and friends for element lookup
//   - All, Any and Count for quantification
//   - Max, Min, Sum and Average for aggregation
//   - ToSlice and ForEach for materialization
//
// # Basic Usage
//
// Filter and order a slice of records:
//
//	courses := query.From(catalog.Courses)
//	names, err := query.Select(
//	    query.OrderBy(courses.Where(func(c catalog.Course) bool {
//	        return strings.Contains(strings.ToLower(c.Name), "c#")
//	    }), func(c catalog.Course) string { return c.Name }).Sequence,
//	    func(c catalog.Course) string { return c.Name },
//	).ToSlice()
//
// # Laziness
//
// Nothing is evaluated until a terminal operation runs. Every terminal
// operation re-runs the whole chain from its source: there is no caching
// between iterations, so two iterations of the same chain (even concurrent
// ones) are independent of each other.
//
// # Dynamic Rows
//
// Records read from parquet files are Rows (maps from column name to value).
// Field, FieldKey, FieldEquals, CompareField and DistinctRows adapt the
// engine to them with the usual type coercion:
//   - Numeric values are compared as float64
//   - Strings compare lexically and are case-sensitive
//   - Values of different kinds sort nil, bool, number, string, time, then
//     lists and other values
//
// Group and join on FieldKey rather than Field: list and byte columns are
// not valid map keys, and a raw key of that kind fails with
// ErrInvalidArgument.
//
// # Error Handling
//
// Failures surface when a terminal operation is evaluated, never when a
// chain is built:
//   - ErrInvalidArgument for nil functions and negative counts
//   - ErrEmptySequence for Max, Min, Average and First over no elements
//   - ErrMultipleMatches for Single and SingleOrDefault
//
// "No result" from FirstOrDefault and SingleOrDefault is reported as an
// empty Optional, not an error.
package query
