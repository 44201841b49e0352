// Package reader loads data for the query engine.
//
// Course catalogues come from YAML fixtures (LoadCatalogYAML, or the
// embedded DefaultCatalog) or from a directory of parquet files written by
// WriteCatalogParquet. Arbitrary parquet files are read as dynamic rows:
//
//	rows := reader.Rows("data/*.parquet")
//	adults := rows.Where(func(r query.Row) bool {
//	    return query.CompareValues(r["age"], 18) >= 0
//	})
//
// Rows read through a glob pattern carry a "_file" column naming their
// source file. Readers hold a file handle and must be closed.
package reader
