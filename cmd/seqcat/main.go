// Command seqcat runs the course catalogue walkthrough and queries parquet
// files with the sequence query engine.
//
// Usage:
//
//	seqcat [--config file] [--data path] <command> [flags]
//
// Commands:
//
//	tour     Run every walkthrough scenario
//	list     List the walkthrough scenarios
//	run      Run one scenario and format its rows
//	rows     Filter, order and page the rows of parquet files
//	schema   Show the columns of a parquet file
//	fixture  Write the catalogue as parquet files
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
