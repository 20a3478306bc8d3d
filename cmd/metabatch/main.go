// Package main provides the CLI entrypoint for metabatch.
//
// metabatch batch-registers identifiers from tabular metadata:
//   - Loads a line-oriented mapping configuration (destination = expression)
//   - Transforms each CSV/TSV input row into a flat metadata record
//     and, for path destinations, a hierarchical DataCite document
//   - Mints, creates, or updates one identifier per row via the EZID API
//   - Writes one result row per record, flushed as it goes
package main

func main() {
	Execute()
}
