// Package main provides the datash command line entrypoint.
//
// datash converts documents between the formats the engine knows:
//
//	datash convert --to yaml items.json
//	cat rows.csv | datash convert --from csv --to json
//	datash formats
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
