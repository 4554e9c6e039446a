package main

import (
	"flag"
	"fmt"
	"os"

	"surveymerge/internal/testutil"
)

func main() {
	outDir := flag.String("out", "", "directory to write response files into")
	count := flag.Int("count", 100, "number of responses")
	seed := flag.Int64("seed", 1, "random seed")
	flag.Parse()
	if *outDir == "" || *count <= 0 {
		fmt.Fprintln(os.Stderr, "usage: generate_responses --out <dir> [--count n] [--seed n]")
		os.Exit(2)
	}
	paths, err := testutil.WriteSyntheticResponses(*outDir, *count, *seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generate responses: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %d responses to %s\n", len(paths), *outDir)
}
