package cli

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"unicode/utf8"

	"surveymerge/internal/merge"
)

const totalLabel = "Итого"

// runScore builds the handler for the score command.
func runScore(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		asJSON := flags.Bool("json", false, "Print breakdowns as JSON")
		positional, code, ok := parseCommandArgs(cmd, flags, args, stdout, stderr)
		if !ok {
			return code
		}
		if len(positional) != 1 {
			fmt.Fprintln(stderr, "exactly one input directory is required")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		respondents, err := merge.Score(positional[0])
		if err != nil {
			fmt.Fprintf(stderr, "Score failed: %v\n", err)
			return ExitError
		}
		if *asJSON {
			encoder := json.NewEncoder(stdout)
			encoder.SetEscapeHTML(false)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(respondents); err != nil {
				fmt.Fprintf(stderr, "Score failed: %v\n", err)
				return ExitError
			}
			return ExitOK
		}
		printBreakdowns(stdout, respondents)
		return ExitOK
	}
}

func printBreakdowns(w io.Writer, respondents []merge.Respondent) {
	for i, respondent := range respondents {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s (%s)\n", respondent.Name, respondent.Source)
		width := utf8.RuneCountInString(totalLabel)
		for _, component := range respondent.Breakdown.Components {
			if n := utf8.RuneCountInString(component.Label); n > width {
				width = n
			}
		}
		for _, component := range respondent.Breakdown.Components {
			fmt.Fprintf(w, "  %-*s  %d\n", width, component.Label, component.Points)
		}
		fmt.Fprintf(w, "  %-*s  %d\n", width, totalLabel, respondent.Breakdown.Total)
	}
}

