package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"surveymerge/internal/config"
	"surveymerge/internal/survey"
)

// runValidate builds the handler for the validate command. It checks the
// config and, when a directory is given, that every response file loads.
func runValidate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		configPath := flags.String("config", "", "Path to config file (default: search for .surveymerge/config.yml)")
		positional, code, ok := parseCommandArgs(cmd, flags, args, stdout, stderr)
		if !ok {
			return code
		}
		if len(positional) > 1 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(positional[1:], " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		if err := validateConfig(*configPath, stdout); err != nil {
			printValidationFailure(stderr, err)
			return ExitError
		}
		if len(positional) == 1 {
			records, err := survey.LoadDir(positional[0])
			if err != nil {
				printValidationFailure(stderr, err)
				return ExitError
			}
			fmt.Fprintf(stdout, "Responses OK: %d JSON files in %s\n", len(records), positional[0])
		}
		return ExitOK
	}
}

// validateConfig loads the explicit or discovered config. Without either,
// defaults apply and validation passes.
func validateConfig(configPath string, stdout io.Writer) error {
	resolved, err := resolveConfigPath(configPath)
	if errors.Is(err, config.ErrConfigNotFound) && strings.TrimSpace(configPath) == "" {
		fmt.Fprintln(stdout, "Config OK (no config file, using defaults)")
		return nil
	}
	if err != nil {
		return err
	}
	if _, err := config.Load(resolved); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Config OK (%s)\n", resolved)
	return nil
}

func printValidationFailure(stderr io.Writer, err error) {
	var validation *config.ValidationError
	if errors.As(err, &validation) {
		fmt.Fprintf(stderr, "Validation failed: %d issue(s)\n", len(validation.Issues))
		for _, issue := range validation.Issues {
			fmt.Fprintf(stderr, "  - %s: %s\n", issue.Field, issue.Message)
		}
		return
	}
	fmt.Fprintf(stderr, "Validation failed:\n%v\n", err)
}
