package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// commonFlags are shared by commands that run the pipeline.
type commonFlags struct {
	configPath *string
	verbose    *bool
	logPath    *string
}

func addCommonFlags(flags *flag.FlagSet) commonFlags {
	return commonFlags{
		configPath: flags.String("config", "", "Path to config file (default: search for .surveymerge/config.yml)"),
		verbose:    flags.Bool("verbose", false, "Log progress to stderr"),
		logPath:    flags.String("log", "", "Write logs to a file"),
	}
}

// logger builds the run logger. Logs are discarded unless --verbose or --log
// is given; the returned close func releases the log file.
func (c commonFlags) logger(stderr io.Writer) (*slog.Logger, func(), error) {
	if *c.logPath != "" {
		file, err := os.OpenFile(*c.logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		handler := slog.NewTextHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug})
		return slog.New(handler), func() { _ = file.Close() }, nil
	}
	if *c.verbose {
		handler := slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		return slog.New(handler), func() {}, nil
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
}

// parseInterspersed parses flags that may appear before, between, or after
// positional arguments.
func parseInterspersed(flags *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := flags.Parse(args); err != nil {
			return nil, err
		}
		rest := flags.Args()
		if len(rest) == 0 {
			return positional, nil
		}
		positional = append(positional, rest[0])
		args = rest[1:]
	}
}

// parseCommandArgs parses args for cmd and reports the exit code to use when
// parsing fails. ok is false when the caller should return code.
func parseCommandArgs(cmd *Command, flags *flag.FlagSet, args []string, stdout, stderr io.Writer) (positional []string, code int, ok bool) {
	flags.SetOutput(stderr)
	positional, err := parseInterspersed(flags, args)
	if err != nil {
		if err == flag.ErrHelp {
			printCommandUsage(cmd, stdout)
			return nil, ExitOK, false
		}
		fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
		printCommandUsage(cmd, stderr)
		return nil, ExitUsage, false
	}
	return positional, ExitOK, true
}
