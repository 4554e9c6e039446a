package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

type Command struct {
	Name    string
	Summary string
	Usage   []string
	Run     func(args []string, stdout, stderr io.Writer) int
}

// Run dispatches args to a command. With no args on a terminal the form
// opens; an existing directory as the first arg is shorthand for merge.
func Run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		if isTerminal(stdout) {
			return findCommand("form").Run(nil, stdout, stderr)
		}
		printUsage(stdout)
		return ExitUsage
	}
	if isHelpArg(args[0]) {
		printUsage(stdout)
		return ExitOK
	}

	cmd := findCommand(args[0])
	if cmd == nil {
		if isInputDir(args[0]) {
			return findCommand("merge").Run(args, stdout, stderr)
		}
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", args[0])
		printUsage(stderr)
		return ExitUsage
	}

	return cmd.Run(args[1:], stdout, stderr)
}

func findCommand(name string) *Command {
	for _, cmd := range commands {
		if cmd.Name == name {
			return cmd
		}
	}
	return nil
}

func isHelpArg(arg string) bool {
	switch arg {
	case "-h", "--help", "help":
		return true
	default:
		return false
	}
}

func isInputDir(arg string) bool {
	if strings.HasPrefix(arg, "-") {
		return false
	}
	info, err := os.Stat(arg)
	return err == nil && info.IsDir()
}

func wantsHelp(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "-h", "--help":
			return true
		}
	}
	return false
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  surveymerge <command> [options]")
	fmt.Fprintln(w, "  surveymerge <input_dir> [output] [--generate-pdf]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-8s %s\n", cmd.Name, cmd.Summary)
	}
	fmt.Fprintln(w, "\nUse \"surveymerge <command> --help\" for more information.")
}

func printCommandUsage(cmd *Command, w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	for _, line := range cmd.Usage {
		fmt.Fprintf(w, "  %s\n", line)
	}
	if cmd.Summary != "" {
		fmt.Fprintf(w, "\n%s\n", cmd.Summary)
	}
}

func command(name, summary string, usage []string, runner func(cmd *Command) func(args []string, stdout, stderr io.Writer) int) *Command {
	cmd := &Command{
		Name:    name,
		Summary: summary,
		Usage:   usage,
	}
	cmd.Run = runner(cmd)
	return cmd
}

var commands = []*Command{
	command("merge", "Merge JSON responses into one spreadsheet", []string{
		"surveymerge merge <input_dir> [output] [--generate-pdf] [--pdf-dir <dir>] [--font <ttf>]",
		"                  [--html <path>] [--db <path>] [--sheet <name>] [--config <path>] [--verbose] [--log <path>]",
	}, runMerge),
	command("score", "Print each response's score breakdown", []string{
		"surveymerge score <input_dir> [--json]",
	}, runScore),
	command("form", "Open the interactive form", []string{
		"surveymerge form [input_dir] [output] [--generate-pdf] [--config <path>]",
	}, runForm),
	command("init", "Scaffold .surveymerge/config.yml", []string{
		"surveymerge init [--config <path>]",
	}, runInit),
	command("validate", "Validate the config and, optionally, a response directory", []string{
		"surveymerge validate [--config <path>] [input_dir]",
	}, runValidate),
}
