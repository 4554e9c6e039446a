package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"surveymerge/internal/merge"
	"surveymerge/internal/ui/form"
)

// runFormProgram runs the form until the user quits.
var runFormProgram = func(model form.Model, stdout io.Writer) (form.Model, error) {
	final, err := tea.NewProgram(model, tea.WithOutput(stdout)).Run()
	if err != nil {
		return model, err
	}
	typed, ok := final.(form.Model)
	if !ok {
		return model, fmt.Errorf("unexpected form model %T", final)
	}
	return typed, nil
}

// runForm builds the handler for the form command.
func runForm(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		common := addCommonFlags(flags)
		overrides := addMergeFlags(flags)
		positional, code, ok := parseCommandArgs(cmd, flags, args, stdout, stderr)
		if !ok {
			return code
		}
		if len(positional) > 2 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(positional[2:], " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if !isTerminal(stdout) {
			fmt.Fprintln(stderr, "The form needs an interactive terminal; use \"surveymerge merge\" instead.")
			return ExitError
		}

		cfg, err := loadOptionalConfig(*common.configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Form failed:\n%v\n", err)
			return ExitError
		}
		// Verbose logs would draw over the form; only --log is honored.
		logger, closeLog, err := common.logger(io.Discard)
		if err != nil {
			fmt.Fprintf(stderr, "Form failed: %v\n", err)
			return ExitError
		}
		defer closeLog()

		inputDir, output := "", cfg.Output
		if len(positional) > 0 {
			inputDir = positional[0]
		}
		if len(positional) > 1 {
			output = positional[1]
		}
		defaults := overrides.options(cfg, inputDir, output)
		run := func(ctx context.Context, req form.Request) (merge.Summary, error) {
			opts := overrides.options(cfg, req.InputDir, req.OutputPath)
			opts.GeneratePDF = req.GeneratePDF
			opts.Logger = logger
			return merge.Run(ctx, opts)
		}
		model := form.NewModel(run, form.Options{
			InputDir:    defaults.InputDir,
			OutputPath:  defaults.OutputPath,
			GeneratePDF: defaults.GeneratePDF,
			NoColor:     !useColor(),
		})

		final, err := runFormProgram(model, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "Form failed: %v\n", err)
			return ExitError
		}
		if summary, ok := final.Summary(); ok {
			printSummary(stdout, summary)
		}
		return ExitOK
	}
}
