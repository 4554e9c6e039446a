package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"surveymerge/internal/config"
	"surveymerge/internal/merge"
)

// mergeFlags holds the flags that override config for a merge.
type mergeFlags struct {
	generatePDF *bool
	pdfDir      *string
	fontPath    *string
	htmlReport  *string
	duckDBPath  *string
	sheetName   *string
}

func addMergeFlags(flags *flag.FlagSet) mergeFlags {
	generatePDF := flags.Bool("generate-pdf", false, "Write a score PDF per response")
	flags.BoolVar(generatePDF, "pdf", false, "Alias for --generate-pdf")
	return mergeFlags{
		generatePDF: generatePDF,
		pdfDir:      flags.String("pdf-dir", "", "Directory for score PDFs (default: next to the spreadsheet)"),
		fontPath:    flags.String("font", "", "TrueType font for score PDFs"),
		htmlReport:  flags.String("html", "", "Write an HTML score summary to this path"),
		duckDBPath:  flags.String("db", "", "Append the run to a DuckDB database at this path"),
		sheetName:   flags.String("sheet", "", "Worksheet name"),
	}
}

// options merges config values with command-line overrides.
func (f mergeFlags) options(cfg config.Config, inputDir, output string) merge.Options {
	if output == "" {
		output = cfg.Output
	}
	return merge.Options{
		InputDir:       inputDir,
		OutputPath:     output,
		GeneratePDF:    *f.generatePDF || cfg.PDF.Enabled,
		PDFDir:         firstNonEmpty(*f.pdfDir, cfg.PDF.OutputDir),
		FontPath:       firstNonEmpty(*f.fontPath, cfg.PDF.FontPath),
		SheetName:      firstNonEmpty(*f.sheetName, cfg.SheetName),
		HighlightColor: cfg.HighlightColor,
		ColumnPadding:  cfg.Padding(),
		HTMLReport:     firstNonEmpty(*f.htmlReport, cfg.HTMLReport),
		DuckDBPath:     firstNonEmpty(*f.duckDBPath, cfg.DuckDBPath),
	}
}

// runMerge builds the handler for the merge command.
func runMerge(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
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
		if len(positional) == 0 {
			fmt.Fprintln(stderr, "input directory is required")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if len(positional) > 2 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(positional[2:], " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		output := ""
		if len(positional) == 2 {
			output = positional[1]
		}

		cfg, err := loadOptionalConfig(*common.configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Merge failed:\n%v\n", err)
			return ExitError
		}
		logger, closeLog, err := common.logger(stderr)
		if err != nil {
			fmt.Fprintf(stderr, "Merge failed: %v\n", err)
			return ExitError
		}
		defer closeLog()

		opts := overrides.options(cfg, positional[0], output)
		opts.Logger = logger
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		summary, err := merge.Run(ctx, opts)
		if err != nil {
			fmt.Fprintf(stderr, "Merge failed: %v\n", err)
			return ExitError
		}
		printSummary(stdout, summary)
		return ExitOK
	}
}

func printSummary(w io.Writer, summary merge.Summary) {
	fmt.Fprintf(w, "Merged %d JSON files into %s\n", summary.Records, summary.OutputPath)
	for _, path := range summary.PDFs {
		fmt.Fprintf(w, "Wrote %s\n", path)
	}
	if summary.HTMLReport != "" {
		fmt.Fprintf(w, "Wrote %s\n", summary.HTMLReport)
	}
	if summary.DuckDBPath != "" {
		fmt.Fprintf(w, "Exported run %s to %s\n", summary.RunID, summary.DuckDBPath)
	}
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}
