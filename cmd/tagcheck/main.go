package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/shibukawa/tagcheck"
	"github.com/shibukawa/tagcheck/report"
)

const version = "tagcheck v0.1.0"

// Exit codes
const (
	exitValid  = 0
	exitErrors = 1
	exitFatal  = 2
)

// CLI represents the command-line interface
type CLI struct {
	Config   string           `help:"Configuration file path" default:"tagcheck.yaml"`
	Dialect  string           `help:"Tag dialect (xml, html)"`
	Format   string           `help:"Output format (text, json, yaml, checkstyle)"`
	Markdown string           `help:"Mask markdown code before checking (auto, always, never)"`
	Ignore   []string         `help:"Tag names to ignore" sep:","`
	NoColor  bool             `help:"Disable colored output"`
	Verbose  bool             `help:"Enable verbose output" short:"v"`
	Quiet    bool             `help:"Only set the exit status" short:"q"`
	Version  kong.VersionFlag `help:"Show version information"`

	File string `arg:"" help:"Document to validate" type:"path"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var cli CLI

	exited := false
	exitCode := exitValid

	parser, err := kong.New(&cli,
		kong.Name("tagcheck"),
		kong.Description("Check that tags in a document are properly nested and closed."),
		kong.Writers(stdout, stderr),
		kong.Vars{"version": version},
		kong.Exit(func(code int) {
			exited = true
			exitCode = code
		}),
	)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitFatal
	}

	_, err = parser.Parse(args)
	if exited {
		// --help and --version stop here
		return exitCode
	}
	if err != nil {
		parser.Errorf("%s", err)

		var parseErr *kong.ParseError
		if errors.As(err, &parseErr) && parseErr.Context != nil {
			_ = parseErr.Context.PrintUsage(true)
		}

		return exitFatal
	}

	logger := newLogger(stderr, cli.Verbose)

	code, err := cli.Run(stdout, logger)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}

	return code
}

// Run checks the document and writes the report
func (c *CLI) Run(stdout io.Writer, logger *slog.Logger) (int, error) {
	config, err := tagcheck.LoadConfig(c.Config)
	if err != nil {
		return exitFatal, fmt.Errorf("failed to load configuration: %w", err)
	}

	c.applyFlags(config)
	if err := config.Validate(); err != nil {
		return exitFatal, err
	}

	checker, err := tagcheck.NewChecker(config, logger)
	if err != nil {
		return exitFatal, err
	}

	result, checkErr := checker.CheckFile(c.File)
	if result == nil {
		return exitFatal, checkErr
	}

	if !c.Quiet {
		if err := c.newReporter(stdout, config).Report(result.Path, result.Verdict); err != nil {
			return exitFatal, fmt.Errorf("failed to write report: %w", err)
		}
	}

	// partial verdict was reported; the fault still fails the run
	if checkErr != nil {
		return exitFatal, checkErr
	}

	if result.Verdict.ErrorsFound {
		return exitErrors, nil
	}

	return exitValid, nil
}

// applyFlags overrides configuration values with flags given on the command line
func (c *CLI) applyFlags(config *tagcheck.Config) {
	if c.Dialect != "" {
		config.Dialect = c.Dialect
	}

	if c.Format != "" {
		config.Output.Format = c.Format
	}

	if c.Markdown != "" {
		config.Markdown = tagcheck.MarkdownMode(c.Markdown)
	}

	if len(c.Ignore) > 0 {
		config.Ignore = append(config.Ignore, c.Ignore...)
	}

	if c.NoColor {
		noColor := false
		config.Output.Color = &noColor
	}
}

func (c *CLI) newReporter(w io.Writer, config *tagcheck.Config) *report.Reporter {
	options := []report.Option{report.WithVerbose(c.Verbose)}
	if config.Output.Color != nil {
		options = append(options, report.WithColor(*config.Output.Color))
	}

	// Validate already restricted the format to a known one
	format, _ := report.ParseFormat(config.Output.Format)

	return report.New(w, format, options...)
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
