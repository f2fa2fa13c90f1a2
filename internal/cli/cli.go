package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/lexc/internal/app"
	"github.com/specialistvlad/lexc/internal/keywords"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("lexc", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
lexc - translates def/out programs into C++.

Usage:
  lexc [options] [SOURCE]
  lexc [options] -project PATH
  lexc [options] -sample

Arguments:
  SOURCE
    Path to a single program file.

Language:
  def NAME = DIGITS    declare a variable
  NAME = EXPR          assign to a declared variable
  out EXPR             print an expression
`)
		fmt.Fprintf(output, "  Operators: %s\n\nOptions:\n", strings.Join(keywords.Default().Operators(), " "))
		flagSet.PrintDefaults()
	}

	projectFlag := flagSet.String("project", "", "Path to a project .hcl file or a directory of .hcl files.")
	pFlag := flagSet.String("p", "", "Path to a project .hcl file or directory (shorthand).")
	outputFlag := flagSet.String("o", app.DefaultOutputPath, "Output path for single-program runs.")
	sampleFlag := flagSet.Bool("sample", false, "Compile the built-in sample program.")
	checkFlag := flagSet.Bool("check", false, "Validate programs without generating code.")
	stdoutFlag := flagSet.Bool("stdout", false, "Print generated code instead of writing files.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	workersFlag := flagSet.Int("workers", 4, "Number of programs compiled concurrently.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	project := *projectFlag
	if project == "" {
		project = *pFlag
	}

	source := ""
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: "only one SOURCE path may be given"}
	} else if flagSet.NArg() == 1 {
		source = flagSet.Arg(0)
	}
	slog.Debug("Input determined.", "project", project, "source", source, "sample", *sampleFlag)

	if project == "" && source == "" && !*sampleFlag {
		slog.Debug("No input provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		ProjectPath: project,
		SourcePath:  source,
		UseSample:   *sampleFlag,
		OutputPath:  *outputFlag,
		CheckOnly:   *checkFlag,
		Stdout:      *stdoutFlag,
		LogFormat:   logFormat,
		LogLevel:    logLevel,
		WorkerCount: *workersFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
