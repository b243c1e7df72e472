// Package cli provides command-line interface functionality for specreport.
package cli

import (
	"fmt"
	"strings"

	"github.com/AndreyAkinshin/specreport/internal/errors"
	"github.com/AndreyAkinshin/specreport/internal/output"
)

// Version is set at build time.
var Version = "dev"

// out is the writer used by all commands.
var out = output.New()

// Help text alignment widths for consistent formatting.
const (
	helpFlagWidth    = 22
	helpCommandWidth = 22
)

// wantsHelp returns true if args contain -h or --help.
func wantsHelp(args []string) bool {
	for _, arg := range args {
		if arg == "-h" || arg == "--help" {
			return true
		}
	}
	return false
}

// Run executes the CLI with the given arguments and returns an exit code.
func Run(args []string) int {
	if len(args) == 0 {
		printUsage()
		return 0
	}

	switch args[0] {
	case "-h", "--help", "help":
		printUsage()
		return 0
	case "--version", "version":
		out.Println("specreport %s", Version)
		return 0
	}

	opts, remaining, err := parseGlobalFlags(args)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.ExitConfigError
	}

	if len(remaining) == 0 {
		printUsage()
		return 0
	}
	cmd := remaining[0]
	cmdArgs := remaining[1:]

	out.SetQuiet(opts.Quiet)

	switch cmd {
	case "render":
		return cmdRender(cmdArgs)
	case "reporters":
		return cmdReporters(cmdArgs)
	case "completion":
		return cmdCompletion(cmdArgs)
	case "version":
		out.Println("specreport %s", Version)
		return 0
	case "help":
		printUsage()
		return 0
	default:
		out.ErrorPrefix("unknown command %q", cmd)
		out.Hint("run 'specreport help' for usage")
		return errors.ExitConfigError
	}
}

// GlobalOptions holds parsed global flags.
type GlobalOptions struct {
	Quiet bool
}

// parseGlobalFlags extracts global flags, which may appear anywhere in the
// argument list, and returns the remaining arguments in order.
func parseGlobalFlags(args []string) (*GlobalOptions, []string, error) {
	opts := &GlobalOptions{}
	var remaining []string

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-q" || arg == "--quiet":
			opts.Quiet = true
		case arg == "--":
			remaining = append(remaining, args[i:]...)
			return opts, remaining, nil
		case arg == "--verbose" || arg == "-v":
			return nil, nil, fmt.Errorf("%s is not supported; reports are always complete", arg)
		default:
			remaining = append(remaining, arg)
		}
	}

	return opts, remaining, nil
}

// splitFlag splits "--name=value" into its parts. ok is false for
// arguments without "=".
func splitFlag(arg string) (name, value string, ok bool) {
	if !strings.HasPrefix(arg, "-") {
		return "", "", false
	}
	return strings.Cut(arg, "=")
}

func printUsage() {
	w := out

	w.HelpTitle("specreport - render test result trees as reports")

	w.HelpSection("Usage:")
	w.HelpUsage("specreport [-q] <command> [args]")

	w.HelpSection("Commands:")
	w.HelpCommand("render <file>", "Render a result tree (JSON or YAML, - for stdin)", helpCommandWidth)
	w.HelpCommand("reporters", "List available reporters", helpCommandWidth)
	w.HelpCommand("completion <shell>", "Generate shell completion (bash, zsh, fish)", helpCommandWidth)
	w.HelpCommand("version", "Show version information", helpCommandWidth)
	w.HelpCommand("help", "Show this help", helpCommandWidth)

	w.HelpSection("Global Options:")
	w.HelpFlag("-q, --quiet", "Suppress informational messages", helpFlagWidth)
	w.HelpFlag("-h, --help", "Show help", helpFlagWidth)

	w.HelpSection("Examples:")
	w.HelpExample("specreport render results.json", "Print the spec report")
	w.HelpExample("specreport render -r min results.yaml", "Print failures and the summary only")
	w.HelpExample("specreport render -r json-pretty -o report.json results.json", "Write indented JSON to a file")
	w.Println("")
}
