package cli

import (
	"io"
	"os"

	"github.com/AndreyAkinshin/specreport/internal/config"
	"github.com/AndreyAkinshin/specreport/internal/errors"
	"github.com/AndreyAkinshin/specreport/internal/reporter"
	"github.com/AndreyAkinshin/specreport/internal/result"
	"github.com/AndreyAkinshin/specreport/pkg/specreport"
)

// stdin is read when the result file is "-".
var stdin io.Reader = os.Stdin

// renderOptions holds the flags of the render command. Empty values fall
// back to the config file.
type renderOptions struct {
	File     string
	Reporter string
	Output   string
	Color    string
	Config   string
	Format   string
}

func parseRenderArgs(args []string) (*renderOptions, error) {
	opts := &renderOptions{}

	value := func(i *int, name string) (string, error) {
		if *i+1 >= len(args) {
			return "", errors.Configf("%s requires a value", name)
		}
		*i++
		return args[*i], nil
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if name, v, ok := splitFlag(arg); ok {
			if err := opts.set(name, v); err != nil {
				return nil, err
			}
			continue
		}

		var err error
		switch arg {
		case "-r", "--reporter":
			opts.Reporter, err = value(&i, arg)
		case "-o", "--output":
			opts.Output, err = value(&i, arg)
		case "--color":
			opts.Color, err = value(&i, arg)
		case "--config":
			opts.Config, err = value(&i, arg)
		case "--format":
			opts.Format, err = value(&i, arg)
		case "-":
			err = opts.setFile(arg)
		default:
			if len(arg) > 1 && arg[0] == '-' {
				return nil, errors.Configf("render: unknown flag: %s", arg)
			}
			err = opts.setFile(arg)
		}
		if err != nil {
			return nil, err
		}
	}

	if opts.File == "" {
		return nil, errors.Config("render: result file required (use - for stdin)")
	}
	return opts, nil
}

func (o *renderOptions) set(name, value string) error {
	switch name {
	case "-r", "--reporter":
		o.Reporter = value
	case "-o", "--output":
		o.Output = value
	case "--color":
		o.Color = value
	case "--config":
		o.Config = value
	case "--format":
		o.Format = value
	default:
		return errors.Configf("render: unknown flag: %s", name)
	}
	return nil
}

func (o *renderOptions) setFile(arg string) error {
	if o.File != "" {
		return errors.Configf("render: unexpected argument: %s", arg)
	}
	o.File = arg
	return nil
}

// cmdRender renders a result tree and prints it or writes it to a file.
// The exit code is non-zero when any spec in the tree failed.
func cmdRender(args []string) int {
	if wantsHelp(args) {
		printRenderUsage()
		return 0
	}

	opts, err := parseRenderArgs(args)
	if err != nil {
		out.ErrorPrefix("%v", err)
		out.Hint("run 'specreport render --help' for usage")
		return errors.GetExitCode(err)
	}

	cfg, err := loadConfig(opts.Config)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.GetExitCode(err)
	}
	applyRenderFlags(cfg, opts)
	if _, err := config.Validate(cfg); err != nil {
		out.ErrorPrefix("%v", err)
		return errors.ExitConfigError
	}

	typ, err := reporter.ParseType(cfg.Reporter)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.GetExitCode(err)
	}

	suite, err := loadResults(opts)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.GetExitCode(err)
	}

	styled := useStyling(cfg.Color, cfg.Output != "", out.Interactive())
	report, err := reporter.Render(typ, suite, styled)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.GetExitCode(err)
	}

	if cfg.Output == "" {
		out.Report(report)
		if typ == reporter.TypeJSON || typ == reporter.TypeJSONPretty {
			out.Report("\n")
		}
	} else {
		if err := reporter.WriteFile(cfg.Output, report); err != nil {
			out.ErrorPrefix("%v", err)
			return errors.GetExitCode(err)
		}
		out.Info("wrote %s report to %s", typ, cfg.Output)
	}

	if suite.HasFailures() {
		return specreport.ExitFailure
	}
	return specreport.ExitSuccess
}

// loadConfig reads the config file named by path, or the one discovered in
// the working directory, and prints its warnings.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		path = config.Discover(".")
	}
	if path == "" {
		return config.Default(), nil
	}

	cfg, warnings, err := config.LoadAndValidate(path)
	for _, warning := range warnings {
		out.Warning("%s: %s", path, warning)
	}
	return cfg, err
}

func applyRenderFlags(cfg *config.Config, opts *renderOptions) {
	if opts.Reporter != "" {
		cfg.Reporter = opts.Reporter
	}
	if opts.Output != "" {
		cfg.Output = opts.Output
	}
	if opts.Color != "" {
		cfg.Color = opts.Color
	}
}

func loadResults(opts *renderOptions) (*result.SuiteResult, error) {
	format := result.FormatFromPath(opts.File)
	switch opts.Format {
	case "":
	case "json":
		format = result.FormatJSON
	case "yaml", "yml":
		format = result.FormatYAML
	default:
		return nil, errors.Configf("render: unknown format %q (valid: json, yaml)", opts.Format)
	}

	if opts.File != "-" {
		if opts.Format == "" {
			return result.Load(opts.File)
		}
		data, err := os.ReadFile(opts.File)
		if err != nil {
			return nil, errors.Input(opts.File, "failed to read result file", err)
		}
		return result.Parse(data, format)
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, errors.Input("<stdin>", "failed to read result tree", err)
	}
	return result.Parse(data, format)
}

// useStyling decides whether the text reporters decorate their output.
// Files are plain unless color is forced.
func useStyling(mode string, toFile, interactive bool) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return !toFile && interactive
	}
}

func printRenderUsage() {
	w := out

	w.HelpTitle("specreport render - render a result tree")

	w.HelpSection("Usage:")
	w.HelpUsage("specreport render [options] <file>")

	w.HelpSection("Options:")
	w.HelpFlag("-r, --reporter <type>", "spec, min, json, json-pretty (default spec)", helpFlagWidth)
	w.HelpFlag("-o, --output <path>", "Write the report to a file instead of stdout", helpFlagWidth)
	w.HelpFlag("--color <mode>", "auto, always, never (default auto)", helpFlagWidth)
	w.HelpFlag("--config <path>", "Config file (default ./specreport.yaml)", helpFlagWidth)
	w.HelpFlag("--format <format>", "Input format: json, yaml (default from extension)", helpFlagWidth)
	w.HelpFlag("-h, --help", "Show this help", helpFlagWidth)

	w.HelpSection("Exit Codes:")
	w.Println("  0  all specs passed or were skipped")
	w.Println("  1  at least one spec failed")
	w.Println("  2  invalid flags, config, or result file")
	w.Println("  3  the report could not be written")
	w.Println("")
}
