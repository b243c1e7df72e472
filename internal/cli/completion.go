package cli

import (
	"fmt"
	"strings"

	"github.com/AndreyAkinshin/specreport/internal/errors"
	"github.com/AndreyAkinshin/specreport/internal/reporter"
)

// cmdCompletion generates shell completion scripts.
func cmdCompletion(args []string) int {
	w := out
	shell := ""
	alias := ""

	// Parse arguments
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-h" || arg == "--help":
			printCompletionUsage()
			return 0
		case strings.HasPrefix(arg, "--alias="):
			alias = strings.TrimPrefix(arg, "--alias=")
		case arg == "--alias":
			w.ErrorPrefix("completion: --alias requires a value (--alias=<name>)")
			return errors.ExitConfigError
		case strings.HasPrefix(arg, "-"):
			w.ErrorPrefix("completion: unknown flag: %s", arg)
			printCompletionUsage()
			return errors.ExitConfigError
		default:
			if shell != "" {
				w.ErrorPrefix("completion: unexpected argument: %s", arg)
				return errors.ExitConfigError
			}
			shell = arg
		}
	}

	if shell == "" {
		w.ErrorPrefix("completion: shell required (bash, zsh, fish)")
		printCompletionUsage()
		return errors.ExitConfigError
	}

	// Use "specreport" as default command name
	cmdName := "specreport"
	if alias != "" {
		cmdName = alias
	}

	switch shell {
	case "bash":
		w.Report(generateBashCompletion(cmdName))
	case "zsh":
		w.Report(generateZshCompletion(cmdName))
	case "fish":
		w.Report(generateFishCompletion(cmdName))
	default:
		w.ErrorPrefix("completion: unsupported shell %q (use bash, zsh, or fish)", shell)
		return errors.ExitConfigError
	}

	return 0
}

// printCompletionUsage prints the help text for the completion command.
func printCompletionUsage() {
	w := out

	w.HelpTitle("specreport completion - generate shell completion scripts")

	w.HelpSection("Usage:")
	w.HelpUsage("specreport completion <shell> [--alias=<name>]")

	w.HelpSection("Arguments:")
	w.HelpFlag("<shell>", "Shell type: bash, zsh, or fish", 10)

	w.HelpSection("Options:")
	w.HelpFlag("--alias=<name>", "Generate completion for command alias", 14)
	w.HelpFlag("-h, --help", "Show this help", 14)

	w.HelpSection("Examples:")
	w.HelpExample("specreport completion bash", "Generate bash completion")
	w.HelpExample("specreport completion zsh", "Generate zsh completion")
	w.HelpExample("specreport completion fish", "Generate fish completion")
	w.HelpExample("specreport completion bash --alias=s", "Generate bash completion for alias 's'")

	w.HelpSection("Installation:")
	w.Println("  Bash:  eval \"$(specreport completion bash)\"")
	w.Println("  Zsh:   eval \"$(specreport completion zsh)\"")
	w.Println("  Fish:  specreport completion fish | source")
	w.Println("")
}

// commandDescriptions lists the CLI commands in help order.
var commandDescriptions = []struct {
	name string
	desc string
}{
	{"render", "Render a result tree"},
	{"reporters", "List available reporters"},
	{"completion", "Generate shell completion"},
	{"version", "Show version information"},
	{"help", "Show help"},
}

func commandNames() []string {
	names := make([]string, 0, len(commandDescriptions))
	for _, c := range commandDescriptions {
		names = append(names, c.name)
	}
	return names
}

func reporterNames() []string {
	var names []string
	for _, typ := range reporter.Types() {
		names = append(names, typ.String())
	}
	return names
}

// renderFlags returns the flags of the render command.
func renderFlags() []string {
	return []string{"--reporter", "--output", "--color", "--config", "--format", "--quiet", "--help"}
}

func aliasNote(cmdName, hint string) string {
	if cmdName == "specreport" {
		return fmt.Sprintf(`
# Alias support:
# If you use an alias (e.g., alias sr="specreport"), generate completion for it:
#   %s
`, hint)
	}
	return fmt.Sprintf(`
# This completion is generated for the alias "%s"
# Make sure you have the alias defined: alias %s="specreport"
`, cmdName, cmdName)
}

func generateBashCompletion(cmdName string) string {
	funcName := "_" + strings.ReplaceAll(cmdName, "-", "_") + "_completions"

	return fmt.Sprintf(`# specreport bash completion
# Add to ~/.bashrc: eval "$(specreport completion bash)"
%s
%s() {
    local cur prev words cword
    _init_completion || return

    local commands="%s"
    local flags="%s"
    local reporters="%s"

    case "${prev}" in
        %s)
            COMPREPLY=($(compgen -W "${commands} --quiet --help --version" -- "${cur}"))
            return
            ;;
        -r|--reporter)
            COMPREPLY=($(compgen -W "${reporters}" -- "${cur}"))
            return
            ;;
        --color)
            COMPREPLY=($(compgen -W "auto always never" -- "${cur}"))
            return
            ;;
        --format)
            COMPREPLY=($(compgen -W "json yaml" -- "${cur}"))
            return
            ;;
        completion)
            COMPREPLY=($(compgen -W "bash zsh fish" -- "${cur}"))
            return
            ;;
        -o|--output|--config)
            _filedir
            return
            ;;
    esac

    if [[ "${cur}" == -* ]]; then
        COMPREPLY=($(compgen -W "${flags}" -- "${cur}"))
        return
    fi

    _filedir '@(json|yaml|yml)'
}

complete -F %s %s
`, aliasNote(cmdName, `eval "$(specreport completion bash --alias=sr)"`), funcName,
		strings.Join(commandNames(), " "), strings.Join(renderFlags(), " "), strings.Join(reporterNames(), " "),
		cmdName, funcName, cmdName)
}

func generateZshCompletion(cmdName string) string {
	funcName := "_" + strings.ReplaceAll(cmdName, "-", "_")

	var commands strings.Builder
	for _, c := range commandDescriptions {
		fmt.Fprintf(&commands, "        '%s:%s'\n", c.name, c.desc)
	}

	return fmt.Sprintf(`#compdef %s
# specreport zsh completion
# Add to ~/.zshrc: eval "$(specreport completion zsh)"
%s
%s() {
    local -a commands
    commands=(
%s    )

    if (( CURRENT == 2 )); then
        _describe -t commands 'command' commands
        return
    fi

    case "${words[2]}" in
        render)
            _arguments -s \
                '(-r --reporter)'{-r,--reporter}'[Reporter]:reporter:(%s)' \
                '(-o --output)'{-o,--output}'[Output file]:file:_files' \
                '--color[Color mode]:mode:(auto always never)' \
                '--config[Config file]:file:_files' \
                '--format[Input format]:format:(json yaml)' \
                '*:result file:_files -g "*.(json|yaml|yml)"'
            ;;
        completion)
            _values 'shell' bash zsh fish
            ;;
    esac
}

compdef %s %s
`, cmdName, aliasNote(cmdName, `eval "$(specreport completion zsh --alias=sr)"`), funcName,
		commands.String(), strings.Join(reporterNames(), " "), funcName, cmdName)
}

func generateFishCompletion(cmdName string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`# specreport fish completion
# Add to config: specreport completion fish | source
%s
complete -c %s -f

`, aliasNote(cmdName, "specreport completion fish --alias=sr | source"), cmdName))

	for _, c := range commandDescriptions {
		sb.WriteString(fmt.Sprintf("complete -c %s -n '__fish_use_subcommand' -a '%s' -d '%s'\n", cmdName, c.name, c.desc))
	}

	sb.WriteString("\n# render options\n")
	render := "__fish_seen_subcommand_from render"
	sb.WriteString(fmt.Sprintf("complete -c %s -n '%s' -s r -l reporter -d 'Reporter' -xa '%s'\n", cmdName, render, strings.Join(reporterNames(), " ")))
	sb.WriteString(fmt.Sprintf("complete -c %s -n '%s' -s o -l output -d 'Output file' -r -F\n", cmdName, render))
	sb.WriteString(fmt.Sprintf("complete -c %s -n '%s' -l color -d 'Color mode' -xa 'auto always never'\n", cmdName, render))
	sb.WriteString(fmt.Sprintf("complete -c %s -n '%s' -l config -d 'Config file' -r -F\n", cmdName, render))
	sb.WriteString(fmt.Sprintf("complete -c %s -n '%s' -l format -d 'Input format' -xa 'json yaml'\n", cmdName, render))
	sb.WriteString(fmt.Sprintf("complete -c %s -n '%s' -F\n", cmdName, render))

	sb.WriteString("\n# Global flags\n")
	sb.WriteString(fmt.Sprintf("complete -c %s -s q -l quiet -d 'Suppress informational messages'\n", cmdName))
	sb.WriteString(fmt.Sprintf("complete -c %s -s h -l help -d 'Show help'\n", cmdName))

	sb.WriteString("\n# completion subcommands\n")
	for _, shell := range []string{"bash", "zsh", "fish"} {
		sb.WriteString(fmt.Sprintf("complete -c %s -n '__fish_seen_subcommand_from completion' -a '%s' -d 'Generate %s completion'\n", cmdName, shell, shell))
	}

	return sb.String()
}
