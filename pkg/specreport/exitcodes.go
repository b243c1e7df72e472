// Package specreport provides public constants for external tools
// integrating with the specreport CLI.
package specreport

// Exit codes returned by the specreport CLI.
// These constants allow external tools to check exit codes symbolically
// rather than using magic numbers.
const (
	// ExitSuccess indicates the report was rendered and no spec failed.
	ExitSuccess = 0

	// ExitFailure indicates a failing spec in the rendered tree or a runtime failure.
	ExitFailure = 1

	// ExitConfigError indicates invalid configuration, flags, or result input.
	ExitConfigError = 2

	// ExitEnvError indicates the report could not be written to its destination.
	ExitEnvError = 3
)
