package config

import (
	"fmt"
	"strings"

	"github.com/AndreyAkinshin/specreport/internal/reporter"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks a configuration for errors and returns warnings for non-fatal issues.
func Validate(cfg *Config) (warnings []string, err error) {
	if _, err := reporter.ParseType(cfg.Reporter); err != nil {
		return nil, &ValidationError{
			Field:   "reporter",
			Message: fmt.Sprintf("unknown reporter %q", cfg.Reporter),
		}
	}

	if err := ValidateColor(cfg.Color); err != nil {
		return nil, err
	}

	if strings.HasSuffix(cfg.Output, "/") {
		return nil, &ValidationError{
			Field:   "output",
			Message: fmt.Sprintf("%q is a directory, expected a file path", cfg.Output),
		}
	}

	if cfg.Color == ColorAlways && cfg.Output != "" {
		warnings = append(warnings, "color \"always\" writes escape sequences into "+cfg.Output)
	}

	return warnings, nil
}

// ValidateColor checks a color mode value.
func ValidateColor(mode string) error {
	switch mode {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	}
	return &ValidationError{
		Field:   "color",
		Message: fmt.Sprintf("unknown color mode %q (valid: auto, always, never)", mode),
	}
}
