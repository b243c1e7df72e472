package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/AndreyAkinshin/specreport/internal/errors"
	"github.com/AndreyAkinshin/specreport/internal/schema"
)

// Load reads and parses a specreport.yaml configuration file.
func Load(path string) (*Config, error) {
	cfg, _, err := load(path)
	return cfg, err
}

// LoadAndValidate reads a config file, applies defaults, validates, and returns warnings.
func LoadAndValidate(path string) (*Config, []string, error) {
	cfg, unknownWarnings, err := load(path)
	if err != nil {
		return nil, nil, err
	}

	applyDefaults(cfg)

	validationWarnings, err := Validate(cfg)

	allWarnings := make([]string, 0, len(unknownWarnings)+len(validationWarnings))
	allWarnings = append(allWarnings, unknownWarnings...)
	allWarnings = append(allWarnings, validationWarnings...)

	if err != nil {
		return nil, allWarnings, &errors.ReportError{
			Kind:    errors.KindConfig,
			Message: "invalid configuration",
			Path:    path,
			Cause:   err,
		}
	}

	return cfg, allWarnings, nil
}

// Discover returns the first config file found in dir, or "" if none exists.
func Discover(dir string) string {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

func load(path string) (*Config, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, configError(path, "failed to read config file", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, nil, configError(path, "failed to parse config file", err)
	}
	if raw == nil {
		raw = map[string]any{}
	}

	doc, err := json.Marshal(raw)
	if err != nil {
		return nil, nil, configError(path, "failed to parse config file", err)
	}
	if err := schema.ValidateConfig(doc); err != nil {
		return nil, nil, configError(path, "invalid configuration", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, nil, configError(path, "failed to parse config file", err)
	}

	return &cfg, detectUnknownFields(raw), nil
}

func configError(path, message string, cause error) *errors.ReportError {
	return &errors.ReportError{
		Kind:    errors.KindConfig,
		Message: message,
		Path:    path,
		Cause:   cause,
	}
}
