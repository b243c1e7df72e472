// Package config provides loading and validation for specreport.yaml.
package config

// Config represents the complete specreport.yaml configuration.
// Command-line flags take precedence over every field.
type Config struct {
	Reporter string `yaml:"reporter,omitempty" json:"reporter,omitempty"`
	Output   string `yaml:"output,omitempty" json:"output,omitempty"`
	Color    string `yaml:"color,omitempty" json:"color,omitempty"`
}

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)
