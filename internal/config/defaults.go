package config

// Default configuration values.
const (
	DefaultReporter = "spec"
	DefaultColor    = ColorAuto
)

// FileNames lists the config file names searched for, in order.
var FileNames = []string{"specreport.yaml", "specreport.yml", ".specreport.yaml"}

// applyDefaults fills in default values for unset configuration fields.
func applyDefaults(cfg *Config) {
	if cfg.Reporter == "" {
		cfg.Reporter = DefaultReporter
	}
	if cfg.Color == "" {
		cfg.Color = DefaultColor
	}
}

// Default returns a configuration with all defaults applied.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}
