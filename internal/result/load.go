package result

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/AndreyAkinshin/specreport/internal/errors"
	"github.com/AndreyAkinshin/specreport/internal/schema"
)

// Format is the encoding of a result tree document.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

func (f Format) String() string {
	if f == FormatYAML {
		return "yaml"
	}
	return "json"
}

// FormatFromPath picks a format from the file extension. Anything that is
// not .yaml or .yml is read as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Load reads a result tree from a JSON or YAML file.
func Load(path string) (*SuiteResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Input(path, "failed to read result file", err)
	}
	return parse(path, data, FormatFromPath(path))
}

// Parse decodes a result tree. The document is validated against the
// result schema before it is decoded.
func Parse(data []byte, format Format) (*SuiteResult, error) {
	return parse("", data, format)
}

func parse(path string, data []byte, format Format) (*SuiteResult, error) {
	if format == FormatYAML {
		converted, err := yamlToJSON(data)
		if err != nil {
			return nil, errors.Input(path, "failed to parse YAML result tree", err)
		}
		data = converted
	}

	if err := schema.ValidateResult(data); err != nil {
		return nil, errors.Input(path, "invalid result tree", err)
	}

	var suite SuiteResult
	if err := json.Unmarshal(data, &suite); err != nil {
		return nil, errors.Input(path, "failed to decode result tree", err)
	}
	return &suite, nil
}

// yamlToJSON re-encodes a YAML document as JSON so both formats share the
// schema and the JSON field names.
func yamlToJSON(data []byte) ([]byte, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return json.Marshal(doc)
}
