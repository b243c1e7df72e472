package reporter

import (
	"bytes"
	"encoding/json"

	"github.com/AndreyAkinshin/specreport/internal/errors"
	"github.com/AndreyAkinshin/specreport/internal/result"
)

// JSON encodes the tree without insignificant whitespace.
func JSON(suite *result.SuiteResult) (string, error) {
	return encode(suite, "")
}

// JSONPretty encodes the tree indented by two spaces per level.
func JSONPretty(suite *result.SuiteResult) (string, error) {
	return encode(suite, "  ")
}

func encode(suite *result.SuiteResult, indent string) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(suite); err != nil {
		return "", errors.Serialization(err)
	}
	return string(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}
