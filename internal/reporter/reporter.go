// Package reporter renders a finished result tree as text or JSON.
package reporter

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"github.com/AndreyAkinshin/specreport/internal/errors"
	"github.com/AndreyAkinshin/specreport/internal/result"
)

// Type selects a reporter.
type Type int

const (
	TypeSpec Type = iota
	TypeMinimal
	TypeJSON
	TypeJSONPretty
)

// typeNames lists reporter names in the order they are shown to users.
var typeNames = []struct {
	typ  Type
	name string
	desc string
}{
	{TypeSpec, "spec", "every suite and spec, then a numbered failure list"},
	{TypeMinimal, "min", "summary line and numbered failure list only"},
	{TypeJSON, "json", "compact JSON of the result tree"},
	{TypeJSONPretty, "json-pretty", "indented JSON of the result tree"},
}

func (t Type) String() string {
	for _, n := range typeNames {
		if n.typ == t {
			return n.name
		}
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Description returns a one-line summary of what the reporter prints.
func (t Type) Description() string {
	for _, n := range typeNames {
		if n.typ == t {
			return n.desc
		}
	}
	return ""
}

// Types returns all reporter types.
func Types() []Type {
	types := make([]Type, 0, len(typeNames))
	for _, n := range typeNames {
		types = append(types, n.typ)
	}
	return types
}

var fold = cases.Fold()

// ParseType resolves a reporter name, ignoring case. "minimal" and
// "pretty-json" are accepted as aliases.
func ParseType(name string) (Type, error) {
	switch fold.String(strings.TrimSpace(name)) {
	case "spec":
		return TypeSpec, nil
	case "min", "minimal":
		return TypeMinimal, nil
	case "json":
		return TypeJSON, nil
	case "json-pretty", "pretty-json":
		return TypeJSONPretty, nil
	}
	return 0, errors.Configf("unknown reporter %q (valid: spec, min, json, json-pretty)", name)
}

// Render dispatches to the reporter selected by typ. styled is ignored by
// the JSON reporters.
func Render(typ Type, suite *result.SuiteResult, styled bool) (string, error) {
	switch typ {
	case TypeSpec:
		return Spec(suite, styled), nil
	case TypeMinimal:
		return Minimal(suite, styled), nil
	case TypeJSON:
		return JSON(suite)
	case TypeJSONPretty:
		return JSONPretty(suite)
	}
	return "", errors.Newf("unsupported reporter %s", typ)
}
