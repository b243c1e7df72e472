package testhelper

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Diff describes the first line where actual differs from expected, or
// returns "" when they are identical. Lines are quoted so that trailing
// whitespace and escape sequences are visible.
func Diff(expected, actual string) string {
	if expected == actual {
		return ""
	}

	want := strings.Split(expected, "\n")
	got := strings.Split(actual, "\n")

	n := len(want)
	if len(got) < n {
		n = len(got)
	}
	for i := 0; i < n; i++ {
		if want[i] != got[i] {
			return fmt.Sprintf("line %d:\n  want %q\n   got %q", i+1, want[i], got[i])
		}
	}

	if len(want) > len(got) {
		return fmt.Sprintf("line %d: missing %q (want %d lines, got %d)", n+1, want[n], len(want), len(got))
	}
	return fmt.Sprintf("line %d: unexpected %q (want %d lines, got %d)", n+1, got[n], len(want), len(got))
}

// EqualJSON reports whether two JSON documents hold the same value,
// ignoring formatting. Numbers are compared by their literal text.
func EqualJSON(expected, actual string) (bool, error) {
	want, err := decode(expected)
	if err != nil {
		return false, fmt.Errorf("expected: %w", err)
	}
	got, err := decode(actual)
	if err != nil {
		return false, fmt.Errorf("actual: %w", err)
	}
	return equal(want, got), nil
}

func decode(s string) (interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(s)))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

func equal(expected, actual interface{}) bool {
	switch e := expected.(type) {
	case nil:
		return actual == nil
	case bool:
		a, ok := actual.(bool)
		return ok && e == a
	case json.Number:
		a, ok := actual.(json.Number)
		return ok && e == a
	case string:
		a, ok := actual.(string)
		return ok && e == a
	case []interface{}:
		a, ok := actual.([]interface{})
		if !ok || len(e) != len(a) {
			return false
		}
		for i := range e {
			if !equal(e[i], a[i]) {
				return false
			}
		}
		return true
	case map[string]interface{}:
		a, ok := actual.(map[string]interface{})
		if !ok || len(e) != len(a) {
			return false
		}
		for k, ev := range e {
			av, exists := a[k]
			if !exists || !equal(ev, av) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
