// Package result defines the result tree consumed by the reporters.
package result

import (
	"bytes"
	"encoding/json"
)

// Status is the outcome of a single spec.
type Status int

const (
	StatusSkipped Status = iota
	StatusPassed
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusPassed:
		return "passed"
	case StatusFailed:
		return "failed"
	default:
		return "skipped"
	}
}

// SpecResult holds the outcome of a single spec.
type SpecResult struct {
	Name     string `json:"name"`
	FullName string `json:"full_name"`
	Duration uint64 `json:"duration"` // milliseconds
	Pass     *bool  `json:"pass"`     // nil when skipped
	ErrMsg   string `json:"err_msg"`
}

// Status reports whether the spec passed, failed, or was skipped.
func (s *SpecResult) Status() Status {
	switch {
	case s.Pass == nil:
		return StatusSkipped
	case *s.Pass:
		return StatusPassed
	default:
		return StatusFailed
	}
}

// SuiteResult is a named group of specs and nested suites.
//
// Passing and Failing count only the specs directly under this suite.
type SuiteResult struct {
	Name        string        `json:"name"`
	Duration    uint64        `json:"duration"` // milliseconds
	Passing     uint64        `json:"passing"`
	Failing     uint64        `json:"failing"`
	ChildSpecs  []SpecResult  `json:"child_specs"`
	ChildSuites []SuiteResult `json:"child_suites"`
}

// DirectCount returns the number of specs counted on this suite alone.
func (s *SuiteResult) DirectCount() uint64 {
	return s.Passing + s.Failing
}

// HasFailures reports whether any spec in the tree failed.
func (s *SuiteResult) HasFailures() bool {
	for i := range s.ChildSpecs {
		if s.ChildSpecs[i].Status() == StatusFailed {
			return true
		}
	}
	for i := range s.ChildSuites {
		if s.ChildSuites[i].HasFailures() {
			return true
		}
	}
	return false
}

// MarshalJSON encodes missing child sequences as empty arrays and leaves
// HTML characters in names and messages unescaped.
func (s SuiteResult) MarshalJSON() ([]byte, error) {
	type plain SuiteResult
	p := plain(s)
	if p.ChildSpecs == nil {
		p.ChildSpecs = []SpecResult{}
	}
	if p.ChildSuites == nil {
		p.ChildSuites = []SuiteResult{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(p); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Passed returns a pass value marking a spec as passed.
func Passed() *bool {
	v := true
	return &v
}

// Failed returns a pass value marking a spec as failed.
func Failed() *bool {
	v := false
	return &v
}
