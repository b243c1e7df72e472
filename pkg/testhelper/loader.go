// Package testhelper loads golden report cases and compares rendered
// reports against them.
//
// A golden case is a JSON file holding a result tree, the reporter to
// render it with, and the exact expected report:
//
//	{
//	  "description": "one failing spec",
//	  "reporter": "spec",
//	  "styled": false,
//	  "input": {"name": "Math", ...},
//	  "output": "  Math\n..."
//	}
//
// Example usage in a Go test:
//
//	func TestGolden(t *testing.T) {
//	    root, err := testhelper.FindModuleRoot()
//	    if err != nil {
//	        t.Fatal(err)
//	    }
//
//	    cases, err := testhelper.LoadCases(filepath.Join(root, "test", "golden"))
//	    if err != nil {
//	        t.Fatal(err)
//	    }
//
//	    for _, tc := range cases {
//	        t.Run(tc.Name, func(t *testing.T) {
//	            actual := render(tc)
//	            if diff := testhelper.Diff(tc.Output, actual); diff != "" {
//	                t.Errorf("mismatch for %s:\n%s", tc.Name, diff)
//	            }
//	        })
//	    }
//	}
package testhelper

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Case is a single golden report case loaded from a JSON file.
type Case struct {
	// Name is derived from the file name.
	Name string `json:"-"`

	// Description provides optional documentation.
	Description string `json:"description,omitempty"`

	// Reporter names the reporter that produced Output.
	Reporter string `json:"reporter"`

	// Styled selects the decorated variant of the text reporters.
	Styled bool `json:"styled,omitempty"`

	// Input is the result tree, kept raw so callers decode it with their
	// own loader.
	Input json.RawMessage `json:"input"`

	// Output is the exact expected report.
	Output string `json:"output"`

	// Skip marks the case as skipped if true.
	Skip bool `json:"skip,omitempty"`
}

// LoadCases loads all cases from dir/*.json, sorted by file name.
func LoadCases(dir string) ([]Case, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, err
	}

	var cases []Case
	for _, f := range files {
		tc, err := LoadCase(f)
		if err != nil {
			return nil, err
		}
		cases = append(cases, *tc)
	}

	return cases, nil
}

// LoadCase loads a single case from a JSON file.
func LoadCase(path string) (*Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var tc Case
	if err := json.Unmarshal(data, &tc); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if tc.Reporter == "" {
		return nil, fmt.Errorf("%s: reporter is required", path)
	}
	if len(tc.Input) == 0 {
		return nil, fmt.Errorf("%s: input is required", path)
	}

	tc.Name = strings.TrimSuffix(filepath.Base(path), ".json")
	return &tc, nil
}

// FindModuleRoot walks up from the working directory to the directory
// containing go.mod.
func FindModuleRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return FindModuleRootFrom(cwd)
}

// FindModuleRootFrom finds the module root starting from a specific directory.
func FindModuleRootFrom(startDir string) (string, error) {
	dir := startDir

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", &ModuleNotFoundError{StartDir: startDir}
}

// ModuleNotFoundError indicates go.mod was not found.
type ModuleNotFoundError struct {
	StartDir string
}

func (e *ModuleNotFoundError) Error() string {
	return "go.mod not found (searched from " + e.StartDir + ")"
}
