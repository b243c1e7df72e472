package reporter

import (
	"regexp"
	"strings"
	"testing"

	"github.com/AndreyAkinshin/specreport/internal/result"
	"github.com/AndreyAkinshin/specreport/internal/style"
)

// mathSuite is a root suite with one passing and one failing spec.
func mathSuite() *result.SuiteResult {
	return &result.SuiteResult{
		Name:     "Math",
		Duration: 10,
		Passing:  1,
		Failing:  1,
		ChildSpecs: []result.SpecResult{
			{Name: "adds", FullName: "Math adds", Duration: 5, Pass: result.Passed()},
			{Name: "subtracts", FullName: "Math subtracts", Duration: 3, Pass: result.Failed(), ErrMsg: "expected 1 got 2"},
		},
	}
}

// nestedSuite has failures at two depths, a skipped spec and a grandchild suite.
func nestedSuite() *result.SuiteResult {
	return &result.SuiteResult{
		Name:     "Root",
		Duration: 20,
		Passing:  1,
		Failing:  1,
		ChildSpecs: []result.SpecResult{
			{Name: "a", FullName: "Root a", Duration: 1, Pass: result.Passed()},
			{Name: "b", FullName: "Root b", Duration: 2, Pass: result.Failed(), ErrMsg: "boom b"},
		},
		ChildSuites: []result.SuiteResult{
			{
				Name:    "Child",
				Failing: 1,
				ChildSpecs: []result.SpecResult{
					{Name: "c", FullName: "Root Child c", Duration: 3, Pass: result.Failed(), ErrMsg: "boom c"},
					{Name: "d", FullName: "Root Child d", Duration: 99},
				},
				ChildSuites: []result.SuiteResult{
					{
						Name:    "Grand",
						Passing: 1,
						ChildSpecs: []result.SpecResult{
							{Name: "e", FullName: "Root Child Grand e", Duration: 4, Pass: result.Passed()},
						},
					},
				},
			},
		},
	}
}

func passingSuite() *result.SuiteResult {
	return &result.SuiteResult{
		Name:     "Strings",
		Duration: 12,
		Passing:  2,
		ChildSpecs: []result.SpecResult{
			{Name: "trims", FullName: "Strings trims", Duration: 4, Pass: result.Passed()},
			{Name: "splits", FullName: "Strings splits", Duration: 6, Pass: result.Passed()},
			{Name: "joins", FullName: "Strings joins", Duration: 8},
		},
		ChildSuites: []result.SuiteResult{{Name: "Unicode"}},
	}
}

func allSuites() map[string]*result.SuiteResult {
	return map[string]*result.SuiteResult{
		"math":    mathSuite(),
		"nested":  nestedSuite(),
		"passing": passingSuite(),
		"empty":   {Name: "Empty", Duration: 7},
	}
}

func TestSpec_Plain(t *testing.T) {
	tests := []struct {
		name  string
		suite *result.SuiteResult
		want  string
	}{
		{
			name:  "one pass one failure",
			suite: mathSuite(),
			want: "  Math\n" +
				"     ✓  adds (5ms)\n" +
				"     1) subtracts (3ms)\n" +
				"\n\n" +
				"  ✖ 1 of 2 tests failed:\n" +
				"\n" +
				"  1) Math subtracts: expected 1 got 2\n",
		},
		{
			name:  "empty root",
			suite: &result.SuiteResult{Name: "Empty", Duration: 7},
			want:  "  Empty\n\n\n  ✓ 0 tests completed (7ms)\n",
		},
		{
			name:  "nested suites",
			suite: nestedSuite(),
			want: "  Root\n" +
				"     ✓  a (1ms)\n" +
				"     1) b (2ms)\n" +
				"    Child\n" +
				"       2) c (3ms)\n" +
				"          d\n" +
				"      Grand\n" +
				"         ✓  e (4ms)\n" +
				"\n\n" +
				"  ✖ 2 of 2 tests failed:\n" +
				"\n" +
				"  1) Root b: boom b\n" +
				"  2) Root Child c: boom c\n",
		},
		{
			name:  "all passing with skip and empty child",
			suite: passingSuite(),
			want: "  Strings\n" +
				"     ✓  trims (4ms)\n" +
				"     ✓  splits (6ms)\n" +
				"        joins\n" +
				"    Unicode\n" +
				"\n\n" +
				"  ✓ 2 tests completed (12ms)\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Spec(tt.suite, false); got != tt.want {
				t.Errorf("Spec() =\n%q\nwant\n%q", got, tt.want)
			}
		})
	}
}

func TestMinimal_Plain(t *testing.T) {
	tests := []struct {
		name  string
		suite *result.SuiteResult
		want  string
	}{
		{
			name:  "one pass one failure",
			suite: mathSuite(),
			want:  "  ✖ 1 of 2 tests failed:\n\n  1) Math subtracts: expected 1 got 2\n",
		},
		{
			name:  "nested suites",
			suite: nestedSuite(),
			want:  "  ✖ 2 of 2 tests failed:\n\n  1) Root b: boom b\n  2) Root Child c: boom c\n",
		},
		{
			name:  "all passing",
			suite: passingSuite(),
			want:  "  ✓ 2 tests completed (12ms)\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Minimal(tt.suite, false); got != tt.want {
				t.Errorf("Minimal() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSpec_StyledPadding(t *testing.T) {
	got := Spec(mathSuite(), true)
	if !strings.HasPrefix(got, "\n\n") {
		t.Errorf("styled output should start with two blank lines, got %q", got[:min(len(got), 10)])
	}
	if !strings.HasSuffix(got, "\n\n") {
		t.Errorf("styled output should end with two line breaks")
	}
	if !strings.Contains(got, "\x1b[") {
		t.Error("styled output contains no escape sequences")
	}
}

func TestSpec_StylingOnlyDecorates(t *testing.T) {
	for name, suite := range allSuites() {
		t.Run(name, func(t *testing.T) {
			plain := Spec(suite, false)
			styled := style.Strip(Spec(suite, true))
			want := "\n\n" + strings.TrimSuffix(plain, "\n") + "\n\n"
			if styled != want {
				t.Errorf("stripped styled output differs\n got: %q\nwant: %q", styled, want)
			}
		})
	}
}

func TestMinimal_StylingOnlyDecorates(t *testing.T) {
	for name, suite := range allSuites() {
		t.Run(name, func(t *testing.T) {
			plain := Minimal(suite, false)
			styled := style.Strip(Minimal(suite, true))
			want := "\n\n" + strings.TrimSuffix(plain, "\n") + "\n\n"
			if styled != want {
				t.Errorf("stripped styled output differs\n got: %q\nwant: %q", styled, want)
			}
		})
	}
}

var (
	inlineFailure = regexp.MustCompile(`^ {5,}(\d+)\) (.+) \((\d+)ms\)$`)
	listedFailure = regexp.MustCompile(`^  (\d+)\) (.+): (.*)$`)
)

func TestSpec_FailureNumberingConsistent(t *testing.T) {
	suite := nestedSuite()
	specs := make(map[string]result.SpecResult)
	var collect func(s *result.SuiteResult)
	collect = func(s *result.SuiteResult) {
		for _, sp := range s.ChildSpecs {
			specs[sp.Name] = sp
		}
		for i := range s.ChildSuites {
			collect(&s.ChildSuites[i])
		}
	}
	collect(suite)

	inline := make(map[string]result.SpecResult)
	listed := make(map[string][2]string)
	for _, line := range strings.Split(Spec(suite, false), "\n") {
		if m := inlineFailure.FindStringSubmatch(line); m != nil {
			inline[m[1]] = specs[m[2]]
			continue
		}
		if m := listedFailure.FindStringSubmatch(line); m != nil {
			listed[m[1]] = [2]string{m[2], m[3]}
		}
	}

	if len(inline) != 2 || len(listed) != 2 {
		t.Fatalf("found %d inline and %d listed failures, want 2 and 2", len(inline), len(listed))
	}
	for n, sp := range inline {
		entry, ok := listed[n]
		if !ok {
			t.Errorf("failure %s has no list entry", n)
			continue
		}
		if entry[0] != sp.FullName || entry[1] != sp.ErrMsg {
			t.Errorf("failure %s: list entry %v does not match spec %q", n, entry, sp.FullName)
		}
	}
}

func TestMinimal_FailureListMatchesSpec(t *testing.T) {
	for name, suite := range allSuites() {
		for _, styled := range []bool{false, true} {
			spec := failureList(Spec(suite, styled))
			minimal := failureList(Minimal(suite, styled))
			if spec != minimal {
				t.Errorf("%s (styled=%v): failure lists differ\nspec: %q\n min: %q", name, styled, spec, minimal)
			}
		}
	}
}

// failureList returns everything after the summary line.
func failureList(report string) string {
	_, after, found := strings.Cut(report, "tests failed")
	if !found {
		return ""
	}
	return after
}

func TestSpec_SkippedHasNoDuration(t *testing.T) {
	suite := &result.SuiteResult{
		Name: "Skips",
		ChildSpecs: []result.SpecResult{
			{Name: "pending one", Duration: 42},
		},
	}

	for _, styled := range []bool{false, true} {
		out := style.Strip(Spec(suite, styled))
		for _, line := range strings.Split(out, "\n") {
			if strings.Contains(line, "pending one") {
				if strings.Contains(line, "42") || strings.Contains(line, "ms)") {
					t.Errorf("styled=%v: skipped line shows a duration: %q", styled, line)
				}
				if line != "        pending one" {
					t.Errorf("styled=%v: skipped line = %q", styled, line)
				}
			}
		}
	}
}

func TestSpec_ZeroFailureSummary(t *testing.T) {
	out := Spec(passingSuite(), false)
	_, summary, _ := strings.Cut(out, "\n\n\n")

	if !strings.HasPrefix(summary, "  ✓") {
		t.Errorf("summary = %q, want success glyph first", summary)
	}
	if strings.Contains(out, "failed") || strings.Contains(out, "1)") {
		t.Errorf("passing report mentions failures: %q", out)
	}
}

func TestSpec_EmptySuiteHeaders(t *testing.T) {
	suite := &result.SuiteResult{
		Name: "Outer",
		ChildSuites: []result.SuiteResult{
			{Name: "First"},
			{Name: "Second", ChildSuites: []result.SuiteResult{{Name: "Deep"}}},
		},
	}

	want := "  Outer\n    First\n    Second\n      Deep\n"
	if got := Spec(suite, false); !strings.HasPrefix(got, want) {
		t.Errorf("Spec() = %q, want prefix %q", got, want)
	}
}

func TestSpec_TotalCountsRootOnly(t *testing.T) {
	suite := &result.SuiteResult{
		Name:    "Root",
		Passing: 1,
		ChildSpecs: []result.SpecResult{
			{Name: "ok", Pass: result.Passed()},
		},
		ChildSuites: []result.SuiteResult{
			{
				Name:    "Child",
				Passing: 3,
				ChildSpecs: []result.SpecResult{
					{Name: "x", Pass: result.Passed()},
					{Name: "y", Pass: result.Passed()},
					{Name: "z", Pass: result.Passed()},
				},
			},
		},
	}

	if got := Minimal(suite, false); got != "  ✓ 1 tests completed (0ms)\n" {
		t.Errorf("Minimal() = %q", got)
	}
}

func TestSpec_DoesNotModifyTree(t *testing.T) {
	suite := nestedSuite()
	before, err := JSON(suite)
	if err != nil {
		t.Fatalf("JSON() error = %v", err)
	}

	Spec(suite, true)
	Minimal(suite, false)

	after, err := JSON(suite)
	if err != nil {
		t.Fatalf("JSON() error = %v", err)
	}
	if before != after {
		t.Errorf("rendering changed the tree\nbefore: %s\n after: %s", before, after)
	}
}

func TestIndent(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, ""},
		{2, "  "},
		{5, "     "},
	}
	for _, tt := range tests {
		if got := indent(tt.n); got != tt.want {
			t.Errorf("indent(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
