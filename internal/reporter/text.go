package reporter

import (
	"fmt"
	"strings"

	"github.com/AndreyAkinshin/specreport/internal/result"
	"github.com/AndreyAkinshin/specreport/internal/style"
)

const (
	passGlyph = "✓"
	failGlyph = "✖"
)

// Indentation, in spaces, relative to the depth offset of the enclosing suite.
const (
	suiteIndent   = 2
	specIndent    = 5
	skippedIndent = 8
	glyphGap      = 2
	depthStep     = 2
)

// traversal accumulates the output of a single render call.
//
// failed is shared by the inline markers and the failure list so that
// the same number always refers to the same spec in both.
type traversal struct {
	styler style.Styler
	inline bool
	lines  strings.Builder
	fails  strings.Builder
	failed uint64
}

func newTraversal(styled, inline bool) *traversal {
	return &traversal{
		styler: style.For(styled),
		inline: inline,
	}
}

// Spec renders the full tree: suite headers, one line per spec, a summary
// and, when any spec failed, the numbered failure list.
func Spec(suite *result.SuiteResult, styled bool) string {
	t := newTraversal(styled, true)
	t.walk(suite, 0)

	var b strings.Builder
	if styled {
		b.WriteString("\n\n")
	}
	b.WriteString(t.lines.String())
	b.WriteString("\n\n")
	t.writeSummary(&b, suite)
	writeTrailer(&b, styled)
	return b.String()
}

// Minimal renders only the summary and the numbered failure list.
func Minimal(suite *result.SuiteResult, styled bool) string {
	t := newTraversal(styled, false)
	t.walk(suite, 0)

	var b strings.Builder
	if styled {
		b.WriteString("\n\n")
	}
	t.writeSummary(&b, suite)
	writeTrailer(&b, styled)
	return b.String()
}

// walk visits suite in pre-order: header, direct specs, then child suites.
func (t *traversal) walk(suite *result.SuiteResult, offset int) {
	if t.inline {
		t.lines.WriteString(indent(offset + suiteIndent))
		t.lines.WriteString(suite.Name)
		t.lines.WriteString("\n")
	}
	for i := range suite.ChildSpecs {
		t.spec(&suite.ChildSpecs[i], offset)
	}
	for i := range suite.ChildSuites {
		t.walk(&suite.ChildSuites[i], offset+depthStep)
	}
}

func (t *traversal) spec(spec *result.SpecResult, offset int) {
	switch spec.Status() {
	case result.StatusPassed:
		if t.inline {
			t.lines.WriteString(indent(offset + specIndent))
			t.lines.WriteString(t.styler.Style(passGlyph, style.Success))
			t.lines.WriteString(indent(glyphGap))
			t.lines.WriteString(t.styler.Style(fmt.Sprintf("%s (%dms)", spec.Name, spec.Duration), style.Muted))
		}
	case result.StatusFailed:
		t.failed++
		if t.inline {
			ln := fmt.Sprintf("%s%d) %s (%dms)", indent(offset+specIndent), t.failed, spec.Name, spec.Duration)
			t.lines.WriteString(t.styler.Style(ln, style.Failure))
		}
		t.writeFailure(spec)
	case result.StatusSkipped:
		if t.inline {
			t.lines.WriteString(indent(offset + skippedIndent))
			t.lines.WriteString(t.styler.Style(spec.Name, style.Muted))
		}
	}
	if t.inline {
		t.lines.WriteString("\n")
	}
}

// writeFailure appends the failure list entry for the current failure number.
func (t *traversal) writeFailure(spec *result.SpecResult) {
	t.fails.WriteString(indent(suiteIndent))
	t.fails.WriteString(t.styler.Style(fmt.Sprint(t.failed), style.Failure))
	fmt.Fprintf(&t.fails, ") %s: ", spec.FullName)
	t.fails.WriteString(t.styler.Style(spec.ErrMsg, style.Failure))
	t.fails.WriteString("\n")
}

func (t *traversal) writeSummary(b *strings.Builder, root *result.SuiteResult) {
	total := totalCount(root)
	b.WriteString(indent(suiteIndent))
	if t.failed == 0 {
		b.WriteString(t.styler.Style(passGlyph, style.Success))
		b.WriteString(t.styler.Style(fmt.Sprintf(" %d tests completed", total), style.Success))
		b.WriteString(t.styler.Style(fmt.Sprintf(" (%dms)", root.Duration), style.Muted))
		return
	}
	b.WriteString(t.styler.Style(fmt.Sprintf("%s %d of %d tests failed", failGlyph, t.failed, total), style.Failure))
	b.WriteString(t.styler.Style(":", style.Muted))
	b.WriteString("\n\n")
	b.WriteString(strings.TrimSuffix(t.fails.String(), "\n"))
}

// totalCount is the number of specs counted on the root suite itself.
// Nested suites are not included.
func totalCount(root *result.SuiteResult) uint64 {
	return root.DirectCount()
}

func writeTrailer(b *strings.Builder, styled bool) {
	if styled {
		b.WriteString("\n\n")
	} else {
		b.WriteString("\n")
	}
}

func indent(n int) string {
	return strings.Repeat(" ", n)
}
