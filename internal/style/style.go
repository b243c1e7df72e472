// Package style renders report fragments with semantic roles.
//
// Reporters never pick colors themselves: they ask a Styler to render a
// fragment as Success, Failure, or Muted text. Plain leaves the text as is,
// ANSI decorates it with terminal escape sequences.
package style

import (
	"regexp"

	"github.com/fatih/color"
)

// Role is the semantic meaning of a rendered fragment.
type Role int

const (
	Success Role = iota
	Failure
	Muted
)

func (r Role) String() string {
	switch r {
	case Success:
		return "success"
	case Failure:
		return "failure"
	default:
		return "muted"
	}
}

// Styler renders text for a semantic role.
type Styler interface {
	Style(text string, role Role) string
}

// Plain returns text unchanged.
type Plain struct{}

// Style implements Styler.
func (Plain) Style(text string, _ Role) string {
	return text
}

// ANSI renders roles as terminal colors.
type ANSI struct {
	roles map[Role]*color.Color
}

// NewANSI creates an ANSI styler. Colors are always emitted, whatever the
// state of the process's stdout, so the caller decides when to use it.
func NewANSI() *ANSI {
	roles := map[Role]*color.Color{
		Success: color.New(color.FgGreen),
		Failure: color.New(color.FgRed),
		Muted:   color.New(color.Faint),
	}
	for _, c := range roles {
		c.EnableColor()
	}
	return &ANSI{roles: roles}
}

// Style implements Styler.
func (a *ANSI) Style(text string, role Role) string {
	c, ok := a.roles[role]
	if !ok {
		return text
	}
	return c.Sprint(text)
}

// For returns the ANSI styler when styled is true and Plain otherwise.
func For(styled bool) Styler {
	if styled {
		return NewANSI()
	}
	return Plain{}
}

var sgrPattern = regexp.MustCompile("\x1b\\[[0-9;]*m")

// Strip removes ANSI SGR sequences from s.
func Strip(s string) string {
	return sgrPattern.ReplaceAllString(s, "")
}
