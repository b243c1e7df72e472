package style

import (
	"strings"
	"testing"
)

func TestPlain_Style(t *testing.T) {
	roles := []Role{Success, Failure, Muted}
	for _, role := range roles {
		t.Run(role.String(), func(t *testing.T) {
			if got := (Plain{}).Style("adds (5ms)", role); got != "adds (5ms)" {
				t.Errorf("Style() = %q, want unchanged text", got)
			}
		})
	}
}

func TestANSI_Style(t *testing.T) {
	a := NewANSI()
	roles := []Role{Success, Failure, Muted}
	seen := make(map[string]Role)

	for _, role := range roles {
		t.Run(role.String(), func(t *testing.T) {
			got := a.Style("text", role)
			if !strings.HasPrefix(got, "\x1b[") {
				t.Errorf("Style() = %q, want escape prefix", got)
			}
			if !strings.Contains(got, "text") {
				t.Errorf("Style() = %q, want it to contain text", got)
			}
			if Strip(got) != "text" {
				t.Errorf("Strip(Style()) = %q, want %q", Strip(got), "text")
			}
			if other, dup := seen[got]; dup {
				t.Errorf("roles %v and %v render identically", other, role)
			}
			seen[got] = role
		})
	}
}

func TestANSI_UnknownRole(t *testing.T) {
	if got := NewANSI().Style("text", Role(42)); got != "text" {
		t.Errorf("Style() = %q, want unchanged text for unknown role", got)
	}
}

func TestFor(t *testing.T) {
	if _, ok := For(false).(Plain); !ok {
		t.Errorf("For(false) = %T, want Plain", For(false))
	}
	if _, ok := For(true).(*ANSI); !ok {
		t.Errorf("For(true) = %T, want *ANSI", For(true))
	}
}

func TestStrip(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no escapes", "plain", "plain"},
		{"single color", "\x1b[32m✓\x1b[0m", "✓"},
		{"compound", "\x1b[1;31mfail\x1b[22;0m ok", "fail ok"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Strip(tt.input); got != tt.want {
				t.Errorf("Strip(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
