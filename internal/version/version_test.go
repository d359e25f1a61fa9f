package version

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	got := String()
	if !strings.HasPrefix(got, "retint version ") {
		t.Errorf("String() = %q", got)
	}
	if !strings.Contains(got, Version) {
		t.Errorf("String() %q does not contain version %q", got, Version)
	}
}

func TestShortCommit(t *testing.T) {
	orig := Commit
	defer func() { Commit = orig }()

	Commit = "0123456789abcdef"
	if got := shortCommit(); got != "01234567" {
		t.Errorf("shortCommit() = %q, want 01234567", got)
	}
	Commit = "abc"
	if got := shortCommit(); got != "abc" {
		t.Errorf("shortCommit() = %q, want abc", got)
	}
}
