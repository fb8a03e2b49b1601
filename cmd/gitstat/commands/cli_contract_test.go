package commands

import (
	"bytes"
	"strings"
	"testing"
)

func TestCLIContract(t *testing.T) {
	cmd := NewRootCmd()
	b := bytes.NewBufferString("")
	cmd.SetOut(b)
	cmd.SetArgs([]string{"--help"})

	err := cmd.Execute()
	if err != nil {
		t.Fatalf("root command failed: %v", err)
	}

	out := b.String()

	if !strings.Contains(out, "Usage:") {
		t.Errorf("expected usage info in root help")
	}
	// Stable command surface.
	for _, sub := range []string{"report", "version"} {
		if !strings.Contains(out, sub) {
			t.Errorf("expected %q command in root help", sub)
		}
	}
}

func TestCLIVersion(t *testing.T) {
	cmd := NewRootCmd()
	b := bytes.NewBufferString("")
	cmd.SetOut(b)
	cmd.SetArgs([]string{"version"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("version command failed: %v", err)
	}

	if !strings.Contains(b.String(), "Gitstat version") {
		t.Errorf("expected version string, got %q", b.String())
	}
}
