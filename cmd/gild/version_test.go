package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	versionCmd.SetOut(&buf)
	versionCmd.Run(versionCmd, nil)

	got := buf.String()
	if !strings.HasPrefix(got, "gild ") {
		t.Fatalf("want output starting with %q, got %q", "gild ", got)
	}
	if !strings.Contains(got, version) {
		t.Fatalf("output %q does not contain version %q", got, version)
	}
	if !strings.HasSuffix(got, "\n") {
		t.Fatalf("missing trailing newline: %q", got)
	}
}
