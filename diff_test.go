package gild

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func disableColor(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

func TestCompareEqual(t *testing.T) {
	disableColor(t)

	for _, s := range []string{
		"",
		"abc",
		"abc\ndef\n",
		strings.Repeat("the same line over and over\n", 64),
	} {
		var buf bytes.Buffer
		if n := compare(&buf, s, s); n != 0 {
			t.Fatalf("compare(%q, %q): want 0 differences, got %d", s, s, n)
		}
		if buf.Len() != 0 {
			t.Fatalf("equal inputs produced output:\n%s", buf.String())
		}
	}
}

func TestCompareSingleDifference(t *testing.T) {
	disableColor(t)

	var buf bytes.Buffer
	n := compare(&buf, "abc\ndef\n", "abc\nxyz\n")
	if n != 1 {
		t.Fatalf("want 1 difference, got %d", n)
	}
	out := buf.String()
	if !strings.Contains(out, "def") {
		t.Fatalf("deleted fragment missing from output:\n%s", out)
	}
	if !strings.Contains(out, "xyz") {
		t.Fatalf("inserted fragment missing from output:\n%s", out)
	}
	if got := strings.Count(out, "abc"); got > 1 {
		t.Fatalf("shared context printed %d times:\n%s", got, out)
	}
	if !strings.HasSuffix(out, "\n\n") {
		t.Fatalf("missing trailing separator:\n%q", out)
	}
}

func TestCompareMidLineDifference(t *testing.T) {
	disableColor(t)

	var buf bytes.Buffer
	n := compare(&buf, "hello world\n", "hello there\n")
	if n != 1 {
		t.Fatalf("want 1 difference, got %d", n)
	}
	// The unprinted line prefix is back-printed once, then the deleted and
	// inserted fragments, then the rest of the line.
	if got, want := buf.String(), "hello worldthere\n\n"; got != want {
		t.Fatalf("output mismatch:\nwant:\n%q\n\ngot:\n%q", want, got)
	}
}

func TestCompareStopsEchoAtLineEnd(t *testing.T) {
	disableColor(t)

	var buf bytes.Buffer
	n := compare(&buf, "aaa bbb\nccc\n", "aaa BBB\nccc\n")
	if n != 1 {
		t.Fatalf("want 1 difference, got %d", n)
	}
	out := buf.String()
	if strings.Contains(out, "ccc") {
		t.Fatalf("untouched line leaked into output:\n%s", out)
	}
	if got, want := out, "aaa bbbBBB\n\n"; got != want {
		t.Fatalf("output mismatch:\nwant:\n%q\n\ngot:\n%q", want, got)
	}
}

func TestCompareCountsRegions(t *testing.T) {
	disableColor(t)

	var buf bytes.Buffer
	// Two separated same-line replacements are two regions, even though
	// each is a delete chunk plus an insert chunk.
	if n := compare(&buf, "a\nb\nc\nd\n", "a\nX\nc\nY\n"); n != 2 {
		t.Fatalf("want 2 differences, got %d", n)
	}
}

func TestCompareDisjoint(t *testing.T) {
	disableColor(t)

	var buf bytes.Buffer
	if n := compare(&buf, "abc", "xyz"); n != 1 {
		t.Fatalf("want 1 difference, got %d", n)
	}
	out := buf.String()
	if !strings.Contains(out, "abc") || !strings.Contains(out, "xyz") {
		t.Fatalf("both sides should appear in output:\n%s", out)
	}
}
