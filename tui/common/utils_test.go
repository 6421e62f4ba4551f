package common

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestTruncateLines_ClipsWidthAndHeight(t *testing.T) {
	in := "first line is long\nsecond\nthird\nfourth"
	got := TruncateLines(in, 8, 2)
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), got)
	}
	for _, ln := range lines {
		if w := ansi.StringWidth(ln); w > 8 {
			t.Fatalf("line %q exceeds width: %d", ln, w)
		}
	}
	if !strings.HasSuffix(lines[1], "…") {
		t.Fatalf("expected ellipsis on clipped output, got %q", lines[1])
	}
}

func TestTruncateLines_ShortInputUnchanged(t *testing.T) {
	if got := TruncateLines("ok", 10, 3); got != "ok" {
		t.Fatalf("expected unchanged text, got %q", got)
	}
	if got := TruncateLines("ok", 0, 3); got != "" {
		t.Fatalf("expected empty output for zero width, got %q", got)
	}
}

func TestPlural(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0 comments"},
		{1, "1 comment"},
		{12, "12 comments"},
	}
	for _, tt := range tests {
		if got := Plural(tt.n, "comment"); got != tt.want {
			t.Fatalf("Plural(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestCleanText_DropsEscapesKeepsMarkup(t *testing.T) {
	in := "Use <b> and <i> sparingly &amp; cite\x1b[31m sources\x1b[0m\x07\r\n\tdone"
	want := "Use <b> and <i> sparingly &amp; cite sources\n\tdone"
	if got := CleanText(in); got != want {
		t.Fatalf("CleanText = %q, want %q", got, want)
	}
}
