package entity

import (
	"errors"
	"strings"
	"testing"

	"github.com/CrestNiraj12/schoolreview/domain"
)

func TestView_PhaseTexts(t *testing.T) {
	b := newStubBackend()
	m, _ := newTestModel(b).Open(domain.KindReport, "nope")
	if out := m.View(); !strings.Contains(out, "Report not found") {
		t.Fatalf("expected not found text, got:\n%s", out)
	}

	b.fetchErr = errors.New("connection refused")
	m = openLoaded(b, "42")
	out := m.View()
	if !strings.Contains(out, "Press r to retry") || !strings.Contains(out, "connection refused") {
		t.Fatalf("expected retry affordance with error, got:\n%s", out)
	}
}

func TestView_LoadedShowsEntityAndComments(t *testing.T) {
	b := newStubBackend()
	b.pages[1] = domain.CommentPage{Comments: comments(1, 2), HasMore: true}
	m := openLoaded(b, "42")
	m.SetSize(100, 40)
	out := m.View()
	for _, want := range []string{"Springfield High", "Great teachers", "c1", "c2", "load more", "(you)"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in view:\n%s", want, out)
		}
	}
}

func TestView_StripsTerminalEscapesButKeepsContent(t *testing.T) {
	b := newStubBackend()
	raw := "Use <b> sparingly &amp; cite\x1b[2J sources\x07"
	b.entity.Content = raw
	b.pages[1] = domain.CommentPage{Comments: []domain.Comment{{ID: 9, Content: "hi\x1b]0;owned\x07 there"}}}
	m := openLoaded(b, "42")
	m.SetSize(100, 40)

	out := m.View()
	for _, bad := range []string{"\x1b[2J", "\x07", "\x1b]0;"} {
		if strings.Contains(out, bad) {
			t.Fatalf("expected %q stripped from view:\n%q", bad, out)
		}
	}
	if !strings.Contains(out, "Use <b> sparingly &amp; cite sources") || !strings.Contains(out, "hi there") {
		t.Fatalf("expected cleaned text in view:\n%s", out)
	}
	if got := m.ViewState().Entity.Content; got != raw {
		t.Fatalf("expected stored content untouched, got %q", got)
	}
	m.StartEdit()
	if got := m.ViewState().Draft; got != raw {
		t.Fatalf("expected draft to start from stored content, got %q", got)
	}
}
