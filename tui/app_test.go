package tui

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/schoolreview/domain"
	"github.com/CrestNiraj12/schoolreview/infra/config"
	"github.com/CrestNiraj12/schoolreview/tui/compose"
	"github.com/CrestNiraj12/schoolreview/tui/entity"
)

type stubServices struct {
	fetched []int64
	saved   []domain.EntityDraft
	saveErr error
}

func (s *stubServices) Fetch(_ context.Context, kind domain.EntityKind, id int64) (domain.Entity, error) {
	s.fetched = append(s.fetched, id)
	return domain.Entity{ID: id, Kind: kind, Content: "body", School: domain.School{ID: 3, Name: "Hill Valley High"}}, nil
}

func (s *stubServices) Save(_ context.Context, kind domain.EntityKind, d domain.EntityDraft) (domain.Entity, error) {
	s.saved = append(s.saved, d)
	if s.saveErr != nil {
		return domain.Entity{}, s.saveErr
	}
	return domain.Entity{ID: 99, Kind: kind, Content: d.Content}, nil
}

func (s *stubServices) CommentsPage(context.Context, domain.EntityKind, int64, int) (domain.CommentPage, error) {
	return domain.CommentPage{}, nil
}

func (s *stubServices) AddComment(context.Context, domain.EntityKind, int64, string) (domain.Comment, error) {
	return domain.Comment{}, nil
}

func (s *stubServices) UpvoteComment(context.Context, int64) (int, error) { return 1, nil }

func (s *stubServices) CheckOwner(context.Context, domain.EntityKind, int64) error {
	return domain.ErrUnauthorized
}

func (s *stubServices) CheckUpvoted(context.Context, domain.EntityKind, int64) error {
	return domain.ErrUnauthorized
}

func (s *stubServices) ToggleUpvote(context.Context, domain.EntityKind, int64) error { return nil }

func newTestApp(s *stubServices, initial *Route, statePath string) App {
	return NewApp(Deps{
		Entities:  s,
		Comments:  s,
		Viewer:    s,
		StatePath: statePath,
		Initial:   initial,
	})
}

// run feeds cmd results back into the app, skipping timers.
func run(a App, cmd tea.Cmd) App {
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		switch msg := c().(type) {
		case nil:
		case tea.BatchMsg:
			queue = append(queue, msg...)
		default:
			next, nc := a.Update(msg)
			a = next.(App)
			queue = append(queue, nc)
		}
	}
	return a
}

func TestParseRoute(t *testing.T) {
	tests := []struct {
		in      string
		want    Route
		wantErr bool
	}{
		{in: "review 42", want: Route{Kind: domain.KindReview, ID: "42"}},
		{in: "report/7", want: Route{Kind: domain.KindReport, ID: "7"}},
		{in: "  reports  12 ", want: Route{Kind: domain.KindReport, ID: "12"}},
		{in: "abc", want: Route{Kind: domain.KindReport, ID: "abc"}},
		{in: "review", wantErr: true},
		{in: "school 4", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseRoute(tt.in, domain.KindReport)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("%q: expected error", tt.in)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Fatalf("%q: got %+v, %v; want %+v", tt.in, got, err, tt.want)
		}
	}
}

func TestApp_InitialRouteLoadsAndPersists(t *testing.T) {
	s := &stubServices{}
	path := filepath.Join(t.TempDir(), "ui_state.json")
	a := newTestApp(s, &Route{Kind: domain.KindReport, ID: "7"}, path)
	a = run(a, a.initCmd)

	if a.entity.ViewState().Phase != entity.PhaseLoaded {
		t.Fatalf("expected loaded controller, got %s", a.entity.ViewState().Phase)
	}
	st, err := config.LoadUIState(path)
	if err != nil {
		t.Fatalf("load state: %v", err)
	}
	if st.Kind != "report" || st.ID != "7" {
		t.Fatalf("unexpected persisted state: %+v", st)
	}
}

func TestApp_PromptOpensRoute(t *testing.T) {
	s := &stubServices{}
	a := newTestApp(s, nil, "")
	if !a.prompting {
		t.Fatalf("without a route the prompt should be open")
	}
	m, _ := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("review 12")})
	a = m.(App)
	m, cmd := a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	a = run(m.(App), cmd)

	if a.prompting || len(s.fetched) != 1 || s.fetched[0] != 12 {
		t.Fatalf("enter should open review 12, fetched=%v", s.fetched)
	}
}

func TestApp_PromptInvalidIDShowsNotFound(t *testing.T) {
	s := &stubServices{}
	a := newTestApp(s, nil, "")
	m, _ := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("report x1")})
	m, cmd := m.(App).Update(tea.KeyMsg{Type: tea.KeyEnter})
	a = run(m.(App), cmd)
	if a.entity.ViewState().Phase != entity.PhaseNotFound || len(s.fetched) != 0 {
		t.Fatalf("non-numeric id should be NotFound without fetching")
	}
	if !strings.Contains(a.View(), "Report not found") {
		t.Fatalf("expected not found view:\n%s", a.View())
	}
}

func TestApp_PublishNavigatesToCreatedEntity(t *testing.T) {
	s := &stubServices{}
	a := newTestApp(s, &Route{Kind: domain.KindReview, ID: "1"}, "")
	a = run(a, a.initCmd)

	m, _ := a.Update(entity.NewEntityMsg{Kind: domain.KindReview, School: domain.School{ID: 3, Name: "Hill Valley High"}})
	a = m.(App)
	if a.active != composeView {
		t.Fatalf("expected compose view")
	}
	m, cmd := a.Update(compose.DoneMsg{Kind: domain.KindReview, School: domain.School{ID: 3}, Content: "Great"})
	a = run(m.(App), cmd)

	if len(s.saved) != 1 || s.saved[0].SchoolID != 3 || s.saved[0].IsEdit() {
		t.Fatalf("expected create draft for school 3, got %+v", s.saved)
	}
	if a.active != entityView || a.entity.RawID() != "99" {
		t.Fatalf("expected navigation to review 99, active=%v raw=%q", a.active, a.entity.RawID())
	}
	if a.status != "Review published" {
		t.Fatalf("unexpected status %q", a.status)
	}
}

func TestApp_PublishFailureStaysInCompose(t *testing.T) {
	s := &stubServices{saveErr: errors.New("school: Invalid pk.")}
	a := newTestApp(s, &Route{Kind: domain.KindReview, ID: "1"}, "")
	a = run(a, a.initCmd)
	m, _ := a.Update(entity.NewEntityMsg{Kind: domain.KindReview, School: domain.School{ID: 3}})
	m, cmd := m.(App).Update(compose.DoneMsg{Kind: domain.KindReview, School: domain.School{ID: 3}, Content: "Great"})
	a = run(m.(App), cmd)
	if a.active != composeView {
		t.Fatalf("failed publish should stay in compose")
	}
	if !strings.Contains(a.View(), "Invalid pk") {
		t.Fatalf("expected error in compose view:\n%s", a.View())
	}
}

func TestApp_QuitIgnoredWhileTyping(t *testing.T) {
	s := &stubServices{}
	a := newTestApp(s, nil, "")
	m, _ := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	a = m.(App)
	if !a.prompting || a.prompt.Value() != "q" {
		t.Fatalf("q in the prompt should be typed, not quit")
	}
}
