package entity

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/schoolreview/domain"
)

// stubBackend implements every collaborator port and records calls.
type stubBackend struct {
	entity    domain.Entity
	fetchErr  error
	pages     map[int]domain.CommentPage
	pageErr   map[int]error
	ownerErr  error
	upvoteErr error // CheckUpvoted
	toggleErr error
	saveErr   error
	addErr    error
	delta     int
	deltaErr  error

	fetchCalls   int
	pageCalls    []int
	ownerCalls   int
	upvotedCalls int
	toggleCalls  int
	saved        []domain.EntityDraft
	added        []string
	upvotedIDs   []int64
}

func newStubBackend() *stubBackend {
	return &stubBackend{
		entity: domain.Entity{
			ID:            42,
			Content:       "Great teachers, tiny library.",
			Upvotes:       3,
			CommentsCount: 5,
			School:        domain.School{ID: 7, Name: "Springfield High"},
		},
		pages:   map[int]domain.CommentPage{},
		pageErr: map[int]error{},
		delta:   1,
	}
}

func (s *stubBackend) Fetch(_ context.Context, kind domain.EntityKind, id int64) (domain.Entity, error) {
	s.fetchCalls++
	if s.fetchErr != nil {
		return domain.Entity{}, s.fetchErr
	}
	e := s.entity
	e.ID = id
	e.Kind = kind
	return e, nil
}

func (s *stubBackend) Save(_ context.Context, kind domain.EntityKind, d domain.EntityDraft) (domain.Entity, error) {
	s.saved = append(s.saved, d)
	if s.saveErr != nil {
		return domain.Entity{}, s.saveErr
	}
	s.entity.Content = d.Content
	e := s.entity
	e.Kind = kind
	return e, nil
}

func (s *stubBackend) CommentsPage(_ context.Context, _ domain.EntityKind, _ int64, page int) (domain.CommentPage, error) {
	s.pageCalls = append(s.pageCalls, page)
	if err := s.pageErr[page]; err != nil {
		return domain.CommentPage{}, err
	}
	pg := s.pages[page]
	pg.Page = page
	return pg, nil
}

func (s *stubBackend) AddComment(_ context.Context, _ domain.EntityKind, _ int64, text string) (domain.Comment, error) {
	s.added = append(s.added, text)
	if s.addErr != nil {
		return domain.Comment{}, s.addErr
	}
	return domain.Comment{ID: 100, Content: text}, nil
}

func (s *stubBackend) UpvoteComment(_ context.Context, id int64) (int, error) {
	s.upvotedIDs = append(s.upvotedIDs, id)
	if s.deltaErr != nil {
		return 0, s.deltaErr
	}
	return s.delta, nil
}

func (s *stubBackend) CheckOwner(context.Context, domain.EntityKind, int64) error {
	s.ownerCalls++
	return s.ownerErr
}

func (s *stubBackend) CheckUpvoted(context.Context, domain.EntityKind, int64) error {
	s.upvotedCalls++
	return s.upvoteErr
}

func (s *stubBackend) ToggleUpvote(context.Context, domain.EntityKind, int64) error {
	s.toggleCalls++
	return s.toggleErr
}

func (s *stubBackend) networkCalls() int {
	return s.fetchCalls + len(s.pageCalls) + s.ownerCalls + s.upvotedCalls +
		s.toggleCalls + len(s.saved) + len(s.added) + len(s.upvotedIDs)
}

func comments(ids ...int64) []domain.Comment {
	out := make([]domain.Comment, 0, len(ids))
	for _, id := range ids {
		out = append(out, domain.Comment{ID: id, Content: fmt.Sprintf("c%d", id)})
	}
	return out
}

func newTestModel(b *stubBackend) Model {
	m := New(domain.KindReview, Deps{Entities: b, Comments: b, Viewer: b})
	m.toastTTL = 0
	return m
}

// drain runs cmd and every command it produces, feeding each message back
// into the model, until nothing is left.
func drain(m Model, cmd tea.Cmd) Model {
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
			var next tea.Cmd
			m, next = m.Update(msg)
			queue = append(queue, next)
		}
	}
	return m
}

// collect runs cmd (flattening batches) without feeding results back.
func collect(cmd tea.Cmd) []tea.Msg {
	var out []tea.Msg
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
			out = append(out, msg)
		}
	}
	return out
}

func openLoaded(b *stubBackend, raw string) Model {
	m, cmd := newTestModel(b).Open(domain.KindReview, raw)
	return drain(m, cmd)
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}
