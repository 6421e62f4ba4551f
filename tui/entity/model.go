package entity

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/CrestNiraj12/schoolreview/app"
	"github.com/CrestNiraj12/schoolreview/domain"
	"github.com/CrestNiraj12/schoolreview/tui/common"
)

// Deps are the collaborators the controller talks to.
type Deps struct {
	Entities app.EntityService
	Comments app.CommentService
	Viewer   app.ViewerService
	Editor   app.DraftEditor // optional; disables E and c when nil
	Logger   *zap.Logger     // optional
}

type focusTarget int

const (
	focusNone focusTarget = iota
	focusEdit
	focusComment
)

// Model is the interaction controller for a single review or report.
type Model struct {
	deps Deps
	log  *zap.Logger

	kind  domain.EntityKind
	rawID string
	id    int64
	epoch int
	phase Phase

	entity        domain.Entity
	entityReady   bool
	commentsReady bool
	viewer        ViewerState
	pager         commentPager
	edit          editSession
	commentDraft  string

	upvoting        bool
	submittingEdit  bool
	commenting      bool
	commentUpvoting map[int64]bool

	errors   []string
	toast    toastSlot
	toastTTL time.Duration

	// UI
	keys        common.KeyMap
	help        help.Model
	showHelp    bool
	spinner     spinner.Model
	editArea    textarea.Model
	commentArea textarea.Model
	focus       focusTarget
	cursor      int
	width       int
	height      int
}

// New creates a controller for kind. Call Open to load a route.
func New(kind domain.EntityKind, deps Deps) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6600"))

	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return Model{
		deps:            deps,
		log:             log.Named("entity"),
		kind:            kind,
		phase:           PhaseLoading,
		commentUpvoting: make(map[int64]bool),
		toastTTL:        toastTTL,
		keys:            common.DefaultKeyMap(),
		help:            help.New(),
		spinner:         s,
		editArea:        newTextarea("Write your " + kind.Segment() + "..."),
		commentArea:     newTextarea("Write a comment..."),
	}
}

func newTextarea(placeholder string) textarea.Model {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.CharLimit = 5000
	ta.SetWidth(60)
	ta.SetHeight(6)
	return ta
}

// Init starts the spinner. Data is loaded by Open.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Open resets every piece of per-route state and loads kind/rawID. A raw id
// that is not a non-negative integer settles straight into NotFound without
// touching the network.
func (m Model) Open(kind domain.EntityKind, rawID string) (Model, tea.Cmd) {
	m.epoch++
	m.kind = kind
	m.rawID = rawID
	m.id = 0
	m.entity = domain.Entity{}
	m.entityReady = false
	m.commentsReady = false
	m.viewer = ViewerState{}
	m.pager = commentPager{gen: m.pager.gen}
	m.edit = editSession{}
	m.commentDraft = ""
	m.upvoting = false
	m.submittingEdit = false
	m.commenting = false
	m.commentUpvoting = make(map[int64]bool)
	m.errors = nil
	m.focus = focusNone
	m.cursor = 0
	m.editArea.Reset()
	m.editArea.Blur()
	m.editArea.Placeholder = "Write your " + kind.Segment() + "..."
	m.commentArea.Reset()
	m.commentArea.Blur()

	id, err := domain.ParseEntityID(rawID)
	if err != nil {
		m.phase = PhaseNotFound
		m.log.Debug("route rejected", zap.String("kind", kind.Segment()), zap.String("id", rawID))
		return m, nil
	}
	m.id = id
	m.phase = PhaseLoading

	gen := m.pager.beginReset()
	return m, tea.Batch(
		m.fetchEntity(m.epoch, false),
		m.fetchComments(m.epoch, gen, 1, true),
		m.checkOwner(m.epoch),
		m.checkUpvoted(m.epoch),
	)
}

// Retry re-runs the mount sequence after a failed initial load.
func (m Model) Retry() (Model, tea.Cmd) {
	if m.phase != PhaseErrorLoading {
		return m, nil
	}
	return m.Open(m.kind, m.rawID)
}

// SetSize updates the viewport dimensions.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
	inner := max(20, w-6)
	m.editArea.SetWidth(inner)
	m.commentArea.SetWidth(inner)
}

// Kind returns the entity kind of the open route.
func (m Model) Kind() domain.EntityKind { return m.kind }

// RawID returns the id of the open route exactly as it was given.
func (m Model) RawID() string { return m.rawID }

// IsCapturingInput reports whether key presses are going to a text box.
func (m Model) IsCapturingInput() bool { return m.focus != focusNone }

// ViewState is a read-only snapshot of the controller.
type ViewState struct {
	Phase           Phase
	Kind            domain.EntityKind
	Entity          domain.Entity
	Viewer          ViewerState
	Comments        []domain.Comment
	Page            int
	HasMoreComments bool
	LoadingMore     bool
	Editing         bool
	Draft           string
	SubmittingEdit  bool
	Upvoting        bool
	CommentDraft    string
	Commenting      bool
	Errors          []string
	Toast           Toast
}

// ViewState returns the current snapshot.
func (m Model) ViewState() ViewState {
	vs := ViewState{
		Phase:           m.phase,
		Kind:            m.kind,
		Viewer:          m.viewer,
		Comments:        append([]domain.Comment(nil), m.pager.comments...),
		Page:            m.pager.page,
		HasMoreComments: m.pager.hasMore,
		LoadingMore:     m.pager.loading,
		Editing:         m.edit.active,
		Draft:           m.edit.draft,
		SubmittingEdit:  m.submittingEdit,
		Upvoting:        m.upvoting,
		CommentDraft:    m.commentDraft,
		Commenting:      m.commenting,
		Errors:          append([]string(nil), m.errors...),
		Toast:           m.toast.current,
	}
	if m.entityReady {
		vs.Entity = m.entity
	}
	return vs
}

// Update handles messages for the controller.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	return m.update(msg)
}

// notify writes text into the toast slot and schedules its dismissal.
func (m *Model) notify(level ToastLevel, text string) tea.Cmd {
	stamp := m.toast.show(level, text)
	return expireToast(m.toastTTL, stamp)
}

// fail records err as the last action's error list and toasts it.
func (m *Model) fail(action string, err error) tea.Cmd {
	m.errors = domain.Messages(err)
	m.log.Warn(action+" failed",
		zap.String("kind", m.kind.Segment()),
		zap.Int64("id", m.id),
		zap.Error(err),
	)
	return m.notify(ToastError, joinMessages(m.errors))
}
