package compose

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/schoolreview/app"
	"github.com/CrestNiraj12/schoolreview/domain"
)

// --- Mode ---

type mode int

const (
	editorMode mode = iota
	inlineMode
)

const charLimit = 5000

// --- Messages ---

// DoneMsg is sent when composing is complete (submit or cancel).
type DoneMsg struct {
	Kind    domain.EntityKind
	School  domain.School
	Content string // Empty if cancelled
	Err     error
}

// Draft returns the create payload for the composed entity.
func (d DoneMsg) Draft() domain.EntityDraft {
	return domain.EntityDraft{Content: d.Content, SchoolID: d.School.ID}
}

// editorFinishedMsg is sent after the external editor exits.
type editorFinishedMsg struct {
	tmpPath string
	err     error
}

// --- Model ---

// Model holds the state for writing a new review or report about a school.
type Model struct {
	mode       mode
	editor     app.DraftEditor
	kind       domain.EntityKind
	school     domain.School
	status     string
	errs       []string
	publishing bool
	textarea   textarea.Model // Only used in inline mode
	tmpPath    string         // Temp file path for editor mode
}

// NewEditor creates a compose model that opens $EDITOR via tea.Exec.
func NewEditor(ed app.DraftEditor, kind domain.EntityKind, school domain.School) Model {
	return Model{
		mode:   editorMode,
		editor: ed,
		kind:   kind,
		school: school,
		status: "Opening editor...",
	}
}

// NewInline creates a compose model with an inline Bubble Tea textarea.
func NewInline(kind domain.EntityKind, school domain.School) Model {
	ta := textarea.New()
	ta.Placeholder = placeholder(kind)
	ta.ShowLineNumbers = false
	ta.CharLimit = charLimit
	ta.SetWidth(72)
	ta.SetHeight(8)
	ta.Focus()

	return Model{
		mode:     inlineMode,
		kind:     kind,
		school:   school,
		textarea: ta,
	}
}

func placeholder(kind domain.EntityKind) string {
	if kind == domain.KindReport {
		return "What happened? Reports are shared with the school community."
	}
	return "How was your experience at this school?"
}

// Init returns the initial command for the active mode.
func (m Model) Init() tea.Cmd {
	switch m.mode {
	case editorMode:
		return m.launchEditor()
	case inlineMode:
		return textarea.Blink
	}
	return nil
}

// launchEditor prepares the editor command and uses tea.Exec to properly
// suspend Bubble Tea's raw terminal mode while the editor runs.
func (m *Model) launchEditor() tea.Cmd {
	heading := fmt.Sprintf("New %s for %s", m.kind.Segment(), m.school.Name)
	cmd, tmpPath, err := m.editor.Cmd("", heading)
	if err != nil {
		return m.done("", fmt.Errorf("preparing editor: %w", err))
	}
	m.tmpPath = tmpPath

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{tmpPath: tmpPath, err: err}
	})
}

// SetPublishing marks the draft as handed to the server.
func (m *Model) SetPublishing() {
	m.publishing = true
	m.errs = nil
	m.status = fmt.Sprintf("Publishing %s...", m.kind.Segment())
}

// SetError shows a failed publish and lets the user try again.
func (m *Model) SetError(err error) {
	m.publishing = false
	m.status = ""
	m.errs = domain.Messages(err)
}

// Publishing reports whether a submit is in flight.
func (m Model) Publishing() bool { return m.publishing }

// Update handles messages for the compose view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {

	// --- Editor mode messages ---

	case editorFinishedMsg:
		if msg.err != nil {
			return m, m.done("", fmt.Errorf("editor: %w", msg.err))
		}
		content, err := m.editor.ReadContent(msg.tmpPath)
		if err != nil {
			return m, m.done("", err)
		}
		return m, m.done(content, nil)

	// --- Inline mode messages ---

	case tea.KeyMsg:
		if m.publishing {
			return m, nil
		}
		if msg.String() == "esc" {
			return m, m.done("", nil) // Cancel.
		}
		if m.mode != inlineMode {
			break
		}
		if msg.String() == "ctrl+s" {
			content := strings.TrimSpace(m.textarea.Value())
			if content == "" {
				m.errs = domain.Messages(domain.ErrEmptyContent)
				return m, nil
			}
			return m, m.done(content, nil)
		}

		var cmd tea.Cmd
		m.textarea, cmd = m.textarea.Update(msg)
		return m, cmd
	}

	if m.mode == inlineMode {
		var cmd tea.Cmd
		m.textarea, cmd = m.textarea.Update(msg)
		return m, cmd
	}

	return m, nil
}

// done wraps a DoneMsg into a tea.Cmd for immediate delivery.
func (m Model) done(content string, err error) tea.Cmd {
	msg := DoneMsg{Kind: m.kind, School: m.school, Content: content, Err: err}
	return func() tea.Msg { return msg }
}
