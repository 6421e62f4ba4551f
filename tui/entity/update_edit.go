package entity

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/schoolreview/domain"
)

// StartEdit opens the inline edit session. Only the owner of a loaded
// entity may edit, and only one session exists at a time.
func (m Model) StartEdit() (Model, tea.Cmd) {
	if m.phase != PhaseLoaded || !m.viewer.OwnsEntity {
		return m, nil
	}
	if !m.edit.start(m.entity.Content) {
		return m, nil
	}
	m.editArea.SetValue(m.edit.draft)
	m.editArea.Focus()
	m.commentArea.Blur()
	m.focus = focusEdit
	return m, nil
}

// UpdateDraft replaces the edit draft.
func (m Model) UpdateDraft(text string) Model {
	m.edit.draft = text
	if m.editArea.Value() != text {
		m.editArea.SetValue(text)
	}
	return m
}

// SubmitEdit saves the draft. A draft identical to the current content is
// rejected locally with domain.ErrNoChange and the session stays open.
func (m Model) SubmitEdit() (Model, tea.Cmd) {
	if !m.edit.active || m.submittingEdit {
		return m, nil
	}
	if m.edit.draft == m.entity.Content {
		m.errors = domain.Messages(domain.ErrNoChange)
		return m, m.notify(ToastError, joinMessages(m.errors))
	}
	m.submittingEdit = true
	draft := domain.EntityDraft{
		ID:       m.entity.ID,
		Content:  m.edit.draft,
		SchoolID: m.entity.School.ID,
	}
	return m, m.saveEntity(m.epoch, draft)
}

// CancelEdit discards the draft. It does nothing without an active session.
func (m Model) CancelEdit() Model {
	if !m.edit.active {
		return m
	}
	m.edit.close(m.entity.Content)
	m.errors = nil
	m.editArea.Reset()
	m.editArea.Blur()
	if m.focus == focusEdit {
		m.focus = focusNone
	}
	return m
}

func (m Model) handleEditMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EntitySavedMsg:
		if msg.Epoch != m.epoch {
			return m, nil
		}
		m.submittingEdit = false
		if msg.Err != nil {
			return m, m.fail("edit "+m.kind.Segment(), msg.Err)
		}
		m.entity = msg.Entity
		m.edit.close(msg.Entity.Content)
		m.errors = nil
		m.editArea.Reset()
		m.editArea.Blur()
		if m.focus == focusEdit {
			m.focus = focusNone
		}
		return m, m.notify(ToastInfo, m.kind.Title()+" edited")

	case editorFinishedMsg:
		if msg.epoch != m.epoch {
			return m, nil
		}
		if msg.err != nil {
			return m, m.fail("editor", msg.err)
		}
		content, err := m.deps.Editor.ReadContent(msg.path)
		if err != nil {
			return m, m.fail("editor", err)
		}
		switch msg.target {
		case editorForEdit:
			if strings.TrimSpace(content) == "" {
				return m.CancelEdit(), nil
			}
			return m.UpdateDraft(content).SubmitEdit()
		case editorForComment:
			m = m.SetCommentDraft(content)
			if strings.TrimSpace(content) == "" {
				return m, nil
			}
			return m.PostComment(content)
		}
	}
	return m, nil
}

// editInEditor opens the edit session and hands the draft to $EDITOR.
func (m Model) editInEditor() (Model, tea.Cmd) {
	if m.deps.Editor == nil {
		return m.StartEdit()
	}
	m, _ = m.StartEdit()
	if !m.edit.active {
		return m, nil
	}
	heading := "Editing " + m.kind.Segment() + " on " + m.entity.School.Name
	return m, m.openEditor(editorForEdit, m.edit.draft, heading)
}
