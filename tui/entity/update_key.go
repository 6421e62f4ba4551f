package entity

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/schoolreview/domain"
)

func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch m.focus {
	case focusEdit:
		return m.handleEditKey(msg)
	case focusComment:
		return m.handleCommentKey(msg)
	}

	if key.Matches(msg, m.keys.ToggleHints) {
		m.showHelp = !m.showHelp
		return m, nil
	}

	switch m.phase {
	case PhaseErrorLoading:
		if key.Matches(msg, m.keys.Retry) {
			return m.Retry()
		}
		return m, nil
	case PhaseLoaded:
	default:
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Upvote):
		return m.ToggleUpvote()
	case key.Matches(msg, m.keys.UpvoteComment):
		if c, ok := m.selectedComment(); ok {
			return m.UpvoteComment(c.ID)
		}
		return m, nil
	case key.Matches(msg, m.keys.Edit):
		if m.edit.active {
			m.editArea.Focus()
			m.focus = focusEdit
			return m, nil
		}
		return m.StartEdit()
	case key.Matches(msg, m.keys.EditEditor):
		return m.editInEditor()
	case key.Matches(msg, m.keys.Comment):
		return m.commentInEditor()
	case key.Matches(msg, m.keys.CommentInline):
		return m.focusComment(), nil
	case key.Matches(msg, m.keys.LoadMore):
		return m.LoadMore()
	case key.Matches(msg, m.keys.NewEntity), key.Matches(msg, m.keys.NewEntityEdit):
		req := NewEntityMsg{
			Kind:      m.kind,
			School:    m.entity.School,
			UseEditor: key.Matches(msg, m.keys.NewEntityEdit) && m.deps.Editor != nil,
		}
		return m, func() tea.Msg { return req }
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.pager.comments)-1 {
			m.cursor++
		}
		if m.cursor >= len(m.pager.comments)-prefetchTrigger {
			return m.LoadMore()
		}
		return m, nil
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleEditKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		return m.CancelEdit(), nil
	case key.Matches(msg, m.keys.Submit):
		return m.SubmitEdit()
	}
	if m.submittingEdit {
		return m, nil
	}
	var cmd tea.Cmd
	m.editArea, cmd = m.editArea.Update(msg)
	m.edit.draft = m.editArea.Value()
	return m, cmd
}

func (m Model) handleCommentKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		// The draft survives; C brings it back.
		m.commentArea.Blur()
		m.focus = focusNone
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		return m.PostComment(m.commentArea.Value())
	}
	if m.commenting {
		return m, nil
	}
	var cmd tea.Cmd
	m.commentArea, cmd = m.commentArea.Update(msg)
	m.commentDraft = m.commentArea.Value()
	return m, cmd
}

func (m Model) selectedComment() (domain.Comment, bool) {
	if m.cursor < 0 || m.cursor >= len(m.pager.comments) {
		return domain.Comment{}, false
	}
	return m.pager.comments[m.cursor], true
}
