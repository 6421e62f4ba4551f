package entity

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/schoolreview/domain"
)

// LoadMore requests the next comment page. It is a no-op while another
// page is in flight and once the last page has been seen.
func (m Model) LoadMore() (Model, tea.Cmd) {
	if m.phase != PhaseLoaded {
		return m, nil
	}
	page, gen, ok := m.pager.beginMore()
	if !ok {
		return m, nil
	}
	return m, m.fetchComments(m.epoch, gen, page, false)
}

// SetCommentDraft replaces the pending comment text.
func (m Model) SetCommentDraft(text string) Model {
	m.commentDraft = text
	if m.commentArea.Value() != text {
		m.commentArea.SetValue(text)
	}
	return m
}

// PostComment submits text as a new comment. On success the entity and
// comment page 1 are fetched again and page 1 replaces the list.
func (m Model) PostComment(text string) (Model, tea.Cmd) {
	if m.phase != PhaseLoaded || m.commenting {
		return m, nil
	}
	m = m.SetCommentDraft(text)
	if strings.TrimSpace(text) == "" {
		m.errors = domain.Messages(domain.ErrEmptyComment)
		return m, m.notify(ToastError, joinMessages(m.errors))
	}
	m.commenting = true
	return m, m.postComment(m.epoch, text)
}

func (m Model) handleCommentMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case CommentPostedMsg:
		if msg.Epoch != m.epoch {
			return m, nil
		}
		m.commenting = false
		if msg.Err != nil {
			return m, m.fail("add comment", msg.Err)
		}
		m.commentDraft = ""
		m.commentArea.Reset()
		m.commentArea.Blur()
		if m.focus == focusComment {
			m.focus = focusNone
		}
		m.errors = nil
		gen := m.pager.beginReset()
		return m, tea.Batch(
			m.notify(ToastInfo, "Comment added"),
			m.fetchEntity(m.epoch, true),
			m.fetchComments(m.epoch, gen, 1, false),
		)
	}
	return m, nil
}

// commentInEditor hands the comment draft to $EDITOR.
func (m Model) commentInEditor() (Model, tea.Cmd) {
	if m.phase != PhaseLoaded {
		return m, nil
	}
	if m.deps.Editor == nil {
		return m.focusComment(), nil
	}
	heading := "Commenting on " + m.kind.Segment() + " #" + m.rawID
	return m, m.openEditor(editorForComment, m.commentDraft, heading)
}

func (m Model) focusComment() Model {
	if m.phase != PhaseLoaded || m.edit.active {
		return m
	}
	m.commentArea.SetValue(m.commentDraft)
	m.commentArea.Focus()
	m.focus = focusComment
	return m
}
