package entity

import (
	tea "github.com/charmbracelet/bubbletea"
)

// ToggleUpvote flips the viewer's upvote. The intended state is fixed
// before the call; the count is only ever taken from a re-fetch after the
// server confirms. Presses while a toggle is pending are ignored.
func (m Model) ToggleUpvote() (Model, tea.Cmd) {
	if m.phase != PhaseLoaded || m.upvoting {
		return m, nil
	}
	m.upvoting = true
	return m, m.toggleUpvote(m.epoch, !m.viewer.HasUpvoted)
}

// UpvoteComment toggles the viewer's upvote on one loaded comment.
func (m Model) UpvoteComment(commentID int64) (Model, tea.Cmd) {
	if m.phase != PhaseLoaded || m.commentUpvoting[commentID] {
		return m, nil
	}
	if _, ok := m.pager.find(commentID); !ok {
		return m, nil
	}
	m.commentUpvoting[commentID] = true
	return m, m.upvoteComment(m.epoch, commentID)
}

func (m Model) handleUpvoteMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case UpvoteToggledMsg:
		if msg.Epoch != m.epoch {
			return m, nil
		}
		m.upvoting = false
		if msg.Err != nil {
			return m, m.fail("upvote", msg.Err)
		}
		m.viewer.HasUpvoted = msg.Intended
		text := "Upvoted"
		if !msg.Intended {
			text = "Removed upvote"
		}
		return m, tea.Batch(
			m.notify(ToastInfo, text),
			m.fetchEntity(m.epoch, true),
		)

	case CommentUpvotedMsg:
		if msg.Epoch != m.epoch {
			return m, nil
		}
		delete(m.commentUpvoting, msg.CommentID)
		if msg.Err != nil {
			return m, m.fail("upvote comment", msg.Err)
		}
		m.pager.applyDelta(msg.CommentID, msg.Delta)
		return m, nil
	}
	return m, nil
}
