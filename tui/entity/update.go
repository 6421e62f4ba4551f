package entity

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case spinner.TickMsg:
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case toastExpiredMsg:
		m.toast.expire(msg.stamp)
		return m, nil
	}

	switch msg := msg.(type) {
	case EntityLoadedMsg, EntityErrorMsg, CommentsLoadedMsg, CommentsErrorMsg:
		return m.handleLoadingMsg(msg)
	case OwnerCheckedMsg, UpvoteCheckedMsg:
		return m.handleViewerMsg(msg)
	case EntitySavedMsg, editorFinishedMsg:
		return m.handleEditMsg(msg)
	case UpvoteToggledMsg, CommentUpvotedMsg:
		return m.handleUpvoteMsg(msg)
	case CommentPostedMsg:
		return m.handleCommentMsg(msg)
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}
