package entity

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/schoolreview/domain"
)

func (m Model) fetchEntity(epoch int, refresh bool) tea.Cmd {
	entities, kind, id := m.deps.Entities, m.kind, m.id
	return func() tea.Msg {
		e, err := entities.Fetch(context.Background(), kind, id)
		if err != nil {
			return EntityErrorMsg{Err: err, Refresh: refresh, Epoch: epoch}
		}
		e.Kind = kind
		return EntityLoadedMsg{Entity: e, Refresh: refresh, Epoch: epoch}
	}
}

func (m Model) fetchComments(epoch, gen, page int, initial bool) tea.Cmd {
	comments, kind, id := m.deps.Comments, m.kind, m.id
	return func() tea.Msg {
		pg, err := comments.CommentsPage(context.Background(), kind, id, page)
		if err != nil {
			return CommentsErrorMsg{Err: err, Page: page, Initial: initial, Gen: gen, Epoch: epoch}
		}
		pg.Page = page
		return CommentsLoadedMsg{Page: pg, Initial: initial, Gen: gen, Epoch: epoch}
	}
}

func (m Model) checkOwner(epoch int) tea.Cmd {
	viewer, kind, id := m.deps.Viewer, m.kind, m.id
	return func() tea.Msg {
		err := viewer.CheckOwner(context.Background(), kind, id)
		return OwnerCheckedMsg{Owns: err == nil, Err: err, Epoch: epoch}
	}
}

func (m Model) checkUpvoted(epoch int) tea.Cmd {
	viewer, kind, id := m.deps.Viewer, m.kind, m.id
	return func() tea.Msg {
		err := viewer.CheckUpvoted(context.Background(), kind, id)
		return UpvoteCheckedMsg{Upvoted: err == nil, Err: err, Epoch: epoch}
	}
}

func (m Model) saveEntity(epoch int, draft domain.EntityDraft) tea.Cmd {
	entities, kind := m.deps.Entities, m.kind
	return func() tea.Msg {
		e, err := entities.Save(context.Background(), kind, draft)
		if err == nil {
			e.Kind = kind
		}
		return EntitySavedMsg{Entity: e, Err: err, Epoch: epoch}
	}
}

func (m Model) toggleUpvote(epoch int, intended bool) tea.Cmd {
	viewer, kind, id := m.deps.Viewer, m.kind, m.id
	return func() tea.Msg {
		err := viewer.ToggleUpvote(context.Background(), kind, id)
		return UpvoteToggledMsg{Intended: intended, Err: err, Epoch: epoch}
	}
}

func (m Model) postComment(epoch int, text string) tea.Cmd {
	comments, kind, id := m.deps.Comments, m.kind, m.id
	return func() tea.Msg {
		c, err := comments.AddComment(context.Background(), kind, id, text)
		return CommentPostedMsg{Comment: c, Err: err, Epoch: epoch}
	}
}

func (m Model) upvoteComment(epoch int, commentID int64) tea.Cmd {
	comments := m.deps.Comments
	return func() tea.Msg {
		delta, err := comments.UpvoteComment(context.Background(), commentID)
		return CommentUpvotedMsg{CommentID: commentID, Delta: delta, Err: err, Epoch: epoch}
	}
}

// openEditor suspends the program and runs $EDITOR on content.
func (m Model) openEditor(target editorTarget, content, heading string) tea.Cmd {
	if m.deps.Editor == nil {
		return nil
	}
	cmd, path, err := m.deps.Editor.Cmd(content, heading)
	epoch := m.epoch
	if err != nil {
		return func() tea.Msg {
			return editorFinishedMsg{target: target, err: err, epoch: epoch}
		}
	}
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{target: target, path: path, err: err, epoch: epoch}
	})
}

func joinMessages(msgs []string) string {
	return strings.Join(msgs, ", ")
}
