package entity

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Check failures are never user errors: a 403/404, a network failure or an
// anonymous viewer all read as "no".
func (m Model) handleViewerMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case OwnerCheckedMsg:
		if msg.Epoch != m.epoch {
			return m, nil
		}
		m.viewer.OwnsEntity = msg.Owns
		if msg.Err != nil {
			m.log.Debug("owner check negative", zap.Int64("id", m.id), zap.Error(msg.Err))
		}
		return m, nil

	case UpvoteCheckedMsg:
		if msg.Epoch != m.epoch {
			return m, nil
		}
		m.viewer.HasUpvoted = msg.Upvoted
		if msg.Err != nil {
			m.log.Debug("upvote check negative", zap.Int64("id", m.id), zap.Error(msg.Err))
		}
		return m, nil
	}
	return m, nil
}
