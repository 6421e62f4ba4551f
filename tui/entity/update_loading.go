package entity

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

func (m Model) handleLoadingMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EntityLoadedMsg:
		if msg.Epoch != m.epoch {
			return m, nil
		}
		m.entity = msg.Entity
		m.edit.sync(msg.Entity.Content)
		if !msg.Refresh {
			m.entityReady = true
			m.settleInitialLoad()
		}
		return m, nil

	case EntityErrorMsg:
		if msg.Epoch != m.epoch {
			return m, nil
		}
		if msg.Refresh {
			return m, m.fail("refresh "+m.kind.Segment(), msg.Err)
		}
		return m, m.failInitialLoad("fetch "+m.kind.Segment(), msg.Err)

	case CommentsLoadedMsg:
		if msg.Epoch != m.epoch {
			return m, nil
		}
		if msg.Page.Page <= 1 {
			if !m.pager.applyReset(msg.Gen, msg.Page) {
				return m, nil
			}
			m.cursor = 0
			if msg.Initial {
				m.commentsReady = true
				m.settleInitialLoad()
			}
			return m, nil
		}
		if !m.pager.applyMore(msg.Gen, msg.Page) {
			m.log.Debug("dropped stale comment page", zap.Int("page", msg.Page.Page), zap.Int("gen", msg.Gen))
		}
		return m, nil

	case CommentsErrorMsg:
		if msg.Epoch != m.epoch {
			return m, nil
		}
		if msg.Page <= 1 {
			if !m.pager.failReset(msg.Gen) {
				return m, nil
			}
			if msg.Initial {
				return m, m.failInitialLoad("fetch comments", msg.Err)
			}
			return m, m.fail("refresh comments", msg.Err)
		}
		if !m.pager.failMore(msg.Gen) {
			return m, nil
		}
		return m, m.fail("load more comments", msg.Err)
	}
	return m, nil
}

// settleInitialLoad moves Loading to Loaded once both the entity and the
// first comment page have arrived. ErrorLoading is left untouched.
func (m *Model) settleInitialLoad() {
	if m.phase == PhaseLoading && m.entityReady && m.commentsReady {
		m.phase = PhaseLoaded
	}
}

// failInitialLoad puts the route into ErrorLoading for the rest of the epoch.
func (m *Model) failInitialLoad(action string, err error) tea.Cmd {
	if m.phase == PhaseLoading {
		m.phase = PhaseErrorLoading
	}
	return m.fail(action, err)
}
