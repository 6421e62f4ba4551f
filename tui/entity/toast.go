package entity

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ToastLevel selects how a toast is rendered.
type ToastLevel int

const (
	ToastInfo ToastLevel = iota
	ToastError
)

// Toast is the visible notification.
type Toast struct {
	ID      int
	Text    string
	Level   ToastLevel
	Visible bool
}

// toastSlot holds at most one toast. A new message rewrites the visible
// toast in place (same ID) or, when nothing is shown, creates a new one.
// stamp changes on every write so only the newest expiry hides it.
type toastSlot struct {
	current Toast
	nextID  int
	stamp   int
}

func (s *toastSlot) show(level ToastLevel, text string) int {
	if !s.current.Visible {
		s.nextID++
		s.current.ID = s.nextID
		s.current.Visible = true
	}
	s.current.Text = text
	s.current.Level = level
	s.stamp++
	return s.stamp
}

func (s *toastSlot) expire(stamp int) {
	if stamp == s.stamp {
		s.current.Visible = false
	}
}

func expireToast(ttl time.Duration, stamp int) tea.Cmd {
	if ttl <= 0 {
		return nil
	}
	return tea.Tick(ttl, func(time.Time) tea.Msg {
		return toastExpiredMsg{stamp: stamp}
	})
}
