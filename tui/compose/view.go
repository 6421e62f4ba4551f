package compose

import (
	"fmt"
	"strings"

	"github.com/CrestNiraj12/schoolreview/tui/common"
)

// View renders the compose view based on the active mode.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(common.AppTitleStyle.Render("🏫 SchoolReview"))
	b.WriteString(fmt.Sprintf("  New %s\n", m.kind.Title()))
	b.WriteString("  You are writing about " + common.SchoolStyle.Render(m.school.Name) + "\n\n")

	if m.mode == inlineMode {
		b.WriteString(m.textarea.View())
		b.WriteString("\n")
	}

	for _, e := range m.errs {
		b.WriteString(common.ErrorStyle.Render("  "+e) + "\n")
	}

	switch {
	case m.status != "":
		b.WriteString(common.StatusBarStyle.Render("  " + m.status))
	case m.mode == inlineMode:
		b.WriteString(common.StatusBarStyle.Render(
			fmt.Sprintf("  ctrl+s: publish • esc: cancel • %d/%d chars",
				len(m.textarea.Value()), charLimit),
		))
	default:
		b.WriteString(common.StatusBarStyle.Render("  esc: back"))
	}
	return b.String()
}
