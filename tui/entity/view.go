package entity

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/CrestNiraj12/schoolreview/domain"
	"github.com/CrestNiraj12/schoolreview/tui/common"
)

// View renders the controller.
func (m Model) View() string {
	var b strings.Builder

	title := common.AppTitleStyle.Padding(1, 0, 0, 1).Render("🏫 SchoolReview")
	tagline := common.TaglineStyle.Render("<Rate it. Report it. Discuss it.>")
	b.WriteString(title + tagline + "\n")
	tag := fmt.Sprintf("%s #%s", m.kind.Title(), m.rawID)
	b.WriteString(common.KindStyle.Margin(0, 0, 1, 2).Render(tag) + "\n")

	switch m.phase {
	case PhaseLoading:
		b.WriteString(fmt.Sprintf("  %s Loading %s...\n", m.spinner.View(), m.kind.Segment()))
	case PhaseNotFound:
		b.WriteString(common.ErrorStyle.Render(fmt.Sprintf("  %s not found.", m.kind.Title())))
		b.WriteString("\n\n  Press : to open another one.\n")
	case PhaseErrorLoading:
		b.WriteString(common.ErrorStyle.Render(fmt.Sprintf("  Could not load this %s.", m.kind.Segment())))
		b.WriteString("\n")
		for _, e := range m.errors {
			b.WriteString("  • " + e + "\n")
		}
		b.WriteString("\n  Press r to retry.\n")
	case PhaseLoaded:
		b.WriteString(m.renderEntity())
		b.WriteString("\n")
		b.WriteString(m.renderCommentBox())
		b.WriteString(m.renderComments())
	}

	if t := m.toast.current; t.Visible {
		style := common.SuccessStyle
		if t.Level == ToastError {
			style = common.ErrorStyle
		}
		b.WriteString(common.ToastStyle.Render(style.Render(t.Text)) + "\n")
	}

	b.WriteString(m.helpView())
	return b.String()
}

func (m Model) contentWidth() int {
	if m.width <= 0 {
		return 72
	}
	return max(20, m.width-6)
}

func (m Model) renderEntity() string {
	var b strings.Builder
	e := m.entity

	header := common.SchoolStyle.Render(common.CleanText(e.School.Name))
	if m.viewer.OwnsEntity {
		header += common.OwnBadgeStyle.Render("(you)")
	}
	b.WriteString("  " + header + "\n")

	if m.edit.active {
		b.WriteString(m.editArea.View() + "\n")
		for _, msg := range m.errors {
			b.WriteString(common.ErrorStyle.Render("  "+msg) + "\n")
		}
		hint := "ctrl+s: save • esc: cancel"
		if m.submittingEdit {
			hint = m.spinner.View() + " Saving..."
		}
		b.WriteString(common.TimestampStyle.Render("  "+hint) + "\n")
		return b.String()
	}

	body := lipgloss.NewStyle().Width(m.contentWidth()).Render(common.ContentStyle.Render(common.CleanText(e.Content)))
	b.WriteString(common.EntityBoxStyle.Render(body) + "\n")

	upvote := fmt.Sprintf("▲ %d", e.Upvotes)
	if m.viewer.HasUpvoted {
		upvote = common.UpvotedStyle.Render(upvote + " upvoted")
	} else {
		upvote = common.TimestampStyle.Render(upvote)
	}
	if m.upvoting {
		upvote += " " + m.spinner.View()
	}
	meta := []string{upvote, common.TimestampStyle.Render(common.Plural(e.CommentsCount, "comment"))}
	if !e.CreatedAt.IsZero() {
		meta = append(meta, common.TimestampStyle.Render(e.CreatedAt.Local().Format("Jan 2, 2006 15:04")))
	}
	b.WriteString("  " + strings.Join(meta, common.TimestampStyle.Render(" • ")) + "\n")
	return b.String()
}

func (m Model) renderCommentBox() string {
	if m.focus != focusComment {
		if m.commentDraft != "" {
			return common.TimestampStyle.Render("  Unsent comment kept. Press C to continue.") + "\n\n"
		}
		return ""
	}
	var b strings.Builder
	b.WriteString(m.commentArea.View() + "\n")
	hint := "ctrl+s: post • esc: close"
	if m.commenting {
		hint = m.spinner.View() + " Posting..."
	}
	b.WriteString(common.TimestampStyle.Render("  "+hint) + "\n\n")
	return b.String()
}

func (m Model) renderComments() string {
	var b strings.Builder
	comments := m.pager.comments
	b.WriteString(common.SchoolStyle.Render(fmt.Sprintf("  Comments (%d)", m.entity.CommentsCount)) + "\n")
	if len(comments) == 0 {
		if m.pager.resetting {
			b.WriteString(fmt.Sprintf("  %s Loading comments...\n", m.spinner.View()))
		} else {
			b.WriteString("  No comments yet. Press C to add one.\n")
		}
		return b.String()
	}

	// Header, entity box and status bar take roughly 14 lines; each comment
	// box is 4 lines.
	visible := max(1, (m.height-14)/4)
	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}
	end := min(len(comments), start+visible)

	width := m.contentWidth()
	for i := start; i < end; i++ {
		b.WriteString(renderComment(comments[i], width, i == m.cursor, m.commentUpvoting[comments[i].ID]) + "\n")
	}

	switch {
	case m.pager.loading:
		b.WriteString(fmt.Sprintf("  %s Loading more comments...\n", m.spinner.View()))
	case m.pager.hasMore:
		b.WriteString(common.TimestampStyle.Render("  m: load more comments") + "\n")
	default:
		b.WriteString(common.TimestampStyle.Render("  The end.") + "\n")
	}
	return b.String()
}

func renderComment(c domain.Comment, width int, selected, pending bool) string {
	text := common.TruncateLines(common.CleanText(c.Content), width-2, 2)
	votes := fmt.Sprintf("▲ %d", c.Upvotes)
	if pending {
		votes += " …"
	}
	body := common.ContentStyle.Render(text) + "\n" + common.TimestampStyle.Render(votes)
	if selected {
		return common.SelectedStyle.Width(width).Render(body)
	}
	return common.UnselectedStyle.Width(width).Render(body)
}

func (m Model) helpView() string {
	h := m.help
	h.ShowAll = m.showHelp
	return common.StatusBarStyle.Render(" " + h.View(m.keys))
}
