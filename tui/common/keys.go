package common

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines shared key bindings across all views.
type KeyMap struct {
	Quit          key.Binding
	ForceQuit     key.Binding
	Open          key.Binding // : — open another review/report
	Retry         key.Binding
	Upvote        key.Binding // u — upvote the entity
	UpvoteComment key.Binding // U — upvote the selected comment
	Edit          key.Binding // e — edit inline
	EditEditor    key.Binding // E — edit via $EDITOR
	Comment       key.Binding // c — comment via $EDITOR
	CommentInline key.Binding // C — comment inline
	Submit        key.Binding
	Cancel        key.Binding
	LoadMore      key.Binding
	NewEntity     key.Binding // n — write a new review/report for this school
	NewEntityEdit key.Binding // N — same, via $EDITOR
	Up            key.Binding
	Down          key.Binding
	ToggleHints   key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
		Open: key.NewBinding(
			key.WithKeys(":"),
			key.WithHelp(":", "open"),
		),
		Retry: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "retry"),
		),
		Upvote: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "upvote"),
		),
		UpvoteComment: key.NewBinding(
			key.WithKeys("U"),
			key.WithHelp("U", "upvote comment"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit (inline)"),
		),
		EditEditor: key.NewBinding(
			key.WithKeys("E"),
			key.WithHelp("E", "edit ($EDITOR)"),
		),
		Comment: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "comment ($EDITOR)"),
		),
		CommentInline: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "comment (inline)"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "submit"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		LoadMore: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "more comments"),
		),
		NewEntity: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "write new"),
		),
		NewEntityEdit: key.NewBinding(
			key.WithKeys("N"),
			key.WithHelp("N", "write new ($EDITOR)"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		ToggleHints: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "hints"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Upvote, k.Edit, k.CommentInline, k.LoadMore, k.Open, k.ToggleHints, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.LoadMore, k.Retry},
		{k.Upvote, k.UpvoteComment, k.NewEntity, k.NewEntityEdit},
		{k.Edit, k.EditEditor, k.Comment, k.CommentInline},
		{k.Submit, k.Cancel, k.Open, k.ToggleHints, k.Quit},
	}
}
