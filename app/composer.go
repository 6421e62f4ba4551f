package app

import "os/exec"

// DraftEditor prepares an external editor session for a draft.
// Implemented by infra/editor.EnvEditor. The TUI runs the returned command
// with tea.ExecProcess and reads the result back with ReadContent.
type DraftEditor interface {
	Cmd(content, heading string) (*exec.Cmd, string, error)
	ReadContent(path string) (string, error)
}
