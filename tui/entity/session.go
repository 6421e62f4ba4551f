package entity

// editSession tracks the inline edit of the open entity. When inactive the
// draft mirrors the entity content so that a later start begins from it.
type editSession struct {
	active bool
	draft  string
}

func (s *editSession) start(content string) bool {
	if s.active {
		return false
	}
	s.active = true
	s.draft = content
	return true
}

// close ends the session and re-seeds the draft from content. It serves
// both cancel (content is the unchanged original) and a confirmed save.
func (s *editSession) close(content string) {
	s.active = false
	s.draft = content
}

// sync follows server content while no edit is in progress.
func (s *editSession) sync(content string) {
	if !s.active {
		s.draft = content
	}
}
