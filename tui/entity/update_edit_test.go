package entity

import (
	"testing"

	"github.com/CrestNiraj12/schoolreview/domain"
)

func TestCancelEdit_NoopWhenInactive(t *testing.T) {
	b := newStubBackend()
	m := openLoaded(b, "42")
	before := m.ViewState()
	m = m.CancelEdit()
	after := m.ViewState()
	if after.Editing || after.Draft != before.Draft || len(after.Errors) != len(before.Errors) {
		t.Fatalf("cancel without a session changed state: %+v -> %+v", before, after)
	}
}

func TestCancelEdit_RestoresOriginalContent(t *testing.T) {
	b := newStubBackend()
	m := openLoaded(b, "42")
	m, _ = m.StartEdit()
	if !m.ViewState().Editing {
		t.Fatalf("owner should be able to start editing")
	}
	m = m.UpdateDraft("something else entirely")
	m = m.CancelEdit()
	vs := m.ViewState()
	if vs.Editing {
		t.Fatalf("cancel should close the session")
	}
	if vs.Draft != b.entity.Content {
		t.Fatalf("draft should equal original content, got %q", vs.Draft)
	}
	m = m.CancelEdit()
	if m.ViewState().Draft != b.entity.Content {
		t.Fatalf("second cancel must be a no-op")
	}
}

func TestSubmitEdit_NoChangeNeverCallsNetwork(t *testing.T) {
	b := newStubBackend()
	m := openLoaded(b, "42")
	m, _ = m.StartEdit()
	calls := b.networkCalls()

	m, cmd := m.SubmitEdit()
	m = drain(m, cmd)

	vs := m.ViewState()
	if b.networkCalls() != calls || len(b.saved) != 0 {
		t.Fatalf("no-change submit must not call the network")
	}
	if !vs.Editing {
		t.Fatalf("no-change submit must leave the session active")
	}
	if !vs.Toast.Visible || vs.Toast.Text != "You have not made any change" {
		t.Fatalf("expected no-change toast, got %+v", vs.Toast)
	}
}

func TestStartEdit_OwnerCheck403BlocksEditing(t *testing.T) {
	b := newStubBackend()
	b.ownerErr = &domain.TransportError{Method: "GET", Path: "/check-owner/42/review", Status: 403}
	m := openLoaded(b, "42")
	if m.ViewState().Viewer.OwnsEntity {
		t.Fatalf("403 owner check should read as not owner")
	}
	m, _ = m.StartEdit()
	if m.ViewState().Editing {
		t.Fatalf("non-owner must not open an edit session")
	}
}

func TestStartEdit_SingleSession(t *testing.T) {
	b := newStubBackend()
	m := openLoaded(b, "42")
	m, _ = m.StartEdit()
	m = m.UpdateDraft("draft one")
	m, _ = m.StartEdit()
	if m.ViewState().Draft != "draft one" {
		t.Fatalf("second StartEdit must not reset the active draft")
	}
}

func TestSubmitEdit_SuccessReplacesEntityAndCloses(t *testing.T) {
	b := newStubBackend()
	m := openLoaded(b, "42")
	m, _ = m.StartEdit()
	m = m.UpdateDraft("Updated: the library got bigger.")
	m, cmd := m.SubmitEdit()
	if !m.ViewState().SubmittingEdit {
		t.Fatalf("expected pending submit flag")
	}
	m = drain(m, cmd)

	if len(b.saved) != 1 {
		t.Fatalf("expected one save, got %d", len(b.saved))
	}
	got := b.saved[0]
	if got.ID != 42 || got.SchoolID != 7 || got.Content != "Updated: the library got bigger." {
		t.Fatalf("unexpected save payload: %+v", got)
	}
	vs := m.ViewState()
	if vs.Editing || vs.SubmittingEdit {
		t.Fatalf("session should be closed after success")
	}
	if vs.Entity.Content != "Updated: the library got bigger." {
		t.Fatalf("entity not replaced: %q", vs.Entity.Content)
	}
	if vs.Toast.Text != "Review edited" {
		t.Fatalf("unexpected toast: %+v", vs.Toast)
	}
}

func TestSubmitEdit_FailureKeepsDraftAndErrors(t *testing.T) {
	b := newStubBackend()
	b.saveErr = &domain.TransportError{
		Method:   "POST",
		Path:     "/add-review",
		Status:   400,
		Messages: []string{"content: This field may not be blank.", "school: Invalid pk."},
	}
	m := openLoaded(b, "42")
	m, _ = m.StartEdit()
	m = m.UpdateDraft("new text")
	m, cmd := m.SubmitEdit()
	m = drain(m, cmd)

	vs := m.ViewState()
	if !vs.Editing || vs.Draft != "new text" || vs.SubmittingEdit {
		t.Fatalf("failed submit should keep session and draft: %+v", vs)
	}
	if vs.Phase != PhaseLoaded {
		t.Fatalf("action failure must not leave Loaded, got %s", vs.Phase)
	}
	if len(vs.Errors) != 2 || vs.Errors[0] != "content: This field may not be blank." {
		t.Fatalf("expected flattened errors, got %v", vs.Errors)
	}

	// Submitting again is the retry.
	b.saveErr = nil
	m, cmd = m.SubmitEdit()
	m = drain(m, cmd)
	if m.ViewState().Editing || len(b.saved) != 2 {
		t.Fatalf("retry should save and close the session")
	}
}

func TestSubmitEdit_IgnoredWhilePending(t *testing.T) {
	b := newStubBackend()
	m := openLoaded(b, "42")
	m, _ = m.StartEdit()
	m = m.UpdateDraft("changed")
	m, first := m.SubmitEdit()
	m, second := m.SubmitEdit()
	if second != nil {
		t.Fatalf("second submit while pending must be ignored")
	}
	drain(m, first)
	if len(b.saved) != 1 {
		t.Fatalf("expected a single save, got %d", len(b.saved))
	}
}

func TestEntityRefresh_DoesNotClobberActiveDraft(t *testing.T) {
	b := newStubBackend()
	m := openLoaded(b, "42")
	m, _ = m.StartEdit()
	m = m.UpdateDraft("mine")
	m, _ = m.Update(EntityLoadedMsg{Entity: domain.Entity{ID: 42, Content: "server"}, Refresh: true, Epoch: m.epoch})
	if m.ViewState().Draft != "mine" {
		t.Fatalf("refresh must not overwrite an active draft")
	}
}
