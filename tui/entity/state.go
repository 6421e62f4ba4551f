package entity

import (
	"time"

	"github.com/CrestNiraj12/schoolreview/domain"
)

const (
	// toastTTL is how long a notification stays visible.
	toastTTL = 3 * time.Second
	// prefetchTrigger is how close to the last comment the cursor may get
	// before the next page is requested.
	prefetchTrigger = 1
)

// Phase is the lifecycle state of the controller for the current route.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseLoaded
	PhaseNotFound
	PhaseErrorLoading
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseLoaded:
		return "loaded"
	case PhaseNotFound:
		return "not found"
	case PhaseErrorLoading:
		return "error loading"
	default:
		return "unknown"
	}
}

// ViewerState is what the current viewer may do with the entity.
type ViewerState struct {
	OwnsEntity bool
	HasUpvoted bool
}

// --- Messages ---
//
// Every result carries the epoch it was issued under. A result whose epoch
// differs from the controller's current epoch belongs to a route that is no
// longer open and is dropped.

// EntityLoadedMsg is sent when an entity fetch succeeds.
type EntityLoadedMsg struct {
	Entity  domain.Entity
	Refresh bool
	Epoch   int
}

// EntityErrorMsg is sent when an entity fetch fails.
type EntityErrorMsg struct {
	Err     error
	Refresh bool
	Epoch   int
}

// CommentsLoadedMsg is sent when a comment page arrives.
type CommentsLoadedMsg struct {
	Page    domain.CommentPage
	Initial bool
	Gen     int
	Epoch   int
}

// CommentsErrorMsg is sent when a comment page fetch fails.
type CommentsErrorMsg struct {
	Err     error
	Page    int
	Initial bool
	Gen     int
	Epoch   int
}

// OwnerCheckedMsg carries the ownership check result. Err is kept for
// logging only; any error means the viewer does not own the entity.
type OwnerCheckedMsg struct {
	Owns  bool
	Err   error
	Epoch int
}

// UpvoteCheckedMsg carries the has-upvoted check result.
type UpvoteCheckedMsg struct {
	Upvoted bool
	Err     error
	Epoch   int
}

// EntitySavedMsg is sent after an edit submit completes.
type EntitySavedMsg struct {
	Entity domain.Entity
	Err    error
	Epoch  int
}

// UpvoteToggledMsg is sent after the upvote toggle call completes.
type UpvoteToggledMsg struct {
	Intended bool
	Err      error
	Epoch    int
}

// CommentPostedMsg is sent after a comment submission completes.
type CommentPostedMsg struct {
	Comment domain.Comment
	Err     error
	Epoch   int
}

// CommentUpvotedMsg is sent after a comment upvote toggle completes.
type CommentUpvotedMsg struct {
	CommentID int64
	Delta     int
	Err       error
	Epoch     int
}

// NewEntityMsg asks the parent to open the compose view for another
// review/report on the same school.
type NewEntityMsg struct {
	Kind      domain.EntityKind
	School    domain.School
	UseEditor bool
}

type toastExpiredMsg struct {
	stamp int
}

type editorTarget int

const (
	editorForEdit editorTarget = iota
	editorForComment
)

type editorFinishedMsg struct {
	target editorTarget
	path   string
	err    error
	epoch  int
}
