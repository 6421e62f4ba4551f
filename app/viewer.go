package app

import (
	"context"

	"github.com/CrestNiraj12/schoolreview/domain"
)

// ViewerService answers questions about the authenticated viewer's relation
// to an entity. The checks are presence checks: nil means yes.
type ViewerService interface {
	CheckOwner(ctx context.Context, kind domain.EntityKind, id int64) error
	CheckUpvoted(ctx context.Context, kind domain.EntityKind, id int64) error

	// ToggleUpvote adds or removes the viewer's upvote; the server decides which.
	ToggleUpvote(ctx context.Context, kind domain.EntityKind, id int64) error
}
