package app

import (
	"context"

	"github.com/CrestNiraj12/schoolreview/domain"
)

// CommentService pages, adds and upvotes comments on an entity.
type CommentService interface {
	// CommentsPage returns one page (1-based) of comments for an entity.
	CommentsPage(ctx context.Context, kind domain.EntityKind, entityID int64, page int) (domain.CommentPage, error)

	// AddComment posts a comment on an entity.
	AddComment(ctx context.Context, kind domain.EntityKind, entityID int64, text string) (domain.Comment, error)

	// UpvoteComment toggles the viewer's upvote on a comment and returns the
	// signed change to its upvote count.
	UpvoteComment(ctx context.Context, commentID int64) (int, error)
}
