package schoolreview

import (
	"context"
	"fmt"

	"github.com/CrestNiraj12/schoolreview/app"
	"github.com/CrestNiraj12/schoolreview/domain"
)

var _ app.ViewerService = (*viewerService)(nil)

// viewerService implements app.ViewerService. All calls are authenticated.
type viewerService struct {
	client *Client
}

// NewViewerService creates a ViewerService backed by the API.
func NewViewerService(client *Client) *viewerService {
	return &viewerService{client: client}
}

func (s *viewerService) CheckOwner(ctx context.Context, kind domain.EntityKind, id int64) error {
	if _, err := s.client.Get(ctx, fmt.Sprintf("/check-owner/%d/%s", id, kind.Segment()), true); err != nil {
		return fmt.Errorf("checking owner: %w", err)
	}
	return nil
}

func (s *viewerService) CheckUpvoted(ctx context.Context, kind domain.EntityKind, id int64) error {
	if _, err := s.client.Get(ctx, fmt.Sprintf("/check-upvote/%d/%s", id, kind.Segment()), true); err != nil {
		return fmt.Errorf("checking upvote: %w", err)
	}
	return nil
}

func (s *viewerService) ToggleUpvote(ctx context.Context, kind domain.EntityKind, id int64) error {
	if _, err := s.client.GetOnce(ctx, fmt.Sprintf("/upvote/%d/%s", id, kind.Segment()), true); err != nil {
		return fmt.Errorf("upvoting %s: %w", kind, err)
	}
	return nil
}
