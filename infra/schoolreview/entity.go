package schoolreview

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/CrestNiraj12/schoolreview/app"
	"github.com/CrestNiraj12/schoolreview/domain"
)

var _ app.EntityService = (*entityService)(nil)

// entityService implements app.EntityService for reviews and reports.
type entityService struct {
	client *Client
}

// NewEntityService creates an EntityService backed by the API.
func NewEntityService(client *Client) *entityService {
	return &entityService{client: client}
}

// wireEntity is the API shape shared by reviews and reports.
type wireEntity struct {
	ID            int64      `json:"id"`
	Content       string     `json:"content"`
	Upvotes       int        `json:"upvotes"`
	CommentsCount int        `json:"comments_count"`
	CreatedAt     string     `json:"created_at"`
	School        wireSchool `json:"school"`
}

type wireSchool struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (w wireEntity) toDomain(kind domain.EntityKind, log *zap.Logger) domain.Entity {
	return domain.Entity{
		ID:            w.ID,
		Kind:          kind,
		Content:       w.Content,
		Upvotes:       w.Upvotes,
		CommentsCount: w.CommentsCount,
		CreatedAt:     parseCreatedAt(w.CreatedAt, log),
		School: domain.School{
			ID:   w.School.ID,
			Name: w.School.Name,
		},
	}
}

// parseCreatedAt reads DRF's ISO 8601 timestamp. A missing or malformed
// value yields the zero time, which the view leaves out.
func parseCreatedAt(raw string, log *zap.Logger) time.Time {
	if raw == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		log.Debug("unparsable created_at", zap.String("value", raw), zap.Error(err))
		return time.Time{}
	}
	return t
}

func (s *entityService) Fetch(ctx context.Context, kind domain.EntityKind, id int64) (domain.Entity, error) {
	path := fmt.Sprintf("/%s/%d", kind.Segment(), id)
	resp, err := s.client.Get(ctx, path, false)
	if err != nil {
		return domain.Entity{}, fmt.Errorf("fetching %s: %w", kind, err)
	}

	var w wireEntity
	if err := resp.Decode(&w); err != nil {
		return domain.Entity{}, fmt.Errorf("fetching %s: %w", kind, err)
	}
	return w.toDomain(kind, s.client.log), nil
}

func (s *entityService) Save(ctx context.Context, kind domain.EntityKind, draft domain.EntityDraft) (domain.Entity, error) {
	body := map[string]any{
		"content": draft.Content,
		"school":  draft.SchoolID,
	}
	if draft.IsEdit() {
		body["id"] = draft.ID
	}

	resp, err := s.client.Post(ctx, "/add-"+kind.Segment(), body, true)
	if err != nil {
		return domain.Entity{}, fmt.Errorf("saving %s: %w", kind, err)
	}

	var w wireEntity
	if err := resp.Decode(&w); err != nil {
		return domain.Entity{}, fmt.Errorf("saving %s: %w", kind, err)
	}
	return w.toDomain(kind, s.client.log), nil
}
