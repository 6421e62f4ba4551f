package schoolreview

import (
	"context"
	"fmt"
	"strings"

	"github.com/CrestNiraj12/schoolreview/app"
	"github.com/CrestNiraj12/schoolreview/domain"
)

var _ app.CommentService = (*commentService)(nil)

// commentService implements app.CommentService.
type commentService struct {
	client *Client
}

// NewCommentService creates a CommentService backed by the API.
func NewCommentService(client *Client) *commentService {
	return &commentService{client: client}
}

// wireComment accepts both "content" and the serializer's "comment" field.
type wireComment struct {
	ID      int64  `json:"id"`
	Content string `json:"content"`
	Comment string `json:"comment"`
	Upvotes int    `json:"upvotes"`
}

func (w wireComment) toDomain() domain.Comment {
	text := w.Content
	if text == "" {
		text = w.Comment
	}
	return domain.Comment{ID: w.ID, Content: text, Upvotes: w.Upvotes}
}

func (s *commentService) CommentsPage(ctx context.Context, kind domain.EntityKind, entityID int64, page int) (domain.CommentPage, error) {
	path := fmt.Sprintf("/%s/%d/comments/%d", kind.Segment(), entityID, page)
	resp, err := s.client.Get(ctx, path, false)
	if err != nil {
		return domain.CommentPage{}, fmt.Errorf("fetching comments page %d: %w", page, err)
	}

	var raw []wireComment
	if err := resp.Decode(&raw); err != nil {
		return domain.CommentPage{}, fmt.Errorf("fetching comments page %d: %w", page, err)
	}

	comments := make([]domain.Comment, 0, len(raw))
	for _, w := range raw {
		comments = append(comments, w.toDomain())
	}
	return domain.CommentPage{
		Page:     page,
		Comments: comments,
		HasMore:  hasNext(resp),
	}, nil
}

// hasNext reads the pagination flag. Django sends Python booleans ("True").
func hasNext(resp *Response) bool {
	v := resp.Header.Get("X-Has-Next")
	if v == "" {
		v = resp.Header.Get("Has-Next")
	}
	return strings.ToLower(strings.TrimSpace(v)) == "true"
}

func (s *commentService) AddComment(ctx context.Context, kind domain.EntityKind, entityID int64, text string) (domain.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return domain.Comment{}, domain.ErrEmptyComment
	}
	body := map[string]any{
		"comment":   text,
		"entity_id": entityID,
		"entity":    kind.Segment(),
	}

	resp, err := s.client.Post(ctx, "/add-comment", body, true)
	if err != nil {
		return domain.Comment{}, fmt.Errorf("adding comment: %w", err)
	}

	var w wireComment
	if err := resp.Decode(&w); err != nil {
		return domain.Comment{}, fmt.Errorf("adding comment: %w", err)
	}
	return w.toDomain(), nil
}

func (s *commentService) UpvoteComment(ctx context.Context, commentID int64) (int, error) {
	path := fmt.Sprintf("/upvote/%d/comment", commentID)
	resp, err := s.client.GetOnce(ctx, path, true)
	if err != nil {
		return 0, fmt.Errorf("upvoting comment: %w", err)
	}

	var out struct {
		Type int `json:"type"`
	}
	if err := resp.Decode(&out); err != nil {
		return 0, fmt.Errorf("upvoting comment: %w", err)
	}
	return out.Type, nil
}
