package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// EntityKind selects which commentable record a controller works on.
// It supplies the endpoint segments that differ between reviews and reports.
type EntityKind int

const (
	KindReview EntityKind = iota
	KindReport
)

// Segment is the path/discriminator segment used by the API ("review", "report").
func (k EntityKind) Segment() string {
	switch k {
	case KindReport:
		return "report"
	default:
		return "review"
	}
}

// Title is the display name ("Review", "Report").
func (k EntityKind) Title() string {
	switch k {
	case KindReport:
		return "Report"
	default:
		return "Review"
	}
}

func (k EntityKind) String() string { return k.Segment() }

// ParseKind maps a route segment to an EntityKind.
func ParseKind(s string) (EntityKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "review", "reviews":
		return KindReview, nil
	case "report", "reports":
		return KindReport, nil
	default:
		return KindReview, fmt.Errorf("unknown entity kind %q", s)
	}
}

// School is the school an entity was written about.
type School struct {
	ID   int64
	Name string
}

// Entity is a review or a report as returned by the API.
type Entity struct {
	ID            int64
	Kind          EntityKind
	Content       string
	Upvotes       int
	CommentsCount int
	CreatedAt     time.Time
	School        School
}

// EntityDraft is the payload for creating (ID == 0) or editing an entity.
type EntityDraft struct {
	ID       int64
	Content  string
	SchoolID int64
}

// IsEdit reports whether the draft targets an existing entity.
func (d EntityDraft) IsEdit() bool { return d.ID != 0 }

// Comment is a comment attached to exactly one entity.
type Comment struct {
	ID      int64
	Content string
	Upvotes int
}

// CommentPage is one page of comments plus the server's has-next signal.
type CommentPage struct {
	Page     int
	Comments []Comment
	HasMore  bool
}

// ParseEntityID applies the numeric route guard. Anything that is not a
// non-negative base-10 integer yields ErrNotFound.
func ParseEntityID(raw string) (int64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, fmt.Errorf("empty id: %w", ErrNotFound)
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id < 0 {
		return 0, fmt.Errorf("id %q is not numeric: %w", raw, ErrNotFound)
	}
	return id, nil
}
