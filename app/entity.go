package app

import (
	"context"

	"github.com/CrestNiraj12/schoolreview/domain"
)

// EntityService reads and writes reviews and reports.
type EntityService interface {
	// Fetch returns a single entity by kind and ID.
	Fetch(ctx context.Context, kind domain.EntityKind, id int64) (domain.Entity, error)

	// Save creates (draft.ID == 0) or edits an entity and returns the server's copy.
	Save(ctx context.Context, kind domain.EntityKind, draft domain.EntityDraft) (domain.Entity, error)
}
