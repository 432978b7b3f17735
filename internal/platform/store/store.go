// Package store persists the whole application document. Every backend
// implements the same contract: load everything, save everything. There is
// no partial update and no locking; two concurrent writers race and the
// second save wins (a documented, accepted property of the data model).
package store

import (
	"context"

	"github.com/healthplus/healthplus/internal/model"
)

// Store is the injected storage interface. Handlers never touch a file path
// or a connection pool directly, so tests can substitute MemStore.
type Store interface {
	Load(ctx context.Context) (*model.Document, error)
	Save(ctx context.Context, doc *model.Document) error
}
