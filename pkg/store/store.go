// Package store persists named diagrams across runs.
//
// A [Record] couples editable source text with an optional parsed
// snapshot. Two backends implement [Store]: [FileStore] keeps one JSON
// file per record for CLI use, and [MongoStore] backs multi-instance
// server deployments.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/Ak-sara/aksara-writer-sub001/pkg/diagram"
)

// Sentinel errors for store operations.
var (
	// ErrNotFound is returned when no record exists under the given ID.
	ErrNotFound = errors.New("record not found")
)

// Record is a saved diagram. Source holds the text the user edits;
// Diagram optionally holds the parsed and laid-out snapshot from the
// last pipeline run.
type Record struct {
	ID        string           `json:"id" bson:"_id"`
	Name      string           `json:"name" bson:"name"`
	Source    string           `json:"source" bson:"source"`
	Kind      string           `json:"kind,omitempty" bson:"kind,omitempty"`
	Diagram   *diagram.Diagram `json:"diagram,omitempty" bson:"diagram,omitempty"`
	CreatedAt time.Time        `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time        `json:"updatedAt" bson:"updated_at"`
}

// stamp fills identity and modification times ahead of a write.
func (r *Record) stamp(now time.Time) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	r.UpdatedAt = now
}

// Store is the interface for record storage backends.
type Store interface {
	// Save upserts a record. An empty ID is filled with a fresh UUID
	// and CreatedAt/UpdatedAt are stamped.
	Save(ctx context.Context, rec *Record) error

	// Get retrieves a record by ID. Returns [ErrNotFound] if no record
	// exists.
	Get(ctx context.Context, id string) (*Record, error)

	// List returns all records, most recently updated first.
	List(ctx context.Context) ([]*Record, error)

	// Delete removes a record by ID. Returns [ErrNotFound] if no record
	// exists.
	Delete(ctx context.Context, id string) error

	// Close releases any resources held by the backend.
	Close() error
}
