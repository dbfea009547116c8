// Package kinship holds the family graph algorithms: ancestor mapping,
// relationship classification, cycle-safe edge mutation and tree view
// projections. Storage is reached only through the interfaces below.
package kinship

import (
	"context"

	"github.com/mtlprog/whanau/internal/model"
)

// DefaultMaxDepth bounds upward traversals when callers pass zero.
const DefaultMaxDepth = 12

// ParentLink is one parent of a person.
type ParentLink struct {
	ParentID string
	Role     model.Role
	Kind     model.EdgeKind
}

// ChildLink is one child of a person.
type ChildLink struct {
	ChildID string
	Role    model.Role
	Kind    model.EdgeKind
}

// CoParent is someone who shares at least one child with a person.
// Whangai is true if any edge to any shared child is WHANGAI.
type CoParent struct {
	CoParentID string
	Whangai    bool
}

// Reader is read-only access to the parent-child graph.
// Implementations exclude soft-deleted people and edges.
type Reader interface {
	ParentsOf(ctx context.Context, childID string) ([]ParentLink, error)
	ChildrenOf(ctx context.Context, parentID string) ([]ChildLink, error)
	CoParentsOf(ctx context.Context, personID string) ([]CoParent, error)
	// GenderOf returns GenderUnknown for missing people.
	GenderOf(ctx context.Context, personID string) (model.Gender, error)
}

// EdgeSelector picks the edges removed by an unlink.
// Either EdgeID or both ParentID and ChildID must be set. An empty Kind
// matches every kind for the pair.
type EdgeSelector struct {
	EdgeID   string
	ParentID string
	ChildID  string
	Kind     model.EdgeKind
}

// EdgeTx is the view of the store available inside a guarded mutation.
type EdgeTx interface {
	PersonExists(ctx context.Context, personID string) (bool, error)
	ParentsOf(ctx context.Context, childID string) ([]ParentLink, error)
	UpsertEdge(ctx context.Context, edge model.ParentChildEdge) (*model.ParentChildEdge, error)
	DeleteEdges(ctx context.Context, sel EdgeSelector) (int, error)
}

// EdgeStore runs fn as one read-then-write unit. Implementations backed by a
// transactional store must make the cycle check and the upsert atomic.
type EdgeStore interface {
	WithTx(ctx context.Context, fn func(tx EdgeTx) error) error
}

// isWhangai reports whether kind is WHANGAI.
// PersonObserver is told when a person is added, replaced or soft-deleted.
type PersonObserver interface {
	PersonChanged(personID string, removed bool)
}

func isWhangai(kind model.EdgeKind) bool {
	return kind == model.KindWhangai
}
