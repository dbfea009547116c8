package kinship

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mtlprog/whanau/internal/model"
)

// LinkRequest proposes a parent → child edge.
type LinkRequest struct {
	ParentID string
	ChildID  string
	Role     model.Role
	Kind     model.EdgeKind
}

// Guard validates parent-child edge mutations before they reach the store:
// no self links, no cycles, upsert keyed on (parent, child, kind).
//
// The role/gender rule (MOTHER needs FEMALE, FATHER needs MALE) is checked by
// the caller layer before LinkParentChild is invoked.
type Guard struct {
	store       EdgeStore
	invalidator *AncestorCache
	logger      *slog.Logger
}

// GuardOption configures a Guard.
type GuardOption func(*Guard)

// WithInvalidator clears cache after every successful mutation.
func WithInvalidator(cache *AncestorCache) GuardOption {
	return func(g *Guard) {
		g.invalidator = cache
	}
}

// WithGuardLogger sets a custom logger for the guard.
func WithGuardLogger(logger *slog.Logger) GuardOption {
	return func(g *Guard) {
		g.logger = logger
	}
}

// NewGuard creates a guard over store.
func NewGuard(store EdgeStore, opts ...GuardOption) (*Guard, error) {
	if store == nil {
		return nil, errors.New("edge store is required")
	}
	g := &Guard{
		store:  store,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

func validateLink(req LinkRequest) error {
	if strings.TrimSpace(req.ParentID) == "" {
		return NewValidationError("parent_id", "is required")
	}
	if strings.TrimSpace(req.ChildID) == "" {
		return NewValidationError("child_id", "is required")
	}
	if req.ParentID == req.ChildID {
		return ErrSelfLink
	}
	if !req.Role.IsValid() {
		return NewValidationError("role", fmt.Sprintf("unknown role %q", req.Role))
	}
	if !req.Kind.IsValid() {
		return NewValidationError("kind", fmt.Sprintf("unknown kind %q", req.Kind))
	}
	return nil
}

// LinkParentChild inserts or updates the edge described by req.
// An existing edge with the same (parent, child, kind) has its role
// overwritten; a different kind for the same pair is stored separately.
func (g *Guard) LinkParentChild(ctx context.Context, req LinkRequest, actorID string) (*model.ParentChildEdge, error) {
	if err := validateLink(req); err != nil {
		return nil, err
	}

	var saved *model.ParentChildEdge
	err := g.store.WithTx(ctx, func(tx EdgeTx) error {
		for _, id := range []string{req.ParentID, req.ChildID} {
			exists, err := tx.PersonExists(ctx, id)
			if err != nil {
				return fmt.Errorf("check person %s: %w", id, err)
			}
			if !exists {
				return fmt.Errorf("%w: %s", ErrPersonNotFound, id)
			}
		}

		// The child must not already be an ancestor of the proposed parent.
		cycle, err := IsAncestor(ctx, tx.ParentsOf, req.ParentID, req.ChildID)
		if err != nil {
			return fmt.Errorf("cycle check: %w", err)
		}
		if cycle {
			return ErrCycleDetected
		}

		saved, err = tx.UpsertEdge(ctx, model.ParentChildEdge{
			ParentID:    req.ParentID,
			ChildID:     req.ChildID,
			Role:        req.Role,
			Kind:        req.Kind,
			CreatedByID: actorID,
		})
		if err != nil {
			return fmt.Errorf("upsert edge: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	g.invalidate()
	g.logger.Info("parent-child edge saved",
		"edge_id", saved.ID,
		"parent_id", saved.ParentID,
		"child_id", saved.ChildID,
		"role", saved.Role,
		"kind", saved.Kind,
		"actor_id", actorID,
	)
	return saved, nil
}

// UnlinkRequest selects the edges to remove. Either EdgeID or the
// (ParentID, ChildID) pair is required. Without Kind every kind recorded for
// the pair is removed.
type UnlinkRequest struct {
	EdgeID   string
	ParentID string
	ChildID  string
	Kind     model.EdgeKind
}

// UnlinkParentChild soft-deletes the matching edges and returns how many
// were removed. Nothing matched is ErrEdgeNotFound.
func (g *Guard) UnlinkParentChild(ctx context.Context, req UnlinkRequest, actorID string) (int, error) {
	sel := EdgeSelector{EdgeID: req.EdgeID, ParentID: req.ParentID, ChildID: req.ChildID, Kind: req.Kind}
	if sel.EdgeID == "" && (sel.ParentID == "" || sel.ChildID == "") {
		return 0, NewValidationError("edge", "edge id or parent_id and child_id are required")
	}
	if sel.Kind != "" && !sel.Kind.IsValid() {
		return 0, NewValidationError("kind", fmt.Sprintf("unknown kind %q", sel.Kind))
	}

	var removed int
	err := g.store.WithTx(ctx, func(tx EdgeTx) error {
		n, err := tx.DeleteEdges(ctx, sel)
		if err != nil {
			return fmt.Errorf("delete edges: %w", err)
		}
		if n == 0 {
			return ErrEdgeNotFound
		}
		removed = n
		return nil
	})
	if err != nil {
		return 0, err
	}

	g.invalidate()
	g.logger.Info("parent-child edges removed",
		"edge_id", req.EdgeID,
		"parent_id", req.ParentID,
		"child_id", req.ChildID,
		"kind", req.Kind,
		"removed", removed,
		"actor_id", actorID,
	)
	return removed, nil
}

func (g *Guard) invalidate() {
	if g.invalidator != nil {
		g.invalidator.Invalidate()
	}
}
