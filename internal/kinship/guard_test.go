package kinship

import (
	"context"
	"testing"

	"github.com/mtlprog/whanau/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGuard(t *testing.T, store EdgeStore, opts ...GuardOption) *Guard {
	t.Helper()
	g, err := NewGuard(store, opts...)
	require.NoError(t, err)
	return g
}

func chainGraph() *MemoryGraph {
	// a -> b -> c
	return NewMemoryGraph(
		[]model.Person{person("a", model.GenderFemale), person("b", model.GenderMale), person("c", model.GenderFemale)},
		[]model.ParentChildEdge{
			bio("a", "b", model.RoleMother),
			bio("b", "c", model.RoleFather),
		},
	)
}

func TestNewGuard(t *testing.T) {
	g, err := NewGuard(nil)
	assert.Nil(t, g)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "edge store is required")
}

func TestGuard_LinkParentChild(t *testing.T) {
	ctx := context.Background()

	t.Run("self link is rejected", func(t *testing.T) {
		guard := newTestGuard(t, chainGraph())

		_, err := guard.LinkParentChild(ctx, LinkRequest{ParentID: "a", ChildID: "a", Role: model.RoleMother, Kind: model.KindBiological}, "u1")
		assert.ErrorIs(t, err, ErrSelfLink)
	})

	t.Run("cycle is rejected", func(t *testing.T) {
		g := chainGraph()
		guard := newTestGuard(t, g)

		_, err := guard.LinkParentChild(ctx, LinkRequest{ParentID: "c", ChildID: "a", Role: model.RoleMother, Kind: model.KindBiological}, "u1")
		assert.ErrorIs(t, err, ErrCycleDetected)

		edges, err := g.ListEdges(ctx)
		require.NoError(t, err)
		assert.Len(t, edges, 2)
	})

	t.Run("whangai edge cannot close a cycle either", func(t *testing.T) {
		guard := newTestGuard(t, chainGraph())

		_, err := guard.LinkParentChild(ctx, LinkRequest{ParentID: "b", ChildID: "a", Role: model.RoleParent, Kind: model.KindWhangai}, "u1")
		assert.ErrorIs(t, err, ErrCycleDetected)
	})

	t.Run("missing person fails closed", func(t *testing.T) {
		guard := newTestGuard(t, chainGraph())

		_, err := guard.LinkParentChild(ctx, LinkRequest{ParentID: "ghost", ChildID: "c", Role: model.RoleParent, Kind: model.KindBiological}, "u1")
		assert.ErrorIs(t, err, ErrPersonNotFound)
	})

	t.Run("soft-deleted person fails closed", func(t *testing.T) {
		g := chainGraph()
		require.NoError(t, g.SoftDeletePerson("a"))
		guard := newTestGuard(t, g)

		_, err := guard.LinkParentChild(ctx, LinkRequest{ParentID: "a", ChildID: "c", Role: model.RoleMother, Kind: model.KindWhangai}, "u1")
		assert.ErrorIs(t, err, ErrPersonNotFound)
	})

	t.Run("invalid role and kind are validation errors", func(t *testing.T) {
		guard := newTestGuard(t, chainGraph())

		_, err := guard.LinkParentChild(ctx, LinkRequest{ParentID: "a", ChildID: "c", Role: "AUNTIE", Kind: model.KindBiological}, "u1")
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "role", verr.Field)

		_, err = guard.LinkParentChild(ctx, LinkRequest{ParentID: "a", ChildID: "c", Role: model.RoleMother, Kind: "FOSTER"}, "u1")
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "kind", verr.Field)
	})

	t.Run("same kind upsert overwrites role", func(t *testing.T) {
		g := chainGraph()
		guard := newTestGuard(t, g)

		edge, err := guard.LinkParentChild(ctx, LinkRequest{ParentID: "a", ChildID: "b", Role: model.RoleParent, Kind: model.KindBiological}, "u1")
		require.NoError(t, err)
		assert.Equal(t, model.RoleParent, edge.Role)

		edges, err := g.ListEdges(ctx)
		require.NoError(t, err)
		assert.Len(t, edges, 2)
		assert.Equal(t, model.RoleParent, edges[0].Role)
	})

	t.Run("different kind is a separate edge", func(t *testing.T) {
		g := chainGraph()
		guard := newTestGuard(t, g)

		edge, err := guard.LinkParentChild(ctx, LinkRequest{ParentID: "a", ChildID: "b", Role: model.RoleMother, Kind: model.KindWhangai}, "u1")
		require.NoError(t, err)
		assert.NotEmpty(t, edge.ID)
		assert.Equal(t, "u1", edge.CreatedByID)

		edges, err := g.ListEdges(ctx)
		require.NoError(t, err)
		assert.Len(t, edges, 3)
	})

	t.Run("success invalidates the ancestor cache", func(t *testing.T) {
		g := chainGraph()
		cache := NewAncestorCache(g)
		guard := newTestGuard(t, g, WithInvalidator(cache))

		g.AddPerson(person("d", model.GenderMale))
		before, err := cache.Get(ctx, "d", 0)
		require.NoError(t, err)
		assert.Empty(t, before)

		_, err = guard.LinkParentChild(ctx, LinkRequest{ParentID: "c", ChildID: "d", Role: model.RoleMother, Kind: model.KindBiological}, "u1")
		require.NoError(t, err)
		assert.Equal(t, 0, cache.Len())

		after, err := cache.Get(ctx, "d", 0)
		require.NoError(t, err)
		assert.Equal(t, 3, len(after))
	})
}

func TestGuard_UnlinkParentChild(t *testing.T) {
	ctx := context.Background()

	withBothKinds := func(t *testing.T) (*MemoryGraph, *Guard) {
		g := chainGraph()
		guard := newTestGuard(t, g)
		_, err := guard.LinkParentChild(ctx, LinkRequest{ParentID: "a", ChildID: "b", Role: model.RoleMother, Kind: model.KindWhangai}, "u1")
		require.NoError(t, err)
		return g, guard
	}

	t.Run("pair without kind removes all kinds", func(t *testing.T) {
		g, guard := withBothKinds(t)

		n, err := guard.UnlinkParentChild(ctx, UnlinkRequest{ParentID: "a", ChildID: "b"}, "u1")
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		parents, err := g.ParentsOf(ctx, "b")
		require.NoError(t, err)
		assert.Empty(t, parents)
	})

	t.Run("pair with kind removes only that kind", func(t *testing.T) {
		g, guard := withBothKinds(t)

		n, err := guard.UnlinkParentChild(ctx, UnlinkRequest{ParentID: "a", ChildID: "b", Kind: model.KindWhangai}, "u1")
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		parents, err := g.ParentsOf(ctx, "b")
		require.NoError(t, err)
		require.Len(t, parents, 1)
		assert.Equal(t, model.KindBiological, parents[0].Kind)
	})

	t.Run("by edge id", func(t *testing.T) {
		g := chainGraph()
		guard := newTestGuard(t, g)
		edges, err := g.ListEdges(ctx)
		require.NoError(t, err)

		n, err := guard.UnlinkParentChild(ctx, UnlinkRequest{EdgeID: edges[1].ID}, "u1")
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		remaining, err := g.ListEdges(ctx)
		require.NoError(t, err)
		assert.Len(t, remaining, 1)
	})

	t.Run("no match is edge not found", func(t *testing.T) {
		guard := newTestGuard(t, chainGraph())

		_, err := guard.UnlinkParentChild(ctx, UnlinkRequest{ParentID: "a", ChildID: "c"}, "u1")
		assert.ErrorIs(t, err, ErrEdgeNotFound)
	})

	t.Run("missing selector is a validation error", func(t *testing.T) {
		guard := newTestGuard(t, chainGraph())

		_, err := guard.UnlinkParentChild(ctx, UnlinkRequest{ParentID: "a"}, "u1")
		var verr *ValidationError
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("removed edge can be re-added", func(t *testing.T) {
		g := chainGraph()
		guard := newTestGuard(t, g)

		_, err := guard.UnlinkParentChild(ctx, UnlinkRequest{ParentID: "b", ChildID: "c"}, "u1")
		require.NoError(t, err)
		// With b -> c gone, c -> a no longer closes a cycle.
		_, err = guard.LinkParentChild(ctx, LinkRequest{ParentID: "c", ChildID: "a", Role: model.RoleMother, Kind: model.KindBiological}, "u1")
		assert.NoError(t, err)
	})
}

func TestMemoryGraph_WithTxRollsBack(t *testing.T) {
	ctx := context.Background()
	g := chainGraph()

	err := g.WithTx(ctx, func(tx EdgeTx) error {
		if _, err := tx.DeleteEdges(ctx, EdgeSelector{ParentID: "a", ChildID: "b"}); err != nil {
			return err
		}
		return errBoom
	})
	assert.ErrorIs(t, err, errBoom)

	parents, err := g.ParentsOf(ctx, "b")
	require.NoError(t, err)
	assert.Len(t, parents, 1)
}
