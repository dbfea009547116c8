package kinship

import (
	"context"
	"testing"

	"github.com/mtlprog/whanau/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAncestorsDepthMap(t *testing.T) {
	ctx := context.Background()

	t.Run("excludes the start person and records distances", func(t *testing.T) {
		g := whanauGraph()

		anc, err := AncestorsDepthMap(ctx, g, "gg2", 0)
		require.NoError(t, err)

		assert.NotContains(t, anc, "gg2")
		assert.Equal(t, Ancestor{Distance: 1}, anc["g2"])
		assert.Equal(t, Ancestor{Distance: 1}, anc["zoe"])
		assert.Equal(t, Ancestor{Distance: 2}, anc["tama"])
		assert.Equal(t, Ancestor{Distance: 2}, anc["yvonne"])
		assert.Equal(t, Ancestor{Distance: 3}, anc["mere"])
		assert.Equal(t, Ancestor{Distance: 3}, anc["hemi"])
		assert.Len(t, anc, 6)
	})

	t.Run("person without parents has empty map", func(t *testing.T) {
		g := whanauGraph()

		anc, err := AncestorsDepthMap(ctx, g, "mere", 0)
		require.NoError(t, err)
		assert.Empty(t, anc)
	})

	t.Run("distance is the minimum hop count", func(t *testing.T) {
		// root is both a grandparent (via mid) and a direct parent of leaf.
		g := NewMemoryGraph(
			[]model.Person{person("root", model.GenderMale), person("mid", model.GenderFemale), person("leaf", model.GenderFemale)},
			[]model.ParentChildEdge{
				bio("mid", "leaf", model.RoleMother),
				bio("root", "mid", model.RoleFather),
				bio("root", "leaf", model.RoleFather),
			},
		)

		anc, err := AncestorsDepthMap(ctx, g, "leaf", 0)
		require.NoError(t, err)
		assert.Equal(t, 1, anc["root"].Distance)
		assert.Equal(t, 1, anc["mid"].Distance)
	})

	t.Run("whangai flag is ORed along the path", func(t *testing.T) {
		g := NewMemoryGraph(
			[]model.Person{person("kui", model.GenderFemale), person("mum", model.GenderFemale), person("kid", model.GenderMale)},
			[]model.ParentChildEdge{
				whangai("mum", "kid", model.RoleMother),
				bio("kui", "mum", model.RoleMother),
			},
		)

		anc, err := AncestorsDepthMap(ctx, g, "kid", 0)
		require.NoError(t, err)
		assert.True(t, anc["mum"].Whangai)
		assert.True(t, anc["kui"].Whangai)
	})

	t.Run("same-level duplicate path prefers non-whangai", func(t *testing.T) {
		g := NewMemoryGraph(
			[]model.Person{person("mum", model.GenderFemale), person("kid", model.GenderMale)},
			[]model.ParentChildEdge{
				whangai("mum", "kid", model.RoleMother),
				bio("mum", "kid", model.RoleMother),
			},
		)

		anc, err := AncestorsDepthMap(ctx, g, "kid", 0)
		require.NoError(t, err)
		assert.Equal(t, Ancestor{Distance: 1, Whangai: false}, anc["mum"])
	})

	t.Run("max depth truncates silently", func(t *testing.T) {
		g := whanauGraph()

		anc, err := AncestorsDepthMap(ctx, g, "gg2", 2)
		require.NoError(t, err)
		assert.Contains(t, anc, "tama")
		assert.NotContains(t, anc, "mere")
	})

	t.Run("cyclic legacy data terminates", func(t *testing.T) {
		g := NewMemoryGraph(
			[]model.Person{person("a", model.GenderMale), person("b", model.GenderMale)},
			[]model.ParentChildEdge{
				bio("a", "b", model.RoleFather),
				bio("b", "a", model.RoleFather),
			},
		)

		anc, err := AncestorsDepthMap(ctx, g, "a", 0)
		require.NoError(t, err)
		assert.Equal(t, AncestorMap{"b": {Distance: 1}}, anc)
	})

	t.Run("soft-deleted ancestors are skipped", func(t *testing.T) {
		g := whanauGraph()
		require.NoError(t, g.SoftDeletePerson("tama"))

		anc, err := AncestorsDepthMap(ctx, g, "g2", 0)
		require.NoError(t, err)
		assert.NotContains(t, anc, "tama")
		assert.NotContains(t, anc, "mere")
		assert.Contains(t, anc, "yvonne")
	})

	t.Run("reader error is returned", func(t *testing.T) {
		_, err := AncestorsDepthMap(ctx, failingReader{}, "x", 0)
		assert.ErrorIs(t, err, errBoom)
	})
}

func TestIsAncestor(t *testing.T) {
	ctx := context.Background()
	g := whanauGraph()

	tests := []struct {
		name     string
		person   string
		ancestor string
		want     bool
	}{
		{"direct parent", "g1", "aroha", true},
		{"great-grandparent", "gg2", "hemi", true},
		{"descendant is not ancestor", "mere", "g1", false},
		{"unrelated", "g1", "yvonne", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IsAncestor(ctx, g.ParentsOf, tt.person, tt.ancestor)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
