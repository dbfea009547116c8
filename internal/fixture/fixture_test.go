package fixture

import (
	"context"
	"testing"

	"github.com/mtlprog/whanau/internal/kinship"
	"github.com/mtlprog/whanau/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("builds graph from file", func(t *testing.T) {
		graph, err := Load(ctx, "testdata/family.toml")
		require.NoError(t, err)

		people, err := graph.ListPeople(ctx)
		require.NoError(t, err)
		assert.Len(t, people, 5)

		edges, err := graph.ListEdges(ctx)
		require.NoError(t, err)
		require.Len(t, edges, 5)
		assert.Equal(t, model.KindBiological, edges[0].Kind)
		assert.Equal(t, model.KindWhangai, edges[4].Kind)

		kahu, err := graph.GetPerson(ctx, "kahu")
		require.NoError(t, err)
		assert.Equal(t, model.GenderUnknown, kahu.Gender)
	})

	t.Run("labels come out of the loaded graph", func(t *testing.T) {
		graph, err := Load(ctx, "testdata/family.toml")
		require.NoError(t, err)
		classifier, err := kinship.NewClassifier(graph)
		require.NoError(t, err)

		label, err := classifier.DescribeRelationship(ctx, "aroha", "tama")
		require.NoError(t, err)
		assert.Equal(t, "brother", label)

		label, err = classifier.DescribeRelationship(ctx, "kahu", "mere")
		require.NoError(t, err)
		assert.Equal(t, "grandmother (whangai)", label)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(ctx, "testdata/nope.toml")
		assert.ErrorContains(t, err, "not found")
	})

	t.Run("unknown keys are rejected", func(t *testing.T) {
		_, err := Load(ctx, "testdata/unknown_key.toml")
		assert.ErrorContains(t, err, "unknown keys")
	})
}

func TestBuild(t *testing.T) {
	ctx := context.Background()
	people := []PersonEntry{
		{ID: "a", Gender: "female"},
		{ID: "b", Gender: "male"},
	}

	tests := []struct {
		name    string
		file    File
		wantErr error
		msg     string
	}{
		{
			name: "duplicate id",
			file: File{People: []PersonEntry{{ID: "a"}, {ID: "a"}}},
			msg:  `duplicate person id "a"`,
		},
		{
			name: "missing id",
			file: File{People: []PersonEntry{{FirstName: "Nobody"}}},
			msg:  "person #1: id is required",
		},
		{
			name: "role must match gender",
			file: File{People: people, Edges: []EdgeEntry{{Parent: "b", Child: "a", Role: "mother"}}},
			msg:  "edge #1 (b>a)",
		},
		{
			name:    "unknown person",
			file:    File{People: people, Edges: []EdgeEntry{{Parent: "a", Child: "zed", Role: "parent"}}},
			wantErr: kinship.ErrPersonNotFound,
		},
		{
			name: "cycle",
			file: File{People: people, Edges: []EdgeEntry{
				{Parent: "a", Child: "b", Role: "parent"},
				{Parent: "b", Child: "a", Role: "parent"},
			}},
			wantErr: kinship.ErrCycleDetected,
			msg:     "edge #2",
		},
		{
			name:    "self link",
			file:    File{People: people, Edges: []EdgeEntry{{Parent: "a", Child: "a", Role: "parent"}}},
			wantErr: kinship.ErrSelfLink,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			graph, err := Build(ctx, tt.file)
			require.Error(t, err)
			assert.Nil(t, graph)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.msg != "" {
				assert.ErrorContains(t, err, tt.msg)
			}
		})
	}
}
