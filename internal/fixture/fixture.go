// Package fixture loads a family from a TOML file into an in-memory graph.
//
//	[[person]]
//	id = "mere"
//	first_name = "Mere"
//	gender = "female"
//
//	[[edge]]
//	parent = "mere"
//	child = "aroha"
//	role = "mother"
//	kind = "whangai"   # optional, BIOLOGICAL by default
package fixture

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/BurntSushi/toml"
	"github.com/mtlprog/whanau/internal/kinship"
	"github.com/mtlprog/whanau/internal/model"
	"github.com/samber/lo"
)

// File mirrors the TOML document.
type File struct {
	People []PersonEntry `toml:"person"`
	Edges  []EdgeEntry   `toml:"edge"`
}

// PersonEntry is one [[person]] table.
type PersonEntry struct {
	ID          string `toml:"id"`
	FirstName   string `toml:"first_name"`
	LastName    string `toml:"last_name"`
	DisplayName string `toml:"display_name"`
	Gender      string `toml:"gender"`
	Notes       string `toml:"notes"`
}

// EdgeEntry is one [[edge]] table.
type EdgeEntry struct {
	Parent string `toml:"parent"`
	Child  string `toml:"child"`
	Role   string `toml:"role"`
	Kind   string `toml:"kind"`
}

const fixtureActor = "fixture"

// Load decodes path and builds the graph.
func Load(ctx context.Context, path string) (*kinship.MemoryGraph, error) {
	var f File
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("fixture %q not found: %w", path, err)
		}
		return nil, fmt.Errorf("decode fixture %q: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("fixture %q: unknown keys %v", path, undecoded)
	}
	return Build(ctx, f)
}

// Build validates f and inserts its edges through a Guard, so a fixture
// obeys the same rules as the API: no duplicate ids, no self links, no
// cycles, and MOTHER/FATHER only on matching genders.
func Build(ctx context.Context, f File) (*kinship.MemoryGraph, error) {
	if dup := lo.FindDuplicatesBy(f.People, func(p PersonEntry) string { return p.ID }); len(dup) > 0 {
		return nil, fmt.Errorf("duplicate person id %q", dup[0].ID)
	}

	people := make([]model.Person, 0, len(f.People))
	for i, p := range f.People {
		if p.ID == "" {
			return nil, fmt.Errorf("person #%d: id is required", i+1)
		}
		people = append(people, model.Person{
			ID:          p.ID,
			FirstName:   p.FirstName,
			LastName:    p.LastName,
			DisplayName: p.DisplayName,
			Gender:      model.ParseGender(p.Gender),
			Notes:       p.Notes,
			CreatedByID: fixtureActor,
		})
	}
	genders := lo.SliceToMap(people, func(p model.Person) (string, model.Gender) { return p.ID, p.Gender })

	graph := kinship.NewMemoryGraph(people, nil)
	guard, err := kinship.NewGuard(graph, kinship.WithGuardLogger(slog.New(slog.DiscardHandler)))
	if err != nil {
		return nil, err
	}

	for i, e := range f.Edges {
		role := model.ParseRole(e.Role)
		kind := model.ParseEdgeKind(e.Kind)
		if kind == "" {
			kind = model.KindBiological
		}
		if g, ok := genders[e.Parent]; ok && role.IsValid() {
			if err := model.ValidateRoleForGender(role, g); err != nil {
				return nil, fmt.Errorf("edge #%d (%s>%s): %w", i+1, e.Parent, e.Child, err)
			}
		}
		_, err := guard.LinkParentChild(ctx, kinship.LinkRequest{
			ParentID: e.Parent,
			ChildID:  e.Child,
			Role:     role,
			Kind:     kind,
		}, fixtureActor)
		if err != nil {
			return nil, fmt.Errorf("edge #%d (%s>%s): %w", i+1, e.Parent, e.Child, err)
		}
	}
	return graph, nil
}
