package family

import (
	"cmp"
	"context"
	"fmt"
	"html/template"
	"slices"

	"github.com/mtlprog/whanau/internal/kinship"
	"github.com/mtlprog/whanau/internal/model"
	"github.com/mtlprog/whanau/internal/notes"
	"github.com/samber/lo"
)

// PersonView is a person with rendered notes.
type PersonView struct {
	model.Person
	NotesHTML template.HTML
}

// Person returns a person with their notes rendered to sanitized HTML.
func (s *Service) Person(ctx context.Context, id string) (*PersonView, error) {
	p, err := s.people.GetPerson(ctx, id)
	if err != nil {
		return nil, err
	}
	return &PersonView{Person: *p, NotesHTML: notes.Render(p.Notes)}, nil
}

// Describe classifies how b is related to a. Both people must exist.
func (s *Service) Describe(ctx context.Context, a, b string) (kinship.Relationship, error) {
	for _, id := range []string{a, b} {
		if _, err := s.people.GetPerson(ctx, id); err != nil {
			return kinship.Relationship{}, err
		}
	}

	rel, err := s.classifier.Classify(ctx, a, b)
	if err != nil {
		return kinship.Relationship{}, fmt.Errorf("classify %s -> %s: %w", a, b, err)
	}
	return rel, nil
}

// AncestorEntry is one row of an ancestor listing.
type AncestorEntry struct {
	PersonID string
	Distance int
	Whangai  bool
}

// Ancestors lists the ancestors of id, nearest first, ties by id.
func (s *Service) Ancestors(ctx context.Context, id string) ([]AncestorEntry, error) {
	if _, err := s.people.GetPerson(ctx, id); err != nil {
		return nil, err
	}

	anc, err := s.classifier.Ancestors(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("map ancestors of %s: %w", id, err)
	}

	entries := lo.MapToSlice(anc, func(pid string, a kinship.Ancestor) AncestorEntry {
		return AncestorEntry{PersonID: pid, Distance: a.Distance, Whangai: a.Whangai}
	})
	slices.SortFunc(entries, func(x, y AncestorEntry) int {
		return cmp.Or(cmp.Compare(x.Distance, y.Distance), cmp.Compare(x.PersonID, y.PersonID))
	})
	return entries, nil
}

// TreeView is every active person with the edges selected for a view.
type TreeView struct {
	View   kinship.ViewKind
	People []model.Person
	Edges  []model.ParentChildEdge
}

// Tree returns the whole family filtered to view.
func (s *Service) Tree(ctx context.Context, view kinship.ViewKind) (*TreeView, error) {
	people, err := s.people.ListPeople(ctx)
	if err != nil {
		return nil, fmt.Errorf("list people: %w", err)
	}
	edges, err := s.edges.ListEdges(ctx)
	if err != nil {
		return nil, fmt.Errorf("list edges: %w", err)
	}

	slices.SortFunc(people, func(x, y model.Person) int { return cmp.Compare(x.ID, y.ID) })
	return &TreeView{
		View:   view,
		People: people,
		Edges:  kinship.SelectEdgesForView(edges, view),
	}, nil
}

// Line walks the lines of id selected by mode over the edges of view.
func (s *Service) Line(ctx context.Context, id string, mode kinship.LineMode, view kinship.ViewKind, depth int) (kinship.LineResult, error) {
	edges, err := s.edgesFor(ctx, id, view)
	if err != nil {
		return kinship.LineResult{}, err
	}
	return kinship.LineView(edges, id, mode, s.depth(depth)), nil
}

// Lineage returns every ancestor and descendant of id within depth, over
// the edges of view.
func (s *Service) Lineage(ctx context.Context, id string, view kinship.ViewKind, depth int) (kinship.LineResult, error) {
	edges, err := s.edgesFor(ctx, id, view)
	if err != nil {
		return kinship.LineResult{}, err
	}
	return kinship.Lineage(edges, id, s.depth(depth)), nil
}

func (s *Service) edgesFor(ctx context.Context, id string, view kinship.ViewKind) ([]model.ParentChildEdge, error) {
	if _, err := s.people.GetPerson(ctx, id); err != nil {
		return nil, err
	}
	edges, err := s.edges.ListEdges(ctx)
	if err != nil {
		return nil, fmt.Errorf("list edges: %w", err)
	}
	return kinship.SelectEdgesForView(edges, view), nil
}

func (s *Service) depth(requested int) int {
	if requested <= 0 {
		return s.MaxDepth()
	}
	return requested
}
