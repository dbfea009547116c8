package kinship

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mtlprog/whanau/internal/model"
	"github.com/samber/lo"
)

// MemoryGraph is an in-memory family graph keyed by person id.
// It implements Reader and EdgeStore and is safe for concurrent use.
type MemoryGraph struct {
	mu       sync.RWMutex
	people   map[string]*model.Person
	edges    []*model.ParentChildEdge // insertion order, deleted edges included
	parents  map[string][]*model.ParentChildEdge
	children map[string][]*model.ParentChildEdge
	now      func() time.Time

	observers []PersonObserver
}

// NewMemoryGraph builds a graph from people and edges. Soft-deleted rows are
// kept but never returned by queries.
func NewMemoryGraph(people []model.Person, edges []model.ParentChildEdge) *MemoryGraph {
	g := &MemoryGraph{
		people: make(map[string]*model.Person, len(people)),
		now:    time.Now,
	}
	for i := range people {
		p := people[i]
		g.people[p.ID] = &p
	}
	for i := range edges {
		e := edges[i]
		if e.ID == "" {
			e.ID = uuid.NewString()
		}
		g.edges = append(g.edges, &e)
	}
	g.reindex()
	return g
}

// reindex rebuilds the adjacency maps from active edges. Callers hold mu.
func (g *MemoryGraph) reindex() {
	g.parents = make(map[string][]*model.ParentChildEdge)
	g.children = make(map[string][]*model.ParentChildEdge)
	for _, e := range g.edges {
		if !g.isActiveEdge(e) {
			continue
		}
		g.parents[e.ChildID] = append(g.parents[e.ChildID], e)
		g.children[e.ParentID] = append(g.children[e.ParentID], e)
	}
}

func (g *MemoryGraph) isActivePerson(id string) bool {
	p, ok := g.people[id]
	return ok && !p.IsDeleted()
}

func (g *MemoryGraph) isActiveEdge(e *model.ParentChildEdge) bool {
	return !e.IsDeleted() && g.isActivePerson(e.ParentID) && g.isActivePerson(e.ChildID)
}

// Observe registers o for person changes made through AddPerson and
// SoftDeletePerson.
func (g *MemoryGraph) Observe(o PersonObserver) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.observers = append(g.observers, o)
}

func (g *MemoryGraph) notify(personID string, removed bool) {
	g.mu.RLock()
	observers := slices.Clone(g.observers)
	g.mu.RUnlock()
	for _, o := range observers {
		o.PersonChanged(personID, removed)
	}
}

// AddPerson inserts or replaces a person.
func (g *MemoryGraph) AddPerson(p model.Person) {
	g.mu.Lock()
	g.people[p.ID] = &p
	g.reindex()
	g.mu.Unlock()

	g.notify(p.ID, p.IsDeleted())
}

// SoftDeletePerson marks a person deleted. Their edges disappear from queries.
func (g *MemoryGraph) SoftDeletePerson(id string) error {
	g.mu.Lock()
	p, ok := g.people[id]
	if !ok || p.IsDeleted() {
		g.mu.Unlock()
		return ErrPersonNotFound
	}
	now := g.now()
	p.DeletedAt = &now
	g.reindex()
	g.mu.Unlock()

	g.notify(id, true)
	return nil
}

// GetPerson returns an active person or ErrPersonNotFound.
func (g *MemoryGraph) GetPerson(_ context.Context, id string) (*model.Person, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.isActivePerson(id) {
		return nil, ErrPersonNotFound
	}
	p := *g.people[id]
	return &p, nil
}

// ListPeople returns all active people.
func (g *MemoryGraph) ListPeople(_ context.Context) ([]model.Person, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	people := make([]model.Person, 0, len(g.people))
	for _, p := range g.people {
		if !p.IsDeleted() {
			people = append(people, *p)
		}
	}
	return people, nil
}

// ListEdges returns all active edges in insertion order.
func (g *MemoryGraph) ListEdges(_ context.Context) ([]model.ParentChildEdge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	active := lo.Filter(g.edges, func(e *model.ParentChildEdge, _ int) bool { return g.isActiveEdge(e) })
	return lo.Map(active, func(e *model.ParentChildEdge, _ int) model.ParentChildEdge { return *e }), nil
}

// GetEdge returns an active edge or ErrEdgeNotFound.
func (g *MemoryGraph) GetEdge(_ context.Context, id string) (*model.ParentChildEdge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	e, ok := lo.Find(g.edges, func(e *model.ParentChildEdge) bool { return e.ID == id && g.isActiveEdge(e) })
	if !ok {
		return nil, ErrEdgeNotFound
	}
	out := *e
	return &out, nil
}

// ParentsOf implements Reader.
func (g *MemoryGraph) ParentsOf(_ context.Context, childID string) ([]ParentLink, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.parentsOf(childID), nil
}

func (g *MemoryGraph) parentsOf(childID string) []ParentLink {
	return lo.Map(g.parents[childID], func(e *model.ParentChildEdge, _ int) ParentLink {
		return ParentLink{ParentID: e.ParentID, Role: e.Role, Kind: e.Kind}
	})
}

// ChildrenOf implements Reader.
func (g *MemoryGraph) ChildrenOf(_ context.Context, parentID string) ([]ChildLink, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return lo.Map(g.children[parentID], func(e *model.ParentChildEdge, _ int) ChildLink {
		return ChildLink{ChildID: e.ChildID, Role: e.Role, Kind: e.Kind}
	}), nil
}

// CoParentsOf implements Reader.
func (g *MemoryGraph) CoParentsOf(_ context.Context, personID string) ([]CoParent, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	whangai := make(map[string]bool)
	var order []string
	for _, mine := range g.children[personID] {
		for _, other := range g.parents[mine.ChildID] {
			if other.ParentID == personID {
				continue
			}
			flag := isWhangai(mine.Kind) || isWhangai(other.Kind)
			if _, seen := whangai[other.ParentID]; !seen {
				order = append(order, other.ParentID)
			}
			whangai[other.ParentID] = whangai[other.ParentID] || flag
		}
	}

	return lo.Map(order, func(id string, _ int) CoParent {
		return CoParent{CoParentID: id, Whangai: whangai[id]}
	}), nil
}

// GenderOf implements Reader.
func (g *MemoryGraph) GenderOf(_ context.Context, personID string) (model.Gender, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.isActivePerson(personID) {
		return model.GenderUnknown, nil
	}
	return g.people[personID].Gender, nil
}

// WithTx implements EdgeStore. The write lock is held for the whole of fn,
// and edge changes are rolled back if fn fails.
func (g *MemoryGraph) WithTx(_ context.Context, fn func(tx EdgeTx) error) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	snapshot := lo.Map(g.edges, func(e *model.ParentChildEdge, _ int) model.ParentChildEdge { return *e })
	if err := fn(&memoryTx{g: g}); err != nil {
		g.edges = lo.Map(snapshot, func(e model.ParentChildEdge, _ int) *model.ParentChildEdge { return &e })
		g.reindex()
		return err
	}
	return nil
}

type memoryTx struct {
	g *MemoryGraph
}

func (tx *memoryTx) PersonExists(_ context.Context, personID string) (bool, error) {
	return tx.g.isActivePerson(personID), nil
}

func (tx *memoryTx) ParentsOf(_ context.Context, childID string) ([]ParentLink, error) {
	return tx.g.parentsOf(childID), nil
}

func (tx *memoryTx) UpsertEdge(_ context.Context, edge model.ParentChildEdge) (*model.ParentChildEdge, error) {
	g := tx.g
	existing, found := lo.Find(g.edges, func(e *model.ParentChildEdge) bool {
		return !e.IsDeleted() && e.ParentID == edge.ParentID && e.ChildID == edge.ChildID && e.Kind == edge.Kind
	})
	if found {
		existing.Role = edge.Role
		g.reindex()
		out := *existing
		return &out, nil
	}

	if edge.ID == "" {
		edge.ID = uuid.NewString()
	}
	if edge.CreatedAt.IsZero() {
		edge.CreatedAt = g.now()
	}
	g.edges = append(g.edges, &edge)
	g.reindex()
	out := edge
	return &out, nil
}

func (tx *memoryTx) DeleteEdges(_ context.Context, sel EdgeSelector) (int, error) {
	g := tx.g
	now := g.now()
	removed := 0
	for _, e := range g.edges {
		if e.IsDeleted() || !matchesSelector(e, sel) {
			continue
		}
		e.DeletedAt = &now
		removed++
	}
	if removed > 0 {
		g.reindex()
	}
	return removed, nil
}

func matchesSelector(e *model.ParentChildEdge, sel EdgeSelector) bool {
	if sel.EdgeID != "" {
		return e.ID == sel.EdgeID
	}
	if e.ParentID != sel.ParentID || e.ChildID != sel.ChildID {
		return false
	}
	return sel.Kind == "" || e.Kind == sel.Kind
}
