package kinship

import (
	"fmt"
	"strings"

	"github.com/mtlprog/whanau/internal/model"
	"github.com/samber/lo"
)

// ViewKind filters which edge kinds a tree view shows.
type ViewKind string

const (
	ViewAll        ViewKind = "ALL"
	ViewBiological ViewKind = "BIOLOGICAL"
	ViewWhangai    ViewKind = "WHANGAI"
)

// ParseViewKind accepts any case; empty means ViewAll.
func ParseViewKind(s string) (ViewKind, error) {
	switch v := ViewKind(strings.ToUpper(strings.TrimSpace(s))); v {
	case "":
		return ViewAll, nil
	case ViewAll, ViewBiological, ViewWhangai:
		return v, nil
	default:
		return "", NewValidationError("view", fmt.Sprintf("unknown view %q (valid: ALL, BIOLOGICAL, WHANGAI)", s))
	}
}

type groupKey struct {
	childID string
	role    model.Role
}

// SelectEdgesForView keeps at most one edge per (child, role) group.
// BIOLOGICAL keeps the biological edge and drops groups without one; WHANGAI
// prefers the whāngai edge and falls back to biological; ALL returns edges
// unchanged. The result preserves input order.
func SelectEdgesForView(edges []model.ParentChildEdge, view ViewKind) []model.ParentChildEdge {
	if view == ViewAll || view == "" {
		return edges
	}

	chosen := make(map[groupKey]int)
	for i, e := range edges {
		key := groupKey{childID: e.ChildID, role: e.Role}
		prev, seen := chosen[key]
		switch view {
		case ViewBiological:
			if e.Kind == model.KindBiological && !seen {
				chosen[key] = i
			}
		case ViewWhangai:
			if !seen || (edges[prev].Kind != model.KindWhangai && e.Kind == model.KindWhangai) {
				chosen[key] = i
			}
		}
	}

	keep := make(map[int]bool, len(chosen))
	for _, i := range chosen {
		keep[i] = true
	}
	return lo.Filter(edges, func(_ model.ParentChildEdge, i int) bool { return keep[i] })
}

// LineWhich selects the parent followed by AscendLine.
type LineWhich string

const (
	LineMother LineWhich = "MOTHER"
	LineFather LineWhich = "FATHER"
	LineAny    LineWhich = "ANY"
)

// LineResult is the subgraph traversed by a line walk.
type LineResult struct {
	Nodes []string // visited people, start first
	Edges []string // directed pair keys, see model.PairKey
}

func indexParents(edges []model.ParentChildEdge) map[string][]model.ParentChildEdge {
	return lo.GroupBy(edges, func(e model.ParentChildEdge) string { return e.ChildID })
}

// pickParent chooses the parent to follow. Among edges of the same role a
// biological edge wins over a whāngai one.
func pickParent(candidates []model.ParentChildEdge, which LineWhich) (model.ParentChildEdge, bool) {
	byRole := func(role model.Role) (model.ParentChildEdge, bool) {
		if e, ok := lo.Find(candidates, func(e model.ParentChildEdge) bool {
			return e.Role == role && !isWhangai(e.Kind)
		}); ok {
			return e, true
		}
		return lo.Find(candidates, func(e model.ParentChildEdge) bool { return e.Role == role })
	}
	switch which {
	case LineMother:
		return byRole(model.RoleMother)
	case LineFather:
		return byRole(model.RoleFather)
	default:
		if e, ok := byRole(model.RoleMother); ok {
			return e, true
		}
		if e, ok := byRole(model.RoleFather); ok {
			return e, true
		}
		if e, ok := lo.Find(candidates, func(e model.ParentChildEdge) bool { return !isWhangai(e.Kind) }); ok {
			return e, true
		}
		return lo.First(candidates)
	}
}

// AscendLine walks exactly one parent per generation from start. MOTHER and
// FATHER follow only edges with that role and stop when absent; ANY prefers
// MOTHER, then FATHER, then any other parent. maxDepth <= 0 uses DefaultMaxDepth.
func AscendLine(edges []model.ParentChildEdge, start string, which LineWhich, maxDepth int) LineResult {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	parents := indexParents(edges)

	result := LineResult{Nodes: []string{start}}
	visited := map[string]bool{start: true}
	current := start
	for range maxDepth {
		e, ok := pickParent(parents[current], which)
		if !ok || visited[e.ParentID] {
			break
		}
		visited[e.ParentID] = true
		result.Nodes = append(result.Nodes, e.ParentID)
		result.Edges = append(result.Edges, e.PairKey())
		current = e.ParentID
	}
	return result
}

// LineMode selects an ancestors-only sub-view.
type LineMode string

const (
	LineMaternal LineMode = "MATERNAL"
	LinePaternal LineMode = "PATERNAL"
	LineBoth     LineMode = "BOTH"
	// LineEither is a single line preferring the mother, then the father,
	// then any other parent at each generation.
	LineEither LineMode = "ANY"
)

// ParseLineMode accepts any case; empty means LineBoth. MOTHER and FATHER are
// accepted as aliases, and EITHER as an alias of ANY.
func ParseLineMode(s string) (LineMode, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", string(LineBoth):
		return LineBoth, nil
	case string(LineEither), "EITHER":
		return LineEither, nil
	case string(LineMaternal), string(LineMother):
		return LineMaternal, nil
	case string(LinePaternal), string(LineFather):
		return LinePaternal, nil
	default:
		return "", NewValidationError("which", fmt.Sprintf("unknown line %q (valid: MATERNAL, PATERNAL, BOTH, ANY)", s))
	}
}

// LineView builds the maternal line, the paternal line, their union, or the
// single ANY line.
func LineView(edges []model.ParentChildEdge, start string, mode LineMode, maxDepth int) LineResult {
	switch mode {
	case LineEither:
		return AscendLine(edges, start, LineAny, maxDepth)
	case LineMaternal:
		return AscendLine(edges, start, LineMother, maxDepth)
	case LinePaternal:
		return AscendLine(edges, start, LineFather, maxDepth)
	default:
		mother := AscendLine(edges, start, LineMother, maxDepth)
		father := AscendLine(edges, start, LineFather, maxDepth)
		return LineResult{
			Nodes: lo.Uniq(append(mother.Nodes, father.Nodes...)),
			Edges: lo.Uniq(append(mother.Edges, father.Edges...)),
		}
	}
}

// Lineage collects every ancestor and descendant of personID within maxDepth
// generations in each direction, with the traversed pair keys. Used to
// highlight a person's lines in a full tree.
func Lineage(edges []model.ParentChildEdge, personID string, maxDepth int) LineResult {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	parents := indexParents(edges)
	children := lo.GroupBy(edges, func(e model.ParentChildEdge) string { return e.ParentID })

	result := LineResult{Nodes: []string{personID}}
	seenNodes := map[string]bool{personID: true}
	seenEdges := make(map[string]bool)

	walk := func(next func(id string) []model.ParentChildEdge, other func(e model.ParentChildEdge) string) {
		visited := map[string]bool{personID: true}
		frontier := []string{personID}
		for depth := 0; depth < maxDepth && len(frontier) > 0; depth++ {
			var upcoming []string
			for _, id := range frontier {
				for _, e := range next(id) {
					key := e.PairKey()
					if !seenEdges[key] {
						seenEdges[key] = true
						result.Edges = append(result.Edges, key)
					}
					o := other(e)
					if visited[o] {
						continue
					}
					visited[o] = true
					if !seenNodes[o] {
						seenNodes[o] = true
						result.Nodes = append(result.Nodes, o)
					}
					upcoming = append(upcoming, o)
				}
			}
			frontier = upcoming
		}
	}

	walk(func(id string) []model.ParentChildEdge { return parents[id] },
		func(e model.ParentChildEdge) string { return e.ParentID })
	walk(func(id string) []model.ParentChildEdge { return children[id] },
		func(e model.ParentChildEdge) string { return e.ChildID })

	return result
}
