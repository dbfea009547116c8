package kinship

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// fetchConcurrency bounds parallel ParentsOf calls within one BFS level.
const fetchConcurrency = 8

// Ancestor is an entry of an AncestorMap.
type Ancestor struct {
	Distance int  // generations above the start person, >= 1
	Whangai  bool // any edge on the discovered path is WHANGAI
}

// AncestorMap maps ancestor id to its distance and whāngai flag.
type AncestorMap map[string]Ancestor

// AncestorsDepthMap walks upward from personID breadth-first and returns every
// strict ancestor within maxDepth generations. maxDepth <= 0 uses DefaultMaxDepth.
//
// Each level's parents are fetched concurrently, then distances are assigned
// in frontier order so the first (minimum) distance always wins. When an
// ancestor is reached at the same level by several paths, a non-whāngai path
// is preferred.
func AncestorsDepthMap(ctx context.Context, r Reader, personID string, maxDepth int) (AncestorMap, error) {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	result := make(AncestorMap)
	visited := map[string]bool{personID: true}

	type node struct {
		id      string
		whangai bool
	}
	frontier := []node{{id: personID}}

	for depth := 1; depth <= maxDepth && len(frontier) > 0; depth++ {
		parents := make([][]ParentLink, len(frontier))

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(fetchConcurrency)
		for i, n := range frontier {
			g.Go(func() error {
				links, err := r.ParentsOf(gctx, n.id)
				if err != nil {
					return fmt.Errorf("parents of %s: %w", n.id, err)
				}
				parents[i] = links
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}

		level := make(map[string]bool)
		var next []node
		for i, n := range frontier {
			for _, link := range parents[i] {
				if visited[link.ParentID] && !level[link.ParentID] {
					continue
				}
				whangai := n.whangai || isWhangai(link.Kind)
				if level[link.ParentID] {
					// Same level, second path: keep the non-whāngai one.
					if !whangai && result[link.ParentID].Whangai {
						result[link.ParentID] = Ancestor{Distance: depth, Whangai: false}
						for j := range next {
							if next[j].id == link.ParentID {
								next[j].whangai = false
							}
						}
					}
					continue
				}
				visited[link.ParentID] = true
				level[link.ParentID] = true
				result[link.ParentID] = Ancestor{Distance: depth, Whangai: whangai}
				next = append(next, node{id: link.ParentID, whangai: whangai})
			}
		}
		frontier = next
	}

	return result, nil
}

// IsAncestor reports whether ancestorID is reachable upward from personID,
// without a depth bound. Used by the guard, which must fail closed on deep data.
func IsAncestor(ctx context.Context, parentsOf func(context.Context, string) ([]ParentLink, error), personID, ancestorID string) (bool, error) {
	visited := map[string]bool{personID: true}
	queue := []string{personID}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		links, err := parentsOf(ctx, current)
		if err != nil {
			return false, fmt.Errorf("parents of %s: %w", current, err)
		}
		for _, link := range links {
			if link.ParentID == ancestorID {
				return true, nil
			}
			if visited[link.ParentID] {
				continue
			}
			visited[link.ParentID] = true
			queue = append(queue, link.ParentID)
		}
	}
	return false, nil
}
