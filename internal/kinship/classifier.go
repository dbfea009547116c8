package kinship

import (
	"context"
	"errors"
	"fmt"

	"github.com/mtlprog/whanau/internal/model"
	"github.com/samber/lo"
)

// RelationKind is the structural class of a relationship.
type RelationKind string

const (
	RelationSelf         RelationKind = "self"
	RelationAncestor     RelationKind = "ancestor"
	RelationDescendant   RelationKind = "descendant"
	RelationSibling      RelationKind = "sibling"
	RelationAuntUncle    RelationKind = "aunt_uncle"
	RelationNieceNephew  RelationKind = "niece_nephew"
	RelationCousin       RelationKind = "cousin"
	RelationCoParent     RelationKind = "co_parent"
	RelationSiblingInLaw RelationKind = "sibling_in_law"
	RelationParentInLaw  RelationKind = "parent_in_law"
	RelationChildInLaw   RelationKind = "child_in_law"
	RelationUnknown      RelationKind = "unknown"
)

// Relationship describes how B relates to A.
type Relationship struct {
	Kind        RelationKind
	Label       string
	Generations int // ancestor/descendant distance, or aunt/niece generations
	Degree      int // cousins only, 1 = first cousins
	Removed     int // cousins only
	Whangai     bool
}

// Classifier labels the relationship between two people.
type Classifier struct {
	reader   Reader
	maxDepth int
	cache    *AncestorCache
}

// ClassifierOption configures a Classifier.
type ClassifierOption func(*Classifier)

// WithMaxDepth bounds ancestor maps. Values <= 0 use DefaultMaxDepth.
func WithMaxDepth(depth int) ClassifierOption {
	return func(c *Classifier) {
		if depth > 0 {
			c.maxDepth = depth
		}
	}
}

// WithAncestorCache serves ancestor maps from cache.
func WithAncestorCache(cache *AncestorCache) ClassifierOption {
	return func(c *Classifier) {
		c.cache = cache
	}
}

// NewClassifier creates a classifier over reader.
func NewClassifier(reader Reader, opts ...ClassifierOption) (*Classifier, error) {
	if reader == nil {
		return nil, errors.New("graph reader is required")
	}
	c := &Classifier{
		reader:   reader,
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// MaxDepth returns the depth bound used for ancestor maps.
func (c *Classifier) MaxDepth() int {
	return c.maxDepth
}

// Ancestors returns the ancestor map of personID, using the cache if set.
func (c *Classifier) Ancestors(ctx context.Context, personID string) (AncestorMap, error) {
	if c.cache != nil {
		return c.cache.Get(ctx, personID, c.maxDepth)
	}
	return AncestorsDepthMap(ctx, c.reader, personID, c.maxDepth)
}

// DescribeRelationship returns the human-readable label of b relative to a.
func (c *Classifier) DescribeRelationship(ctx context.Context, a, b string) (string, error) {
	rel, err := c.Classify(ctx, a, b)
	if err != nil {
		return "", err
	}
	return rel.Label, nil
}

// Classify runs the ordered relationship tests; the first match wins.
// Errors come only from the Reader; unusual topologies fall back to
// RelationUnknown.
func (c *Classifier) Classify(ctx context.Context, a, b string) (Relationship, error) {
	if a == b {
		return Relationship{Kind: RelationSelf, Label: LabelSamePerson}, nil
	}

	ancA, err := c.Ancestors(ctx, a)
	if err != nil {
		return Relationship{}, fmt.Errorf("ancestors of %s: %w", a, err)
	}
	ancB, err := c.Ancestors(ctx, b)
	if err != nil {
		return Relationship{}, fmt.Errorf("ancestors of %s: %w", b, err)
	}
	gender, err := c.reader.GenderOf(ctx, b)
	if err != nil {
		return Relationship{}, fmt.Errorf("gender of %s: %w", b, err)
	}

	if anc, ok := ancA[b]; ok {
		return Relationship{
			Kind:        RelationAncestor,
			Label:       withWhangai(ancestorLabel(anc.Distance, gender), anc.Whangai),
			Generations: anc.Distance,
			Whangai:     anc.Whangai,
		}, nil
	}
	if anc, ok := ancB[a]; ok {
		return Relationship{
			Kind:        RelationDescendant,
			Label:       withWhangai(descendantLabel(anc.Distance, gender), anc.Whangai),
			Generations: anc.Distance,
			Whangai:     anc.Whangai,
		}, nil
	}

	parentsA, err := c.reader.ParentsOf(ctx, a)
	if err != nil {
		return Relationship{}, fmt.Errorf("parents of %s: %w", a, err)
	}
	parentsB, err := c.reader.ParentsOf(ctx, b)
	if err != nil {
		return Relationship{}, fmt.Errorf("parents of %s: %w", b, err)
	}

	if m := sharedParent(parentsA, parentsB); m.found {
		return siblingRelationship(gender, m.whangai), nil
	}

	if rel, ok, err := c.auntOrNiece(ctx, a, b, parentsA, parentsB, gender); err != nil || ok {
		return rel, err
	}

	if rel, ok := cousinRelationship(ancA, ancB, gender); ok {
		return rel, nil
	}

	coA, err := c.reader.CoParentsOf(ctx, a)
	if err != nil {
		return Relationship{}, fmt.Errorf("co-parents of %s: %w", a, err)
	}
	if co, ok := lo.Find(coA, func(cp CoParent) bool { return cp.CoParentID == b }); ok {
		return Relationship{
			Kind:    RelationCoParent,
			Label:   withWhangai(LabelCoParent, co.Whangai),
			Whangai: co.Whangai,
		}, nil
	}

	if rel, ok, err := c.inLaw(ctx, a, b, parentsA, parentsB, coA, gender); err != nil || ok {
		return rel, err
	}

	return Relationship{Kind: RelationUnknown, Label: LabelUnknown}, nil
}

func siblingRelationship(g model.Gender, whangai bool) Relationship {
	return Relationship{
		Kind:    RelationSibling,
		Label:   withWhangai(gendered(termSibling, g), whangai),
		Whangai: whangai,
	}
}

// match tracks whether a test matched, preferring non-whāngai evidence.
type match struct {
	found   bool
	whangai bool
}

func (m *match) offer(whangai bool) {
	if !m.found || (m.whangai && !whangai) {
		m.found = true
		m.whangai = whangai
	}
}

// parentFlags maps each parent id to whether the link is whāngai only.
// A parent recorded with both kinds counts as biological.
func parentFlags(links []ParentLink) map[string]bool {
	flags := make(map[string]bool, len(links))
	for _, l := range links {
		w, seen := flags[l.ParentID]
		flags[l.ParentID] = (w || !seen) && isWhangai(l.Kind)
	}
	return flags
}

// sharedParent reports whether the two parent lists have a parent in common.
// The link is whāngai when either connecting edge is WHANGAI.
func sharedParent(x, y []ParentLink) match {
	var m match
	fy := parentFlags(y)
	for id, wx := range parentFlags(x) {
		if wy, ok := fy[id]; ok {
			m.offer(wx || wy)
		}
	}
	return m
}

// auntOrNiece tests whether b is a sibling of one of a's parents, or one of
// b's parents is a sibling of a.
func (c *Classifier) auntOrNiece(ctx context.Context, a, b string, parentsA, parentsB []ParentLink, g model.Gender) (Relationship, bool, error) {
	var aunt match
	for pid, w := range parentFlags(parentsA) {
		if pid == b {
			continue
		}
		grand, err := c.reader.ParentsOf(ctx, pid)
		if err != nil {
			return Relationship{}, false, fmt.Errorf("parents of %s: %w", pid, err)
		}
		if m := sharedParent(grand, parentsB); m.found {
			aunt.offer(w || m.whangai)
		}
	}
	if aunt.found {
		return Relationship{
			Kind:        RelationAuntUncle,
			Label:       withWhangai(auntUncleLabel(1, g), aunt.whangai),
			Generations: 1,
			Whangai:     aunt.whangai,
		}, true, nil
	}

	var niece match
	for qid, w := range parentFlags(parentsB) {
		if qid == a {
			continue
		}
		grand, err := c.reader.ParentsOf(ctx, qid)
		if err != nil {
			return Relationship{}, false, fmt.Errorf("parents of %s: %w", qid, err)
		}
		if m := sharedParent(grand, parentsA); m.found {
			niece.offer(w || m.whangai)
		}
	}
	if niece.found {
		return Relationship{
			Kind:        RelationNieceNephew,
			Label:       withWhangai(nieceNephewLabel(1, g), niece.whangai),
			Generations: 1,
			Whangai:     niece.whangai,
		}, true, nil
	}

	return Relationship{}, false, nil
}

type commonAncestor struct {
	id      string
	m, n    int
	whangai bool
}

func (x commonAncestor) removed() int {
	if x.m > x.n {
		return x.m - x.n
	}
	return x.n - x.m
}

// closer orders common ancestors: smaller distance sum, then non-whāngai,
// then smaller removal, then id. The order is symmetric in (A, B).
func (x commonAncestor) closer(y commonAncestor) bool {
	if x.m+x.n != y.m+y.n {
		return x.m+x.n < y.m+y.n
	}
	if x.whangai != y.whangai {
		return !x.whangai
	}
	if x.removed() != y.removed() {
		return x.removed() < y.removed()
	}
	return x.id < y.id
}

// nearestCommonAncestor returns the best common ancestor of two maps.
func nearestCommonAncestor(ancA, ancB AncestorMap) (commonAncestor, bool) {
	var best commonAncestor
	found := false
	for id, x := range ancA {
		y, ok := ancB[id]
		if !ok {
			continue
		}
		cand := commonAncestor{id: id, m: x.Distance, n: y.Distance, whangai: x.Whangai || y.Whangai}
		if !found || cand.closer(best) {
			best = cand
			found = true
		}
	}
	return best, found
}

// cousinRelationship derives cousin degree and removal from the nearest
// common ancestor. When that ancestor is a parent of one side the result is
// an extended aunt/uncle or niece/nephew instead.
func cousinRelationship(ancA, ancB AncestorMap, g model.Gender) (Relationship, bool) {
	ca, ok := nearestCommonAncestor(ancA, ancB)
	if !ok {
		return Relationship{}, false
	}

	switch {
	case ca.m == 1 && ca.n == 1:
		return siblingRelationship(g, ca.whangai), true
	case ca.n == 1:
		k := ca.m - 1
		return Relationship{
			Kind:        RelationAuntUncle,
			Label:       withWhangai(auntUncleLabel(k, g), ca.whangai),
			Generations: k,
			Whangai:     ca.whangai,
		}, true
	case ca.m == 1:
		k := ca.n - 1
		return Relationship{
			Kind:        RelationNieceNephew,
			Label:       withWhangai(nieceNephewLabel(k, g), ca.whangai),
			Generations: k,
			Whangai:     ca.whangai,
		}, true
	}

	degree := min(ca.m, ca.n) - 1
	removed := ca.removed()
	return Relationship{
		Kind:    RelationCousin,
		Label:   withWhangai(cousinLabel(degree, removed), ca.whangai),
		Degree:  degree,
		Removed: removed,
		Whangai: ca.whangai,
	}, true
}

// inLaw applies the in-law heuristics through siblings and co-parents.
func (c *Classifier) inLaw(ctx context.Context, a, b string, parentsA, parentsB []ParentLink, coA []CoParent, g model.Gender) (Relationship, bool, error) {
	coB, err := c.reader.CoParentsOf(ctx, b)
	if err != nil {
		return Relationship{}, false, fmt.Errorf("co-parents of %s: %w", b, err)
	}
	coAFlags := coParentFlags(coA)
	coBFlags := coParentFlags(coB)

	// Sibling's co-parent, or co-parent's sibling.
	siblingsA, err := c.siblings(ctx, a, parentsA)
	if err != nil {
		return Relationship{}, false, err
	}
	var sibInLaw match
	for sid, ws := range siblingsA {
		if wc, ok := coBFlags[sid]; ok {
			sibInLaw.offer(ws || wc)
		}
	}
	if !sibInLaw.found {
		siblingsB, err := c.siblings(ctx, b, parentsB)
		if err != nil {
			return Relationship{}, false, err
		}
		for sid, ws := range siblingsB {
			if wc, ok := coAFlags[sid]; ok {
				sibInLaw.offer(ws || wc)
			}
		}
	}
	if sibInLaw.found {
		return inLawRelationship(RelationSiblingInLaw, termSiblingInLaw, g, sibInLaw.whangai), true, nil
	}

	// Co-parent's parent.
	childrenB, err := c.reader.ChildrenOf(ctx, b)
	if err != nil {
		return Relationship{}, false, fmt.Errorf("children of %s: %w", b, err)
	}
	var parentInLaw match
	for _, child := range childrenB {
		if wc, ok := coAFlags[child.ChildID]; ok {
			parentInLaw.offer(wc || isWhangai(child.Kind))
		}
	}
	if parentInLaw.found {
		return inLawRelationship(RelationParentInLaw, termParentInLaw, g, parentInLaw.whangai), true, nil
	}

	// Co-parent's child that is not a's own child, or child's co-parent.
	var childInLaw match
	if _, own := parentFlags(parentsB)[a]; !own {
		for pid, wp := range parentFlags(parentsB) {
			if wc, ok := coAFlags[pid]; ok {
				childInLaw.offer(wc || wp)
			}
		}
	}
	if !childInLaw.found {
		childrenA, err := c.reader.ChildrenOf(ctx, a)
		if err != nil {
			return Relationship{}, false, fmt.Errorf("children of %s: %w", a, err)
		}
		for _, child := range childrenA {
			if wc, ok := coBFlags[child.ChildID]; ok {
				childInLaw.offer(wc || isWhangai(child.Kind))
			}
		}
	}
	if childInLaw.found {
		return inLawRelationship(RelationChildInLaw, termChildInLaw, g, childInLaw.whangai), true, nil
	}

	return Relationship{}, false, nil
}

func inLawRelationship(kind RelationKind, t term, g model.Gender, whangai bool) Relationship {
	return Relationship{
		Kind:    kind,
		Label:   withWhangai(gendered(t, g), whangai),
		Whangai: whangai,
	}
}

func coParentFlags(cps []CoParent) map[string]bool {
	return lo.SliceToMap(cps, func(cp CoParent) (string, bool) {
		return cp.CoParentID, cp.Whangai
	})
}

// siblings returns everyone sharing a parent with id, mapped to whether the
// best connecting path is whāngai.
func (c *Classifier) siblings(ctx context.Context, id string, parents []ParentLink) (map[string]bool, error) {
	result := make(map[string]bool)
	for pid, wp := range parentFlags(parents) {
		children, err := c.reader.ChildrenOf(ctx, pid)
		if err != nil {
			return nil, fmt.Errorf("children of %s: %w", pid, err)
		}
		for _, child := range children {
			if child.ChildID == id {
				continue
			}
			w := wp || isWhangai(child.Kind)
			if prev, seen := result[child.ChildID]; !seen || (prev && !w) {
				result[child.ChildID] = w
			}
		}
	}
	return result, nil
}
