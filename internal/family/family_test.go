package family

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mtlprog/whanau/internal/kinship"
	"github.com/mtlprog/whanau/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memPartnerships struct {
	mu    sync.Mutex
	saved map[string]model.Partnership
}

func (m *memPartnerships) UpsertPartnership(_ context.Context, p model.Partnership) (*model.Partnership, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := p.AID + "|" + p.BID
	if prev, ok := m.saved[key]; ok {
		p.ID = prev.ID
	} else if p.ID == "" {
		p.ID = uuid.NewString()
	}
	m.saved[key] = p
	return &p, nil
}

type memRequests struct {
	mu   sync.Mutex
	byID map[string]*model.RelationshipRequest
}

func (m *memRequests) CreatePending(_ context.Context, req model.RelationshipRequest) (*model.RelationshipRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.byID {
		if r.DedupeKey == req.DedupeKey && r.Status == model.RequestPending {
			out := *r
			return &out, nil
		}
	}
	req.ID = uuid.NewString()
	req.Status = model.RequestPending
	m.byID[req.ID] = &req
	out := req
	return &out, nil
}

func (m *memRequests) GetRequest(_ context.Context, id string) (*model.RelationshipRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.byID[id]
	if !ok {
		return nil, kinship.ErrRequestNotFound
	}
	out := *r
	return &out, nil
}

func (m *memRequests) UpdateStatus(_ context.Context, req model.RelationshipRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.byID[req.ID]
	if !ok || r.Status != model.RequestPending {
		return kinship.ErrRequestNotFound
	}
	*r = req
	return nil
}

type fixture struct {
	svc          *Service
	graph        *kinship.MemoryGraph
	partnerships *memPartnerships
	requests     *memRequests
}

func owned(id string, g model.Gender, owner string) model.Person {
	return model.Person{ID: id, FirstName: id, Gender: g, CreatedByID: owner}
}

func edge(parent, child string, role model.Role) model.ParentChildEdge {
	return model.ParentChildEdge{ParentID: parent, ChildID: child, Role: role, Kind: model.KindBiological}
}

var (
	u1    = Actor{ID: "u1"}
	u2    = Actor{ID: "u2"}
	u3    = Actor{ID: "u3"}
	admin = Actor{ID: "root", Admin: true}
)

// newFixture: u1 owns mere, hemi, aroha and the locked kui; u2 owns tama and kid.
func newFixture(t *testing.T) *fixture {
	t.Helper()

	kui := owned("kui", model.GenderFemale, "u1")
	kui.Locked = true
	mere := owned("mere", model.GenderFemale, "u1")
	mere.Notes = "Kept the *whakapapa* book."

	g := kinship.NewMemoryGraph(
		[]model.Person{
			mere,
			owned("hemi", model.GenderMale, "u1"),
			owned("aroha", model.GenderFemale, "u1"),
			owned("tama", model.GenderMale, "u2"),
			owned("kid", model.GenderUnknown, "u2"),
			kui,
		},
		[]model.ParentChildEdge{
			edge("mere", "aroha", model.RoleMother),
			edge("hemi", "aroha", model.RoleFather),
			edge("mere", "tama", model.RoleMother),
			edge("hemi", "tama", model.RoleFather),
		},
	)

	cache := kinship.NewAncestorCache(g)
	classifier, err := kinship.NewClassifier(g, kinship.WithAncestorCache(cache))
	require.NoError(t, err)
	guard, err := kinship.NewGuard(g, kinship.WithInvalidator(cache))
	require.NoError(t, err)

	f := &fixture{
		graph:        g,
		partnerships: &memPartnerships{saved: make(map[string]model.Partnership)},
		requests:     &memRequests{byID: make(map[string]*model.RelationshipRequest)},
	}
	f.svc, err = New(Deps{
		People:       g,
		Edges:        g,
		Partnerships: f.partnerships,
		Requests:     f.requests,
		Classifier:   classifier,
		Guard:        guard,
	}, WithClock(func() time.Time { return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC) }))
	require.NoError(t, err)
	return f
}

func TestNew(t *testing.T) {
	_, err := New(Deps{})
	assert.ErrorContains(t, err, "person store is required")
}

func TestService_Reads(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	t.Run("describe", func(t *testing.T) {
		rel, err := f.svc.Describe(ctx, "aroha", "tama")
		require.NoError(t, err)
		assert.Equal(t, "brother", rel.Label)
		assert.Equal(t, kinship.RelationSibling, rel.Kind)
	})

	t.Run("describe unknown person", func(t *testing.T) {
		_, err := f.svc.Describe(ctx, "aroha", "ghost")
		assert.ErrorIs(t, err, kinship.ErrPersonNotFound)
	})

	t.Run("ancestors are sorted", func(t *testing.T) {
		anc, err := f.svc.Ancestors(ctx, "tama")
		require.NoError(t, err)
		assert.Equal(t, []AncestorEntry{
			{PersonID: "hemi", Distance: 1},
			{PersonID: "mere", Distance: 1},
		}, anc)
	})

	t.Run("person notes are rendered", func(t *testing.T) {
		p, err := f.svc.Person(ctx, "mere")
		require.NoError(t, err)
		assert.Contains(t, string(p.NotesHTML), "<em>whakapapa</em>")
	})

	t.Run("tree", func(t *testing.T) {
		tree, err := f.svc.Tree(ctx, kinship.ViewBiological)
		require.NoError(t, err)
		assert.Len(t, tree.People, 6)
		assert.Len(t, tree.Edges, 4)
		assert.Equal(t, "aroha", tree.People[0].ID)
	})

	t.Run("line and lineage", func(t *testing.T) {
		line, err := f.svc.Line(ctx, "aroha", kinship.LinePaternal, kinship.ViewAll, 0)
		require.NoError(t, err)
		assert.Equal(t, []string{"aroha", "hemi"}, line.Nodes)

		lineage, err := f.svc.Lineage(ctx, "mere", kinship.ViewAll, 0)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"mere", "aroha", "tama"}, lineage.Nodes)

		_, err = f.svc.Line(ctx, "ghost", kinship.LineBoth, kinship.ViewAll, 0)
		assert.ErrorIs(t, err, kinship.ErrPersonNotFound)
	})
}

func newGraphService(t *testing.T, g *kinship.MemoryGraph) *Service {
	t.Helper()

	classifier, err := kinship.NewClassifier(g)
	require.NoError(t, err)
	guard, err := kinship.NewGuard(g)
	require.NoError(t, err)
	svc, err := New(Deps{
		People:       g,
		Edges:        g,
		Partnerships: &memPartnerships{saved: make(map[string]model.Partnership)},
		Requests:     &memRequests{byID: make(map[string]*model.RelationshipRequest)},
		Classifier:   classifier,
		Guard:        guard,
	})
	require.NoError(t, err)
	return svc
}

func TestService_LineAnyFollowsParentRole(t *testing.T) {
	ctx := context.Background()
	svc := newGraphService(t, kinship.NewMemoryGraph(
		[]model.Person{
			owned("whaea", model.GenderUnknown, "u1"),
			owned("kid", model.GenderUnknown, "u1"),
		},
		[]model.ParentChildEdge{edge("whaea", "kid", model.RoleParent)},
	))

	line, err := svc.Line(ctx, "kid", kinship.LineEither, kinship.ViewAll, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"kid", "whaea"}, line.Nodes)

	both, err := svc.Line(ctx, "kid", kinship.LineBoth, kinship.ViewAll, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"kid"}, both.Nodes)
}

func TestService_LineFollowsView(t *testing.T) {
	ctx := context.Background()

	whangai := edge("kui", "kid", model.RoleMother)
	whangai.Kind = model.KindWhangai
	g := kinship.NewMemoryGraph(
		[]model.Person{
			owned("kui", model.GenderFemale, "u1"),
			owned("mere", model.GenderFemale, "u1"),
			owned("kid", model.GenderUnknown, "u1"),
		},
		// The whāngai edge is inserted first so ordering alone would pick it.
		[]model.ParentChildEdge{whangai, edge("mere", "kid", model.RoleMother)},
	)
	svc := newGraphService(t, g)

	tests := []struct {
		name string
		view kinship.ViewKind
		want []string
	}{
		{"all prefers biological", kinship.ViewAll, []string{"kid", "mere"}},
		{"biological", kinship.ViewBiological, []string{"kid", "mere"}},
		{"whangai", kinship.ViewWhangai, []string{"kid", "kui"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, err := svc.Line(ctx, "kid", kinship.LineMaternal, tt.view, 0)
			require.NoError(t, err)
			assert.Equal(t, tt.want, line.Nodes)
		})
	}

	t.Run("lineage of whangai view drops biological parent", func(t *testing.T) {
		lineage, err := svc.Lineage(ctx, "kid", kinship.ViewWhangai, 0)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"kid", "kui"}, lineage.Nodes)
	})
}

func TestService_LinkParentChild(t *testing.T) {
	ctx := context.Background()

	t.Run("owner of both links directly", func(t *testing.T) {
		f := newFixture(t)

		res, err := f.svc.LinkParentChild(ctx, u2, LinkInput{ParentID: "tama", ChildID: "kid", Role: model.RoleFather})
		require.NoError(t, err)
		require.NotNil(t, res.Edge)
		assert.Nil(t, res.Request)
		assert.Equal(t, model.KindBiological, res.Edge.Kind)

		rel, err := f.svc.Describe(ctx, "aroha", "kid")
		require.NoError(t, err)
		assert.Equal(t, "niece/nephew", rel.Label)
	})

	t.Run("role must match parent gender", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.LinkParentChild(ctx, u2, LinkInput{ParentID: "tama", ChildID: "kid", Role: model.RoleMother})
		var verr *kinship.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "role", verr.Field)
	})

	t.Run("PARENT role accepts any gender", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.LinkParentChild(ctx, u2, LinkInput{ParentID: "tama", ChildID: "kid", Role: model.RoleParent, Kind: model.KindWhangai})
		assert.NoError(t, err)
	})

	t.Run("owner of one side files a request", func(t *testing.T) {
		f := newFixture(t)

		res, err := f.svc.LinkParentChild(ctx, u1, LinkInput{ParentID: "aroha", ChildID: "kid", Role: model.RoleMother})
		require.NoError(t, err)
		assert.Nil(t, res.Edge)
		require.NotNil(t, res.Request)
		assert.Equal(t, model.RequestPending, res.Request.Status)
		assert.Equal(t, "u2", res.Request.ApproverID)
		assert.Equal(t, "u1", res.Request.RequesterID)

		again, err := f.svc.LinkParentChild(ctx, u1, LinkInput{ParentID: "aroha", ChildID: "kid", Role: model.RoleMother})
		require.NoError(t, err)
		assert.Equal(t, res.Request.ID, again.Request.ID)

		parents, err := f.graph.ParentsOf(ctx, "kid")
		require.NoError(t, err)
		assert.Empty(t, parents)
	})

	t.Run("owner of neither is forbidden", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.LinkParentChild(ctx, u3, LinkInput{ParentID: "aroha", ChildID: "kid", Role: model.RoleMother})
		assert.ErrorIs(t, err, kinship.ErrForbidden)
	})

	t.Run("locked person needs admin", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.LinkParentChild(ctx, u1, LinkInput{ParentID: "kui", ChildID: "mere", Role: model.RoleMother})
		assert.ErrorIs(t, err, kinship.ErrForbidden)

		res, err := f.svc.LinkParentChild(ctx, admin, LinkInput{ParentID: "kui", ChildID: "mere", Role: model.RoleMother})
		require.NoError(t, err)
		assert.NotNil(t, res.Edge)
	})

	t.Run("guard errors pass through", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.LinkParentChild(ctx, u1, LinkInput{ParentID: "aroha", ChildID: "mere", Role: model.RoleMother})
		assert.ErrorIs(t, err, kinship.ErrCycleDetected)

		_, err = f.svc.LinkParentChild(ctx, u1, LinkInput{ParentID: "aroha", ChildID: "aroha", Role: model.RoleMother})
		assert.ErrorIs(t, err, kinship.ErrSelfLink)

		_, err = f.svc.LinkParentChild(ctx, u1, LinkInput{ParentID: "ghost", ChildID: "aroha", Role: model.RoleParent})
		assert.ErrorIs(t, err, kinship.ErrPersonNotFound)
	})

	t.Run("invalid kind", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.LinkParentChild(ctx, u2, LinkInput{ParentID: "tama", ChildID: "kid", Role: model.RoleParent, Kind: "FOSTER"})
		var verr *kinship.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "kind", verr.Field)
	})
}

func TestService_UnlinkParentChild(t *testing.T) {
	ctx := context.Background()

	t.Run("owner of one endpoint may unlink", func(t *testing.T) {
		f := newFixture(t)

		n, err := f.svc.UnlinkParentChild(ctx, u2, kinship.UnlinkRequest{ParentID: "mere", ChildID: "tama"})
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("by edge id", func(t *testing.T) {
		f := newFixture(t)
		edges, err := f.graph.ListEdges(ctx)
		require.NoError(t, err)

		n, err := f.svc.UnlinkParentChild(ctx, u1, kinship.UnlinkRequest{EdgeID: edges[0].ID})
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		_, err = f.svc.UnlinkParentChild(ctx, u1, kinship.UnlinkRequest{EdgeID: edges[0].ID})
		assert.ErrorIs(t, err, kinship.ErrEdgeNotFound)
	})

	t.Run("stranger is forbidden", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.UnlinkParentChild(ctx, u3, kinship.UnlinkRequest{ParentID: "mere", ChildID: "tama"})
		assert.ErrorIs(t, err, kinship.ErrForbidden)
	})

	t.Run("missing pair is a validation error", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.UnlinkParentChild(ctx, u1, kinship.UnlinkRequest{ParentID: "mere"})
		var verr *kinship.ValidationError
		assert.ErrorAs(t, err, &verr)
	})
}

func TestService_LinkPartners(t *testing.T) {
	ctx := context.Background()

	t.Run("direct partnership is stored in canonical order", func(t *testing.T) {
		f := newFixture(t)

		res, err := f.svc.LinkPartners(ctx, u1, PartnerInput{AID: "mere", BID: "hemi", Kind: model.PartnershipMarried})
		require.NoError(t, err)
		require.NotNil(t, res.Partnership)
		assert.Equal(t, "hemi", res.Partnership.AID)
		assert.Equal(t, "mere", res.Partnership.BID)
		assert.Equal(t, model.PartnershipActive, res.Partnership.Status)
	})

	t.Run("cross-owner partnership needs approval", func(t *testing.T) {
		f := newFixture(t)

		res, err := f.svc.LinkPartners(ctx, u2, PartnerInput{AID: "tama", BID: "aroha"})
		require.NoError(t, err)
		require.NotNil(t, res.Request)
		assert.Equal(t, model.RequestPartnership, res.Request.Kind)
		assert.Equal(t, "u1", res.Request.ApproverID)
	})

	t.Run("self partnership is invalid", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.LinkPartners(ctx, u1, PartnerInput{AID: "mere", BID: "mere"})
		var verr *kinship.ValidationError
		assert.ErrorAs(t, err, &verr)
	})
}

func TestService_DecideRequest(t *testing.T) {
	ctx := context.Background()

	pending := func(t *testing.T, f *fixture) *model.RelationshipRequest {
		t.Helper()
		res, err := f.svc.LinkParentChild(ctx, u1, LinkInput{ParentID: "aroha", ChildID: "kid", Role: model.RoleMother, Kind: model.KindWhangai})
		require.NoError(t, err)
		require.NotNil(t, res.Request)
		return res.Request
	}

	t.Run("approver approves and the edge is applied", func(t *testing.T) {
		f := newFixture(t)
		req := pending(t, f)

		res, err := f.svc.DecideRequest(ctx, u2, req.ID, DecisionApprove)
		require.NoError(t, err)
		assert.Equal(t, model.RequestApproved, res.Request.Status)
		require.NotNil(t, res.Request.DecidedAt)
		require.NotNil(t, res.Edge)
		assert.Equal(t, "u1", res.Edge.CreatedByID)

		rel, err := f.svc.Describe(ctx, "kid", "aroha")
		require.NoError(t, err)
		assert.Equal(t, "mother (whangai)", rel.Label)
	})

	t.Run("requester cannot approve", func(t *testing.T) {
		f := newFixture(t)
		req := pending(t, f)

		_, err := f.svc.DecideRequest(ctx, u1, req.ID, DecisionApprove)
		assert.ErrorIs(t, err, kinship.ErrForbidden)
	})

	t.Run("only requester cancels", func(t *testing.T) {
		f := newFixture(t)
		req := pending(t, f)

		_, err := f.svc.DecideRequest(ctx, u2, req.ID, DecisionCancel)
		assert.ErrorIs(t, err, kinship.ErrForbidden)

		res, err := f.svc.DecideRequest(ctx, u1, req.ID, DecisionCancel)
		require.NoError(t, err)
		assert.Equal(t, model.RequestCanceled, res.Request.Status)
	})

	t.Run("decided request cannot change", func(t *testing.T) {
		f := newFixture(t)
		req := pending(t, f)

		_, err := f.svc.DecideRequest(ctx, u2, req.ID, DecisionReject)
		require.NoError(t, err)

		_, err = f.svc.DecideRequest(ctx, u2, req.ID, DecisionApprove)
		var verr *kinship.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "status", verr.Field)
	})

	t.Run("failed apply leaves request pending", func(t *testing.T) {
		f := newFixture(t)
		req := pending(t, f)
		// kid becomes aroha's parent before approval, so approving would close a cycle.
		_, err := f.svc.LinkParentChild(ctx, admin, LinkInput{ParentID: "kid", ChildID: "aroha", Role: model.RoleParent})
		require.NoError(t, err)

		_, err = f.svc.DecideRequest(ctx, u2, req.ID, DecisionApprove)
		assert.ErrorIs(t, err, kinship.ErrCycleDetected)

		stored, err := f.requests.GetRequest(ctx, req.ID)
		require.NoError(t, err)
		assert.Equal(t, model.RequestPending, stored.Status)
	})

	t.Run("unknown request", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.DecideRequest(ctx, u2, "missing", DecisionApprove)
		assert.ErrorIs(t, err, kinship.ErrRequestNotFound)
	})
}

func TestParseDecision(t *testing.T) {
	d, err := ParseDecision("Approve")
	require.NoError(t, err)
	assert.Equal(t, DecisionApprove, d)

	_, err = ParseDecision("maybe")
	assert.Error(t, err)
}
