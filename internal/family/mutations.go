package family

import (
	"context"
	"fmt"
	"strings"

	"github.com/mtlprog/whanau/internal/kinship"
	"github.com/mtlprog/whanau/internal/model"
)

type authority int

const (
	authDirect authority = iota + 1
	authRequest
)

// authorize decides how actor may relate x and y. A locked person needs an
// admin. Admins and owners of both apply changes directly; the owner of one
// side files a request addressed to the other side's owner.
func authorize(actor Actor, x, y *model.Person) (authority, string, error) {
	if (x.Locked || y.Locked) && !actor.Admin {
		return 0, "", fmt.Errorf("%w: person is locked", kinship.ErrForbidden)
	}
	if actor.Admin {
		return authDirect, "", nil
	}

	ownsX, ownsY := actor.owns(x), actor.owns(y)
	switch {
	case ownsX && ownsY:
		return authDirect, "", nil
	case ownsX && y.CreatedByID != "":
		return authRequest, y.CreatedByID, nil
	case ownsY && x.CreatedByID != "":
		return authRequest, x.CreatedByID, nil
	default:
		return 0, "", fmt.Errorf("%w: actor owns neither person", kinship.ErrForbidden)
	}
}

func (s *Service) pair(ctx context.Context, xID, yID string) (*model.Person, *model.Person, error) {
	x, err := s.people.GetPerson(ctx, xID)
	if err != nil {
		return nil, nil, err
	}
	y, err := s.people.GetPerson(ctx, yID)
	if err != nil {
		return nil, nil, err
	}
	return x, y, nil
}

// LinkInput proposes a parent-child edge. An empty Kind means BIOLOGICAL.
type LinkInput struct {
	ParentID string
	ChildID  string
	Role     model.Role
	Kind     model.EdgeKind
}

// LinkResult holds the saved edge, or the pending request when the change
// needs another owner's approval.
type LinkResult struct {
	Edge    *model.ParentChildEdge
	Request *model.RelationshipRequest
}

func checkRoleForParent(role model.Role, parent *model.Person) error {
	if err := model.ValidateRoleForGender(role, parent.Gender); err != nil {
		return kinship.NewValidationError("role", err.Error())
	}
	return nil
}

// LinkParentChild links parent to child, or files a request for approval.
func (s *Service) LinkParentChild(ctx context.Context, actor Actor, in LinkInput) (*LinkResult, error) {
	if in.Kind == "" {
		in.Kind = model.KindBiological
	}
	if strings.TrimSpace(in.ParentID) == "" || strings.TrimSpace(in.ChildID) == "" {
		return nil, kinship.NewValidationError("edge", "parent_id and child_id are required")
	}
	if in.ParentID == in.ChildID {
		return nil, kinship.ErrSelfLink
	}
	if !in.Role.IsValid() {
		return nil, kinship.NewValidationError("role", fmt.Sprintf("unknown role %q", in.Role))
	}
	if !in.Kind.IsValid() {
		return nil, kinship.NewValidationError("kind", fmt.Sprintf("unknown kind %q", in.Kind))
	}

	parent, child, err := s.pair(ctx, in.ParentID, in.ChildID)
	if err != nil {
		return nil, err
	}
	if err := checkRoleForParent(in.Role, parent); err != nil {
		return nil, err
	}

	auth, approver, err := authorize(actor, parent, child)
	if err != nil {
		return nil, err
	}

	if auth == authRequest {
		req, err := s.requests.CreatePending(ctx, model.RelationshipRequest{
			Kind:         model.RequestParentChild,
			FromPersonID: parent.ID,
			ToPersonID:   child.ID,
			Role:         in.Role,
			PCKind:       in.Kind,
			RequesterID:  actor.ID,
			ApproverID:   approver,
			DedupeKey:    model.ComputeDedupeKey(model.RequestParentChild, parent.ID, child.ID, in.Role, in.Kind, approver),
			CreatedAt:    s.now().UTC(),
		})
		if err != nil {
			return nil, fmt.Errorf("create parent-child request: %w", err)
		}
		s.logger.Info("parent-child request pending",
			"request_id", req.ID,
			"parent_id", parent.ID,
			"child_id", child.ID,
			"approver_id", approver,
			"actor_id", actor.ID,
		)
		return &LinkResult{Request: req}, nil
	}

	edge, err := s.guard.LinkParentChild(ctx, kinship.LinkRequest{
		ParentID: parent.ID,
		ChildID:  child.ID,
		Role:     in.Role,
		Kind:     in.Kind,
	}, actor.ID)
	if err != nil {
		return nil, err
	}
	return &LinkResult{Edge: edge}, nil
}

// UnlinkParentChild removes edges. Admins and owners of either endpoint may
// unlink; a locked endpoint needs an admin.
func (s *Service) UnlinkParentChild(ctx context.Context, actor Actor, req kinship.UnlinkRequest) (int, error) {
	parentID, childID := req.ParentID, req.ChildID
	if req.EdgeID != "" {
		edge, err := s.edges.GetEdge(ctx, req.EdgeID)
		if err != nil {
			return 0, err
		}
		parentID, childID = edge.ParentID, edge.ChildID
	}
	if parentID == "" || childID == "" {
		return 0, kinship.NewValidationError("edge", "edge id or parent_id and child_id are required")
	}

	parent, child, err := s.pair(ctx, parentID, childID)
	if err != nil {
		return 0, err
	}
	if (parent.Locked || child.Locked) && !actor.Admin {
		return 0, fmt.Errorf("%w: person is locked", kinship.ErrForbidden)
	}
	if !actor.Admin && !actor.owns(parent) && !actor.owns(child) {
		return 0, fmt.Errorf("%w: actor owns neither person", kinship.ErrForbidden)
	}

	return s.guard.UnlinkParentChild(ctx, req, actor.ID)
}

// PartnerInput proposes a partnership. Empty Kind and Status default to
// PARTNER and ACTIVE.
type PartnerInput struct {
	AID    string
	BID    string
	Kind   model.PartnershipKind
	Status model.PartnershipStatus
}

// PartnerResult holds the stored partnership or the pending request.
type PartnerResult struct {
	Partnership *model.Partnership
	Request     *model.RelationshipRequest
}

// LinkPartners records a partnership under the same ownership rules as
// LinkParentChild.
func (s *Service) LinkPartners(ctx context.Context, actor Actor, in PartnerInput) (*PartnerResult, error) {
	p, err := model.NewPartnership(in.AID, in.BID, in.Kind, in.Status)
	if err != nil {
		return nil, kinship.NewValidationError("partnership", err.Error())
	}

	a, b, err := s.pair(ctx, p.AID, p.BID)
	if err != nil {
		return nil, err
	}
	auth, approver, err := authorize(actor, a, b)
	if err != nil {
		return nil, err
	}

	if auth == authRequest {
		req, err := s.requests.CreatePending(ctx, model.RelationshipRequest{
			Kind:            model.RequestPartnership,
			FromPersonID:    p.AID,
			ToPersonID:      p.BID,
			PartnershipKind: p.Kind,
			RequesterID:     actor.ID,
			ApproverID:      approver,
			DedupeKey:       model.ComputeDedupeKey(model.RequestPartnership, p.AID, p.BID, "", "", approver),
			CreatedAt:       s.now().UTC(),
		})
		if err != nil {
			return nil, fmt.Errorf("create partnership request: %w", err)
		}
		s.logger.Info("partnership request pending",
			"request_id", req.ID,
			"a_id", p.AID,
			"b_id", p.BID,
			"approver_id", approver,
			"actor_id", actor.ID,
		)
		return &PartnerResult{Request: req}, nil
	}

	p.CreatedByID = actor.ID
	saved, err := s.partnerships.UpsertPartnership(ctx, *p)
	if err != nil {
		return nil, fmt.Errorf("save partnership: %w", err)
	}
	s.logger.Info("partnership saved", "partnership_id", saved.ID, "a_id", saved.AID, "b_id", saved.BID, "actor_id", actor.ID)
	return &PartnerResult{Partnership: saved}, nil
}

// Decision is the answer to a pending request.
type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
	DecisionCancel  Decision = "cancel"
)

// ParseDecision accepts approve, reject and cancel in any case.
func ParseDecision(s string) (Decision, error) {
	switch d := Decision(strings.ToLower(strings.TrimSpace(s))); d {
	case DecisionApprove, DecisionReject, DecisionCancel:
		return d, nil
	default:
		return "", kinship.NewValidationError("decision", fmt.Sprintf("unknown decision %q (valid: approve, reject, cancel)", s))
	}
}

func (d Decision) status() model.RequestStatus {
	switch d {
	case DecisionApprove:
		return model.RequestApproved
	case DecisionReject:
		return model.RequestRejected
	default:
		return model.RequestCanceled
	}
}

// DecisionResult is the decided request plus whatever approval created.
type DecisionResult struct {
	Request     *model.RelationshipRequest
	Edge        *model.ParentChildEdge
	Partnership *model.Partnership
}

// DecideRequest approves, rejects or cancels a pending request. Only the
// approver (or an admin) may approve or reject; only the requester may
// cancel. Approval applies the stored mutation before the status changes,
// so a failed apply leaves the request pending.
func (s *Service) DecideRequest(ctx context.Context, actor Actor, id string, decision Decision) (*DecisionResult, error) {
	req, err := s.requests.GetRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Status != model.RequestPending {
		return nil, kinship.NewValidationError("status", fmt.Sprintf("request is already %s", req.Status))
	}

	switch decision {
	case DecisionApprove, DecisionReject:
		if !actor.Admin && actor.ID != req.ApproverID {
			return nil, fmt.Errorf("%w: only the approver may %s", kinship.ErrForbidden, decision)
		}
	case DecisionCancel:
		if actor.ID != req.RequesterID {
			return nil, fmt.Errorf("%w: only the requester may cancel", kinship.ErrForbidden)
		}
	default:
		return nil, kinship.NewValidationError("decision", fmt.Sprintf("unknown decision %q", decision))
	}

	result := &DecisionResult{}
	if decision == DecisionApprove {
		if err := s.apply(ctx, req, result); err != nil {
			return nil, err
		}
	}

	if err := req.Transition(decision.status(), s.now().UTC()); err != nil {
		return nil, kinship.NewValidationError("status", err.Error())
	}
	if err := s.requests.UpdateStatus(ctx, *req); err != nil {
		return nil, fmt.Errorf("update request status: %w", err)
	}

	s.logger.Info("relationship request decided",
		"request_id", req.ID,
		"kind", req.Kind,
		"status", req.Status,
		"actor_id", actor.ID,
	)
	result.Request = req
	return result, nil
}

func (s *Service) apply(ctx context.Context, req *model.RelationshipRequest, result *DecisionResult) error {
	switch req.Kind {
	case model.RequestParentChild:
		parent, err := s.people.GetPerson(ctx, req.FromPersonID)
		if err != nil {
			return err
		}
		// Gender may have changed since the request was filed.
		if err := checkRoleForParent(req.Role, parent); err != nil {
			return err
		}
		edge, err := s.guard.LinkParentChild(ctx, kinship.LinkRequest{
			ParentID: req.FromPersonID,
			ChildID:  req.ToPersonID,
			Role:     req.Role,
			Kind:     req.PCKind,
		}, req.RequesterID)
		if err != nil {
			return err
		}
		result.Edge = edge
	case model.RequestPartnership:
		p, err := model.NewPartnership(req.FromPersonID, req.ToPersonID, req.PartnershipKind, "")
		if err != nil {
			return kinship.NewValidationError("partnership", err.Error())
		}
		p.CreatedByID = req.RequesterID
		saved, err := s.partnerships.UpsertPartnership(ctx, *p)
		if err != nil {
			return fmt.Errorf("save partnership: %w", err)
		}
		result.Partnership = saved
	default:
		return kinship.NewValidationError("kind", fmt.Sprintf("unknown request kind %q", req.Kind))
	}
	return nil
}
