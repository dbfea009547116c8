package api

import (
	"time"

	"github.com/mtlprog/whanau/internal/family"
	"github.com/mtlprog/whanau/internal/kinship"
	"github.com/mtlprog/whanau/internal/model"
)

const dateLayout = "2006-01-02"

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

// PersonResponse is a person with rendered notes.
type PersonResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name,omitempty"`
	DisplayName string  `json:"display_name,omitempty"`
	Gender      string  `json:"gender"`
	BirthDate   *string `json:"birth_date,omitempty"`
	DeathDate   *string `json:"death_date,omitempty"`
	NotesHTML   string  `json:"notes_html,omitempty"`
	ImageURL    string  `json:"image_url,omitempty"`
	Locked      bool    `json:"locked"`
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

func toPersonResponse(p model.Person) PersonResponse {
	return PersonResponse{
		ID:          p.ID,
		Name:        p.Name(),
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		DisplayName: p.DisplayName,
		Gender:      string(p.Gender),
		BirthDate:   formatDate(p.BirthDate),
		DeathDate:   formatDate(p.DeathDate),
		ImageURL:    p.ImageURL,
		Locked:      p.Locked,
	}
}

// AncestorResponse is one ancestor with their generation distance.
type AncestorResponse struct {
	PersonID string `json:"person_id"`
	Distance int    `json:"distance"`
	Whangai  bool   `json:"whangai"`
}

// AncestorsResponse lists a person's ancestors, nearest first.
type AncestorsResponse struct {
	PersonID  string             `json:"person_id"`
	Ancestors []AncestorResponse `json:"ancestors"`
}

// RelationshipResponse describes how To is related to From.
type RelationshipResponse struct {
	From        string `json:"from"`
	To          string `json:"to"`
	Kind        string `json:"kind"`
	Label       string `json:"label"`
	Generations int    `json:"generations,omitempty"`
	Degree      int    `json:"degree,omitempty"`
	Removed     int    `json:"removed,omitempty"`
	Whangai     bool   `json:"whangai"`
}

func toRelationshipResponse(from, to string, rel kinship.Relationship) RelationshipResponse {
	return RelationshipResponse{
		From:        from,
		To:          to,
		Kind:        string(rel.Kind),
		Label:       rel.Label,
		Generations: rel.Generations,
		Degree:      rel.Degree,
		Removed:     rel.Removed,
		Whangai:     rel.Whangai,
	}
}

// LineResponse is a highlighted sub-graph: visited people and directed
// "parent>child" edge keys.
type LineResponse struct {
	PersonID string   `json:"person_id"`
	Mode     string   `json:"mode,omitempty"`
	Nodes    []string `json:"nodes"`
	Edges    []string `json:"edges"`
}

func toLineResponse(id, mode string, res kinship.LineResult) LineResponse {
	return LineResponse{
		PersonID: id,
		Mode:     mode,
		Nodes:    nonNil(res.Nodes),
		Edges:    nonNil(res.Edges),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// EdgeResponse is one parent-child edge.
type EdgeResponse struct {
	ID       string `json:"id"`
	ParentID string `json:"parent_id"`
	ChildID  string `json:"child_id"`
	Role     string `json:"role"`
	Kind     string `json:"kind"`
}

func toEdgeResponse(e model.ParentChildEdge) EdgeResponse {
	return EdgeResponse{
		ID:       e.ID,
		ParentID: e.ParentID,
		ChildID:  e.ChildID,
		Role:     string(e.Role),
		Kind:     string(e.Kind),
	}
}

// TreeResponse is the whole family for one view.
type TreeResponse struct {
	View   string           `json:"view"`
	People []PersonResponse `json:"people"`
	Edges  []EdgeResponse   `json:"edges"`
}

// CreateEdgeRequest is the body of POST /api/v1/edges.
type CreateEdgeRequest struct {
	ParentID string `json:"parent_id"`
	ChildID  string `json:"child_id"`
	Role     string `json:"role" enums:"MOTHER,FATHER,PARENT"`
	Kind     string `json:"kind,omitempty" enums:"BIOLOGICAL,WHANGAI"`
}

// CreatePartnershipRequest is the body of POST /api/v1/partnerships.
type CreatePartnershipRequest struct {
	AID    string `json:"a_id"`
	BID    string `json:"b_id"`
	Kind   string `json:"kind,omitempty"`
	Status string `json:"status,omitempty"`
}

// RequestResponse is a relationship request awaiting or past a decision.
type RequestResponse struct {
	ID              string     `json:"id"`
	Kind            string     `json:"kind"`
	FromPersonID    string     `json:"from_person_id"`
	ToPersonID      string     `json:"to_person_id"`
	Role            string     `json:"role,omitempty"`
	EdgeKind        string     `json:"edge_kind,omitempty"`
	PartnershipKind string     `json:"partnership_kind,omitempty"`
	RequesterID     string     `json:"requester_id"`
	ApproverID      string     `json:"approver_id"`
	Status          string     `json:"status"`
	CreatedAt       time.Time  `json:"created_at"`
	DecidedAt       *time.Time `json:"decided_at,omitempty"`
}

func toRequestResponse(r *model.RelationshipRequest) *RequestResponse {
	if r == nil {
		return nil
	}
	return &RequestResponse{
		ID:              r.ID,
		Kind:            string(r.Kind),
		FromPersonID:    r.FromPersonID,
		ToPersonID:      r.ToPersonID,
		Role:            string(r.Role),
		EdgeKind:        string(r.PCKind),
		PartnershipKind: string(r.PartnershipKind),
		RequesterID:     r.RequesterID,
		ApproverID:      r.ApproverID,
		Status:          string(r.Status),
		CreatedAt:       r.CreatedAt,
		DecidedAt:       r.DecidedAt,
	}
}

// PartnershipResponse is a stored partnership.
type PartnershipResponse struct {
	ID     string `json:"id"`
	AID    string `json:"a_id"`
	BID    string `json:"b_id"`
	Kind   string `json:"kind"`
	Status string `json:"status"`
}

func toPartnershipResponse(p *model.Partnership) *PartnershipResponse {
	if p == nil {
		return nil
	}
	return &PartnershipResponse{
		ID:     p.ID,
		AID:    p.AID,
		BID:    p.BID,
		Kind:   string(p.Kind),
		Status: string(p.Status),
	}
}

const (
	statusApplied = "applied"
	statusPending = "pending"
)

// MutationResponse reports whether a change was applied now or is pending
// another owner's approval.
type MutationResponse struct {
	Status      string               `json:"status" enums:"applied,pending"`
	Edge        *EdgeResponse        `json:"edge,omitempty"`
	Partnership *PartnershipResponse `json:"partnership,omitempty"`
	Request     *RequestResponse     `json:"request,omitempty"`
}

// UnlinkResponse reports how many edges were removed.
type UnlinkResponse struct {
	Removed int `json:"removed"`
}

// DecisionResponse is the decided request and what approval created.
type DecisionResponse struct {
	Request     *RequestResponse     `json:"request"`
	Edge        *EdgeResponse        `json:"edge,omitempty"`
	Partnership *PartnershipResponse `json:"partnership,omitempty"`
}

func toDecisionResponse(res *family.DecisionResult) DecisionResponse {
	out := DecisionResponse{
		Request:     toRequestResponse(res.Request),
		Partnership: toPartnershipResponse(res.Partnership),
	}
	if res.Edge != nil {
		e := toEdgeResponse(*res.Edge)
		out.Edge = &e
	}
	return out
}
