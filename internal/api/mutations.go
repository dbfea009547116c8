package api

import (
	"net/http"
	"strings"

	"github.com/mtlprog/whanau/internal/family"
	"github.com/mtlprog/whanau/internal/kinship"
	"github.com/mtlprog/whanau/internal/model"
)

// CreateEdge handles POST /api/v1/edges.
//
//	@Summary		Link parent and child
//	@Description	Adds or updates a parent-child edge. When the caller owns only one side the change is filed as a request for the other owner and 202 is returned.
//	@Tags			edges
//	@Accept			json
//	@Produce		json
//	@Param			X-User-ID		header		string				true	"Acting account"
//	@Param			X-User-Admin	header		bool				false	"Acting account is an admin"
//	@Param			body			body		CreateEdgeRequest	true	"Edge to create"
//	@Success		201				{object}	MutationResponse
//	@Success		202				{object}	MutationResponse
//	@Failure		400				{object}	ErrorResponse
//	@Failure		401				{object}	ErrorResponse
//	@Failure		403				{object}	ErrorResponse
//	@Failure		404				{object}	ErrorResponse
//	@Failure		422				{object}	ErrorResponse
//	@Failure		500				{object}	ErrorResponse
//	@Router			/api/v1/edges [post]
func (h *Handler) CreateEdge(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	var body CreateEdgeRequest
	if !h.decodeJSON(w, r, &body) {
		return
	}

	res, err := h.family.LinkParentChild(r.Context(), actor, family.LinkInput{
		ParentID: strings.TrimSpace(body.ParentID),
		ChildID:  strings.TrimSpace(body.ChildID),
		Role:     model.ParseRole(body.Role),
		Kind:     model.ParseEdgeKind(body.Kind),
	})
	if err != nil {
		h.writeServiceError(w, r, "link parent and child", err)
		return
	}

	if res.Request != nil {
		h.writeJSON(w, http.StatusAccepted, MutationResponse{Status: statusPending, Request: toRequestResponse(res.Request)})
		return
	}
	edge := toEdgeResponse(*res.Edge)
	h.writeJSON(w, http.StatusCreated, MutationResponse{Status: statusApplied, Edge: &edge})
}

// DeleteEdges handles DELETE /api/v1/edges.
//
//	@Summary		Unlink parent and child
//	@Description	Removes one edge by id, or every edge between a parent and child (optionally only one kind)
//	@Tags			edges
//	@Produce		json
//	@Param			X-User-ID		header		string	true	"Acting account"
//	@Param			X-User-Admin	header		bool	false	"Acting account is an admin"
//	@Param			id				query		string	false	"Edge ID"
//	@Param			parent_id		query		string	false	"Parent ID"
//	@Param			child_id		query		string	false	"Child ID"
//	@Param			kind			query		string	false	"Edge kind"	Enums(BIOLOGICAL, WHANGAI)
//	@Success		200				{object}	UnlinkResponse
//	@Failure		401				{object}	ErrorResponse
//	@Failure		403				{object}	ErrorResponse
//	@Failure		404				{object}	ErrorResponse
//	@Failure		422				{object}	ErrorResponse
//	@Failure		500				{object}	ErrorResponse
//	@Router			/api/v1/edges [delete]
func (h *Handler) DeleteEdges(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	q := r.URL.Query()

	var kind model.EdgeKind
	if k := q.Get("kind"); k != "" {
		kind = model.ParseEdgeKind(k)
	}

	removed, err := h.family.UnlinkParentChild(r.Context(), actor, kinship.UnlinkRequest{
		EdgeID:   strings.TrimSpace(q.Get("id")),
		ParentID: strings.TrimSpace(q.Get("parent_id")),
		ChildID:  strings.TrimSpace(q.Get("child_id")),
		Kind:     kind,
	})
	if err != nil {
		h.writeServiceError(w, r, "unlink parent and child", err)
		return
	}

	h.writeJSON(w, http.StatusOK, UnlinkResponse{Removed: removed})
}

// CreatePartnership handles POST /api/v1/partnerships.
//
//	@Summary		Link partners
//	@Description	Records a partnership between two people, or files a request when the caller owns only one of them
//	@Tags			partnerships
//	@Accept			json
//	@Produce		json
//	@Param			X-User-ID		header		string						true	"Acting account"
//	@Param			X-User-Admin	header		bool						false	"Acting account is an admin"
//	@Param			body			body		CreatePartnershipRequest	true	"Partnership to create"
//	@Success		201				{object}	MutationResponse
//	@Success		202				{object}	MutationResponse
//	@Failure		400				{object}	ErrorResponse
//	@Failure		401				{object}	ErrorResponse
//	@Failure		403				{object}	ErrorResponse
//	@Failure		404				{object}	ErrorResponse
//	@Failure		422				{object}	ErrorResponse
//	@Failure		500				{object}	ErrorResponse
//	@Router			/api/v1/partnerships [post]
func (h *Handler) CreatePartnership(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	var body CreatePartnershipRequest
	if !h.decodeJSON(w, r, &body) {
		return
	}

	res, err := h.family.LinkPartners(r.Context(), actor, family.PartnerInput{
		AID:    body.AID,
		BID:    body.BID,
		Kind:   model.PartnershipKind(strings.ToUpper(strings.TrimSpace(body.Kind))),
		Status: model.PartnershipStatus(strings.ToUpper(strings.TrimSpace(body.Status))),
	})
	if err != nil {
		h.writeServiceError(w, r, "link partners", err)
		return
	}

	if res.Request != nil {
		h.writeJSON(w, http.StatusAccepted, MutationResponse{Status: statusPending, Request: toRequestResponse(res.Request)})
		return
	}
	h.writeJSON(w, http.StatusCreated, MutationResponse{Status: statusApplied, Partnership: toPartnershipResponse(res.Partnership)})
}

// DecideRequest handles POST /api/v1/requests/{id}/{decision}.
//
//	@Summary		Decide request
//	@Description	Approves, rejects or cancels a pending relationship request. Approval applies the proposed change.
//	@Tags			requests
//	@Produce		json
//	@Param			X-User-ID		header		string	true	"Acting account"
//	@Param			X-User-Admin	header		bool	false	"Acting account is an admin"
//	@Param			id				path		string	true	"Request ID"
//	@Param			decision		path		string	true	"Decision"	Enums(approve, reject, cancel)
//	@Success		200				{object}	DecisionResponse
//	@Failure		401				{object}	ErrorResponse
//	@Failure		403				{object}	ErrorResponse
//	@Failure		404				{object}	ErrorResponse
//	@Failure		422				{object}	ErrorResponse
//	@Failure		500				{object}	ErrorResponse
//	@Router			/api/v1/requests/{id}/{decision} [post]
func (h *Handler) DecideRequest(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	decision, err := family.ParseDecision(r.PathValue("decision"))
	if err != nil {
		h.writeServiceError(w, r, "decide request", err)
		return
	}

	res, err := h.family.DecideRequest(r.Context(), actor, r.PathValue("id"), decision)
	if err != nil {
		h.writeServiceError(w, r, "decide request", err)
		return
	}

	h.writeJSON(w, http.StatusOK, toDecisionResponse(res))
}
