package api

import (
	"net/http"
	"strings"

	"github.com/mtlprog/whanau/internal/family"
	"github.com/mtlprog/whanau/internal/kinship"
	"github.com/mtlprog/whanau/internal/model"
	"github.com/samber/lo"
)

// GetPerson handles GET /api/v1/people/{id}.
//
//	@Summary		Get person
//	@Description	Returns a person with notes rendered to sanitized HTML
//	@Tags			people
//	@Produce		json
//	@Param			id	path		string	true	"Person ID"
//	@Success		200	{object}	PersonResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/api/v1/people/{id} [get]
func (h *Handler) GetPerson(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	p, err := h.family.Person(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, r, "get person", err)
		return
	}

	resp := toPersonResponse(p.Person)
	resp.NotesHTML = string(p.NotesHTML)
	h.writeJSON(w, http.StatusOK, resp)
}

// GetAncestors handles GET /api/v1/people/{id}/ancestors.
//
//	@Summary		List ancestors
//	@Description	Returns every ancestor within the configured depth with the minimum generation distance
//	@Tags			people
//	@Produce		json
//	@Param			id	path		string	true	"Person ID"
//	@Success		200	{object}	AncestorsResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/api/v1/people/{id}/ancestors [get]
func (h *Handler) GetAncestors(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	entries, err := h.family.Ancestors(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, r, "list ancestors", err)
		return
	}

	h.writeJSON(w, http.StatusOK, AncestorsResponse{
		PersonID: id,
		Ancestors: lo.Map(entries, func(e family.AncestorEntry, _ int) AncestorResponse {
			return AncestorResponse{PersonID: e.PersonID, Distance: e.Distance, Whangai: e.Whangai}
		}),
	})
}

// GetRelationship handles GET /api/v1/people/{id}/relationship/{other}.
//
//	@Summary		Describe relationship
//	@Description	Returns what {other} is to {id}, e.g. "grandmother" or "first cousin once removed"
//	@Tags			people
//	@Produce		json
//	@Param			id		path		string	true	"Person ID"
//	@Param			other	path		string	true	"Other person ID"
//	@Success		200		{object}	RelationshipResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/api/v1/people/{id}/relationship/{other} [get]
func (h *Handler) GetRelationship(w http.ResponseWriter, r *http.Request) {
	id, other := r.PathValue("id"), r.PathValue("other")

	rel, err := h.family.Describe(r.Context(), id, other)
	if err != nil {
		h.writeServiceError(w, r, "describe relationship", err)
		return
	}

	h.writeJSON(w, http.StatusOK, toRelationshipResponse(id, other, rel))
}

// GetLine handles GET /api/v1/people/{id}/line.
//
//	@Summary		Ancestral line
//	@Description	Walks the maternal line, the paternal line, both, or a single line through any parent (ANY)
//	@Tags			people
//	@Produce		json
//	@Param			id		path		string	true	"Person ID"
//	@Param			which	query		string	false	"Line to follow"	Enums(MATERNAL, PATERNAL, BOTH, ANY)	default(BOTH)
//	@Param			view	query		string	false	"Edge view"			Enums(ALL, BIOLOGICAL, WHANGAI)	default(ALL)
//	@Param			depth	query		int		false	"Maximum generations"
//	@Success		200		{object}	LineResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/api/v1/people/{id}/line [get]
func (h *Handler) GetLine(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	mode, err := kinship.ParseLineMode(r.URL.Query().Get("which"))
	if err != nil {
		h.writeServiceError(w, r, "line", err)
		return
	}
	view, err := kinship.ParseViewKind(r.URL.Query().Get("view"))
	if err != nil {
		h.writeServiceError(w, r, "line", err)
		return
	}
	depth := parseIntParam(r, "depth", 0, maxDepthParam)

	res, err := h.family.Line(r.Context(), id, mode, view, depth)
	if err != nil {
		h.writeServiceError(w, r, "line", err)
		return
	}

	h.writeJSON(w, http.StatusOK, toLineResponse(id, string(mode), res))
}

// GetLineage handles GET /api/v1/people/{id}/lineage.
//
//	@Summary		Lineage highlight
//	@Description	Returns every ancestor and descendant of a person with the edges between them
//	@Tags			people
//	@Produce		json
//	@Param			id		path		string	true	"Person ID"
//	@Param			view	query		string	false	"Edge view"	Enums(ALL, BIOLOGICAL, WHANGAI)	default(ALL)
//	@Param			depth	query		int		false	"Maximum generations in each direction"
//	@Success		200		{object}	LineResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/api/v1/people/{id}/lineage [get]
func (h *Handler) GetLineage(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	view, err := kinship.ParseViewKind(r.URL.Query().Get("view"))
	if err != nil {
		h.writeServiceError(w, r, "lineage", err)
		return
	}
	depth := parseIntParam(r, "depth", 0, maxDepthParam)

	res, err := h.family.Lineage(r.Context(), id, view, depth)
	if err != nil {
		h.writeServiceError(w, r, "lineage", err)
		return
	}

	h.writeJSON(w, http.StatusOK, toLineResponse(id, "", res))
}

// GetTree handles GET /api/v1/tree.
//
//	@Summary		Family tree
//	@Description	Returns every person and the parent-child edges selected for a view
//	@Tags			tree
//	@Produce		json
//	@Param			view	query		string	false	"Edge view"	Enums(ALL, BIOLOGICAL, WHANGAI)	default(ALL)
//	@Success		200		{object}	TreeResponse
//	@Failure		422		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/api/v1/tree [get]
func (h *Handler) GetTree(w http.ResponseWriter, r *http.Request) {
	view, err := kinship.ParseViewKind(strings.TrimSpace(r.URL.Query().Get("view")))
	if err != nil {
		h.writeServiceError(w, r, "tree", err)
		return
	}

	tree, err := h.family.Tree(r.Context(), view)
	if err != nil {
		h.writeServiceError(w, r, "tree", err)
		return
	}

	h.writeJSON(w, http.StatusOK, TreeResponse{
		View:   string(tree.View),
		People: lo.Map(tree.People, func(p model.Person, _ int) PersonResponse { return toPersonResponse(p) }),
		Edges:  lo.Map(tree.Edges, func(e model.ParentChildEdge, _ int) EdgeResponse { return toEdgeResponse(e) }),
	})
}
