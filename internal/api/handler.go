// Package api serves the family graph over JSON HTTP.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"

	_ "github.com/mtlprog/whanau/internal/docs" // registers the swagger spec
	"github.com/mtlprog/whanau/internal/family"
	"github.com/mtlprog/whanau/internal/kinship"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

const (
	// maxBodyBytes bounds JSON request bodies.
	maxBodyBytes = 1 << 20
	// maxDepthParam caps the depth query parameter.
	maxDepthParam = 64

	headerUserID    = "X-User-ID"
	headerUserAdmin = "X-User-Admin"
)

// FamilyService is the boundary the handlers call.
type FamilyService interface {
	Person(ctx context.Context, id string) (*family.PersonView, error)
	Ancestors(ctx context.Context, id string) ([]family.AncestorEntry, error)
	Describe(ctx context.Context, a, b string) (kinship.Relationship, error)
	Line(ctx context.Context, id string, mode kinship.LineMode, view kinship.ViewKind, depth int) (kinship.LineResult, error)
	Lineage(ctx context.Context, id string, view kinship.ViewKind, depth int) (kinship.LineResult, error)
	Tree(ctx context.Context, view kinship.ViewKind) (*family.TreeView, error)
	LinkParentChild(ctx context.Context, actor family.Actor, in family.LinkInput) (*family.LinkResult, error)
	UnlinkParentChild(ctx context.Context, actor family.Actor, req kinship.UnlinkRequest) (int, error)
	LinkPartners(ctx context.Context, actor family.Actor, in family.PartnerInput) (*family.PartnerResult, error)
	DecideRequest(ctx context.Context, actor family.Actor, id string, decision family.Decision) (*family.DecisionResult, error)
}

// Handler holds dependencies for API handlers.
type Handler struct {
	family     FamilyService
	logger     *slog.Logger
	bufferPool *sync.Pool // Pool of bytes.Buffer for JSON encoding
}

// New creates a new API Handler.
func New(svc FamilyService, logger *slog.Logger) (*Handler, error) {
	if svc == nil {
		return nil, errors.New("family service is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		family: svc,
		logger: logger.With("component", "api"),
		bufferPool: &sync.Pool{
			New: func() any {
				return new(bytes.Buffer)
			},
		},
	}, nil
}

// RegisterRoutes registers all API routes on the given mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/people/{id}", h.GetPerson)
	mux.HandleFunc("GET /api/v1/people/{id}/ancestors", h.GetAncestors)
	mux.HandleFunc("GET /api/v1/people/{id}/relationship/{other}", h.GetRelationship)
	mux.HandleFunc("GET /api/v1/people/{id}/line", h.GetLine)
	mux.HandleFunc("GET /api/v1/people/{id}/lineage", h.GetLineage)
	mux.HandleFunc("GET /api/v1/tree", h.GetTree)
	mux.HandleFunc("POST /api/v1/edges", h.CreateEdge)
	mux.HandleFunc("DELETE /api/v1/edges", h.DeleteEdges)
	mux.HandleFunc("POST /api/v1/partnerships", h.CreatePartnership)
	mux.HandleFunc("POST /api/v1/requests/{id}/{decision}", h.DecideRequest)
	mux.Handle("GET /swagger/", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data any) {
	buf := h.bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		h.bufferPool.Put(buf)
	}()

	if err := json.NewEncoder(buf).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", "error", err)
		http.Error(w, `{"error":"internal server error","code":500}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Error("failed to write JSON response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, ErrorResponse{
		Error: msg,
		Code:  status,
	})
}

// writeServiceError maps kinship and family errors to HTTP statuses.
// Unexpected errors are logged and reported as 500 without detail.
func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	var verr *kinship.ValidationError
	switch {
	case errors.Is(err, kinship.ErrPersonNotFound),
		errors.Is(err, kinship.ErrEdgeNotFound),
		errors.Is(err, kinship.ErrRequestNotFound):
		h.writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, kinship.ErrSelfLink),
		errors.Is(err, kinship.ErrCycleDetected),
		errors.As(err, &verr):
		h.writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, kinship.ErrForbidden):
		h.writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, context.Canceled):
		h.logger.Debug("request canceled", "op", op, "path", r.URL.Path)
	default:
		h.logger.Error("api: "+op+" failed", "path", r.URL.Path, "error", err)
		h.writeError(w, http.StatusInternalServerError, op+" failed")
	}
}

// actor reads the identity set by the upstream auth proxy. Requests without
// X-User-ID get a 401 and ok=false.
func (h *Handler) actor(w http.ResponseWriter, r *http.Request) (family.Actor, bool) {
	id := strings.TrimSpace(r.Header.Get(headerUserID))
	if id == "" {
		h.writeError(w, http.StatusUnauthorized, headerUserID+" header is required")
		return family.Actor{}, false
	}
	admin, _ := strconv.ParseBool(r.Header.Get(headerUserAdmin))
	return family.Actor{ID: id, Admin: admin}, true
}

// decodeJSON reads a single JSON object into dst and writes a 400 on failure.
func (h *Handler) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		h.writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return false
	}
	return true
}

func parseIntParam(r *http.Request, name string, defaultVal, maxVal int) int {
	s := r.URL.Query().Get(name)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return defaultVal
	}
	if maxVal > 0 && v > maxVal {
		return maxVal
	}
	return v
}
