// Package family coordinates the kinship engine with the people, edge,
// partnership and request stores. It owns the authorization rules: the
// role/gender check, locked people, and cross-owner approval requests.
package family

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/mtlprog/whanau/internal/kinship"
	"github.com/mtlprog/whanau/internal/model"
)

// PersonStore reads people.
type PersonStore interface {
	GetPerson(ctx context.Context, id string) (*model.Person, error)
	ListPeople(ctx context.Context) ([]model.Person, error)
}

// EdgeLister reads active parent-child edges.
type EdgeLister interface {
	ListEdges(ctx context.Context) ([]model.ParentChildEdge, error)
	// GetEdge returns kinship.ErrEdgeNotFound for a missing or deleted edge.
	GetEdge(ctx context.Context, id string) (*model.ParentChildEdge, error)
}

// PartnershipStore persists partnerships keyed on their canonical pair.
type PartnershipStore interface {
	UpsertPartnership(ctx context.Context, p model.Partnership) (*model.Partnership, error)
}

// RequestStore persists relationship requests.
type RequestStore interface {
	CreatePending(ctx context.Context, req model.RelationshipRequest) (*model.RelationshipRequest, error)
	GetRequest(ctx context.Context, id string) (*model.RelationshipRequest, error)
	UpdateStatus(ctx context.Context, req model.RelationshipRequest) error
}

// Actor is the authenticated account performing an operation.
type Actor struct {
	ID    string
	Admin bool
}

// owns reports whether the actor created p.
func (a Actor) owns(p *model.Person) bool {
	return a.ID != "" && p.CreatedByID == a.ID
}

// Deps are the collaborators of a Service. All are required.
type Deps struct {
	People       PersonStore
	Edges        EdgeLister
	Partnerships PartnershipStore
	Requests     RequestStore
	Classifier   *kinship.Classifier
	Guard        *kinship.Guard
}

func (d Deps) validate() error {
	switch {
	case d.People == nil:
		return errors.New("person store is required")
	case d.Edges == nil:
		return errors.New("edge lister is required")
	case d.Partnerships == nil:
		return errors.New("partnership store is required")
	case d.Requests == nil:
		return errors.New("request store is required")
	case d.Classifier == nil:
		return errors.New("classifier is required")
	case d.Guard == nil:
		return errors.New("guard is required")
	}
	return nil
}

// Service is the family boundary used by the HTTP API and the CLI.
type Service struct {
	people       PersonStore
	edges        EdgeLister
	partnerships PartnershipStore
	requests     RequestStore
	classifier   *kinship.Classifier
	guard        *kinship.Guard
	logger       *slog.Logger
	now          func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// New creates a Service.
func New(deps Deps, opts ...Option) (*Service, error) {
	if err := deps.validate(); err != nil {
		return nil, err
	}
	s := &Service{
		people:       deps.People,
		edges:        deps.Edges,
		partnerships: deps.Partnerships,
		requests:     deps.Requests,
		classifier:   deps.Classifier,
		guard:        deps.Guard,
		logger:       slog.Default().With("component", "family"),
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// MaxDepth is the default traversal depth for line and lineage views.
func (s *Service) MaxDepth() int {
	return s.classifier.MaxDepth()
}
