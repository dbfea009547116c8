package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mtlprog/whanau/internal/database"
	"github.com/mtlprog/whanau/internal/kinship"
	"github.com/mtlprog/whanau/internal/model"
)

// RequestRepository handles relationship request data access.
type RequestRepository struct {
	pool *pgxpool.Pool
}

// NewRequestRepository creates a new request repository.
// Returns error if pool is nil.
func NewRequestRepository(pool *pgxpool.Pool) (*RequestRepository, error) {
	if pool == nil {
		return nil, errors.New("database pool is required")
	}
	return &RequestRepository{pool: pool}, nil
}

var requestColumns = []string{
	"id", "kind", "from_person_id", "to_person_id", "role", "pc_kind", "partnership_kind",
	"requester_id", "approver_id", "status", "dedupe_key", "created_at", "decided_at",
}

func scanRequest(row pgx.Row) (*model.RelationshipRequest, error) {
	var req model.RelationshipRequest
	err := row.Scan(
		&req.ID, &req.Kind, &req.FromPersonID, &req.ToPersonID, &req.Role, &req.PCKind, &req.PartnershipKind,
		&req.RequesterID, &req.ApproverID, &req.Status, &req.DedupeKey, &req.CreatedAt, &req.DecidedAt,
	)
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// CreatePending inserts req as PENDING. If a pending request with the same
// dedupe key exists, that request is returned instead.
func (r *RequestRepository) CreatePending(ctx context.Context, req model.RelationshipRequest) (*model.RelationshipRequest, error) {
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	if req.CreatedAt.IsZero() {
		req.CreatedAt = time.Now().UTC()
	}
	req.Status = model.RequestPending

	insert, args, err := database.QB.
		Insert("relationship_requests").
		Columns(requestColumns[:12]...).
		Values(req.ID, string(req.Kind), req.FromPersonID, req.ToPersonID, string(req.Role), string(req.PCKind),
			string(req.PartnershipKind), req.RequesterID, req.ApproverID, string(req.Status), req.DedupeKey, req.CreatedAt).
		Suffix("ON CONFLICT (dedupe_key) WHERE status = 'PENDING' DO NOTHING").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert request query: %w", err)
	}

	if _, err := r.pool.Exec(ctx, insert, args...); err != nil {
		return nil, fmt.Errorf("insert request: %w", err)
	}

	query, args, err := database.QB.
		Select(requestColumns...).
		From("relationship_requests").
		Where(sq.Eq{"dedupe_key": req.DedupeKey, "status": string(model.RequestPending)}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build pending request query: %w", err)
	}

	stored, err := scanRequest(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("query pending request: %w", err)
	}
	return stored, nil
}

// GetRequest returns a request by id or kinship.ErrRequestNotFound.
func (r *RequestRepository) GetRequest(ctx context.Context, id string) (*model.RelationshipRequest, error) {
	query, args, err := database.QB.
		Select(requestColumns...).
		From("relationship_requests").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build request query: %w", err)
	}

	req, err := scanRequest(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, kinship.ErrRequestNotFound
		}
		return nil, fmt.Errorf("query request: %w", err)
	}
	return req, nil
}

// UpdateStatus persists a decided request. Only PENDING rows are updated.
func (r *RequestRepository) UpdateStatus(ctx context.Context, req model.RelationshipRequest) error {
	query, args, err := database.QB.
		Update("relationship_requests").
		Set("status", string(req.Status)).
		Set("decided_at", req.DecidedAt).
		Where(sq.Eq{"id": req.ID, "status": string(model.RequestPending)}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update request query: %w", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return kinship.ErrRequestNotFound
	}
	return nil
}
