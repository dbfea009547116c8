package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mtlprog/whanau/internal/database"
	"github.com/mtlprog/whanau/internal/model"
)

// PartnershipRepository handles partnership data access.
type PartnershipRepository struct {
	pool *pgxpool.Pool
}

// NewPartnershipRepository creates a new partnership repository.
// Returns error if pool is nil.
func NewPartnershipRepository(pool *pgxpool.Pool) (*PartnershipRepository, error) {
	if pool == nil {
		return nil, errors.New("database pool is required")
	}
	return &PartnershipRepository{pool: pool}, nil
}

func upsertPartnershipQuery(p model.Partnership) sq.InsertBuilder {
	return database.QB.
		Insert("partnerships").
		Columns("id", "a_id", "b_id", "kind", "status", "start_date", "end_date", "created_by_id").
		Values(p.ID, p.AID, p.BID, string(p.Kind), string(p.Status), p.StartDate, p.EndDate, p.CreatedByID).
		Suffix("ON CONFLICT (a_id, b_id) DO UPDATE SET " +
			"kind = EXCLUDED.kind, status = EXCLUDED.status, " +
			"start_date = COALESCE(EXCLUDED.start_date, partnerships.start_date), " +
			"end_date = COALESCE(EXCLUDED.end_date, partnerships.end_date) " +
			"RETURNING id")
}

// UpsertPartnership stores p keyed on its canonical (AID, BID) pair and
// returns the stored row id.
func (r *PartnershipRepository) UpsertPartnership(ctx context.Context, p model.Partnership) (*model.Partnership, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	query, args, err := upsertPartnershipQuery(p).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build upsert partnership query: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&p.ID); err != nil {
		return nil, fmt.Errorf("upsert partnership: %w", err)
	}
	return &p, nil
}
