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

// edgeLockKey serialises guarded edge mutations across connections.
const edgeLockKey int64 = 0x77686e75 // "whnu"

// EdgeRepository implements kinship.EdgeStore and lists edges for tree views.
type EdgeRepository struct {
	pool *pgxpool.Pool
}

// NewEdgeRepository creates a new edge repository.
// Returns error if pool is nil.
func NewEdgeRepository(pool *pgxpool.Pool) (*EdgeRepository, error) {
	if pool == nil {
		return nil, errors.New("database pool is required")
	}
	return &EdgeRepository{pool: pool}, nil
}

// WithTx runs fn in a SERIALIZABLE transaction holding a transaction-scoped
// advisory lock, so the cycle check and the write see the same graph.
func (r *EdgeRepository) WithTx(ctx context.Context, fn func(tx kinship.EdgeTx) error) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, "SELECT pg_advisory_xact_lock($1)", edgeLockKey); err != nil {
		return fmt.Errorf("acquire edge lock: %w", err)
	}

	if err := fn(&edgeTx{tx: tx}); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// ListEdges returns all active edges, oldest first.
func (r *EdgeRepository) ListEdges(ctx context.Context) ([]model.ParentChildEdge, error) {
	query, args, err := activeEdges(edgeColumns...).
		OrderBy("e.created_at", "e.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build edges query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query edges: %w", err)
	}
	defer rows.Close()

	var edges []model.ParentChildEdge
	for rows.Next() {
		var e model.ParentChildEdge
		if err := rows.Scan(&e.ID, &e.ParentID, &e.ChildID, &e.Role, &e.Kind, &e.CreatedByID, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan edge: %w", err)
		}
		edges = append(edges, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate edge rows: %w", err)
	}
	return edges, nil
}

func getEdgeQuery(id string) sq.SelectBuilder {
	return activeEdges(edgeColumns...).Where(sq.Eq{"e.id": id})
}

// GetEdge returns an active edge or kinship.ErrEdgeNotFound.
func (r *EdgeRepository) GetEdge(ctx context.Context, id string) (*model.ParentChildEdge, error) {
	query, args, err := getEdgeQuery(id).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build edge query: %w", err)
	}

	var e model.ParentChildEdge
	err = r.pool.QueryRow(ctx, query, args...).
		Scan(&e.ID, &e.ParentID, &e.ChildID, &e.Role, &e.Kind, &e.CreatedByID, &e.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, kinship.ErrEdgeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get edge: %w", err)
	}
	return &e, nil
}

var edgeColumns = []string{"e.id", "e.parent_id", "e.child_id", "e.role", "e.kind", "e.created_by_id", "e.created_at"}

type edgeTx struct {
	tx pgx.Tx
}

func (t *edgeTx) PersonExists(ctx context.Context, personID string) (bool, error) {
	query, args, err := personExistsQuery(personID).ToSql()
	if err != nil {
		return false, fmt.Errorf("build person exists query: %w", err)
	}

	var exists bool
	if err := t.tx.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("query person exists: %w", err)
	}
	return exists, nil
}

func personExistsQuery(personID string) sq.SelectBuilder {
	sub := database.QB.
		Select("1").
		From("people p").
		Where(sq.Eq{"p.id": personID}).
		Where(database.Active("p"))
	return database.QB.Select().Column(sq.Expr("EXISTS (?)", sub))
}

func (t *edgeTx) ParentsOf(ctx context.Context, childID string) ([]kinship.ParentLink, error) {
	return queryParents(ctx, t.tx, childID)
}

// upsertEdgeQuery relies on the partial unique index over active
// (parent_id, child_id, kind).
func upsertEdgeQuery(e model.ParentChildEdge) sq.InsertBuilder {
	return database.QB.
		Insert("parent_child_edges").
		Columns("id", "parent_id", "child_id", "role", "kind", "created_by_id", "created_at").
		Values(e.ID, e.ParentID, e.ChildID, e.Role, e.Kind, e.CreatedByID, e.CreatedAt).
		Suffix("ON CONFLICT (parent_id, child_id, kind) WHERE deleted_at IS NULL DO UPDATE SET role = EXCLUDED.role " +
			"RETURNING id, parent_id, child_id, role, kind, created_by_id, created_at")
}

func (t *edgeTx) UpsertEdge(ctx context.Context, edge model.ParentChildEdge) (*model.ParentChildEdge, error) {
	if edge.ID == "" {
		edge.ID = uuid.NewString()
	}
	if edge.CreatedAt.IsZero() {
		edge.CreatedAt = time.Now().UTC()
	}

	query, args, err := upsertEdgeQuery(edge).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build upsert edge query: %w", err)
	}

	var saved model.ParentChildEdge
	err = t.tx.QueryRow(ctx, query, args...).Scan(
		&saved.ID, &saved.ParentID, &saved.ChildID, &saved.Role, &saved.Kind, &saved.CreatedByID, &saved.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("upsert edge: %w", err)
	}
	return &saved, nil
}

func deleteEdgesQuery(sel kinship.EdgeSelector, at time.Time) sq.UpdateBuilder {
	q := database.QB.
		Update("parent_child_edges").
		Set("deleted_at", at).
		Where(sq.Eq{"deleted_at": nil})
	if sel.EdgeID != "" {
		return q.Where(sq.Eq{"id": sel.EdgeID})
	}
	q = q.Where(sq.Eq{"parent_id": sel.ParentID, "child_id": sel.ChildID})
	if sel.Kind != "" {
		q = q.Where(sq.Eq{"kind": sel.Kind})
	}
	return q
}

func (t *edgeTx) DeleteEdges(ctx context.Context, sel kinship.EdgeSelector) (int, error) {
	query, args, err := deleteEdgesQuery(sel, time.Now().UTC()).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete edges query: %w", err)
	}

	tag, err := t.tx.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete edges: %w", err)
	}
	return int(tag.RowsAffected()), nil
}
