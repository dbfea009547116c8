// Package repository implements the kinship stores on PostgreSQL.
package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mtlprog/whanau/internal/database"
	"github.com/mtlprog/whanau/internal/kinship"
	"github.com/mtlprog/whanau/internal/model"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// activeEdges selects parent_child_edges aliased "e" joined to both live
// endpoints. Every edge query starts here so soft-deleted rows never leak.
func activeEdges(columns ...string) sq.SelectBuilder {
	return database.QB.
		Select(columns...).
		From("parent_child_edges e").
		Join("people pp ON pp.id = e.parent_id").
		Join("people pc ON pc.id = e.child_id").
		Where(database.Active("e")).
		Where(database.Active("pp")).
		Where(database.Active("pc"))
}

// GraphRepository implements kinship.Reader.
type GraphRepository struct {
	pool *pgxpool.Pool
}

// NewGraphRepository creates a new graph repository.
// Returns error if pool is nil.
func NewGraphRepository(pool *pgxpool.Pool) (*GraphRepository, error) {
	if pool == nil {
		return nil, errors.New("database pool is required")
	}
	return &GraphRepository{pool: pool}, nil
}

// ParentsOf implements kinship.Reader.
func (r *GraphRepository) ParentsOf(ctx context.Context, childID string) ([]kinship.ParentLink, error) {
	return queryParents(ctx, r.pool, childID)
}

func parentsQuery(childID string) sq.SelectBuilder {
	return activeEdges("e.parent_id", "e.role", "e.kind").
		Where(sq.Eq{"e.child_id": childID}).
		OrderBy("e.created_at", "e.id")
}

func queryParents(ctx context.Context, q querier, childID string) ([]kinship.ParentLink, error) {
	query, args, err := parentsQuery(childID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build parents query: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query parents: %w", err)
	}
	defer rows.Close()

	var parents []kinship.ParentLink
	for rows.Next() {
		var p kinship.ParentLink
		if err := rows.Scan(&p.ParentID, &p.Role, &p.Kind); err != nil {
			return nil, fmt.Errorf("scan parent: %w", err)
		}
		parents = append(parents, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate parent rows: %w", err)
	}
	return parents, nil
}

func childrenQuery(parentID string) sq.SelectBuilder {
	return activeEdges("e.child_id", "e.role", "e.kind").
		Where(sq.Eq{"e.parent_id": parentID}).
		OrderBy("e.created_at", "e.id")
}

// ChildrenOf implements kinship.Reader.
func (r *GraphRepository) ChildrenOf(ctx context.Context, parentID string) ([]kinship.ChildLink, error) {
	query, args, err := childrenQuery(parentID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build children query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query children: %w", err)
	}
	defer rows.Close()

	var children []kinship.ChildLink
	for rows.Next() {
		var c kinship.ChildLink
		if err := rows.Scan(&c.ChildID, &c.Role, &c.Kind); err != nil {
			return nil, fmt.Errorf("scan child: %w", err)
		}
		children = append(children, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate child rows: %w", err)
	}
	return children, nil
}

// coParentsQuery pairs the person's edges with the other parents of the same
// children. Both sides go through activeEdges. The joined subquery keeps "?"
// placeholders so the outer builder numbers them.
func coParentsQuery(personID string) (string, []any, error) {
	mine, mineArgs, err := activeEdges("e.child_id", "e.kind").
		Where(sq.Eq{"e.parent_id": personID}).
		PlaceholderFormat(sq.Question).
		ToSql()
	if err != nil {
		return "", nil, err
	}

	return database.QB.
		Select("o.parent_id", "bool_or(o.kind = 'WHANGAI' OR m.kind = 'WHANGAI') AS whangai").
		FromSelect(activeEdges("e.parent_id", "e.child_id", "e.kind"), "o").
		JoinClause("JOIN ("+mine+") m ON m.child_id = o.child_id", mineArgs...).
		Where(sq.NotEq{"o.parent_id": personID}).
		GroupBy("o.parent_id").
		OrderBy("o.parent_id").
		ToSql()
}

// CoParentsOf implements kinship.Reader.
func (r *GraphRepository) CoParentsOf(ctx context.Context, personID string) ([]kinship.CoParent, error) {
	query, args, err := coParentsQuery(personID)
	if err != nil {
		return nil, fmt.Errorf("build co-parents query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query co-parents: %w", err)
	}
	defer rows.Close()

	var coParents []kinship.CoParent
	for rows.Next() {
		var c kinship.CoParent
		if err := rows.Scan(&c.CoParentID, &c.Whangai); err != nil {
			return nil, fmt.Errorf("scan co-parent: %w", err)
		}
		coParents = append(coParents, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate co-parent rows: %w", err)
	}
	return coParents, nil
}

// GenderOf implements kinship.Reader.
func (r *GraphRepository) GenderOf(ctx context.Context, personID string) (model.Gender, error) {
	query, args, err := database.QB.
		Select("p.gender").
		From("people p").
		Where(sq.Eq{"p.id": personID}).
		Where(database.Active("p")).
		ToSql()
	if err != nil {
		return model.GenderUnknown, fmt.Errorf("build gender query: %w", err)
	}

	var gender string
	err = r.pool.QueryRow(ctx, query, args...).Scan(&gender)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.GenderUnknown, nil
		}
		return model.GenderUnknown, fmt.Errorf("query gender: %w", err)
	}
	return model.ParseGender(gender), nil
}
