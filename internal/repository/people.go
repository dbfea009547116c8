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

// PersonRepository handles person data access.
type PersonRepository struct {
	pool      *pgxpool.Pool
	observers []kinship.PersonObserver
}

// NewPersonRepository creates a new person repository.
// Returns error if pool is nil.
func NewPersonRepository(pool *pgxpool.Pool) (*PersonRepository, error) {
	if pool == nil {
		return nil, errors.New("database pool is required")
	}
	return &PersonRepository{pool: pool}, nil
}

var personColumns = []string{
	"p.id", "p.first_name", "p.last_name", "p.display_name", "p.gender",
	"p.birth_date", "p.death_date", "p.notes", "p.image_url", "p.locked", "p.created_by_id",
}

func activePeople() sq.SelectBuilder {
	return database.QB.
		Select(personColumns...).
		From("people p").
		Where(database.Active("p"))
}

func scanPerson(row pgx.Row) (*model.Person, error) {
	var p model.Person
	var gender string
	err := row.Scan(
		&p.ID, &p.FirstName, &p.LastName, &p.DisplayName, &gender,
		&p.BirthDate, &p.DeathDate, &p.Notes, &p.ImageURL, &p.Locked, &p.CreatedByID,
	)
	if err != nil {
		return nil, err
	}
	p.Gender = model.ParseGender(gender)
	return &p, nil
}

// GetPerson returns an active person or kinship.ErrPersonNotFound.
func (r *PersonRepository) GetPerson(ctx context.Context, id string) (*model.Person, error) {
	query, args, err := activePeople().Where(sq.Eq{"p.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build person query: %w", err)
	}

	p, err := scanPerson(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", kinship.ErrPersonNotFound, id)
		}
		return nil, fmt.Errorf("query person: %w", err)
	}
	return p, nil
}

// ListPeople returns all active people ordered by name.
func (r *PersonRepository) ListPeople(ctx context.Context) ([]model.Person, error) {
	query, args, err := activePeople().OrderBy("p.last_name", "p.first_name", "p.id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build people query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query people: %w", err)
	}
	defer rows.Close()

	var people []model.Person
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, fmt.Errorf("scan person: %w", err)
		}
		people = append(people, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate people rows: %w", err)
	}
	return people, nil
}

// CreatePerson inserts p, assigning an id when empty.
func (r *PersonRepository) CreatePerson(ctx context.Context, p model.Person) (*model.Person, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if !p.Gender.IsValid() {
		p.Gender = model.GenderUnknown
	}

	query, args, err := database.QB.
		Insert("people").
		Columns("id", "first_name", "last_name", "display_name", "gender",
			"birth_date", "death_date", "notes", "image_url", "locked", "created_by_id").
		Values(p.ID, p.FirstName, p.LastName, p.DisplayName, string(p.Gender),
			p.BirthDate, p.DeathDate, p.Notes, p.ImageURL, p.Locked, p.CreatedByID).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert person query: %w", err)
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("insert person: %w", err)
	}
	return &p, nil
}

// Observe registers o for soft deletes made through this repository.
// Call it while wiring, before the repository is shared.
func (r *PersonRepository) Observe(o kinship.PersonObserver) {
	r.observers = append(r.observers, o)
}

func softDeletePersonQuery(id string, at time.Time) sq.UpdateBuilder {
	return database.QB.
		Update("people").
		Set("deleted_at", at).
		Where(sq.Eq{"id": id, "deleted_at": nil})
}

// SoftDeletePerson marks a person deleted. Their edges drop out of every
// graph read, and observers are told so cached ancestor maps are refreshed.
func (r *PersonRepository) SoftDeletePerson(ctx context.Context, id string) error {
	query, args, err := softDeletePersonQuery(id, time.Now().UTC()).ToSql()
	if err != nil {
		return fmt.Errorf("build delete person query: %w", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete person: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", kinship.ErrPersonNotFound, id)
	}

	for _, o := range r.observers {
		o.PersonChanged(id, true)
	}
	return nil
}
