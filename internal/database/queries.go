package database

import sq "github.com/Masterminds/squirrel"

// QB is the query builder with PostgreSQL placeholder format.
var QB = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Active matches rows of table alias t that are not soft-deleted.
func Active(t string) sq.Eq {
	return sq.Eq{t + ".deleted_at": nil}
}
