package core

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotFound reports that an update or lookup targeted a row that does
// not exist. Handlers map it to 404; anything else is a server fault.
var ErrNotFound = errors.New("not found")

// DB is the slice of pgxpool.Pool the services depend on.
type DB interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}
