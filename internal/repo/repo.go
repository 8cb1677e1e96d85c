// Package repo contains all database access logic for the reservation engine.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here: only SQL, type mapping, and translation of
// Postgres constraint violations into domain errors.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"github.com/pkordes/hotel-reservations/backend/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// beginner is satisfied by *pgxpool.Pool and by pgx.Tx (as a savepoint).
type beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Repos groups the repositories bound to one transaction.
type Repos struct {
	Rooms        RoomRepo
	Reservations ReservationRepo
}

// Transactor runs fn inside a single database transaction. The transaction
// commits when fn returns nil and rolls back otherwise, so a service that
// returns an error from fn never leaves a partial write behind.
type Transactor interface {
	InTx(ctx context.Context, fn func(Repos) error) error
}

// Store is the Postgres Transactor.
type Store struct {
	conn beginner
}

// NewStore constructs a Store. In production pass *pgxpool.Pool; in tests a
// pgx.Tx works too, in which case every InTx becomes a savepoint.
func NewStore(conn beginner) *Store {
	return &Store{conn: conn}
}

// InTx implements Transactor.
func (s *Store) InTx(ctx context.Context, fn func(Repos) error) error {
	return pgx.BeginFunc(ctx, s.conn, func(tx pgx.Tx) error {
		return fn(Repos{
			Rooms:        NewRoomRepo(tx),
			Reservations: NewReservationRepo(tx),
		})
	})
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing scan helpers
// to be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// Postgres SQLSTATE codes translated into domain errors.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeExclusionViolation  = "23P01"
	codeCheckViolation      = "23514"
)

// translate maps constraint violations to domain sentinels and passes every
// other error through unchanged.
func translate(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case codeExclusionViolation:
		return fmt.Errorf("%w: %s", domain.ErrConflict, pgErr.ConstraintName)
	case codeUniqueViolation:
		return fmt.Errorf("%w: %s", domain.ErrDuplicate, pgErr.ConstraintName)
	case codeForeignKeyViolation:
		return fmt.Errorf("%w: %s", domain.ErrNotFound, pgErr.ConstraintName)
	case codeCheckViolation:
		return fmt.Errorf("%w: %s", domain.ErrValidation, pgErr.ConstraintName)
	}
	return err
}

// Money is stored as BIGINT minor units.
func toCents(d decimal.Decimal) int64 {
	return d.Shift(2).Round(0).IntPart()
}

func fromCents(c int64) decimal.Decimal {
	return decimal.New(c, -2)
}
