package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/GrammoRPG_Go/internal/domain"
	"github.com/osse101/GrammoRPG_Go/internal/metrics"
	"github.com/osse101/GrammoRPG_Go/internal/repository"
)

// table implements repository.CRUD over one entity table. Writes are single
// statements: an INSERT returning the key, or an UPDATE/DELETE conditioned on
// the key whose affected-row count decides absence.
type table[E any, In any, ID any] struct {
	db       *pgxpool.Pool
	entity   string
	name     string
	idColumn string
	// columns is the select list, in the order scan expects
	columns string
	orderBy string
	scan    func(row pgx.Row) (E, error)

	// writeColumns are the mutable columns, in the order values returns them
	writeColumns []string
	values       func(in In) []any
}

func (t *table[E, In, ID]) GetByID(ctx context.Context, id ID) (e *E, err error) {
	defer func(start time.Time) { t.observe(opGetByID, start, err) }(time.Now())
	return t.getByID(ctx, id)
}

func (t *table[E, In, ID]) GetAll(ctx context.Context) (out []E, err error) {
	defer func(start time.Time) { t.observe(opGetAll, start, err) }(time.Now())
	return t.getAll(ctx)
}

func (t *table[E, In, ID]) Add(ctx context.Context, in In) (e *E, err error) {
	defer func(start time.Time) { t.observe(opAdd, start, err) }(time.Now())
	return t.insert(ctx, in)
}

func (t *table[E, In, ID]) Update(ctx context.Context, id ID, in In) (e *E, err error) {
	defer func(start time.Time) { t.observe(opUpdate, start, err) }(time.Now())
	return t.update(ctx, id, in)
}

func (t *table[E, In, ID]) Delete(ctx context.Context, id ID) (deleted bool, err error) {
	defer func(start time.Time) { t.observe(opDelete, start, err) }(time.Now())
	return t.delete(ctx, id)
}

func (t *table[E, In, ID]) selectSQL(where string) string {
	q := fmt.Sprintf("SELECT %s FROM %s", t.columns, t.name)
	if where != "" {
		q += " WHERE " + where
	}
	return q
}

func (t *table[E, In, ID]) getByID(ctx context.Context, id ID) (*E, error) {
	row := t.db.QueryRow(ctx, t.selectSQL(t.idColumn+" = $1"), id)
	e, err := t.scan(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s %s: %w", ErrMsgFailedToGet, t.entity, err)
	}
	return &e, nil
}

// fromRow adapts a generated single-row lookup: no row is absence, anything
// else is a storage failure.
func fromRow[R any, E any](entity, by string, row R, err error, convert func(R) E) (*E, error) {
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s %s by %s: %w", ErrMsgFailedToGet, entity, by, err)
	}
	e := convert(row)
	return &e, nil
}

func (t *table[E, In, ID]) getAll(ctx context.Context) ([]E, error) {
	rows, err := t.db.Query(ctx, t.selectSQL("")+" ORDER BY "+t.orderBy)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", ErrMsgFailedToList, t.entity, err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (E, error) {
		return t.scan(row)
	})
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", ErrMsgFailedToScan, t.entity, err)
	}
	if out == nil {
		out = []E{}
	}
	return out, nil
}

// insert runs an INSERT ... RETURNING <id> and reads the row back
func (t *table[E, In, ID]) insert(ctx context.Context, in In) (*E, error) {
	args := t.values(in)
	placeholders := make([]string, len(args))
	for i := range args {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	q := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		t.name, strings.Join(t.writeColumns, ", "), strings.Join(placeholders, ", "), t.idColumn)

	var id ID
	if err := t.db.QueryRow(ctx, q, args...).Scan(&id); err != nil {
		return nil, t.translate(err, opAdd)
	}
	return t.getByID(ctx, id)
}

// update runs an UPDATE over every mutable column. A missing id leaves the
// table unchanged and returns nil.
func (t *table[E, In, ID]) update(ctx context.Context, id ID, in In) (*E, error) {
	set := make([]string, len(t.writeColumns))
	for i, c := range t.writeColumns {
		set[i] = fmt.Sprintf("%s = $%d", c, i+2)
	}
	q := fmt.Sprintf("UPDATE %s SET %s WHERE %s = $1", t.name, strings.Join(set, ", "), t.idColumn)

	tag, err := t.db.Exec(ctx, q, append([]any{id}, t.values(in)...)...)
	if err != nil {
		return nil, t.translate(err, opUpdate)
	}
	if tag.RowsAffected() == 0 {
		return nil, nil
	}
	return t.getByID(ctx, id)
}

func (t *table[E, In, ID]) delete(ctx context.Context, id ID) (bool, error) {
	q := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", t.name, t.idColumn)
	tag, err := t.db.Exec(ctx, q, id)
	if err != nil {
		return false, t.translate(err, opDelete)
	}
	return tag.RowsAffected() > 0, nil
}

// translate maps constraint violations to domain errors and wraps anything
// else as a storage failure.
func (t *table[E, In, ID]) translate(err error, op string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case PgErrorCodeUniqueViolation:
			switch pgErr.ConstraintName {
			case ConstraintPlayersName:
				return fmt.Errorf("%w: %s", domain.ErrDuplicateName, t.entity)
			case ConstraintUsersEmail:
				return fmt.Errorf("%w: %s", domain.ErrDuplicateEmail, t.entity)
			}
		case PgErrorCodeForeignKeyViolation:
			if op == opDelete {
				return fmt.Errorf("%w: %s", domain.ErrStillReferenced, t.entity)
			}
			return fmt.Errorf("%w: %s", domain.ErrInvalidReference, pgErr.ConstraintName)
		case PgErrorCodeCheckViolation, PgErrorCodeNotNullViolation,
			PgErrorCodeStringTooLong, PgErrorCodeNumericOutOfRange:
			return fmt.Errorf("%w: %s", domain.ErrInvalidInput, pgErr.Message)
		}
	}

	msg := ErrMsgFailedToInsert
	switch op {
	case opUpdate:
		msg = ErrMsgFailedToUpdate
	case opDelete:
		msg = ErrMsgFailedToDelete
	}
	return fmt.Errorf("%s %s: %w", msg, t.entity, err)
}

// observe records the latency of op. Domain errors are not storage failures.
func (t *table[E, In, ID]) observe(op string, start time.Time, err error) {
	metrics.ObserveRepository(t.entity, op, start, err != nil && !isDomainError(err))
}

func isDomainError(err error) bool {
	return errors.Is(err, domain.ErrDuplicateName) ||
		errors.Is(err, domain.ErrDuplicateEmail) ||
		errors.Is(err, domain.ErrInvalidReference) ||
		errors.Is(err, domain.ErrStillReferenced) ||
		errors.Is(err, domain.ErrInvalidInput)
}

var (
	_ repository.Player    = (*PlayerRepository)(nil)
	_ repository.Item      = (*ItemRepository)(nil)
	_ repository.Inventory = (*InventoryRepository)(nil)
	_ repository.Character = (*CharacterRepository)(nil)
	_ repository.Market    = (*MarketRepository)(nil)
	_ repository.User      = (*UserRepository)(nil)
)
