package sql

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"

	"github.com/shpandrak/shpanzip/zip"
)

// QueryRows creates a producer over the rows of a query. The query runs when the producer is opened.
// Rows are released as soon as the result set is exhausted, Close releases them otherwise.
func QueryRows[T any](
	dbProvider func() (*sql.DB, error),
	query string,
	paramVals []any,
	scanner func(*sql.Rows) (T, error),
) zip.Producer[T] {
	db, err := dbProvider()
	if err != nil {
		return zip.Error[T](fmt.Errorf("failed to get db for sql query producer: %w", err))
	}
	return &rowsProducer[T]{
		db:      db,
		query:   query,
		args:    paramVals,
		scanner: scanner,
	}
}

type rowsProducer[T any] struct {
	db      *sql.DB
	query   string
	args    []any
	scanner func(*sql.Rows) (T, error)

	rows *sql.Rows
	read int
	done bool
}

func (p *rowsProducer[T]) Open(ctx context.Context) error {
	rows, err := p.db.QueryContext(ctx, p.query, p.args...)
	if err != nil {
		return fmt.Errorf("failed opening sql query producer: %w", err)
	}
	p.rows = rows
	p.read = 0
	p.done = false
	return nil
}

func (p *rowsProducer[T]) Close() {
	p.release()
}

func (p *rowsProducer[T]) release() {
	if p.rows == nil {
		return
	}
	if err := p.rows.Close(); err != nil {
		slog.Warn("failed closing sql rows", "query", p.query, "read", p.read, "error", err)
	}
	p.rows = nil
}

func (p *rowsProducer[T]) Emit(ctx context.Context) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	if p.done {
		return zero, io.EOF
	}
	if p.rows == nil {
		return zero, sql.ErrConnDone
	}
	if !p.rows.Next() {
		err := p.rows.Err()
		p.release()
		if err != nil {
			return zero, fmt.Errorf("error reading row %d from sql query producer: %w", p.read, err)
		}
		p.done = true
		return zero, io.EOF
	}
	v, err := p.scanner(p.rows)
	if err != nil {
		return zero, err
	}
	p.read++
	return v, nil
}

// SizeHint is unknown while rows remain, database/sql does not expose row counts before reading them.
func (p *rowsProducer[T]) SizeHint() zip.SizeHint {
	if p.done {
		return zip.Exact(0)
	}
	return zip.UnknownSize()
}
