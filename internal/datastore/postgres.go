package datastore

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/qualitydesk/qualitydesk/internal/shared"
)

type dbtx interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
}

// Postgres implements Store on a pgx connection pool.
type Postgres struct {
	db   dbtx
	pool *pgxpool.Pool
}

// NewPostgres wraps an open pool.
func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{db: pool, pool: pool}
}

func (p *Postgres) Select(ctx context.Context, table string, status RowStatus, order Order) ([]Row, error) {
	query := fmt.Sprintf("SELECT * FROM %s WHERE %s = $1 ORDER BY %s %s",
		ident(table), ident(ColumnActive), ident(order.Column), order.direction())
	rows, err := p.db.Query(ctx, query, status.Flag())
	if err != nil {
		return nil, pgFail("select", table, err)
	}
	maps, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, pgFail("select", table, err)
	}
	out := make([]Row, 0, len(maps))
	for _, m := range maps {
		out = append(out, normalize(m))
	}
	return out, nil
}

func (p *Postgres) Insert(ctx context.Context, table string, values map[string]any) error {
	if len(values) == 0 {
		_, err := p.db.Exec(ctx, "INSERT INTO "+ident(table)+" DEFAULT VALUES")
		return pgFail("insert", table, err)
	}
	cols := make([]string, 0, len(values))
	for col := range values {
		cols = append(cols, col)
	}
	sort.Strings(cols)

	names := make([]string, len(cols))
	params := make([]string, len(cols))
	args := make([]interface{}, len(cols))
	for i, col := range cols {
		names[i] = ident(col)
		params[i] = fmt.Sprintf("$%d", i+1)
		args[i] = values[col]
	}
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", ident(table), strings.Join(names, ", "), strings.Join(params, ", "))
	_, err := p.db.Exec(ctx, query, args...)
	return pgFail("insert", table, err)
}

func (p *Postgres) SetStatus(ctx context.Context, table, id string, status RowStatus) error {
	query := fmt.Sprintf("UPDATE %s SET %s = $1 WHERE %s = $2", ident(table), ident(ColumnActive), ident(ColumnID))
	_, err := p.db.Exec(ctx, query, status.Flag(), id)
	return pgFail("update", table, err)
}

func (p *Postgres) Lookup(ctx context.Context, table, field string, ids []string) (map[string]string, error) {
	out := make(map[string]string, len(ids))
	// Keys are uuids; anything else cannot match a row.
	keys := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if key, err := uuid.Parse(id); err == nil {
			keys = append(keys, key)
		}
	}
	if len(keys) == 0 {
		return out, nil
	}
	query := fmt.Sprintf("SELECT %[1]s::text, %[2]s::text FROM %[3]s WHERE %[1]s = ANY($1::uuid[])", ident(ColumnID), ident(field), ident(table))
	rows, err := p.db.Query(ctx, query, keys)
	if err != nil {
		return nil, pgFail("lookup", table, err)
	}
	defer rows.Close()
	for rows.Next() {
		var id string
		var value *string
		if err := rows.Scan(&id, &value); err != nil {
			return nil, pgFail("lookup", table, err)
		}
		if value != nil {
			out[id] = *value
		}
	}
	if err := rows.Err(); err != nil {
		return nil, pgFail("lookup", table, err)
	}
	return out, nil
}

func (p *Postgres) Ping(ctx context.Context) error {
	return pgFail("ping", "", p.pool.Ping(ctx))
}

func (p *Postgres) Close() error {
	p.pool.Close()
	return nil
}

func ident(name string) string {
	return pgx.Identifier{name}.Sanitize()
}

func pgFail(op, table string, err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Detail != "" {
		err = fmt.Errorf("%w: %s", err, pgErr.Detail)
	}
	return shared.NewDataStoreError(op, table, err)
}
