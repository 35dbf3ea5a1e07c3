// Package datastore is the client handle for the remote tables behind the console.
//
// Every table carries an id, an is_active soft-delete flag and a created_at
// timestamp. A Store is constructed once at process start and shared read-only by
// all requests; it holds no per-request state.
package datastore

import (
	"context"
	"fmt"
)

// Columns present on every table.
const (
	ColumnID        = "id"
	ColumnActive    = "is_active"
	ColumnCreatedAt = "created_at"
)

// RowStatus is the lifecycle state of a row. Rows are never removed, only moved
// from Active to Inactive.
type RowStatus int

const (
	StatusActive RowStatus = iota + 1
	StatusInactive
)

// StatusFromFlag maps the stored is_active flag to a RowStatus.
func StatusFromFlag(active bool) RowStatus {
	if active {
		return StatusActive
	}
	return StatusInactive
}

// Flag returns the is_active value stored for the status.
func (s RowStatus) Flag() bool {
	return s == StatusActive
}

func (s RowStatus) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusInactive:
		return "inactive"
	default:
		return fmt.Sprintf("RowStatus(%d)", int(s))
	}
}

// Order describes the single sort column of a select.
type Order struct {
	Column string
	Desc   bool
}

func (o Order) direction() string {
	if o.Desc {
		return "DESC"
	}
	return "ASC"
}

// Store is the set of remote operations the console needs. Implementations wrap
// every failure in a *shared.DataStoreError.
type Store interface {
	// Select returns the rows of table in the given status, sorted by order.
	Select(ctx context.Context, table string, status RowStatus, order Order) ([]Row, error)
	// Insert writes one row containing exactly the given columns.
	Insert(ctx context.Context, table string, values map[string]any) error
	// SetStatus moves the row with id to status. A missing id is not an error.
	SetStatus(ctx context.Context, table, id string, status RowStatus) error
	// Lookup resolves ids to the value of field. Ids without a row, or whose
	// field is null, are absent from the result.
	Lookup(ctx context.Context, table, field string, ids []string) (map[string]string, error)
	Ping(ctx context.Context) error
	Close() error
}
