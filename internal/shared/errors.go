package shared

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates an unknown entity or resource.
var ErrNotFound = errors.New("not found")

// NotFoundError reports a lookup of an unrecognized key.
type NotFoundError struct {
	Kind string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Key)
}

// Is lets errors.Is(err, ErrNotFound) match.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// DataStoreError wraps any failure coming from the remote query layer.
type DataStoreError struct {
	Op    string
	Table string
	Err   error
}

func (e *DataStoreError) Error() string {
	if e.Table == "" {
		return fmt.Sprintf("datastore: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("datastore: %s %s: %v", e.Op, e.Table, e.Err)
}

func (e *DataStoreError) Unwrap() error {
	return e.Err
}

// NewDataStoreError wraps err unless it is nil or already a DataStoreError.
func NewDataStoreError(op, table string, err error) error {
	if err == nil {
		return nil
	}
	var dsErr *DataStoreError
	if errors.As(err, &dsErr) {
		return err
	}
	return &DataStoreError{Op: op, Table: table, Err: err}
}

// IsDataStoreError reports whether err originated in the datastore layer.
func IsDataStoreError(err error) bool {
	var dsErr *DataStoreError
	return errors.As(err, &dsErr)
}
