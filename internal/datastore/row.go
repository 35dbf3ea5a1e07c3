package datastore

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cast"
)

// Row is one result row keyed by column name.
type Row map[string]any

// ID returns the row identifier as a string.
func (r Row) ID() string {
	id, _ := r.String(ColumnID)
	return id
}

// Status reports the row's soft-delete state.
func (r Row) Status() RowStatus {
	return StatusFromFlag(r.Bool(ColumnActive))
}

// CreatedAt returns the creation timestamp or the zero time.
func (r Row) CreatedAt() time.Time {
	return r.Time(ColumnCreatedAt)
}

// String returns the display form of col. The second result is false when the
// column is missing or null.
func (r Row) String(col string) (string, bool) {
	v, ok := r[col]
	if !ok || v == nil {
		return "", false
	}
	switch t := v.(type) {
	case time.Time:
		return formatTime(t), true
	case [16]byte:
		return uuid.UUID(t).String(), true
	case []byte:
		return string(t), true
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return fmt.Sprint(v), true
	}
	return s, true
}

// Bool coerces col to a boolean; null and unparsable values are false.
func (r Row) Bool(col string) bool {
	switch v := r[col].(type) {
	case int64:
		return v != 0
	case int32:
		return v != 0
	}
	b, err := cast.ToBoolE(r[col])
	if err != nil {
		return false
	}
	return b
}

// Time coerces col to a time; null and unparsable values yield the zero time.
func (r Row) Time(col string) time.Time {
	v, ok := r[col]
	if !ok || v == nil {
		return time.Time{}
	}
	t, err := cast.ToTimeE(v)
	if err != nil {
		return time.Time{}
	}
	return t
}

func formatTime(t time.Time) string {
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return t.Format(time.DateOnly)
	}
	return t.Format(time.RFC3339)
}

// normalize rewrites driver-specific values into plain Go values.
func normalize(m map[string]any) Row {
	row := make(Row, len(m))
	for k, v := range m {
		if id, ok := v.([16]byte); ok {
			row[k] = uuid.UUID(id).String()
			continue
		}
		row[k] = v
	}
	return row
}
