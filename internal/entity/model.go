package entity

import (
	"time"

	"github.com/qualitydesk/qualitydesk/internal/catalog"
	"github.com/qualitydesk/qualitydesk/internal/datastore"
)

// Record is one row of a descriptor's table, reduced to the descriptor's fields.
type Record struct {
	ID        string
	Status    datastore.RowStatus
	Values    map[string]string
	CreatedAt time.Time
}

// Value returns the display value of field, or "" when unset.
func (r Record) Value(field string) string {
	return r.Values[field]
}

// ShortID is the leading eight characters of the identifier.
func (r Record) ShortID() string {
	if len(r.ID) <= 8 {
		return r.ID
	}
	return r.ID[:8]
}

func recordFromRow(d catalog.Descriptor, row datastore.Row) Record {
	values := make(map[string]string, len(d.Fields))
	for _, f := range d.Fields {
		if v, ok := row.String(f.Name); ok && v != "" {
			values[f.Name] = v
		}
	}
	return Record{
		ID:        row.ID(),
		Status:    row.Status(),
		Values:    values,
		CreatedAt: row.CreatedAt(),
	}
}
