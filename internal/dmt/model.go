package dmt

import "time"

// Table is the datastore table holding DMT records.
const Table = "dmt_records"

const (
	columnDate   = "date"
	columnClosed = "dmt_closed"
)

// Status labels.
const (
	StatusOpen   = "Open"
	StatusClosed = "Closed"
)

const placeholder = "N/A"

// AggregatedRecord is a DMT record with its references resolved for display.
type AggregatedRecord struct {
	ID        string
	Date      string
	Closed    bool
	CreatedAt time.Time
	// refs holds resolved display values by alias; unresolved aliases are absent.
	refs map[string]string
}

// Ref returns the resolved value for alias. The second result is false when the
// foreign key was null or pointed at no row.
func (r AggregatedRecord) Ref(alias string) (string, bool) {
	v, ok := r.refs[alias]
	return v, ok
}

// Display returns the value for alias, or "N/A" when unresolved.
func (r AggregatedRecord) Display(alias string) string {
	if v, ok := r.refs[alias]; ok {
		return v
	}
	return placeholder
}

// PartNumber is the resolved part number for display.
func (r AggregatedRecord) PartNumber() string { return r.Display(AliasPartNumber) }

// Customer is the resolved customer name for display.
func (r AggregatedRecord) Customer() string { return r.Display(AliasCustomer) }

// Employee is the resolved employee name for display.
func (r AggregatedRecord) Employee() string { return r.Display(AliasEmployee) }

// Status is the display label derived from the closed flag.
func (r AggregatedRecord) Status() string {
	if r.Closed {
		return StatusClosed
	}
	return StatusOpen
}
