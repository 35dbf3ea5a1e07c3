package dmt

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/qualitydesk/qualitydesk/internal/datastore"
)

// Service assembles and retires DMT records.
type Service struct {
	store   datastore.Store
	lookups []Lookup
}

// NewService constructs a Service resolving references with lookups, or with
// DefaultLookups when lookups is nil.
func NewService(store datastore.Store, lookups []Lookup) *Service {
	if lookups == nil {
		lookups = DefaultLookups
	}
	return &Service{store: store, lookups: lookups}
}

// ListRecords returns the active DMT records, newest first, with every reference
// resolved. A null or dangling foreign key leaves its alias unresolved.
func (s *Service) ListRecords(ctx context.Context) ([]AggregatedRecord, error) {
	rows, err := s.store.Select(ctx, Table, datastore.StatusActive, datastore.Order{Column: datastore.ColumnCreatedAt, Desc: true})
	if err != nil {
		return nil, err
	}
	resolved, err := s.resolve(ctx, rows)
	if err != nil {
		return nil, err
	}

	records := make([]AggregatedRecord, 0, len(rows))
	for _, row := range rows {
		rec := AggregatedRecord{
			ID:        row.ID(),
			Closed:    row.Bool(columnClosed),
			CreatedAt: row.CreatedAt(),
			refs:      make(map[string]string, len(s.lookups)),
		}
		rec.Date, _ = row.String(columnDate)
		for i, l := range s.lookups {
			fk, ok := row.String(l.ForeignKey)
			if !ok || fk == "" {
				continue
			}
			if v, ok := resolved[i][fk]; ok {
				rec.refs[l.Alias] = v
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

// SoftDelete marks the record inactive. Unknown ids succeed.
func (s *Service) SoftDelete(ctx context.Context, id string) error {
	return s.store.SetStatus(ctx, Table, id, datastore.StatusInactive)
}

// resolve runs one batched lookup per entry of s.lookups; result i belongs to
// lookup i.
func (s *Service) resolve(ctx context.Context, rows []datastore.Row) ([]map[string]string, error) {
	results := make([]map[string]string, len(s.lookups))
	if len(rows) == 0 {
		return results, nil
	}
	g, gctx := errgroup.WithContext(ctx)
	for i, l := range s.lookups {
		i, l := i, l
		ids := foreignKeys(rows, l.ForeignKey)
		if len(ids) == 0 {
			continue
		}
		g.Go(func() error {
			values, err := s.store.Lookup(gctx, l.Table, l.DisplayField, ids)
			if err != nil {
				return err
			}
			results[i] = values
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func foreignKeys(rows []datastore.Row, column string) []string {
	seen := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		if v, ok := row.String(column); ok && v != "" {
			seen[v] = struct{}{}
		}
	}
	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
