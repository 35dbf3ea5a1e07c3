package entity

import (
	"context"

	"github.com/qualitydesk/qualitydesk/internal/catalog"
	"github.com/qualitydesk/qualitydesk/internal/datastore"
)

// Service lists and creates records for the catalog's entity types.
type Service struct {
	registry *catalog.Registry
	store    datastore.Store
}

// NewService constructs a Service.
func NewService(registry *catalog.Registry, store datastore.Store) *Service {
	return &Service{registry: registry, store: store}
}

// Descriptors returns the manageable entity types in navigation order.
func (s *Service) Descriptors() []catalog.Descriptor {
	return s.registry.All()
}

// Descriptor resolves key or returns a *shared.NotFoundError.
func (s *Service) Descriptor(key string) (catalog.Descriptor, error) {
	return s.registry.Lookup(key)
}

// ListActive returns the active rows of key's table sorted ascending.
func (s *Service) ListActive(ctx context.Context, key string) ([]Record, error) {
	d, err := s.registry.Lookup(key)
	if err != nil {
		return nil, err
	}
	return s.listActive(ctx, d)
}

// Create inserts one row built from values and returns the refreshed list. Only
// descriptor fields that are present and non-empty are written; required fields
// are left for the datastore to enforce.
func (s *Service) Create(ctx context.Context, key string, values map[string]string) ([]Record, error) {
	d, err := s.registry.Lookup(key)
	if err != nil {
		return nil, err
	}
	if err := s.store.Insert(ctx, d.Table, insertPayload(d, values)); err != nil {
		return nil, err
	}
	return s.listActive(ctx, d)
}

func (s *Service) listActive(ctx context.Context, d catalog.Descriptor) ([]Record, error) {
	rows, err := s.store.Select(ctx, d.Table, datastore.StatusActive, datastore.Order{Column: d.OrderBy})
	if err != nil {
		return nil, err
	}
	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, recordFromRow(d, row))
	}
	return records, nil
}

func insertPayload(d catalog.Descriptor, values map[string]string) map[string]any {
	payload := make(map[string]any, len(values))
	for name, v := range values {
		if _, ok := d.Field(name); ok && v != "" {
			payload[name] = v
		}
	}
	return payload
}
