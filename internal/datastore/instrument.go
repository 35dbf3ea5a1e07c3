package datastore

import (
	"context"
	"time"
)

// QueryObserver receives the outcome of every remote call.
type QueryObserver interface {
	ObserveQuery(op, table string, elapsed time.Duration, err error)
}

type instrumented struct {
	next     Store
	observer QueryObserver
}

// Instrument reports each call on store to observer. A nil observer returns store unchanged.
func Instrument(store Store, observer QueryObserver) Store {
	if observer == nil {
		return store
	}
	return &instrumented{next: store, observer: observer}
}

func (s *instrumented) Select(ctx context.Context, table string, status RowStatus, order Order) ([]Row, error) {
	start := time.Now()
	rows, err := s.next.Select(ctx, table, status, order)
	s.observer.ObserveQuery("select", table, time.Since(start), err)
	return rows, err
}

func (s *instrumented) Insert(ctx context.Context, table string, values map[string]any) error {
	start := time.Now()
	err := s.next.Insert(ctx, table, values)
	s.observer.ObserveQuery("insert", table, time.Since(start), err)
	return err
}

func (s *instrumented) SetStatus(ctx context.Context, table, id string, status RowStatus) error {
	start := time.Now()
	err := s.next.SetStatus(ctx, table, id, status)
	s.observer.ObserveQuery("update", table, time.Since(start), err)
	return err
}

func (s *instrumented) Lookup(ctx context.Context, table, field string, ids []string) (map[string]string, error) {
	start := time.Now()
	values, err := s.next.Lookup(ctx, table, field, ids)
	s.observer.ObserveQuery("lookup", table, time.Since(start), err)
	return values, err
}

func (s *instrumented) Ping(ctx context.Context) error {
	return s.next.Ping(ctx)
}

func (s *instrumented) Close() error {
	return s.next.Close()
}
