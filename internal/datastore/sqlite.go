package datastore

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/qualitydesk/qualitydesk/internal/shared"
)

// SQLite implements Store on a local SQLite database through gorm. It backs
// local runs and tests; production uses Postgres.
type SQLite struct {
	db *gorm.DB

	mu   sync.Mutex
	last time.Time
}

// OpenSQLite opens dsn (":memory:" for an in-process database).
func OpenSQLite(dsn string) (*SQLite, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("datastore: open sqlite: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("datastore: sqlite handle: %w", err)
	}
	// An in-memory database exists per connection.
	sqlDB.SetMaxOpenConns(1)
	return &SQLite{db: db}, nil
}

// Bootstrap creates the console tables when they are missing.
func (s *SQLite) Bootstrap(ctx context.Context) error {
	err := s.db.WithContext(ctx).AutoMigrate(
		&employeeRow{},
		&workcenterRow{},
		&partNumberRow{},
		&customerRow{},
		&inspectionItemRow{},
		&dmtRecordRow{},
	)
	if err != nil {
		return fmt.Errorf("datastore: bootstrap sqlite: %w", err)
	}
	return nil
}

func (s *SQLite) Select(ctx context.Context, table string, status RowStatus, order Order) ([]Row, error) {
	var maps []map[string]any
	err := s.db.WithContext(ctx).
		Table(table).
		Where(clause.Eq{Column: clause.Column{Name: ColumnActive}, Value: status.Flag()}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: order.Column}, Desc: order.Desc}).
		Find(&maps).Error
	if err != nil {
		return nil, shared.NewDataStoreError("select", table, err)
	}
	out := make([]Row, 0, len(maps))
	for _, m := range maps {
		out = append(out, normalize(m))
	}
	return out, nil
}

func (s *SQLite) Insert(ctx context.Context, table string, values map[string]any) error {
	row := make(map[string]any, len(values)+1)
	for k, v := range values {
		row[k] = v
	}
	if _, ok := row[ColumnID]; !ok {
		row[ColumnID] = uuid.NewString()
	}
	// CURRENT_TIMESTAMP has whole-second resolution; rows written within one
	// second would tie on created_at.
	if _, ok := row[ColumnCreatedAt]; !ok {
		row[ColumnCreatedAt] = s.stamp()
	}
	err := s.db.WithContext(ctx).Table(table).Create(row).Error
	return shared.NewDataStoreError("insert", table, err)
}

func (s *SQLite) SetStatus(ctx context.Context, table, id string, status RowStatus) error {
	err := s.db.WithContext(ctx).
		Table(table).
		Where(clause.Eq{Column: clause.Column{Name: ColumnID}, Value: id}).
		Update(ColumnActive, status.Flag()).Error
	return shared.NewDataStoreError("update", table, err)
}

func (s *SQLite) Lookup(ctx context.Context, table, field string, ids []string) (map[string]string, error) {
	out := make(map[string]string, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var maps []map[string]any
	err := s.db.WithContext(ctx).
		Table(table).
		Select([]string{ColumnID, field}).
		Where(clause.IN{Column: clause.Column{Name: ColumnID}, Values: toAny(ids)}).
		Find(&maps).Error
	if err != nil {
		return nil, shared.NewDataStoreError("lookup", table, err)
	}
	for _, m := range maps {
		row := normalize(m)
		if value, ok := row.String(field); ok {
			out[row.ID()] = value
		}
	}
	return out, nil
}

func (s *SQLite) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return shared.NewDataStoreError("ping", "", err)
	}
	return shared.NewDataStoreError("ping", "", sqlDB.PingContext(ctx))
}

func (s *SQLite) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// stamp returns a creation time strictly after the previous one.
func (s *SQLite) stamp() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	if !now.After(s.last) {
		now = s.last.Add(time.Microsecond)
	}
	s.last = now
	return now
}

func toAny(ids []string) []interface{} {
	out := make([]interface{}, len(ids))
	for i, id := range ids {
		out[i] = id
	}
	return out
}
