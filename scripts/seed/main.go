package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/qualitydesk/qualitydesk/internal/app"
	"github.com/qualitydesk/qualitydesk/internal/datastore"
	"github.com/qualitydesk/qualitydesk/internal/dmt"
)

func main() {
	cfg, err := app.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	ctx := context.Background()
	store, err := app.OpenStore(ctx, cfg)
	if err != nil {
		log.Fatalf("open datastore: %v", err)
	}
	defer store.Close()

	seeded, err := seed(ctx, store, time.Now().UTC())
	if err != nil {
		log.Fatalf("seed: %v", err)
	}
	if !seeded {
		fmt.Println("→ Employees already present, nothing to do")
		return
	}
	fmt.Println("✓ Seed complete at", time.Now().Format(time.RFC3339))
}

type reference struct {
	table  string
	key    string
	values map[string]any
}

var references = []reference{
	{"employees", "ana", map[string]any{"name": "Ana Torres", "email": "ana.torres@example.com"}},
	{"employees", "ben", map[string]any{"name": "Ben Okafor", "email": "ben.okafor@example.com"}},
	{"employees", "chen", map[string]any{"name": "Chen Wei", "email": "chen.wei@example.com"}},
	{"workcenters", "press", map[string]any{"name": "Press Line 1", "code": "PL1"}},
	{"workcenters", "weld", map[string]any{"name": "Weld Cell 3", "code": "WC3"}},
	{"part_numbers", "bracket", map[string]any{"part_number": "BRK-1001", "description": "Mounting bracket"}},
	{"part_numbers", "hinge", map[string]any{"part_number": "HNG-2040", "description": "Door hinge"}},
	{"customers", "acme", map[string]any{"name": "Acme Motors", "code": "ACME"}},
	{"customers", "northwind", map[string]any{"name": "Northwind Trucks", "code": "NWT"}},
	{"inspection_items", "visual", map[string]any{"name": "Visual inspection", "description": "Surface defects"}},
	{"inspection_items", "dimension", map[string]any{"name": "Hole position", "description": "CMM measurement"}},
}

// seed inserts demo reference data and a few DMT records. It does nothing
// when active employees already exist.
func seed(ctx context.Context, store datastore.Store, now time.Time) (bool, error) {
	existing, err := store.Select(ctx, "employees", datastore.StatusActive, datastore.Order{Column: "name"})
	if err != nil {
		return false, err
	}
	if len(existing) > 0 {
		return false, nil
	}

	ids := make(map[string]string, len(references))
	fmt.Println("→ Seeding reference data...")
	for _, ref := range references {
		values := make(map[string]any, len(ref.values)+1)
		for k, v := range ref.values {
			values[k] = v
		}
		ids[ref.key] = uuid.NewString()
		values[datastore.ColumnID] = ids[ref.key]
		if err := store.Insert(ctx, ref.table, values); err != nil {
			return false, fmt.Errorf("%s %s: %w", ref.table, ref.key, err)
		}
	}

	fmt.Println("→ Seeding DMT records...")
	records := []map[string]any{
		{
			"workcenter_id":              ids["press"],
			"part_number_id":             ids["bracket"],
			"employee_id":                ids["ben"],
			"customer_id":                ids["acme"],
			"inspection_item_id":         ids["dimension"],
			"prepared_by_id":             ids["ana"],
			"disposition_approved_by_id": ids["chen"],
			"date":                       now.AddDate(0, 0, -7).Format("2006-01-02"),
			"dmt_closed":                 true,
			datastore.ColumnCreatedAt:    now.Add(-7 * 24 * time.Hour),
		},
		{
			"workcenter_id":           ids["weld"],
			"part_number_id":          ids["hinge"],
			"customer_id":             ids["northwind"],
			"inspection_item_id":      ids["visual"],
			"prepared_by_id":          ids["ana"],
			"date":                    now.Format("2006-01-02"),
			datastore.ColumnCreatedAt: now,
		},
	}
	for _, rec := range records {
		rec[datastore.ColumnID] = uuid.NewString()
		if err := store.Insert(ctx, dmt.Table, rec); err != nil {
			return false, fmt.Errorf("dmt record: %w", err)
		}
	}
	return true, nil
}
