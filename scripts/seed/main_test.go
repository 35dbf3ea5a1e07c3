package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qualitydesk/qualitydesk/internal/datastore"
	"github.com/qualitydesk/qualitydesk/internal/dmt"
)

func TestSeedPopulatesConsole(t *testing.T) {
	store, err := datastore.OpenSQLite(":memory:")
	require.NoError(t, err)
	require.NoError(t, store.Bootstrap(context.Background()))
	t.Cleanup(func() { _ = store.Close() })

	ctx := context.Background()
	now := time.Date(2024, 5, 10, 8, 0, 0, 0, time.UTC)
	seeded, err := seed(ctx, store, now)
	require.NoError(t, err)
	assert.True(t, seeded)

	records, err := dmt.NewService(store, nil).ListRecords(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "2024-05-10", records[0].Date)
	assert.Equal(t, "Northwind Trucks", records[0].Display(dmt.AliasCustomer))
	assert.Equal(t, "N/A", records[0].Display(dmt.AliasEmployee))
	assert.Equal(t, dmt.StatusClosed, records[1].Status())
	assert.Equal(t, "BRK-1001", records[1].Display(dmt.AliasPartNumber))

	seeded, err = seed(ctx, store, now)
	require.NoError(t, err)
	assert.False(t, seeded, "second run is a no-op")
}
