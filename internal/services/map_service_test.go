package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valorsim/valorsim/internal/models"
	"github.com/valorsim/valorsim/internal/simulator"
)

func squareAround(x, y, half float64) [][2]float64 {
	return [][2]float64{
		{x - half, y - half},
		{x + half, y - half},
		{x + half, y + half},
		{x - half, y + half},
	}
}

func customMapRequest(name string) SaveMapRequest {
	return SaveMapRequest{
		Name: name,
		Callouts: []CalloutInput{
			{Name: "Attacker Side Spawn", AreaType: "attacker_spawn", Points: squareAround(512, 950, 40)},
			{Name: "Defender Side Spawn", AreaType: "defender_spawn", Points: squareAround(512, 80, 40)},
			{Name: "A Site", AreaType: "a_site", Points: squareAround(256, 200, 60)},
			{Name: "B Site", AreaType: "b_site", Points: squareAround(768, 200, 60)},
			{Name: "Mid", AreaType: "mid", Points: squareAround(512, 512, 80)},
		},
	}
}

func TestSaveMapNormalizesCentroids(t *testing.T) {
	svc := NewMapService(testDB(t), simulator.NewMapCatalog())

	layout, err := svc.SaveMap(context.Background(), customMapRequest("Test Arena"))
	require.NoError(t, err)

	assert.Equal(t, "test_arena", layout.ID)
	assert.ElementsMatch(t, []string{"A", "B"}, layout.Sites)
	assert.InDelta(t, 0.5, layout.AttackerSpawn.X, 1e-9)
	assert.InDelta(t, 950.0/1024.0, layout.AttackerSpawn.Y, 1e-9)

	site, ok := layout.SiteCallout("A")
	require.True(t, ok)
	assert.InDelta(t, 0.25, site.Position.X, 1e-9)
	assert.InDelta(t, 120.0/1024.0, site.Size.W, 1e-9)
	assert.InDelta(t, 120.0/1024.0, site.Size.H, 1e-9)

	// Callouts are keyed by their slug, same as the standard maps.
	mid, ok := layout.Callouts["mid"]
	require.True(t, ok)
	assert.Equal(t, models.AreaMid, mid.AreaType)

	assert.True(t, svc.Exists("Test Arena"))
}

func TestSaveMapRequiresASite(t *testing.T) {
	svc := NewMapService(testDB(t), simulator.NewMapCatalog())

	req := SaveMapRequest{
		Name: "Empty",
		Callouts: []CalloutInput{
			{Name: "Mid", AreaType: "mid", Points: squareAround(512, 512, 80)},
		},
	}
	_, err := svc.SaveMap(context.Background(), req)
	assert.Error(t, err)
}

func TestSaveMapReplacesExisting(t *testing.T) {
	db := testDB(t)
	svc := NewMapService(db, simulator.NewMapCatalog())
	ctx := context.Background()

	_, err := svc.SaveMap(ctx, customMapRequest("Twice"))
	require.NoError(t, err)
	_, err = svc.SaveMap(ctx, customMapRequest("Twice"))
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.MapRecord{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestLoadPersistedRestoresCatalog(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	first := NewMapService(db, simulator.NewMapCatalog())
	_, err := first.SaveMap(ctx, customMapRequest("Persisted Arena"))
	require.NoError(t, err)

	fresh := NewMapService(db, simulator.NewMapCatalog())
	assert.False(t, fresh.Exists("Persisted Arena"))
	require.NoError(t, fresh.LoadPersisted(ctx))
	assert.True(t, fresh.Exists("Persisted Arena"))
}

func TestSimulateOnCustomMap(t *testing.T) {
	db := testDB(t)
	catalog := simulator.NewMapCatalog()
	svc := NewMapService(db, catalog)

	_, err := svc.SaveMap(context.Background(), customMapRequest("Test Arena"))
	require.NoError(t, err)

	sim := simulator.NewSimulator(catalog)
	result, err := sim.SimulateMatch(testRoster("a"), testRoster("b"), "Test Arena", simulator.Options{Seed: 8})
	require.NoError(t, err)
	assert.Equal(t, "Test Arena", result.Map)
}
