package store_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/unitecon/internal/domain"
	"github.com/davidbz/unitecon/internal/store"
	"github.com/davidbz/unitecon/internal/store/sqlite"
)

const testNamespace = "unitecon.scenarios"

func newSQLiteKV(t *testing.T) *sqlite.KV {
	t.Helper()

	kv, err := sqlite.New(filepath.Join(t.TempDir(), "store.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })
	return kv
}

func TestRepository_EmptyNamespace(t *testing.T) {
	repository := store.NewRepository(newSQLiteKV(t), testNamespace)

	scenarios, err := repository.LoadAll(context.Background())
	require.NoError(t, err)
	require.NotNil(t, scenarios)
	require.Empty(t, scenarios)
}

func TestRepository_SaveAllLoadAll(t *testing.T) {
	ctx := context.Background()
	kv := newSQLiteKV(t)
	repository := store.NewRepository(kv, testNamespace)

	require.NoError(t, repository.SaveAll(ctx, sampleScenarios()))

	loaded, err := repository.LoadAll(ctx)
	require.NoError(t, err)
	require.Equal(t, sampleScenarios(), loaded)

	// Other namespaces are independent.
	other, err := store.NewRepository(kv, "other").LoadAll(ctx)
	require.NoError(t, err)
	require.Empty(t, other)

	require.NoError(t, repository.SaveAll(ctx, sampleScenarios()[:1]))
	loaded, err = repository.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
}

func TestRepository_MigratesOnNextSave(t *testing.T) {
	ctx := context.Background()
	kv := newSQLiteKV(t)
	require.NoError(t, kv.Put(ctx, testNamespace, []byte(`[{"id":"legacy-1","name":"Old","entityId":"openai:gpt-4o"}]`)))

	repository := store.NewRepository(kv, testNamespace)

	scenarios, err := repository.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, scenarios, 1)

	require.NoError(t, repository.SaveAll(ctx, scenarios))

	raw, ok, err := kv.Get(ctx, testNamespace)
	require.NoError(t, err)
	require.True(t, ok)

	_, version, err := store.Decode(raw)
	require.NoError(t, err)
	require.Equal(t, store.CurrentVersion, version)
}

func TestRepository_LegacyScenarioWithoutID(t *testing.T) {
	ctx := context.Background()
	kv := newSQLiteKV(t)
	require.NoError(t, kv.Put(ctx, testNamespace, []byte(`[
		{"name":"Old","entityId":"openai:gpt-4o","createdAt":1732090500000},
		{"name":"Older","entityId":"fal:flux","createdAt":1732000000000}
	]`)))

	service := domain.NewScenarioService(store.NewRepository(kv, testNamespace), domain.NewInMemoryCatalog(), nil)

	listed, err := service.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 2)

	loaded, err := service.Load(ctx, listed[0].ID)
	require.NoError(t, err)
	require.Equal(t, "openai:gpt-4o", loaded.EntityID)

	require.NoError(t, service.Delete(ctx, listed[0].ID))

	remaining, err := service.List(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	require.Equal(t, listed[1].ID, remaining[0].ID, "surviving id is persisted unchanged")
	require.Equal(t, "Older", remaining[0].Name)
}

func TestRepository_WithScenarioService(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "store.db")

	kv, err := sqlite.New(path)
	require.NoError(t, err)

	service := domain.NewScenarioService(store.NewRepository(kv, testNamespace), domain.NewInMemoryCatalog(), nil)

	inputs := domain.CalculationInputs{
		EntityID: "openai:gpt-4o",
		Usage: domain.UsageAssumptions{
			AvgInputTokens:       500,
			AvgOutputTokens:      1000,
			AvgDurationSeconds:   5,
			PricingMode:          domain.PricingModeBase,
			UseHistoricalAverage: true,
		},
		Plan: sampleScenarios()[0].Plan,
	}

	saved, err := service.Save(ctx, "durable", inputs)
	require.NoError(t, err)
	require.NoError(t, kv.Close())

	// Reopen to prove the list survived the process.
	reopened, err := sqlite.New(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	service = domain.NewScenarioService(store.NewRepository(reopened, testNamespace), domain.NewInMemoryCatalog(), nil)

	loaded, err := service.Load(ctx, saved.ID)
	require.NoError(t, err)

	expected := inputs
	expected.Usage.UseHistoricalAverage = false
	require.Equal(t, expected, loaded)
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := store.Open(context.Background(), &store.Config{Driver: "etcd"})
	require.ErrorContains(t, err, "unknown store driver")
}

func TestOpen_SQLite(t *testing.T) {
	backend, err := store.Open(context.Background(), &store.Config{
		Driver:     store.DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "open.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = backend.Close() })

	_, ok, err := backend.Get(context.Background(), "missing")
	require.NoError(t, err)
	require.False(t, ok)
}
