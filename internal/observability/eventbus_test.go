package observability_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/davidbz/unitecon/internal/observability"
)

func TestEventBus_Publish(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	bus := observability.NewEventBus(zap.New(core))

	ctx := observability.WithRequestID(context.Background(), "req-1")
	ctx = observability.WithScenario(ctx, "sc-1")

	bus.Publish(ctx, "scenario.saved", map[string]interface{}{
		"name":      "Scenario A",
		"entity_id": "openai:gpt-4o",
	})

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "scenario.saved", entries[0].Message)

	fields := entries[0].ContextMap()
	require.Equal(t, "scenario.saved", fields["event"])
	require.Equal(t, "req-1", fields["request_id"])
	require.Equal(t, "sc-1", fields["scenario_id"])
	require.Equal(t, "Scenario A", fields["name"])
	require.Equal(t, "openai:gpt-4o", fields["entity_id"])
}

func TestEventBus_NilIsNoop(t *testing.T) {
	var bus *observability.EventBus
	require.NotPanics(t, func() {
		bus.Publish(context.Background(), "catalog.refreshed", nil)
	})
}

func TestFromContext_CarriesCorrelationFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	observability.SetLogger(zap.New(core))
	t.Cleanup(func() { observability.SetLogger(zap.NewNop()) })

	ctx := observability.WithTraceID(context.Background(), "trace-1")
	ctx = observability.WithEntity(ctx, "replicate:kling-v2")

	observability.FromContext(ctx).Debug("calculation evaluated")

	entries := logs.FilterMessage("calculation evaluated").All()
	require.Len(t, entries, 1)

	fields := entries[0].ContextMap()
	require.Equal(t, "trace-1", fields["trace_id"])
	require.Equal(t, "replicate:kling-v2", fields["entity_id"])
	require.NotContains(t, fields, "request_id")
}
