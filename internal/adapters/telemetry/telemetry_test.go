package telemetry_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/todo/internal/adapters/telemetry"
	"go.trai.ch/todo/internal/core/ports"
	"go.trai.ch/todo/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestOTelTracer_StartRecordsAttributes(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tracer := telemetry.NewOTelTracer("test", sr)
	defer func() { _ = tracer.Shutdown(context.Background()) }()

	ctx, span := tracer.Start(context.Background(), "todo.add", ports.WithAttribute("session.id", "abc"))
	require.NotNil(t, ctx)
	span.SetAttribute("task.description", "Buy milk")
	span.SetAttribute("task.tags", 2)
	span.SetAttribute("task.found", true)
	span.SetAttribute("ratio", 0.5)
	span.SetAttribute("list", []string{"a", "b"})
	span.SetAttribute("other", struct{ N int }{N: 3})
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "todo.add", spans[0].Name())

	attrs := map[attribute.Key]attribute.Value{}
	for _, kv := range spans[0].Attributes() {
		attrs[kv.Key] = kv.Value
	}
	assert.Equal(t, "abc", attrs["session.id"].AsString())
	assert.Equal(t, "Buy milk", attrs["task.description"].AsString())
	assert.Equal(t, int64(2), attrs["task.tags"].AsInt64())
	assert.True(t, attrs["task.found"].AsBool())
	assert.InDelta(t, 0.5, attrs["ratio"].AsFloat64(), 0.0001)
	assert.Equal(t, []string{"a", "b"}, attrs["list"].AsStringSlice())
	assert.Equal(t, "{3}", attrs["other"].AsString())
}

func TestOTelSpan_RecordError(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tracer := telemetry.NewOTelTracer("test", sr)
	defer func() { _ = tracer.Shutdown(context.Background()) }()

	_, span := tracer.Start(context.Background(), "todo.view")
	span.RecordError(errors.New("boom"))
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "boom", spans[0].Status().Description)
}

func TestBridge_LogsFinishedSpans(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	var logged []string
	mockLogger.EXPECT().Debug(gomock.Any()).Do(func(msg string) {
		logged = append(logged, msg)
	}).Times(2)

	tracer := telemetry.NewOTelTracer("test", telemetry.NewBridge(mockLogger))
	defer func() { _ = tracer.Shutdown(context.Background()) }()

	_, span := tracer.Start(context.Background(), "todo.complete",
		ports.WithAttribute("session.id", "s1"))
	span.SetAttribute("task.found", false)
	span.End()

	_, failed := tracer.Start(context.Background(), "todo.view")
	failed.RecordError(errors.New("boom"))
	failed.End()

	require.Len(t, logged, 2)
	assert.True(t, strings.HasPrefix(logged[0], "todo.complete "), logged[0])
	assert.True(t, strings.HasSuffix(logged[0], " session.id=s1 task.found=false"), logged[0])
	assert.Contains(t, logged[1], " failed: boom")
}

func TestBridge_NilLogger(t *testing.T) {
	bridge := telemetry.NewBridge(nil)

	tp := sdktrace.NewTracerProvider()
	_, span := tp.Tracer("test").Start(context.Background(), "test-span")
	span.End()

	if roSpan, ok := span.(sdktrace.ReadOnlySpan); ok {
		bridge.OnEnd(roSpan)
	}
	require.NoError(t, bridge.ForceFlush(context.Background()))
	require.NoError(t, bridge.Shutdown(context.Background()))
}

func TestNoOpTracer(t *testing.T) {
	t.Parallel()

	tracer := telemetry.NewNoOpTracer()
	ctx := context.Background()

	newCtx, span := tracer.Start(ctx, "test", ports.WithAttribute("k", "v"))
	assert.Equal(t, ctx, newCtx)
	span.SetAttribute("key", "value")
	span.RecordError(errors.New("test error"))
	span.End()

	require.NoError(t, tracer.Shutdown(ctx))
}
