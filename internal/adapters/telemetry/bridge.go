package telemetry

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/todo/internal/core/ports"
)

var _ sdktrace.SpanProcessor = (*Bridge)(nil)

// Bridge implements sdktrace.SpanProcessor and reports finished spans to a Logger at debug level.
type Bridge struct {
	logger ports.Logger
}

// NewBridge returns a new Bridge.
func NewBridge(logger ports.Logger) *Bridge {
	return &Bridge{
		logger: logger,
	}
}

// OnStart does nothing. Spans are reported once they end.
func (b *Bridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd logs the span name, duration and attributes.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.logger == nil {
		return
	}
	if !s.SpanContext().IsValid() {
		return
	}

	b.logger.Debug(FormatSpan(s))
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(_ context.Context) error {
	return nil
}

// FormatSpan renders a finished span as a single log line:
// "<name> <duration>[ failed: <description>] key=value ...", attributes sorted by key.
func FormatSpan(s sdktrace.ReadOnlySpan) string {
	var sb strings.Builder
	sb.WriteString(s.Name())
	sb.WriteByte(' ')
	sb.WriteString(s.EndTime().Sub(s.StartTime()).String())

	if s.Status().Code == codes.Error {
		desc := s.Status().Description
		if desc == "" {
			desc = "unknown error"
		}
		sb.WriteString(" failed: ")
		sb.WriteString(desc)
	}

	attrs := slices.Clone(s.Attributes())
	slices.SortFunc(attrs, func(a, b attribute.KeyValue) int {
		return strings.Compare(string(a.Key), string(b.Key))
	})
	for _, kv := range attrs {
		fmt.Fprintf(&sb, " %s=%s", kv.Key, kv.Value.Emit())
	}

	return sb.String()
}
