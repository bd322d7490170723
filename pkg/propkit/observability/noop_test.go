package observability

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"
)

func TestNoopMetrics_DoesNothing(t *testing.T) {
	m := NoopMetrics{}
	ctx := context.Background()

	assert.NotPanics(t, func() {
		m.RecordLookup(ctx, "key", SourceStore)
		m.RecordLookup(nil, "", "")
		m.RecordMismatch(ctx, "key", MismatchScalarAccess)
		m.RecordParseFailure(ctx, "key")
		m.RecordDecrypt(ctx, "key", nil)
		m.RecordDecrypt(ctx, "key", errors.New("boom"))
	})
}

func TestNoopSpanManager_StartResolveSpan(t *testing.T) {
	sm := NoopSpanManager{}

	ctx := context.Background()
	newCtx, span := sm.StartResolveSpan(ctx, "key", "Get")

	assert.Equal(t, ctx, newCtx, "context should be unchanged")
	assert.NotNil(t, span)
	assert.False(t, span.IsRecording())
}

func TestNoopSpanManager_DoesNothing(t *testing.T) {
	sm := NoopSpanManager{}

	assert.NotPanics(t, func() {
		_, span := sm.StartResolveSpan(context.Background(), "", "")
		sm.AddSpanEvent(context.Background(), "event", attribute.String("k", "v"))
		sm.AddSpanEvent(nil, "")
		sm.EndSpanWithError(span, errors.New("ignored"))
		sm.EndSpanWithError(nil, nil)
	})
}
