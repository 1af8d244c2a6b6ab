package tracing

import (
	"context"
	"testing"
)

// TestExtractTraceID_NoSpan 无Span的Context返回空串
func TestExtractTraceID_NoSpan(t *testing.T) {
	if got := ExtractTraceID(context.Background()); got != "" {
		t.Errorf("期望空TraceID，实际%q", got)
	}
	if got := ExtractSpanID(context.Background()); got != "" {
		t.Errorf("期望空SpanID，实际%q", got)
	}
}

// TestStartSpan 未初始化Provider时使用noop tracer，不应panic
func TestStartSpan(t *testing.T) {
	ctx, span := StartSpan(context.Background(), "mall", "TestOperation")
	defer span.End()

	if ctx == nil {
		t.Fatal("StartSpan返回的ctx为nil")
	}
}
