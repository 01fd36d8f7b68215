package xlog

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel/trace"
)

// 追踪字段 key
const (
	KeyTraceID = "trace_id"
	KeySpanID  = "span_id"
)

// ErrNilHandler 当 NewEnrichHandler 的 base handler 为 nil 时返回
var ErrNilHandler = errors.New("xlog: base handler is nil")

// EnrichHandler 从 ctx 中的 OpenTelemetry span 提取 trace_id / span_id 注入日志。
// ctx 中没有有效 span 时原样透传。
type EnrichHandler struct {
	base slog.Handler
}

// NewEnrichHandler 包装 base。
func NewEnrichHandler(base slog.Handler) (*EnrichHandler, error) {
	if base == nil {
		return nil, ErrNilHandler
	}
	return &EnrichHandler{base: base}, nil
}

// Enabled 委托给底层 handler。
func (h *EnrichHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.base.Enabled(ctx, level)
}

// Handle 注入追踪字段后交给底层 handler。record 先 Clone 再修改。
func (h *EnrichHandler) Handle(ctx context.Context, r slog.Record) error {
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		r = r.Clone()
		r.AddAttrs(
			slog.String(KeyTraceID, sc.TraceID().String()),
			slog.String(KeySpanID, sc.SpanID().String()),
		)
	}
	return h.base.Handle(ctx, r)
}

// WithAttrs 实现 slog.Handler。
func (h *EnrichHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &EnrichHandler{base: h.base.WithAttrs(attrs)}
}

// WithGroup 实现 slog.Handler。
func (h *EnrichHandler) WithGroup(name string) slog.Handler {
	return &EnrichHandler{base: h.base.WithGroup(name)}
}
