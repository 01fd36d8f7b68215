package xmetrics

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const (
	defaultInstrumentationName = "github.com/omeyang/xinet/xmetrics"
	unknownName                = "unknown"

	metricOperationTotal    = "xinet.operation.total"
	metricOperationDuration = "xinet.operation.duration"
)

type otelConfig struct {
	instrumentationName string
	tracerProvider      trace.TracerProvider
	meterProvider       metric.MeterProvider
	buckets             []float64
}

// Option 定义 OTel Observer 的配置选项。
type Option func(*otelConfig)

// WithInstrumentationName 设置 instrumentation 名称，空字符串保持默认值。
func WithInstrumentationName(name string) Option {
	return func(cfg *otelConfig) {
		if name != "" {
			cfg.instrumentationName = name
		}
	}
}

// WithTracerProvider 设置 TracerProvider，nil 时使用全局 provider。
func WithTracerProvider(provider trace.TracerProvider) Option {
	return func(cfg *otelConfig) {
		if provider != nil {
			cfg.tracerProvider = provider
		}
	}
}

// WithMeterProvider 设置 MeterProvider，nil 时使用全局 provider。
func WithMeterProvider(provider metric.MeterProvider) Option {
	return func(cfg *otelConfig) {
		if provider != nil {
			cfg.meterProvider = provider
		}
	}
}

// WithHistogramBuckets 设置耗时直方图的桶边界（秒），必须严格递增。
func WithHistogramBuckets(buckets ...float64) Option {
	return func(cfg *otelConfig) {
		cfg.buckets = slices.Clone(buckets)
	}
}

// NewOTelObserver 创建基于 OpenTelemetry 的 Observer。
func NewOTelObserver(opts ...Option) (Observer, error) {
	cfg := &otelConfig{
		instrumentationName: defaultInstrumentationName,
		tracerProvider:      otel.GetTracerProvider(),
		meterProvider:       otel.GetMeterProvider(),
	}
	for _, opt := range opts {
		if opt == nil {
			return nil, ErrNilOption
		}
		opt(cfg)
	}
	for i := 1; i < len(cfg.buckets); i++ {
		if cfg.buckets[i] <= cfg.buckets[i-1] {
			return nil, fmt.Errorf("%w: %v", ErrInvalidBuckets, cfg.buckets)
		}
	}

	meter := cfg.meterProvider.Meter(cfg.instrumentationName)

	total, err := meter.Int64Counter(
		metricOperationTotal,
		metric.WithDescription("total operations"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCreateCounter, err)
	}

	histOpts := []metric.Float64HistogramOption{
		metric.WithDescription("operation duration"),
		metric.WithUnit("s"),
	}
	if len(cfg.buckets) > 0 {
		histOpts = append(histOpts, metric.WithExplicitBucketBoundaries(cfg.buckets...))
	}
	duration, err := meter.Float64Histogram(metricOperationDuration, histOpts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCreateHistogram, err)
	}

	return &otelObserver{
		tracer:   cfg.tracerProvider.Tracer(cfg.instrumentationName),
		total:    total,
		duration: duration,
	}, nil
}

type otelObserver struct {
	tracer   trace.Tracer
	total    metric.Int64Counter
	duration metric.Float64Histogram
}

// Start 开始一次观测跨度。
func (o *otelObserver) Start(ctx context.Context, opts SpanOptions) (context.Context, Span) {
	if ctx == nil {
		ctx = context.Background()
	}

	component := orUnknown(opts.Component)
	operation := orUnknown(opts.Operation)

	attrs := make([]attribute.KeyValue, 0, 2+len(opts.Attrs))
	attrs = append(attrs,
		attribute.String("component", component),
		attribute.String("operation", operation),
	)
	attrs = append(attrs, attrsToOTel(opts.Attrs)...)

	kind := trace.SpanKindInternal
	if opts.Kind == KindClient {
		kind = trace.SpanKindClient
	}
	ctx, span := o.tracer.Start(ctx, component+"."+operation,
		trace.WithSpanKind(kind),
		trace.WithAttributes(attrs...),
	)

	return ctx, &otelSpan{
		span:      span,
		observer:  o,
		ctx:       ctx,
		component: component,
		operation: operation,
		start:     time.Now(),
	}
}

type otelSpan struct {
	span      trace.Span
	observer  *otelObserver
	ctx       context.Context
	component string
	operation string
	start     time.Time
	endOnce   sync.Once
}

// End 结束观测并记录结果。多次调用只记录一次。
func (s *otelSpan) End(result Result) {
	s.endOnce.Do(func() {
		status := resolveStatus(result)

		if result.Err != nil {
			s.span.RecordError(result.Err)
		}
		if status == StatusError {
			msg := "operation failed"
			if result.Err != nil {
				msg = result.Err.Error()
			}
			s.span.SetStatus(codes.Error, msg)
		} else {
			s.span.SetStatus(codes.Ok, "")
		}
		if len(result.Attrs) > 0 {
			s.span.SetAttributes(attrsToOTel(result.Attrs)...)
		}
		s.span.End()

		// 请求 ctx 已取消时指标仍需记录
		metricsCtx := context.WithoutCancel(s.ctx)
		set := metric.WithAttributes(
			attribute.String("component", s.component),
			attribute.String("operation", s.operation),
			attribute.String("status", string(status)),
		)
		s.observer.total.Add(metricsCtx, 1, set)
		s.observer.duration.Record(metricsCtx, time.Since(s.start).Seconds(), set)
	})
}

func orUnknown(s string) string {
	if s == "" {
		return unknownName
	}
	return s
}

func attrsToOTel(attrs []Attr) []attribute.KeyValue {
	if len(attrs) == 0 {
		return nil
	}
	out := make([]attribute.KeyValue, 0, len(attrs))
	for _, a := range attrs {
		if a.Key == "" || a.Value == nil {
			continue
		}
		out = append(out, toKeyValue(a))
	}
	return out
}

func toKeyValue(a Attr) attribute.KeyValue {
	switch v := a.Value.(type) {
	case string:
		return attribute.String(a.Key, v)
	case bool:
		return attribute.Bool(a.Key, v)
	case int:
		return attribute.Int(a.Key, v)
	case int64:
		return attribute.Int64(a.Key, v)
	case time.Duration:
		return attribute.Int64(a.Key, v.Nanoseconds())
	default:
		return attribute.String(a.Key, fmt.Sprint(v))
	}
}
