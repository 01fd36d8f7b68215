package xmetrics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

// =============================================================================
// 测试辅助函数
// =============================================================================

func newTestProviders(t *testing.T) (*tracetest.InMemoryExporter, *sdkmetric.ManualReader, []Option) {
	t.Helper()
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() {
		_ = tp.Shutdown(context.Background())
		_ = mp.Shutdown(context.Background())
	})
	return exporter, reader, []Option{WithTracerProvider(tp), WithMeterProvider(mp)}
}

func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]metricdata.Metrics {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	out := make(map[string]metricdata.Metrics)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			out[m.Name] = m
		}
	}
	return out
}

// =============================================================================
// NewOTelObserver 测试
// =============================================================================

func TestNewOTelObserver_Options(t *testing.T) {
	_, _, opts := newTestProviders(t)

	obs, err := NewOTelObserver(append(opts,
		WithInstrumentationName(""),
		WithHistogramBuckets(0.001, 0.01, 0.1),
	)...)
	require.NoError(t, err)
	assert.NotNil(t, obs)

	_, err = NewOTelObserver(nil)
	assert.ErrorIs(t, err, ErrNilOption)

	_, err = NewOTelObserver(WithHistogramBuckets(1, 1))
	assert.ErrorIs(t, err, ErrInvalidBuckets)
}

// =============================================================================
// Span 测试
// =============================================================================

func TestOTelObserver_SpanAndMetrics(t *testing.T) {
	exporter, reader, opts := newTestProviders(t)
	obs, err := NewOTelObserver(opts...)
	require.NoError(t, err)

	_, span := obs.Start(context.Background(), SpanOptions{
		Component: "xdb",
		Operation: "cast",
		Attrs:     []Attr{String("source", "VARCHAR"), Int("rows", 3), {Key: "", Value: 1}},
	})
	span.End(Result{Attrs: []Attr{Duration("elapsed", time.Millisecond)}})
	span.End(Result{Err: errors.New("ignored")})

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "xdb.cast", spans[0].Name)
	assert.Equal(t, trace.SpanKindInternal, spans[0].SpanKind)
	assert.Equal(t, codes.Ok, spans[0].Status.Code)
	assert.Contains(t, spans[0].Attributes, attribute.Int("rows", 3))
	assert.Contains(t, spans[0].Attributes, attribute.Int64("elapsed", int64(time.Millisecond)))

	metrics := collect(t, reader)
	total, ok := metrics[metricOperationTotal].Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, total.DataPoints, 1)
	assert.Equal(t, int64(1), total.DataPoints[0].Value)
	status, _ := total.DataPoints[0].Attributes.Value("status")
	assert.Equal(t, "ok", status.AsString())

	_, ok = metrics[metricOperationDuration].Data.(metricdata.Histogram[float64])
	assert.True(t, ok)
}

func TestOTelObserver_ErrorStatus(t *testing.T) {
	exporter, reader, opts := newTestProviders(t)
	obs, err := NewOTelObserver(opts...)
	require.NoError(t, err)

	_, span := obs.Start(context.Background(), SpanOptions{Kind: KindClient})
	span.End(Result{Err: errors.New("boom")})

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "unknown.unknown", spans[0].Name)
	assert.Equal(t, trace.SpanKindClient, spans[0].SpanKind)
	assert.Equal(t, codes.Error, spans[0].Status.Code)
	assert.Equal(t, "boom", spans[0].Status.Description)

	total := collect(t, reader)[metricOperationTotal].Data.(metricdata.Sum[int64])
	status, _ := total.DataPoints[0].Attributes.Value("status")
	assert.Equal(t, "error", status.AsString())
}

func TestOTelObserver_CanceledContextStillRecords(t *testing.T) {
	_, reader, opts := newTestProviders(t)
	obs, err := NewOTelObserver(opts...)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	_, span := obs.Start(ctx, SpanOptions{Component: "c", Operation: "o"})
	cancel()
	span.End(Result{Status: StatusError})

	total := collect(t, reader)[metricOperationTotal].Data.(metricdata.Sum[int64])
	require.Len(t, total.DataPoints, 1)
	assert.Equal(t, int64(1), total.DataPoints[0].Value)
}

func TestToKeyValue(t *testing.T) {
	assert.Equal(t, attribute.Bool("b", true), toKeyValue(Bool("b", true)))
	assert.Equal(t, attribute.Int64("i", 7), toKeyValue(Int64("i", 7)))
	assert.Equal(t, attribute.String("s", "[1 2]"), toKeyValue(Attr{Key: "s", Value: []int{1, 2}}))
	assert.Nil(t, attrsToOTel(nil))
}

func TestDomainAttrs(t *testing.T) {
	assert.Equal(t, []Attr{
		{Key: AttrSource, Value: "VARCHAR"},
		{Key: AttrTarget, Value: "inet"},
	}, CastTypes("VARCHAR", "inet"))
	assert.Equal(t, Attr{Key: AttrRows, Value: 3}, Rows(3))
	assert.Equal(t, []Attr{{Key: AttrDBSystem, Value: "clickhouse"}}, ClickHouse(""))
	assert.Equal(t, []Attr{
		{Key: AttrDBSystem, Value: "clickhouse"},
		{Key: AttrDBTable, Value: "db.t"},
	}, ClickHouse("db.t"))
}
