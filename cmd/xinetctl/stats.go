package main

import (
	"context"
	"fmt"
	"io"
	"sort"

	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/omeyang/xinet/pkg/observability/xmetrics"
)

const operationTotalMetric = "xinet.operation.total"

// statsCollector 用进程内的 OTel ManualReader 汇总各操作的调用次数。
type statsCollector struct {
	reader   *sdkmetric.ManualReader
	provider *sdkmetric.MeterProvider
	observer xmetrics.Observer
}

func newStatsCollector() (*statsCollector, error) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	observer, err := xmetrics.NewOTelObserver(xmetrics.WithMeterProvider(provider))
	if err != nil {
		return nil, err
	}
	return &statsCollector{reader: reader, provider: provider, observer: observer}, nil
}

// operationCount 是一条 component/operation/status 维度的计数。
type operationCount struct {
	name   string
	status string
	count  int64
}

func (c *statsCollector) collect(ctx context.Context) ([]operationCount, error) {
	var rm metricdata.ResourceMetrics
	if err := c.reader.Collect(context.WithoutCancel(ctx), &rm); err != nil {
		return nil, err
	}
	var out []operationCount
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != operationTotalMetric {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}
			for _, dp := range sum.DataPoints {
				out = append(out, operationCount{
					name:   attr(dp.Attributes, "component") + "." + attr(dp.Attributes, "operation"),
					status: attr(dp.Attributes, "status"),
					count:  dp.Value,
				})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].name != out[j].name {
			return out[i].name < out[j].name
		}
		return out[i].status < out[j].status
	})
	return out, nil
}

func (c *statsCollector) report(ctx context.Context, w io.Writer) error {
	counts, err := c.collect(ctx)
	if err != nil {
		return err
	}
	for _, oc := range counts {
		fmt.Fprintf(w, "%s\t%s\t%d\n", oc.name, oc.status, oc.count)
	}
	return nil
}

func (c *statsCollector) shutdown(ctx context.Context) error {
	return c.provider.Shutdown(context.WithoutCancel(ctx))
}

func attr(set attribute.Set, key string) string {
	v, ok := set.Value(attribute.Key(key))
	if !ok {
		return ""
	}
	return v.AsString()
}
