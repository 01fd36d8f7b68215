// Package xmetrics 提供统一的可观测性接口（metrics + tracing）。
//
// 业务代码只依赖 [Observer]/[Span]/[Attr] 三个最小接口，
// 默认实现基于 OpenTelemetry；不需要观测时使用 [NoopObserver]。
//
//	ctx, span := xmetrics.Start(ctx, obs, xmetrics.SpanOptions{
//		Component: "xdb",
//		Operation: "cast",
//	})
//	defer func() { span.End(xmetrics.Result{Err: err}) }()
//
// # 指标
//
//   - xinet.operation.total: 操作计数
//   - xinet.operation.duration: 操作耗时（秒）
//
// 两者都带 component / operation / status 三个属性。
package xmetrics
