// Package xlog 基于 log/slog 的结构化日志库。
//
// # 创建 Logger
//
// Builder 模式，遇到第一个配置错误后后续 Set 被跳过（first-error-wins）：
//
//	logger, cleanup, err := xlog.New().
//		SetLevelString("debug").
//		SetFormat("json").
//		SetRotation("/var/log/xinetctl.log").
//		Build()
//	defer cleanup()
//
// 所有日志方法第一个参数都是 context.Context。启用 enrich（默认）时，
// ctx 中的 OpenTelemetry span 会以 trace_id / span_id 字段注入日志。
//
// # 全局 Logger
//
// [Default] / [SetDefault] 供命令行工具等简单场景使用；库代码应显式持有 [Logger]，
// 不需要输出时使用 [Discard]。
//
// # 便捷属性
//
// [Err]、[Duration]、[Component]、[Operation]、[Count]。
package xlog
