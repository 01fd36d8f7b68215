// Package observability 汇集 xinet 的日志与指标子包。
//
//   - xlog: 基于 log/slog 的结构化日志，可从 context 中的 span 补充 trace_id
//   - xrotate: 基于 lumberjack 的日志文件轮转，供 xlog 写文件时使用
//   - xmetrics: 观测接口及其 OpenTelemetry 实现，记录转换与入库的调用次数和耗时
//
// xinetctl 的 --stats 通过 xmetrics 读取进程内的计数。
package observability
