package storageopt

import "sync/atomic"

// HealthCounter 健康检查计数器。
type HealthCounter struct {
	pingCount  atomic.Int64
	pingErrors atomic.Int64
}

// IncPing 增加 ping 计数。
func (h *HealthCounter) IncPing() { h.pingCount.Add(1) }

// IncPingError 增加 ping 错误计数。
func (h *HealthCounter) IncPingError() { h.pingErrors.Add(1) }

// PingCount 返回 ping 计数。
func (h *HealthCounter) PingCount() int64 { return h.pingCount.Load() }

// PingErrors 返回 ping 错误计数。
func (h *HealthCounter) PingErrors() int64 { return h.pingErrors.Load() }

// WriteCounter 批量写入计数器。
// 批次与行分开统计：一个批次失败时其行不计入 Rows。
type WriteCounter struct {
	batches     atomic.Int64
	batchErrors atomic.Int64
	rows        atomic.Int64
	retries     atomic.Int64
}

// IncBatch 增加批次计数。
func (w *WriteCounter) IncBatch() { w.batches.Add(1) }

// IncBatchError 增加失败批次计数。
func (w *WriteCounter) IncBatchError() { w.batchErrors.Add(1) }

// AddRows 累加成功写入的行数。
func (w *WriteCounter) AddRows(n int64) { w.rows.Add(n) }

// IncRetry 增加重试计数。
func (w *WriteCounter) IncRetry() { w.retries.Add(1) }

// Batches 返回批次计数。
func (w *WriteCounter) Batches() int64 { return w.batches.Load() }

// BatchErrors 返回失败批次计数。
func (w *WriteCounter) BatchErrors() int64 { return w.batchErrors.Load() }

// Rows 返回成功写入的行数。
func (w *WriteCounter) Rows() int64 { return w.rows.Load() }

// Retries 返回重试计数。
func (w *WriteCounter) Retries() int64 { return w.retries.Load() }
