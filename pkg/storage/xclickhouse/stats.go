package xclickhouse

// Stats 包含 ClickHouse 包装器的统计信息。
type Stats struct {
	// PingCount 是健康检查次数。
	PingCount int64

	// PingErrors 是健康检查失败次数。
	PingErrors int64

	// Batches 是成功发送的批次数。
	Batches int64

	// BatchErrors 是最终失败（重试耗尽或不可重试）的批次数。
	BatchErrors int64

	// InsertedRows 是成功写入的行数。
	InsertedRows int64

	// Retries 是批次重试次数。
	Retries int64

	// Pool 是驱动报告的连接池状态。
	Pool PoolStats
}

// PoolStats 包含连接池状态信息。
type PoolStats struct {
	Open  int
	Idle  int
	InUse int
}
