package xclickhouse

import "errors"

// 包级别错误定义。
var (
	// ErrNilClient 表示传入了 nil 连接。
	ErrNilClient = errors.New("xclickhouse: nil client")

	// ErrClosed 表示包装器已关闭。
	ErrClosed = errors.New("xclickhouse: client closed")

	// ErrEmptyTable 表示表名为空。
	ErrEmptyTable = errors.New("xclickhouse: empty table name")

	// ErrInvalidTableName 表示表名包含非法字符。
	ErrInvalidTableName = errors.New("xclickhouse: invalid table name")

	// ErrNilVector 表示待写入的向量为 nil。
	ErrNilVector = errors.New("xclickhouse: nil vector")

	// ErrVectorShape 表示向量不是 STRUCT(HUGEINT, USMALLINT)。
	ErrVectorShape = errors.New("xclickhouse: vector is not an inet struct")

	// ErrCountOutOfRange 表示行数为负或超过向量长度。
	ErrCountOutOfRange = errors.New("xclickhouse: row count out of range")

	// ErrEmptyRows 表示没有可写入的行。
	ErrEmptyRows = errors.New("xclickhouse: empty rows")

	// ErrBatchSizeTooLarge 表示批次大小超过 MaxBatchSize。
	ErrBatchSizeTooLarge = errors.New("xclickhouse: batch size too large")
)
