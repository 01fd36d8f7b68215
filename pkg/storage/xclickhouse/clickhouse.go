package xclickhouse

import (
	"context"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"

	"github.com/omeyang/xinet/pkg/engine/xvector"
)

// ClickHouse 定义 ClickHouse 包装器接口。
type ClickHouse interface {
	// Client 返回底层 ClickHouse 连接。关闭后仍可调用，但底层操作会返回驱动层错误。
	Client() driver.Conn

	// Health 通过 Ping 检测连接状态。关闭后返回 ErrClosed。
	Health(ctx context.Context) error

	// Stats 返回统计信息。
	Stats() Stats

	// Close 关闭连接。重复调用返回 ErrClosed。
	Close() error

	// CreateInetTable 创建存放 inet 值的 MergeTree 表（已存在时不报错）。
	CreateInetTable(ctx context.Context, table string) error

	// InsertInet 写入 v 的前 count 行。v 必须是 STRUCT(HUGEINT, USMALLINT) 向量。
	// 出错时 result 仍可能非 nil，表示已成功写入的部分。
	InsertInet(ctx context.Context, table string, v *xvector.StructVector, count int, opts InsertOptions) (*InsertResult, error)
}

// InsertOptions 写入选项。
type InsertOptions struct {
	// BatchSize 是每批行数。为 0 或负值时使用 DefaultBatchSize；
	// 超过 MaxBatchSize 返回 ErrBatchSizeTooLarge。
	BatchSize int
}

// InsertResult 写入结果。
type InsertResult struct {
	// InsertedRows 是成功发送的批次中的行数。
	InsertedRows int64

	// NullRows 是 InsertedRows 中整行为 NULL 的行数。
	NullRows int64

	// Batches 是成功发送的批次数。
	Batches int
}

// New 创建 ClickHouse 包装器。
//
//	conn, err := clickhouse.Open(&clickhouse.Options{Addr: []string{"localhost:9000"}})
//	if err != nil {
//	    return err
//	}
//	ch, err := xclickhouse.New(conn)
func New(client driver.Conn, opts ...Option) (ClickHouse, error) {
	if client == nil {
		return nil, ErrNilClient
	}
	options := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(options)
		}
	}
	return &clickhouseWrapper{conn: client, options: options}, nil
}
