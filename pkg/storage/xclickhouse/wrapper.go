package xclickhouse

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"sync/atomic"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"

	"github.com/omeyang/xinet/internal/storageopt"
	"github.com/omeyang/xinet/pkg/engine/xvector"
	"github.com/omeyang/xinet/pkg/observability/xlog"
	"github.com/omeyang/xinet/pkg/observability/xmetrics"
)

const (
	clickhouseComponent = "xclickhouse"

	// DefaultBatchSize 默认每批行数。
	DefaultBatchSize = 10000

	// MaxBatchSize 单批允许的最大行数。
	MaxBatchSize = 100000
)

// createInetTableSQL 的 %s 只接受通过 validateTableName 的表名。
const createInetTableSQL = `CREATE TABLE IF NOT EXISTS %s (
    address Nullable(Int128),
    mask Nullable(UInt16)
) ENGINE = MergeTree ORDER BY tuple()`

// tableNamePattern 支持 table、db.table 以及反引号包围的两种形式，反引号内禁止控制字符。
var tableNamePattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*(\.[a-zA-Z_][a-zA-Z0-9_]*)?$|^` + "`[^`\\x00-\\x1f]+`" + `(\.` + "`[^`\\x00-\\x1f]+`" + `)?$`)

func validateTableName(table string) error {
	if table == "" {
		return ErrEmptyTable
	}
	if !tableNamePattern.MatchString(table) {
		return ErrInvalidTableName
	}
	return nil
}

// clickhouseWrapper 实现 ClickHouse 接口。
type clickhouseWrapper struct {
	conn    driver.Conn
	options *Options

	closed atomic.Bool

	healthCounter storageopt.HealthCounter
	writeCounter  storageopt.WriteCounter
}

// Client 返回底层 ClickHouse 连接。
func (w *clickhouseWrapper) Client() driver.Conn {
	return w.conn
}

// Health 执行健康检查。
func (w *clickhouseWrapper) Health(ctx context.Context) (err error) {
	if w.closed.Load() {
		return ErrClosed
	}

	ctx, span := xmetrics.Start(ctx, w.options.Observer, xmetrics.SpanOptions{
		Component: clickhouseComponent,
		Operation: "health",
		Kind:      xmetrics.KindClient,
		Attrs:     xmetrics.ClickHouse(""),
	})
	defer func() { span.End(xmetrics.Result{Err: err}) }()

	w.healthCounter.IncPing()
	ctx, cancel := storageopt.HealthContext(ctx, w.options.HealthTimeout)
	defer cancel()

	if err := w.conn.Ping(ctx); err != nil {
		w.healthCounter.IncPingError()
		return err
	}
	return nil
}

// Stats 返回统计信息。
func (w *clickhouseWrapper) Stats() Stats {
	ds := w.conn.Stats()
	return Stats{
		PingCount:    w.healthCounter.PingCount(),
		PingErrors:   w.healthCounter.PingErrors(),
		Batches:      w.writeCounter.Batches(),
		BatchErrors:  w.writeCounter.BatchErrors(),
		InsertedRows: w.writeCounter.Rows(),
		Retries:      w.writeCounter.Retries(),
		Pool: PoolStats{
			Open:  ds.Open,
			Idle:  ds.Idle,
			InUse: ds.Open - ds.Idle,
		},
	}
}

// Close 关闭 ClickHouse 连接。
func (w *clickhouseWrapper) Close() error {
	if !w.closed.CompareAndSwap(false, true) {
		return ErrClosed
	}
	return w.conn.Close()
}

// CreateInetTable 创建 inet 表。
func (w *clickhouseWrapper) CreateInetTable(ctx context.Context, table string) (err error) {
	if w.closed.Load() {
		return ErrClosed
	}
	if err := validateTableName(table); err != nil {
		return err
	}

	ctx, span := xmetrics.Start(ctx, w.options.Observer, xmetrics.SpanOptions{
		Component: clickhouseComponent,
		Operation: "create_table",
		Kind:      xmetrics.KindClient,
		Attrs:     xmetrics.ClickHouse(table),
	})
	defer func() { span.End(xmetrics.Result{Err: err}) }()

	if err := w.conn.Exec(ctx, fmt.Sprintf(createInetTableSQL, table)); err != nil {
		return fmt.Errorf("create table %s: %w", table, err)
	}
	return nil
}

// InsertInet 分批写入 inet 结构列。
func (w *clickhouseWrapper) InsertInet(ctx context.Context, table string, v *xvector.StructVector, count int, opts InsertOptions) (result *InsertResult, err error) {
	if w.closed.Load() {
		return nil, ErrClosed
	}
	if err := validateTableName(table); err != nil {
		return nil, err
	}
	batchSize := opts.BatchSize
	if batchSize < 1 {
		batchSize = DefaultBatchSize
	}
	if batchSize > MaxBatchSize {
		return nil, fmt.Errorf("%w: %d > %d", ErrBatchSizeTooLarge, batchSize, MaxBatchSize)
	}
	rows, err := inetRows(v, count)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrEmptyRows
	}

	start := time.Now()
	ctx, span := xmetrics.Start(ctx, w.options.Observer, xmetrics.SpanOptions{
		Component: clickhouseComponent,
		Operation: "insert_inet",
		Kind:      xmetrics.KindClient,
		Attrs:     append(xmetrics.ClickHouse(table), xmetrics.Rows(len(rows))),
	})
	result = &InsertResult{}
	defer func() {
		span.End(xmetrics.Result{Err: err, Attrs: []xmetrics.Attr{
			xmetrics.Int64("inserted_rows", result.InsertedRows),
			xmetrics.Int("batches", result.Batches),
			xmetrics.Duration("elapsed", time.Since(start)),
		}})
	}()

	for first := 0; first < len(rows); first += batchSize {
		index := first / batchSize
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("context done before batch %d: %w", index, err)
		}
		chunk := rows[first:min(first+batchSize, len(rows))]
		if err := w.sendWithRetry(ctx, table, index, chunk); err != nil {
			w.writeCounter.IncBatchError()
			w.options.Logger.Error(ctx, "inet batch failed",
				xlog.Component(clickhouseComponent),
				slog.String("table", table),
				slog.Int("batch", index),
				xlog.Err(err),
			)
			return result, fmt.Errorf("batch %d: %w", index, err)
		}
		w.writeCounter.IncBatch()
		w.writeCounter.AddRows(int64(len(chunk)))
		result.Batches++
		result.InsertedRows += int64(len(chunk))
		for _, r := range chunk {
			if r.isNull() {
				result.NullRows++
			}
		}
	}
	return result, nil
}

// sendWithRetry 发送一个批次；每次尝试都重新 PrepareBatch。
func (w *clickhouseWrapper) sendWithRetry(ctx context.Context, table string, index int, chunk []inetRow) error {
	policy := w.options.Retry
	policy.OnRetry = func(n uint, err error) {
		w.writeCounter.IncRetry()
		w.options.Logger.Warn(ctx, "retrying inet batch",
			xlog.Component(clickhouseComponent),
			slog.String("table", table),
			slog.Int("batch", index),
			slog.Uint64("attempt", uint64(n)+1),
			xlog.Err(err),
		)
	}
	return storageopt.Retry(ctx, policy, func() error {
		return w.sendBatch(ctx, table, chunk)
	})
}

func (w *clickhouseWrapper) sendBatch(ctx context.Context, table string, chunk []inetRow) error {
	batch, err := w.conn.PrepareBatch(ctx, fmt.Sprintf("INSERT INTO %s (address, mask)", table))
	if err != nil {
		return fmt.Errorf("prepare batch: %w", err)
	}
	for i, r := range chunk {
		if err := batch.Append(r.address, r.mask); err != nil {
			return storageopt.Permanent(abort(batch, fmt.Errorf("append row %d: %w", i, err)))
		}
	}
	if err := ctx.Err(); err != nil {
		return storageopt.Permanent(abort(batch, fmt.Errorf("context done before send: %w", err)))
	}
	if err := batch.Send(); err != nil {
		return fmt.Errorf("send batch: %w", err)
	}
	return nil
}

// abort 中止批次，把中止失败合并进 cause。
func abort(batch driver.Batch, cause error) error {
	if err := batch.Abort(); err != nil {
		return errors.Join(cause, fmt.Errorf("abort batch: %w", err))
	}
	return cause
}
