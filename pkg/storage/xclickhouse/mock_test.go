package xclickhouse

import (
	"context"
	"errors"
	"sync"

	"github.com/ClickHouse/clickhouse-go/v2/lib/column"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/ClickHouse/clickhouse-go/v2/lib/proto"
)

var (
	_ driver.Conn  = (*mockConn)(nil)
	_ driver.Batch = (*mockBatch)(nil)
)

// mockConn 实现 driver.Conn，记录 Exec 语句与发送成功的批次。
type mockConn struct {
	mu sync.Mutex

	pingErr  error
	closeErr error
	execErr  error
	closed   bool
	stats    driver.Stats

	// prepareErrs 按调用顺序返回，耗尽后返回 nil。
	prepareErrs []error

	// newBatch 为每次 PrepareBatch 创建批次，为 nil 时使用 &mockBatch{}。
	newBatch func(query string) *mockBatch

	execs    []string
	prepares []string
	batches  []*mockBatch
}

func (m *mockConn) Contributors() []string { return []string{"test"} }

func (m *mockConn) ServerVersion() (*proto.ServerHandshake, error) {
	return &proto.ServerHandshake{}, nil
}

func (m *mockConn) Select(context.Context, any, string, ...any) error { return nil }

func (m *mockConn) Query(context.Context, string, ...any) (driver.Rows, error) {
	return nil, errors.New("query not implemented")
}

func (m *mockConn) QueryRow(context.Context, string, ...any) driver.Row {
	return &mockRow{err: errors.New("queryRow not implemented")}
}

func (m *mockConn) PrepareBatch(_ context.Context, query string, _ ...driver.PrepareBatchOption) (driver.Batch, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.prepares = append(m.prepares, query)
	if len(m.prepareErrs) > 0 {
		err := m.prepareErrs[0]
		m.prepareErrs = m.prepareErrs[1:]
		if err != nil {
			return nil, err
		}
	}
	b := &mockBatch{}
	if m.newBatch != nil {
		b = m.newBatch(query)
	}
	m.batches = append(m.batches, b)
	return b, nil
}

func (m *mockConn) Exec(_ context.Context, query string, _ ...any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.execs = append(m.execs, query)
	return m.execErr
}

func (m *mockConn) AsyncInsert(context.Context, string, bool, ...any) error { return nil }

func (m *mockConn) Ping(context.Context) error { return m.pingErr }

func (m *mockConn) Stats() driver.Stats { return m.stats }

func (m *mockConn) Close() error {
	m.closed = true
	return m.closeErr
}

// sentRows 汇总所有发送成功批次中的行。
func (m *mockConn) sentRows() [][]any {
	m.mu.Lock()
	defer m.mu.Unlock()
	var rows [][]any
	for _, b := range m.batches {
		if b.sent {
			rows = append(rows, b.rows...)
		}
	}
	return rows
}

// mockRow 实现 driver.Row。
type mockRow struct {
	err error
}

func (m *mockRow) Err() error           { return m.err }
func (m *mockRow) Scan(...any) error    { return m.err }
func (m *mockRow) ScanStruct(any) error { return m.err }

// mockBatchColumn 实现 driver.BatchColumn。
type mockBatchColumn struct{}

func (mockBatchColumn) Append(any) error    { return nil }
func (mockBatchColumn) AppendRow(any) error { return nil }

// mockBatch 实现 driver.Batch，记录追加的行。
type mockBatch struct {
	appendErr error
	sendErr   error
	abortErr  error

	// onAppend 在每次 Append 成功后调用。
	onAppend func(rows int)

	rows    [][]any
	sent    bool
	aborted bool
}

func (m *mockBatch) Abort() error {
	m.aborted = true
	return m.abortErr
}

func (m *mockBatch) Append(v ...any) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.rows = append(m.rows, v)
	if m.onAppend != nil {
		m.onAppend(len(m.rows))
	}
	return nil
}

func (m *mockBatch) AppendStruct(any) error        { return errors.New("AppendStruct not used") }
func (m *mockBatch) Column(int) driver.BatchColumn { return mockBatchColumn{} }
func (m *mockBatch) Flush() error                  { return nil }
func (m *mockBatch) IsSent() bool                  { return m.sent }
func (m *mockBatch) Rows() int                     { return len(m.rows) }
func (m *mockBatch) Columns() []column.Interface   { return nil }
func (m *mockBatch) Close() error                  { return nil }

func (m *mockBatch) Send() error {
	if m.sendErr != nil {
		return m.sendErr
	}
	m.sent = true
	return nil
}
