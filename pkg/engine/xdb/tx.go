package xdb

import (
	"fmt"
	"strings"
	"sync"

	"github.com/omeyang/xinet/pkg/engine/xcast"
	"github.com/omeyang/xinet/pkg/engine/xtype"
)

type pendingCast struct {
	source xtype.LogicalType
	target xtype.LogicalType
	fn     xcast.Func
}

// Tx 暂存类型与转换函数的登记，Commit 时一次性写入数据库。
// Tx 可被多个 goroutine 使用，但通常只在扩展的 Load 中使用。
type Tx struct {
	db    *Database
	mu    sync.Mutex
	types []xtype.Entry
	casts []pendingCast
	done  bool
}

// CreateType 登记一个具名类型。与已有类型或本事务中已登记的类型重名时立即返回错误。
func (tx *Tx) CreateType(name string, typ xtype.LogicalType) error {
	tx.mu.Lock()
	defer tx.mu.Unlock()
	if tx.done {
		return ErrTxDone
	}

	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return xtype.ErrEmptyTypeName
	}
	if !typ.IsValid() {
		return fmt.Errorf("%w: %q", xtype.ErrInvalidType, name)
	}
	if tx.db.catalog.HasType(key) || tx.pendingType(key) {
		return fmt.Errorf("%w: %q", xtype.ErrTypeExists, key)
	}
	tx.types = append(tx.types, xtype.Entry{Name: key, Type: typ})
	return nil
}

// GetType 解析类型名，能看到本事务中尚未提交的类型。
func (tx *Tx) GetType(name string) (xtype.LogicalType, error) {
	tx.mu.Lock()
	defer tx.mu.Unlock()
	key := strings.ToLower(strings.TrimSpace(name))
	for _, e := range tx.types {
		if e.Name == key {
			return e.Type, nil
		}
	}
	return tx.db.catalog.GetType(key)
}

func (tx *Tx) pendingType(key string) bool {
	for _, e := range tx.types {
		if e.Name == key {
			return true
		}
	}
	return false
}

// RegisterCast 登记 source → target 的转换函数。
func (tx *Tx) RegisterCast(source, target xtype.LogicalType, fn xcast.Func) error {
	tx.mu.Lock()
	defer tx.mu.Unlock()
	if tx.done {
		return ErrTxDone
	}
	if fn == nil {
		return xcast.ErrNilFunc
	}
	if !source.IsValid() || !target.IsValid() {
		return fmt.Errorf("%w: %s -> %s", xcast.ErrInvalidType, source, target)
	}
	tx.casts = append(tx.casts, pendingCast{source: source, target: target, fn: fn})
	return nil
}

// Commit 先创建全部类型，再注册全部转换函数。
// 类型冲突在写入任何内容之前检测，冲突时整个事务不生效。
func (tx *Tx) Commit() error {
	tx.mu.Lock()
	defer tx.mu.Unlock()
	if tx.done {
		return ErrTxDone
	}
	tx.done = true

	db := tx.db
	db.commitMu.Lock()
	defer db.commitMu.Unlock()

	for _, e := range tx.types {
		if db.catalog.HasType(e.Name) {
			return fmt.Errorf("%w: %q", xtype.ErrTypeExists, e.Name)
		}
	}
	for _, e := range tx.types {
		if err := db.catalog.CreateType(e.Name, e.Type); err != nil {
			return err
		}
	}
	for _, c := range tx.casts {
		if err := db.casts.Register(c.source, c.target, c.fn); err != nil {
			return err
		}
	}
	return nil
}

// Rollback 丢弃所有登记。对已结束的事务调用是空操作。
func (tx *Tx) Rollback() {
	tx.mu.Lock()
	defer tx.mu.Unlock()
	tx.done = true
	tx.types = nil
	tx.casts = nil
}
