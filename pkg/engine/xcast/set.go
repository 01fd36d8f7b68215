package xcast

import (
	"fmt"
	"sync"

	"github.com/omeyang/xinet/pkg/engine/xtype"
	"github.com/omeyang/xinet/pkg/engine/xvector"
)

// Func 将 source 的前 count 行转换并写入预先分配的 result。
// 返回错误时，已写入 result 的行保持原样。
type Func func(source, result xvector.Vector, count int) error

type castKey struct {
	source string
	target string
}

func keyOf(source, target xtype.LogicalType) castKey {
	return castKey{source: source.Key(), target: target.Key()}
}

// Set 是并发安全的转换函数集合。
type Set struct {
	mu    sync.RWMutex
	funcs map[castKey]Func
}

// NewSet 创建空集合。
func NewSet() *Set {
	return &Set{funcs: make(map[castKey]Func)}
}

// Register 注册 source → target 的转换函数。同一方向重复注册时后者覆盖前者。
func (s *Set) Register(source, target xtype.LogicalType, fn Func) error {
	if fn == nil {
		return ErrNilFunc
	}
	if !source.IsValid() || !target.IsValid() {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidType, source, target)
	}
	s.mu.Lock()
	s.funcs[keyOf(source, target)] = fn
	s.mu.Unlock()
	return nil
}

// Lookup 查找 source → target 的转换函数。
func (s *Set) Lookup(source, target xtype.LogicalType) (Func, bool) {
	s.mu.RLock()
	fn, ok := s.funcs[keyOf(source, target)]
	s.mu.RUnlock()
	return fn, ok
}

// Len 返回已注册的转换方向数量。
func (s *Set) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.funcs)
}
