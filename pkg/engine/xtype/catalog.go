package xtype

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Entry 是类型目录中的一条记录。
type Entry struct {
	Name string
	Type LogicalType
}

// Catalog 是并发安全的类型目录。零值不可用，使用 [NewCatalog] 创建。
type Catalog struct {
	mu    sync.RWMutex
	types map[string]Entry
}

// builtins 内置类型，无需注册即可按名解析。
var builtins = map[string]LogicalType{
	"varchar":   VarcharType,
	"hugeint":   HugeintType,
	"usmallint": USmallintType,
	"integer":   IntegerType,
}

// NewCatalog 创建空类型目录。
func NewCatalog() *Catalog {
	return &Catalog{types: make(map[string]Entry)}
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// CreateType 以 name 注册类型 typ。
// name 为空返回 [ErrEmptyTypeName]；与已注册类型或内置类型重名返回 [ErrTypeExists]。
func (c *Catalog) CreateType(name string, typ LogicalType) error {
	key := normalizeName(name)
	if key == "" {
		return ErrEmptyTypeName
	}
	if !typ.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidType, name)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := builtins[key]; ok {
		return fmt.Errorf("%w: %q is a builtin type", ErrTypeExists, name)
	}
	if _, ok := c.types[key]; ok {
		return fmt.Errorf("%w: %q", ErrTypeExists, name)
	}
	c.types[key] = Entry{Name: key, Type: typ}
	return nil
}

// HasType 报告 name 是否已注册（包含内置类型）。
func (c *Catalog) HasType(name string) bool {
	_, err := c.GetType(name)
	return err == nil
}

// GetType 按名查找类型，大小写不敏感。
func (c *Catalog) GetType(name string) (LogicalType, error) {
	key := normalizeName(name)
	if t, ok := builtins[key]; ok {
		return t, nil
	}

	c.mu.RLock()
	e, ok := c.types[key]
	c.mu.RUnlock()
	if !ok {
		return LogicalType{}, fmt.Errorf("%w: %q", ErrTypeNotFound, name)
	}
	return e.Type, nil
}

// Types 返回已注册的自定义类型，按名称排序。不包含内置类型。
func (c *Catalog) Types() []Entry {
	c.mu.RLock()
	out := make([]Entry, 0, len(c.types))
	for _, e := range c.types {
		out = append(out, e)
	}
	c.mu.RUnlock()

	slices.SortFunc(out, func(a, b Entry) int {
		return strings.Compare(a.Name, b.Name)
	})
	return out
}
