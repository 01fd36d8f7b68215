package xinetext

import (
	"github.com/omeyang/xinet/pkg/engine/xdb"
	"github.com/omeyang/xinet/pkg/engine/xtype"
	"github.com/omeyang/xinet/pkg/engine/xvector"
	"github.com/omeyang/xinet/pkg/inet/xinet"
)

// TypeName 是注册到类型目录的名称，同时也是扩展名。
const TypeName = "inet"

// 结构字段名。
const (
	FieldAddress = "address"
	FieldMask    = "mask"
)

// Type 返回 STRUCT(address HUGEINT, mask USMALLINT)，别名 inet。
func Type() xtype.LogicalType {
	return xtype.NewStruct(
		xtype.ChildType{Name: FieldAddress, Type: xtype.HugeintType},
		xtype.ChildType{Name: FieldMask, Type: xtype.USmallintType},
	).WithAlias(TypeName)
}

// Extension 是 inet 扩展。
type Extension struct {
	parser xinet.Parser
}

var _ xdb.Extension = (*Extension)(nil)

// New 创建扩展，opts 作用于注册的 VARCHAR → inet 转换。
func New(opts ...xinet.Option) *Extension {
	return &Extension{parser: xinet.NewParser(opts...)}
}

// Name 实现 xdb.Extension。
func (e *Extension) Name() string { return TypeName }

// Load 先创建 inet 类型，再注册两个方向的转换。
func (e *Extension) Load(tx *xdb.Tx) error {
	typ := Type()
	if err := tx.CreateType(TypeName, typ); err != nil {
		return err
	}
	if err := tx.RegisterCast(xtype.VarcharType, typ, e.convert); err != nil {
		return err
	}
	return tx.RegisterCast(typ, xtype.VarcharType, InetToVarchar)
}

func (e *Extension) convert(source, result xvector.Vector, count int) error {
	return convert(e.parser, source, result, count)
}
