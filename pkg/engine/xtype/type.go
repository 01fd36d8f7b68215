package xtype

import (
	"strconv"
	"strings"
)

// TypeID 标识逻辑类型的物理种类。
type TypeID uint8

const (
	// TypeInvalid 零值，表示无效类型。
	TypeInvalid TypeID = iota
	// TypeInteger 32 位有符号整数。
	TypeInteger
	// TypeUSmallint 16 位无符号整数。
	TypeUSmallint
	// TypeHugeint 128 位有符号整数。
	TypeHugeint
	// TypeVarchar 变长字符串。
	TypeVarchar
	// TypeStruct 具名字段组合类型。
	TypeStruct
)

// String 返回类型种类的 SQL 名称。
func (id TypeID) String() string {
	switch id {
	case TypeInteger:
		return "INTEGER"
	case TypeUSmallint:
		return "USMALLINT"
	case TypeHugeint:
		return "HUGEINT"
	case TypeVarchar:
		return "VARCHAR"
	case TypeStruct:
		return "STRUCT"
	case TypeInvalid:
		return "INVALID"
	default:
		return "TypeID(" + strconv.Itoa(int(id)) + ")"
	}
}

// ChildType 是 STRUCT 类型的一个具名字段。
type ChildType struct {
	Name string
	Type LogicalType
}

// LogicalType 描述一个逻辑类型。值类型，可安全复制。
// 零值为 Invalid 类型。
type LogicalType struct {
	id       TypeID
	alias    string
	children []ChildType
}

// 内置标量类型。
var (
	VarcharType   = LogicalType{id: TypeVarchar}
	HugeintType   = LogicalType{id: TypeHugeint}
	USmallintType = LogicalType{id: TypeUSmallint}
	IntegerType   = LogicalType{id: TypeInteger}
)

// NewStruct 创建 STRUCT 类型。children 会被复制，调用方后续修改不影响返回值。
func NewStruct(children ...ChildType) LogicalType {
	cp := make([]ChildType, len(children))
	copy(cp, children)
	return LogicalType{id: TypeStruct, children: cp}
}

// ID 返回类型种类。
func (t LogicalType) ID() TypeID { return t.id }

// Alias 返回类型别名，无别名时为空。
func (t LogicalType) Alias() string { return t.alias }

// Children 返回 STRUCT 字段列表的副本；非 STRUCT 类型返回 nil。
func (t LogicalType) Children() []ChildType {
	if len(t.children) == 0 {
		return nil
	}
	cp := make([]ChildType, len(t.children))
	copy(cp, t.children)
	return cp
}

// IsValid 报告 t 是否为有效类型。
func (t LogicalType) IsValid() bool {
	return t.id != TypeInvalid
}

// WithAlias 返回带别名的类型副本。
func (t LogicalType) WithAlias(alias string) LogicalType {
	t.alias = alias
	return t
}

// Equal 报告两个类型是否结构与别名均相同。
func (t LogicalType) Equal(o LogicalType) bool {
	if t.id != o.id || t.alias != o.alias || len(t.children) != len(o.children) {
		return false
	}
	for i := range t.children {
		if t.children[i].Name != o.children[i].Name || !t.children[i].Type.Equal(o.children[i].Type) {
			return false
		}
	}
	return true
}

// String 返回类型名：有别名时返回别名，否则返回规范 SQL 表示。
func (t LogicalType) String() string {
	if t.alias != "" {
		return t.alias
	}
	return t.canonical()
}

// canonical 返回忽略别名的规范 SQL 表示，如 "STRUCT(address HUGEINT, mask USMALLINT)"。
func (t LogicalType) canonical() string {
	if t.id != TypeStruct {
		return t.id.String()
	}
	var sb strings.Builder
	sb.WriteString("STRUCT(")
	for i, c := range t.children {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(c.Name)
		sb.WriteByte(' ')
		sb.WriteString(c.Type.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

// Key 返回用于 map 索引的唯一键，同时编码结构与别名。Equal 的类型 Key 相同。
func (t LogicalType) Key() string {
	if t.alias == "" {
		return t.canonical()
	}
	return t.canonical() + "@" + t.alias
}
