package xvector

import (
	"fmt"

	"github.com/omeyang/xinet/pkg/engine/xtype"
)

// Vector 是所有列向量的公共接口。
type Vector interface {
	// Type 返回向量的逻辑类型。
	Type() xtype.LogicalType

	// Len 返回向量的行数。
	Len() int

	// Validity 返回向量的有效性位图，可原地修改。
	Validity() *Validity
}

// 编译时接口检查
var (
	_ Vector = (*VarcharVector)(nil)
	_ Vector = (*HugeintVector)(nil)
	_ Vector = (*USmallintVector)(nil)
	_ Vector = (*StructVector)(nil)
	_ Vector = (*DictionaryVector)(nil)
)

// =============================================================================
// 标量向量
// =============================================================================

// VarcharVector 是字符串列。
type VarcharVector struct {
	Values   []string
	validity Validity
}

// NewVarchar 以 values 创建全部有效的字符串列。values 不会被复制。
func NewVarchar(values []string) *VarcharVector {
	return &VarcharVector{Values: values}
}

// NewVarcharNullable 创建字符串列，nil 元素对应 NULL 行。
func NewVarcharNullable(values []*string) *VarcharVector {
	v := &VarcharVector{Values: make([]string, len(values))}
	for i, p := range values {
		if p == nil {
			v.validity.SetInvalid(i)
			continue
		}
		v.Values[i] = *p
	}
	return v
}

// Type 实现 Vector。
func (v *VarcharVector) Type() xtype.LogicalType { return xtype.VarcharType }

// Len 实现 Vector。
func (v *VarcharVector) Len() int { return len(v.Values) }

// Validity 实现 Vector。
func (v *VarcharVector) Validity() *Validity { return &v.validity }

// SetNull 将第 i 行标记为 NULL。
func (v *VarcharVector) SetNull(i int) { v.validity.SetInvalid(i) }

// HugeintVector 是 128 位整数列。
type HugeintVector struct {
	Values   []xtype.Hugeint
	validity Validity
}

// NewHugeint 分配 n 行的 HUGEINT 列。
func NewHugeint(n int) *HugeintVector {
	return &HugeintVector{Values: make([]xtype.Hugeint, n)}
}

// Type 实现 Vector。
func (v *HugeintVector) Type() xtype.LogicalType { return xtype.HugeintType }

// Len 实现 Vector。
func (v *HugeintVector) Len() int { return len(v.Values) }

// Validity 实现 Vector。
func (v *HugeintVector) Validity() *Validity { return &v.validity }

// USmallintVector 是 16 位无符号整数列。
type USmallintVector struct {
	Values   []uint16
	validity Validity
}

// NewUSmallint 分配 n 行的 USMALLINT 列。
func NewUSmallint(n int) *USmallintVector {
	return &USmallintVector{Values: make([]uint16, n)}
}

// Type 实现 Vector。
func (v *USmallintVector) Type() xtype.LogicalType { return xtype.USmallintType }

// Len 实现 Vector。
func (v *USmallintVector) Len() int { return len(v.Values) }

// Validity 实现 Vector。
func (v *USmallintVector) Validity() *Validity { return &v.validity }

// =============================================================================
// 组合向量
// =============================================================================

// StructVector 是 STRUCT 列，每个字段对应一个等长子向量。
type StructVector struct {
	typ      xtype.LogicalType
	children []Vector
	n        int
	validity Validity
}

// Type 实现 Vector。
func (v *StructVector) Type() xtype.LogicalType { return v.typ }

// Len 实现 Vector。
func (v *StructVector) Len() int { return v.n }

// Validity 实现 Vector。
func (v *StructVector) Validity() *Validity { return &v.validity }

// Children 返回子向量，顺序与类型字段一致。
func (v *StructVector) Children() []Vector { return v.children }

// Child 返回第 i 个子向量。
func (v *StructVector) Child(i int) Vector { return v.children[i] }

// SetNull 将第 i 行标记为 NULL，并同步标记所有子向量的第 i 行。
func (v *StructVector) SetNull(i int) {
	v.validity.SetInvalid(i)
	for _, c := range v.children {
		c.Validity().SetInvalid(i)
	}
}

// RowIsValid 报告第 i 行是否非 NULL。
func (v *StructVector) RowIsValid(i int) bool {
	return v.validity.RowIsValid(i)
}

// DictionaryVector 通过选择向量引用子向量的行：逻辑行 i 对应 Child 的第 Sel.Get(i) 行。
type DictionaryVector struct {
	Sel   Selection
	Child Vector
}

// NewDictionary 创建字典向量。
func NewDictionary(child Vector, sel Selection) *DictionaryVector {
	return &DictionaryVector{Sel: sel, Child: child}
}

// Type 实现 Vector。
func (v *DictionaryVector) Type() xtype.LogicalType { return v.Child.Type() }

// Len 实现 Vector。
func (v *DictionaryVector) Len() int {
	if v.Sel == nil {
		return v.Child.Len()
	}
	return len(v.Sel)
}

// Validity 实现 Vector，返回子向量的位图（按物理行寻址）。
func (v *DictionaryVector) Validity() *Validity { return v.Child.Validity() }

// =============================================================================
// 分配
// =============================================================================

// New 按逻辑类型分配 n 行的向量。STRUCT 类型递归分配子向量。
func New(typ xtype.LogicalType, n int) (Vector, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrCountOutOfRange, n)
	}
	switch typ.ID() {
	case xtype.TypeVarchar:
		return &VarcharVector{Values: make([]string, n)}, nil
	case xtype.TypeHugeint:
		return NewHugeint(n), nil
	case xtype.TypeUSmallint:
		return NewUSmallint(n), nil
	case xtype.TypeStruct:
		fields := typ.Children()
		children := make([]Vector, len(fields))
		for i, f := range fields {
			c, err := New(f.Type, n)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", f.Name, err)
			}
			children[i] = c
		}
		return &StructVector{typ: typ, children: children, n: n}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, typ)
	}
}

// =============================================================================
// 统一视图
// =============================================================================

// UnifiedVarchar 是 VARCHAR 向量的统一视图。
// 逻辑行 i 的物理行为 Sel.Get(i)，Data 与 Validity 均按物理行寻址。
type UnifiedVarchar struct {
	Data     []string
	Sel      Selection
	Validity *Validity
}

// UnifyVarchar 返回 v 前 count 行的统一视图。
// v 必须是 [*VarcharVector] 或以其为子向量的 [*DictionaryVector]。
func UnifyVarchar(v Vector, count int) (UnifiedVarchar, error) {
	if count < 0 || count > v.Len() {
		return UnifiedVarchar{}, fmt.Errorf("%w: count %d, length %d", ErrCountOutOfRange, count, v.Len())
	}
	switch vec := v.(type) {
	case *VarcharVector:
		return UnifiedVarchar{Data: vec.Values, Validity: &vec.validity}, nil
	case *DictionaryVector:
		child, ok := vec.Child.(*VarcharVector)
		if !ok {
			return UnifiedVarchar{}, fmt.Errorf("%w: dictionary child is %s", ErrTypeMismatch, vec.Child.Type())
		}
		for i := range count {
			if p := vec.Sel.Get(i); p >= len(child.Values) {
				return UnifiedVarchar{}, fmt.Errorf("%w: selection[%d]=%d, dictionary length %d",
					ErrCountOutOfRange, i, p, len(child.Values))
			}
		}
		return UnifiedVarchar{Data: child.Values, Sel: vec.Sel, Validity: &child.validity}, nil
	default:
		return UnifiedVarchar{}, fmt.Errorf("%w: want VARCHAR, got %s", ErrTypeMismatch, v.Type())
	}
}
