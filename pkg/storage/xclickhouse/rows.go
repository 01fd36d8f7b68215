package xclickhouse

import (
	"fmt"
	"math/big"

	"github.com/omeyang/xinet/pkg/engine/xvector"
)

// inetRow 是一行待写入的数据，nil 表示该列为 NULL。
type inetRow struct {
	address *big.Int
	mask    *uint16
}

func (r inetRow) isNull() bool {
	return r.address == nil && r.mask == nil
}

// inetRows 把结构向量的前 count 行展开为驱动可直接追加的行。
func inetRows(v *xvector.StructVector, count int) ([]inetRow, error) {
	if v == nil {
		return nil, ErrNilVector
	}
	if count < 0 || count > v.Len() {
		return nil, fmt.Errorf("%w: count %d, length %d", ErrCountOutOfRange, count, v.Len())
	}
	children := v.Children()
	if len(children) != 2 {
		return nil, fmt.Errorf("%w: %d fields", ErrVectorShape, len(children))
	}
	address, ok := children[0].(*xvector.HugeintVector)
	if !ok {
		return nil, fmt.Errorf("%w: address is %s", ErrVectorShape, children[0].Type())
	}
	mask, ok := children[1].(*xvector.USmallintVector)
	if !ok {
		return nil, fmt.Errorf("%w: mask is %s", ErrVectorShape, children[1].Type())
	}

	rows := make([]inetRow, count)
	for i := range count {
		if !v.RowIsValid(i) {
			continue
		}
		if address.Validity().RowIsValid(i) {
			rows[i].address = address.Values[i].BigInt()
		}
		if mask.Validity().RowIsValid(i) {
			m := mask.Values[i]
			rows[i].mask = &m
		}
	}
	return rows, nil
}
