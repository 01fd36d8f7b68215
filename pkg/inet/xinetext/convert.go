package xinetext

import (
	"fmt"

	"github.com/omeyang/xinet/pkg/engine/xcast"
	"github.com/omeyang/xinet/pkg/engine/xvector"
	"github.com/omeyang/xinet/pkg/inet/xinet"
)

// ConvertVarcharToInet 把 source 的前 count 行解析后写入 result。
// result 必须是预先分配好的 inet 结构向量，见 [ErrResultShape]。
func ConvertVarcharToInet(source, result xvector.Vector, count int, opts ...xinet.Option) error {
	return convert(xinet.NewParser(opts...), source, result, count)
}

// InetToVarchar 是 inet → VARCHAR 的转换。没有定义文本形式，调用即 panic。
func InetToVarchar(_, _ xvector.Vector, _ int) error {
	xcast.Unreachable("INET to Varchar cast")
	return nil
}

var _ xcast.Func = InetToVarchar

func convert(p xinet.Parser, source, result xvector.Vector, count int) error {
	out, address, mask, err := inetColumns(result, count)
	if err != nil {
		return err
	}
	u, err := xvector.UnifyVarchar(source, count)
	if err != nil {
		return err
	}

	for i := range count {
		idx := u.Sel.Get(i)
		if !u.Validity.RowIsValid(idx) {
			out.SetNull(i)
			continue
		}
		v, err := p.ParseString(u.Data[idx])
		if err != nil {
			return err
		}
		address.Values[i] = v.Address
		// Mask 不超过 255
		mask.Values[i] = uint16(v.Mask)
	}
	return nil
}

func inetColumns(result xvector.Vector, count int) (*xvector.StructVector, *xvector.HugeintVector, *xvector.USmallintVector, error) {
	sv, ok := result.(*xvector.StructVector)
	if !ok || len(sv.Children()) != 2 {
		return nil, nil, nil, fmt.Errorf("%w: got %T", ErrResultShape, result)
	}
	address, ok := sv.Child(0).(*xvector.HugeintVector)
	if !ok {
		return nil, nil, nil, fmt.Errorf("%w: address column is %s", ErrResultShape, sv.Child(0).Type())
	}
	mask, ok := sv.Child(1).(*xvector.USmallintVector)
	if !ok {
		return nil, nil, nil, fmt.Errorf("%w: mask column is %s", ErrResultShape, sv.Child(1).Type())
	}
	if count < 0 || sv.Len() < count || address.Len() < count || mask.Len() < count {
		return nil, nil, nil, fmt.Errorf("%w: %d rows allocated, %d requested", ErrResultShape, sv.Len(), count)
	}
	return sv, address, mask, nil
}
