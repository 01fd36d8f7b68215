package xinetext

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/xinet/pkg/engine/xcast"
	"github.com/omeyang/xinet/pkg/engine/xtype"
	"github.com/omeyang/xinet/pkg/engine/xvector"
	"github.com/omeyang/xinet/pkg/inet/xinet"
)

func newResult(t *testing.T, n int) *xvector.StructVector {
	t.Helper()
	v, err := xvector.New(Type(), n)
	require.NoError(t, err)
	return v.(*xvector.StructVector)
}

func columns(sv *xvector.StructVector) (*xvector.HugeintVector, *xvector.USmallintVector) {
	return sv.Child(0).(*xvector.HugeintVector), sv.Child(1).(*xvector.USmallintVector)
}

func strPtr(s string) *string { return &s }

// =============================================================================
// 批量转换
// =============================================================================

func TestConvert_AllValid(t *testing.T) {
	src := xvector.NewVarchar([]string{"1.2.3.4", "10.0.0.0/8", "255.255.255.255/200"})
	out := newResult(t, 3)

	require.NoError(t, ConvertVarcharToInet(src, out, 3))

	address, mask := columns(out)
	assert.Equal(t, xinet.Pack([4]byte{1, 2, 3, 4}), address.Values[0])
	assert.Equal(t, xinet.Pack([4]byte{10, 0, 0, 0}), address.Values[1])
	assert.Equal(t, xinet.Pack([4]byte{255, 255, 255, 255}), address.Values[2])
	assert.Equal(t, []uint16{32, 8, 200}, mask.Values)
	assert.Equal(t, 0, out.Validity().NullCount(3))
}

func TestConvert_NullThenFailure(t *testing.T) {
	src := xvector.NewVarcharNullable([]*string{strPtr("1.2.3.4"), nil, strPtr("bad")})
	out := newResult(t, 3)

	err := ConvertVarcharToInet(src, out, 3)
	require.Error(t, err)
	assert.Equal(t, `Failed to convert string "bad" to inet: Expected a number`, err.Error())

	var pe *xinet.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "bad", pe.Input)

	address, mask := columns(out)
	assert.True(t, out.RowIsValid(0))
	assert.Equal(t, xinet.Pack([4]byte{1, 2, 3, 4}), address.Values[0], "失败前写入的行保留")
	assert.Equal(t, uint16(32), mask.Values[0])

	assert.False(t, out.RowIsValid(1))
	assert.False(t, address.Validity().RowIsValid(1))
	assert.False(t, mask.Validity().RowIsValid(1))
}

func TestConvert_StopsAtFirstFailure(t *testing.T) {
	src := xvector.NewVarchar([]string{"1.1.1.1", "1.2.3", "999.0.0.0", "2.2.2.2"})
	out := newResult(t, 4)

	err := ConvertVarcharToInet(src, out, 4)
	assert.ErrorIs(t, err, xinet.ErrExpectedDot)

	address, _ := columns(out)
	assert.Equal(t, xtype.Hugeint{}, address.Values[3], "失败之后的行不处理")
}

func TestConvert_AllNull(t *testing.T) {
	src := xvector.NewVarcharNullable([]*string{nil, nil, nil})
	out := newResult(t, 3)

	require.NoError(t, ConvertVarcharToInet(src, out, 3))
	assert.Equal(t, 3, out.Validity().NullCount(3))
}

// NULL 行不经过解析：底层数据即使无法解析也不会报错。
func TestConvert_NullRowsSkipParse(t *testing.T) {
	src := xvector.NewVarchar([]string{"garbage", "1.2.3", "", "999.0.0.0/x"})
	for i := range src.Len() {
		src.SetNull(i)
	}
	out := newResult(t, 4)

	require.NoError(t, ConvertVarcharToInet(src, out, 4))
	assert.Equal(t, 4, out.Validity().NullCount(4))
	address, mask := columns(out)
	assert.Equal(t, make([]xtype.Hugeint, 4), address.Values)
	assert.Equal(t, make([]uint16, 4), mask.Values)

	child := xvector.NewVarchar([]string{"not-an-ip", "10.0.0.1"})
	child.SetNull(0)
	dict := xvector.NewDictionary(child, xvector.Selection{0, 0, 1, 0})
	out = newResult(t, 4)

	require.NoError(t, ConvertVarcharToInet(dict, out, 4))
	assert.Equal(t, 3, out.Validity().NullCount(4))
	assert.True(t, out.RowIsValid(2))
}

func TestConvert_Dictionary(t *testing.T) {
	child := xvector.NewVarcharNullable([]*string{strPtr("8.8.8.8"), nil, strPtr("1.1.1.1/24")})
	src := xvector.NewDictionary(child, xvector.Selection{2, 2, 1, 0})
	out := newResult(t, 4)

	require.NoError(t, ConvertVarcharToInet(src, out, 4))

	address, mask := columns(out)
	assert.Equal(t, xinet.Pack([4]byte{1, 1, 1, 1}), address.Values[0])
	assert.Equal(t, xinet.Pack([4]byte{1, 1, 1, 1}), address.Values[1])
	assert.False(t, out.RowIsValid(2))
	assert.Equal(t, xinet.Pack([4]byte{8, 8, 8, 8}), address.Values[3])
	assert.Equal(t, []uint16{24, 24, 0, 32}, mask.Values)
}

func TestConvert_PartialCount(t *testing.T) {
	src := xvector.NewVarchar([]string{"1.2.3.4", "not parsed"})
	out := newResult(t, 1)
	assert.NoError(t, ConvertVarcharToInet(src, out, 1))
	assert.NoError(t, ConvertVarcharToInet(src, newResult(t, 0), 0))
}

func TestConvert_LegacyMaskScan(t *testing.T) {
	src := xvector.NewVarchar([]string{"1.2.3.4/24"})
	out := newResult(t, 1)

	require.NoError(t, ConvertVarcharToInet(src, out, 1, xinet.WithLegacyMaskScan()))
	_, mask := columns(out)
	assert.Equal(t, uint16(4), mask.Values[0])
}

func TestConvert_ShapeErrors(t *testing.T) {
	src := xvector.NewVarchar([]string{"1.2.3.4"})
	wrongChildren, err := xvector.New(xtype.NewStruct(
		xtype.ChildType{Name: "mask", Type: xtype.USmallintType},
		xtype.ChildType{Name: "address", Type: xtype.HugeintType},
	), 1)
	require.NoError(t, err)
	oneChild, err := xvector.New(xtype.NewStruct(
		xtype.ChildType{Name: "address", Type: xtype.HugeintType},
	), 1)
	require.NoError(t, err)
	hugeintFirstWrongMask, err := xvector.New(xtype.NewStruct(
		xtype.ChildType{Name: "address", Type: xtype.HugeintType},
		xtype.ChildType{Name: "mask", Type: xtype.HugeintType},
	), 1)
	require.NoError(t, err)

	tests := []struct {
		name   string
		result xvector.Vector
		count  int
		want   error
	}{
		{"not a struct", xvector.NewHugeint(1), 1, ErrResultShape},
		{"one child", oneChild, 1, ErrResultShape},
		{"swapped children", wrongChildren, 1, ErrResultShape},
		{"wrong mask type", hugeintFirstWrongMask, 1, ErrResultShape},
		{"too short", newResult(t, 0), 1, ErrResultShape},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, ConvertVarcharToInet(src, tt.result, tt.count), tt.want)
		})
	}

	err = ConvertVarcharToInet(xvector.NewHugeint(1), newResult(t, 1), 1)
	assert.ErrorIs(t, err, xvector.ErrTypeMismatch)
}

func TestInetToVarchar_Panics(t *testing.T) {
	call := func() {
		_ = InetToVarchar(newResult(t, 1), xvector.NewVarchar(make([]string, 1)), 1)
	}
	assert.PanicsWithError(t, "INTERNAL Error: INET to Varchar cast", call)

	var recovered any
	func() {
		defer func() { recovered = recover() }()
		call()
	}()
	err, ok := recovered.(error)
	require.True(t, ok, "panic 值应为 error")
	var internal *xcast.InternalError
	require.ErrorAs(t, err, &internal)
	assert.Equal(t, "INET to Varchar cast", internal.What)
}

func BenchmarkConvertVarcharToInet(b *testing.B) {
	values := make([]string, 2048)
	for i := range values {
		values[i] = "192.168.1.1/24"
	}
	src := xvector.NewVarchar(values)
	v, _ := xvector.New(Type(), len(values))
	b.ReportAllocs()
	for b.Loop() {
		_ = ConvertVarcharToInet(src, v, len(values))
	}
}
