package xtype

import (
	"math/big"
	"strconv"
)

// Hugeint 是 128 位有符号整数，布局与引擎 HUGEINT 一致：
// 值 = Upper * 2^64 + Lower。
type Hugeint struct {
	Lower uint64
	Upper int64
}

// HugeintFromUint64 将无符号 64 位整数零扩展为 Hugeint。
func HugeintFromUint64(v uint64) Hugeint {
	return Hugeint{Lower: v}
}

// IsNegative 报告 h 是否为负数。
func (h Hugeint) IsNegative() bool {
	return h.Upper < 0
}

// Uint64 返回 h 的低 64 位；仅当 h 落在 [0, 2^64) 时 ok 为 true。
func (h Hugeint) Uint64() (v uint64, ok bool) {
	return h.Lower, h.Upper == 0
}

// BigInt 将 h 转换为 [*big.Int]。
func (h Hugeint) BigInt() *big.Int {
	v := new(big.Int).SetInt64(h.Upper)
	v.Lsh(v, 64)
	return v.Add(v, new(big.Int).SetUint64(h.Lower))
}

// Cmp 比较 h 与 o，返回 -1、0 或 1。
func (h Hugeint) Cmp(o Hugeint) int {
	switch {
	case h.Upper < o.Upper:
		return -1
	case h.Upper > o.Upper:
		return 1
	case h.Lower < o.Lower:
		return -1
	case h.Lower > o.Lower:
		return 1
	default:
		return 0
	}
}

// String 返回十进制表示。
func (h Hugeint) String() string {
	if h.Upper == 0 {
		return strconv.FormatUint(h.Lower, 10)
	}
	return h.BigInt().String()
}
