package xinet

import (
	"net/netip"

	"go4.org/netipx"

	"github.com/omeyang/xinet/pkg/engine/xtype"
)

// Value 是一个 inet 值：打包后的地址与前缀长度。
type Value struct {
	Address xtype.Hugeint
	Mask    int32
}

// Pack 按 octet 下标小端打包四个 octet。
func Pack(octets [4]byte) xtype.Hugeint {
	var v uint64
	for i, o := range octets {
		v |= uint64(o) << (8 * i)
	}
	return xtype.HugeintFromUint64(v)
}

// Unpack 是 Pack 的逆运算，只取低 32 位。
func Unpack(h xtype.Hugeint) [4]byte {
	return [4]byte{
		byte(h.Lower),
		byte(h.Lower >> 8),
		byte(h.Lower >> 16),
		byte(h.Lower >> 24),
	}
}

// Octets 按书写顺序返回四个 octet。
func (v Value) Octets() [4]byte {
	return Unpack(v.Address)
}

// Addr 返回对应的 IPv4 地址。
func (v Value) Addr() netip.Addr {
	return netip.AddrFrom4(v.Octets())
}

// Prefix 返回地址与掩码组成的前缀，掩码超过 32 时 ok 为 false。
// 主机位保持原样，不做 Masked。
func (v Value) Prefix() (netip.Prefix, bool) {
	if v.Mask < 0 || v.Mask > 32 {
		return netip.Prefix{}, false
	}
	return netip.PrefixFrom(v.Addr(), int(v.Mask)), true
}

// Range 返回前缀覆盖的地址范围，仅用于展示。掩码超过 32 时 ok 为 false。
func (v Value) Range() (netipx.IPRange, bool) {
	p, ok := v.Prefix()
	if !ok {
		return netipx.IPRange{}, false
	}
	return netipx.RangeOfPrefix(p.Masked()), true
}
