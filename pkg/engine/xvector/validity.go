package xvector

import "math/bits"

// Validity 是按行的有效性位图。位为 1 表示该行有效（非 NULL）。
// nil 位图表示所有行有效，首次 SetInvalid 时按需分配。
type Validity struct {
	bits []uint64
}

func wordsFor(n int) int {
	return (n + 63) / 64
}

// RowIsValid 报告第 i 行是否有效。
func (v *Validity) RowIsValid(i int) bool {
	if v == nil || v.bits == nil {
		return true
	}
	w := i / 64
	if w >= len(v.bits) {
		return true
	}
	return v.bits[w]&(1<<(uint(i)%64)) != 0
}

// SetInvalid 将第 i 行标记为 NULL。
func (v *Validity) SetInvalid(i int) {
	v.grow(i + 1)
	v.bits[i/64] &^= 1 << (uint(i) % 64)
}

// SetValid 将第 i 行标记为有效。
func (v *Validity) SetValid(i int) {
	if v.bits == nil {
		return
	}
	v.grow(i + 1)
	v.bits[i/64] |= 1 << (uint(i) % 64)
}

// AllValid 报告位图是否从未标记过 NULL。
func (v *Validity) AllValid() bool {
	return v == nil || v.bits == nil
}

// NullCount 返回前 n 行中 NULL 的数量。
func (v *Validity) NullCount(n int) int {
	if v.AllValid() {
		return 0
	}
	valid := 0
	full := min(n/64, len(v.bits))
	for _, w := range v.bits[:full] {
		valid += bits.OnesCount64(w)
	}
	for i := full * 64; i < n; i++ {
		if v.RowIsValid(i) {
			valid++
		}
	}
	return n - valid
}

// grow 确保位图至少覆盖 n 行，新增的行默认有效。
func (v *Validity) grow(n int) {
	need := wordsFor(n)
	if len(v.bits) >= need {
		return
	}
	grown := make([]uint64, need)
	if v.bits == nil {
		for i := range grown {
			grown[i] = ^uint64(0)
		}
	} else {
		copy(grown, v.bits)
		for i := len(v.bits); i < need; i++ {
			grown[i] = ^uint64(0)
		}
	}
	v.bits = grown
}

// Selection 是选择向量：逻辑行 i 映射到物理行 Get(i)。nil 表示恒等映射。
type Selection []uint32

// Get 返回逻辑行 i 对应的物理行。
func (s Selection) Get(i int) int {
	if s == nil {
		return i
	}
	return int(s[i])
}
