// Package xinet 解析 IPv4 地址（可带前缀长度）为引擎的 inet 值。
//
// 语法为 octet ('.' octet){3} ('/' mask)?，octet 与 mask 都是 0~255 的十进制数字串。
// 解析是单次从左到右的扫描，不回退，不预读当前字节之后的内容：
//
//	v, err := xinet.ParseString("10.0.0.1/8")
//	// v.Octets() == [4]byte{10, 0, 0, 1}, v.Mask == 8
//
// # 值布局
//
// [Value.Address] 是 128 位整数，第 i 个 octet 占第 8i~8i+7 位（小端按 octet 下标），
// 零扩展，因此 Upper 恒为 0。未写掩码时 Mask 为 [DefaultMask]。
//
// # 宽松之处
//
//   - 掩码只检查 0~255，不限制到 32
//   - 掩码数字之后的字节不再检查
//   - 不检查主机位与掩码是否一致
//
// # 错误
//
// 解析失败返回 [*ParseError]，Error() 形如
//
//	Failed to convert string "1.2.3" to inet: Expected a dot
//
// 可用 errors.Is 与 [ErrExpectedNumber] 等哨兵错误比较。
//
// # 兼容模式
//
// [WithLegacyMaskScan] 复现旧实现的掩码读取：不跳过 '/'，
// 直接把第四个 octet 的数字串再次当作掩码，"1.2.3.4/24" 的掩码因此为 4。
package xinet
