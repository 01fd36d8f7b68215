// Package xvector 提供宿主引擎的列向量表示。
//
// 一个向量是定长的同类型值序列，附带有效性位图（[Validity]）标记 NULL 行。
// 转换函数按行下标读取输入向量、写入预先分配好的输出向量。
//
// # 向量种类
//
//   - [VarcharVector]: 字符串列
//   - [HugeintVector]: 128 位整数列
//   - [USmallintVector]: 16 位无符号整数列
//   - [StructVector]: 组合列，每个字段对应一个子向量
//   - [DictionaryVector]: 通过选择向量（[Selection]）引用另一个向量的行
//
// [New] 按逻辑类型分配向量。
//
// # 统一视图
//
// [UnifyVarchar] 将平坦或字典形式的 VARCHAR 向量统一为
// (数据, 选择向量, 有效性) 三元组，调用方无需关心物理布局：
//
//	u, _ := xvector.UnifyVarchar(src, count)
//	for i := range count {
//	    idx := u.Sel.Get(i)
//	    if !u.Validity.RowIsValid(idx) {
//	        continue
//	    }
//	    use(u.Data[idx])
//	}
//
// # 并发
//
// 向量不是并发安全的。不同 goroutine 可以并发处理互不相关的向量。
package xvector
