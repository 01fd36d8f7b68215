// Package xcast 维护宿主引擎的类型转换函数集合。
//
// 转换函数以 (源类型, 目标类型) 为键注册，按批处理向量：
//
//	set := xcast.NewSet()
//	_ = set.Register(xtype.VarcharType, inet, convert)
//	fn, ok := set.Lookup(xtype.VarcharType, inet)
//
// 对于"不应被调用"的转换方向，转换函数调用 [Unreachable]，
// 以 [*InternalError] panic 终止当前查询。
package xcast
