// Package xdb 是承载扩展的最小数据库实例：类型目录、转换函数集合与事务。
//
// 扩展通过 [Database.LoadExtension] 加载。加载在一个事务中执行，
// 扩展在 [Tx] 上登记类型与转换函数，提交时一次性生效；
// 任何一步失败都会回滚，目录与转换集合保持加载前的状态。
//
//	db, _ := xdb.Open(xdb.WithLogger(logger))
//	if err := db.LoadExtension(ctx, xinetext.New()); err != nil {
//		return err
//	}
//	out, err := db.CastTo(ctx, column, "inet", column.Len())
//
// [Database.Cast] 查找 (源类型, 目标类型) 对应的转换函数，按目标类型分配结果向量后执行。
// 转换失败时返回的结果向量保留失败行之前已写入的数据。
package xdb
