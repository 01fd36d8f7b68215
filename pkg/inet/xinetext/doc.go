// Package xinetext 把 inet 类型接入 xdb：注册类型、VARCHAR → inet 的批量转换，
// 以及不可达的反向转换。
//
//	db, _ := xdb.Open()
//	_ = db.LoadExtension(ctx, xinetext.New())
//	out, err := db.CastTo(ctx, column, xinetext.TypeName, column.Len())
//
// 批量转换严格按行下标顺序处理：NULL 行在结果中同样为 NULL 且不调用解析器；
// 第一个解析失败的行使整次调用立即返回该行的 [*xinet.ParseError]，
// 此前已写入的行保留在结果向量中。
package xinetext
