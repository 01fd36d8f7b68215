// Package xclickhouse 把 inet 列写入 ClickHouse。
//
// 包装器不隐藏底层驱动（[ClickHouse.Client] 直接暴露 driver.Conn），只补充：
//   - 健康检查与统计
//   - inet 表的建表语句（[ClickHouse.CreateInetTable]）
//   - 按批次写入 inet 结构列（[ClickHouse.InsertInet]），失败批次按策略重试
//
// # 列映射
//
// inet 的 address 字段写为 Nullable(Int128)，mask 字段写为 Nullable(UInt16)。
// 结构列的 NULL 行两列都写 NULL。
//
// # 快速开始
//
//	conn, _ := clickhouse.Open(&clickhouse.Options{Addr: []string{"localhost:9000"}})
//	ch, err := xclickhouse.New(conn, xclickhouse.WithRetryAttempts(3))
//	if err != nil {
//	    return err
//	}
//	defer ch.Close()
//
//	_ = ch.CreateInetTable(ctx, "inet_values")
//	res, err := ch.InsertInet(ctx, "inet_values", vec, vec.Len(), xclickhouse.InsertOptions{})
//
// # 批次语义
//
// 每个批次是原子的：Send 失败时整批次不计入 [InsertResult.InsertedRows]。
// 遇到首个失败批次即停止，返回已写入部分的结果和错误。
package xclickhouse
