// Package xtype 定义宿主分析引擎的逻辑类型与类型目录。
//
// # 核心类型
//
//   - [LogicalType]: 值类型的逻辑类型描述（VARCHAR、HUGEINT、USMALLINT、STRUCT 等），
//     支持别名（如 "inet"）
//   - [Hugeint]: 128 位有符号整数，与引擎 HUGEINT 列的存储布局一致
//   - [Catalog]: 并发安全的类型目录，扩展通过它注册自定义类型
//
// # 类型名
//
// 类型名大小写不敏感。内置类型（VARCHAR、HUGEINT、USMALLINT、INTEGER）
// 无需注册即可通过 [Catalog.GetType] 解析。
//
// # 类型等价
//
// [LogicalType.Equal] 同时比较结构与别名：STRUCT(address HUGEINT, mask USMALLINT)
// 与别名为 inet 的同结构类型不相等。转换函数按此规则查找。
package xtype
