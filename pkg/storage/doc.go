// Package storage 汇集 inet 结果的持久化后端。
//
// 目前只有 xclickhouse：把转换得到的 inet 结构向量按批写入 ClickHouse 表，
// 发送失败时按 internal/storageopt 的策略重试。
package storage
