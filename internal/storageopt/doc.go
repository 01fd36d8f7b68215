// Package storageopt 提供 pkg/storage 下各写入端共享的工具：
// 健康检查超时、原子统计计数器以及基于 retry-go 的写入重试。
//
// 本包是 internal 包，外部用户不应直接导入。
package storageopt
