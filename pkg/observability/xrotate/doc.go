// Package xrotate 提供日志文件轮转，供 xlog 作为输出目标使用。
//
// [Rotator] 定义 Write/Close/Rotate 三个行为，所有实现并发安全。
// 当前实现 [NewLumberjack] 基于 lumberjack v2 按文件大小轮转。
package xrotate
