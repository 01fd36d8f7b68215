package xrotate

import "io"

var _ io.WriteCloser = (Rotator)(nil)

// Rotator 日志轮转器接口。
//
// Close 之后的 Write、Rotate 以及重复的 Close 都返回 [ErrClosed]。
type Rotator interface {
	// Write 写入日志数据，达到轮转条件时自动轮转。
	Write(p []byte) (n int, err error)

	// Close 关闭轮转器。
	Close() error

	// Rotate 手动触发轮转。
	Rotate() error
}
