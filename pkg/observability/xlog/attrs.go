package xlog

import (
	"log/slog"
	"time"
)

// 标准字段 key
const (
	KeyError     = "error"
	KeyDuration  = "duration"
	KeyCount     = "count"
	KeyComponent = "component"
	KeyOperation = "operation"
)

// Err 创建错误属性。err 为 nil 时返回会被 slog 忽略的空属性。
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String(KeyError, err.Error())
}

// Duration 创建耗时属性，输出人类可读格式（如 "1.5ms"）。
func Duration(d time.Duration) slog.Attr {
	return slog.String(KeyDuration, d.String())
}

// Component 创建组件名属性。
func Component(name string) slog.Attr {
	return slog.String(KeyComponent, name)
}

// Operation 创建操作名属性。
func Operation(name string) slog.Attr {
	return slog.String(KeyOperation, name)
}

// Count 创建计数属性。
func Count(n int64) slog.Attr {
	return slog.Int64(KeyCount, n)
}
