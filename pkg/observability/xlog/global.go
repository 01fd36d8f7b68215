package xlog

import (
	"fmt"
	"log/slog"
	"os"
	"sync/atomic"
)

var globalLogger atomic.Pointer[LoggerWithLevel]

// Default 返回全局 Logger，未设置时惰性创建（stderr、Info、text）。
func Default() LoggerWithLevel {
	if l := globalLogger.Load(); l != nil {
		return *l
	}
	logger, _, err := New().Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "xlog: failed to build default logger: %v\n", err)
		logger = &xlogger{
			handler:    slog.NewTextHandler(os.Stderr, nil),
			levelVar:   new(slog.LevelVar),
			errorCount: new(atomic.Uint64),
		}
	}
	// 并发初始化时以先写入者为准
	globalLogger.CompareAndSwap(nil, &logger)
	return *globalLogger.Load()
}

// SetDefault 替换全局 Logger，nil 被忽略。
func SetDefault(l LoggerWithLevel) {
	if l == nil {
		return
	}
	globalLogger.Store(&l)
}
