package xlog

import (
	"context"
	"io"
	"log/slog"
	"runtime"
	"sync/atomic"
	"time"
)

var (
	_ Logger          = (*xlogger)(nil)
	_ LoggerWithLevel = (*xlogger)(nil)
)

type xlogger struct {
	handler    slog.Handler
	levelVar   *slog.LevelVar
	addSource  bool
	onError    func(error)
	errorCount *atomic.Uint64 // 派生 logger 共享
}

// log 的调用链固定为 业务代码 → Info 等 → log，skip=3 指向业务代码。
//
//go:noinline
func (l *xlogger) log(ctx context.Context, level slog.Level, msg string, attrs []slog.Attr) {
	if ctx == nil {
		ctx = context.Background()
	}
	if !l.handler.Enabled(ctx, level) {
		return
	}
	var pc uintptr
	if l.addSource {
		var pcs [1]uintptr
		runtime.Callers(3, pcs[:])
		pc = pcs[0]
	}
	r := slog.NewRecord(time.Now(), level, msg, pc)
	r.AddAttrs(attrs...)
	if err := l.handler.Handle(ctx, r); err != nil {
		l.errorCount.Add(1)
		if l.onError != nil {
			l.onError(err)
		}
	}
}

func (l *xlogger) Debug(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, slog.LevelDebug, msg, attrs)
}

func (l *xlogger) Info(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, slog.LevelInfo, msg, attrs)
}

func (l *xlogger) Warn(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, slog.LevelWarn, msg, attrs)
}

func (l *xlogger) Error(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, slog.LevelError, msg, attrs)
}

func (l *xlogger) With(attrs ...slog.Attr) Logger {
	if len(attrs) == 0 {
		return l
	}
	child := *l
	child.handler = l.handler.WithAttrs(attrs)
	return &child
}

func (l *xlogger) SetLevel(level Level) { l.levelVar.Set(slog.Level(level)) }

func (l *xlogger) GetLevel() Level { return Level(l.levelVar.Level()) }

func (l *xlogger) Enabled(ctx context.Context, level Level) bool {
	return l.handler.Enabled(ctx, slog.Level(level))
}

// Discard 返回丢弃所有输出的 Logger，作为库组件未注入 Logger 时的默认值。
func Discard() LoggerWithLevel {
	lv := new(slog.LevelVar)
	lv.Set(slog.LevelError + 1)
	return &xlogger{
		handler:    slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: lv}),
		levelVar:   lv,
		errorCount: new(atomic.Uint64),
	}
}
