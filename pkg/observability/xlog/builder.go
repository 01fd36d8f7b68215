package xlog

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/omeyang/xinet/pkg/observability/xrotate"
)

// Builder 日志配置构建器，一次性使用。
type Builder struct {
	output    io.Writer
	levelVar  *slog.LevelVar
	format    string
	addSource bool
	enrich    bool
	rotator   xrotate.Rotator
	onError   func(error)
	err       error
}

// New 创建构建器：stderr、Info 级别、text 格式、启用 enrich。
func New() *Builder {
	lv := new(slog.LevelVar)
	lv.Set(slog.LevelInfo)
	return &Builder{
		output:   os.Stderr,
		levelVar: lv,
		format:   "text",
		enrich:   true,
	}
}

// SetOutput 设置输出目标。
func (b *Builder) SetOutput(w io.Writer) *Builder {
	if b.err == nil && w != nil {
		b.output = w
	}
	return b
}

// SetLevel 设置级别。
func (b *Builder) SetLevel(level Level) *Builder {
	if b.err == nil {
		b.levelVar.Set(slog.Level(level))
	}
	return b
}

// SetLevelString 通过字符串设置级别。
func (b *Builder) SetLevelString(s string) *Builder {
	if b.err != nil {
		return b
	}
	level, err := ParseLevel(s)
	if err != nil {
		b.err = err
		return b
	}
	return b.SetLevel(level)
}

// SetFormat 设置输出格式：text 或 json，空值为 text。
func (b *Builder) SetFormat(format string) *Builder {
	if b.err != nil {
		return b
	}
	switch normalized := strings.ToLower(strings.TrimSpace(format)); normalized {
	case "":
		b.format = "text"
	case "text", "json":
		b.format = normalized
	default:
		b.err = fmt.Errorf("xlog: unknown format %q", format)
	}
	return b
}

// SetAddSource 是否记录源码位置。
func (b *Builder) SetAddSource(enable bool) *Builder {
	b.addSource = enable
	return b
}

// SetEnrich 是否注入 trace_id / span_id。
func (b *Builder) SetEnrich(enable bool) *Builder {
	b.enrich = enable
	return b
}

// SetOnError 设置 Handler 写入失败时的回调，回调在日志调用方的 goroutine 上同步执行。
func (b *Builder) SetOnError(fn func(error)) *Builder {
	b.onError = fn
	return b
}

// SetRotation 输出到按大小轮转的文件。
func (b *Builder) SetRotation(filename string, opts ...xrotate.Option) *Builder {
	if b.err != nil {
		return b
	}
	r, err := xrotate.NewLumberjack(filename, opts...)
	if err != nil {
		b.err = err
		return b
	}
	b.rotator = r
	b.output = r
	return b
}

// Build 构建 Logger。返回的 cleanup 关闭轮转文件，可重复调用。
func (b *Builder) Build() (LoggerWithLevel, func() error, error) {
	if b.err != nil {
		return nil, nil, b.err
	}

	opts := &slog.HandlerOptions{Level: b.levelVar, AddSource: b.addSource}
	var handler slog.Handler
	if b.format == "json" {
		handler = slog.NewJSONHandler(b.output, opts)
	} else {
		handler = slog.NewTextHandler(b.output, opts)
	}
	if b.enrich {
		enriched, err := NewEnrichHandler(handler)
		if err != nil {
			return nil, nil, err
		}
		handler = enriched
	}

	logger := &xlogger{
		handler:    handler,
		levelVar:   b.levelVar,
		addSource:  b.addSource,
		onError:    b.onError,
		errorCount: new(atomic.Uint64),
	}

	var once sync.Once
	rotator := b.rotator
	cleanup := func() error {
		var err error
		once.Do(func() {
			if rotator != nil {
				err = rotator.Close()
			}
		})
		return err
	}
	return logger, cleanup, nil
}
