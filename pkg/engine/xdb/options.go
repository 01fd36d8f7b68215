package xdb

import (
	"github.com/omeyang/xinet/pkg/observability/xlog"
	"github.com/omeyang/xinet/pkg/observability/xmetrics"
)

// Options 数据库实例配置。
type Options struct {
	// Logger 记录扩展加载与转换失败，默认丢弃输出。
	Logger xlog.Logger

	// Observer 观测扩展加载与每次转换，默认空实现。
	Observer xmetrics.Observer
}

// Option 配置函数。
type Option func(*Options)

func defaultOptions() *Options {
	return &Options{
		Logger:   xlog.Discard(),
		Observer: xmetrics.NoopObserver{},
	}
}

// WithLogger 设置日志，nil 被忽略。
func WithLogger(logger xlog.Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.Logger = logger
		}
	}
}

// WithObserver 设置观测接口，nil 被忽略。
func WithObserver(observer xmetrics.Observer) Option {
	return func(o *Options) {
		if observer != nil {
			o.Observer = observer
		}
	}
}
