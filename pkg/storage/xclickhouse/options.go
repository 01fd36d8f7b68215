package xclickhouse

import (
	"time"

	"github.com/omeyang/xinet/internal/storageopt"
	"github.com/omeyang/xinet/pkg/observability/xlog"
	"github.com/omeyang/xinet/pkg/observability/xmetrics"
)

// Options 包含 ClickHouse 包装器的配置选项。
type Options struct {
	// HealthTimeout 是健康检查的超时时间，默认 5 秒。
	HealthTimeout time.Duration

	// Retry 是单个批次的重试策略。
	// 驱动返回的 Send 错误会重试，Append 错误与 context 取消不重试。
	Retry storageopt.RetryPolicy

	// Observer 是统一观测接口（metrics/tracing）。
	Observer xmetrics.Observer

	// Logger 记录重试和失败批次，默认丢弃输出。
	Logger xlog.Logger
}

// Option 是用于配置 Options 的函数类型。
type Option func(*Options)

func defaultOptions() *Options {
	return &Options{
		HealthTimeout: storageopt.DefaultHealthTimeout,
		Retry:         storageopt.DefaultRetryPolicy(),
		Observer:      xmetrics.NoopObserver{},
		Logger:        xlog.Discard(),
	}
}

// WithHealthTimeout 设置健康检查超时时间，非正值被忽略。
func WithHealthTimeout(timeout time.Duration) Option {
	return func(o *Options) {
		if timeout > 0 {
			o.HealthTimeout = timeout
		}
	}
}

// WithRetryAttempts 设置每批次的总尝试次数，0 被忽略。
func WithRetryAttempts(n uint) Option {
	return func(o *Options) {
		if n > 0 {
			o.Retry.Attempts = n
		}
	}
}

// WithRetryDelay 设置重试间隔，负值被忽略。
func WithRetryDelay(d time.Duration) Option {
	return func(o *Options) {
		if d >= 0 {
			o.Retry.Delay = d
		}
	}
}

// WithObserver 设置统一观测接口。
func WithObserver(observer xmetrics.Observer) Option {
	return func(o *Options) {
		if observer != nil {
			o.Observer = observer
		}
	}
}

// WithLogger 设置日志。
func WithLogger(logger xlog.Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.Logger = logger
		}
	}
}
