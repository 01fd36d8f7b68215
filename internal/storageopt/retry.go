package storageopt

import (
	"context"
	"time"

	retry "github.com/avast/retry-go/v5"
)

// 重试默认值。
const (
	DefaultRetryAttempts = 3
	DefaultRetryDelay    = 200 * time.Millisecond
)

// RetryPolicy 描述一次写入操作的重试方式。
type RetryPolicy struct {
	// Attempts 是总尝试次数（含首次）。小于 1 时按 1 处理。
	Attempts uint

	// Delay 是两次尝试之间的固定间隔。
	Delay time.Duration

	// OnRetry 在每次可重试的失败后调用，n 从 0 开始。
	OnRetry func(n uint, err error)
}

// DefaultRetryPolicy 返回默认重试策略。
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{Attempts: DefaultRetryAttempts, Delay: DefaultRetryDelay}
}

// Retry 按 p 执行 fn，直到成功、尝试次数耗尽、ctx 结束或 fn 返回 [Permanent] 包装的错误。
// 返回最后一次的错误。
func Retry(ctx context.Context, p RetryPolicy, fn func() error) error {
	attempts := max(p.Attempts, 1)
	opts := []retry.Option{
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.Delay(p.Delay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(retry.IsRecoverable),
	}
	if p.OnRetry != nil {
		opts = append(opts, retry.OnRetry(p.OnRetry))
	}
	return retry.New(opts...).Do(fn)
}

// Permanent 标记 err 为不可重试。
func Permanent(err error) error {
	return retry.Unrecoverable(err)
}
