package xmetrics

import "context"

// Kind 表示观测跨度类型。
type Kind int

const (
	// KindInternal 表示进程内操作，例如一次批量转换。
	KindInternal Kind = iota
	// KindClient 表示对外部系统的调用，例如向 ClickHouse 写入。
	KindClient
)

// String 返回 Kind 的可读名称。
func (k Kind) String() string {
	if k == KindClient {
		return "Client"
	}
	return "Internal"
}

// Status 表示观测结果状态。
type Status string

const (
	// StatusOK 表示成功。
	StatusOK Status = "ok"
	// StatusError 表示失败。
	StatusError Status = "error"
)

// Attr 表示观测属性。
type Attr struct {
	Key   string
	Value any
}

// SpanOptions 定义观测跨度的创建参数。
type SpanOptions struct {
	Component string
	Operation string
	Kind      Kind
	Attrs     []Attr
}

// Result 表示观测跨度结束时的结果。
type Result struct {
	// Status 为空时根据 Err 推导。
	Status Status
	Err    error
	Attrs  []Attr
}

// Span 表示一次观测跨度。
type Span interface {
	// End 结束观测并记录结果。
	End(result Result)
}

// Observer 定义统一观测接口。
type Observer interface {
	// Start 开始一次观测跨度。
	Start(ctx context.Context, opts SpanOptions) (context.Context, Span)
}

// NoopObserver 是空实现。
type NoopObserver struct{}

// Start 返回原 ctx 和空跨度。
func (NoopObserver) Start(ctx context.Context, _ SpanOptions) (context.Context, Span) {
	if ctx == nil {
		ctx = context.Background()
	}
	return ctx, NoopSpan{}
}

// NoopSpan 是空跨度。
type NoopSpan struct{}

// End 不做任何处理。
func (NoopSpan) End(Result) {}

// Start 使用 observer 开始观测。
// 总是返回非 nil 的 ctx 与 Span：nil observer、nil ctx 或返回 nil 的自定义实现都会被兜底。
func Start(ctx context.Context, observer Observer, opts SpanOptions) (context.Context, Span) {
	if ctx == nil {
		ctx = context.Background()
	}
	if observer == nil {
		return ctx, NoopSpan{}
	}
	retCtx, span := observer.Start(ctx, opts)
	if retCtx == nil {
		retCtx = ctx
	}
	if span == nil {
		span = NoopSpan{}
	}
	return retCtx, span
}

func resolveStatus(result Result) Status {
	if result.Status != "" {
		return result.Status
	}
	if result.Err != nil {
		return StatusError
	}
	return StatusOK
}
