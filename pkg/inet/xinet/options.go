package xinet

type options struct {
	legacyMaskScan bool
}

// Option 配置解析行为。
type Option func(*options)

// WithLegacyMaskScan 复现旧实现的掩码读取方式，仅用于需要逐字节兼容的场景。
// 开启后 '/' 之后的内容不被读取，掩码取第四个 octet 的数值。
func WithLegacyMaskScan() Option {
	return func(o *options) { o.legacyMaskScan = true }
}

func resolve(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
