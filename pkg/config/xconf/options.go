package xconf

// Options 定义配置加载选项。
type Options struct {
	// Delim 配置键的分隔符，默认为 "."。
	Delim string

	// Tag 结构体标签名，默认为 "koanf"。
	Tag string

	// Strict 为 true 时，Unmarshal 遇到目标结构体中不存在的键会失败。
	Strict bool

	// Overrides 在加载和每次重载后按顺序写入，键使用 Delim 分隔。
	Overrides []Override
}

// Override 是一条覆盖项。
type Override struct {
	Key   string
	Value any
}

// Option 定义配置选项函数类型。
type Option func(*Options)

func defaultOptions() *Options {
	return &Options{
		Delim: ".",
		Tag:   "koanf",
	}
}

// WithDelim 设置配置键分隔符，空字符串被忽略。
func WithDelim(delim string) Option {
	return func(o *Options) {
		if delim != "" {
			o.Delim = delim
		}
	}
}

// WithTag 设置结构体标签名，空字符串被忽略。
func WithTag(tag string) Option {
	return func(o *Options) {
		if tag != "" {
			o.Tag = tag
		}
	}
}

// WithStrict 拒绝未知键。
func WithStrict() Option {
	return func(o *Options) {
		o.Strict = true
	}
}

// WithOverride 追加一条覆盖项，后追加的同名键优先。
func WithOverride(key string, value any) Option {
	return func(o *Options) {
		o.Overrides = append(o.Overrides, Override{Key: key, Value: value})
	}
}
