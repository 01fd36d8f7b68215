package xconf

import "errors"

// 配置加载和解析相关错误。
var (
	// ErrEmptyPath 表示配置文件路径为空。
	ErrEmptyPath = errors.New("xconf: empty config path")

	// ErrUnsupportedFormat 表示不支持的配置格式。
	ErrUnsupportedFormat = errors.New("xconf: unsupported config format")

	// ErrLoadFailed 表示配置读取失败。
	ErrLoadFailed = errors.New("xconf: failed to load config")

	// ErrParseFailed 表示配置解析失败。
	ErrParseFailed = errors.New("xconf: failed to parse config")

	// ErrUnmarshalFailed 表示配置反序列化失败。
	ErrUnmarshalFailed = errors.New("xconf: failed to unmarshal config")

	// ErrNotReloadable 表示从字节数据创建的配置不能重载。
	ErrNotReloadable = errors.New("xconf: config created from bytes cannot be reloaded")

	// ErrEmptyOverrideKey 表示覆盖项的键为空。
	ErrEmptyOverrideKey = errors.New("xconf: empty override key")
)
