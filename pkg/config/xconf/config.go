package xconf

import "github.com/knadh/koanf/v2"

// Format 定义配置文件格式。
type Format string

// 支持的配置格式。
const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Config 定义配置接口。
// 只提供增值功能，基础读取请直接使用 Client() 返回的 koanf 实例。
type Config interface {
	// Client 返回底层的 koanf 实例。
	Client() *koanf.Koanf

	// Unmarshal 将 path 下的配置反序列化到 target，path 为空时反序列化整个配置。
	Unmarshal(path string, target any) error

	// Reload 重新读取配置文件并应用覆盖项。
	// 解析失败时保留旧配置。从字节数据创建的配置返回 ErrNotReloadable。
	Reload() error

	// Path 返回配置文件路径，从字节数据创建时为空。
	Path() string

	// Format 返回配置格式。
	Format() Format
}

// MustUnmarshal 与 Config.Unmarshal 相同，但失败时 panic。
// 适用于程序启动时的必要配置。
func MustUnmarshal(cfg Config, path string, target any) {
	if err := cfg.Unmarshal(path, target); err != nil {
		panic(err)
	}
}
