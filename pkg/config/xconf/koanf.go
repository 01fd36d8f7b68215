package xconf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// koanfConfig 是 Config 接口的 koanf 实现。
type koanfConfig struct {
	k      atomic.Pointer[koanf.Koanf]
	path   string
	format Format
	opts   *Options

	// reloadMu 串行化 Reload，避免较慢的一次覆盖较新的结果。
	reloadMu sync.Mutex
}

// New 从文件创建配置，按扩展名识别格式（.yaml/.yml 或 .json）。
func New(path string, opts ...Option) (Config, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	options, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	c := &koanfConfig{path: path, format: format, opts: options}
	k, err := c.readFile()
	if err != nil {
		return nil, err
	}
	c.k.Store(k)
	return c, nil
}

// NewFromBytes 从字节数据创建配置。空数据得到空配置。
func NewFromBytes(data []byte, format Format, opts ...Option) (Config, error) {
	if !isValidFormat(format) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	options, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	c := &koanfConfig{format: format, opts: options}
	k, err := c.build(data)
	if err != nil {
		return nil, err
	}
	c.k.Store(k)
	return c, nil
}

func resolve(opts []Option) (*Options, error) {
	options := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(options)
		}
	}
	for _, o := range options.Overrides {
		if strings.TrimSpace(o.Key) == "" {
			return nil, ErrEmptyOverrideKey
		}
	}
	return options, nil
}

// Client 返回底层的 koanf 实例。
func (c *koanfConfig) Client() *koanf.Koanf {
	return c.k.Load()
}

// Unmarshal 将指定路径的配置反序列化到目标结构体。
func (c *koanfConfig) Unmarshal(path string, target any) error {
	conf := koanf.UnmarshalConf{
		Tag: c.opts.Tag,
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.TextUnmarshallerHookFunc(),
			),
			Result:           target,
			TagName:          c.opts.Tag,
			WeaklyTypedInput: true,
			ErrorUnused:      c.opts.Strict,
		},
	}
	if err := c.k.Load().UnmarshalWithConf(path, target, conf); err != nil {
		return fmt.Errorf("%w: %w", ErrUnmarshalFailed, err)
	}
	return nil
}

// Reload 重新加载配置文件。
func (c *koanfConfig) Reload() error {
	if c.path == "" {
		return ErrNotReloadable
	}
	c.reloadMu.Lock()
	defer c.reloadMu.Unlock()

	k, err := c.readFile()
	if err != nil {
		return err
	}
	c.k.Store(k)
	return nil
}

// Path 返回配置文件路径。
func (c *koanfConfig) Path() string {
	return c.path
}

// Format 返回配置格式。
func (c *koanfConfig) Format() Format {
	return c.format
}

func (c *koanfConfig) readFile() (*koanf.Koanf, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	return c.build(data)
}

// build 解析 data 并应用覆盖项，返回新的 koanf 实例。
func (c *koanfConfig) build(data []byte) (*koanf.Koanf, error) {
	k := koanf.New(c.opts.Delim)
	if len(data) > 0 {
		if err := k.Load(rawbytes.Provider(data), parserFor(c.format)); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParseFailed, err)
		}
	}
	for _, o := range c.opts.Overrides {
		if err := k.Set(o.Key, o.Value); err != nil {
			return nil, fmt.Errorf("%w: override %s: %w", ErrParseFailed, o.Key, err)
		}
	}
	return k, nil
}

// DetectFormat 根据文件扩展名检测配置格式。
func DetectFormat(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: unknown extension %q", ErrUnsupportedFormat, ext)
	}
}

func isValidFormat(format Format) bool {
	return format == FormatYAML || format == FormatJSON
}

func parserFor(format Format) koanf.Parser {
	if format == FormatJSON {
		return json.Parser()
	}
	return yaml.Parser()
}
