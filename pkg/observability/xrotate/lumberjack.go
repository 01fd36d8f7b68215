package xrotate

import (
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	"gopkg.in/natefinch/lumberjack.v2"
)

// 默认配置
const (
	DefaultMaxSizeMB  = 100
	DefaultMaxBackups = 7
	DefaultMaxAgeDays = 30
	DefaultCompress   = true

	maxSizeMB  = 10240
	maxBackups = 1024
	maxAgeDays = 3650
)

type lumberjackConfig struct {
	maxSizeMB  int
	maxBackups int
	maxAgeDays int
	compress   bool
	localTime  bool
}

// Option lumberjack 配置选项
type Option func(*lumberjackConfig)

// WithMaxSize 设置单个日志文件最大大小（MB）
func WithMaxSize(mb int) Option {
	return func(c *lumberjackConfig) { c.maxSizeMB = mb }
}

// WithMaxBackups 设置保留的备份文件数量，0 表示只按天数清理
func WithMaxBackups(n int) Option {
	return func(c *lumberjackConfig) { c.maxBackups = n }
}

// WithMaxAge 设置保留备份的天数，0 表示只按数量清理
func WithMaxAge(days int) Option {
	return func(c *lumberjackConfig) { c.maxAgeDays = days }
}

// WithCompress 设置是否 gzip 压缩备份
func WithCompress(compress bool) Option {
	return func(c *lumberjackConfig) { c.compress = compress }
}

// WithLocalTime 设置备份文件名是否使用本地时间（默认 UTC）
func WithLocalTime(local bool) Option {
	return func(c *lumberjackConfig) { c.localTime = local }
}

type lumberjackRotator struct {
	logger *lumberjack.Logger
	closed atomic.Bool
}

// NewLumberjack 创建基于 lumberjack 的轮转器。父目录不存在时以 0750 创建。
func NewLumberjack(filename string, opts ...Option) (Rotator, error) {
	if filename == "" {
		return nil, ErrEmptyFilename
	}

	cfg := lumberjackConfig{
		maxSizeMB:  DefaultMaxSizeMB,
		maxBackups: DefaultMaxBackups,
		maxAgeDays: DefaultMaxAgeDays,
		compress:   DefaultCompress,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	path := filepath.Clean(filename)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("xrotate: create log dir: %w", err)
	}

	return &lumberjackRotator{
		logger: &lumberjack.Logger{
			Filename:   path,
			MaxSize:    cfg.maxSizeMB,
			MaxBackups: cfg.maxBackups,
			MaxAge:     cfg.maxAgeDays,
			Compress:   cfg.compress,
			LocalTime:  cfg.localTime,
		},
	}, nil
}

func (c *lumberjackConfig) validate() error {
	if c.maxSizeMB <= 0 || c.maxSizeMB > maxSizeMB {
		return fmt.Errorf("%w: got %d, want 1~%d", ErrInvalidMaxSize, c.maxSizeMB, maxSizeMB)
	}
	if c.maxBackups < 0 || c.maxBackups > maxBackups {
		return fmt.Errorf("%w: got %d, want 0~%d", ErrInvalidMaxBackups, c.maxBackups, maxBackups)
	}
	if c.maxAgeDays < 0 || c.maxAgeDays > maxAgeDays {
		return fmt.Errorf("%w: got %d, want 0~%d", ErrInvalidMaxAge, c.maxAgeDays, maxAgeDays)
	}
	if c.maxBackups == 0 && c.maxAgeDays == 0 {
		return ErrNoCleanupPolicy
	}
	return nil
}

// Write 实现 io.Writer。
func (r *lumberjackRotator) Write(p []byte) (int, error) {
	if r.closed.Load() {
		return 0, ErrClosed
	}
	n, err := r.logger.Write(p)
	if err != nil && r.closed.Load() {
		// Close 与 Write 并发时统一返回 ErrClosed
		return n, ErrClosed
	}
	return n, err
}

// Close 实现 io.Closer。
func (r *lumberjackRotator) Close() error {
	if r.closed.Swap(true) {
		return ErrClosed
	}
	return r.logger.Close()
}

// Rotate 手动触发轮转。
func (r *lumberjackRotator) Rotate() error {
	if r.closed.Load() {
		return ErrClosed
	}
	return r.logger.Rotate()
}
