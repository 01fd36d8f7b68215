package main

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/xinet/pkg/config/xconf"
	"github.com/omeyang/xinet/pkg/observability/xlog"
)

// settings 是 xinetctl 的完整配置。加载顺序：默认值 → 配置文件 → 命令行参数。
type settings struct {
	Log        logSettings        `koanf:"log"`
	Inet       inetSettings       `koanf:"inet"`
	Convert    convertSettings    `koanf:"convert"`
	ClickHouse clickhouseSettings `koanf:"clickhouse"`
}

type logSettings struct {
	Level      xlog.Level `koanf:"level"`
	Format     string     `koanf:"format"`
	File       string     `koanf:"file"`
	MaxSizeMB  int        `koanf:"max_size_mb"`
	MaxBackups int        `koanf:"max_backups"`
}

type inetSettings struct {
	LegacyMaskScan bool `koanf:"legacy_mask_scan"`
}

type convertSettings struct {
	ChunkRows int    `koanf:"chunk_rows"`
	Workers   int    `koanf:"workers"`
	NullToken string `koanf:"null_token"`
	Format    string `koanf:"format"`
}

type clickhouseSettings struct {
	Addr          []string      `koanf:"addr"`
	Database      string        `koanf:"database"`
	Username      string        `koanf:"username"`
	Password      string        `koanf:"password"`
	DialTimeout   time.Duration `koanf:"dial_timeout"`
	Table         string        `koanf:"table"`
	BatchSize     int           `koanf:"batch_size"`
	RetryAttempts uint          `koanf:"retry_attempts"`
	RetryDelay    time.Duration `koanf:"retry_delay"`
}

// 默认值。
const (
	defaultChunkRows = 2048
	defaultWorkers   = 4
	defaultNullToken = `\N`
	maxChunkRows     = 1 << 20
	maxWorkers       = 256
)

func defaultSettings() *settings {
	return &settings{
		Log: logSettings{Level: xlog.LevelWarn, Format: "text"},
		Convert: convertSettings{
			ChunkRows: defaultChunkRows,
			Workers:   defaultWorkers,
			NullToken: defaultNullToken,
			Format:    "text",
		},
		ClickHouse: clickhouseSettings{
			Addr:          []string{"localhost:9000"},
			Database:      "default",
			Username:      "default",
			DialTimeout:   5 * time.Second,
			Table:         "inet_values",
			RetryAttempts: 3,
			RetryDelay:    200 * time.Millisecond,
		},
	}
}

// flagBinding 把命令行参数映射到配置键。
type flagBinding struct {
	flag string
	key  string
}

var flagBindings = []flagBinding{
	{"log-level", "log.level"},
	{"log-format", "log.format"},
	{"legacy-mask", "inet.legacy_mask_scan"},
	{"chunk-rows", "convert.chunk_rows"},
	{"workers", "convert.workers"},
	{"null-token", "convert.null_token"},
	{"format", "convert.format"},
	{"addr", "clickhouse.addr"},
	{"database", "clickhouse.database"},
	{"password", "clickhouse.password"},
	{"table", "clickhouse.table"},
	{"batch-size", "clickhouse.batch_size"},
}

// loadSettings 读取配置文件并应用显式设置的参数。
func loadSettings(cmd *cli.Command) (*settings, error) {
	opts := []xconf.Option{xconf.WithStrict()}
	for _, b := range flagBindings {
		if cmd.IsSet(b.flag) {
			opts = append(opts, xconf.WithOverride(b.key, cmd.Value(b.flag)))
		}
	}

	var (
		cfg xconf.Config
		err error
	)
	if path := cmd.String("config"); path != "" {
		cfg, err = xconf.New(path, opts...)
	} else {
		cfg, err = xconf.NewFromBytes(nil, xconf.FormatYAML, opts...)
	}
	if err != nil {
		return nil, &usageError{err: err}
	}

	s := defaultSettings()
	if err := cfg.Unmarshal("", s); err != nil {
		return nil, &usageError{err: err}
	}
	if err := s.validate(); err != nil {
		return nil, &usageError{err: err}
	}
	return s, nil
}

func (s *settings) validate() error {
	c := s.Convert
	if c.ChunkRows < 1 || c.ChunkRows > maxChunkRows {
		return fmt.Errorf("convert.chunk_rows must be in [1, %d], got %d", maxChunkRows, c.ChunkRows)
	}
	if c.Workers < 1 || c.Workers > maxWorkers {
		return fmt.Errorf("convert.workers must be in [1, %d], got %d", maxWorkers, c.Workers)
	}
	if c.Format != "text" && c.Format != "json" {
		return fmt.Errorf("convert.format must be text or json, got %q", c.Format)
	}
	if len(s.ClickHouse.Addr) == 0 {
		return fmt.Errorf("clickhouse.addr must not be empty")
	}
	return nil
}
