package xlog

import (
	"fmt"
	"log/slog"
	"strings"
)

// Level 是 xinetctl 的 log.level 配置项，数值与 slog.Level 相同。
type Level slog.Level

const (
	LevelDebug = Level(slog.LevelDebug)
	LevelInfo  = Level(slog.LevelInfo)
	LevelWarn  = Level(slog.LevelWarn)
	LevelError = Level(slog.LevelError)
)

// levelNames 是 log.level 与 --log-level 接受的写法。
var levelNames = map[string]Level{
	"debug":   LevelDebug,
	"info":    LevelInfo,
	"warn":    LevelWarn,
	"warning": LevelWarn,
	"error":   LevelError,
}

func (l Level) String() string { return slog.Level(l).String() }

func (l Level) MarshalText() ([]byte, error) { return []byte(l.String()), nil }

// UnmarshalText 让 xconf 直接把 "warn" 之类的字符串解码成 Level。
// 解析失败时 l 保持不变。
func (l *Level) UnmarshalText(data []byte) error {
	parsed, err := ParseLevel(string(data))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// ParseLevel 忽略大小写与首尾空白；未知名称返回 LevelInfo 和错误。
func ParseLevel(s string) (Level, error) {
	if l, ok := levelNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return l, nil
	}
	return LevelInfo, fmt.Errorf("xlog: unknown level %q", s)
}
