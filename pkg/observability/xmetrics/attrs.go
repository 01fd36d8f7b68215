package xmetrics

import "time"

// 转换与入库跨度上的属性名。
const (
	AttrSource    = "source"
	AttrTarget    = "target"
	AttrRows      = "rows"
	AttrExtension = "extension"
	AttrDBSystem  = "db.system"
	AttrDBTable   = "db.table"
)

func String(key, value string) Attr             { return Attr{Key: key, Value: value} }
func Bool(key string, value bool) Attr          { return Attr{Key: key, Value: value} }
func Int(key string, value int) Attr            { return Attr{Key: key, Value: value} }
func Int64(key string, value int64) Attr        { return Attr{Key: key, Value: value} }
func Duration(key string, v time.Duration) Attr { return Attr{Key: key, Value: v} }

// Rows 是本次操作处理的行数。
func Rows(n int) Attr { return Int(AttrRows, n) }

// CastTypes 描述一次列转换的源类型与目标类型。
func CastTypes(source, target string) []Attr {
	return []Attr{String(AttrSource, source), String(AttrTarget, target)}
}

// ClickHouse 返回 ClickHouse 调用的公共属性，table 为空时只带 db.system。
func ClickHouse(table string) []Attr {
	attrs := []Attr{String(AttrDBSystem, "clickhouse")}
	if table != "" {
		attrs = append(attrs, String(AttrDBTable, table))
	}
	return attrs
}
