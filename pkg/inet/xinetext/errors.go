package xinetext

import "errors"

// ErrResultShape 表示结果向量不是 STRUCT(address HUGEINT, mask USMALLINT)，
// 或行数不足。属于调用方编程错误。
var ErrResultShape = errors.New("xinetext: result vector is not an inet struct")
