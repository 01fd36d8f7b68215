package xvector

import "errors"

var (
	// ErrTypeMismatch 表示向量类型与期望不符。
	ErrTypeMismatch = errors.New("xvector: vector type mismatch")

	// ErrCountOutOfRange 表示行数超过向量长度或为负数。
	ErrCountOutOfRange = errors.New("xvector: row count out of range")

	// ErrUnsupportedType 表示无法为该逻辑类型分配向量。
	ErrUnsupportedType = errors.New("xvector: unsupported logical type")
)
