package xinet

import (
	"errors"
	"strconv"
)

// Kind 表示解析失败的原因。
type Kind uint8

const (
	// KindExpectedNumber 需要数字串但一个数字都没有。
	KindExpectedNumber Kind = iota + 1
	// KindNumberOutOfRange 数字串无法表示为 0~255。
	KindNumberOutOfRange
	// KindExpectedDot 前三个 octet 之后缺少 '.'。
	KindExpectedDot
	// KindExpectedSlash 第四个 octet 之后的字节不是 '/'。
	KindExpectedSlash
)

// 与 Kind 一一对应的哨兵错误。
var (
	ErrExpectedNumber   = errors.New("xinet: expected a number")
	ErrNumberOutOfRange = errors.New("xinet: number out of range")
	ErrExpectedDot      = errors.New("xinet: expected a dot")
	ErrExpectedSlash    = errors.New("xinet: expected a slash")
)

// Reason 返回面向用户的失败原因。
func (k Kind) Reason() string {
	switch k {
	case KindExpectedNumber:
		return "Expected a number"
	case KindNumberOutOfRange:
		return "Expected a number between 0 and 255"
	case KindExpectedDot:
		return "Expected a dot"
	case KindExpectedSlash:
		return "Expected a slash"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// String 同 Reason。
func (k Kind) String() string { return k.Reason() }

func (k Kind) sentinel() error {
	switch k {
	case KindExpectedNumber:
		return ErrExpectedNumber
	case KindNumberOutOfRange:
		return ErrNumberOutOfRange
	case KindExpectedDot:
		return ErrExpectedDot
	case KindExpectedSlash:
		return ErrExpectedSlash
	default:
		return nil
	}
}

// ParseError 是解析失败的结果，Input 为原始输入。
type ParseError struct {
	Input string
	Kind  Kind
}

func (e *ParseError) Error() string {
	return `Failed to convert string "` + e.Input + `" to inet: ` + e.Kind.Reason()
}

// Unwrap 返回 Kind 对应的哨兵错误。
func (e *ParseError) Unwrap() error {
	return e.Kind.sentinel()
}
