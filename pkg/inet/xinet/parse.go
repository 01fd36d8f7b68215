package xinet

import (
	"strconv"

	"github.com/omeyang/xinet/pkg/engine/xtype"
)

// DefaultMask 是未写掩码时的前缀长度。
const DefaultMask = 32

const octetCount = 4

type state uint8

const (
	stateScanNumber state = iota
	stateExpectDot
	stateParseMask
	stateDone
)

type text interface {
	~string | ~[]byte
}

// Parser 持有解析选项，零值即默认行为。值类型，可并发使用。
type Parser struct {
	opts options
}

// NewParser 创建 Parser。批量解析时复用同一个 Parser 可避免每次调用重新解析选项。
func NewParser(opts ...Option) Parser {
	return Parser{opts: resolve(opts)}
}

// Parse 解析字节输入。input 不会被修改或持有。
func (p Parser) Parse(input []byte) (Value, error) {
	return scan(input, p.opts.legacyMaskScan)
}

// ParseString 解析字符串输入。
func (p Parser) ParseString(input string) (Value, error) {
	return scan(input, p.opts.legacyMaskScan)
}

// Parse 以 opts 解析字节输入。
func Parse(input []byte, opts ...Option) (Value, error) {
	return NewParser(opts...).Parse(input)
}

// ParseString 以 opts 解析字符串输入。
func ParseString(input string, opts ...Option) (Value, error) {
	return NewParser(opts...).ParseString(input)
}

func scan[T text](in T, legacy bool) (Value, error) {
	var (
		st      = stateScanNumber
		cursor  int
		start   int
		count   int
		address uint64
		mask    uint8
	)
	for {
		switch st {
		case stateScanNumber:
			start = cursor
			cursor = skipDigits(in, cursor)
			if start == cursor {
				return Value{}, fail(in, KindExpectedNumber)
			}
			octet, ok := toUint8(in[start:cursor])
			if !ok {
				return Value{}, fail(in, KindNumberOutOfRange)
			}
			address |= uint64(octet) << (8 * count)
			count++
			if count == octetCount {
				st = stateParseMask
			} else {
				st = stateExpectDot
			}

		case stateExpectDot:
			if cursor == len(in) || in[cursor] != '.' {
				return Value{}, fail(in, KindExpectedDot)
			}
			cursor++
			st = stateScanNumber

		case stateParseMask:
			if cursor == len(in) {
				mask = DefaultMask
				st = stateDone
				continue
			}
			if in[cursor] != '/' {
				return Value{}, fail(in, KindExpectedSlash)
			}
			if !legacy {
				cursor++
				start = cursor
				cursor = skipDigits(in, cursor)
				if start == cursor {
					return Value{}, fail(in, KindExpectedNumber)
				}
			}
			// legacy: start..cursor 仍是第四个 octet 的数字串
			m, ok := toUint8(in[start:cursor])
			if !ok {
				return Value{}, fail(in, KindNumberOutOfRange)
			}
			mask = m
			st = stateDone

		case stateDone:
			return Value{
				Address: xtype.HugeintFromUint64(address),
				Mask:    int32(mask),
			}, nil
		}
	}
}

func skipDigits[T text](in T, cursor int) int {
	for cursor < len(in) && in[cursor] >= '0' && in[cursor] <= '9' {
		cursor++
	}
	return cursor
}

// toUint8 把数字串转换为 8 位无符号整数，空串、非数字或超过 255 都返回 false。
func toUint8[T text](digits T) (uint8, bool) {
	v, err := strconv.ParseUint(string(digits), 10, 8)
	if err != nil {
		return 0, false
	}
	return uint8(v), true
}

func fail[T text](in T, kind Kind) *ParseError {
	return &ParseError{Input: string(in), Kind: kind}
}
