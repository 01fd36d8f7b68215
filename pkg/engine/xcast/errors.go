package xcast

import (
	"errors"
	"fmt"
)

// ErrNilFunc 表示注册的转换函数为 nil。
var ErrNilFunc = errors.New("xcast: cast function is nil")

// ErrInvalidType 表示转换的源或目标类型无效。
var ErrInvalidType = errors.New("xcast: invalid logical type")

// InternalError 表示引擎内部不变量被破坏，当前查询无法继续。
type InternalError struct {
	What string
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("INTERNAL Error: %s", e.What)
}

// Unreachable 以 *InternalError panic。用于不允许执行的代码路径。
func Unreachable(what string) {
	panic(&InternalError{What: what})
}
