package xdb

import "errors"

var (
	// ErrTxDone 表示事务已提交或已回滚。
	ErrTxDone = errors.New("xdb: transaction already finished")

	// ErrNilExtension 表示传入了 nil 扩展。
	ErrNilExtension = errors.New("xdb: nil extension")

	// ErrEmptyExtensionName 表示扩展名为空。
	ErrEmptyExtensionName = errors.New("xdb: empty extension name")

	// ErrExtensionLoaded 表示同名扩展已加载。
	ErrExtensionLoaded = errors.New("xdb: extension already loaded")

	// ErrNoCast 表示没有注册对应方向的转换函数。
	ErrNoCast = errors.New("xdb: no cast registered")

	// ErrNilVector 表示转换的源向量为 nil。
	ErrNilVector = errors.New("xdb: nil source vector")
)
