package xtype

import "errors"

var (
	// ErrEmptyTypeName 表示类型名为空。
	ErrEmptyTypeName = errors.New("xtype: empty type name")

	// ErrTypeExists 表示同名类型已存在。
	ErrTypeExists = errors.New("xtype: type already exists")

	// ErrTypeNotFound 表示类型不存在。
	ErrTypeNotFound = errors.New("xtype: type not found")

	// ErrInvalidType 表示无效的逻辑类型（如零值 LogicalType）。
	ErrInvalidType = errors.New("xtype: invalid logical type")
)
