package xdb

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/omeyang/xinet/pkg/engine/xcast"
	"github.com/omeyang/xinet/pkg/engine/xtype"
	"github.com/omeyang/xinet/pkg/engine/xvector"
	"github.com/omeyang/xinet/pkg/observability/xlog"
	"github.com/omeyang/xinet/pkg/observability/xmetrics"
)

const componentName = "xdb"

// Extension 是可加载到数据库的扩展。
type Extension interface {
	// Name 返回扩展名，同一数据库内唯一。
	Name() string

	// Load 在 tx 上登记扩展提供的类型与转换函数。
	Load(tx *Tx) error
}

// Database 数据库实例，并发安全。
type Database struct {
	catalog *xtype.Catalog
	casts   *xcast.Set
	options *Options

	commitMu sync.Mutex // 串行化事务提交

	extMu      sync.Mutex
	extensions []string
}

// Open 创建数据库实例。
func Open(opts ...Option) (*Database, error) {
	options := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(options)
		}
	}
	return &Database{
		catalog: xtype.NewCatalog(),
		casts:   xcast.NewSet(),
		options: options,
	}, nil
}

// Catalog 返回类型目录，仅用于查询；新增类型通过事务完成。
func (db *Database) Catalog() *xtype.Catalog { return db.catalog }

// Casts 返回转换函数集合，仅用于查询；注册通过事务完成。
func (db *Database) Casts() *xcast.Set { return db.casts }

// Begin 开始一个事务。
func (db *Database) Begin() *Tx {
	return &Tx{db: db}
}

// LoadExtension 在事务中加载扩展。同名扩展只能加载一次。
func (db *Database) LoadExtension(ctx context.Context, ext Extension) (err error) {
	if ext == nil {
		return ErrNilExtension
	}
	name := ext.Name()
	if name == "" {
		return ErrEmptyExtensionName
	}

	db.extMu.Lock()
	defer db.extMu.Unlock()
	for _, loaded := range db.extensions {
		if loaded == name {
			return fmt.Errorf("%w: %q", ErrExtensionLoaded, name)
		}
	}

	ctx, span := xmetrics.Start(ctx, db.options.Observer, xmetrics.SpanOptions{
		Component: componentName,
		Operation: "load_extension",
		Attrs:     []xmetrics.Attr{xmetrics.String(xmetrics.AttrExtension, name)},
	})
	defer func() { span.End(xmetrics.Result{Err: err}) }()

	tx := db.Begin()
	if err = ext.Load(tx); err != nil {
		tx.Rollback()
		db.options.Logger.Error(ctx, "extension load failed",
			xlog.Component(componentName), slog.String("extension", name), xlog.Err(err))
		return fmt.Errorf("xdb: load extension %q: %w", name, err)
	}
	if err = tx.Commit(); err != nil {
		db.options.Logger.Error(ctx, "extension commit failed",
			xlog.Component(componentName), slog.String("extension", name), xlog.Err(err))
		return fmt.Errorf("xdb: load extension %q: %w", name, err)
	}

	db.extensions = append(db.extensions, name)
	db.options.Logger.Info(ctx, "extension loaded",
		xlog.Component(componentName), slog.String("extension", name))
	return nil
}

// Extensions 按加载顺序返回已加载的扩展名。
func (db *Database) Extensions() []string {
	db.extMu.Lock()
	defer db.extMu.Unlock()
	out := make([]string, len(db.extensions))
	copy(out, db.extensions)
	return out
}

// Cast 将 source 的前 count 行转换为 target 类型。
//
// 转换函数返回错误时，返回值同时包含已部分写入的结果向量与该错误。
// 转换函数内部的 panic（如 [xcast.Unreachable]）不会被恢复。
func (db *Database) Cast(ctx context.Context, source xvector.Vector, target xtype.LogicalType, count int) (result xvector.Vector, err error) {
	if source == nil {
		return nil, ErrNilVector
	}
	if count < 0 || count > source.Len() {
		return nil, fmt.Errorf("%w: count %d, length %d", xvector.ErrCountOutOfRange, count, source.Len())
	}
	fn, ok := db.casts.Lookup(source.Type(), target)
	if !ok {
		return nil, fmt.Errorf("%w: %s -> %s", ErrNoCast, source.Type(), target)
	}
	result, err = xvector.New(target, count)
	if err != nil {
		return nil, err
	}

	ctx, span := xmetrics.Start(ctx, db.options.Observer, xmetrics.SpanOptions{
		Component: componentName,
		Operation: "cast",
		Attrs:     append(xmetrics.CastTypes(source.Type().String(), target.String()), xmetrics.Rows(count)),
	})
	defer func() { span.End(xmetrics.Result{Err: err}) }()

	start := time.Now()
	if err = fn(source, result, count); err != nil {
		db.options.Logger.Warn(ctx, "cast failed",
			xlog.Component(componentName),
			slog.String("source", source.Type().String()),
			slog.String("target", target.String()),
			xlog.Count(int64(count)),
			xlog.Duration(time.Since(start)),
			xlog.Err(err))
		return result, err
	}
	db.options.Logger.Debug(ctx, "cast done",
		xlog.Component(componentName),
		slog.String("target", target.String()),
		xlog.Count(int64(count)),
		xlog.Duration(time.Since(start)))
	return result, nil
}

// CastTo 通过类型目录解析 typeName 后执行 [Database.Cast]。
func (db *Database) CastTo(ctx context.Context, source xvector.Vector, typeName string, count int) (xvector.Vector, error) {
	target, err := db.catalog.GetType(typeName)
	if err != nil {
		return nil, err
	}
	return db.Cast(ctx, source, target, count)
}
