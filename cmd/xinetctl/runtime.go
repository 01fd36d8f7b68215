package main

import (
	"context"
	"errors"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/xinet/pkg/engine/xdb"
	"github.com/omeyang/xinet/pkg/inet/xinet"
	"github.com/omeyang/xinet/pkg/inet/xinetext"
	"github.com/omeyang/xinet/pkg/observability/xlog"
	"github.com/omeyang/xinet/pkg/observability/xmetrics"
	"github.com/omeyang/xinet/pkg/observability/xrotate"
)

// runtime 是一次命令执行所需的全部组件。
type runtime struct {
	settings *settings
	logger   xlog.Logger
	observer xmetrics.Observer
	db       *xdb.Database
	stats    *statsCollector
	cleanup  func() error
}

// setup 加载配置，构建日志与观测组件，打开数据库并加载 inet 扩展。
func setup(ctx context.Context, cmd *cli.Command, stderr io.Writer) (*runtime, error) {
	s, err := loadSettings(cmd)
	if err != nil {
		return nil, err
	}

	b := xlog.New().
		SetLevel(s.Log.Level).
		SetFormat(s.Log.Format).
		SetOutput(stderr)
	if s.Log.File != "" {
		var ropts []xrotate.Option
		if s.Log.MaxSizeMB > 0 {
			ropts = append(ropts, xrotate.WithMaxSize(s.Log.MaxSizeMB))
		}
		if s.Log.MaxBackups > 0 {
			ropts = append(ropts, xrotate.WithMaxBackups(s.Log.MaxBackups))
		}
		b.SetRotation(s.Log.File, ropts...)
	}
	logger, cleanup, err := b.Build()
	if err != nil {
		return nil, &usageError{err: err}
	}

	rt := &runtime{settings: s, logger: logger, observer: xmetrics.NoopObserver{}, cleanup: cleanup}
	if cmd.Bool("stats") {
		rt.stats, err = newStatsCollector()
		if err != nil {
			_ = cleanup() //nolint:errcheck // 构建失败时的清理
			return nil, err
		}
		rt.observer = rt.stats.observer
	}

	rt.db, err = xdb.Open(xdb.WithLogger(logger), xdb.WithObserver(rt.observer))
	if err == nil {
		err = rt.db.LoadExtension(ctx, xinetext.New(rt.parserOptions()...))
	}
	if err != nil {
		return nil, errors.Join(err, rt.close(ctx, stderr))
	}
	return rt, nil
}

func (rt *runtime) parserOptions() []xinet.Option {
	if rt.settings.Inet.LegacyMaskScan {
		return []xinet.Option{xinet.WithLegacyMaskScan()}
	}
	return nil
}

// close 输出统计（若开启）并关闭日志文件。
func (rt *runtime) close(ctx context.Context, stderr io.Writer) error {
	var errs []error
	if rt.stats != nil {
		errs = append(errs, rt.stats.report(ctx, stderr), rt.stats.shutdown(ctx))
	}
	if rt.cleanup != nil {
		errs = append(errs, rt.cleanup())
	}
	return errors.Join(errs...)
}
