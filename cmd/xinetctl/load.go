package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/google/uuid"
	"github.com/urfave/cli/v3"

	"github.com/omeyang/xinet/pkg/engine/xvector"
	"github.com/omeyang/xinet/pkg/observability/xlog"
	"github.com/omeyang/xinet/pkg/storage/xclickhouse"
)

//go:generate mockgen -source=load.go -destination=mock_sink_test.go -package=main

// inetSink 是 load 命令的写入端，由 xclickhouse.ClickHouse 实现。
type inetSink interface {
	CreateInetTable(ctx context.Context, table string) error
	InsertInet(ctx context.Context, table string, v *xvector.StructVector, count int, opts xclickhouse.InsertOptions) (*xclickhouse.InsertResult, error)
	Close() error
}

var _ inetSink = xclickhouse.ClickHouse(nil)

func createLoadCommand(e *env) *cli.Command {
	flags := append(convertFlags(),
		&cli.StringFlag{
			Name:    "table",
			Aliases: []string{"t"},
			Usage:   "目标表（默认 inet_values）",
		},
		&cli.BoolFlag{
			Name:  "create",
			Usage: "写入前创建目标表",
		},
		&cli.StringSliceFlag{
			Name:  "addr",
			Usage: "ClickHouse 地址（host:port），可重复",
		},
		&cli.StringFlag{
			Name:  "database",
			Usage: "ClickHouse 数据库",
		},
		&cli.StringFlag{
			Name:    "password",
			Usage:   "ClickHouse 密码",
			Sources: cli.EnvVars("XINET_CLICKHOUSE_PASSWORD"),
		},
		&cli.IntFlag{
			Name:  "batch-size",
			Usage: "每批写入行数",
		},
	)
	return &cli.Command{
		Name:  "load",
		Usage: "转换输入并写入 ClickHouse",
		Flags: flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return withRuntime(ctx, cmd, e, func(rt *runtime) error {
				chunks, err := readAndConvert(ctx, cmd, e, rt)
				if err != nil {
					return err
				}
				sink, err := e.openSink(ctx, rt.settings.ClickHouse,
					xclickhouse.WithLogger(rt.logger),
					xclickhouse.WithObserver(rt.observer),
				)
				if err != nil {
					return err
				}
				summary, err := cmdLoad(ctx, sink, rt.logger, rt.settings.ClickHouse, chunks, cmd.Bool("create"))
				closeErr := sink.Close()
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintln(e.stdout, summary); err != nil {
					return err
				}
				return closeErr
			})
		},
	}
}

// loadSummary 是一次 load 的结果。
type loadSummary struct {
	id    string
	table string
	res   xclickhouse.InsertResult
}

func (s loadSummary) String() string {
	return fmt.Sprintf("load_id=%s\ttable=%s\trows=%d\tnull_rows=%d\tbatches=%d",
		s.id, s.table, s.res.InsertedRows, s.res.NullRows, s.res.Batches)
}

// cmdLoad 按块顺序写入；遇到首个失败即停止，已写入部分不回滚。
func cmdLoad(ctx context.Context, sink inetSink, logger xlog.Logger, s clickhouseSettings, chunks []chunk, create bool) (loadSummary, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return loadSummary{}, err
	}
	summary := loadSummary{id: id.String(), table: s.Table}
	logger = logger.With(slog.String("load_id", summary.id), slog.String("table", s.Table))

	if create {
		if err := sink.CreateInetTable(ctx, s.Table); err != nil {
			return summary, err
		}
	}
	for i, c := range chunks {
		n := c.values.Len()
		res, err := sink.InsertInet(ctx, s.Table, c.values, n, xclickhouse.InsertOptions{BatchSize: s.BatchSize})
		if res != nil {
			summary.res.InsertedRows += res.InsertedRows
			summary.res.NullRows += res.NullRows
			summary.res.Batches += res.Batches
		}
		if err != nil {
			logger.Error(ctx, "load failed", slog.Int("chunk", i), xlog.Count(summary.res.InsertedRows), xlog.Err(err))
			return summary, fmt.Errorf("load %s chunk %d: %w", summary.id, i, err)
		}
	}
	logger.Info(ctx, "load done", xlog.Count(summary.res.InsertedRows), slog.Int("batches", summary.res.Batches))
	return summary, nil
}

// openClickHouse 连接 ClickHouse 并做一次健康检查。
func openClickHouse(ctx context.Context, s clickhouseSettings, opts ...xclickhouse.Option) (inetSink, error) {
	conn, err := clickhouse.Open(&clickhouse.Options{
		Addr: s.Addr,
		Auth: clickhouse.Auth{
			Database: s.Database,
			Username: s.Username,
			Password: s.Password,
		},
		DialTimeout: s.DialTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("open clickhouse: %w", err)
	}

	opts = append(opts,
		xclickhouse.WithRetryAttempts(s.RetryAttempts),
		xclickhouse.WithRetryDelay(s.RetryDelay),
	)
	ch, err := xclickhouse.New(conn, opts...)
	if err != nil {
		_ = conn.Close() //nolint:errcheck // 构建失败时的清理
		return nil, err
	}
	if err := ch.Health(ctx); err != nil {
		_ = ch.Close() //nolint:errcheck // 健康检查失败时的清理
		return nil, fmt.Errorf("clickhouse health: %w", err)
	}
	return ch, nil
}
