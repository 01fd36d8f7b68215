package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/xinet/pkg/inet/xinet"
)

// createCommands 创建所有子命令。
func createCommands(e *env) []*cli.Command {
	return []*cli.Command{
		createParseCommand(e),
		createConvertCommand(e),
		createLoadCommand(e),
		createTypesCommand(e),
	}
}

// convertFlags 是 convert 与 load 共用的参数。
func convertFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "input",
			Aliases: []string{"i"},
			Usage:   "输入文件，默认读取标准输入",
		},
		&cli.IntFlag{
			Name:  "chunk-rows",
			Usage: "每块行数",
		},
		&cli.IntFlag{
			Name:    "workers",
			Aliases: []string{"w"},
			Usage:   "并发转换的块数",
		},
		&cli.StringFlag{
			Name:  "null-token",
			Usage: `表示 NULL 的输入行（默认 \N）`,
		},
	}
}

func createParseCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Usage:     "解析并打印每个地址",
		ArgsUsage: "ADDR...",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() == 0 {
				return usagef("parse: 至少需要一个地址")
			}
			return withRuntime(ctx, cmd, e, func(rt *runtime) error {
				return cmdParse(e.stdout, xinet.NewParser(rt.parserOptions()...), cmd.Args().Slice())
			})
		},
	}
}

func createConvertCommand(e *env) *cli.Command {
	flags := append(convertFlags(), &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage:   "输出格式 (text/json)",
	})
	return &cli.Command{
		Name:  "convert",
		Usage: "按行读取地址并转换为 inet",
		Flags: flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return withRuntime(ctx, cmd, e, func(rt *runtime) error {
				chunks, err := readAndConvert(ctx, cmd, e, rt)
				if err != nil {
					return err
				}
				c := rt.settings.Convert
				return writeChunks(e.stdout, chunks, c.Format, c.NullToken)
			})
		},
	}
}

func createTypesCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "types",
		Usage: "列出类型目录与已加载扩展",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return withRuntime(ctx, cmd, e, func(rt *runtime) error {
				for _, entry := range rt.db.Catalog().Types() {
					fmt.Fprintf(e.stdout, "type\t%s\t%s\n", entry.Name, entry.Type)
				}
				for _, name := range rt.db.Extensions() {
					fmt.Fprintf(e.stdout, "extension\t%s\n", name)
				}
				return nil
			})
		},
	}
}

// withRuntime 构建 runtime 执行 fn，结束后关闭 runtime。
func withRuntime(ctx context.Context, cmd *cli.Command, e *env, fn func(rt *runtime) error) error {
	rt, err := setup(ctx, cmd, e.stderr)
	if err != nil {
		return err
	}
	err = fn(rt)
	return errors.Join(err, rt.close(ctx, e.stderr))
}

// cmdParse 逐个解析地址，遇到第一个失败即返回。
func cmdParse(w io.Writer, p xinet.Parser, addrs []string) error {
	for _, a := range addrs {
		v, err := p.ParseString(a)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, formatValue(a, v)); err != nil {
			return err
		}
	}
	return nil
}

// readAndConvert 读取 --input（或标准输入）并分块转换。
func readAndConvert(ctx context.Context, cmd *cli.Command, e *env, rt *runtime) ([]chunk, error) {
	in := e.stdin
	if path := cmd.String("input"); path != "" && path != "-" {
		f, err := os.Open(path) //nolint:gosec // 用户显式指定的输入文件
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer func() { _ = f.Close() }() //nolint:errcheck // 只读文件
		in = f
	}

	c := rt.settings.Convert
	rows, err := readRows(in, c.NullToken)
	if err != nil {
		return nil, err
	}
	return convertChunks(ctx, rt.db, rows, c.ChunkRows, c.Workers)
}
