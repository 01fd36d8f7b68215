// xinetctl 把文本形式的 IPv4 地址转换为 inet 值，并可写入 ClickHouse。
//
// 用法:
//
//	xinetctl [全局选项] <命令> [命令参数]
//
// 全局选项:
//
//	-c, --config      配置文件（.yaml/.yml/.json）
//	--log-level       日志级别 (debug/info/warn/error)
//	--log-format      日志格式 (text/json)
//	--legacy-mask     掩码按旧版方式读取（取最后一个八位组的数字区间）
//	--stats           结束时向 stderr 输出各操作的调用次数
//
// 命令:
//
//	parse ADDR...     解析并打印每个地址
//	convert           按行读取地址，分块并发转换后按输入顺序输出
//	load              同 convert，结果写入 ClickHouse
//	types             列出类型目录与已加载扩展
//
// 退出码:
//
//	0: 成功
//	1: 转换或写入失败
//	2: 参数或配置错误
//
// 示例:
//
//	xinetctl parse 10.1.2.3/8 192.168.1.1
//	xinetctl convert --input addrs.txt --workers 8 --format json
//	xinetctl -c xinet.yaml load --table inet_values --create < addrs.txt
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/xinet/pkg/storage/xclickhouse"
)

// 版本信息（可通过 -ldflags 注入）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	os.Exit(run(os.Args, newEnv()))
}

// env 汇集命令使用的外部依赖，测试中替换。
type env struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	// openSink 打开 ClickHouse 写入端。
	openSink func(ctx context.Context, s clickhouseSettings, opts ...xclickhouse.Option) (inetSink, error)
}

func newEnv() *env {
	return &env{
		stdin:    os.Stdin,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
		openSink: openClickHouse,
	}
}

// createApp 创建 CLI 应用。
func createApp(e *env) *cli.Command {
	return &cli.Command{
		Name:      "xinetctl",
		Usage:     "IPv4 inet 转换工具",
		Version:   fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		Writer:    e.stdout,
		ErrWriter: e.stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "配置文件路径（.yaml/.yml/.json）",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "日志级别 (debug/info/warn/error)",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "日志格式 (text/json)",
			},
			&cli.BoolFlag{
				Name:  "legacy-mask",
				Usage: "掩码按旧版方式读取",
			},
			&cli.BoolFlag{
				Name:  "stats",
				Usage: "结束时输出各操作的调用次数",
			},
		},
		Commands: createCommands(e),
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(e.stderr, err)
			}
		},
	}
}

func run(args []string, e *env) int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	stop := setupSignalHandler(cancel)
	defer stop()

	return exitCode(createApp(e).Run(ctx, args), e.stderr)
}

// exitCode 把命令返回的错误映射为退出码并输出错误信息。
func exitCode(err error, stderr io.Writer) int {
	if err == nil {
		return 0
	}
	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}
	var usageErr *usageError
	if errors.As(err, &usageErr) {
		fmt.Fprintf(stderr, "参数错误: %v\n", usageErr)
		return 2
	}
	if isCLIUsageError(err) {
		fmt.Fprintf(stderr, "参数错误: %v\n", err)
		return 2
	}
	fmt.Fprintf(stderr, "错误: %v\n", err)
	return 1
}

// exitError 表示命令已完成输出，只需设置退出码。
type exitError struct {
	code int
}

func (e *exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

// usageError 表示参数或配置错误。
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func usagef(format string, args ...any) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}

// isCLIUsageError 识别 urfave/cli 与 flag 包产生的参数错误。
func isCLIUsageError(err error) bool {
	msg := err.Error()
	for _, marker := range []string{
		"flag provided but not defined",
		"invalid value",
		"Required flag",
		"No help topic for",
		"flag needs an argument",
	} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

// setupSignalHandler 第一次信号取消 ctx，第二次信号强制退出（130 = 128 + SIGINT）。
func setupSignalHandler(cancel context.CancelFunc) (stop func()) {
	sigCh := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-sigCh:
			cancel()
		case <-done:
			return
		}
		select {
		case <-sigCh:
			os.Exit(130)
		case <-done:
		}
	}()
	return func() {
		signal.Stop(sigCh)
		close(done)
	}
}
