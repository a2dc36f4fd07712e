// Package cmd 提供 tiktokei 的命令行入口与子命令编排。
package cmd

import (
	"github.com/spf13/cobra"

	"tiktokei/internal/config"
	"tiktokei/internal/logging"
)

// rootOptions 存放根命令的可配置参数。
// 默认值来自 config 装载结果，命令行标志优先级最高。
type rootOptions struct {
	encoding      string
	format        string
	output        string
	workers       int
	showFiles     bool
	quiet         bool
	readStdin     bool
	listEncodings bool
	verbose       bool
}

// Execute 装载配置、组装根命令并执行。
// version 参数由 main 包注入，便于在 CI/CD 中打包不同版本。
func Execute(version string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	rootCmd := newRootCmd(version, cfg)
	return rootCmd.Execute()
}

// newRootCmd 创建根命令并注册全部子命令。
// 根命令自身承担扫描职责，path 省略时默认当前目录。
func newRootCmd(version string, cfg *config.Config) *cobra.Command {
	options := &rootOptions{
		encoding: cfg.Encoding,
		format:   cfg.Format,
		output:   cfg.Output,
		workers:  cfg.Workers,
	}

	rootCmd := &cobra.Command{
		Use:   "tiktokei [path]",
		Short: "统计文件与目录的 BPE token 数量",
		Long: "tiktokei 使用 tiktoken 的 BPE 编码统计文件或目录中的 token 数量，\n" +
			"按语言聚合并输出类似 tokei 的报表，支持并发扫描与 JSON/YAML 导出。",
		Version:      version,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.New(options.verbose)
			defer func() {
				_ = logger.Sync()
			}()

			if options.listEncodings {
				return runListEncodings(cmd, options)
			}

			if options.readStdin {
				return runStdin(cmd, options)
			}

			target := "."
			if len(args) > 0 {
				target = args[0]
			}
			return runScan(cmd, target, options, logger)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&options.encoding, "encoding", "e", options.encoding, "使用的 tiktoken 编码名称")
	flags.StringVar(&options.format, "format", options.format, "输出格式: table、json 或 yaml")
	flags.StringVarP(&options.output, "output", "o", options.output, "把报表导出到指定文件")
	flags.IntVar(&options.workers, "workers", options.workers, "并发 worker 数量")
	flags.BoolVarP(&options.showFiles, "files", "f", false, "展示每个文件的统计明细")
	flags.BoolVarP(&options.quiet, "quiet", "q", false, "只输出 token 总数")
	flags.BoolVar(&options.readStdin, "stdin", false, "从标准输入读取文本")
	flags.BoolVar(&options.listEncodings, "list-encodings", false, "列出可用编码后退出")
	flags.BoolVar(&options.verbose, "verbose", false, "输出调试日志")

	rootCmd.AddCommand(newVersionCmd(version))
	rootCmd.AddCommand(newLanguagesCmd())

	return rootCmd
}
