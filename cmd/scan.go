package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tiktokei/internal/model"
	"tiktokei/internal/report"
	"tiktokei/internal/scanner"
	"tiktokei/internal/tokenizer"
)

// runScan 扫描文件或目录并输出 token 统计报表。
// 示例：
//
//	tiktokei .
//	tiktokei ./project --format json --output result.json
func runScan(cmd *cobra.Command, target string, options *rootOptions, logger *zap.Logger) error {
	format := strings.ToLower(strings.TrimSpace(options.format))
	if format != report.FormatTable && format != report.FormatJSON && format != report.FormatYAML {
		return errors.New("unsupported format, allowed values: table, json, yaml")
	}

	if options.workers <= 0 {
		return errors.New("workers must be greater than 0")
	}

	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("path not found at '%s'", target)
	}

	counter, err := tokenizer.NewCounter(options.encoding)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	service := scanner.NewService(counter, logger, options.workers)
	stats, err := service.AnalyzePath(ctx, target)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return errors.New("operation cancelled")
		}
		return err
	}

	out := cmd.OutOrStdout()

	if stats.TotalFiles == 0 {
		if options.quiet {
			_, printErr := fmt.Fprintln(out, "0")
			return printErr
		}
		_, printErr := fmt.Fprintln(out, "No files found to analyze.")
		return printErr
	}

	outputPath := strings.TrimSpace(options.output)
	if outputPath != "" {
		if exportErr := report.ExportFile(outputPath, format, stats, options.showFiles); exportErr != nil {
			return exportErr
		}
	}

	if options.quiet {
		_, printErr := fmt.Fprintln(out, stats.TotalTokens)
		return printErr
	}

	switch format {
	case report.FormatJSON:
		if writeErr := report.WriteJSON(out, stats); writeErr != nil {
			return writeErr
		}
	case report.FormatYAML:
		if writeErr := report.WriteYAML(out, stats); writeErr != nil {
			return writeErr
		}
	default:
		if printErr := printTableReport(cmd, target, info.IsDir(), options, stats); printErr != nil {
			return printErr
		}
	}

	if outputPath != "" {
		_, _ = fmt.Fprintf(out, "\nReport exported to %s\n", outputPath)
	}
	return nil
}

// printTableReport 输出带扫描上下文前言的表格报表。
// 单文件只打印摘要行，目录打印完整的按语言聚合表格。
func printTableReport(cmd *cobra.Command, target string, isDir bool, options *rootOptions, stats *model.ProjectStats) error {
	out := cmd.OutOrStdout()

	if !isDir {
		if _, err := fmt.Fprintf(out, "File: '%s'\n", target); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(out, "Encoding used: %s\n", options.encoding); err != nil {
			return err
		}
		_, err := fmt.Fprintf(out, "Total tokens: %s\n", humanize.Comma(stats.TotalTokens))
		return err
	}

	absolute, absErr := filepath.Abs(target)
	if absErr != nil {
		absolute = target
	}

	if _, err := fmt.Fprintf(out, "Directory: %s\n", absolute); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(out, "Encoding used: %s\n", options.encoding); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(out); err != nil {
		return err
	}

	return report.WriteTable(out, stats, options.showFiles)
}
