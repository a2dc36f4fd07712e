// Package report 提供 tiktokei 的输出能力。
// 当前实现支持 table 控制台格式、JSON 和 YAML 格式（含文件导出）。
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"

	"tiktokei/internal/model"
)

// 支持的输出格式。
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

const (
	tableWidth   = 80
	maxPathWidth = 50
)

// SortedLanguages 返回按 token 总数降序排列的语言统计，token 数相同按名称升序。
func SortedLanguages(stats *model.ProjectStats) []*model.LanguageStats {
	languages := make([]*model.LanguageStats, 0, len(stats.Languages))
	for _, item := range stats.Languages {
		languages = append(languages, item)
	}

	sort.Slice(languages, func(i int, j int) bool {
		if languages[i].TotalTokens != languages[j].TotalTokens {
			return languages[i].TotalTokens > languages[j].TotalTokens
		}
		return languages[i].Name < languages[j].Name
	})
	return languages
}

// WriteTable 使用表格展示统计结果。
// showFiles 打开时在每种语言下追加按 token 数降序的单文件明细。
func WriteTable(writer io.Writer, stats *model.ProjectStats, showFiles bool) error {
	if stats.TotalFiles == 0 {
		_, err := fmt.Fprintln(writer, "No files found.")
		return err
	}

	rule := strings.Repeat("=", tableWidth)

	if _, err := fmt.Fprintln(writer, rule); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(writer, " Language            Files        Lines       Tokens        Bytes"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(writer, rule); err != nil {
		return err
	}

	for _, language := range SortedLanguages(stats) {
		if _, err := fmt.Fprintf(
			writer,
			" %-18s %6d %11s %11s %11s\n",
			language.Name,
			language.TotalFiles,
			humanize.Comma(language.TotalLines),
			humanize.Comma(language.TotalTokens),
			humanize.Comma(language.TotalSize),
		); err != nil {
			return err
		}

		if !showFiles || len(language.Files) == 0 {
			continue
		}

		for _, file := range sortedFiles(language.Files) {
			if _, err := fmt.Fprintf(
				writer,
				"   %-50s %7s %7s %7s\n",
				truncatePath(file.Path),
				humanize.Comma(file.Lines),
				humanize.Comma(file.Tokens),
				humanize.Comma(file.Size),
			); err != nil {
				return err
			}
		}
	}

	if _, err := fmt.Fprintln(writer, strings.Repeat("-", tableWidth)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(
		writer,
		" %-18s %6d %11s %11s %11s\n",
		"Total",
		stats.TotalFiles,
		humanize.Comma(stats.TotalLines),
		humanize.Comma(stats.TotalTokens),
		humanize.Comma(stats.TotalSize),
	); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(writer, rule); err != nil {
		return err
	}
	return nil
}

// WriteJSON 把统计结果按易读 JSON 输出到任意 writer。
func WriteJSON(writer io.Writer, stats *model.ProjectStats) error {
	content, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if _, err := writer.Write(content); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}

// WriteYAML 把统计结果按 YAML 输出到任意 writer。
func WriteYAML(writer io.Writer, stats *model.ProjectStats) error {
	content, err := yaml.Marshal(stats)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}

	if _, err := writer.Write(content); err != nil {
		return fmt.Errorf("write yaml: %w", err)
	}
	return nil
}

// Write 按指定格式把统计结果输出到 writer。
func Write(writer io.Writer, format string, stats *model.ProjectStats, showFiles bool) error {
	switch format {
	case FormatTable:
		return WriteTable(writer, stats, showFiles)
	case FormatJSON:
		return WriteJSON(writer, stats)
	case FormatYAML:
		return WriteYAML(writer, stats)
	default:
		return fmt.Errorf("unsupported report format: %s", format)
	}
}

// ExportFile 将统计结果按指定格式导出到文件。
// 如果目录不存在会自动创建。
func ExportFile(path string, format string, stats *model.ProjectStats, showFiles bool) error {
	var buffer bytes.Buffer
	if err := Write(&buffer, format, stats, showFiles); err != nil {
		return err
	}

	directory := filepath.Dir(path)
	if directory != "." && directory != "" {
		if mkErr := os.MkdirAll(directory, 0o755); mkErr != nil {
			return fmt.Errorf("create output directory: %w", mkErr)
		}
	}

	if writeErr := os.WriteFile(path, buffer.Bytes(), 0o644); writeErr != nil {
		return fmt.Errorf("write output file: %w", writeErr)
	}
	return nil
}

// sortedFiles 返回按 token 数降序的文件副本，原切片保持不变。
// 稳定排序保证 token 数相同的文件维持发现顺序。
func sortedFiles(files []model.FileStats) []model.FileStats {
	sorted := make([]model.FileStats, len(files))
	copy(sorted, files)

	sort.SliceStable(sorted, func(i int, j int) bool {
		return sorted[i].Tokens > sorted[j].Tokens
	})
	return sorted
}

// truncatePath 把超长路径截断为带省略号前缀的尾部片段。
func truncatePath(path string) string {
	runes := []rune(path)
	if len(runes) <= maxPathWidth {
		return path
	}
	return "..." + string(runes[len(runes)-(maxPathWidth-3):])
}
