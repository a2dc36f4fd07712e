// Package analyzer 负责单文件的文本嗅探、行统计和 token 统计。
// 单个文件的任何失败都只影响该文件自身，绝不会中断整体扫描。
package analyzer

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"unicode/utf8"

	"go.uber.org/zap"

	"tiktokei/internal/model"
	"tiktokei/internal/tokenizer"
)

// sniffLength 是二进制嗅探读取的前缀字节数。
const sniffLength = 1024

// Analyzer 组合尺寸探测、行统计和委托出去的 token 统计。
type Analyzer struct {
	counter tokenizer.Counter
	logger  *zap.Logger
}

// New 创建文件分析器。
func New(counter tokenizer.Counter, logger *zap.Logger) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Analyzer{
		counter: counter,
		logger:  logger,
	}
}

// IsTextFile 判断文件内容是否可以按文本处理。
// 前 1024 字节中出现任何空字节（0x00）即视为二进制；无法打开按非文本处理。
func IsTextFile(path string) bool {
	file, err := os.Open(path)
	if err != nil {
		return false
	}
	defer file.Close()

	buffer := make([]byte, sniffLength)
	read, err := io.ReadFull(file, buffer)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return false
	}

	return bytes.IndexByte(buffer[:read], 0x00) < 0
}

// Analyze 分析单个文件并返回统计结果。
// 第二个返回值为 false 表示该文件被跳过（不是普通文件，或是二进制内容）。
//
// 降级规则：
// - 二进制文件整体跳过，不产生任何记录
// - 非法 UTF-8 或读取失败的文本文件保留记录，行数和 token 数记 0
// - 分词失败只把 token 数记 0，记录仍然有效
func (a *Analyzer) Analyze(path string) (model.FileStats, bool) {
	info, err := os.Stat(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			a.logger.Warn("stat file failed, skipping",
				zap.String("path", path),
				zap.Error(err),
			)
		}
		return model.FileStats{}, false
	}
	if !info.Mode().IsRegular() {
		return model.FileStats{}, false
	}

	if !IsTextFile(path) {
		return model.FileStats{}, false
	}

	stats := model.FileStats{
		Path: path,
		Size: info.Size(),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		a.logger.Warn("read file failed, counts degraded to zero",
			zap.String("path", path),
			zap.Error(err),
		)
		return stats, true
	}

	if !utf8.Valid(data) {
		a.logger.Warn("file is not valid utf-8, counts degraded to zero",
			zap.String("path", path),
		)
		return stats, true
	}

	stats.Lines = countLines(data)

	tokens, err := a.counter.CountText(string(data))
	if err != nil {
		a.logger.Warn("count tokens failed, token count degraded to zero",
			zap.String("path", path),
			zap.Error(err),
		)
		tokens = 0
	}
	stats.Tokens = int64(tokens)

	return stats, true
}

// countLines 统计换行符分隔的片段数，结尾没有换行的最后一段也计 1。
func countLines(data []byte) int64 {
	if len(data) == 0 {
		return 0
	}

	lines := int64(bytes.Count(data, []byte{'\n'}))
	if data[len(data)-1] != '\n' {
		lines++
	}
	return lines
}
