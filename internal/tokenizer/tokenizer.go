// Package tokenizer 封装外部 tiktoken 依赖，对核心逻辑只暴露计数能力。
// 核心代码永远不假设分词一定成功，所有调用方都必须处理失败分支。
package tokenizer

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"
)

// Counter 是核心逻辑依赖的分词计数接口。
type Counter interface {
	// CountText 返回文本的 token 数量。
	CountText(text string) (int, error)
}

// supportedEncodings 是当前依赖库支持的编码名清单。
// tiktoken-go 没有导出枚举函数，所以由本包维护这份静态列表。
var supportedEncodings = []string{
	"cl100k_base",
	"o200k_base",
	"p50k_base",
	"p50k_edit",
	"r50k_base",
}

// TiktokenCounter 基于指定编码实现 Counter。
type TiktokenCounter struct {
	encoding string
	enc      *tiktoken.Tiktoken
}

// NewCounter 按编码名创建计数器。
// 未知编码名会立即返回错误，首次加载已知编码时可能需要下载字典数据。
func NewCounter(encoding string) (*TiktokenCounter, error) {
	enc, err := tiktoken.GetEncoding(encoding)
	if err != nil {
		return nil, fmt.Errorf("load tiktoken encoding %q: %w", encoding, err)
	}
	return &TiktokenCounter{
		encoding: encoding,
		enc:      enc,
	}, nil
}

// CountText 返回文本编码后的 token 数量。
func (c *TiktokenCounter) CountText(text string) (int, error) {
	if text == "" {
		return 0, nil
	}
	tokens := c.enc.Encode(text, nil, nil)
	return len(tokens), nil
}

// Encoding 返回创建时使用的编码名。
func (c *TiktokenCounter) Encoding() string {
	return c.encoding
}

// EncodingNames 返回支持的编码名列表（按字典序）。
func EncodingNames() []string {
	return append([]string(nil), supportedEncodings...)
}
