package tokenizer

import (
	"sort"
	"strings"
	"testing"
)

// TestNewCounterUnknownEncoding 验证未知编码名立即报错。
func TestNewCounterUnknownEncoding(t *testing.T) {
	_, err := NewCounter("definitely_not_an_encoding")
	if err == nil {
		t.Fatalf("expected error for unknown encoding, got nil")
	}
	if !strings.Contains(err.Error(), "definitely_not_an_encoding") {
		t.Fatalf("expected encoding name in error, got %v", err)
	}
}

// TestEncodingNames 验证编码清单有序且对外返回的是副本。
func TestEncodingNames(t *testing.T) {
	names := EncodingNames()

	if !sort.StringsAreSorted(names) {
		t.Fatalf("expected sorted encoding names, got %v", names)
	}

	found := false
	for _, name := range names {
		if name == "cl100k_base" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected cl100k_base in %v", names)
	}

	names[0] = "mutated"
	if EncodingNames()[0] == "mutated" {
		t.Fatalf("expected EncodingNames to return a copy")
	}
}

// TestCounterCountText 验证真实编码下的计数行为。
// 首次运行需要下载字典数据，离线环境下跳过。
func TestCounterCountText(t *testing.T) {
	counter, err := NewCounter("cl100k_base")
	if err != nil {
		t.Skipf("skipping: tiktoken encoding unavailable (network required): %v", err)
	}

	if counter.Encoding() != "cl100k_base" {
		t.Fatalf("expected encoding cl100k_base, got %s", counter.Encoding())
	}

	empty, err := counter.CountText("")
	if err != nil {
		t.Fatalf("count empty text failed: %v", err)
	}
	if empty != 0 {
		t.Fatalf("expected 0 tokens for empty text, got %d", empty)
	}

	first, err := counter.CountText("hello world")
	if err != nil {
		t.Fatalf("count text failed: %v", err)
	}
	if first <= 0 {
		t.Fatalf("expected positive token count, got %d", first)
	}

	second, err := counter.CountText("hello world")
	if err != nil {
		t.Fatalf("count text failed: %v", err)
	}
	if first != second {
		t.Fatalf("expected deterministic counts, got %d then %d", first, second)
	}
}
