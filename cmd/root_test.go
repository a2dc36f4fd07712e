package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"tiktokei/internal/config"
)

// newTestRootCmd 构造不受环境变量影响的根命令。
func newTestRootCmd() *cobra.Command {
	cfg := &config.Config{
		Encoding: "cl100k_base",
		Format:   "table",
		Output:   "",
		Workers:  2,
	}
	return newRootCmd("test", cfg)
}

// executeCommand 执行命令并捕获全部输出。
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newTestRootCmd()
	var buffer bytes.Buffer
	cmd.SetOut(&buffer)
	cmd.SetErr(&buffer)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buffer.String(), err
}

// TestRootRejectsUnknownFormat 验证未知输出格式直接报错。
func TestRootRejectsUnknownFormat(t *testing.T) {
	_, err := executeCommand(t, "--format", "xml", ".")
	if err == nil {
		t.Fatalf("expected error for unknown format, got nil")
	}
	if !strings.Contains(err.Error(), "unsupported format") {
		t.Fatalf("unexpected error: %v", err)
	}
}

// TestRootRejectsInvalidWorkers 验证非正数 worker 数直接报错。
func TestRootRejectsInvalidWorkers(t *testing.T) {
	_, err := executeCommand(t, "--workers", "0", ".")
	if err == nil {
		t.Fatalf("expected error for zero workers, got nil")
	}
	if !strings.Contains(err.Error(), "workers must be greater than 0") {
		t.Fatalf("unexpected error: %v", err)
	}
}

// TestRootMissingPath 验证不存在的目标路径报错并带上原始路径。
func TestRootMissingPath(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")

	_, err := executeCommand(t, missing)
	if err == nil {
		t.Fatalf("expected error for missing path, got nil")
	}
	if !strings.Contains(err.Error(), "path not found at") || !strings.Contains(err.Error(), missing) {
		t.Fatalf("unexpected error: %v", err)
	}
}

// TestListEncodings 验证编码清单输出。
func TestListEncodings(t *testing.T) {
	output, err := executeCommand(t, "--list-encodings")
	if err != nil {
		t.Fatalf("list encodings failed: %v", err)
	}

	if !strings.Contains(output, "Available encodings:") {
		t.Fatalf("expected header in output:\n%s", output)
	}
	if !strings.Contains(output, "  cl100k_base") {
		t.Fatalf("expected indented encoding name in output:\n%s", output)
	}
}

// TestListEncodingsQuiet 验证静默模式只输出编码名。
func TestListEncodingsQuiet(t *testing.T) {
	output, err := executeCommand(t, "--list-encodings", "--quiet")
	if err != nil {
		t.Fatalf("list encodings failed: %v", err)
	}

	if strings.Contains(output, "Available encodings:") {
		t.Fatalf("expected no header in quiet output:\n%s", output)
	}

	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	if lines[0] != "cl100k_base" {
		t.Fatalf("expected bare encoding name first, got %q", lines[0])
	}
}

// TestLanguagesCommand 验证 languages 子命令列出标签与后缀。
func TestLanguagesCommand(t *testing.T) {
	output, err := executeCommand(t, "languages")
	if err != nil {
		t.Fatalf("languages command failed: %v", err)
	}

	if !strings.Contains(output, "LANGUAGE") || !strings.Contains(output, "EXTENSIONS") {
		t.Fatalf("expected table header in output:\n%s", output)
	}
	if !strings.Contains(output, "Python") || !strings.Contains(output, ".py") {
		t.Fatalf("expected python row in output:\n%s", output)
	}
	if !strings.Contains(output, "Dockerfile") {
		t.Fatalf("expected well-known filenames footer in output:\n%s", output)
	}
}

// TestVersionCommand 验证 version 子命令输出注入的版本号。
func TestVersionCommand(t *testing.T) {
	output, err := executeCommand(t, "version")
	if err != nil {
		t.Fatalf("version command failed: %v", err)
	}

	if !strings.Contains(output, "tiktokei version test") {
		t.Fatalf("unexpected version output: %q", output)
	}
}
