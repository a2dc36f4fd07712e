package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"tiktokei/internal/tokenizer"
)

// runStdin 读取标准输入的全部文本并统计 token 数量。
func runStdin(cmd *cobra.Command, options *rootOptions) error {
	counter, err := tokenizer.NewCounter(options.encoding)
	if err != nil {
		return err
	}

	content, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}

	tokens, err := counter.CountText(string(content))
	if err != nil {
		return fmt.Errorf("count tokens: %w", err)
	}

	out := cmd.OutOrStdout()

	if options.quiet {
		_, printErr := fmt.Fprintln(out, tokens)
		return printErr
	}

	if _, printErr := fmt.Fprintln(out, "Text from stdin"); printErr != nil {
		return printErr
	}
	if _, printErr := fmt.Fprintf(out, "Encoding used: %s\n", options.encoding); printErr != nil {
		return printErr
	}
	_, printErr := fmt.Fprintf(out, "Total tokens: %d\n", tokens)
	return printErr
}
