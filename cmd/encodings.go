package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"tiktokei/internal/tokenizer"
)

// runListEncodings 列出可用的 tiktoken 编码名称。
func runListEncodings(cmd *cobra.Command, options *rootOptions) error {
	out := cmd.OutOrStdout()

	if !options.quiet {
		if _, err := fmt.Fprintln(out, "Available encodings:"); err != nil {
			return err
		}
	}

	for _, name := range tokenizer.EncodingNames() {
		line := name
		if !options.quiet {
			line = "  " + name
		}
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}
