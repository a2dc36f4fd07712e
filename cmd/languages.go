package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"tiktokei/internal/classify"
)

// newLanguagesCmd 创建 languages 子命令。
// 命令用于展示可识别的语言标签以及对应文件后缀。
func newLanguagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "展示可识别语言及后缀",
		RunE: func(cmd *cobra.Command, _ []string) error {
			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

			if _, err := fmt.Fprintln(writer, "LANGUAGE\tEXTENSIONS"); err != nil {
				return err
			}

			for _, item := range classify.Languages() {
				if _, err := fmt.Fprintf(writer, "%s\t%s\n", item.Name, strings.Join(item.Extensions, ", ")); err != nil {
					return err
				}
			}

			if err := writer.Flush(); err != nil {
				return err
			}

			_, err := fmt.Fprintf(
				cmd.OutOrStdout(),
				"\nFiles named %s are recognized by filename.\n",
				strings.Join(classify.WellKnownFilenames(), ", "),
			)
			return err
		},
	}
}
