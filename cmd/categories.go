package cmd

import (
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/moyu-x/file-organizer/pkg/category"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "列出当前生效的分类表",
	Long: `按匹配顺序列出分类及其扩展名。
同一扩展名出现在多个分类中时，排在前面的分类优先。MIME 一列仅供参考，不参与分类。`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		renderCategories(cmd.OutOrStdout(), cfg.Table())
		return nil
	},
}

func renderCategories(w io.Writer, t *category.Table) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "分类", "扩展名", "MIME"})

	for i, c := range t.Categories() {
		mimes := make([]string, 0, len(c.Extensions))
		for _, ext := range c.Extensions {
			mime := category.MIME(ext)
			if mime == "" {
				mime = "-"
			}
			mimes = append(mimes, mime)
		}
		tw.AppendRow(table.Row{i + 1, c.Name, strings.Join(c.Extensions, "\n"), strings.Join(mimes, "\n")})
		tw.AppendSeparator()
	}
	tw.AppendRow(table.Row{"", category.Other, "*", "-"})

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
	})
	tw.Render()
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}
