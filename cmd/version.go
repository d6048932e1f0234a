package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// 构建时通过 -ldflags "-X github.com/moyu-x/file-organizer/cmd.version=..." 注入
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "显示版本号",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "organizer %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
