package cmd

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/moyu-x/file-organizer/app"
	"github.com/moyu-x/file-organizer/config"
	"github.com/moyu-x/file-organizer/internal"
	"github.com/moyu-x/file-organizer/pkg/logger"
	"github.com/moyu-x/file-organizer/pkg/organizer"
)

var (
	cfgFile     string
	dryRun      bool
	verbose     bool
	logFile     string
	logLevel    string
	maxAttempts int
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "organizer <path>",
	Short: "按扩展名把目录中的文件整理到分类文件夹",
	Long: `organizer 递归扫描指定目录，根据文件扩展名把文件移动到目录下的分类子文件夹中。

主要功能:
- 按扩展名分类: Documents、Images、Python_Code、Music_Videos、Archives、Executables，其余归入 Other
- 目标文件名冲突时自动重命名为 name(1).ext、name(2).ext ...
- --dry-run 预览模式，只输出计划，不修改任何文件
- 移动记录追加写入当前目录下的 organizer.log`,
	Args: cobra.ExactArgs(1),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := "warn"
		if verbose {
			level = "debug"
		}
		logger.Init(level)
	},
	RunE: runOrganize,
}

func runOrganize(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	opts := &app.OrganizeOptions{
		Path:        args[0],
		DryRun:      dryRun,
		Verbose:     verbose,
		LogLevel:    cfg.Logging.Level,
		LogFile:     cfg.Logging.File,
		MaxAttempts: cfg.Conflict.MaxAttempts,
		Table:       cfg.Table(),
		Out:         cmd.OutOrStdout(),
	}

	_, err = app.RunOrganize(opts)
	if errors.Is(err, organizer.ErrTargetNotFound) || errors.Is(err, organizer.ErrNotDirectory) {
		// 已输出到控制台
		cmd.SilenceErrors = true
	}
	return err
}

// loadConfig 读取配置文件，命令行参数优先
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if cfg.File != "" {
		logger.Get().Debug().Str("file", cfg.File).Msg("已加载配置文件")
	}

	flags := cmd.Flags()
	if flags.Changed("log-file") {
		cfg.Logging.File = logFile
	}
	if strings.TrimSpace(cfg.Logging.File) == "" {
		cfg.Logging.File = internal.DefaultLogFile
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = logLevel
	}
	if flags.Changed("max-attempts") {
		cfg.Conflict.MaxAttempts = maxAttempts
	}

	return cfg, cfg.Validate()
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "配置文件路径（默认查找 $HOME/.file-organizer/config.yaml）")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "显示调试日志")

	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "预览模式，不实际移动文件")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "日志文件路径（默认: "+internal.DefaultLogFile+"）")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "日志级别: debug、info、warn、error")
	rootCmd.Flags().IntVar(&maxAttempts, "max-attempts", 0, "重命名冲突的最大尝试次数，0 表示不限制")
}
