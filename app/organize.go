package app

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/moyu-x/file-organizer/internal"
	"github.com/moyu-x/file-organizer/internal/console"
	"github.com/moyu-x/file-organizer/pkg/category"
	"github.com/moyu-x/file-organizer/pkg/logger"
	"github.com/moyu-x/file-organizer/pkg/organizer"
)

type OrganizeOptions struct {
	Path        string
	DryRun      bool
	Verbose     bool
	LogLevel    string
	LogFile     string
	MaxAttempts int
	Table       *category.Table
	Out         io.Writer
}

// RunOrganize 整理一个目录并输出耗时
// 预览模式不打开日志文件；日志文件无法打开时直接返回错误
func RunOrganize(opts *OrganizeOptions) (*internal.RunResult, error) {
	logLevel := opts.LogLevel
	if opts.Verbose {
		logLevel = "debug"
	}

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	printer := console.New(out)
	printer.Info("开始整理文件...")

	runLog := zerolog.Nop()
	if !opts.DryRun {
		l, closer, err := logger.New(logLevel, opts.LogFile)
		if err != nil {
			return nil, err
		}
		defer closer.Close()
		runLog = l
	}

	logger.Get().Debug().
		Str("path", opts.Path).
		Bool("dry_run", opts.DryRun).
		Str("log_file", opts.LogFile).
		Msg("开始整理")

	org := organizer.New(organizer.Options{
		Table:               opts.Table,
		Logger:              &runLog,
		Console:             printer,
		LogFile:             opts.LogFile,
		MaxConflictAttempts: opts.MaxAttempts,
	})

	result, err := org.Organize(opts.Path, opts.DryRun)
	printer.Elapsed(result.Elapsed())
	if err != nil {
		return result, err
	}

	if result.Errors() > 0 {
		printer.Warn("%d 个文件未能移动", result.Errors())
	}

	return result, nil
}
