package organizer

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/moyu-x/file-organizer/internal"
	"github.com/moyu-x/file-organizer/internal/console"
	"github.com/moyu-x/file-organizer/pkg/category"
	"github.com/moyu-x/file-organizer/pkg/conflict"
	"github.com/moyu-x/file-organizer/pkg/scanner"
)

var (
	// ErrTargetNotFound 目标目录不存在
	ErrTargetNotFound = errors.New("target directory does not exist")
	// ErrNotDirectory 目标路径不是目录
	ErrNotDirectory = errors.New("target path is not a directory")
)

// Options 创建 Organizer 的参数，零值字段使用默认值
type Options struct {
	Fs    afero.Fs
	Table *category.Table

	// Logger 为空时不写日志
	Logger  *zerolog.Logger
	Console *console.Printer

	// LogFile 日志文件路径，整理时跳过与其同名的文件
	LogFile string

	// MaxConflictAttempts 为 0 时重命名不设上限
	MaxConflictAttempts int
}

// Organizer 按扩展名把目录下的文件移动到分类子目录
type Organizer struct {
	fs       afero.Fs
	table    *category.Table
	resolver *conflict.Resolver
	logger   zerolog.Logger
	console  *console.Printer
	logFile  string
}

func New(opts Options) *Organizer {
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.Table == nil {
		opts.Table = category.DefaultTable()
	}
	if opts.Console == nil {
		opts.Console = console.Discard()
	}
	if opts.Logger == nil {
		nop := zerolog.Nop()
		opts.Logger = &nop
	}

	return &Organizer{
		fs:       opts.Fs,
		table:    opts.Table,
		resolver: &conflict.Resolver{Fs: opts.Fs, MaxAttempts: opts.MaxConflictAttempts},
		logger:   *opts.Logger,
		console:  opts.Console,
		logFile:  opts.LogFile,
	}
}

// Organize 整理 targetDir 下的所有文件
// 单个文件失败只记录并继续；只有目标目录不可用时返回错误
// dryRun 为 true 时不修改文件系统，也不写日志
func (o *Organizer) Organize(targetDir string, dryRun bool) (*internal.RunResult, error) {
	result := &internal.RunResult{
		RunID:     uuid.NewString(),
		TargetDir: targetDir,
		DryRun:    dryRun,
		StartTime: time.Now(),
	}
	defer func() {
		result.EndTime = time.Now()
	}()

	info, err := o.fs.Stat(targetDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			o.console.Error("路径 '%s' 不存在。", targetDir)
			return result, fmt.Errorf("%s: %w", targetDir, ErrTargetNotFound)
		}
		o.console.Error("无法访问路径 '%s': %v", targetDir, err)
		return result, fmt.Errorf("检查目标目录失败: %w", err)
	}
	if !info.IsDir() {
		o.console.Error("路径 '%s' 不是目录。", targetDir)
		return result, fmt.Errorf("%s: %w", targetDir, ErrNotDirectory)
	}

	log := o.logger.With().Str("run", result.RunID).Logger()

	walker := scanner.NewFileWalker(o.fs, internal.DefaultLogFile, o.logFile)
	walker.OnSkip = func(path string) {
		result.Record(internal.Outcome{Source: path, Kind: internal.OutcomeSkipped})
	}

	entries, err := walker.Collect(targetDir)
	if err != nil {
		return result, fmt.Errorf("遍历目录失败: %w", err)
	}

	for _, entry := range entries {
		result.Record(o.process(targetDir, entry, dryRun, log))
	}

	if !dryRun {
		log.Info().
			Str("target", targetDir).
			Int("moved", result.Moved).
			Int("skipped", result.Skipped).
			Int("errors", result.Errors()).
			Dur("elapsed", time.Since(result.StartTime)).
			Msg("整理完成")
	}

	return result, nil
}

func (o *Organizer) process(targetDir string, entry scanner.Entry, dryRun bool, log zerolog.Logger) internal.Outcome {
	name := o.table.Resolve(entry.Ext)
	categoryDir := filepath.Join(targetDir, name)

	outcome := internal.Outcome{
		Source:   entry.Path,
		Category: name,
	}

	dest, err := o.resolver.Resolve(filepath.Join(categoryDir, entry.Name))
	if err != nil {
		return o.fail(outcome, err, dryRun, log)
	}
	outcome.Destination = dest

	if dryRun {
		o.console.Preview(entry.Path, dest)
		outcome.Kind = internal.OutcomePreviewed
		return outcome
	}

	if err := o.fs.MkdirAll(categoryDir, internal.DefaultDirPerm); err != nil {
		return o.fail(outcome, err, dryRun, log)
	}

	if err := o.move(entry.Path, dest, log); err != nil {
		return o.fail(outcome, err, dryRun, log)
	}

	log.Info().
		Str("category", name).
		Msgf("已移动 %s → %s", entry.Path, dest)
	o.console.Moved(entry.Path, dest)

	outcome.Kind = internal.OutcomeMoved
	return outcome
}

// fail 记录单个文件的失败，不中断整理
func (o *Organizer) fail(outcome internal.Outcome, err error, dryRun bool, log zerolog.Logger) internal.Outcome {
	outcome.Err = err

	if errors.Is(err, fs.ErrPermission) {
		outcome.Kind = internal.OutcomePermissionDenied
		if !dryRun {
			log.Error().Msgf("权限不足: %s", outcome.Source)
		}
		o.console.Warn("权限不足: %s", outcome.Source)
		return outcome
	}

	outcome.Kind = internal.OutcomeFailed
	if !dryRun {
		log.Error().Msgf("移动 %s 失败: %v", outcome.Source, err)
	}
	o.console.Warn("移动 %s 失败: %v", outcome.Source, err)
	return outcome
}
