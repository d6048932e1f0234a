package conflict

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/moyu-x/file-organizer/pkg/fsutil"
)

// ErrTooManyConflicts 设置了 MaxAttempts 且所有候选文件名都已被占用
var ErrTooManyConflicts = errors.New("too many conflicting file names")

// Resolver 为目标路径找到一个不冲突的文件名
type Resolver struct {
	Fs afero.Fs
	// MaxAttempts 为 0 时不限制重试次数
	MaxAttempts int
}

func NewResolver(fs afero.Fs) *Resolver {
	return &Resolver{Fs: fs}
}

// Resolve 目标路径不存在时原样返回，否则依次尝试 name(1).ext、name(2).ext ...
// 只做存在性检查，不修改文件系统
func (r *Resolver) Resolve(desired string) (string, error) {
	exists, err := afero.Exists(r.Fs, desired)
	if err != nil {
		return "", fmt.Errorf("检查目标路径失败: %w", err)
	}
	if !exists {
		return desired, nil
	}

	dir := filepath.Dir(desired)
	stem, ext := fsutil.SplitName(filepath.Base(desired))

	for i := 1; r.MaxAttempts <= 0 || i <= r.MaxAttempts; i++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s(%d)%s", stem, i, ext))
		exists, err := afero.Exists(r.Fs, candidate)
		if err != nil {
			return "", fmt.Errorf("检查目标路径失败: %w", err)
		}
		if !exists {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%s: %w", desired, ErrTooManyConflicts)
}
