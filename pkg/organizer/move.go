package organizer

import (
	"errors"
	"fmt"
	"os"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/moyu-x/file-organizer/pkg/hasher"
)

// move 使用 rename 移动文件
// 跨文件系统时 rename 会返回 EXDEV，此时改为复制、校验后删除源文件
func (o *Organizer) move(src, dst string, log zerolog.Logger) error {
	err := o.fs.Rename(src, dst)
	if err == nil {
		return nil
	}
	if !errors.Is(err, syscall.EXDEV) {
		return err
	}

	log.Debug().
		Err(err).
		Str("source", src).
		Str("destination", dst).
		Msg("直接重命名失败，尝试复制后删除")

	return copyAndRemove(o.fs, src, dst)
}

func copyAndRemove(fs afero.Fs, src, dst string) error {
	info, err := fs.Stat(src)
	if err != nil {
		return fmt.Errorf("读取源文件信息失败: %w", err)
	}

	srcSum, written, err := copyFile(fs, src, dst, info.Mode().Perm())
	if err != nil {
		return err
	}

	dstSum, err := hasher.CalculateHash(fs, dst)
	if err != nil {
		_ = fs.Remove(dst)
		return fmt.Errorf("校验目标文件失败: %w", err)
	}

	if written != info.Size() || srcSum != dstSum {
		_ = fs.Remove(dst)
		return fmt.Errorf("复制校验失败: 源文件 %d 字节, 已复制 %d 字节", info.Size(), written)
	}

	if err := fs.Remove(src); err != nil {
		return fmt.Errorf("删除原文件失败: %w", err)
	}
	return nil
}

// copyFile 复制文件内容，返回源文件的 xxhash 和写入字节数
// 目标文件必须不存在；复制失败时删除已创建的目标文件
func copyFile(fs afero.Fs, src, dst string, perm os.FileMode) (uint64, int64, error) {
	exists, err := afero.Exists(fs, dst)
	if err != nil {
		return 0, 0, fmt.Errorf("检查目标文件失败: %w", err)
	}
	if exists {
		return 0, 0, fmt.Errorf("目标文件已存在: %s", dst)
	}

	in, err := fs.Open(src)
	if err != nil {
		return 0, 0, fmt.Errorf("打开源文件失败: %w", err)
	}
	defer in.Close()

	out, err := fs.OpenFile(dst, os.O_CREATE|os.O_EXCL|os.O_WRONLY, perm)
	if err != nil {
		return 0, 0, fmt.Errorf("创建目标文件失败: %w", err)
	}

	sum, written, err := hasher.CopyWithHash(out, in)
	if err != nil {
		out.Close()
		_ = fs.Remove(dst)
		return 0, written, fmt.Errorf("复制文件内容失败: %w", err)
	}
	if err := out.Close(); err != nil {
		_ = fs.Remove(dst)
		return 0, written, fmt.Errorf("关闭目标文件失败: %w", err)
	}

	return sum, written, nil
}
