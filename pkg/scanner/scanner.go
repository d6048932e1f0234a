package scanner

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/moyu-x/file-organizer/pkg/fsutil"
)

// Entry 遍历过程中遇到的一个文件
type Entry struct {
	Path string
	Name string
	Ext  string
}

type FileWalker struct {
	Fs afero.Fs
	// Exclude 按文件名精确匹配需要跳过的文件
	Exclude []string
	// OnSkip 文件被 Exclude 跳过时回调，可为空
	OnSkip func(path string)
}

func NewFileWalker(fs afero.Fs, exclude ...string) *FileWalker {
	return &FileWalker{
		Fs:      fs,
		Exclude: exclude,
	}
}

// Walk 按字典序递归遍历 root 下的所有普通文件，单个条目出错时跳过
// root 本身是指向目录的符号链接时进入该目录；树内指向目录的符号链接不进入也不返回
func (w *FileWalker) Walk(root string, callback func(entry Entry) error) error {
	return afero.Walk(w.Fs, w.walkRoot(root), func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}

		if info.IsDir() || w.isDirLink(path, info) {
			return nil
		}

		name := info.Name()
		if w.excluded(name) {
			if w.OnSkip != nil {
				w.OnSkip(path)
			}
			return nil
		}

		return callback(Entry{
			Path: path,
			Name: name,
			Ext:  fsutil.Ext(name),
		})
	})
}

// Collect 在移动任何文件之前拍下完整的文件列表
// 本次运行中移入分类目录的文件不会被再次遍历到
func (w *FileWalker) Collect(root string) ([]Entry, error) {
	var entries []Entry
	err := w.Walk(root, func(entry Entry) error {
		entries = append(entries, entry)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// walkRoot 在 root 为目录符号链接时追加路径分隔符，使 lstat 解析链接
// 子路径经 filepath.Join 清理后仍以 root 为前缀
func (w *FileWalker) walkRoot(root string) string {
	info, err := lstat(w.Fs, root)
	if err != nil || info.Mode()&os.ModeSymlink == 0 {
		return root
	}
	if target, err := w.Fs.Stat(root); err != nil || !target.IsDir() {
		return root
	}
	if strings.HasSuffix(root, string(filepath.Separator)) {
		return root
	}
	return root + string(filepath.Separator)
}

func (w *FileWalker) isDirLink(path string, info os.FileInfo) bool {
	if info.Mode()&os.ModeSymlink == 0 {
		return false
	}
	target, err := w.Fs.Stat(path)
	return err == nil && target.IsDir()
}

func lstat(fs afero.Fs, path string) (os.FileInfo, error) {
	if l, ok := fs.(afero.Lstater); ok {
		info, _, err := l.LstatIfPossible(path)
		return info, err
	}
	return fs.Stat(path)
}

func (w *FileWalker) excluded(name string) bool {
	for _, ex := range w.Exclude {
		if ex != "" && name == filepath.Base(ex) {
			return true
		}
	}
	return false
}
