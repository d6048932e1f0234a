package organizer

import (
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// faultyFs 对指定源路径的 Rename 返回固定错误
type faultyFs struct {
	afero.Fs
	renameErr map[string]error
}

func (f *faultyFs) Rename(oldname, newname string) error {
	if err, ok := f.renameErr[oldname]; ok {
		return &os.LinkError{Op: "rename", Old: oldname, New: newname, Err: err}
	}
	return f.Fs.Rename(oldname, newname)
}

func TestMove_Rename(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFiles(t, fs, map[string]string{"a.txt": "a"})
	if err := fs.MkdirAll(filepath.Join(root, "Documents"), 0755); err != nil {
		t.Fatalf("创建目录失败: %v", err)
	}

	org := New(Options{Fs: fs})
	src := filepath.Join(root, "a.txt")
	dst := filepath.Join(root, "Documents", "a.txt")

	if err := org.move(src, dst, zerolog.Nop()); err != nil {
		t.Fatalf("move() error = %v", err)
	}

	assertFile(t, fs, "Documents/a.txt", "a")
	assertMissing(t, fs, "a.txt")
}

func TestMove_CrossDeviceFallback(t *testing.T) {
	mem := afero.NewMemMapFs()
	content := strings.Repeat("cross device payload ", 4096)
	writeFiles(t, mem, map[string]string{"video.mkv": content})
	if err := mem.MkdirAll(filepath.Join(root, "Music_Videos"), 0755); err != nil {
		t.Fatalf("创建目录失败: %v", err)
	}

	src := filepath.Join(root, "video.mkv")
	fs := &faultyFs{Fs: mem, renameErr: map[string]error{src: syscall.EXDEV}}

	h := newHarness(t, fs)
	result, err := h.organizer().Organize(root, false)
	if err != nil {
		t.Fatalf("Organize() error = %v", err)
	}

	if result.Moved != 1 {
		t.Fatalf("Expected 1 moved file, got %+v", result.Outcomes)
	}
	assertFile(t, mem, "Music_Videos/video.mkv", content)
	assertMissing(t, mem, "video.mkv")
}

func TestMove_OtherRenameErrorIsReturned(t *testing.T) {
	mem := afero.NewMemMapFs()
	writeFiles(t, mem, map[string]string{"a.txt": "a"})

	src := filepath.Join(root, "a.txt")
	fs := &faultyFs{Fs: mem, renameErr: map[string]error{src: syscall.EIO}}
	org := New(Options{Fs: fs})

	err := org.move(src, filepath.Join(root, "b.txt"), zerolog.Nop())
	if err == nil {
		t.Fatal("Expected error")
	}
	assertFile(t, mem, "a.txt", "a")
	assertMissing(t, mem, "b.txt")
}

func TestCopyAndRemove_PreservesPermissions(t *testing.T) {
	tempDir := t.TempDir()
	src := filepath.Join(tempDir, "run.sh")
	dst := filepath.Join(tempDir, "Executables", "run.sh")

	if err := os.WriteFile(src, []byte("#!/bin/sh\necho hi\n"), 0750); err != nil {
		t.Fatalf("创建测试文件失败: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		t.Fatalf("创建目录失败: %v", err)
	}

	if err := copyAndRemove(afero.NewOsFs(), src, dst); err != nil {
		t.Fatalf("copyAndRemove() error = %v", err)
	}

	info, err := os.Stat(dst)
	if err != nil {
		t.Fatalf("Expected destination to exist: %v", err)
	}
	if info.Mode().Perm()&0100 == 0 {
		t.Errorf("Expected executable bit to be preserved, got %v", info.Mode().Perm())
	}
	if _, err := os.Stat(src); !os.IsNotExist(err) {
		t.Error("Expected source to be removed")
	}
}

func TestCopyAndRemove_ExistingDestinationUntouched(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFiles(t, fs, map[string]string{"a.txt": "new", "Documents/a.txt": "old"})

	err := copyAndRemove(fs, filepath.Join(root, "a.txt"), filepath.Join(root, "Documents", "a.txt"))
	if err == nil {
		t.Fatal("Expected error when destination exists")
	}

	assertFile(t, fs, "a.txt", "new")
	assertFile(t, fs, "Documents/a.txt", "old")
}
