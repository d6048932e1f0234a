package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/moyu-x/file-organizer/pkg/category"
	"github.com/moyu-x/file-organizer/pkg/organizer"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	cfgFile, dryRun, verbose, logFile, logLevel, maxAttempts = "", false, false, "", "", 0
	rootCmd.SilenceErrors = false
	rootCmd.SilenceUsage = false
	if args == nil {
		args = []string{}
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRootCmd_DryRun(t *testing.T) {
	target := t.TempDir()
	if err := os.WriteFile(filepath.Join(target, "a.txt"), []byte("a"), 0644); err != nil {
		t.Fatalf("创建测试文件失败: %v", err)
	}
	logPath := filepath.Join(t.TempDir(), "organizer.log")

	out, err := execute(t, target, "--dry-run", "--log-file", logPath)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !strings.Contains(out, "[DRY-RUN] 将移动:") {
		t.Errorf("Expected preview output, got %q", out)
	}
	if !strings.Contains(out, "完成，耗时") {
		t.Errorf("Expected elapsed summary, got %q", out)
	}
	if _, err := os.Stat(filepath.Join(target, "a.txt")); err != nil {
		t.Error("Dry run should leave the file in place")
	}
	if _, err := os.Stat(logPath); !os.IsNotExist(err) {
		t.Error("Dry run should not create the log file")
	}
}

func TestRootCmd_Organize(t *testing.T) {
	target := t.TempDir()
	if err := os.WriteFile(filepath.Join(target, "b.JPG"), []byte("b"), 0644); err != nil {
		t.Fatalf("创建测试文件失败: %v", err)
	}
	logPath := filepath.Join(t.TempDir(), "organizer.log")

	out, err := execute(t, target, "--log-file", logPath)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(target, "Images", "b.JPG")); err != nil {
		t.Errorf("Expected file to be moved: %v", err)
	}
	if !strings.Contains(out, "✅ 已移动:") {
		t.Errorf("Expected success output, got %q", out)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("读取日志文件失败: %v", err)
	}
	if !strings.Contains(string(data), " - INFO - 已移动 ") {
		t.Errorf("Unexpected log content: %q", data)
	}
}

func TestRootCmd_MissingTarget(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")
	logPath := filepath.Join(t.TempDir(), "organizer.log")

	out, err := execute(t, missing, "--log-file", logPath)
	if !errors.Is(err, organizer.ErrTargetNotFound) {
		t.Fatalf("Expected ErrTargetNotFound, got %v", err)
	}
	if !strings.Contains(out, "❌ 错误: 路径 '"+missing+"' 不存在。") {
		t.Errorf("Expected console error, got %q", out)
	}
	if strings.Contains(out, "Error:") {
		t.Errorf("Error should not be reported twice: %q", out)
	}

	data, _ := os.ReadFile(logPath)
	if len(data) != 0 {
		t.Errorf("Expected no log entries, got %q", data)
	}
}

func TestRootCmd_RequiresPath(t *testing.T) {
	if _, err := execute(t); err == nil {
		t.Error("Expected error without path argument")
	}
}

func TestRenderCategories(t *testing.T) {
	var buf bytes.Buffer
	renderCategories(&buf, category.DefaultTable())

	out := buf.String()
	for _, want := range []string{"Documents", "Python_Code", "Executables", category.Other, ".jpeg", "image/jpeg"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in output:\n%s", want, out)
		}
	}
}

func TestRootCmd_EmptyLogFileFallsBackToDefault(t *testing.T) {
	workDir := t.TempDir()
	t.Chdir(workDir)

	target := t.TempDir()
	if err := os.WriteFile(filepath.Join(target, "a.txt"), []byte("a"), 0644); err != nil {
		t.Fatalf("创建测试文件失败: %v", err)
	}

	if _, err := execute(t, target, "--log-file", ""); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(target, "Documents", "a.txt")); err != nil {
		t.Errorf("Expected file to be moved: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(workDir, "organizer.log"))
	if err != nil {
		t.Fatalf("读取日志文件失败: %v", err)
	}
	if !strings.Contains(string(data), " - INFO - 已移动 ") {
		t.Errorf("Unexpected log content: %q", data)
	}
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if out != "organizer "+version+"\n" {
		t.Errorf("Unexpected version output: %q", out)
	}
}

func TestCategoriesCmd(t *testing.T) {
	t.Chdir(t.TempDir())

	out, err := execute(t, "categories")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	for _, want := range []string{"Documents", "Music_Videos", category.Other, ".py"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in output:\n%s", want, out)
		}
	}
}

func TestCategoriesCmd_ConfigFile(t *testing.T) {
	t.Chdir(t.TempDir())
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	content := "categories:\n  - name: Notes\n    extensions: [\".md\"]\n"
	if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
		t.Fatalf("写入配置文件失败: %v", err)
	}

	out, err := execute(t, "categories", "--config", cfgPath)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "Notes") || strings.Contains(out, "Python_Code") {
		t.Errorf("Expected configured table only:\n%s", out)
	}
}
