package category

import (
	"strings"

	"github.com/h2non/filetype"
)

// Other 未匹配任何分类时使用的兜底分类
const Other = "Other"

// Category 一个分类及其包含的扩展名（小写，带前导点）
type Category struct {
	Name       string
	Extensions []string
}

// Table 有序的分类表，创建后不可修改
type Table struct {
	categories []Category
	index      map[string]string
}

// DefaultTable 返回内置分类表
func DefaultTable() *Table {
	return NewTable(
		Category{Name: "Documents", Extensions: []string{".txt", ".pdf", ".docx", ".xlsx", ".pptx"}},
		Category{Name: "Images", Extensions: []string{".jpg", ".jpeg", ".png", ".gif", ".bmp"}},
		Category{Name: "Python_Code", Extensions: []string{".py"}},
		Category{Name: "Music_Videos", Extensions: []string{".mp3", ".wav", ".mp4", ".mkv", ".avi"}},
		Category{Name: "Archives", Extensions: []string{".zip", ".rar", ".tar", ".gz", ".7z"}},
		Category{Name: "Executables", Extensions: []string{".exe", ".bat", ".sh"}},
	)
}

// NewTable 按声明顺序构建分类表
// 扩展名统一转为小写并补齐前导点；同一扩展名出现在多个分类时，先声明者优先
func NewTable(categories ...Category) *Table {
	t := &Table{
		categories: make([]Category, 0, len(categories)),
		index:      make(map[string]string),
	}

	for _, c := range categories {
		exts := make([]string, 0, len(c.Extensions))
		for _, ext := range c.Extensions {
			ext = normalize(ext)
			if ext == "" {
				continue
			}
			exts = append(exts, ext)
			if _, ok := t.index[ext]; !ok {
				t.index[ext] = c.Name
			}
		}
		t.categories = append(t.categories, Category{Name: c.Name, Extensions: exts})
	}

	return t
}

// Resolve 根据扩展名返回分类名，不区分大小写，未匹配时返回 Other
func (t *Table) Resolve(ext string) string {
	if name, ok := t.index[strings.ToLower(ext)]; ok {
		return name
	}
	return Other
}

// Names 按声明顺序返回所有分类名，最后是 Other
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.categories)+1)
	for _, c := range t.categories {
		names = append(names, c.Name)
	}
	return append(names, Other)
}

// Categories 返回分类表的副本
func (t *Table) Categories() []Category {
	out := make([]Category, len(t.categories))
	for i, c := range t.categories {
		out[i] = Category{Name: c.Name, Extensions: append([]string(nil), c.Extensions...)}
	}
	return out
}

// MIME 从 filetype 的扩展名注册表中查询 MIME 类型，仅用于展示
func MIME(ext string) string {
	kind := filetype.GetType(strings.TrimPrefix(strings.ToLower(ext), "."))
	if kind == filetype.Unknown {
		return ""
	}
	return kind.MIME.Value
}

func normalize(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" {
		return ""
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
