package console

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Printer 输出给用户看的进度、预览和错误信息
// 只有在终端上才会带颜色
type Printer struct {
	out io.Writer

	infoStyle    lipgloss.Style
	previewStyle lipgloss.Style
	successStyle lipgloss.Style
	warnStyle    lipgloss.Style
	errorStyle   lipgloss.Style
	pathStyle    lipgloss.Style
}

func New(out io.Writer) *Printer {
	r := lipgloss.NewRenderer(out)

	return &Printer{
		out:          out,
		infoStyle:    r.NewStyle().Foreground(lipgloss.Color("86")).Bold(true),
		previewStyle: r.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		successStyle: r.NewStyle().Foreground(lipgloss.Color("86")),
		warnStyle:    r.NewStyle().Foreground(lipgloss.Color("214")),
		errorStyle:   r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		pathStyle:    r.NewStyle().Foreground(lipgloss.Color("147")).Italic(true),
	}
}

// Discard 不输出任何内容
func Discard() *Printer {
	return New(io.Discard)
}

func (p *Printer) Info(format string, args ...any) {
	p.line(p.infoStyle.Render("📂"), fmt.Sprintf(format, args...))
}

// Preview 预览模式下的移动计划
func (p *Printer) Preview(src, dst string) {
	p.line(p.previewStyle.Render("[DRY-RUN] 将移动:"), p.arrow(src, dst))
}

func (p *Printer) Moved(src, dst string) {
	p.line(p.successStyle.Render("✅ 已移动:"), p.arrow(src, dst))
}

func (p *Printer) Warn(format string, args ...any) {
	p.line(p.warnStyle.Render("⚠️"), fmt.Sprintf(format, args...))
}

func (p *Printer) Error(format string, args ...any) {
	p.line(p.errorStyle.Render("❌ 错误:"), fmt.Sprintf(format, args...))
}

// Elapsed 输出总耗时
func (p *Printer) Elapsed(d time.Duration) {
	fmt.Fprintln(p.out)
	p.line(p.successStyle.Render("✅"), fmt.Sprintf("完成，耗时 %.2f 秒。", d.Seconds()))
}

func (p *Printer) Println(a ...any) {
	fmt.Fprintln(p.out, a...)
}

func (p *Printer) arrow(src, dst string) string {
	return fmt.Sprintf("%s → %s", p.pathStyle.Render(src), p.pathStyle.Render(dst))
}

func (p *Printer) line(prefix, msg string) {
	fmt.Fprintf(p.out, "%s %s\n", prefix, msg)
}
