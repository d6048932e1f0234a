package internal

import "time"

// 单个文件的处理结果
type OutcomeKind string

const (
	OutcomeMoved            OutcomeKind = "moved"
	OutcomePreviewed        OutcomeKind = "previewed"
	OutcomeSkipped          OutcomeKind = "skipped"
	OutcomePermissionDenied OutcomeKind = "permission_denied"
	OutcomeFailed           OutcomeKind = "failed"
)

// 文件处理记录
type Outcome struct {
	Source      string
	Destination string
	Category    string
	Kind        OutcomeKind
	Err         error
}

// 一次整理的统计
type RunResult struct {
	RunID            string
	TargetDir        string
	DryRun           bool
	Outcomes         []Outcome
	Moved            int
	Previewed        int
	Skipped          int
	PermissionDenied int
	Failed           int
	StartTime        time.Time
	EndTime          time.Time
}

// Record 追加一条处理记录并更新计数
func (r *RunResult) Record(o Outcome) {
	r.Outcomes = append(r.Outcomes, o)
	switch o.Kind {
	case OutcomeMoved:
		r.Moved++
	case OutcomePreviewed:
		r.Previewed++
	case OutcomeSkipped:
		r.Skipped++
	case OutcomePermissionDenied:
		r.PermissionDenied++
	case OutcomeFailed:
		r.Failed++
	}
}

// Elapsed 运行耗时
func (r *RunResult) Elapsed() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// Errors 出错的文件数
func (r *RunResult) Errors() int {
	return r.PermissionDenied + r.Failed
}
