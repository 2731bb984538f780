package app

import (
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
)

var (
	// ErrOversized indicates the chosen file exceeds the media size cap.
	ErrOversized = errors.New("media exceeds size limit")

	// ErrEmptyScript indicates a blank script submission.
	ErrEmptyScript = errors.New("script text is empty")

	// ErrBusy indicates another boundary call is still outstanding.
	ErrBusy = errors.New("operation already in progress")

	// ErrWrongStage indicates the action is not available at the current stage.
	ErrWrongStage = errors.New("action not available at current stage")

	// ErrNoAnalysis indicates a review was requested before any analysis.
	ErrNoAnalysis = errors.New("no analysis available")

	// ErrWrongMode indicates the submission does not match the selected mode.
	ErrWrongMode = errors.New("submission does not match selected mode")

	// ErrModeLocked indicates the submission mode cannot be changed right now.
	ErrModeLocked = errors.New("submission mode is locked")

	// ErrUnreadable indicates the chosen path could not be opened.
	ErrUnreadable = errors.New("file cannot be read")

	// ErrAnalysisFailed is the single generic failure of the analysis call.
	ErrAnalysisFailed = errors.New("analysis failed")

	// ErrReviewFailed is the single generic failure of either review call.
	ErrReviewFailed = errors.New("review failed")
)

// UserMessage maps a session error to the inline message shown to the user.
// limit is the configured media cap, rendered for the oversized case.
func UserMessage(err error, limit int64) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrOversized):
		return fmt.Sprintf("文件过大。由于 API 载荷限制，请上传 %s 以内的短视频片段。", humanize.IBytes(uint64(limit)))
	case errors.Is(err, ErrEmptyScript):
		return "脚本内容为空，请先填写脚本再提交。"
	case errors.Is(err, ErrBusy):
		return "已有请求正在处理中，请稍候。"
	case errors.Is(err, ErrNoAnalysis):
		return "请先上传参考视频完成分析。"
	case errors.Is(err, ErrWrongStage):
		return "当前阶段无法执行该操作。"
	case errors.Is(err, ErrWrongMode):
		return "提交方式不匹配，请先切换提交方式。"
	case errors.Is(err, ErrModeLocked):
		return "只能在模仿作业阶段且没有进行中的提交时切换提交方式。"
	case errors.Is(err, ErrUnreadable):
		return "无法读取所选文件，请检查路径后重试。"
	case errors.Is(err, ErrAnalysisFailed):
		return "分析失败。可能是视频编码问题或服务繁忙，请重试。"
	case errors.Is(err, ErrReviewFailed):
		return "批改失败。可能是作业文件无法读取或服务繁忙，请重试。"
	default:
		return "发生未知错误，请重试。"
	}
}
