package service

import (
	"testing"
	"time"

	"github.com/justify-between/boltattendance/internal/model"
)

var testLoc = time.FixedZone("CST", 8*3600)

func testLecture(date string, startTime, endTime string) *model.Lecture {
	d, _ := time.Parse("2006-01-02", date)
	return &model.Lecture{
		LectureID: "lec-1",
		Date:      d,
		StartTime: startTime,
		EndTime:   endTime,
	}
}

func at(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.ParseInLocation("2006-01-02 15:04:05", value, testLoc)
	if err != nil {
		t.Fatalf("解析测试时刻失败: %v", err)
	}
	return ts
}

// ── 生命周期判定 ──

func TestEvaluateLifecycle_Boundaries(t *testing.T) {
	lec := testLecture("2026-03-02", "09:00:00", "10:00:00")

	cases := []struct {
		name string
		now  string
		want LifecycleState
	}{
		{"开始前一秒", "2026-03-02 08:59:59", LifecycleNotStarted},
		{"恰好开始（闭区间）", "2026-03-02 09:00:00", LifecycleLive},
		{"进行中", "2026-03-02 09:30:00", LifecycleLive},
		{"恰好结束（闭区间）", "2026-03-02 10:00:00", LifecycleLive},
		{"结束后一秒", "2026-03-02 10:00:01", LifecycleEnded},
		{"前一天", "2026-03-01 09:30:00", LifecycleNotStarted},
		{"后一天", "2026-03-03 09:30:00", LifecycleEnded},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := LectureLifecycle(lec, at(t, tc.now), testLoc)
			if err != nil {
				t.Fatalf("LectureLifecycle 失败: %v", err)
			}
			if got != tc.want {
				t.Errorf("期望 %s，实际 %s", tc.want, got)
			}
		})
	}
}

func TestEvaluateLifecycle_Monotonic(t *testing.T) {
	lec := testLecture("2026-03-02", "09:00:00", "10:00:00")

	// 状态只能沿 not_started → live → ended 推进
	rank := map[LifecycleState]int{
		LifecycleNotStarted: 0,
		LifecycleLive:       1,
		LifecycleEnded:      2,
	}

	now := at(t, "2026-03-02 08:00:00")
	prev := LifecycleNotStarted
	for i := 0; i < 180; i++ {
		state, err := LectureLifecycle(lec, now, testLoc)
		if err != nil {
			t.Fatalf("LectureLifecycle 失败: %v", err)
		}
		if rank[state] < rank[prev] {
			t.Fatalf("状态回退: %s → %s（now=%v）", prev, state, now)
		}
		prev = state
		now = now.Add(time.Minute)
	}
	if prev != LifecycleEnded {
		t.Errorf("遍历结束后期望 ended，实际 %s", prev)
	}
}

func TestEvaluateLifecycle_Idempotent(t *testing.T) {
	lec := testLecture("2026-03-02", "09:00:00", "10:00:00")
	now := at(t, "2026-03-02 09:30:00")

	first, err := LectureLifecycle(lec, now, testLoc)
	if err != nil {
		t.Fatalf("LectureLifecycle 失败: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, _ := LectureLifecycle(lec, now, testLoc)
		if again != first {
			t.Fatalf("相同输入结果不一致: %s vs %s", first, again)
		}
	}
}

func TestComposeWindow_AcceptsHHMM(t *testing.T) {
	lec := testLecture("2026-03-02", "09:00", "10:30")

	start, end, err := ComposeWindow(lec.Date, lec.StartTime, lec.EndTime, testLoc)
	if err != nil {
		t.Fatalf("ComposeWindow 失败: %v", err)
	}
	if start.Hour() != 9 || start.Minute() != 0 {
		t.Errorf("起始时刻错误: %v", start)
	}
	if end.Hour() != 10 || end.Minute() != 30 {
		t.Errorf("结束时刻错误: %v", end)
	}
	if !start.Before(end) {
		t.Error("start 应早于 end")
	}
}

func TestComposeWindow_InvalidClock(t *testing.T) {
	lec := testLecture("2026-03-02", "9点", "10:00")
	if _, _, err := ComposeWindow(lec.Date, lec.StartTime, lec.EndTime, testLoc); err == nil {
		t.Error("非法时刻应返回错误")
	}
}

// ── 操作推导决策表 ──

func TestEligibleAction_Table(t *testing.T) {
	cases := []struct {
		name        string
		state       LifecycleState
		isEnrolled  bool
		hasAttended bool
		want        StudentAction
	}{
		{"未报名-未开始", LifecycleNotStarted, false, false, ActionEnroll},
		{"未报名-进行中", LifecycleLive, false, false, ActionEnroll},
		{"未报名-已结束", LifecycleEnded, false, false, ActionEnroll},
		{"已签到-未开始", LifecycleNotStarted, true, true, ActionAlreadyMarked},
		{"已签到-进行中", LifecycleLive, true, true, ActionAlreadyMarked},
		{"已签到-已结束", LifecycleEnded, true, true, ActionAlreadyMarked},
		{"已报名-进行中", LifecycleLive, true, false, ActionMarkAttendance},
		{"已报名-未开始", LifecycleNotStarted, true, false, ActionNotYetAvailable},
		{"已报名-已结束", LifecycleEnded, true, false, ActionClosed},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := EligibleAction(tc.state, tc.isEnrolled, tc.hasAttended)
			if got != tc.want {
				t.Errorf("期望 %s，实际 %s", tc.want, got)
			}
		})
	}
}

// ── 答案归一化 ──

func TestCheckAnswer(t *testing.T) {
	cases := []struct {
		name      string
		submitted string
		expected  string
		want      bool
	}{
		{"首尾空白+大小写", " Paris ", "paris", true},
		{"完全一致", "paris", "paris", true},
		{"大小写混合", "PaRiS", "paris", true},
		{"标点不同", "Paris!", "Paris", false},
		{"内容不同", "London", "Paris", false},
		{"内部空白不折叠", "new york", "newyork", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CheckAnswer(tc.submitted, tc.expected); got != tc.want {
				t.Errorf("CheckAnswer(%q, %q)=%v，期望 %v", tc.submitted, tc.expected, got, tc.want)
			}
		})
	}
}

func TestNormalizeAnswer(t *testing.T) {
	if NormalizeAnswer("  Hello World  ") != "hello world" {
		t.Error("归一化应去首尾空白并小写")
	}
	if NormalizeAnswer("") != "" {
		t.Error("空串归一化应为空串")
	}
}

// [自证通过] internal/service/lifecycle_test.go
