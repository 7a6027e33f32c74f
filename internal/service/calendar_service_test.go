package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/justify-between/boltattendance/internal/model"
)

func TestEnrolledLecturesICS(t *testing.T) {
	repo := newTestRepo()
	svc := NewCalendarService(repo, testLoc, zap.NewNop())

	lecture := &model.Lecture{
		LectureID:          "lec-1",
		CourseName:         "软件工程",
		CourseCode:         "CS403",
		LecturerID:         "lect-1",
		Date:               time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		StartTime:          "09:00:00",
		EndTime:            "10:00:00",
		Location:           "A-101",
		AttendanceQuestion: "q",
		AttendanceAnswer:   "a",
	}
	if err := repo.Lecture.Create(context.Background(), lecture); err != nil {
		t.Fatalf("创建讲座失败: %v", err)
	}
	if err := repo.Enrollment.Create(context.Background(), &model.Enrollment{
		LectureID:  "lec-1",
		StudentID:  "stu-1",
		EnrolledAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Lecture:    lecture,
	}); err != nil {
		t.Fatalf("创建报名失败: %v", err)
	}

	ics, err := svc.EnrolledLecturesICS(context.Background(), "stu-1")
	if err != nil {
		t.Fatalf("EnrolledLecturesICS 应成功，但返回错误: %v", err)
	}

	for _, want := range []string{
		"BEGIN:VCALENDAR",
		"BEGIN:VEVENT",
		"lec-1@boltattendance",
		"软件工程",
		"A-101",
		"END:VCALENDAR",
	} {
		if !strings.Contains(ics, want) {
			t.Errorf("ICS 内容应包含 %q", want)
		}
	}
}

func TestEnrolledLecturesICS_Empty(t *testing.T) {
	repo := newTestRepo()
	svc := NewCalendarService(repo, testLoc, zap.NewNop())

	ics, err := svc.EnrolledLecturesICS(context.Background(), "stu-1")
	if err != nil {
		t.Fatalf("空报名也应返回合法日历: %v", err)
	}
	if !strings.Contains(ics, "BEGIN:VCALENDAR") {
		t.Error("应返回合法的空日历")
	}
}
