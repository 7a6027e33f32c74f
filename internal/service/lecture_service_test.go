package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/justify-between/boltattendance/internal/dto"
	"github.com/justify-between/boltattendance/internal/model"
	"github.com/justify-between/boltattendance/internal/repository"
)

func setupLectureService(t *testing.T) (*lectureService, *repository.Repository) {
	t.Helper()
	repo := newTestRepo()
	svc := NewLectureService(repo, testLoc, zap.NewNop()).(*lectureService)
	return svc, repo
}

func validCreateRequest() *dto.CreateLectureRequest {
	return &dto.CreateLectureRequest{
		CourseName:         "数据库系统",
		CourseCode:         "CS401",
		Date:               "2026-03-10",
		StartTime:          "09:00",
		EndTime:            "10:00",
		Location:           "A-101",
		AttendanceQuestion: "今天讲的隔离级别是？",
		AttendanceAnswer:   " Serializable ",
	}
}

// ── 创建讲座测试 ──

func TestCreateLecture_Success(t *testing.T) {
	svc, repo := setupLectureService(t)

	result, err := svc.Create(context.Background(), "lect-1", validCreateRequest())
	if err != nil {
		t.Fatalf("Create 应成功，但返回错误: %v", err)
	}
	if result.ID == "" {
		t.Error("讲座 ID 不应为空")
	}
	if result.StartTime != "09:00:00" {
		t.Errorf("HH:MM 应统一为 HH:MM:SS，实际=%s", result.StartTime)
	}

	// 答案入库前归一化
	lecture, err := repo.Lecture.GetByID(context.Background(), result.ID)
	if err != nil {
		t.Fatalf("查询讲座失败: %v", err)
	}
	if lecture.AttendanceAnswer != "serializable" {
		t.Errorf("期望答案归一化为 serializable，实际=%q", lecture.AttendanceAnswer)
	}
}

func TestCreateLecture_InvalidDate(t *testing.T) {
	svc, _ := setupLectureService(t)

	req := validCreateRequest()
	req.Date = "10/03/2026"
	_, err := svc.Create(context.Background(), "lect-1", req)
	if !errors.Is(err, ErrInvalidDate) {
		t.Errorf("期望 ErrInvalidDate，实际=%v", err)
	}
}

func TestCreateLecture_InvalidClock(t *testing.T) {
	svc, _ := setupLectureService(t)

	req := validCreateRequest()
	req.StartTime = "9 点整"
	_, err := svc.Create(context.Background(), "lect-1", req)
	if !errors.Is(err, ErrInvalidClock) {
		t.Errorf("期望 ErrInvalidClock，实际=%v", err)
	}
}

func TestCreateLecture_StartNotBeforeEnd(t *testing.T) {
	svc, _ := setupLectureService(t)

	tests := []struct {
		name  string
		start string
		end   string
	}{
		{"开始晚于结束", "11:00", "10:00"},
		{"开始等于结束", "10:00", "10:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			req.StartTime = tt.start
			req.EndTime = tt.end
			_, err := svc.Create(context.Background(), "lect-1", req)
			if !errors.Is(err, ErrInvalidTimeRange) {
				t.Errorf("期望 ErrInvalidTimeRange，实际=%v", err)
			}
		})
	}
}

func TestCreateLecture_BlankAnswer(t *testing.T) {
	svc, _ := setupLectureService(t)

	req := validCreateRequest()
	req.AttendanceAnswer = "   "
	_, err := svc.Create(context.Background(), "lect-1", req)
	if !errors.Is(err, ErrBlankAnswerOnSave) {
		t.Errorf("期望 ErrBlankAnswerOnSave，实际=%v", err)
	}
}

// ── 学生列表测试 ──

func TestListLectures_StudentEnrichment(t *testing.T) {
	svc, repo := setupLectureService(t)
	svc.now = func() time.Time { return at(t, "2026-03-10 09:30:00") }

	// 三场讲座：已报名已签到 / 已报名未签到 / 未报名
	for _, id := range []string{"lec-1", "lec-2", "lec-3"} {
		if err := repo.Lecture.Create(context.Background(), &model.Lecture{
			LectureID:          id,
			CourseName:         "课程 " + id,
			CourseCode:         "CS-" + id,
			LecturerID:         "lect-1",
			Date:               time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
			StartTime:          "09:00:00",
			EndTime:            "10:00:00",
			Location:           "A-101",
			AttendanceQuestion: "q",
			AttendanceAnswer:   "a",
		}); err != nil {
			t.Fatalf("创建讲座失败: %v", err)
		}
	}
	repo.Enrollment.Create(context.Background(), &model.Enrollment{LectureID: "lec-1", StudentID: "stu-1"})
	repo.Enrollment.Create(context.Background(), &model.Enrollment{LectureID: "lec-2", StudentID: "stu-1"})
	repo.Attendance.Create(context.Background(), &model.AttendanceRecord{LectureID: "lec-1", StudentID: "stu-1", StudentAnswer: "a", IsCorrect: true})

	result, err := svc.List(context.Background(), "stu-1")
	if err != nil {
		t.Fatalf("List 应成功，但返回错误: %v", err)
	}
	if len(result) != 3 {
		t.Fatalf("期望 3 场讲座，实际=%d", len(result))
	}

	byID := make(map[string]dto.LectureResponse)
	for _, item := range result {
		byID[item.ID] = item
	}

	if got := byID["lec-1"].Action; got != string(ActionAlreadyMarked) {
		t.Errorf("已签到讲座期望 action=already_marked，实际=%s", got)
	}
	if got := byID["lec-2"].Action; got != string(ActionMarkAttendance) {
		t.Errorf("Live 中已报名未签到期望 action=mark_attendance，实际=%s", got)
	}
	if got := byID["lec-3"].Action; got != string(ActionEnroll) {
		t.Errorf("未报名期望 action=enroll，实际=%s", got)
	}
	if got := byID["lec-2"].Status; got != string(LifecycleLive) {
		t.Errorf("期望 status=live，实际=%s", got)
	}
}

// 讲师查看列表时没有学生 ID，不得带空串去查 uuid 列
func TestList_WithoutStudentIDSkipsPerStudentLookups(t *testing.T) {
	svc, repo := setupLectureService(t)
	svc.now = func() time.Time { return at(t, "2026-03-10 09:30:00") }

	if err := repo.Lecture.Create(context.Background(), &model.Lecture{
		LectureID:          "lec-1",
		CourseName:         "数据库系统",
		CourseCode:         "CS301",
		LecturerID:         "lect-1",
		Date:               time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		StartTime:          "09:00:00",
		EndTime:            "10:00:00",
		Location:           "A-101",
		AttendanceQuestion: "q",
		AttendanceAnswer:   "a",
	}); err != nil {
		t.Fatalf("创建讲座失败: %v", err)
	}
	repo.Enrollment.Create(context.Background(), &model.Enrollment{LectureID: "lec-1", StudentID: "stu-1"})

	result, err := svc.List(context.Background(), "")
	if err != nil {
		t.Fatalf("无学生 ID 的列表查询应成功，但返回错误: %v", err)
	}
	if len(result) != 1 {
		t.Fatalf("期望 1 场讲座，实际=%d", len(result))
	}
	if result[0].IsEnrolled || result[0].HasAttended {
		t.Error("无学生 ID 时报名/签到标记应为 false")
	}
	if got := result[0].Action; got != string(ActionEnroll) {
		t.Errorf("无学生 ID 时期望 action=enroll，实际=%s", got)
	}
}

// ── 讲师列表测试 ──

func TestListMine_Counts(t *testing.T) {
	svc, repo := setupLectureService(t)

	if err := repo.Lecture.Create(context.Background(), &model.Lecture{
		LectureID:          "lec-1",
		CourseName:         "编译原理",
		CourseCode:         "CS501",
		LecturerID:         "lect-1",
		Date:               time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		StartTime:          "09:00:00",
		EndTime:            "10:00:00",
		Location:           "A-101",
		AttendanceQuestion: "q",
		AttendanceAnswer:   "a",
	}); err != nil {
		t.Fatalf("创建讲座失败: %v", err)
	}
	repo.Enrollment.Create(context.Background(), &model.Enrollment{LectureID: "lec-1", StudentID: "stu-1"})
	repo.Enrollment.Create(context.Background(), &model.Enrollment{LectureID: "lec-1", StudentID: "stu-2"})
	repo.Attendance.Create(context.Background(), &model.AttendanceRecord{LectureID: "lec-1", StudentID: "stu-1", StudentAnswer: "a", IsCorrect: true})

	result, err := svc.ListMine(context.Background(), "lect-1")
	if err != nil {
		t.Fatalf("ListMine 应成功，但返回错误: %v", err)
	}
	if len(result) != 1 {
		t.Fatalf("期望 1 场讲座，实际=%d", len(result))
	}
	if result[0].EnrollmentCount != 2 {
		t.Errorf("期望报名人数=2，实际=%d", result[0].EnrollmentCount)
	}
	if result[0].AttendanceCount != 1 {
		t.Errorf("期望签到人数=1，实际=%d", result[0].AttendanceCount)
	}
	if result[0].AttendanceAnswer != "a" {
		t.Error("讲师视角应能看到标准答案")
	}
}

func TestListMine_OnlyOwnLectures(t *testing.T) {
	svc, repo := setupLectureService(t)

	repo.Lecture.Create(context.Background(), &model.Lecture{
		LectureID: "lec-1", CourseName: "c1", CourseCode: "cc1", LecturerID: "lect-1",
		Date: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), StartTime: "09:00:00", EndTime: "10:00:00",
		Location: "A", AttendanceQuestion: "q", AttendanceAnswer: "a",
	})
	repo.Lecture.Create(context.Background(), &model.Lecture{
		LectureID: "lec-2", CourseName: "c2", CourseCode: "cc2", LecturerID: "lect-2",
		Date: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), StartTime: "09:00:00", EndTime: "10:00:00",
		Location: "A", AttendanceQuestion: "q", AttendanceAnswer: "a",
	})

	result, err := svc.ListMine(context.Background(), "lect-1")
	if err != nil {
		t.Fatalf("ListMine 应成功，但返回错误: %v", err)
	}
	if len(result) != 1 || result[0].ID != "lec-1" {
		t.Errorf("应只返回自己创建的讲座，实际=%v", result)
	}
}

// ── 名册测试 ──

func TestRecords_OwnerOnly(t *testing.T) {
	svc, repo := setupLectureService(t)

	repo.Lecture.Create(context.Background(), &model.Lecture{
		LectureID: "lec-1", CourseName: "c1", CourseCode: "cc1", LecturerID: "lect-1",
		Date: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), StartTime: "09:00:00", EndTime: "10:00:00",
		Location: "A", AttendanceQuestion: "q", AttendanceAnswer: "a",
	})

	_, err := svc.Records(context.Background(), "lec-1", "lect-2")
	if !errors.Is(err, ErrNotLectureOwner) {
		t.Errorf("期望 ErrNotLectureOwner，实际=%v", err)
	}

	result, err := svc.Records(context.Background(), "lec-1", "lect-1")
	if err != nil {
		t.Fatalf("创建者查看名册应成功，但返回错误: %v", err)
	}
	if result.LectureID != "lec-1" {
		t.Errorf("期望 LectureID=lec-1，实际=%s", result.LectureID)
	}
}

func TestRecords_LectureNotFound(t *testing.T) {
	svc, _ := setupLectureService(t)

	_, err := svc.Records(context.Background(), "no-such-lecture", "lect-1")
	if !errors.Is(err, ErrLectureNotFound) {
		t.Errorf("期望 ErrLectureNotFound，实际=%v", err)
	}
}
