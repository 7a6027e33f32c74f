package service

import (
	"context"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"go.uber.org/zap"

	"github.com/justify-between/boltattendance/internal/repository"
)

// CalendarService 日历订阅业务接口
//
// 设计说明：
//   - 生成标准 iCalendar (RFC 5545) 内容，学生可将已报名讲座导入日历应用
//   - 事件时间以校区时区组装后序列化为 UTC
type CalendarService interface {
	// EnrolledLecturesICS 生成学生已报名讲座的 ICS 日历
	EnrolledLecturesICS(ctx context.Context, studentID string) (string, error)
}

type calendarService struct {
	repo      *repository.Repository
	campusLoc *time.Location
	logger    *zap.Logger
}

// NewCalendarService 创建 CalendarService 实例
func NewCalendarService(repo *repository.Repository, campusLoc *time.Location, logger *zap.Logger) CalendarService {
	return &calendarService{repo: repo, campusLoc: campusLoc, logger: logger}
}

func (s *calendarService) EnrolledLecturesICS(ctx context.Context, studentID string) (string, error) {
	enrollments, err := s.repo.Enrollment.ListByStudent(ctx, studentID)
	if err != nil {
		s.logger.Error("查询报名记录失败", zap.Error(err))
		return "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//boltattendance//lecture-calendar//CN")

	for i := range enrollments {
		e := &enrollments[i]
		if e.Lecture == nil {
			continue
		}
		l := e.Lecture

		start, end, err := ComposeWindow(l.Date, l.StartTime, l.EndTime, s.campusLoc)
		if err != nil {
			s.logger.Warn("讲座时间数据异常，已跳过", zap.String("lecture_id", l.LectureID), zap.Error(err))
			continue
		}

		evt := cal.AddEvent(fmt.Sprintf("%s@boltattendance", l.LectureID))
		evt.SetDtStampTime(e.EnrolledAt)
		evt.SetStartAt(start)
		evt.SetEndAt(end)
		evt.SetSummary(fmt.Sprintf("%s (%s)", l.CourseName, l.CourseCode))
		evt.SetLocation(l.Location)
		if l.Lecturer != nil {
			evt.SetDescription(fmt.Sprintf("讲师: %s", l.Lecturer.FullName))
		}
	}

	return cal.Serialize(), nil
}
