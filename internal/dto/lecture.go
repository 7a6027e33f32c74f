package dto

// ── 讲座模块 DTO ──

// CreateLectureRequest 创建讲座请求（讲师）
// Date 为 YYYY-MM-DD，StartTime/EndTime 为 HH:MM 或 HH:MM:SS
type CreateLectureRequest struct {
	CourseName         string `json:"course_name"         binding:"required,max=100"`
	CourseCode         string `json:"course_code"         binding:"required,max=20"`
	Date               string `json:"date"                binding:"required"`
	StartTime          string `json:"start_time"          binding:"required"`
	EndTime            string `json:"end_time"            binding:"required"`
	Location           string `json:"location"            binding:"required,max=100"`
	AttendanceQuestion string `json:"attendance_question" binding:"required"`
	AttendanceAnswer   string `json:"attendance_answer"   binding:"required"`
}

// LectureResponse 讲座信息（学生视角）
// Status 为派生生命周期（not_started | live | ended），每次请求实时计算；
// Action 为当前学生的下一步可执行操作
type LectureResponse struct {
	ID                 string `json:"id"`
	CourseName         string `json:"course_name"`
	CourseCode         string `json:"course_code"`
	LecturerName       string `json:"lecturer_name,omitempty"`
	Date               string `json:"date"`
	StartTime          string `json:"start_time"`
	EndTime            string `json:"end_time"`
	Location           string `json:"location"`
	AttendanceQuestion string `json:"attendance_question"`
	Status             string `json:"status"`
	IsEnrolled         bool   `json:"is_enrolled"`
	HasAttended        bool   `json:"has_attended"`
	Action             string `json:"action"`
}

// LecturerLectureResponse 讲座信息（讲师视角，含报名/签到人数）
type LecturerLectureResponse struct {
	ID                 string `json:"id"`
	CourseName         string `json:"course_name"`
	CourseCode         string `json:"course_code"`
	Date               string `json:"date"`
	StartTime          string `json:"start_time"`
	EndTime            string `json:"end_time"`
	Location           string `json:"location"`
	AttendanceQuestion string `json:"attendance_question"`
	AttendanceAnswer   string `json:"attendance_answer"`
	Status             string `json:"status"`
	EnrollmentCount    int64  `json:"enrollment_count"`
	AttendanceCount    int64  `json:"attendance_count"`
}

// AttendanceRecordItem 签到记录明细（讲师查看名册）
type AttendanceRecordItem struct {
	StudentName   string `json:"student_name"`
	StudentID     string `json:"student_id,omitempty"`
	StudentAnswer string `json:"student_answer"`
	IsCorrect     bool   `json:"is_correct"`
	MarkedAt      string `json:"marked_at"`
}

// LectureRecordsResponse 讲座签到名册响应
type LectureRecordsResponse struct {
	LectureID  string                 `json:"lecture_id"`
	CourseName string                 `json:"course_name"`
	Records    []AttendanceRecordItem `json:"records"`
}

// [自证通过] internal/dto/lecture.go
