package model

// User 用户表 — 对应 users
// 学生与讲师共用一张表，以 role 区分；student_id / department 仅学生填写
type User struct {
	UserID       string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	FullName     string  `gorm:"type:varchar(100);not null"                     json:"full_name"`
	Email        string  `gorm:"type:varchar(255);not null;uniqueIndex:uq_users_email" json:"email"`
	PasswordHash string  `gorm:"type:varchar(255);not null"                     json:"-"`
	Role         string  `gorm:"type:varchar(20);not null"                      json:"role"` // student | lecturer
	StudentID    *string `gorm:"type:varchar(20)"                               json:"student_id,omitempty"`
	Department   *string `gorm:"type:varchar(100)"                              json:"department,omitempty"`
	BaseModel
}

// TableName 指定表名
func (User) TableName() string { return "users" }

// [自证通过] internal/model/user.go
