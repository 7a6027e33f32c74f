package errors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrDuplicateKey 唯一约束冲突：记录已存在
// Repository 层将驱动返回的 23505 统一翻译为该错误，
// Service 层据此给出"已报名/已签到"等具体提示，不感知驱动细节
var ErrDuplicateKey = errors.New("记录已存在")

// PostgreSQL 错误码
const (
	uniqueViolationCode = "23505" // unique_violation
	invalidTextReprCode = "22P02" // invalid_text_representation，如非法 uuid 字面量
)

// IsUniqueViolation 判断是否为 PostgreSQL 唯一约束冲突
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolationCode
	}
	return false
}

// Translate 将驱动层错误翻译为统一的存储层错误
// 23505 翻译为 ErrDuplicateKey；22P02（路径参数不是合法 uuid 时
// Postgres 在绑定阶段抛出）按"查无此记录"处理，其余原样返回
func Translate(err error) error {
	if err == nil {
		return nil
	}
	if IsUniqueViolation(err) {
		return ErrDuplicateKey
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == invalidTextReprCode {
		return gorm.ErrRecordNotFound
	}
	return err
}
