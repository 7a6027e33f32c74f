package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/justify-between/boltattendance/internal/dto"
	"github.com/justify-between/boltattendance/internal/model"
	"github.com/justify-between/boltattendance/internal/repository"
	pkgerrors "github.com/justify-between/boltattendance/pkg/errors"
)

var (
	ErrLectureNotFound = errors.New("讲座不存在")
	ErrAlreadyEnrolled = errors.New("已报名该讲座，无需重复报名")
)

// EnrollmentService 报名业务接口
type EnrollmentService interface {
	Enroll(ctx context.Context, lectureID, studentID string) (*dto.EnrollResponse, error)
}

type enrollmentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewEnrollmentService 创建 EnrollmentService 实例
func NewEnrollmentService(repo *repository.Repository, logger *zap.Logger) EnrollmentService {
	return &enrollmentService{repo: repo, logger: logger}
}

func (s *enrollmentService) Enroll(ctx context.Context, lectureID, studentID string) (*dto.EnrollResponse, error) {
	// 1. 讲座必须存在
	if _, err := s.repo.Lecture.GetByID(ctx, lectureID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLectureNotFound
		}
		s.logger.Error("查询讲座失败", zap.Error(err))
		return nil, err
	}

	// 2. 入库；唯一约束兜底重复报名（并发下比先查后插可靠）
	enrollment := &model.Enrollment{
		LectureID:  lectureID,
		StudentID:  studentID,
		EnrolledAt: time.Now(),
	}
	if err := s.repo.Enrollment.Create(ctx, enrollment); err != nil {
		if errors.Is(err, pkgerrors.ErrDuplicateKey) {
			return nil, ErrAlreadyEnrolled
		}
		s.logger.Error("创建报名记录失败", zap.Error(err))
		return nil, err
	}

	return &dto.EnrollResponse{
		EnrollmentID: enrollment.EnrollmentID,
		LectureID:    enrollment.LectureID,
		EnrolledAt:   enrollment.EnrolledAt.Format(time.RFC3339),
	}, nil
}
