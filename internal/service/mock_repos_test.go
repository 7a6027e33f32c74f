package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"gorm.io/gorm"

	"github.com/justify-between/boltattendance/internal/model"
	"github.com/justify-between/boltattendance/internal/repository"
	pkgerrors "github.com/justify-between/boltattendance/pkg/errors"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	for _, u := range m.users {
		if u.Email == user.Email {
			return fmt.Errorf("插入用户: %w", pkgerrors.ErrDuplicateKey)
		}
	}
	if user.UserID == "" {
		user.UserID = "user-" + user.Email
	}
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// ── Mock LectureRepository ──

type mockLectureRepo struct {
	lectures map[string]*model.Lecture
	seq      int
}

func newMockLectureRepo() *mockLectureRepo {
	return &mockLectureRepo{lectures: make(map[string]*model.Lecture)}
}

func (m *mockLectureRepo) Create(_ context.Context, lecture *model.Lecture) error {
	if lecture.LectureID == "" {
		m.seq++
		lecture.LectureID = fmt.Sprintf("lec-%d", m.seq)
	}
	m.lectures[lecture.LectureID] = lecture
	return nil
}

func (m *mockLectureRepo) GetByID(_ context.Context, id string) (*model.Lecture, error) {
	if l, ok := m.lectures[id]; ok {
		return l, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockLectureRepo) List(_ context.Context) ([]model.Lecture, error) {
	var result []model.Lecture
	for _, l := range m.lectures {
		result = append(result, *l)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].LectureID < result[j].LectureID })
	return result, nil
}

func (m *mockLectureRepo) ListByLecturer(_ context.Context, lecturerID string) ([]model.Lecture, error) {
	var result []model.Lecture
	for _, l := range m.lectures {
		if l.LecturerID == lecturerID {
			result = append(result, *l)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].LectureID < result[j].LectureID })
	return result, nil
}

// ── Mock EnrollmentRepository ──

type mockEnrollmentRepo struct {
	enrollments map[string]*model.Enrollment // key: lectureID:studentID
	seq         int
}

func newMockEnrollmentRepo() *mockEnrollmentRepo {
	return &mockEnrollmentRepo{enrollments: make(map[string]*model.Enrollment)}
}

func (m *mockEnrollmentRepo) Create(_ context.Context, e *model.Enrollment) error {
	key := e.LectureID + ":" + e.StudentID
	if _, ok := m.enrollments[key]; ok {
		return fmt.Errorf("插入报名记录: %w", pkgerrors.ErrDuplicateKey)
	}
	if e.EnrollmentID == "" {
		m.seq++
		e.EnrollmentID = fmt.Sprintf("enr-%d", m.seq)
	}
	m.enrollments[key] = e
	return nil
}

func (m *mockEnrollmentRepo) Exists(_ context.Context, lectureID, studentID string) (bool, error) {
	_, ok := m.enrollments[lectureID+":"+studentID]
	return ok, nil
}

func (m *mockEnrollmentRepo) ListLectureIDsByStudent(_ context.Context, studentID string) ([]string, error) {
	// 与 Postgres 行为一致：空串不是合法 uuid
	if studentID == "" {
		return nil, errors.New("invalid input syntax for type uuid: \"\"")
	}
	var ids []string
	for _, e := range m.enrollments {
		if e.StudentID == studentID {
			ids = append(ids, e.LectureID)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

func (m *mockEnrollmentRepo) ListByStudent(_ context.Context, studentID string) ([]model.Enrollment, error) {
	var result []model.Enrollment
	for _, e := range m.enrollments {
		if e.StudentID == studentID {
			result = append(result, *e)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].EnrollmentID < result[j].EnrollmentID })
	return result, nil
}

func (m *mockEnrollmentRepo) CountByLectureIDs(_ context.Context, lectureIDs []string) (map[string]int64, error) {
	counts := make(map[string]int64)
	for _, e := range m.enrollments {
		for _, id := range lectureIDs {
			if e.LectureID == id {
				counts[id]++
			}
		}
	}
	return counts, nil
}

// ── Mock AttendanceRepository ──

type mockAttendanceRepo struct {
	records map[string]*model.AttendanceRecord // key: lectureID:studentID
	seq     int
}

func newMockAttendanceRepo() *mockAttendanceRepo {
	return &mockAttendanceRepo{records: make(map[string]*model.AttendanceRecord)}
}

func (m *mockAttendanceRepo) Create(_ context.Context, r *model.AttendanceRecord) error {
	key := r.LectureID + ":" + r.StudentID
	if _, ok := m.records[key]; ok {
		return fmt.Errorf("插入签到记录: %w", pkgerrors.ErrDuplicateKey)
	}
	if r.AttendanceRecordID == "" {
		m.seq++
		r.AttendanceRecordID = fmt.Sprintf("att-%d", m.seq)
	}
	m.records[key] = r
	return nil
}

func (m *mockAttendanceRepo) Exists(_ context.Context, lectureID, studentID string) (bool, error) {
	_, ok := m.records[lectureID+":"+studentID]
	return ok, nil
}

func (m *mockAttendanceRepo) ListLectureIDsByStudent(_ context.Context, studentID string) ([]string, error) {
	if studentID == "" {
		return nil, errors.New("invalid input syntax for type uuid: \"\"")
	}
	var ids []string
	for _, r := range m.records {
		if r.StudentID == studentID {
			ids = append(ids, r.LectureID)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

func (m *mockAttendanceRepo) ListByLecture(_ context.Context, lectureID string) ([]model.AttendanceRecord, error) {
	var result []model.AttendanceRecord
	for _, r := range m.records {
		if r.LectureID == lectureID {
			result = append(result, *r)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].MarkedAt.Before(result[j].MarkedAt) })
	return result, nil
}

func (m *mockAttendanceRepo) CountByLectureIDs(_ context.Context, lectureIDs []string) (map[string]int64, error) {
	counts := make(map[string]int64)
	for _, r := range m.records {
		for _, id := range lectureIDs {
			if r.LectureID == id {
				counts[id]++
			}
		}
	}
	return counts, nil
}

// ── 测试辅助 ──

// newTestRepo 构造全 mock 的 Repository 聚合
func newTestRepo() *repository.Repository {
	return &repository.Repository{
		User:       newMockUserRepo(),
		Lecture:    newMockLectureRepo(),
		Enrollment: newMockEnrollmentRepo(),
		Attendance: newMockAttendanceRepo(),
	}
}
