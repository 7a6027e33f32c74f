package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/justify-between/boltattendance/internal/repository"
)

// ── 导出模块业务错误 ──

var (
	ErrExportNoRecords    = errors.New("该讲座暂无签到记录")
	ErrExportGenerateFail = errors.New("生成 Excel 文件失败")
)

// ExportService 导出业务接口
//
// 设计说明：
//   - 导出签到名册为 Excel (.xlsx)，仅讲座创建者可导出
//   - 导出以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入 Response
type ExportService interface {
	// ExportRecords 导出讲座签到名册为 Excel
	ExportRecords(ctx context.Context, lectureID, lecturerID string) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// ExportRecords 导出签到名册
//
// 输出格式：
//   - 标题行：课程名 + 日期
//   - 表头: | 姓名 | 学号 | 提交答案 | 判定 | 签到时间 |
//   - 按签到时间升序
func (s *exportService) ExportRecords(ctx context.Context, lectureID, lecturerID string) (*bytes.Buffer, string, error) {
	// 1. 查询讲座并校验归属
	lecture, err := s.repo.Lecture.GetByID(ctx, lectureID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrLectureNotFound
		}
		s.logger.Error("查询讲座失败", zap.Error(err))
		return nil, "", err
	}
	if lecture.LecturerID != lecturerID {
		return nil, "", ErrNotLectureOwner
	}

	// 2. 查询签到记录
	records, err := s.repo.Attendance.ListByLecture(ctx, lectureID)
	if err != nil {
		s.logger.Error("查询签到记录失败", zap.Error(err))
		return nil, "", err
	}
	if len(records) == 0 {
		return nil, "", ErrExportNoRecords
	}

	// 3. 生成 Excel
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "签到名册"
	idx, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheetName, "A", "A", 14)
	f.SetColWidth(sheetName, "B", "B", 14)
	f.SetColWidth(sheetName, "C", "C", 24)
	f.SetColWidth(sheetName, "D", "D", 8)
	f.SetColWidth(sheetName, "E", "E", 22)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// 标题行
	f.SetCellValue(sheetName, "A1", fmt.Sprintf("%s (%s) — 签到名册", lecture.CourseName, lecture.Date.Format("2006-01-02")))
	f.MergeCell(sheetName, "A1", "E1")
	f.SetCellStyle(sheetName, "A1", "A1", headerStyle)

	// 表头
	headers := []string{"姓名", "学号", "提交答案", "判定", "签到时间"}
	for i, h := range headers {
		f.SetCellValue(sheetName, cell(colName(i), 2), h)
	}

	// 数据行
	row := 3
	for i := range records {
		r := &records[i]
		name, studentNo := "", ""
		if r.Student != nil {
			name = r.Student.FullName
			if r.Student.StudentID != nil {
				studentNo = *r.Student.StudentID
			}
		}
		verdict := "错误"
		if r.IsCorrect {
			verdict = "正确"
		}
		f.SetCellValue(sheetName, cell("A", row), name)
		f.SetCellValue(sheetName, cell("B", row), studentNo)
		f.SetCellValue(sheetName, cell("C", row), r.StudentAnswer)
		f.SetCellValue(sheetName, cell("D", row), verdict)
		f.SetCellValue(sheetName, cell("E", row), r.MarkedAt.Format(time.RFC3339))
		row++
	}

	// 写入 buffer
	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("签到名册_%s_%s.xlsx", lecture.CourseCode, lecture.Date.Format("20060102"))
	return buf, filename, nil
}

// ── 辅助函数 ──

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
