package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/justify-between/boltattendance/internal/service"
	"github.com/justify-between/boltattendance/pkg/response"
)

// ExportHandler 导出模块 HTTP 处理器
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportRecords 导出讲座签到名册（仅创建者）
// GET /api/v1/lectures/:id/records/export
func (h *ExportHandler) ExportRecords(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	lectureID := c.Param("id")

	buf, filename, err := h.exportSvc.ExportRecords(c.Request.Context(), lectureID, userID)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	// 设置下载响应头
	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

func (h *ExportHandler) handleExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrLectureNotFound):
		response.NotFound(c, 12005, "讲座不存在")
	case errors.Is(err, service.ErrNotLectureOwner):
		response.Forbidden(c, 12006, "只能导出自己创建的讲座")
	case errors.Is(err, service.ErrExportNoRecords):
		response.BadRequest(c, 15001, "该讲座暂无签到记录")
	default:
		response.InternalError(c)
	}
}
