package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/TungTran2095/medform/internal/plan/entity"
	"github.com/TungTran2095/medform/internal/plan/service"
)

// DashboardHandler serves the aggregate report endpoints.
type DashboardHandler struct {
	svc    *service.DashboardService
	export *service.ExportService
}

func NewDashboardHandler(svc *service.DashboardService, export *service.ExportService) *DashboardHandler {
	return &DashboardHandler{svc: svc, export: export}
}

func sortStateFromQuery(c *gin.Context) service.SortState {
	state := service.SortState{
		Field:     service.SortField(c.Query("sort_field")),
		Direction: service.SortDirection(c.Query("sort_dir")),
	}
	switch state.Direction {
	case service.SortAsc, service.SortDesc:
	default:
		state = service.SortState{}
	}
	return state
}

// View handles GET /api/v1/dashboard.
func (h *DashboardHandler) View(c *gin.Context) {
	view, err := h.svc.Load(c.Request.Context(), service.Query{
		Unit: c.Query("unit"),
		Sort: sortStateFromQuery(c),
	})
	if err != nil {
		InternalError(c, "Không thể tải dữ liệu báo cáo.")
		return
	}
	Success(c, view)
}

// Summarize handles POST /api/v1/dashboard/summaries/:category.
func (h *DashboardHandler) Summarize(c *gin.Context) {
	cat, ok := entity.ParseCategory(c.Param("category"))
	if !ok {
		BadRequest(c, "Loại nội dung không hợp lệ.")
		return
	}

	result, err := h.svc.Summarize(c.Request.Context(), c.Query("unit"), cat)
	if err != nil {
		if err == service.ErrSummarizerUnavailable {
			Unavailable(c, "Chức năng tóm tắt chưa được cấu hình.")
			return
		}
		BadGateway(c, "Không thể tóm tắt nội dung. Vui lòng thử lại.")
		return
	}
	if result.NoData {
		Success(c, gin.H{
			"category": result.Category,
			"no_data":  true,
			"message":  "Không có dữ liệu để tóm tắt cho phần này.",
		})
		return
	}
	Success(c, result)
}

// Export handles GET /api/v1/dashboard/export and streams an xlsx workbook.
func (h *DashboardHandler) Export(c *gin.Context) {
	f, err := h.export.Export(c.Request.Context(), c.Query("unit"))
	if err != nil {
		InternalError(c, "Không thể xuất báo cáo.")
		return
	}
	defer f.Close()

	filename := fmt.Sprintf("ke-hoach-2026-%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		c.Status(http.StatusInternalServerError)
	}
}
